package extract

import (
	"regexp"
	"strings"
	"time"

	"github.com/ppiankov/fieldlens/internal/aggregate"
	"github.com/ppiankov/fieldlens/internal/classify"
	"github.com/ppiankov/fieldlens/internal/fields"
	"github.com/ppiankov/fieldlens/internal/model"
	"github.com/ppiankov/fieldlens/internal/segment"
)

// headingRe matches short section headings like "Open Items:" that carry
// context for the lines beneath them
var headingRe = regexp.MustCompile(`^.{1,60}:$`)

// ActionItemExtractor extracts action items from meeting notes
type ActionItemExtractor struct {
	defaults  Defaults
	team      []model.TeamMember
	minLength int
}

// NewActionItemExtractor creates an action-item extractor. The team roster
// is used for owner matching and may be empty.
func NewActionItemExtractor(defaults Defaults, team []model.TeamMember, minLength int) *ActionItemExtractor {
	return &ActionItemExtractor{
		defaults:  defaults,
		team:      team,
		minLength: minLength,
	}
}

// Extract turns meeting notes into deduplicated action items. Due dates
// resolve against meetingDate; section headings become item context.
func (e *ActionItemExtractor) Extract(notes string, meetingDate time.Time) *model.ActionList {
	type contextUnit struct {
		text    string
		context string
	}

	minLen := e.minLength
	if minLen <= 0 {
		minLen = segment.DefaultMinLength
	}

	// Walk lines first so headings can attach context to the units below
	// them; fall back to plain segmentation for unstructured prose.
	var units []contextUnit
	context := ""
	for _, line := range strings.Split(notes, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if headingRe.MatchString(line) {
			context = strings.TrimSuffix(line, ":")
			continue
		}
		for _, unit := range segment.Segment(line, segment.Options{MinLength: minLen}) {
			units = append(units, contextUnit{text: unit, context: context})
		}
	}
	if len(units) <= 2 && len(strings.TrimSpace(notes)) > 100 {
		segmented := segment.Segment(notes, segment.Options{MinLength: minLen})
		if len(segmented) > len(units) {
			units = units[:0]
			for _, unit := range segmented {
				units = append(units, contextUnit{text: unit})
			}
		}
	}

	items := make([]model.ActionItem, 0, len(units))
	for _, u := range units {
		items = append(items, model.ActionItem{
			Action:       u.text,
			Owner:        e.owner(u.text),
			DueDate:      fields.DueDate(u.text, meetingDate),
			Priority:     classify.Priorities.Classify(u.text, e.defaults.Priority),
			Category:     classify.ActionCategories.Classify(u.text, "General"),
			Context:      u.context,
			OriginalText: u.text,
		})
	}

	// Case-insensitive on normalized action text; first occurrence wins
	items = aggregate.Dedup(items, func(it model.ActionItem) string {
		return aggregate.Key(it.Action)
	})

	summary := model.ActionSummary{
		TotalItems: len(items),
		ByOwner:    aggregate.Tally(items, func(it model.ActionItem) string { return it.Owner }),
		ByCategory: aggregate.Tally(items, func(it model.ActionItem) string { return it.Category }),
		ByPriority: aggregate.Tally(items, func(it model.ActionItem) string { return it.Priority }),
	}
	for _, it := range items {
		if it.DueDate != nil {
			summary.WithDue++
		}
	}

	return &model.ActionList{Items: items, Summary: summary}
}

// owner resolves the responsible party: a roster name mentioned in the unit
// wins, then a role keyword, then the configured default.
func (e *ActionItemExtractor) owner(unit string) string {
	lower := strings.ToLower(unit)

	for _, member := range e.team {
		name := strings.TrimSpace(member.Name)
		if name == "" {
			continue
		}
		if strings.Contains(lower, strings.ToLower(name)) {
			return member.Name
		}
		// First names are how people talk in meetings
		if first, _, ok := strings.Cut(name, " "); ok && len(first) >= 3 {
			if containsWord(lower, strings.ToLower(first)) {
				return member.Name
			}
		}
	}

	fallback := e.defaults.Owner
	if fallback == "" {
		fallback = "TBD"
	}
	return classify.OwnerRoles.Classify(unit, fallback)
}

func containsWord(haystack, word string) bool {
	idx := 0
	for {
		i := strings.Index(haystack[idx:], word)
		if i < 0 {
			return false
		}
		start := idx + i
		end := start + len(word)
		beforeOK := start == 0 || !isWordChar(haystack[start-1])
		afterOK := end == len(haystack) || !isWordChar(haystack[end])
		if beforeOK && afterOK {
			return true
		}
		idx = start + 1
	}
}

func isWordChar(c byte) bool {
	return c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z' || c >= '0' && c <= '9'
}
