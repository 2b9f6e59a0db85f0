// Package extract holds the extractor family: pure pipelines that turn free
// field text plus lightweight project context into structured items and
// summaries. Every extractor is total over its input: malformed or empty
// text degrades to empty results and defaults, never an error.
package extract

import (
	"math"
	"regexp"
	"strings"

	"github.com/ppiankov/fieldlens/internal/aggregate"
	"github.com/ppiankov/fieldlens/internal/classify"
	"github.com/ppiankov/fieldlens/internal/fields"
	"github.com/ppiankov/fieldlens/internal/model"
	"github.com/ppiankov/fieldlens/internal/recommend"
	"github.com/ppiankov/fieldlens/internal/segment"
)

// Defaults holds the fallback labels an extractor applies when no pattern
// matches. Passed explicitly at construction, never hidden in helpers.
type Defaults struct {
	Trade    string
	Priority string
	Location string
	Owner    string
}

// baseHours is the hour estimate per punch category before modifiers
var baseHours = map[string]float64{
	"Touch-up":        0.5,
	"Cleaning":        0.5,
	"Adjustment":      1,
	"Replace/Install": 4,
	"Repair":          2,
	"General":         1,
}

var (
	minorRe = regexp.MustCompile(`\b(?:minor|small|slight(?:ly)?|tiny)\b`)
	majorRe = regexp.MustCompile(`\b(?:major|extensive|severe|large|significant)\b`)
)

// PunchListExtractor generates punch lists from walkthrough notes
type PunchListExtractor struct {
	defaults  Defaults
	assignees map[string]string // lowercased trade -> company name
	minLength int
}

// NewPunchListExtractor creates a punch-list extractor. assignees maps
// trades to subcontractor companies for the suggested-assignee field and
// may be nil.
func NewPunchListExtractor(defaults Defaults, assignees map[string]string, minLength int) *PunchListExtractor {
	return &PunchListExtractor{
		defaults:  defaults,
		assignees: assignees,
		minLength: minLength,
	}
}

// Extract turns walkthrough notes into a deduplicated, summarized punch list
func (e *PunchListExtractor) Extract(notes string) *model.PunchList {
	units := segment.Segment(notes, segment.Options{MinLength: e.minLength})

	items := make([]model.PunchItem, 0, len(units))
	for _, unit := range units {
		items = append(items, e.itemFromUnit(unit))
	}

	items = aggregate.Dedup(items, func(it model.PunchItem) string {
		return aggregate.Key(it.Description)
	})

	summary := model.PunchSummary{
		TotalItems: len(items),
		ByTrade:    aggregate.Tally(items, func(it model.PunchItem) string { return it.Trade }),
		ByPriority: aggregate.Tally(items, func(it model.PunchItem) string { return it.Priority }),
		ByCategory: aggregate.Tally(items, func(it model.PunchItem) string { return it.Category }),
	}
	for _, it := range items {
		summary.TotalHours += it.EstimatedHours
	}

	return &model.PunchList{
		Items:           items,
		Summary:         summary,
		Recommendations: recommend.PunchList(items, summary.ByTrade, summary.ByPriority),
	}
}

func (e *PunchListExtractor) itemFromUnit(unit string) model.PunchItem {
	trade := classify.Trades.Classify(unit, e.defaults.Trade)
	category := classify.PunchCategories.Classify(unit, "General")

	return model.PunchItem{
		Description:       unit,
		Location:          fields.Location(unit, e.defaults.Location),
		Trade:             trade,
		Priority:          classify.Priorities.Classify(unit, e.defaults.Priority),
		Category:          category,
		SuggestedAssignee: e.assignee(trade),
		EstimatedHours:    estimateHours(unit, category),
	}
}

func (e *PunchListExtractor) assignee(trade string) string {
	if company, ok := e.assignees[strings.ToLower(trade)]; ok {
		return company
	}
	return "TBD"
}

// estimateHours applies the category base, scales by severity cues, and
// rounds to the nearest half hour: round(h*2)/2, minimum half an hour.
func estimateHours(unit, category string) float64 {
	hours, ok := baseHours[category]
	if !ok {
		hours = 1
	}

	lower := strings.ToLower(unit)
	if minorRe.MatchString(lower) {
		hours *= 0.5
	} else if majorRe.MatchString(lower) {
		hours *= 2
	}

	hours = math.Round(hours*2) / 2
	if hours < 0.5 {
		hours = 0.5
	}
	return hours
}
