package pipeline

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"strings"
	"time"

	"github.com/ppiankov/fieldlens/internal/model"
)

// Renderer writes reports as JSON and Markdown
type Renderer struct {
	includeFooter bool
}

// NewRenderer creates a renderer
func NewRenderer(includeFooter bool) *Renderer {
	return &Renderer{includeFooter: includeFooter}
}

// RenderJSON writes the report as indented JSON
func (r *Renderer) RenderJSON(report *model.Report, path string) error {
	data, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal report: %w", err)
	}
	return os.WriteFile(path, append(data, '\n'), 0644)
}

// RenderMarkdown writes the report as a human-readable Markdown document
func (r *Renderer) RenderMarkdown(report *model.Report, path string) error {
	return os.WriteFile(path, []byte(r.Markdown(report)), 0644)
}

// Markdown builds the Markdown document for a report
func (r *Renderer) Markdown(report *model.Report) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# %s\n\n", kindTitle(report.Kind))
	if report.Subject != "" {
		fmt.Fprintf(&b, "**Subject:** %s\n\n", report.Subject)
	}
	fmt.Fprintf(&b, "**Generated:** %s\n\n", report.GeneratedAt.Format(time.RFC3339))

	switch report.Kind {
	case model.KindPunchList:
		renderPunchList(&b, report.PunchList)
	case model.KindActionList:
		renderActionList(&b, report.ActionList)
	case model.KindDailyLog:
		renderDailyLog(&b, report.DailyLog)
	case model.KindDelays:
		renderDelays(&b, report.Delays)
	case model.KindRouting:
		renderRouting(&b, report.Routing)
	case model.KindSearch:
		renderMatches(&b, report.Matches)
	}

	if r.includeFooter {
		fmt.Fprintf(&b, "\n---\n*Generated by fieldlens (report %s)*\n", report.ID)
	}
	return b.String()
}

// RenderSummary prints a one-screen summary to stdout
func (r *Renderer) RenderSummary(report *model.Report) {
	fmt.Printf("\n%s\n", kindTitle(report.Kind))
	fmt.Println(strings.Repeat("=", len(kindTitle(report.Kind))))

	switch report.Kind {
	case model.KindPunchList:
		pl := report.PunchList
		fmt.Printf("Items: %d  Estimated hours: %.1f\n", pl.Summary.TotalItems, pl.Summary.TotalHours)
		for _, line := range tallyLines(pl.Summary.ByPriority) {
			fmt.Printf("  %s\n", line)
		}
	case model.KindActionList:
		al := report.ActionList
		fmt.Printf("Items: %d  With due date: %d\n", al.Summary.TotalItems, al.Summary.WithDue)
	case model.KindDailyLog:
		dl := report.DailyLog
		fmt.Printf("Activities: %d  Workers: %d  Quality: %d/100\n",
			len(dl.Activities), dl.Summary.TotalWorkers, dl.Summary.QualityScore)
	case model.KindDelays:
		da := report.Delays
		fmt.Printf("Delayed: %d  On track: %d  Ahead: %d  Avg delay: %.1f days\n",
			da.DelayedCount, da.OnTrackCount, da.AheadCount, da.AvgDelayDays)
		if da.CriticalPathAffected {
			fmt.Println("⚠ Critical path affected")
		}
	case model.KindRouting:
		rt := report.Routing
		fmt.Printf("Suggested trade: %s", rt.SuggestedTrade)
		if rt.SuggestedCompany != "" {
			fmt.Printf("  (%s)", rt.SuggestedCompany)
		}
		fmt.Printf("  Similar RFIs: %d\n", len(rt.SimilarRFIs))
	case model.KindSearch:
		fmt.Printf("Matches: %d\n", len(report.Matches))
		for i, m := range report.Matches {
			if i >= 5 {
				break
			}
			fmt.Printf("  %3d  [%s] %s\n", m.Score, m.Type, m.Title)
		}
	}
	fmt.Println()
}

func renderPunchList(b *strings.Builder, pl *model.PunchList) {
	fmt.Fprintf(b, "## Summary\n\n")
	fmt.Fprintf(b, "- Total items: %d\n", pl.Summary.TotalItems)
	fmt.Fprintf(b, "- Estimated hours: %.1f\n\n", pl.Summary.TotalHours)

	renderTally(b, "By Trade", pl.Summary.ByTrade)
	renderTally(b, "By Priority", pl.Summary.ByPriority)
	renderTally(b, "By Category", pl.Summary.ByCategory)

	if len(pl.Items) > 0 {
		fmt.Fprintf(b, "## Items\n\n")
		fmt.Fprintf(b, "| # | Description | Location | Trade | Priority | Category | Assignee | Hours |\n")
		fmt.Fprintf(b, "|---|---|---|---|---|---|---|---|\n")
		for i, it := range pl.Items {
			fmt.Fprintf(b, "| %d | %s | %s | %s | %s | %s | %s | %.1f |\n",
				i+1, escapeCell(it.Description), it.Location, it.Trade, it.Priority,
				it.Category, it.SuggestedAssignee, it.EstimatedHours)
		}
		fmt.Fprintln(b)
	}

	renderList(b, "Recommendations", pl.Recommendations)
}

func renderActionList(b *strings.Builder, al *model.ActionList) {
	fmt.Fprintf(b, "## Summary\n\n")
	fmt.Fprintf(b, "- Total items: %d\n", al.Summary.TotalItems)
	fmt.Fprintf(b, "- With due date: %d\n\n", al.Summary.WithDue)

	renderTally(b, "By Owner", al.Summary.ByOwner)
	renderTally(b, "By Category", al.Summary.ByCategory)

	if len(al.Items) > 0 {
		fmt.Fprintf(b, "## Action Items\n\n")
		for i, it := range al.Items {
			fmt.Fprintf(b, "%d. **%s**\n", i+1, escapeCell(it.Action))
			fmt.Fprintf(b, "   - Owner: %s  |  Priority: %s  |  Category: %s\n", it.Owner, it.Priority, it.Category)
			if it.DueDate != nil {
				fmt.Fprintf(b, "   - Due: %s\n", it.DueDate.Format("2006-01-02"))
			}
			if it.Context != "" {
				fmt.Fprintf(b, "   - Context: %s\n", it.Context)
			}
		}
		fmt.Fprintln(b)
	}
}

func renderDailyLog(b *strings.Builder, dl *model.DailyLog) {
	fmt.Fprintf(b, "## %s\n\n", dl.Date.Format("Monday, January 2, 2006"))
	fmt.Fprintf(b, "- Quality score: %d/100\n", dl.Summary.QualityScore)
	fmt.Fprintf(b, "- Total workers: %d\n", dl.Summary.TotalWorkers)
	fmt.Fprintf(b, "- Total labor hours: %.1f\n\n", dl.Summary.TotalHours)

	if dl.Weather != "" {
		fmt.Fprintf(b, "**Weather:** %s\n\n", dl.Weather)
	}

	if len(dl.Activities) > 0 {
		fmt.Fprintf(b, "## Work Performed\n\n")
		for _, a := range dl.Activities {
			fmt.Fprintf(b, "- [%s] %s", a.Trade, escapeCell(a.Description))
			if a.PercentComplete != nil {
				fmt.Fprintf(b, " (%d%%)", *a.PercentComplete)
			}
			fmt.Fprintln(b)
		}
		fmt.Fprintln(b)
	}

	if len(dl.Manpower) > 0 {
		fmt.Fprintf(b, "## Manpower\n\n")
		fmt.Fprintf(b, "| Trade | Headcount | Hours |\n|---|---|---|\n")
		for _, m := range dl.Manpower {
			fmt.Fprintf(b, "| %s | %d | %.1f |\n", m.Trade, m.Headcount, m.Hours)
		}
		fmt.Fprintln(b)
	}

	renderList(b, "Safety", dl.SafetyNotes)
	renderList(b, "Deliveries", dl.Deliveries)
	renderList(b, "Issues", dl.Issues)
	renderList(b, "Recommendations", dl.Recommendations)
}

func renderDelays(b *strings.Builder, da *model.DelayAnalysis) {
	fmt.Fprintf(b, "## Summary\n\n")
	fmt.Fprintf(b, "- Delayed: %d\n", da.DelayedCount)
	fmt.Fprintf(b, "- On track: %d\n", da.OnTrackCount)
	fmt.Fprintf(b, "- Ahead: %d\n", da.AheadCount)
	fmt.Fprintf(b, "- Average delay: %.1f days\n", da.AvgDelayDays)
	fmt.Fprintf(b, "- Critical path affected: %v\n\n", da.CriticalPathAffected)

	renderTally(b, "By Cause", da.ByCause)

	if len(da.Assessments) > 0 {
		fmt.Fprintf(b, "## Activities\n\n")
		fmt.Fprintf(b, "| Activity | Status | Delay (days) | Cause | Critical |\n")
		fmt.Fprintf(b, "|---|---|---|---|---|\n")
		for _, a := range da.Assessments {
			critical := ""
			if a.IsCriticalPath {
				critical = "yes"
			}
			fmt.Fprintf(b, "| %s | %s | %d | %s | %s |\n",
				escapeCell(a.Name), a.Status, a.DelayDays, a.Cause, critical)
		}
		fmt.Fprintln(b)
	}

	renderList(b, "Recovery Recommendations", da.Recommendations)
}

func renderRouting(b *strings.Builder, rt *model.RFIRouting) {
	fmt.Fprintf(b, "## Routing\n\n")
	fmt.Fprintf(b, "- Suggested trade: %s\n", rt.SuggestedTrade)
	if rt.SuggestedCompany != "" {
		fmt.Fprintf(b, "- Suggested company: %s\n", rt.SuggestedCompany)
	}
	fmt.Fprintln(b)

	if len(rt.SimilarRFIs) > 0 {
		fmt.Fprintf(b, "## Similar Past RFIs\n\n")
		fmt.Fprintf(b, "| Score | RFI | Subject | Assigned To |\n|---|---|---|---|\n")
		for _, m := range rt.SimilarRFIs {
			fmt.Fprintf(b, "| %d | %s | %s | %s |\n",
				m.Score, m.RFI.ID, escapeCell(m.RFI.Subject), m.RFI.AssignedTo)
		}
		fmt.Fprintln(b)
	}
}

func renderMatches(b *strings.Builder, matches []model.Match) {
	if len(matches) == 0 {
		fmt.Fprintf(b, "No matches.\n")
		return
	}
	fmt.Fprintf(b, "## Matches\n\n")
	fmt.Fprintf(b, "| Score | Type | ID | Title |\n|---|---|---|---|\n")
	for _, m := range matches {
		fmt.Fprintf(b, "| %d | %s | %s | %s |\n", m.Score, m.Type, m.ID, escapeCell(m.Title))
	}
	fmt.Fprintln(b)
}

func renderTally(b *strings.Builder, title string, tally map[string]int) {
	if len(tally) == 0 {
		return
	}
	fmt.Fprintf(b, "### %s\n\n", title)
	for _, line := range tallyLines(tally) {
		fmt.Fprintf(b, "- %s\n", line)
	}
	fmt.Fprintln(b)
}

func renderList(b *strings.Builder, title string, items []string) {
	if len(items) == 0 {
		return
	}
	fmt.Fprintf(b, "## %s\n\n", title)
	for _, it := range items {
		fmt.Fprintf(b, "- %s\n", escapeCell(it))
	}
	fmt.Fprintln(b)
}

// tallyLines formats a tally map in descending count order, names sorted
// within equal counts so output is deterministic.
func tallyLines(tally map[string]int) []string {
	keys := make([]string, 0, len(tally))
	for k := range tally {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		if tally[keys[i]] != tally[keys[j]] {
			return tally[keys[i]] > tally[keys[j]]
		}
		return keys[i] < keys[j]
	})

	lines := make([]string, 0, len(keys))
	for _, k := range keys {
		lines = append(lines, fmt.Sprintf("%s: %d", k, tally[k]))
	}
	return lines
}

func escapeCell(s string) string {
	s = strings.ReplaceAll(s, "|", "\\|")
	return strings.ReplaceAll(s, "\n", " ")
}

func kindTitle(kind model.ReportKind) string {
	switch kind {
	case model.KindPunchList:
		return "Punch List"
	case model.KindActionList:
		return "Action Items"
	case model.KindDailyLog:
		return "Daily Log"
	case model.KindDelays:
		return "Schedule Delay Analysis"
	case model.KindRouting:
		return "RFI Routing"
	case model.KindSearch:
		return "Search Results"
	default:
		return "Report"
	}
}
