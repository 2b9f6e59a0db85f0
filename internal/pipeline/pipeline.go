// Package pipeline wires the extractors, the delay analyzer, and the search
// engine behind a single orchestrator, and renders reports to JSON and
// Markdown.
package pipeline

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"

	"github.com/ppiankov/fieldlens/internal/cache"
	"github.com/ppiankov/fieldlens/internal/extract"
	"github.com/ppiankov/fieldlens/internal/model"
	"github.com/ppiankov/fieldlens/internal/schedule"
	"github.com/ppiankov/fieldlens/internal/search"
)

// Pipeline orchestrates the complete extraction process
type Pipeline struct {
	punch    *extract.PunchListExtractor
	actions  *extract.ActionItemExtractor
	daily    *extract.DailyLogExtractor
	analyzer *schedule.Analyzer
	engine   *search.Engine
	renderer *Renderer
	cache    cache.Cache // nil when caching is disabled
	projCtx  *model.ProjectContext
	config   *model.Config
}

// NewPipeline creates a new pipeline with the given configuration and
// project context. projCtx may be nil; extractors then fall back to the
// configured defaults.
func NewPipeline(cfg *model.Config, projCtx *model.ProjectContext) *Pipeline {
	defaults := extract.Defaults{
		Trade:    cfg.Defaults.Trade,
		Priority: cfg.Defaults.Priority,
		Location: cfg.Defaults.Location,
		Owner:    cfg.Defaults.Owner,
	}

	var team []model.TeamMember
	if projCtx != nil {
		team = projCtx.Team
	}

	var reportCache cache.Cache
	if cfg.Cache.Enabled {
		reportCache = cache.NewLayeredCache(cfg.Cache.MemoryTTL, cfg.Cache.Dir, cfg.Cache.DiskTTL)
	}

	return &Pipeline{
		punch:    extract.NewPunchListExtractor(defaults, projCtx.TradeCompanies(), cfg.Segment.PunchMinLength),
		actions:  extract.NewActionItemExtractor(defaults, team, cfg.Segment.ActionMinLength),
		daily:    extract.NewDailyLogExtractor(defaults, cfg.Segment.DailyLogMinLength),
		analyzer: schedule.NewAnalyzer(),
		engine:   search.NewEngine(cfg.Concurrency.Workers, cfg.Routing.MinScore, cfg.Routing.MaxSimilar, cfg.Routing.MaxSearch),
		renderer: NewRenderer(cfg.Output.IncludeFooter),
		cache:    reportCache,
		projCtx:  projCtx,
		config:   cfg,
	}
}

// GeneratePunchList turns walkthrough notes into a punch-list report
func (p *Pipeline) GeneratePunchList(notes, subject string) *model.Report {
	report := newReport(model.KindPunchList, subject)
	report.PunchList = p.punch.Extract(notes)
	return report
}

// ExtractActionItems turns meeting notes into an action-item report
func (p *Pipeline) ExtractActionItems(notes, subject string, meetingDate time.Time) *model.Report {
	report := newReport(model.KindActionList, subject)
	report.ActionList = p.actions.Extract(notes, meetingDate)
	return report
}

// GenerateDailyLog turns raw field notes into a structured daily-log report
func (p *Pipeline) GenerateDailyLog(notes, subject string, date time.Time) *model.Report {
	report := newReport(model.KindDailyLog, subject)
	report.DailyLog = p.daily.Extract(notes, date)
	return report
}

// AnalyzeDelays assesses the project context's activities against now
func (p *Pipeline) AnalyzeDelays(now time.Time) (*model.Report, error) {
	if p.projCtx == nil || len(p.projCtx.Activities) == 0 {
		return nil, fmt.Errorf("no activities in project context")
	}
	report := newReport(model.KindDelays, "schedule")
	report.Delays = p.analyzer.Analyze(p.projCtx.Activities, now)
	return report, nil
}

// RouteRFI suggests a trade and subcontractor for a new RFI and ranks
// similar past RFIs
func (p *Pipeline) RouteRFI(subject, question string) *model.Report {
	var past []model.RFI
	var subs []model.Subcontractor
	if p.projCtx != nil {
		past = p.projCtx.PastRFIs
		subs = p.projCtx.Subcontractors
	}
	report := newReport(model.KindRouting, subject)
	report.Routing = p.engine.RouteRFI(question, subject, past, subs)
	return report
}

// Search ranks the project context's records against a free-text query
func (p *Pipeline) Search(ctx context.Context, query string) (*model.Report, error) {
	if p.projCtx == nil || len(p.projCtx.Records) == 0 {
		return nil, fmt.Errorf("no records in project context")
	}
	report := newReport(model.KindSearch, query)
	report.Matches = p.engine.Search(ctx, query, search.Sources(p.projCtx.Records))
	return report, nil
}

// AnalyzeFile reads a note file and runs the extractor matching kind.
// Results are cached on file content, so re-running over unchanged notes
// is free.
func (p *Pipeline) AnalyzeFile(path string, kind model.ReportKind, date time.Time) (*model.Report, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read notes: %w", err)
	}

	key := cache.Key(string(kind), data)
	if p.cache != nil {
		if raw, ok := p.cache.Get(key); ok {
			var report model.Report
			if err := json.Unmarshal(raw, &report); err == nil {
				return &report, nil
			}
			// Corrupt entry, drop it and regenerate
			p.cache.Delete(key)
		}
	}

	notes := string(data)
	var report *model.Report
	switch kind {
	case model.KindPunchList:
		report = p.GeneratePunchList(notes, path)
	case model.KindActionList:
		report = p.ExtractActionItems(notes, path, date)
	case model.KindDailyLog:
		report = p.GenerateDailyLog(notes, path, date)
	default:
		return nil, fmt.Errorf("unsupported report kind %q for file input", kind)
	}

	if p.cache != nil {
		if raw, err := json.Marshal(report); err == nil {
			// TTL zero lets each layer apply its configured default
			_ = p.cache.Set(key, raw, 0)
		}
	}
	return report, nil
}

// RenderReport renders the report to the specified outputs
func (p *Pipeline) RenderReport(report *model.Report, jsonPath, mdPath string, verbose bool) error {
	if jsonPath != "" {
		if err := p.renderer.RenderJSON(report, jsonPath); err != nil {
			return fmt.Errorf("render JSON: %w", err)
		}
		if verbose {
			fmt.Printf("✓ Wrote JSON: %s\n", jsonPath)
		}
	}

	if mdPath != "" {
		if err := p.renderer.RenderMarkdown(report, mdPath); err != nil {
			return fmt.Errorf("render markdown: %w", err)
		}
		if verbose {
			fmt.Printf("✓ Wrote Markdown: %s\n", mdPath)
		}
	}

	p.renderer.RenderSummary(report)
	return nil
}

func newReport(kind model.ReportKind, subject string) *model.Report {
	return &model.Report{
		ID:          uuid.NewString(),
		Kind:        kind,
		Subject:     subject,
		GeneratedAt: time.Now().UTC(),
		GeneratedBy: "fieldlens/0.1.0",
	}
}
