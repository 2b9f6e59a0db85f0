package extract

import (
	"regexp"
	"time"

	"github.com/ppiankov/fieldlens/internal/aggregate"
	"github.com/ppiankov/fieldlens/internal/classify"
	"github.com/ppiankov/fieldlens/internal/fields"
	"github.com/ppiankov/fieldlens/internal/model"
	"github.com/ppiankov/fieldlens/internal/recommend"
	"github.com/ppiankov/fieldlens/internal/segment"
)

// Signal-class patterns. Evaluated in order per unit; a unit lands in
// exactly one class so the log partitions the input.
var (
	safetyRe   = regexp.MustCompile(`(?i)\b(?:safety|incident|injur|near.?miss|osha|hazard|ppe|toolbox talk|first aid)\b`)
	weatherRe  = regexp.MustCompile(`(?i)\b(?:sunny|rain|cloud|overcast|wind|snow|fog|humid|degrees|temperature|cold|hot|clear skies)\b`)
	deliveryRe = regexp.MustCompile(`(?i)\b(?:deliver(?:y|ed|ies)?|received|arrived|shipment|unloaded)\b`)
	issueRe    = regexp.MustCompile(`(?i)\b(?:delay(?:ed)?|issue|problem|waiting on|blocked|stuck|rework|failed)\b`)
	crewRe     = regexp.MustCompile(`(?i)\b(?:crew|on.?site|manpower|workers|headcount)\b`)
)

// DailyLogExtractor generates structured daily logs from field notes
type DailyLogExtractor struct {
	defaults  Defaults
	minLength int
}

// NewDailyLogExtractor creates a daily-log extractor
func NewDailyLogExtractor(defaults Defaults, minLength int) *DailyLogExtractor {
	return &DailyLogExtractor{defaults: defaults, minLength: minLength}
}

// Extract turns field notes into a daily log for the given date. Manpower
// entries for the same trade merge (headcount max, hours sum); total hours
// is the sum of headcount times hours over merged entries.
func (e *DailyLogExtractor) Extract(notes string, logDate time.Time) *model.DailyLog {
	units := segment.Segment(notes, segment.Options{MinLength: e.minLength})

	log := &model.DailyLog{Date: logDate}
	var manpower []model.ManpowerEntry
	workerFigures := 0
	percentFigures := 0

	for _, unit := range units {
		switch {
		case safetyRe.MatchString(unit):
			log.SafetyNotes = append(log.SafetyNotes, unit)

		case weatherRe.MatchString(unit):
			// First weather observation wins; later mentions are noise
			if log.Weather == "" {
				log.Weather = unit
			}

		case fields.Workers(unit) > 0 || crewRe.MatchString(unit):
			entry := model.ManpowerEntry{
				Trade:     classify.Trades.Classify(unit, e.defaults.Trade),
				Headcount: fields.Workers(unit),
				Hours:     fields.Hours(unit),
			}
			if entry.Headcount > 0 {
				workerFigures++
			}
			manpower = append(manpower, entry)

		case deliveryRe.MatchString(unit):
			log.Deliveries = append(log.Deliveries, unit)

		case issueRe.MatchString(unit):
			log.Issues = append(log.Issues, unit)

		default:
			activity := model.WorkActivity{
				Description: unit,
				Trade:       classify.Trades.Classify(unit, e.defaults.Trade),
				Location:    fields.Location(unit, ""),
			}
			if pct, ok := fields.PercentComplete(unit); ok {
				activity.PercentComplete = &pct
				percentFigures++
			}
			log.Activities = append(log.Activities, activity)
		}
	}

	log.Manpower = aggregate.MergeBy(manpower,
		func(m model.ManpowerEntry) string { return aggregate.Key(m.Trade) },
		func(old, next model.ManpowerEntry) model.ManpowerEntry {
			return model.ManpowerEntry{
				Trade:     old.Trade,
				Headcount: aggregate.MergeInt(aggregate.PolicyMax, old.Headcount, next.Headcount),
				Hours:     aggregate.MergeFloat(aggregate.PolicySum, old.Hours, next.Hours),
			}
		})

	log.Summary = e.summarize(log, workerFigures, percentFigures)
	log.Recommendations = recommend.DailyLog(log)

	return log
}

func (e *DailyLogExtractor) summarize(log *model.DailyLog, workerFigures, percentFigures int) model.DailyLogSummary {
	summary := model.DailyLogSummary{
		ByTrade: aggregate.Tally(log.Activities, func(a model.WorkActivity) string { return a.Trade }),
	}

	for _, m := range log.Manpower {
		summary.TotalWorkers += m.Headcount
		summary.TotalHours += float64(m.Headcount) * m.Hours
	}

	inputs := aggregate.QualityInputs{
		Activities:      len(log.Activities),
		ManpowerEntries: len(log.Manpower),
		HasWeather:      log.Weather != "",
		HasSafetyNotes:  len(log.SafetyNotes) > 0,
	}
	if len(log.Manpower) > 0 {
		inputs.WorkerCoverage = float64(workerFigures) / float64(len(log.Manpower))
	}
	if len(log.Activities) > 0 {
		inputs.PercentCoverage = float64(percentFigures) / float64(len(log.Activities))
	}
	summary.QualityScore = aggregate.QualityScore(inputs)

	return summary
}
