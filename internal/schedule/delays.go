// Package schedule classifies schedule activities into delayed, on-track, or
// ahead by comparing planned against actual dates, infers delay causes from
// activity flags, and proposes gated recovery options.
package schedule

import (
	"time"

	"github.com/ppiankov/fieldlens/internal/aggregate"
	"github.com/ppiankov/fieldlens/internal/classify"
	"github.com/ppiankov/fieldlens/internal/model"
	"github.com/ppiankov/fieldlens/internal/recommend"
)

const defaultCause = "Unknown"

// Analyzer performs schedule delay analysis
type Analyzer struct{}

// NewAnalyzer creates a new delay analyzer
func NewAnalyzer() *Analyzer {
	return &Analyzer{}
}

// Analyze assesses every activity against now and rolls the results up into
// a project-level delay analysis. It is total over its inputs: an empty
// activity list yields an empty analysis with no recommendations.
func (a *Analyzer) Analyze(activities []model.Activity, now time.Time) *model.DelayAnalysis {
	analysis := &model.DelayAnalysis{
		Assessments: make([]model.ActivityAssessment, 0, len(activities)),
	}

	delayTotal := 0
	for _, act := range activities {
		assessment := assess(act, now)
		analysis.Assessments = append(analysis.Assessments, assessment)

		switch assessment.Status {
		case model.StatusDelayed:
			analysis.DelayedCount++
			delayTotal += assessment.DelayDays
			if act.IsCriticalPath {
				analysis.CriticalPathAffected = true
			}
		case model.StatusAhead:
			analysis.AheadCount++
		default:
			analysis.OnTrackCount++
		}
	}

	if analysis.DelayedCount > 0 {
		analysis.AvgDelayDays = float64(delayTotal) / float64(analysis.DelayedCount)
		analysis.ByCause = aggregate.Tally(delayed(analysis.Assessments), func(as model.ActivityAssessment) string {
			return as.Cause
		})
	}

	analysis.Recommendations = recommend.Recovery(analysis.AvgDelayDays, analysis.CriticalPathAffected, analysis.ByCause)

	return analysis
}

// assess classifies one activity. Precedence: actual end beats actual start
// beats an overdue planned start; an activity with no planned dates in the
// past and no actuals is not yet evaluable and defaults to on-track.
func assess(act model.Activity, now time.Time) model.ActivityAssessment {
	assessment := model.ActivityAssessment{
		ActivityID:     act.ID,
		Name:           act.Name,
		IsCriticalPath: act.IsCriticalPath,
	}

	var delay int
	evaluable := false

	switch {
	case act.ActualEnd != nil && act.PlannedEnd != nil:
		delay = daysBetween(*act.PlannedEnd, *act.ActualEnd)
		evaluable = true
	case act.ActualStart != nil && act.PlannedStart != nil:
		delay = daysBetween(*act.PlannedStart, *act.ActualStart)
		evaluable = true
	case act.PlannedStart != nil && act.PlannedStart.Before(now):
		delay = daysBetween(*act.PlannedStart, now)
		evaluable = true
	}

	if !evaluable {
		assessment.Status = model.StatusOnTrack
		return assessment
	}

	assessment.DelayDays = delay
	switch {
	case delay > 0:
		assessment.Status = model.StatusDelayed
		assessment.Cause = inferCause(act)
	case delay < 0:
		assessment.Status = model.StatusAhead
	default:
		assessment.Status = model.StatusOnTrack
	}

	return assessment
}

// inferCause runs the first-match policy over the activity's delay flags.
// Weather leads: it is the most common excusable cause and the one schedule
// relief is usually claimed against.
func inferCause(act model.Activity) string {
	return classify.FirstFlag([]classify.Flag{
		{Set: act.WeatherDelay, Label: "Weather"},
		{Set: act.MaterialDelay, Label: "Material delivery"},
		{Set: act.LaborShortage, Label: "Labor shortage"},
		{Set: act.RFIPending, Label: "Pending RFI"},
		{Set: act.ChangeOrderPending, Label: "Change order"},
		{Set: act.InspectionFailed, Label: "Failed inspection"},
	}, defaultCause)
}

func delayed(assessments []model.ActivityAssessment) []model.ActivityAssessment {
	var out []model.ActivityAssessment
	for _, a := range assessments {
		if a.Status == model.StatusDelayed {
			out = append(out, a)
		}
	}
	return out
}

// daysBetween returns whole days from a to b, truncating both to midnight
// so partial days never count as delay
func daysBetween(a, b time.Time) int {
	a = time.Date(a.Year(), a.Month(), a.Day(), 0, 0, 0, 0, time.UTC)
	b = time.Date(b.Year(), b.Month(), b.Day(), 0, 0, 0, 0, time.UTC)
	return int(b.Sub(a).Hours() / 24)
}
