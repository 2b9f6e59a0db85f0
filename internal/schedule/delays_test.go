package schedule

import (
	"testing"
	"time"

	"github.com/ppiankov/fieldlens/internal/model"
)

func date(y int, m time.Month, d int) *time.Time {
	t := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	return &t
}

func TestAnalyze_ActualEndPrecedence(t *testing.T) {
	now := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	activities := []model.Activity{
		{
			ID:           "A1",
			Name:         "Foundations",
			PlannedStart: date(2024, 1, 1),
			PlannedEnd:   date(2024, 1, 20),
			ActualStart:  date(2024, 1, 5), // Would suggest 4 days; actual end wins
			ActualEnd:    date(2024, 1, 27),
		},
	}

	analysis := NewAnalyzer().Analyze(activities, now)

	a := analysis.Assessments[0]
	if a.Status != model.StatusDelayed {
		t.Fatalf("Expected delayed, got %s", a.Status)
	}
	if a.DelayDays != 7 {
		t.Errorf("Expected 7 days from actual end, got %d", a.DelayDays)
	}
}

func TestAnalyze_ActualStartFallback(t *testing.T) {
	now := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	activities := []model.Activity{
		{
			ID:           "A2",
			PlannedStart: date(2024, 2, 1),
			PlannedEnd:   date(2024, 2, 20),
			ActualStart:  date(2024, 1, 29), // Started 3 days early
		},
	}

	analysis := NewAnalyzer().Analyze(activities, now)

	a := analysis.Assessments[0]
	if a.Status != model.StatusAhead {
		t.Fatalf("Expected ahead, got %s", a.Status)
	}
	if a.DelayDays != -3 {
		t.Errorf("Expected -3 days, got %d", a.DelayDays)
	}
}

func TestAnalyze_OverduePlannedStart(t *testing.T) {
	now := time.Date(2024, 2, 10, 0, 0, 0, 0, time.UTC)
	activities := []model.Activity{
		{
			ID:           "A3",
			PlannedStart: date(2024, 2, 1), // No actual start, 9 days overdue
		},
	}

	analysis := NewAnalyzer().Analyze(activities, now)

	a := analysis.Assessments[0]
	if a.Status != model.StatusDelayed {
		t.Fatalf("Expected delayed, got %s", a.Status)
	}
	if a.DelayDays != 9 {
		t.Errorf("Expected 9 days, got %d", a.DelayDays)
	}
}

func TestAnalyze_FutureActivityNotEvaluable(t *testing.T) {
	now := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	activities := []model.Activity{
		{ID: "A4", PlannedStart: date(2024, 6, 1), PlannedEnd: date(2024, 6, 20)},
	}

	analysis := NewAnalyzer().Analyze(activities, now)

	a := analysis.Assessments[0]
	if a.Status != model.StatusOnTrack {
		t.Errorf("Expected not-yet-evaluable activity on track, got %s", a.Status)
	}
	if a.DelayDays != 0 {
		t.Errorf("Expected zero delay, got %d", a.DelayDays)
	}
}

func TestAnalyze_OnTimeIsOnTrack(t *testing.T) {
	now := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	activities := []model.Activity{
		{
			ID:         "A5",
			PlannedEnd: date(2024, 2, 1),
			ActualEnd:  date(2024, 2, 1),
		},
	}

	analysis := NewAnalyzer().Analyze(activities, now)
	if analysis.Assessments[0].Status != model.StatusOnTrack {
		t.Errorf("Expected on track for zero delay, got %s", analysis.Assessments[0].Status)
	}
}

func TestAnalyze_CriticalPathGating(t *testing.T) {
	now := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)

	nonCritical := []model.Activity{
		{ID: "B1", PlannedEnd: date(2024, 1, 10), ActualEnd: date(2024, 1, 15), IsCriticalPath: false},
	}
	analysis := NewAnalyzer().Analyze(nonCritical, now)
	if analysis.CriticalPathAffected {
		t.Error("Non-critical delayed activity must not set CriticalPathAffected")
	}

	critical := []model.Activity{
		{ID: "B2", PlannedEnd: date(2024, 1, 10), ActualEnd: date(2024, 1, 15), IsCriticalPath: true},
	}
	analysis = NewAnalyzer().Analyze(critical, now)
	if !analysis.CriticalPathAffected {
		t.Error("Equally delayed critical-path activity must set CriticalPathAffected")
	}
	if len(analysis.Recommendations) == 0 {
		t.Error("Expected recovery options when critical path is affected")
	}
}

func TestAnalyze_CauseInference(t *testing.T) {
	now := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	activities := []model.Activity{
		{
			ID:            "C1",
			PlannedEnd:    date(2024, 1, 10),
			ActualEnd:     date(2024, 1, 15),
			WeatherDelay:  true,
			MaterialDelay: true, // Weather listed first, must win
		},
		{
			ID:         "C2",
			PlannedEnd: date(2024, 1, 10),
			ActualEnd:  date(2024, 1, 12),
			// No flags set
		},
	}

	analysis := NewAnalyzer().Analyze(activities, now)

	if analysis.Assessments[0].Cause != "Weather" {
		t.Errorf("Expected Weather (first flag), got %q", analysis.Assessments[0].Cause)
	}
	if analysis.Assessments[1].Cause != "Unknown" {
		t.Errorf("Expected Unknown fallback, got %q", analysis.Assessments[1].Cause)
	}
	if analysis.ByCause["Weather"] != 1 || analysis.ByCause["Unknown"] != 1 {
		t.Errorf("Unexpected cause tally: %v", analysis.ByCause)
	}
}

func TestAnalyze_AvgAndCounts(t *testing.T) {
	now := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	activities := []model.Activity{
		{ID: "D1", PlannedEnd: date(2024, 1, 10), ActualEnd: date(2024, 1, 14)}, // +4
		{ID: "D2", PlannedEnd: date(2024, 1, 10), ActualEnd: date(2024, 1, 12)}, // +2
		{ID: "D3", PlannedEnd: date(2024, 1, 10), ActualEnd: date(2024, 1, 8)},  // -2
		{ID: "D4", PlannedEnd: date(2024, 1, 10), ActualEnd: date(2024, 1, 10)}, // 0
	}

	analysis := NewAnalyzer().Analyze(activities, now)

	if analysis.DelayedCount != 2 || analysis.AheadCount != 1 || analysis.OnTrackCount != 1 {
		t.Errorf("Unexpected counts: delayed=%d ahead=%d onTrack=%d",
			analysis.DelayedCount, analysis.AheadCount, analysis.OnTrackCount)
	}
	if analysis.AvgDelayDays != 3 {
		t.Errorf("Expected avg delay 3.0 over delayed activities, got %v", analysis.AvgDelayDays)
	}
}

func TestAnalyze_EmptyInput(t *testing.T) {
	analysis := NewAnalyzer().Analyze(nil, time.Now())
	if len(analysis.Assessments) != 0 {
		t.Errorf("Expected empty assessments, got %d", len(analysis.Assessments))
	}
	if len(analysis.Recommendations) != 0 {
		t.Errorf("Expected no recommendations for empty input, got %v", analysis.Recommendations)
	}
}
