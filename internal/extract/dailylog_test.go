package extract

import (
	"testing"
	"time"
)

var logDate = time.Date(2024, 5, 20, 0, 0, 0, 0, time.UTC)

func TestDailyLogExtractor_FullNotes(t *testing.T) {
	e := NewDailyLogExtractor(testDefaults(), 5)

	notes := `Sunny, 72 degrees, light wind
6 electricians pulling wire on level 2, 8 hours
4 plumbers roughing in unit 302, 6 hours
Drywall hanging on floor 3 about 60% complete
Toolbox talk on ladder safety held this morning
Rebar delivery received at the loading dock
Waiting on RFI response for the stair detail`

	log := e.Extract(notes, logDate)

	if log.Weather == "" {
		t.Error("Expected weather captured")
	}
	if len(log.SafetyNotes) != 1 {
		t.Errorf("Expected 1 safety note, got %d", len(log.SafetyNotes))
	}
	if len(log.Deliveries) != 1 {
		t.Errorf("Expected 1 delivery, got %d", len(log.Deliveries))
	}
	if len(log.Issues) != 1 {
		t.Errorf("Expected 1 issue, got %d", len(log.Issues))
	}
	if len(log.Manpower) != 2 {
		t.Fatalf("Expected 2 manpower entries, got %d: %+v", len(log.Manpower), log.Manpower)
	}
	if len(log.Activities) != 1 {
		t.Fatalf("Expected 1 activity, got %d: %+v", len(log.Activities), log.Activities)
	}

	// 6 electricians * 8h + 4 plumbers * 6h
	if log.Summary.TotalWorkers != 10 {
		t.Errorf("Expected 10 total workers, got %d", log.Summary.TotalWorkers)
	}
	if log.Summary.TotalHours != 72 {
		t.Errorf("Expected 72 total hours, got %v", log.Summary.TotalHours)
	}

	activity := log.Activities[0]
	if activity.Trade != "Drywall" {
		t.Errorf("Expected Drywall activity, got %q", activity.Trade)
	}
	if activity.PercentComplete == nil || *activity.PercentComplete != 60 {
		t.Errorf("Expected 60%% complete, got %v", activity.PercentComplete)
	}

	// All signal classes present, full coverage on counts and percents
	if log.Summary.QualityScore != 100 {
		t.Errorf("Expected quality 100, got %d", log.Summary.QualityScore)
	}
}

func TestDailyLogExtractor_ManpowerMerge(t *testing.T) {
	e := NewDailyLogExtractor(testDefaults(), 5)

	notes := `4 electricians on site in the morning, 4 hours
6 electricians on site after lunch, 4 hours`

	log := e.Extract(notes, logDate)

	if len(log.Manpower) != 1 {
		t.Fatalf("Expected merged entry per trade, got %d", len(log.Manpower))
	}
	entry := log.Manpower[0]
	if entry.Headcount != 6 {
		t.Errorf("Expected headcount max 6, got %d", entry.Headcount)
	}
	if entry.Hours != 8 {
		t.Errorf("Expected hours summed to 8, got %v", entry.Hours)
	}
	// 6 workers * 8 merged hours
	if log.Summary.TotalHours != 48 {
		t.Errorf("Expected 48 total hours, got %v", log.Summary.TotalHours)
	}
}

func TestDailyLogExtractor_EmptyNotesQuality(t *testing.T) {
	e := NewDailyLogExtractor(testDefaults(), 5)

	log := e.Extract("", logDate)

	// 100 - 30 (no activities) - 20 (no manpower) - 10 (no weather)
	// - 15 (no safety) = 25
	if log.Summary.QualityScore != 25 {
		t.Errorf("Expected quality 25 for empty log, got %d", log.Summary.QualityScore)
	}
	if len(log.Activities) != 0 || len(log.Manpower) != 0 {
		t.Error("Expected empty log sections")
	}
	if len(log.Recommendations) == 0 {
		t.Error("Expected recommendations prompting better records")
	}
}

func TestDailyLogExtractor_ByTradePartition(t *testing.T) {
	e := NewDailyLogExtractor(testDefaults(), 5)

	notes := `Formwork stripped at the garage ramp
Hung doors at corridor 2
Set light fixtures in the break room`

	log := e.Extract(notes, logDate)

	total := 0
	for _, n := range log.Summary.ByTrade {
		total += n
	}
	if total != len(log.Activities) {
		t.Errorf("ByTrade %v does not partition %d activities", log.Summary.ByTrade, len(log.Activities))
	}
}
