package extract

import (
	"testing"
)

func testDefaults() Defaults {
	return Defaults{
		Trade:    "General",
		Priority: "Medium",
		Location: "General",
		Owner:    "TBD",
	}
}

func TestPunchListExtractor_WorkedExample(t *testing.T) {
	e := NewPunchListExtractor(testDefaults(), map[string]string{
		"painting": "ProCoat Painting LLC",
	}, 10)

	list := e.Extract("Touch up paint in room 204, minor issue")

	if len(list.Items) != 1 {
		t.Fatalf("Expected 1 item, got %d", len(list.Items))
	}
	item := list.Items[0]

	if item.Trade != "Painting" {
		t.Errorf("Expected trade Painting, got %q", item.Trade)
	}
	if item.Category != "Touch-up" {
		t.Errorf("Expected category Touch-up, got %q", item.Category)
	}
	if item.Priority != "Medium" {
		t.Errorf("Expected caller default priority (no urgency keyword), got %q", item.Priority)
	}
	if item.Location != "room 204" {
		t.Errorf("Expected location 'room 204', got %q", item.Location)
	}
	// Touch-up base 0.5, halved by "minor" to 0.25, rounded per
	// round(h*2)/2 back up to the half-hour minimum.
	if item.EstimatedHours != 0.5 {
		t.Errorf("Expected 0.5 estimated hours, got %v", item.EstimatedHours)
	}
	if item.SuggestedAssignee != "ProCoat Painting LLC" {
		t.Errorf("Expected assignee from trade map, got %q", item.SuggestedAssignee)
	}
}

func TestPunchListExtractor_HoursRounding(t *testing.T) {
	e := NewPunchListExtractor(testDefaults(), nil, 10)

	cases := []struct {
		unit string
		want float64
	}{
		{"Repair damaged drywall corner in corridor", 2},        // Repair base 2
		{"Major repair of damaged drywall in corridor", 4},      // 2 doubled
		{"Minor repair of scuffed drywall in corridor", 1},      // 2 halved
		{"Replace missing ceiling tiles in break room", 4},      // Replace/Install base
		{"Adjust slightly misaligned cabinet door in kitchen", 0.5}, // 1 halved
	}

	for _, tc := range cases {
		list := e.Extract(tc.unit)
		if len(list.Items) != 1 {
			t.Fatalf("Extract(%q): expected 1 item, got %d", tc.unit, len(list.Items))
		}
		if got := list.Items[0].EstimatedHours; got != tc.want {
			t.Errorf("Extract(%q): expected %v hours, got %v", tc.unit, tc.want, got)
		}
	}
}

func TestPunchListExtractor_DedupAndSummary(t *testing.T) {
	e := NewPunchListExtractor(testDefaults(), nil, 10)

	notes := `- Touch up paint in room 204
- touch up paint in room 204
- Replace cracked outlet cover in room 101
- Urgent: water leak under sink in unit 302`

	list := e.Extract(notes)

	if len(list.Items) != 3 {
		t.Fatalf("Expected 3 items after case-insensitive dedup, got %d", len(list.Items))
	}

	// Partition invariant: every dimension tally sums to the item count
	for _, tally := range []map[string]int{list.Summary.ByTrade, list.Summary.ByPriority, list.Summary.ByCategory} {
		total := 0
		for _, n := range tally {
			total += n
		}
		if total != len(list.Items) {
			t.Errorf("Tally %v does not partition %d items", tally, len(list.Items))
		}
	}

	if list.Summary.ByPriority["Critical"] != 1 {
		t.Errorf("Expected 1 critical item from 'Urgent', got %d", list.Summary.ByPriority["Critical"])
	}
	if list.Summary.TotalItems != 3 {
		t.Errorf("Expected TotalItems 3, got %d", list.Summary.TotalItems)
	}
}

func TestPunchListExtractor_EmptyInput(t *testing.T) {
	e := NewPunchListExtractor(testDefaults(), nil, 10)

	for _, in := range []string{"", "   ", "\n\n"} {
		list := e.Extract(in)
		if len(list.Items) != 0 {
			t.Errorf("Extract(%q): expected no items, got %d", in, len(list.Items))
		}
		if len(list.Recommendations) == 0 {
			t.Errorf("Extract(%q): expected degraded-but-present recommendations", in)
		}
	}
}

func TestPunchListExtractor_AssigneeDefault(t *testing.T) {
	e := NewPunchListExtractor(testDefaults(), map[string]string{"electrical": "Volt Bros"}, 10)

	list := e.Extract("- Replace broken outlet in room 5A\n- Touch up paint at the main lobby")

	if list.Items[0].SuggestedAssignee != "Volt Bros" {
		t.Errorf("Expected mapped assignee, got %q", list.Items[0].SuggestedAssignee)
	}
	if list.Items[1].SuggestedAssignee != "TBD" {
		t.Errorf("Expected TBD for unmapped trade, got %q", list.Items[1].SuggestedAssignee)
	}
}
