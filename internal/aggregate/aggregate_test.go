package aggregate

import "testing"

type entry struct {
	trade     string
	headcount int
	hours     float64
}

func mergeEntries(old, next entry) entry {
	return entry{
		trade:     old.trade,
		headcount: MergeInt(PolicyMax, old.headcount, next.headcount),
		hours:     MergeFloat(PolicySum, old.hours, next.hours),
	}
}

func TestDedup_CaseInsensitiveFirstWins(t *testing.T) {
	items := []string{"Submit RFI to architect", "submit rfi to architect", "Order doors"}

	out := Dedup(items, func(s string) string { return Key(s) })

	if len(out) != 2 {
		t.Fatalf("Expected 2 items after dedup, got %d", len(out))
	}
	if out[0] != "Submit RFI to architect" {
		t.Errorf("Expected first occurrence retained, got %q", out[0])
	}
}

func TestDedup_Idempotent(t *testing.T) {
	items := []string{"a item one", "A ITEM ONE", "b item two", "b item two"}

	once := Dedup(items, func(s string) string { return Key(s) })
	twice := Dedup(once, func(s string) string { return Key(s) })

	if len(once) != len(twice) {
		t.Errorf("Dedup not idempotent: %d then %d", len(once), len(twice))
	}
}

func TestMergeBy_Policies(t *testing.T) {
	items := []entry{
		{"Electrical", 4, 8},
		{"Electrical", 6, 4},
		{"Plumbing", 2, 8},
	}

	out := MergeBy(items, func(e entry) string { return Key(e.trade) }, mergeEntries)

	if len(out) != 2 {
		t.Fatalf("Expected 2 merged entries, got %d", len(out))
	}
	if out[0].headcount != 6 {
		t.Errorf("Expected headcount max 6, got %d", out[0].headcount)
	}
	if out[0].hours != 12 {
		t.Errorf("Expected hours sum 12, got %v", out[0].hours)
	}
}

func TestMergeBy_Idempotent(t *testing.T) {
	items := []entry{
		{"Electrical", 4, 8},
		{"electrical", 6, 4},
	}

	key := func(e entry) string { return Key(e.trade) }
	once := MergeBy(items, key, mergeEntries)
	twice := MergeBy(once, key, mergeEntries)

	if len(once) != 1 || len(twice) != 1 {
		t.Fatalf("Expected single entry, got %d then %d", len(once), len(twice))
	}
	if once[0] != twice[0] {
		t.Errorf("Second merge changed the result: %+v vs %+v", once[0], twice[0])
	}
}

func TestMergeInt_LastWriteWins(t *testing.T) {
	if got := MergeInt(PolicyLast, 40, 75); got != 75 {
		t.Errorf("Expected 75, got %d", got)
	}
}

func TestTally_PartitionsItems(t *testing.T) {
	items := []entry{
		{"Electrical", 0, 0},
		{"Plumbing", 0, 0},
		{"Electrical", 0, 0},
		{"HVAC", 0, 0},
	}

	counts := Tally(items, func(e entry) string { return e.trade })

	total := 0
	for _, c := range counts {
		total += c
	}
	if total != len(items) {
		t.Errorf("Tally must partition the item set: sum %d, items %d", total, len(items))
	}
	if counts["Electrical"] != 2 {
		t.Errorf("Expected 2 electrical, got %d", counts["Electrical"])
	}
}

func TestQualityScore_EmptyLog(t *testing.T) {
	// Zero activities, zero manpower, no weather, no safety:
	// 100 - 30 - 20 - 10 - 15 = 25. Coverage penalties must not fire
	// when there are no entries to cover.
	score := QualityScore(QualityInputs{})
	if score != 25 {
		t.Errorf("Expected 25, got %d", score)
	}
}

func TestQualityScore_FullLog(t *testing.T) {
	score := QualityScore(QualityInputs{
		Activities:      5,
		ManpowerEntries: 3,
		HasWeather:      true,
		HasSafetyNotes:  true,
		WorkerCoverage:  1.0,
		PercentCoverage: 0.8,
	})
	if score != 100 {
		t.Errorf("Expected 100, got %d", score)
	}
}

func TestQualityScore_LowCoverage(t *testing.T) {
	score := QualityScore(QualityInputs{
		Activities:      5,
		ManpowerEntries: 3,
		HasWeather:      true,
		HasSafetyNotes:  true,
		WorkerCoverage:  0.2,
		PercentCoverage: 0.1,
	})
	if score != 85 {
		t.Errorf("Expected 100-10-5=85, got %d", score)
	}
}

func TestQualityScore_Floor(t *testing.T) {
	// All penalties cannot push below zero even if more are added later
	score := QualityScore(QualityInputs{})
	if score < 0 {
		t.Errorf("Quality score must be floored at 0, got %d", score)
	}
}
