package score

import "testing"

func TestRelevance_WorkedExample(t *testing.T) {
	// "concrete": 30 substring + 20 whole word; "pour": 30 + 20.
	// Sum 100, clamped at 100.
	got := Relevance([]string{"concrete", "pour"}, []string{"Concrete pour scheduled for Monday"})
	if got != 100 {
		t.Errorf("Expected 100, got %d", got)
	}
}

func TestRelevance_SubstringOnly(t *testing.T) {
	// "pour" appears only inside "pouring": substring points, no word bonus
	got := Relevance([]string{"pour"}, []string{"pouring resumed after lunch"})
	if got != 30 {
		t.Errorf("Expected 30, got %d", got)
	}
}

func TestRelevance_WholeWordStacks(t *testing.T) {
	got := Relevance([]string{"door"}, []string{"door closer adjustment"})
	if got != 50 {
		t.Errorf("Expected 30+20=50, got %d", got)
	}
}

func TestRelevance_NoMatch(t *testing.T) {
	got := Relevance([]string{"concrete"}, []string{"drywall taping complete"})
	if got != 0 {
		t.Errorf("Expected 0, got %d", got)
	}
}

func TestRelevance_Bounds(t *testing.T) {
	terms := []string{"a1", "b2", "c3", "d4", "e5", "f6", "g7"}
	fields := []string{"a1 b2 c3 d4 e5 f6 g7"}

	got := Relevance(terms, fields)
	if got < 0 || got > 100 {
		t.Fatalf("Score out of bounds: %d", got)
	}
	if got != 100 {
		t.Errorf("Expected clamp at 100, got %d", got)
	}

	if got := Relevance(nil, fields); got != 0 {
		t.Errorf("Expected 0 for empty terms, got %d", got)
	}
	if got := Relevance(terms, nil); got != 0 {
		t.Errorf("Expected 0 for empty fields, got %d", got)
	}
	if got := Relevance(terms, []string{"", ""}); got != 0 {
		t.Errorf("Expected 0 for blank fields, got %d", got)
	}
}

func TestRelevance_SkipsEmptyFields(t *testing.T) {
	got := Relevance([]string{"tile"}, []string{"", "cracked tile in lobby", ""})
	if got != 50 {
		t.Errorf("Expected 50, got %d", got)
	}
}

func TestTerms(t *testing.T) {
	terms := Terms("What is the spec for the concrete pour?")

	want := map[string]bool{"spec": true, "concrete": true, "pour": true}
	if len(terms) != len(want) {
		t.Fatalf("Expected %d terms, got %v", len(want), terms)
	}
	for _, term := range terms {
		if !want[term] {
			t.Errorf("Unexpected term %q", term)
		}
	}
}
