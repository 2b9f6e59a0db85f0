package fields

import (
	"testing"
	"time"
)

func TestLocation_RoomNumber(t *testing.T) {
	got := Location("Touch up paint in room 204, minor issue", "General")
	if got != "room 204" {
		t.Errorf("Expected 'room 204', got %q", got)
	}
}

func TestLocation_Priority(t *testing.T) {
	// Room number beats the generic named-space rule
	got := Location("Patch wall in room 12 near the lobby", "General")
	if got != "room 12" {
		t.Errorf("Expected room match to win, got %q", got)
	}
}

func TestLocation_NamedSpaces(t *testing.T) {
	cases := []struct {
		unit string
		want string
	}{
		{"Clean windows at the main lobby", "main lobby"},
		{"Handrail loose at north stairwell", "north stairwell"},
		{"Replace diffuser on floor 3", "floor 3"},
		{"Leak under sink in unit 302", "unit 302"},
	}
	for _, tc := range cases {
		if got := Location(tc.unit, "General"); got != tc.want {
			t.Errorf("Location(%q) = %q, want %q", tc.unit, got, tc.want)
		}
	}
}

func TestLocation_Fallback(t *testing.T) {
	if got := Location("Fix the thing", "General"); got != "General" {
		t.Errorf("Expected fallback, got %q", got)
	}
	if got := Location("Fix the thing", "Building A"); got != "Building A" {
		t.Errorf("Expected caller default, got %q", got)
	}
}

func TestDueDate_ThisWeekResolvesToFriday(t *testing.T) {
	// Wednesday 2024-01-10: "this week" resolves to Friday 2024-01-12,
	// not the following week.
	base := time.Date(2024, 1, 10, 14, 30, 0, 0, time.UTC)

	got := DueDate("Submit the revised drawings by this week", base)
	if got == nil {
		t.Fatal("Expected a due date")
	}
	want := time.Date(2024, 1, 12, 0, 0, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Errorf("Expected %v, got %v", want, got)
	}
}

func TestDueDate_FridayOnFriday(t *testing.T) {
	// Base already Friday: next Friday is a full week out
	base := time.Date(2024, 1, 12, 9, 0, 0, 0, time.UTC)

	got := DueDate("Close out the RFI by friday", base)
	if got == nil {
		t.Fatal("Expected a due date")
	}
	want := time.Date(2024, 1, 19, 0, 0, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Errorf("Expected %v, got %v", want, got)
	}
}

func TestDueDate_UrgencyResolvesToBase(t *testing.T) {
	base := time.Date(2024, 1, 10, 14, 30, 0, 0, time.UTC)

	got := DueDate("Need the inspection scheduled ASAP", base)
	if got == nil {
		t.Fatal("Expected a due date")
	}
	want := time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Errorf("Expected base date, got %v", got)
	}
}

func TestDueDate_WithinDays(t *testing.T) {
	base := time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC)

	got := DueDate("Deliver the hardware within 5 days", base)
	if got == nil {
		t.Fatal("Expected a due date")
	}
	want := time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Errorf("Expected %v, got %v", want, got)
	}

	got = DueDate("Order the glass within 2 weeks", base)
	if got == nil {
		t.Fatal("Expected a due date")
	}
	want = time.Date(2024, 1, 24, 0, 0, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Errorf("Expected %v, got %v", want, got)
	}
}

func TestDueDate_NextWeek(t *testing.T) {
	base := time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC)

	got := DueDate("Review the pay app next week", base)
	if got == nil {
		t.Fatal("Expected a due date")
	}
	want := time.Date(2024, 1, 19, 0, 0, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Errorf("Expected the Friday of the following week, got %v", got)
	}
}

func TestDueDate_EndOfMonth(t *testing.T) {
	base := time.Date(2024, 2, 10, 0, 0, 0, 0, time.UTC)

	got := DueDate("Finalize the budget by EOM", base)
	if got == nil {
		t.Fatal("Expected a due date")
	}
	want := time.Date(2024, 2, 29, 0, 0, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Errorf("Expected %v, got %v", want, got)
	}
}

func TestDueDate_NoSignal(t *testing.T) {
	base := time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC)
	if got := DueDate("Coordinate with the electrician", base); got != nil {
		t.Errorf("Expected nil due date, got %v", got)
	}
}

func TestWorkers(t *testing.T) {
	if got := Workers("6 electricians pulling wire on level 2"); got != 6 {
		t.Errorf("Expected 6, got %d", got)
	}
	if got := Workers("crew continued drywall"); got != 0 {
		t.Errorf("Expected default 0, got %d", got)
	}
}

func TestHours(t *testing.T) {
	if got := Hours("crew of 4 worked 10 hours on the slab"); got != 10 {
		t.Errorf("Expected 10, got %v", got)
	}
	if got := Hours("crew of 4 on the slab"); got != DefaultHours {
		t.Errorf("Expected default %v, got %v", DefaultHours, got)
	}
}

func TestPercentComplete(t *testing.T) {
	if got, ok := PercentComplete("rough-in about 75% complete"); !ok || got != 75 {
		t.Errorf("Expected 75, got %d (ok=%v)", got, ok)
	}
	if got, ok := PercentComplete("overreported at 250% complete"); !ok || got != 100 {
		t.Errorf("Expected clamp to 100, got %d (ok=%v)", got, ok)
	}
	if _, ok := PercentComplete("no figure mentioned"); ok {
		t.Error("Expected no match")
	}
}
