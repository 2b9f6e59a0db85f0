package model

import "time"

// WorkActivity represents a unit of work reported in field notes
type WorkActivity struct {
	Description     string `json:"description"`
	Trade           string `json:"trade"`
	Location        string `json:"location,omitempty"`
	PercentComplete *int   `json:"percent_complete,omitempty"` // Absent when the note carried no figure
}

// ManpowerEntry represents crew presence for one trade.
// Entries for the same trade merge: headcount by max, hours by sum.
type ManpowerEntry struct {
	Trade     string  `json:"trade"`
	Headcount int     `json:"headcount"`
	Hours     float64 `json:"hours"`
}

// DailyLogSummary carries the aggregate rollups for a generated log
type DailyLogSummary struct {
	ByTrade      map[string]int `json:"by_trade"` // Activity counts per trade
	TotalWorkers int            `json:"total_workers"`
	TotalHours   float64        `json:"total_hours"` // Sum of headcount * hours over manpower
	QualityScore int            `json:"quality_score"`
}

// DailyLog is the structured log generated from free-form field notes
type DailyLog struct {
	Date            time.Time       `json:"date"`
	Activities      []WorkActivity  `json:"activities"`
	Manpower        []ManpowerEntry `json:"manpower"`
	Weather         string          `json:"weather,omitempty"`
	SafetyNotes     []string        `json:"safety_notes,omitempty"`
	Deliveries      []string        `json:"deliveries,omitempty"`
	Issues          []string        `json:"issues,omitempty"`
	Summary         DailyLogSummary `json:"summary"`
	Recommendations []string        `json:"recommendations,omitempty"`
}
