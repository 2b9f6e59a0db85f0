package model

import "time"

// Activity represents a schedule activity with planned and actual dates.
// Delay-cause flags are booleans set by the scheduling system, not free text.
type Activity struct {
	ID             string     `yaml:"id" json:"id"`
	Name           string     `yaml:"name" json:"name"`
	PlannedStart   *time.Time `yaml:"planned_start" json:"planned_start,omitempty"`
	PlannedEnd     *time.Time `yaml:"planned_end" json:"planned_end,omitempty"`
	ActualStart    *time.Time `yaml:"actual_start" json:"actual_start,omitempty"`
	ActualEnd      *time.Time `yaml:"actual_end" json:"actual_end,omitempty"`
	IsCriticalPath bool       `yaml:"is_critical_path" json:"is_critical_path"`

	WeatherDelay       bool `yaml:"weather_delay" json:"weather_delay"`
	MaterialDelay      bool `yaml:"material_delay" json:"material_delay"`
	LaborShortage      bool `yaml:"labor_shortage" json:"labor_shortage"`
	RFIPending         bool `yaml:"rfi_pending" json:"rfi_pending"`
	ChangeOrderPending bool `yaml:"change_order_pending" json:"change_order_pending"`
	InspectionFailed   bool `yaml:"inspection_failed" json:"inspection_failed"`
}

// ActivityStatus is the schedule state of a single activity
type ActivityStatus string

const (
	StatusDelayed ActivityStatus = "delayed"
	StatusOnTrack ActivityStatus = "on_track"
	StatusAhead   ActivityStatus = "ahead"
)

// ActivityAssessment is the per-activity result of delay analysis
type ActivityAssessment struct {
	ActivityID     string         `json:"activity_id"`
	Name           string         `json:"name"`
	Status         ActivityStatus `json:"status"`
	DelayDays      int            `json:"delay_days"` // Negative when ahead of schedule
	Cause          string         `json:"cause,omitempty"`
	IsCriticalPath bool           `json:"is_critical_path"`
}

// DelayAnalysis is the project-level result of schedule delay analysis
type DelayAnalysis struct {
	Assessments          []ActivityAssessment `json:"assessments"`
	DelayedCount         int                  `json:"delayed_count"`
	OnTrackCount         int                  `json:"on_track_count"`
	AheadCount           int                  `json:"ahead_count"`
	AvgDelayDays         float64              `json:"avg_delay_days"` // Mean over delayed activities only
	CriticalPathAffected bool                 `json:"critical_path_affected"`
	ByCause              map[string]int       `json:"by_cause,omitempty"`
	Recommendations      []string             `json:"recommendations,omitempty"`
}
