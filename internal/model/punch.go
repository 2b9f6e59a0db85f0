package model

// PunchItem represents a single deficiency extracted from walkthrough notes
type PunchItem struct {
	Description       string  `json:"description"`                  // The observation text itself
	Location          string  `json:"location"`                     // Matched location phrase or default
	Trade             string  `json:"trade"`                        // Responsible trade
	Priority          string  `json:"priority"`                     // Critical, High, Medium, Low
	Category          string  `json:"category"`                     // Touch-up, Repair, ...
	SuggestedAssignee string  `json:"suggested_assignee,omitempty"` // Company from the trade map, or "TBD"
	EstimatedHours    float64 `json:"estimated_hours"`              // Rounded to nearest half hour
}

// PunchSummary aggregates a punch list by dimension
type PunchSummary struct {
	TotalItems int            `json:"total_items"`
	TotalHours float64        `json:"total_hours"`
	ByTrade    map[string]int `json:"by_trade"`
	ByPriority map[string]int `json:"by_priority"`
	ByCategory map[string]int `json:"by_category"`
}

// PunchList is the complete result of a punch-list extraction
type PunchList struct {
	Items           []PunchItem  `json:"items"`
	Summary         PunchSummary `json:"summary"`
	Recommendations []string     `json:"recommendations,omitempty"`
}
