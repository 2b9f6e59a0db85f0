package model

import "time"

// ActionItem represents a follow-up commitment extracted from meeting notes
type ActionItem struct {
	Action       string     `json:"action"`                 // Normalized action text
	Owner        string     `json:"owner"`                  // Team member name, role label, or "TBD"
	DueDate      *time.Time `json:"due_date,omitempty"`     // Resolved against the meeting date
	Priority     string     `json:"priority"`               // Critical, High, Medium, Low
	Category     string     `json:"category"`               // RFI, Submittals, Schedule, ...
	Context      string     `json:"context,omitempty"`      // Section heading the item appeared under
	OriginalText string     `json:"original_text"`          // Unmodified candidate unit
}

// ActionSummary aggregates extracted action items by dimension
type ActionSummary struct {
	TotalItems int            `json:"total_items"`
	ByOwner    map[string]int `json:"by_owner"`
	ByCategory map[string]int `json:"by_category"`
	ByPriority map[string]int `json:"by_priority"`
	WithDue    int            `json:"with_due_date"`
}

// ActionList is the complete result of an action-item extraction
type ActionList struct {
	Items   []ActionItem  `json:"items"`
	Summary ActionSummary `json:"summary"`
}
