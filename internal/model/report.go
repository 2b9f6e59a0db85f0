package model

import (
	"strings"
	"time"
)

// ReportKind identifies which extractor produced a report
type ReportKind string

const (
	KindPunchList  ReportKind = "punch_list"
	KindActionList ReportKind = "action_items"
	KindDailyLog   ReportKind = "daily_log"
	KindDelays     ReportKind = "schedule_delays"
	KindRouting    ReportKind = "rfi_routing"
	KindSearch     ReportKind = "search"
)

// Report is the envelope for every fieldlens result. Exactly one of the
// payload fields is populated, matching Kind.
type Report struct {
	ID          string     `json:"id"` // UUID assigned at generation time
	Kind        ReportKind `json:"kind"`
	Subject     string     `json:"subject,omitempty"` // Input file, query, or caller-supplied label
	GeneratedAt time.Time  `json:"generated_at"`
	GeneratedBy string     `json:"generated_by,omitempty"` // Tool name and version

	PunchList  *PunchList     `json:"punch_list,omitempty"`
	ActionList *ActionList    `json:"action_items,omitempty"`
	DailyLog   *DailyLog      `json:"daily_log,omitempty"`
	Delays     *DelayAnalysis `json:"schedule_delays,omitempty"`
	Routing    *RFIRouting    `json:"rfi_routing,omitempty"`
	Matches    []Match        `json:"matches,omitempty"`
}

// ProjectContext carries the lightweight records the surrounding layer
// fetches before calling an extractor. All fields are optional; extractors
// degrade to defaults when context is missing.
type ProjectContext struct {
	Team           []TeamMember    `yaml:"team" json:"team,omitempty"`
	Subcontractors []Subcontractor `yaml:"subcontractors" json:"subcontractors,omitempty"`
	Activities     []Activity      `yaml:"activities" json:"activities,omitempty"`
	PastRFIs       []RFI           `yaml:"past_rfis" json:"past_rfis,omitempty"`
	Records        []Record        `yaml:"records" json:"records,omitempty"`
}

// TradeCompanies builds the trade-to-company map used for punch assignees
func (c *ProjectContext) TradeCompanies() map[string]string {
	if c == nil || len(c.Subcontractors) == 0 {
		return nil
	}
	m := make(map[string]string, len(c.Subcontractors))
	for _, sub := range c.Subcontractors {
		key := normalizeTrade(sub.Trade)
		if _, exists := m[key]; !exists {
			m[key] = sub.CompanyName
		}
	}
	return m
}

func normalizeTrade(trade string) string {
	return strings.ToLower(strings.TrimSpace(trade))
}
