package model

// TeamMember represents a project team member supplied as context
type TeamMember struct {
	Name    string `yaml:"name" json:"name"`
	Role    string `yaml:"role" json:"role"`
	Company string `yaml:"company,omitempty" json:"company,omitempty"`
}

// Subcontractor represents a trade contractor on the project
type Subcontractor struct {
	ID          string `yaml:"id,omitempty" json:"id,omitempty"`
	CompanyName string `yaml:"company_name" json:"company_name"`
	Trade       string `yaml:"trade" json:"trade"`
}

// RFI represents a past request for information used for routing similarity
type RFI struct {
	ID         string `yaml:"id" json:"id"`
	Subject    string `yaml:"subject" json:"subject"`
	Question   string `yaml:"question,omitempty" json:"question,omitempty"`
	AssignedTo string `yaml:"assigned_to,omitempty" json:"assigned_to,omitempty"`
	Trade      string `yaml:"trade,omitempty" json:"trade,omitempty"`
}

// RFIMatch pairs a past RFI with its similarity score to a new question
type RFIMatch struct {
	RFI   RFI `json:"rfi"`
	Score int `json:"score"`
}

// RFIRouting is the routing suggestion for a new RFI
type RFIRouting struct {
	SuggestedTrade   string     `json:"suggested_trade"`
	SuggestedCompany string     `json:"suggested_company,omitempty"`
	SimilarRFIs      []RFIMatch `json:"similar_rfis,omitempty"`
}

// Record is a searchable entity of any type. Fields carries the free-text
// values the relevance scorer runs against; empty entries are skipped.
type Record struct {
	Type   string   `yaml:"type" json:"type"` // rfi, submittal, document, daily_report, punch_item, change_order, task
	ID     string   `yaml:"id" json:"id"`
	Title  string   `yaml:"title" json:"title"`
	Fields []string `yaml:"fields" json:"fields"`
}

// Match is a scored search result
type Match struct {
	Type  string `json:"type"`
	ID    string `json:"id"`
	Title string `json:"title"`
	Score int    `json:"score"`
}
