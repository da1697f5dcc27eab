package models

// Job is the canonical posting produced by the feed decoder. Every field is
// filled in; missing source values are replaced with defaults.
type Job struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Company     string `json:"company"`
	Location    string `json:"location"`
	ApplyLink   string `json:"apply_link"`
	PostedOn    string `json:"posted_on"`
	Category    string `json:"category"`
	Description string `json:"description"`
	Salary      string `json:"salary"`
	Type        string `json:"type"`
}
