package models

// ListParams captures the presentation inputs for one pipeline call.
type ListParams struct {
	Query    string
	Category string
	Page     int
}
