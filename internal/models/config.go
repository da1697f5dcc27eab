package models

import "time"

// FeedConfig contains runtime options for fetching the job feed.
type FeedConfig struct {
	URL        string
	Proxies    []string
	Timeout    time.Duration
	UserAgents []string
}
