package checker

import "time"

const (
	// HTTP Timeouts
	DefaultHTTPTimeout = 30 * time.Second

	// Date format used on the wire and in messages
	DateLayout = "2006-01-02"
)
