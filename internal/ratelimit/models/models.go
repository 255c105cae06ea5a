package models

import "time"

// RateLimitResult is the outcome of one sliding-window check.
type RateLimitResult struct {
	Allowed   bool
	Limit     int
	Remaining int
	ResetAt   time.Time
	// RetryAfter is the number of whole seconds until the next request can
	// succeed; zero when Allowed.
	RetryAfter int
}

// RateLimitExceededResponse is the 429 response body.
type RateLimitExceededResponse struct {
	Error      string `json:"error"`
	Message    string `json:"error_description"`
	RetryAfter int    `json:"retry_after"`
}
