package gateway

import (
	"fmt"
	"time"
)

// RequestError is returned when the search API answers with a non-success
// HTTP status other than a rate-limit signal.
type RequestError struct {
	Status  int
	Message string
}

func (e *RequestError) Error() string {
	return fmt.Sprintf("repository search failed with status %d: %s", e.Status, e.Message)
}

// RateLimitError is returned when the API reports an exhausted quota. The
// caller decides whether to wait until ResetAt and resubmit; the gateway
// itself never sleeps unless the waiting transport was opted into.
type RateLimitError struct {
	ResetAt time.Time
}

func (e *RateLimitError) Error() string {
	return fmt.Sprintf("rate limit exhausted, resets at %s", e.ResetAt.UTC().Format(time.RFC3339))
}

// ParseError is returned when the response body is not well-formed JSON.
type ParseError struct {
	Err error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("malformed search response: %v", e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }
