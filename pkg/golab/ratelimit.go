package golab

import (
	"strconv"
	"time"
)

// RateLimitState mirrors the RateLimit-Remaining and RateLimit-Reset
// response headers of the most recent request made through a client.
// A nil field means the corresponding header was absent on that response.
// The client records this telemetry on every response, success or failure,
// and never acts on it; backing off is the caller's decision.
type RateLimitState struct {
	Remaining *string
	Reset     *string
}

// RemainingRequests parses the Remaining field as an integer. The second
// return value is false when the header was absent or unparsable.
func (s RateLimitState) RemainingRequests() (int, bool) {
	if s.Remaining == nil {
		return 0, false
	}

	n, err := strconv.Atoi(*s.Remaining)
	if err != nil {
		return 0, false
	}

	return n, true
}

// ResetAt parses the Reset field as a Unix timestamp. The second return
// value is false when the header was absent or unparsable.
func (s RateLimitState) ResetAt() (time.Time, bool) {
	if s.Reset == nil {
		return time.Time{}, false
	}

	unix, err := strconv.ParseInt(*s.Reset, 10, 64)
	if err != nil {
		return time.Time{}, false
	}

	return time.Unix(unix, 0), true
}
