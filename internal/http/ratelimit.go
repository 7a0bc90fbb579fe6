package http

import (
	"net/http"
	"sync"

	"github.com/forgekit-io/golab/pkg/golab"
)

// rateLimitTracker holds the rate-limit telemetry mirrored from response
// headers. Updates are plain last-write-wins overwrites; the mutex only
// keeps concurrent callers race-free.
type rateLimitTracker struct {
	mu    sync.Mutex
	state golab.RateLimitState
}

// UpdateFromHeaders overwrites both telemetry fields from the response
// headers. An absent header clears the corresponding field.
func (t *rateLimitTracker) UpdateFromHeaders(headers http.Header) {
	var remaining, reset *string

	if value := headers.Get(HeaderRateLimitRemaining); value != "" {
		remaining = &value
	}

	if value := headers.Get(HeaderRateLimitReset); value != "" {
		reset = &value
	}

	t.mu.Lock()
	t.state = golab.RateLimitState{Remaining: remaining, Reset: reset}
	t.mu.Unlock()
}

// State returns a copy of the current telemetry.
func (t *rateLimitTracker) State() golab.RateLimitState {
	t.mu.Lock()
	defer t.mu.Unlock()

	return t.state
}
