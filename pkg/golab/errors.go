package golab

import (
	"errors"
	"fmt"
)

// ErrorKind discriminates the failure classes produced for non-2xx API
// responses. Callers switch on the kind instead of subclassing.
type ErrorKind string

const (
	// ErrorKindAPI represents any non-2xx status without a narrower kind.
	ErrorKindAPI ErrorKind = "api"

	// ErrorKindAuthentication represents 401 responses.
	ErrorKindAuthentication ErrorKind = "authentication"

	// ErrorKindNotFound represents 404 responses.
	ErrorKindNotFound ErrorKind = "not_found"

	// ErrorKindRateLimit represents 429 responses.
	ErrorKindRateLimit ErrorKind = "rate_limit"
)

// Error is the typed error produced for every non-2xx API response. It
// always carries the status code, the raw response body text, and the
// fully-qualified request URL for diagnostics.
type Error struct {
	Kind         ErrorKind
	StatusCode   int
	ResponseBody string
	URL          string
	Message      string
}

// Error implements the error interface.
func (e *Error) Error() string {
	return e.Message
}

// NewHTTPError classifies a non-2xx response into the error taxonomy by
// status code. Every non-2xx response maps to exactly one kind.
func NewHTTPError(statusCode int, body, url string) *Error {
	err := &Error{
		StatusCode:   statusCode,
		ResponseBody: body,
		URL:          url,
	}

	switch statusCode {
	case 401:
		err.Kind = ErrorKindAuthentication
		err.Message = "Authentication failed: " + body
	case 404:
		err.Kind = ErrorKindNotFound
		err.Message = "Resource not found: " + body
	case 429:
		err.Kind = ErrorKindRateLimit
		err.Message = "Rate limit exceeded: " + body
	default:
		err.Kind = ErrorKindAPI
		err.Message = fmt.Sprintf("HTTP error %d: %s", statusCode, body)
	}

	return err
}

// Static errors for construction-time validation.
var (
	ErrConfigRequired = errors.New("config is required")
	ErrHostRequired   = errors.New("host is required")
	ErrTokenRequired  = errors.New("token is required")
)

// ErrNotACollection is returned when a paginated call path reached an
// endpoint whose payload is not a sequence.
var ErrNotACollection = errors.New("response payload is not a collection")

func asError(err error) (*Error, bool) {
	apiErr := &Error{}
	if errors.As(err, &apiErr) {
		return apiErr, true
	}

	return nil, false
}

// IsAPIError checks if the error carries an HTTP status classification of
// any kind. Transport-level failures report false.
func IsAPIError(err error) bool {
	_, ok := asError(err)

	return ok
}

// IsAuthentication checks if the error is a 401 authentication error.
func IsAuthentication(err error) bool {
	apiErr, ok := asError(err)

	return ok && apiErr.Kind == ErrorKindAuthentication
}

// IsNotFound checks if the error is a 404 not found error.
func IsNotFound(err error) bool {
	apiErr, ok := asError(err)

	return ok && apiErr.Kind == ErrorKindNotFound
}

// IsRateLimit checks if the error is a 429 rate limit error.
func IsRateLimit(err error) bool {
	apiErr, ok := asError(err)

	return ok && apiErr.Kind == ErrorKindRateLimit
}
