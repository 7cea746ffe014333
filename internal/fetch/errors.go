// internal/fetch/errors.go
package fetch

import (
	"errors"
	"fmt"
)

// Error is the hard-failure result of a fetch: a malformed URL, a transport
// failure, or a non-2xx upstream response. StatusCode is zero unless an HTTP
// response was actually received.
type Error struct {
	URL        string
	StatusCode int
	Status     string
	Message    string
	Cause      error
}

func (e *Error) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("fetch %s: %s", e.URL, e.Message)
	}
	if e.Cause != nil {
		return fmt.Sprintf("fetch %s: %s: %v", e.URL, e.Message, e.Cause)
	}
	return fmt.Sprintf("fetch %s: %s", e.URL, e.Message)
}

func (e *Error) Unwrap() error {
	return e.Cause
}

// AsError extracts a *Error from an error chain.
func AsError(err error) (*Error, bool) {
	var fe *Error
	if errors.As(err, &fe) {
		return fe, true
	}
	return nil, false
}
