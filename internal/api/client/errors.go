package client

import (
	"errors"
	"fmt"
)

var (
	// ErrTransport is returned when a call produced no HTTP response:
	// connection failures, timeouts, cancellation, or an open breaker.
	ErrTransport = errors.New("storefront unreachable")

	// ErrMalformedResponse is returned when a response body is not the
	// expected JSON.
	ErrMalformedResponse = errors.New("malformed storefront response")
)

// StatusError reports an error status on a read: a page load or a Fetch.
type StatusError struct {
	StatusCode int
	Path       string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("loading %s: HTTP %d", e.Path, e.StatusCode)
}
