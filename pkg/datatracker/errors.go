package datatracker

import (
	"errors"
	"fmt"
)

// NotFoundError is returned when a request completed but the response
// status was not a success, or when a lookup matched no entity. The API
// does not distinguish authorization failures from true absence; every
// non-2xx status collapses into this error.
type NotFoundError struct {
	Path       string
	StatusCode int
}

// Error implements the error interface.
func (e *NotFoundError) Error() string {
	if e.StatusCode == 0 {
		return fmt.Sprintf("resource not found: %s", e.Path)
	}

	return fmt.Sprintf("resource not found: %s (status %d)", e.Path, e.StatusCode)
}

// TransportError is returned when a request could not be completed, or
// when the response body failed to decode into the expected shape.
type TransportError struct {
	Path string
	Err  error
}

// Error implements the error interface.
func (e *TransportError) Error() string {
	return fmt.Sprintf("request failed: %s: %v", e.Path, e.Err)
}

// Unwrap returns the underlying cause.
func (e *TransportError) Unwrap() error {
	return e.Err
}

// ErrNoMoreItems is returned by PageIterator.Next once the sequence is
// exhausted.
var ErrNoMoreItems = errors.New("no more items")

// IsNotFound reports whether err is a NotFoundError anywhere in its chain.
func IsNotFound(err error) bool {
	var notFound *NotFoundError

	return errors.As(err, &notFound)
}

// IsTransport reports whether err is a TransportError anywhere in its chain.
func IsTransport(err error) bool {
	var transport *TransportError

	return errors.As(err, &transport)
}
