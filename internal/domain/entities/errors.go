package entities

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound is returned when no entity matches a lookup.
	ErrNotFound = errors.New("entity not found")
	// ErrInvalidCategory is returned for unknown category names.
	ErrInvalidCategory = errors.New("invalid category")
	// ErrMalformedPayload is returned when an upstream body is not JSON at all.
	ErrMalformedPayload = errors.New("malformed payload")
)

// RemoteFetchError reports a failed call to the upstream catalog API.
// StatusCode is 0 when the request never got a response.
type RemoteFetchError struct {
	Category   Category
	URL        string
	StatusCode int
	Body       string
	Err        error
}

func (e *RemoteFetchError) Error() string {
	if e.StatusCode == 0 {
		return fmt.Sprintf("fetching %s from %s: %v", e.Category.Path(), e.URL, e.Err)
	}
	if e.Body != "" {
		return fmt.Sprintf("fetching %s from %s: status %d: %s", e.Category.Path(), e.URL, e.StatusCode, e.Body)
	}
	return fmt.Sprintf("fetching %s from %s: status %d", e.Category.Path(), e.URL, e.StatusCode)
}

func (e *RemoteFetchError) Unwrap() error {
	return e.Err
}
