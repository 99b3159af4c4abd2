package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptyQuery is returned for an empty or whitespace-only query.
	// No request is issued for it.
	ErrEmptyQuery = errors.New("query is empty")

	// ErrNotFound marks a well-formed response with no entries.
	ErrNotFound = errors.New("no definitions found")
)

// HTTPError is a non-2xx response from the dictionary service
type HTTPError struct {
	Status int
	Body   string
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("HTTP %d: %s", e.Status, e.Body)
}

// NetworkError is a transport failure before any response arrived
type NetworkError struct {
	Err error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("network error: %v", e.Err)
}

func (e *NetworkError) Unwrap() error { return e.Err }

// ParseError is a 2xx response whose body is not valid JSON
type ParseError struct {
	Err error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse response: %v", e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }
