// Package upstream holds the errors reported by the gym API client.
package upstream

import (
	"errors"
	"fmt"
)

var (
	ErrUnavailable = errors.New("gym API is unavailable")
	ErrRejected    = errors.New("gym API rejected the request")
	ErrNotFound    = errors.New("record not found in gym API")
)

// RejectedError is a non-2xx answer from the gym API.
type RejectedError struct {
	StatusCode int
	Message    string
}

func (e *RejectedError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("gym API returned status %d", e.StatusCode)
	}
	return fmt.Sprintf("gym API returned status %d: %s", e.StatusCode, e.Message)
}

func (e *RejectedError) Unwrap() error {
	if e.StatusCode == 404 {
		return ErrNotFound
	}
	return ErrRejected
}
