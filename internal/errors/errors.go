// Package errors defines custom error types for better error handling and debugging.
// StreamError provides context-aware error reporting with type classification.
package errors

import (
	"errors"
	"fmt"
)

// StreamError represents errors that occur during stream resolution
type StreamError struct {
	Type    string
	Message string
	Cause   error
}

func (e *StreamError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (caused by: %v)", e.Type, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Type, e.Message)
}

func (e *StreamError) Unwrap() error {
	return e.Cause
}

// Error type constants
const (
	ErrorTypeMetadataNotFound    = "METADATA_NOT_FOUND"
	ErrorTypeUpstreamUnavailable = "UPSTREAM_UNAVAILABLE"
	ErrorTypeInvalidID           = "INVALID_ID"
)

// NewStreamError creates a new StreamError
func NewStreamError(errorType, message string, cause error) *StreamError {
	return &StreamError{
		Type:    errorType,
		Message: message,
		Cause:   cause,
	}
}

// NewMetadataNotFoundError reports that the metadata service had no results
// for the given external ID. This is fatal for the whole resolution.
func NewMetadataNotFoundError(imdbID string) *StreamError {
	return NewStreamError(ErrorTypeMetadataNotFound, fmt.Sprintf("no results found for IMDB ID %s", imdbID), nil)
}

// NewUpstreamError reports a failed outbound call (network error, non-2xx
// status or malformed body) to one of the upstream services.
func NewUpstreamError(service string, cause error) *StreamError {
	return NewStreamError(ErrorTypeUpstreamUnavailable, fmt.Sprintf("%s request failed", service), cause)
}

// NewInvalidIDError creates an invalid ID error
func NewInvalidIDError(id string) *StreamError {
	return NewStreamError(ErrorTypeInvalidID, fmt.Sprintf("invalid ID format: %s", id), nil)
}

// IsType reports whether err is a StreamError of the given type.
func IsType(err error, errorType string) bool {
	var se *StreamError
	return errors.As(err, &se) && se.Type == errorType
}
