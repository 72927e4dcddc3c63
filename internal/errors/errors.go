// Package errors defines custom error types for better error handling and debugging.
// MapperError provides context-aware error reporting with type classification
// and a mapping to HTTP status codes.
package errors

import (
	"errors"
	"fmt"
	"net/http"
)

// MapperError represents errors that occur while mapping a media identifier
// to stream sources.
type MapperError struct {
	Type    string
	Message string
	Cause   error
}

func (e *MapperError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (caused by: %v)", e.Type, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Type, e.Message)
}

func (e *MapperError) Unwrap() error {
	return e.Cause
}

// Error type constants
const (
	ErrorTypeTitleLookupFailed = "TITLE_LOOKUP_FAILED"
	ErrorTypeResolutionFailed  = "RESOLUTION_FAILED"
	ErrorTypeEpisodeNotFound   = "EPISODE_NOT_FOUND"
	ErrorTypeNoServersFound    = "NO_SERVERS_FOUND"
	ErrorTypeHostUnreachable   = "HOST_UNREACHABLE"
	ErrorTypeInvalidID         = "INVALID_ID"
)

// NewMapperError creates a new MapperError
func NewMapperError(errorType, message string, cause error) *MapperError {
	return &MapperError{
		Type:    errorType,
		Message: message,
		Cause:   cause,
	}
}

// NewTitleLookupError reports a metadata service failure.
func NewTitleLookupError(cause error) *MapperError {
	return NewMapperError(ErrorTypeTitleLookupFailed, "failed to fetch title from AniList", cause)
}

// NewResolutionError reports that every search attempt was exhausted.
func NewResolutionError(title string) *MapperError {
	return NewMapperError(ErrorTypeResolutionFailed, fmt.Sprintf("no match found on host for %q", title), nil)
}

// NewEpisodeNotFoundError reports a missing episode number.
func NewEpisodeNotFoundError(number string) *MapperError {
	return NewMapperError(ErrorTypeEpisodeNotFound, fmt.Sprintf("episode %s not found", number), nil)
}

// NewNoServersError reports an episode with an empty server listing.
func NewNoServersError() *MapperError {
	return NewMapperError(ErrorTypeNoServersFound, "no servers found for this episode", nil)
}

// NewHostError reports a failed call to the content host.
func NewHostError(message string, cause error) *MapperError {
	return NewMapperError(ErrorTypeHostUnreachable, message, cause)
}

// NewInvalidIDError creates an invalid ID error
func NewInvalidIDError(id string) *MapperError {
	return NewMapperError(ErrorTypeInvalidID, fmt.Sprintf("invalid mapping ID format: %s", id), nil)
}

// HTTPStatus maps an error to the HTTP status code reported at the boundary.
// Not-found conditions map to 404, malformed input to 400, everything else
// to 500.
func HTTPStatus(err error) int {
	var me *MapperError
	if !errors.As(err, &me) {
		return http.StatusInternalServerError
	}
	switch me.Type {
	case ErrorTypeEpisodeNotFound, ErrorTypeNoServersFound:
		return http.StatusNotFound
	case ErrorTypeInvalidID:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
