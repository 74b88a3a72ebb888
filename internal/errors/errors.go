// Package errors provides shared error types for the Smithsonian Open Access client.
package errors

import (
	"context"
	stderrors "errors"
	"fmt"
	"net"
	"time"
)

// ValidationError indicates invalid caller-supplied parameters.
type ValidationError struct {
	Field   string // field name that failed validation
	Value   string // the invalid value (may be empty)
	Message string // human-readable error message
}

func (e *ValidationError) Error() string {
	if e.Field != "" && e.Value != "" {
		return fmt.Sprintf("validation failed for %s=%q: %s", e.Field, e.Value, e.Message)
	}
	if e.Field != "" {
		return fmt.Sprintf("validation failed for %s: %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation failed: %s", e.Message)
}

// NewValidationError creates a ValidationError.
func NewValidationError(field, value, message string) *ValidationError {
	return &ValidationError{
		Field:   field,
		Value:   value,
		Message: message,
	}
}

// NotFoundError indicates an entity does not exist upstream.
// It covers both a transport-level 404 and a 2xx response with an
// empty content object, so callers see a single failure kind.
type NotFoundError struct {
	EntityType string // "item", "category"
	Identifier string // item ID or category name
}

func (e *NotFoundError) Error() string {
	if e.EntityType != "" {
		return fmt.Sprintf("%s not found: %s", e.EntityType, e.Identifier)
	}
	return fmt.Sprintf("not found: %s", e.Identifier)
}

// NewNotFoundError creates a NotFoundError.
func NewNotFoundError(entityType, identifier string) *NotFoundError {
	return &NotFoundError{
		EntityType: entityType,
		Identifier: identifier,
	}
}

// UpstreamError indicates a non-2xx HTTP response from the Open Access API,
// or a transport failure that is neither a timeout nor a cancellation
// (StatusCode is zero in that case).
type UpstreamError struct {
	Endpoint   string // request path, e.g. "/search"
	StatusCode int
	Body       string // truncated response body for diagnostics
}

func (e *UpstreamError) Error() string {
	if e.StatusCode == 0 {
		return fmt.Sprintf("upstream request to %s failed: %s", e.Endpoint, e.Body)
	}
	if e.Body != "" {
		return fmt.Sprintf("upstream error %d on %s: %s", e.StatusCode, e.Endpoint, e.Body)
	}
	return fmt.Sprintf("upstream error %d on %s", e.StatusCode, e.Endpoint)
}

// ParseError indicates the response body was not valid JSON or lacked
// the expected envelope shape.
type ParseError struct {
	Endpoint string
	Err      error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("failed to parse response from %s: %v", e.Endpoint, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// TimeoutError indicates no response arrived within the configured bound.
type TimeoutError struct {
	Endpoint string
	Timeout  time.Duration
}

func (e *TimeoutError) Error() string {
	return fmt.Sprintf("request to %s timed out after %s", e.Endpoint, e.Timeout)
}

// CancelledError indicates the invocation was aborted by the caller.
type CancelledError struct {
	Endpoint string
}

func (e *CancelledError) Error() string {
	return fmt.Sprintf("request to %s was cancelled", e.Endpoint)
}

// IsValidation returns true if the error is a ValidationError.
func IsValidation(err error) bool {
	var ve *ValidationError
	return stderrors.As(err, &ve)
}

// IsNotFound returns true if the error is a NotFoundError.
func IsNotFound(err error) bool {
	var nf *NotFoundError
	return stderrors.As(err, &nf)
}

// IsUpstream returns true if the error is an UpstreamError.
func IsUpstream(err error) bool {
	var ue *UpstreamError
	return stderrors.As(err, &ue)
}

// IsParse returns true if the error is a ParseError.
func IsParse(err error) bool {
	var pe *ParseError
	return stderrors.As(err, &pe)
}

// IsTimeout returns true if the error is a TimeoutError.
func IsTimeout(err error) bool {
	var te *TimeoutError
	return stderrors.As(err, &te)
}

// IsCancelled returns true if the error is a CancelledError.
func IsCancelled(err error) bool {
	var ce *CancelledError
	return stderrors.As(err, &ce)
}

// Code returns a short machine-readable code for an error, used as a
// metric label and in MCP failure payloads.
func Code(err error) string {
	switch {
	case err == nil:
		return ""
	case IsValidation(err):
		return "invalid_argument"
	case IsNotFound(err):
		return "not_found"
	case IsTimeout(err):
		return "timeout"
	case IsCancelled(err):
		return "cancelled"
	case IsParse(err):
		return "parse_error"
	case IsUpstream(err):
		return "upstream_error"
	default:
		return "internal"
	}
}

// ClassifyTransport maps a failure from http.Client.Do to a typed error.
// Context deadline and cancellation are distinguished so a hung upstream
// surfaces as a timeout rather than a generic failure.
func ClassifyTransport(endpoint string, timeout time.Duration, err error) error {
	if stderrors.Is(err, context.DeadlineExceeded) {
		return &TimeoutError{Endpoint: endpoint, Timeout: timeout}
	}
	if stderrors.Is(err, context.Canceled) {
		return &CancelledError{Endpoint: endpoint}
	}
	var netErr net.Error
	if stderrors.As(err, &netErr) && netErr.Timeout() {
		return &TimeoutError{Endpoint: endpoint, Timeout: timeout}
	}
	return &UpstreamError{Endpoint: endpoint, Body: err.Error()}
}
