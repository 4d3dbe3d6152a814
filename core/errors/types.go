// ABOUTME: Custom error types for the core business logic
// ABOUTME: Provides structured errors for better error handling and API responses

package errors

import (
	"errors"
	"fmt"
)

// TransportError represents a network failure reaching the upstream
type TransportError struct {
	URL string
	Err error
}

// Error implements the error interface
func (e *TransportError) Error() string {
	return fmt.Sprintf("transport error fetching %s: %v", e.URL, e.Err)
}

// Unwrap returns the underlying error
func (e *TransportError) Unwrap() error {
	return e.Err
}

// DecodeError represents malformed JSON from an endpoint expected to return JSON
type DecodeError struct {
	URL string
	Err error
}

// Error implements the error interface
func (e *DecodeError) Error() string {
	return fmt.Sprintf("decode error from %s: %v", e.URL, e.Err)
}

// Unwrap returns the underlying error
func (e *DecodeError) Unwrap() error {
	return e.Err
}

// NotFoundError represents a resource not found error
type NotFoundError struct {
	Resource string
	ID       string
}

// Error implements the error interface
func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found: %s", e.Resource, e.ID)
}

// MalformedItemError represents a content item missing required fields
type MalformedItemError struct {
	Kind   string
	Reason string
}

// Error implements the error interface
func (e *MalformedItemError) Error() string {
	return fmt.Sprintf("malformed %s item: %s", e.Kind, e.Reason)
}

// UnknownKindError represents a content item of an unrecognized discriminator
type UnknownKindError struct {
	Kind string
}

// Error implements the error interface
func (e *UnknownKindError) Error() string {
	return fmt.Sprintf("unknown item kind: %s", e.Kind)
}

// IsTransport checks if an error is a TransportError
func IsTransport(err error) bool {
	var transportErr *TransportError
	return errors.As(err, &transportErr)
}

// IsDecode checks if an error is a DecodeError
func IsDecode(err error) bool {
	var decodeErr *DecodeError
	return errors.As(err, &decodeErr)
}

// IsNotFound checks if an error is a NotFoundError
func IsNotFound(err error) bool {
	var notFoundErr *NotFoundError
	return errors.As(err, &notFoundErr)
}

// IsMalformedItem checks if an error is a MalformedItemError
func IsMalformedItem(err error) bool {
	var malformedErr *MalformedItemError
	return errors.As(err, &malformedErr)
}

// IsUnknownKind checks if an error is an UnknownKindError
func IsUnknownKind(err error) bool {
	var unknownErr *UnknownKindError
	return errors.As(err, &unknownErr)
}

// WrapError wraps an error with additional context
func WrapError(err error, message string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", message, err)
}
