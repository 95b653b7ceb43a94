// Package domainerrors provides coded errors for domain-level failures.
// Stores and infrastructure return sentinel errors (pkg/platform/sentinel);
// services translate those facts into coded domain errors that the transport
// layer maps onto caller-facing statuses.
package domainerrors

import (
	"errors"
	"fmt"
	"net/http"
)

// Code classifies a domain failure. The set is closed: transports switch on
// it to pick a status, so new codes need a mapping in HTTPStatus.
type Code string

const (
	// CodeValidation marks malformed input caught by the validation layer.
	CodeValidation Code = "validation"
	// CodeConflict marks a uniqueness violation (email already registered).
	CodeConflict Code = "conflict"
	// CodeHashing marks a credential hashing collaborator failure.
	CodeHashing Code = "hashing"
	// CodeInvariantViolation marks an entity constructed in breach of its
	// invariants.
	CodeInvariantViolation Code = "invariant_violation"
	// CodePersistence marks a storage collaborator failure.
	CodePersistence Code = "persistence"
	// CodePublication marks an event delivery failure after the record is
	// already durable.
	CodePublication Code = "publication"

	CodeInvalidInput Code = "invalid_input"
	CodeBadRequest   Code = "bad_request"
	CodeNotFound     Code = "not_found"
	CodeInternal     Code = "internal"
)

// Error is a classified domain error. Field is set for validation failures
// so callers can point at the offending input.
type Error struct {
	Code    Code
	Field   string
	Message string
	cause   error
}

func (e *Error) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("%s: %s: %s", e.Code, e.Field, e.Message)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *Error) Unwrap() error {
	return e.cause
}

// New creates a coded error with a human-readable message.
func New(code Code, message string) error {
	return &Error{Code: code, Message: message}
}

// NewField creates a validation-style error attributed to a single field.
func NewField(code Code, field, message string) error {
	return &Error{Code: code, Field: field, Message: message}
}

// Wrap attaches a code and message to an underlying cause. The cause stays
// reachable through errors.Is/As but is never shown to callers.
func Wrap(code Code, message string, cause error) error {
	return &Error{Code: code, Message: message, cause: cause}
}

// HasCode reports whether err carries the given code anywhere in its chain.
func HasCode(err error, code Code) bool {
	var derr *Error
	if errors.As(err, &derr) {
		return derr.Code == code
	}
	return false
}

// CodeOf extracts the code from err, or CodeInternal for uncoded errors.
func CodeOf(err error) Code {
	var derr *Error
	if errors.As(err, &derr) {
		return derr.Code
	}
	return CodeInternal
}

// FieldOf extracts the field attribution from err, if any.
func FieldOf(err error) string {
	var derr *Error
	if errors.As(err, &derr) {
		return derr.Field
	}
	return ""
}

// HTTPStatus maps a code to the caller-facing status. Infrastructure codes
// deliberately collapse into 500 so internals never leak.
func HTTPStatus(code Code) int {
	switch code {
	case CodeValidation, CodeInvalidInput, CodeBadRequest:
		return http.StatusBadRequest
	case CodeConflict:
		return http.StatusConflict
	case CodeNotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}
