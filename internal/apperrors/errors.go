package apperrors

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Error code constants for standardized error classification
const (
	CodeNotFound   = "NOT_FOUND"
	CodeValidation = "VALIDATION_ERROR"
	CodeAuth       = "AUTH_ERROR"
)

// ErrNotFound indicates a lookup for an entity that does not exist, e.g. a
// property ID with no matching catalog entry. Callers render a not-found
// state; this is never fatal.
var ErrNotFound = errors.New("not found")

// ValidationError reports one or more invalid form fields. It blocks the
// attempted operation locally; nothing is sent to external collaborators.
type ValidationError struct {
	// Fields maps field name to a human-readable message.
	Fields map[string]string
}

// Error implements the error interface. Field names are listed in sorted
// order so the message is stable.
func (e *ValidationError) Error() string {
	if len(e.Fields) == 0 {
		return "validation failed"
	}
	names := make([]string, 0, len(e.Fields))
	for name := range e.Fields {
		names = append(names, name)
	}
	sort.Strings(names)
	return "validation failed: " + strings.Join(names, ", ")
}

// FieldNames returns the offending field names in sorted order.
func (e *ValidationError) FieldNames() []string {
	names := make([]string, 0, len(e.Fields))
	for name := range e.Fields {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// NewValidationError builds a ValidationError from a field->message map.
func NewValidationError(fields map[string]string) *ValidationError {
	return &ValidationError{Fields: fields}
}

// FromValidatorErrors converts validator.ValidationErrors into a
// ValidationError with a human-readable message per field.
func FromValidatorErrors(verrs validator.ValidationErrors) *ValidationError {
	fields := make(map[string]string, len(verrs))
	for _, err := range verrs {
		fields[err.Field()] = FormatFieldError(err)
	}
	return &ValidationError{Fields: fields}
}

// AuthError wraps a failure from the identity provider. The provider message
// is surfaced verbatim to the user; session state is rolled back by the gate.
type AuthError struct {
	Op  string // operation that failed: "sign up", "sign in", "logout"
	Err error
}

func (e *AuthError) Error() string {
	return fmt.Sprintf("%s failed: %v", e.Op, e.Err)
}

func (e *AuthError) Unwrap() error {
	return e.Err
}

// NewAuthError wraps a provider failure for the given operation.
func NewAuthError(op string, err error) *AuthError {
	return &AuthError{Op: op, Err: err}
}

// IsValidation reports whether err is (or wraps) a ValidationError.
func IsValidation(err error) bool {
	var verr *ValidationError
	return errors.As(err, &verr)
}

// IsAuth reports whether err is (or wraps) an AuthError.
func IsAuth(err error) bool {
	var aerr *AuthError
	return errors.As(err, &aerr)
}

// Code classifies an error into one of the taxonomy codes, or "" for errors
// outside the taxonomy.
func Code(err error) string {
	switch {
	case errors.Is(err, ErrNotFound):
		return CodeNotFound
	case IsValidation(err):
		return CodeValidation
	case IsAuth(err):
		return CodeAuth
	}
	return ""
}

// FormatFieldError converts a validator.FieldError to a human-readable message.
func FormatFieldError(err validator.FieldError) string {
	switch err.Tag() {
	case "required":
		return "This field is required"
	case "email":
		return "Must be a valid email address"
	case "min":
		return "Value is too short or small (minimum: " + err.Param() + ")"
	case "max":
		return "Value is too long or large (maximum: " + err.Param() + ")"
	case "gt":
		return "Must be greater than " + err.Param()
	case "gte":
		return "Must be greater than or equal to " + err.Param()
	case "lt":
		return "Must be less than " + err.Param()
	case "lte":
		return "Must be less than or equal to " + err.Param()
	case "oneof":
		return "Must be one of: " + err.Param()
	case "numeric":
		return "Must be a number"
	default:
		return "Validation failed for tag: " + err.Tag()
	}
}
