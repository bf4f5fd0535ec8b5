package apperrors

import (
	"errors"
	"fmt"
	"reflect"
	"testing"

	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidationError_Error(t *testing.T) {
	err := NewValidationError(map[string]string{
		"price": "Must be a number",
		"title": "This field is required",
	})

	// Field names are sorted so the message is stable across runs.
	assert.Equal(t, "validation failed: price, title", err.Error())
	assert.Equal(t, []string{"price", "title"}, err.FieldNames())
}

func TestValidationError_Empty(t *testing.T) {
	err := NewValidationError(nil)

	assert.Equal(t, "validation failed", err.Error())
	assert.Empty(t, err.FieldNames())
}

func TestFromValidatorErrors(t *testing.T) {
	type draft struct {
		Title string  `validate:"required"`
		Price float64 `validate:"gt=0"`
	}

	validate := validator.New()
	err := validate.Struct(draft{Price: -1})
	require.Error(t, err)

	verrs, ok := err.(validator.ValidationErrors)
	require.True(t, ok, "Expected validator.ValidationErrors")

	result := FromValidatorErrors(verrs)

	assert.Equal(t, "This field is required", result.Fields["Title"])
	assert.Equal(t, "Must be greater than 0", result.Fields["Price"])
}

func TestAuthError(t *testing.T) {
	cause := errors.New("invalid credentials")
	err := NewAuthError("sign in", cause)

	assert.Equal(t, "sign in failed: invalid credentials", err.Error())
	assert.ErrorIs(t, err, cause)
	assert.True(t, IsAuth(err))
	assert.True(t, IsAuth(fmt.Errorf("gate: %w", err)))
	assert.False(t, IsAuth(cause))
}

func TestIsValidation(t *testing.T) {
	verr := NewValidationError(map[string]string{"email": "This field is required"})

	assert.True(t, IsValidation(verr))
	assert.True(t, IsValidation(fmt.Errorf("form: %w", verr)))
	assert.False(t, IsValidation(errors.New("other")))
}

func TestCode(t *testing.T) {
	testCases := []struct {
		name     string
		err      error
		expected string
	}{
		{
			name:     "not found",
			err:      fmt.Errorf("property %q: %w", "42", ErrNotFound),
			expected: CodeNotFound,
		},
		{
			name:     "validation",
			err:      NewValidationError(map[string]string{"title": "This field is required"}),
			expected: CodeValidation,
		},
		{
			name:     "auth",
			err:      NewAuthError("logout", errors.New("network down")),
			expected: CodeAuth,
		},
		{
			name:     "outside taxonomy",
			err:      errors.New("something else"),
			expected: "",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, Code(tc.err))
		})
	}
}

func TestFormatFieldError(t *testing.T) {
	tests := []struct {
		name     string
		tag      string
		param    string
		expected string
	}{
		{
			name:     "required",
			tag:      "required",
			param:    "",
			expected: "This field is required",
		},
		{
			name:     "email",
			tag:      "email",
			param:    "",
			expected: "Must be a valid email address",
		},
		{
			name:     "min",
			tag:      "min",
			param:    "5",
			expected: "Value is too short or small (minimum: 5)",
		},
		{
			name:     "max",
			tag:      "max",
			param:    "100",
			expected: "Value is too long or large (maximum: 100)",
		},
		{
			name:     "gt",
			tag:      "gt",
			param:    "0",
			expected: "Must be greater than 0",
		},
		{
			name:     "gte",
			tag:      "gte",
			param:    "0",
			expected: "Must be greater than or equal to 0",
		},
		{
			name:     "lt",
			tag:      "lt",
			param:    "100",
			expected: "Must be less than 100",
		},
		{
			name:     "lte",
			tag:      "lte",
			param:    "100",
			expected: "Must be less than or equal to 100",
		},
		{
			name:     "oneof",
			tag:      "oneof",
			param:    "house apartment villa commercial",
			expected: "Must be one of: house apartment villa commercial",
		},
		{
			name:     "numeric",
			tag:      "numeric",
			param:    "",
			expected: "Must be a number",
		},
		{
			name:     "unknown",
			tag:      "unknown_tag",
			param:    "",
			expected: "Validation failed for tag: unknown_tag",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Create a mock FieldError
			mockErr := &mockFieldError{
				tag:   tt.tag,
				param: tt.param,
			}

			result := FormatFieldError(mockErr)
			assert.Equal(t, tt.expected, result, "Expected correct validation error message")
		})
	}
}

// mockFieldError is a mock implementation of validator.FieldError for testing.
type mockFieldError struct {
	tag   string
	param string
}

func (m *mockFieldError) Tag() string                    { return m.tag }
func (m *mockFieldError) ActualTag() string              { return m.tag }
func (m *mockFieldError) Namespace() string              { return "" }
func (m *mockFieldError) StructNamespace() string        { return "" }
func (m *mockFieldError) Field() string                  { return "TestField" }
func (m *mockFieldError) StructField() string            { return "TestField" }
func (m *mockFieldError) Value() interface{}             { return nil }
func (m *mockFieldError) Param() string                  { return m.param }
func (m *mockFieldError) Kind() reflect.Kind             { return reflect.String }
func (m *mockFieldError) Type() reflect.Type             { return nil }
func (m *mockFieldError) Translate(ut.Translator) string { return "" }
func (m *mockFieldError) Error() string                  { return "" }
