package schema

import (
	"errors"
	"fmt"
	"strings"
)

// Common errors
var (
	// ErrDecode is matched by every payload decode failure.
	ErrDecode = errors.New("payload is not well-formed JSON")
	// ErrInvalid is matched by every schema-validation failure.
	ErrInvalid = errors.New("payload does not match schema")
)

// DecodeError wraps the underlying parser error for a rejected payload.
type DecodeError struct {
	Size int
	Err  error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("decode %d byte payload: %v", e.Size, e.Err)
}

func (e *DecodeError) Unwrap() error { return e.Err }

func (e *DecodeError) Is(target error) bool { return target == ErrDecode }

// ValidationError represents a schema validation failure.
type ValidationError struct {
	Schema        string   `json:"schema"`
	Message       string   `json:"message"`
	Field         string   `json:"field,omitempty"`
	ExpectedType  string   `json:"expected_type,omitempty"`
	ActualType    string   `json:"actual_type,omitempty"`
	UnknownFields []string `json:"unknown_fields,omitempty"`
}

func (e *ValidationError) Error() string {
	if len(e.UnknownFields) > 0 {
		return fmt.Sprintf("unknown field(s) %v not allowed in %s", e.UnknownFields, e.Schema)
	}
	if e.Field != "" {
		return fmt.Sprintf("field '%s': %s (%s)", e.Field, e.Message, e.Schema)
	}
	return fmt.Sprintf("%s (%s)", e.Message, e.Schema)
}

func (e *ValidationError) Is(target error) bool { return target == ErrInvalid }

// MultiValidationError aggregates multiple validation errors.
type MultiValidationError struct {
	Errors []*ValidationError
}

func (e *MultiValidationError) Error() string {
	if len(e.Errors) == 0 {
		return "validation failed"
	}
	if len(e.Errors) == 1 {
		return e.Errors[0].Error()
	}

	msgs := make([]string, len(e.Errors))
	for i, err := range e.Errors {
		msgs[i] = err.Error()
	}
	return fmt.Sprintf("validation failed: %s", strings.Join(msgs, "; "))
}

func (e *MultiValidationError) Is(target error) bool { return target == ErrInvalid }

// Fields returns the names of the fields that failed, in check order.
func (e *MultiValidationError) Fields() []string {
	var fields []string
	for _, ve := range e.Errors {
		if ve.Field != "" {
			fields = append(fields, ve.Field)
		}
	}
	return fields
}

// NewUnknownFieldsError creates an error for unexpected fields.
func NewUnknownFieldsError(schema string, fields []string) *ValidationError {
	return &ValidationError{
		Schema:        schema,
		Message:       fmt.Sprintf("unknown field(s) not allowed: %v", fields),
		UnknownFields: fields,
	}
}

// NewTypeMismatchError creates an error for type mismatches.
func NewTypeMismatchError(schema, field, expected, actual string) *ValidationError {
	return &ValidationError{
		Schema:       schema,
		Message:      fmt.Sprintf("expected %s, got %s", expected, actual),
		Field:        field,
		ExpectedType: expected,
		ActualType:   actual,
	}
}

// NewRequiredFieldError creates an error for missing required fields.
func NewRequiredFieldError(schema, field string) *ValidationError {
	return &ValidationError{
		Schema:  schema,
		Message: "required field is missing",
		Field:   field,
	}
}

// NewEnumError creates an error for a string outside its enumeration.
func NewEnumError(schema, field, value string, allowed []string) *ValidationError {
	return &ValidationError{
		Schema:  schema,
		Message: fmt.Sprintf("value %q not in enum %v", value, allowed),
		Field:   field,
	}
}
