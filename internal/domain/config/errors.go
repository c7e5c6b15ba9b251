package config

import "fmt"

// Error codes for configuration problems.
const (
	ErrCodeNotFound   = "CONFIG_NOT_FOUND"
	ErrCodeParse      = "CONFIG_PARSE"
	ErrCodeValidation = "CONFIG_VALIDATION"
)

// UserError is a configuration error with enough context for the operator
// to fix it without reading source code.
type UserError struct {
	Code       string
	Message    string
	Context    string
	Suggestion string
	Underlying error
}

// Error returns the formatted error message.
func (e *UserError) Error() string {
	if e.Context != "" {
		return fmt.Sprintf("%s (at %s)", e.Message, e.Context)
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *UserError) Unwrap() error {
	return e.Underlying
}

// NewConfigNotFoundError creates an error for a missing config file.
func NewConfigNotFoundError(path string) *UserError {
	return &UserError{
		Code:       ErrCodeNotFound,
		Message:    "config file not found",
		Context:    path,
		Suggestion: "Create bringup.yaml or pass --config with the file's location.",
	}
}

// NewYAMLParseError creates an error for unparseable config data.
func NewYAMLParseError(path string, err error) *UserError {
	return &UserError{
		Code:       ErrCodeParse,
		Message:    "config file is not valid YAML",
		Context:    path,
		Suggestion: "Check indentation and quoting near the reported line.",
		Underlying: err,
	}
}

// NewValidationError creates an error for an invalid config value.
func NewValidationError(field, message, suggestion string) *UserError {
	return &UserError{
		Code:       ErrCodeValidation,
		Message:    message,
		Context:    field,
		Suggestion: suggestion,
	}
}
