// Package validation provides shared validation utilities for variable names
// and file names used by the configuration and the env file writer.
package validation

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	appErrors "github.com/mrz1836/go-envinspect/internal/errors"
)

// Validation errors
var (
	ErrEmptyField          = errors.New("field cannot be empty")
	ErrInvalidVariableName = errors.New("invalid variable name")
	ErrInvalidFileName     = errors.New("invalid file name")
)

// variableNamePattern matches the names an env file assignment can define
var variableNamePattern = regexp.MustCompile(`^[A-Za-z0-9_]+$`)

// ValidateVariableName checks that name can be defined by a KEY=VALUE line
func ValidateVariableName(name string) error {
	if name == "" {
		return fmt.Errorf("%w: variable name", ErrEmptyField)
	}
	if !variableNamePattern.MatchString(name) {
		return fmt.Errorf("%w %q", ErrInvalidVariableName, name)
	}
	return nil
}

// ValidateFileName validates a file name from configuration or flags.
// Relative and absolute paths are both accepted.
func ValidateFileName(field, name string) error {
	if err := ValidateNonEmpty(field, name); err != nil {
		return err
	}
	if strings.ContainsRune(name, 0) {
		return fmt.Errorf("%w: %s contains a NUL byte", ErrInvalidFileName, field)
	}
	if strings.HasSuffix(name, "/") {
		return fmt.Errorf("%w: %s %q names a directory", ErrInvalidFileName, field, name)
	}
	return nil
}

// ValidateNonEmpty validates that a string field is not empty or whitespace-only.
func ValidateNonEmpty(field, value string) error {
	if strings.TrimSpace(value) == "" {
		return fmt.Errorf("%w: %s", ErrEmptyField, field)
	}
	return nil
}

// Result collects the errors of a validation pass.
type Result struct {
	Valid  bool
	Errors []error
}

// NewValidationResult creates a new validation result initialized as valid.
func NewValidationResult() *Result {
	return &Result{
		Valid:  true,
		Errors: make([]error, 0),
	}
}

// AddError adds an error to the validation result. Nil errors are ignored.
func (vr *Result) AddError(err error) {
	if err != nil {
		vr.Valid = false
		vr.Errors = append(vr.Errors, err)
	}
}

// AllErrors returns every error joined under ErrValidationFailed, or nil.
func (vr *Result) AllErrors() error {
	if len(vr.Errors) == 0 {
		return nil
	}
	return fmt.Errorf("%w: %w", appErrors.ErrValidationFailed, errors.Join(vr.Errors...))
}
