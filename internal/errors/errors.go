// Package errors defines common error types and utilities used throughout the application
package errors

import (
	"errors"
	"fmt"
)

// Common errors used across the application
var (
	// Validation errors
	ErrValidationFailed  = errors.New("validation failed")
	ErrMissingVariables  = errors.New("required variables are missing")
	ErrInvalidAssignment = errors.New("invalid KEY=VALUE assignment")

	// Branch errors
	ErrBranchNotFound = errors.New("branch not found")

	// Config errors
	ErrInvalidConfig = errors.New("invalid configuration")

	// Test errors (only used in tests)
	ErrTest = errors.New("test error")
)

// WrapWithContext wraps an error with operation context using consistent formatting.
// This replaces manual fmt.Errorf("failed to %s: %w", operation, err) patterns.
func WrapWithContext(err error, operation string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("failed to %s: %w", operation, err)
}

// MissingVariablesError reports which variables were missing from a source
// such as the process environment or a named env file.
func MissingVariablesError(source string, missing []string) error {
	if len(missing) == 0 {
		return nil
	}
	return fmt.Errorf("%w in %s: %v", ErrMissingVariables, source, missing)
}
