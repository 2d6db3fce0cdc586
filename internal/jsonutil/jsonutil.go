// Package jsonutil provides type-safe JSON utilities with standardized error handling.
package jsonutil

import (
	"encoding/json"
	"io"

	appErrors "github.com/mrz1836/go-envinspect/internal/errors"
)

// MarshalJSON marshals any type to JSON with standardized error handling.
func MarshalJSON[T any](v T) ([]byte, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return nil, appErrors.WrapWithContext(err, "marshal to JSON")
	}
	return data, nil
}

// Encode writes v to w as indented JSON followed by a newline.
func Encode(w io.Writer, v interface{}) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(v); err != nil {
		return appErrors.WrapWithContext(err, "encode JSON")
	}
	return nil
}
