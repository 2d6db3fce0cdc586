// Package logging provides logging configuration types and utilities.
//
// This package defines the logging configuration used by the CLI and the
// inspector. It avoids import cycles by being a leaf dependency.
package logging

import (
	"crypto/rand"
	"encoding/hex"
)

// LogConfig holds all logging configuration.
//
// This configuration is passed via dependency injection to avoid global
// state and enable better testing isolation.
type LogConfig struct {
	LogLevel      string
	Verbose       int    // -v, -vv support
	LogFormat     string // "text" or "json"
	CorrelationID string // Unique ID for request correlation
	JSONOutput    bool   // Enable JSON structured output
}

// GenerateCorrelationID creates a unique correlation ID for request tracing.
//
// Returns a 16-character hex-encoded string that can be used to correlate
// log entries for the same invocation.
func GenerateCorrelationID() string {
	bytes := make([]byte, 8)
	if _, err := rand.Read(bytes); err != nil {
		return "fallback-id"
	}
	return hex.EncodeToString(bytes)
}

// WithCorrelationID creates a new LogConfig with the specified correlation ID.
func (lc *LogConfig) WithCorrelationID(correlationID string) *LogConfig {
	if lc == nil {
		return &LogConfig{CorrelationID: correlationID}
	}

	newConfig := *lc
	newConfig.CorrelationID = correlationID
	return &newConfig
}
