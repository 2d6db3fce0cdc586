package cli

import "errors"

// Common CLI errors
var (
	// ErrNoSession indicates a command ran without the root PersistentPreRunE
	ErrNoSession = errors.New("command context was not initialized")

	// ErrEnvFileNotFound indicates the env file to check does not exist
	ErrEnvFileNotFound = errors.New("env file not found")

	// ErrEnvFileUnreadable indicates the env file exists but could not be read
	ErrEnvFileUnreadable = errors.New("env file could not be read")

	// ErrUnsupportedFormat indicates an unknown --output value
	ErrUnsupportedFormat = errors.New("unsupported output format")
)
