package cli

import (
	"github.com/mrz1836/go-envinspect/internal/config"
	"github.com/mrz1836/go-envinspect/internal/logging"
)

// Output formats accepted by --output
const (
	formatText = "text"
	formatJSON = "json"
	formatYAML = "yaml"
)

// Flags contains all global flags for the CLI
type Flags struct {
	ConfigFile string
	Root       string
	LogLevel   string
	LogFormat  string
	Verbose    int
	JSONOutput bool
	EnvFiles   []string
}

// newFlags returns Flags holding the documented defaults
func newFlags() *Flags {
	return &Flags{
		ConfigFile: config.DefaultFile,
		LogLevel:   "info",
		LogFormat:  formatText,
	}
}

// logConfig converts the logging flags for logging.ConfigureLogger
func (f *Flags) logConfig() *logging.LogConfig {
	return &logging.LogConfig{
		LogLevel:   f.LogLevel,
		Verbose:    f.Verbose,
		LogFormat:  f.LogFormat,
		JSONOutput: f.JSONOutput,
	}
}

// structured reports whether command results should be machine readable
func (f *Flags) structured() bool {
	return f.JSONOutput || f.LogFormat == formatJSON
}
