package logging

import (
	"fmt"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/mrz1836/go-envinspect/internal/jsonutil"
)

// StructuredFormatter provides JSON output formatting for structured logging.
type StructuredFormatter struct {
	// DisableTimestamp disables automatic timestamp generation
	DisableTimestamp bool
	// TimestampFormat sets the format for the timestamp field
	TimestampFormat string
}

// NewStructuredFormatter creates a new StructuredFormatter with RFC3339 timestamps.
func NewStructuredFormatter() *StructuredFormatter {
	return &StructuredFormatter{
		TimestampFormat: time.RFC3339,
	}
}

// Format formats a logrus.Entry as JSON with standardized fields.
func (f *StructuredFormatter) Format(entry *logrus.Entry) ([]byte, error) {
	data := make(logrus.Fields, len(entry.Data)+3)

	for k, v := range entry.Data {
		// errors do not marshal to anything useful
		if err, ok := v.(error); ok {
			v = err.Error()
		}
		data[k] = v
	}

	data["level"] = entry.Level.String()
	data["message"] = entry.Message

	if !f.DisableTimestamp {
		timestampFormat := f.TimestampFormat
		if timestampFormat == "" {
			timestampFormat = time.RFC3339
		}
		data[StandardFields.Timestamp] = entry.Time.Format(timestampFormat)
	}

	jsonBytes, err := jsonutil.MarshalJSON(data)
	if err != nil {
		return nil, err // Error already wrapped by jsonutil
	}

	return append(jsonBytes, '\n'), nil
}

// ConfigureLogger configures a logrus.Logger instance based on LogConfig settings.
//
// Verbose flags override the explicit log level. A redaction hook is always
// installed so secret values never reach the log output.
func ConfigureLogger(logger *logrus.Logger, config *LogConfig) error {
	if config == nil {
		return nil
	}

	var level logrus.Level
	var err error

	switch {
	case config.Verbose == 1:
		level = logrus.DebugLevel
	case config.Verbose >= 2:
		level = logrus.TraceLevel
	case config.LogLevel != "":
		level, err = logrus.ParseLevel(config.LogLevel)
		if err != nil {
			return fmt.Errorf("invalid log level %q: %w", config.LogLevel, err)
		}
	default:
		level = logrus.InfoLevel
	}

	logger.SetLevel(level)
	logger.AddHook(NewRedactionService().CreateHook())

	if config.JSONOutput || config.LogFormat == "json" {
		logger.SetFormatter(NewStructuredFormatter())
	} else {
		logger.SetFormatter(&logrus.TextFormatter{
			FullTimestamp:    true,
			TimestampFormat:  "15:04:05",
			PadLevelText:     true,
			QuoteEmptyFields: true,
		})
	}

	return nil
}

// WithStandardFields creates a logrus.Entry with correlation ID and component info.
func WithStandardFields(logger *logrus.Logger, config *LogConfig, component string) *logrus.Entry {
	if logger == nil {
		logger = logrus.StandardLogger()
	}

	fields := logrus.Fields{
		StandardFields.Component: component,
	}

	if config != nil && config.CorrelationID != "" {
		fields[StandardFields.CorrelationID] = config.CorrelationID
	}

	return logger.WithFields(fields)
}
