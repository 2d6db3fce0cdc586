package logging

import (
	"bytes"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewStructuredFormatter(t *testing.T) {
	formatter := NewStructuredFormatter()

	assert.Equal(t, time.RFC3339, formatter.TimestampFormat)
	assert.False(t, formatter.DisableTimestamp)
}

func TestStructuredFormatter_Format(t *testing.T) {
	tests := []struct {
		name      string
		formatter *StructuredFormatter
		entry     *logrus.Entry
		validate  func(t *testing.T, result map[string]interface{})
	}{
		{
			name:      "basic log entry",
			formatter: NewStructuredFormatter(),
			entry: &logrus.Entry{
				Time:    time.Date(2024, 1, 15, 15, 4, 5, 0, time.UTC),
				Level:   logrus.InfoLevel,
				Message: "Environment file is valid",
				Data:    logrus.Fields{},
			},
			validate: func(t *testing.T, result map[string]interface{}) {
				assert.Equal(t, "2024-01-15T15:04:05Z", result["@timestamp"])
				assert.Equal(t, "info", result["level"])
				assert.Equal(t, "Environment file is valid", result["message"])
			},
		},
		{
			name:      "fields and errors",
			formatter: NewStructuredFormatter(),
			entry: &logrus.Entry{
				Time:    time.Date(2024, 1, 15, 15, 4, 5, 0, time.UTC),
				Level:   logrus.WarnLevel,
				Message: "missing",
				Data: logrus.Fields{
					StandardFields.FilePath: ".env",
					StandardFields.Error:    errors.New("boom"), //nolint:err113 // test error
				},
			},
			validate: func(t *testing.T, result map[string]interface{}) {
				assert.Equal(t, "warning", result["level"])
				assert.Equal(t, ".env", result["file_path"])
				assert.Equal(t, "boom", result["error"])
			},
		},
		{
			name:      "timestamp disabled",
			formatter: &StructuredFormatter{DisableTimestamp: true},
			entry: &logrus.Entry{
				Time:    time.Now(),
				Level:   logrus.DebugLevel,
				Message: "quiet",
				Data:    logrus.Fields{},
			},
			validate: func(t *testing.T, result map[string]interface{}) {
				assert.NotContains(t, result, "@timestamp")
			},
		},
		{
			name:      "empty timestamp format falls back to RFC3339",
			formatter: &StructuredFormatter{},
			entry: &logrus.Entry{
				Time:    time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC),
				Level:   logrus.ErrorLevel,
				Message: "x",
				Data:    logrus.Fields{},
			},
			validate: func(t *testing.T, result map[string]interface{}) {
				assert.Equal(t, "2025-06-01T00:00:00Z", result["@timestamp"])
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := tt.formatter.Format(tt.entry)
			require.NoError(t, err)
			require.True(t, bytes.HasSuffix(out, []byte("\n")))

			var result map[string]interface{}
			require.NoError(t, json.Unmarshal(out, &result))
			tt.validate(t, result)
		})
	}
}

func TestConfigureLogger(t *testing.T) {
	tests := []struct {
		name          string
		config        *LogConfig
		wantLevel     logrus.Level
		wantJSON      bool
		wantErr       bool
		wantUnchanged bool
	}{
		{name: "nil config", config: nil, wantUnchanged: true},
		{name: "default level", config: &LogConfig{}, wantLevel: logrus.InfoLevel},
		{name: "explicit level", config: &LogConfig{LogLevel: "warn"}, wantLevel: logrus.WarnLevel},
		{name: "verbose overrides level", config: &LogConfig{LogLevel: "error", Verbose: 1}, wantLevel: logrus.DebugLevel},
		{name: "very verbose", config: &LogConfig{Verbose: 3}, wantLevel: logrus.TraceLevel},
		{name: "json format", config: &LogConfig{LogFormat: "json"}, wantLevel: logrus.InfoLevel, wantJSON: true},
		{name: "json output flag", config: &LogConfig{JSONOutput: true}, wantLevel: logrus.InfoLevel, wantJSON: true},
		{name: "invalid level", config: &LogConfig{LogLevel: "loud"}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logger := logrus.New()
			logger.SetLevel(logrus.PanicLevel)

			err := ConfigureLogger(logger, tt.config)
			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), "invalid log level")
				return
			}
			require.NoError(t, err)

			if tt.wantUnchanged {
				assert.Equal(t, logrus.PanicLevel, logger.GetLevel())
				return
			}

			assert.Equal(t, tt.wantLevel, logger.GetLevel())
			if tt.wantJSON {
				assert.IsType(t, &StructuredFormatter{}, logger.Formatter)
			} else {
				assert.IsType(t, &logrus.TextFormatter{}, logger.Formatter)
			}
			assert.Len(t, logger.Hooks[logrus.InfoLevel], 1)
		})
	}
}

func TestConfigureLogger_RedactsOutput(t *testing.T) {
	logger := logrus.New()
	buf := &bytes.Buffer{}
	logger.SetOutput(buf)
	require.NoError(t, ConfigureLogger(logger, &LogConfig{LogFormat: "json"}))

	logger.WithField("api_token", "abc").Info("writing API_TOKEN=supersecret")

	out := buf.String()
	assert.NotContains(t, out, "supersecret")
	assert.NotContains(t, out, `"abc"`)
	assert.Contains(t, out, "API_TOKEN=***REDACTED***")
}

func TestWithStandardFields(t *testing.T) {
	logger := logrus.New()

	entry := WithStandardFields(logger, &LogConfig{CorrelationID: "cid"}, ComponentNames.Inspector)
	assert.Equal(t, "inspector", entry.Data["component"])
	assert.Equal(t, "cid", entry.Data["correlation_id"])

	entry = WithStandardFields(nil, nil, ComponentNames.Git)
	assert.Equal(t, "git", entry.Data["component"])
	assert.NotContains(t, entry.Data, "correlation_id")
	assert.Equal(t, logrus.StandardLogger(), entry.Logger)
}
