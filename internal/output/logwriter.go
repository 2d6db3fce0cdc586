package output

import (
	"fmt"

	"github.com/sirupsen/logrus"
)

// LogWriter implements Writer by forwarding messages to logrus. Success
// messages are logged at info level with status=success.
type LogWriter struct {
	entry *logrus.Entry
}

// NewLogWriter creates a LogWriter. A nil logger uses the standard logger.
func NewLogWriter(logger *logrus.Logger) *LogWriter {
	if logger == nil {
		logger = logrus.StandardLogger()
	}
	return &LogWriter{entry: logrus.NewEntry(logger)}
}

// Success logs msg at info level with status=success
func (w *LogWriter) Success(msg string) {
	w.entry.WithField("status", "success").Info(msg)
}

// Successf logs a formatted success message
func (w *LogWriter) Successf(format string, args ...interface{}) {
	w.Success(fmt.Sprintf(format, args...))
}

// Info logs msg at info level
func (w *LogWriter) Info(msg string) {
	w.entry.Info(msg)
}

// Infof logs a formatted info message
func (w *LogWriter) Infof(format string, args ...interface{}) {
	w.Info(fmt.Sprintf(format, args...))
}

// Warn logs msg at warn level
func (w *LogWriter) Warn(msg string) {
	w.entry.Warn(msg)
}

// Warnf logs a formatted warning message
func (w *LogWriter) Warnf(format string, args ...interface{}) {
	w.Warn(fmt.Sprintf(format, args...))
}

// Error logs msg at error level
func (w *LogWriter) Error(msg string) {
	w.entry.Error(msg)
}

// Errorf logs a formatted error message
func (w *LogWriter) Errorf(format string, args ...interface{}) {
	w.Error(fmt.Sprintf(format, args...))
}
