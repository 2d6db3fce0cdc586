// Package logging provides redaction services for sensitive data protection.
//
// Values written to env files frequently carry tokens and passwords. The
// redaction hook scrubs them from log messages and fields before logrus
// formats the entry.
//
//	service := logging.NewRedactionService()
//	text := service.RedactSensitive("API_TOKEN=abc123")
//	logger.AddHook(service.CreateHook())
package logging

import (
	"regexp"
	"strings"

	"github.com/sirupsen/logrus"
)

// redacted replaces sensitive values
const redacted = "***REDACTED***"

// RedactionService handles sensitive data redaction.
type RedactionService struct {
	githubTokenPattern *regexp.Regexp
	authPattern        *regexp.Regexp
	urlPasswordPattern *regexp.Regexp
	urlParamPattern    *regexp.Regexp
	envPattern         *regexp.Regexp
	sshPattern         *regexp.Regexp
	sensitiveFields    []string
}

// NewRedactionService creates a new redaction service.
func NewRedactionService() *RedactionService {
	return &RedactionService{
		githubTokenPattern: regexp.MustCompile(`\b(ghp_|ghs_|ghr_|github_pat_)[a-zA-Z0-9_]{4,}`),
		authPattern:        regexp.MustCompile(`(Bearer|Token)\s+([^\s'"]+)`),
		urlPasswordPattern: regexp.MustCompile(`://([^:/\s]+):([^@\s]+)@`),
		urlParamPattern:    regexp.MustCompile(`\b(password|token|secret|key|api_key)=([^\s&]+)`),
		envPattern:         regexp.MustCompile(`\b([A-Z0-9_]*(?:TOKEN|SECRET|KEY|PASSWORD|PASS|DSN)[A-Z0-9_]*=)([^\s]+)`),
		sshPattern:         regexp.MustCompile(`-----BEGIN[A-Z\s]+PRIVATE KEY-----[\s\S]*?-----END[A-Z\s]+PRIVATE KEY-----`),
		sensitiveFields: []string{
			"password",
			"passwd",
			"token",
			"secret",
			"api_key",
			"private_key",
			"credential",
			"authorization",
			"dsn",
			"database_url",
		},
	}
}

// RedactSensitive removes sensitive data from text using pattern matching.
// Names (headers, parameters, variable keys) are preserved and only the
// values are replaced.
func (r *RedactionService) RedactSensitive(text string) string {
	text = r.githubTokenPattern.ReplaceAllString(text, "${1}"+redacted)
	text = r.sshPattern.ReplaceAllString(text, "***REDACTED_SSH_KEY***")
	text = r.authPattern.ReplaceAllString(text, "$1 "+redacted)
	text = r.urlPasswordPattern.ReplaceAllString(text, "://$1:"+redacted+"@")
	text = r.urlParamPattern.ReplaceAllString(text, "$1="+redacted)
	text = r.envPattern.ReplaceAllString(text, "${1}"+redacted)
	return text
}

// IsSensitiveField checks if a field name indicates sensitive data.
func (r *RedactionService) IsSensitiveField(fieldName string) bool {
	fieldLower := strings.ToLower(fieldName)
	for _, sensitive := range r.sensitiveFields {
		if strings.Contains(fieldLower, sensitive) {
			return true
		}
	}
	return false
}

// CreateHook creates a logrus hook for automatic redaction.
func (r *RedactionService) CreateHook() logrus.Hook {
	return &RedactionHook{service: r}
}

// RedactionHook automatically redacts sensitive data in log entries.
type RedactionHook struct {
	service *RedactionService
}

// Levels returns all logrus levels
func (h *RedactionHook) Levels() []logrus.Level {
	return logrus.AllLevels
}

// Fire redacts the entry message and every field value.
func (h *RedactionHook) Fire(entry *logrus.Entry) error {
	entry.Message = h.service.RedactSensitive(entry.Message)

	// Fields are copied so shared entries are not mutated
	data := make(logrus.Fields, len(entry.Data))
	for key, value := range entry.Data {
		data[key] = h.redactValue(key, value)
	}
	entry.Data = data

	return nil
}

// redactValue redacts a single field value
func (h *RedactionHook) redactValue(key string, value interface{}) interface{} {
	if h.service.IsSensitiveField(key) {
		return redacted
	}

	switch v := value.(type) {
	case string:
		return h.service.RedactSensitive(v)
	case []string:
		result := make([]string, len(v))
		for i, item := range v {
			result[i] = h.service.RedactSensitive(item)
		}
		return result
	default:
		return value
	}
}
