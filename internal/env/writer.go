package env

import (
	"fmt"
	"os"
	"sort"
	"strings"

	appErrors "github.com/mrz1836/go-envinspect/internal/errors"
	"github.com/mrz1836/go-envinspect/internal/validation"
)

// Variable is one KEY=VALUE entry
type Variable struct {
	Key   string
	Value string
}

// Variables is an ordered list of entries. Order is preserved when rendered.
type Variables []Variable

// VariablesFromMap converts m to Variables with keys in ascending order.
func VariablesFromMap(m map[string]string) Variables {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	vars := make(Variables, 0, len(keys))
	for _, k := range keys {
		vars = append(vars, Variable{Key: k, Value: m[k]})
	}
	return vars
}

// ParseAssignments converts "KEY=VALUE" arguments into Variables, keeping
// argument order. The value is everything after the first '='. Keys must be
// names an env file check can find again.
func ParseAssignments(args []string) (Variables, error) {
	vars := make(Variables, 0, len(args))
	for _, arg := range args {
		key, value, ok := strings.Cut(arg, "=")
		if !ok {
			return nil, fmt.Errorf("%w: %q", appErrors.ErrInvalidAssignment, arg)
		}
		if err := validation.ValidateVariableName(key); err != nil {
			return nil, fmt.Errorf("%w: %q: %w", appErrors.ErrInvalidAssignment, arg, err)
		}
		vars = append(vars, Variable{Key: key, Value: value})
	}
	return vars, nil
}

// Keys returns the variable names in order
func (v Variables) Keys() []string {
	keys := make([]string, len(v))
	for i, entry := range v {
		keys[i] = entry.Key
	}
	return keys
}

// Render serializes the variables as one KEY=VALUE line per entry. Values
// are written verbatim, so callers must not pass embedded newlines.
func (v Variables) Render() string {
	var sb strings.Builder
	for _, entry := range v {
		sb.WriteString(entry.Key)
		sb.WriteByte('=')
		sb.WriteString(entry.Value)
		sb.WriteByte('\n')
	}
	return sb.String()
}

// WriteFile renders vars to path, replacing any existing file.
func WriteFile(path string, vars Variables) error {
	if err := os.WriteFile(path, []byte(vars.Render()), 0o600); err != nil {
		return appErrors.FileWriteError(path, err)
	}
	return nil
}
