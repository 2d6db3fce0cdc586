package cli

import (
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/mrz1836/go-envinspect/internal/jsonutil"
)

// render writes v to w in format. Text output is delegated to text.
func render(w io.Writer, format string, v interface{}, text func(io.Writer) error) error {
	switch format {
	case formatJSON:
		return jsonutil.Encode(w, v)
	case formatYAML:
		encoder := yaml.NewEncoder(w)
		encoder.SetIndent(2)
		if err := encoder.Encode(v); err != nil {
			return fmt.Errorf("failed to encode YAML: %w", err)
		}
		return encoder.Close()
	case formatText, "":
		return text(w)
	default:
		return fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}
}

// resultFormat picks json when --json or --log-format json is set
func resultFormat(flags *Flags) string {
	if flags.structured() {
		return formatJSON
	}
	return formatText
}

// line returns a text renderer printing a single value
func line(value interface{}) func(io.Writer) error {
	return func(w io.Writer) error {
		_, err := fmt.Fprintln(w, value)
		return err
	}
}
