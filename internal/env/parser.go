package env

import (
	"bufio"
	"errors"
	"io"
	"os"
	"path/filepath"
	"regexp"
	"strings"
)

// space is the whitespace class editors leave around assignments. Besides
// ASCII it covers the byte order mark and the Unicode space separators.
const space = `[\t\n\v\f\r \x{00a0}\x{1680}\x{2000}-\x{200a}\x{2028}\x{2029}\x{202f}\x{205f}\x{3000}\x{feff}]`

// assignmentPattern matches KEY=VALUE lines. A value is required, so "KEY="
// does not define KEY.
var assignmentPattern = regexp.MustCompile(`^` + space + `*([A-Za-z0-9_]+)` + space + `*=` + space + `*([^\r\n\x{2028}\x{2029}]+)`)

// isSpace reports whether r belongs to the space class
func isSpace(r rune) bool {
	switch r {
	case '\t', '\n', '\v', '\f', '\r', ' ', 0x00a0, 0x1680, 0x2028, 0x2029, 0x202f, 0x205f, 0x3000, 0xfeff:
		return true
	}
	return r >= 0x2000 && r <= 0x200a
}

// KeySet is the set of variable names defined in an env file.
type KeySet map[string]struct{}

// Has reports whether key is defined
func (s KeySet) Has(key string) bool {
	_, ok := s[key]
	return ok
}

// Missing returns the members of required not in the set, in input order.
// Duplicates in required are kept.
func (s KeySet) Missing(required []string) []string {
	missing := make([]string, 0, len(required))
	for _, name := range required {
		if !s.Has(name) {
			missing = append(missing, name)
		}
	}
	return missing
}

// ScanDefinedKeys reads an env file and returns the names it assigns.
// Blank lines and lines starting with '#' are skipped, and lines that are
// not assignments are ignored. Values are neither validated nor returned.
func ScanDefinedKeys(path string) (KeySet, error) {
	// filepath.Clean sanitizes the path to prevent directory traversal
	file, err := os.Open(filepath.Clean(path))
	if err != nil {
		return nil, err
	}
	defer func() { _ = file.Close() }()

	return ParseDefinedKeys(file)
}

// ParseDefinedKeys is ScanDefinedKeys over an arbitrary reader. Lines have
// no length limit.
func ParseDefinedKeys(r io.Reader) (KeySet, error) {
	keys := make(KeySet)
	reader := bufio.NewReader(r)

	for {
		line, err := reader.ReadString('\n')
		if err != nil && !errors.Is(err, io.EOF) {
			return keys, err
		}

		line = strings.TrimRight(line, "\r\n")
		trimmed := strings.TrimFunc(line, isSpace)

		// Skip empty lines and comments
		if trimmed != "" && !strings.HasPrefix(trimmed, "#") {
			if match := assignmentPattern.FindStringSubmatch(line); match != nil {
				keys[match[1]] = struct{}{}
			}
		}

		if err != nil {
			return keys, nil
		}
	}
}
