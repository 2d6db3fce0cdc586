package output

import (
	"github.com/pmezard/go-difflib/difflib"
)

// UnifiedDiff renders a unified diff between the current and proposed
// contents of path. It returns the empty string when they are identical.
func UnifiedDiff(path, current, proposed string) (string, error) {
	if current == proposed {
		return "", nil
	}

	diff := difflib.UnifiedDiff{
		A:        difflib.SplitLines(current),
		B:        difflib.SplitLines(proposed),
		FromFile: path + " (current)",
		ToFile:   path + " (proposed)",
		Context:  3,
	}
	return difflib.GetUnifiedDiffString(diff)
}
