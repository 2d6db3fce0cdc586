package env

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	appErrors "github.com/mrz1836/go-envinspect/internal/errors"
)

func TestVariablesFromMap(t *testing.T) {
	vars := VariablesFromMap(map[string]string{"B": "2", "A": "1"})
	assert.Equal(t, Variables{{Key: "A", Value: "1"}, {Key: "B", Value: "2"}}, vars)
	assert.Equal(t, []string{"A", "B"}, vars.Keys())
}

func TestParseAssignments(t *testing.T) {
	t.Run("keeps argument order", func(t *testing.T) {
		vars, err := ParseAssignments([]string{"Z=1", "A=x=y", "EMPTY="})
		require.NoError(t, err)
		assert.Equal(t, Variables{
			{Key: "Z", Value: "1"},
			{Key: "A", Value: "x=y"},
			{Key: "EMPTY", Value: ""},
		}, vars)
	})

	for _, arg := range []string{"NOEQUALS", "=value", " =value", "API-URL=x", "export A=1"} {
		t.Run("rejects "+arg, func(t *testing.T) {
			_, err := ParseAssignments([]string{arg})
			require.Error(t, err)
			assert.ErrorIs(t, err, appErrors.ErrInvalidAssignment)
		})
	}
}

func TestRender(t *testing.T) {
	assert.Empty(t, Variables{}.Render())
	assert.Equal(t, "NODE_ENV=test\n", Variables{{Key: "NODE_ENV", Value: "test"}}.Render())
	assert.Equal(t, "B=has space\nA=\"quoted\"\n",
		Variables{{Key: "B", Value: "has space"}, {Key: "A", Value: `"quoted"`}}.Render())
}

func TestWriteFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ".env.test")

	require.NoError(t, WriteFile(path, Variables{{Key: "OLD", Value: "1"}, {Key: "OTHER", Value: "2"}}))
	require.NoError(t, WriteFile(path, Variables{{Key: "NODE_ENV", Value: "test"}}))

	content, err := os.ReadFile(path) //nolint:gosec // test file
	require.NoError(t, err)
	assert.Equal(t, "NODE_ENV=test\n", string(content))

	err = WriteFile(filepath.Join(dir, "missing", "dir", ".env"), Variables{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "file operation failed: write")
	assert.ErrorIs(t, err, os.ErrNotExist)
}
