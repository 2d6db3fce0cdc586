package env

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDefinedKeys(t *testing.T) {
	tests := []struct {
		name    string
		content string
		defined []string
		absent  []string
	}{
		{
			name:    "simple assignments",
			content: "A=1\nB=2\n",
			defined: []string{"A", "B"},
		},
		{
			name:    "comments and blank lines skipped",
			content: "# comment\n\n   \nA=1\n  # indented comment\nB=2\n",
			defined: []string{"A", "B"},
		},
		{
			name:    "commented assignment is not defined",
			content: "#A=1\nB=2\n",
			defined: []string{"B"},
			absent:  []string{"A"},
		},
		{
			name:    "whitespace around key and equals",
			content: "  KEY_1  =  value\n",
			defined: []string{"KEY_1"},
		},
		{
			name:    "empty value does not define key",
			content: "EMPTY=\nSET=x\n",
			defined: []string{"SET"},
			absent:  []string{"EMPTY"},
		},
		{
			name:    "windows line endings",
			content: "A=1\r\nEMPTY=\r\n",
			defined: []string{"A"},
			absent:  []string{"EMPTY"},
		},
		{
			name:    "non-assignment lines ignored",
			content: "export A=1\nnot a line\nB-C=2\nD=ok\n",
			defined: []string{"D"},
			absent:  []string{"A", "B-C", "export A"},
		},
		{
			name:    "value containing equals",
			content: "URL=postgres://u:p@h/db?a=b\n",
			defined: []string{"URL"},
		},
		{
			name:    "byte order mark before first key",
			content: "\ufeffA=1\nB=2\n",
			defined: []string{"A", "B"},
		},
		{
			name:    "non-breaking space around equals",
			content: "A\u00a0= 1\nB =\u00a0two\n",
			defined: []string{"A", "B"},
		},
		{
			name:    "unicode space only value does not define key",
			content: "A=\u00a0\r\n",
			defined: []string{"A"},
		},
		{
			name:    "line separator is not a value",
			content: "A=\u2028\nB=2\n",
			defined: []string{"B"},
			absent:  []string{"A"},
		},
		{
			name:    "no trailing newline",
			content: "A=1\nB=2",
			defined: []string{"A", "B"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			keys, err := ParseDefinedKeys(strings.NewReader(tt.content))
			require.NoError(t, err)
			assert.Len(t, keys, len(tt.defined))
			for _, k := range tt.defined {
				assert.True(t, keys.Has(k), "expected %s to be defined", k)
			}
			for _, k := range tt.absent {
				assert.False(t, keys.Has(k), "expected %s to be undefined", k)
			}
		})
	}
}

func TestParseDefinedKeysLongLines(t *testing.T) {
	long := strings.Repeat("x", 2*1024*1024)

	keys, err := ParseDefinedKeys(strings.NewReader("# " + long + "\nA=1\nBIG=" + long + "\n" + long + "\nB=2\n"))
	require.NoError(t, err)
	assert.Len(t, keys, 3)
	assert.True(t, keys.Has("A"))
	assert.True(t, keys.Has("BIG"))
	assert.True(t, keys.Has("B"))
}

func TestKeySetMissing(t *testing.T) {
	keys := KeySet{"A": {}, "B": {}}

	assert.Equal(t, []string{"C"}, keys.Missing([]string{"A", "C"}))
	assert.Equal(t, []string{"Z", "Y", "Z"}, keys.Missing([]string{"Z", "A", "Y", "Z"}))
	assert.Empty(t, keys.Missing([]string{"A", "B"}))
	assert.NotNil(t, keys.Missing(nil))
}

func TestScanDefinedKeys(t *testing.T) {
	dir := t.TempDir()

	t.Run("reads file", func(t *testing.T) {
		path := filepath.Join(dir, ".env")
		require.NoError(t, os.WriteFile(path, []byte("A=1\n# comment\nB=2\n"), 0o600))

		keys, err := ScanDefinedKeys(path)
		require.NoError(t, err)
		assert.True(t, keys.Has("A"))
		assert.True(t, keys.Has("B"))
		assert.False(t, keys.Has("C"))
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := ScanDefinedKeys(filepath.Join(dir, "absent.env"))
		require.Error(t, err)
		assert.True(t, os.IsNotExist(err))
	})

	t.Run("directory is a read error", func(t *testing.T) {
		_, err := ScanDefinedKeys(dir)
		require.Error(t, err)
	})
}
