package env

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// unsetForTest clears key and restores its previous state on cleanup
func unsetForTest(t *testing.T, key string) {
	t.Helper()
	orig, had := os.LookupEnv(key)
	require.NoError(t, os.Unsetenv(key))
	t.Cleanup(func() {
		if had {
			_ = os.Setenv(key, orig)
		} else {
			_ = os.Unsetenv(key)
		}
	})
}

func TestPreload(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"),
		[]byte("ENVINSPECT_PRELOAD_A=from_file\nENVINSPECT_PRELOAD_B=\"quoted value\"\n"), 0o600))

	t.Run("loads existing and skips missing", func(t *testing.T) {
		unsetForTest(t, "ENVINSPECT_PRELOAD_A")
		unsetForTest(t, "ENVINSPECT_PRELOAD_B")

		loaded, err := Preload(dir, ".env", ".env.local")
		require.NoError(t, err)
		assert.Equal(t, []string{filepath.Join(dir, ".env")}, loaded)
		assert.Equal(t, "from_file", os.Getenv("ENVINSPECT_PRELOAD_A"))
		assert.Equal(t, "quoted value", os.Getenv("ENVINSPECT_PRELOAD_B"))
	})

	t.Run("does not override existing variables", func(t *testing.T) {
		unsetForTest(t, "ENVINSPECT_PRELOAD_B")
		t.Setenv("ENVINSPECT_PRELOAD_A", "from_process")

		_, err := Preload(dir, ".env")
		require.NoError(t, err)
		assert.Equal(t, "from_process", os.Getenv("ENVINSPECT_PRELOAD_A"))
	})

	t.Run("absolute paths are used as-is", func(t *testing.T) {
		unsetForTest(t, "ENVINSPECT_PRELOAD_A")
		unsetForTest(t, "ENVINSPECT_PRELOAD_B")

		abs := filepath.Join(dir, ".env")
		loaded, err := Preload("/nonexistent", abs)
		require.NoError(t, err)
		assert.Equal(t, []string{abs}, loaded)
	})

	t.Run("malformed file returns error", func(t *testing.T) {
		bad := filepath.Join(dir, ".env.bad")
		require.NoError(t, os.WriteFile(bad, []byte("A=\"unterminated\n"), 0o600))

		_, err := Preload(dir, ".env.bad")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to load")
	})
}
