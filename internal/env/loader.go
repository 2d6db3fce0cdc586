package env

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
)

// Preload loads the given env files, resolved against dir, into the process
// environment. Variables that are already set keep their values, and files
// that do not exist are skipped. It returns the paths that were loaded.
func Preload(dir string, files ...string) ([]string, error) {
	loaded := make([]string, 0, len(files))

	for _, name := range files {
		path := name
		if !filepath.IsAbs(path) {
			path = filepath.Join(dir, name)
		}

		if _, err := os.Stat(path); os.IsNotExist(err) {
			continue
		}

		if err := godotenv.Load(path); err != nil {
			return loaded, fmt.Errorf("failed to load %s: %w", path, err)
		}
		loaded = append(loaded, path)
	}

	return loaded, nil
}
