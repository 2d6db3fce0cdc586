// Package workspace resolves the project root that relative env-file names
// are resolved against.
package workspace

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"

	"github.com/mrz1836/go-envinspect/internal/env"
	"github.com/mrz1836/go-envinspect/internal/logging"
)

// Environment variables consulted before directory traversal
const (
	EnvProjectRoot      = "ENVINSPECT_PROJECT_ROOT"
	EnvGitHubActions    = "GITHUB_ACTIONS"
	EnvGitHubWorkspace  = "GITHUB_WORKSPACE"
	EnvGitLabCI         = "GITLAB_CI"
	EnvGitLabProjectDir = "CI_PROJECT_DIR"
)

// Markers identifies a project root, checked in order
//
//nolint:gochecknoglobals // fixed marker list
var Markers = []string{".git", "go.mod", "package.json"}

// maxIterations limits upward traversal
const maxIterations = 32

// rootSource is a project root candidate taken from an environment variable
type rootSource struct {
	name string
	path string
}

// Common errors for project root detection
var (
	ErrProjectRootNotFound = errors.New("unable to find project root")
	ErrInvalidProjectRoot  = errors.New("invalid project root: directory does not exist")
)

// FindProjectRoot returns the absolute path to the project root directory.
// It checks several sources in the following order:
//
//  1. ENVINSPECT_PROJECT_ROOT (explicit override)
//  2. GITHUB_WORKSPACE when running under GitHub Actions
//  3. CI_PROJECT_DIR when running under GitLab CI
//  4. Upward traversal from startDir looking for a marker in Markers
func FindProjectRoot(p env.Provider, startDir string, logger *logrus.Logger) (string, error) {
	log := logging.WithStandardFields(logger, nil, logging.ComponentNames.Workspace).
		WithField(logging.StandardFields.Operation, logging.OperationTypes.ResolveRootPath)

	candidates := []rootSource{{name: EnvProjectRoot, path: env.Value(p, EnvProjectRoot)}}
	if env.IsSet(p, EnvGitHubActions) {
		candidates = append(candidates, rootSource{name: EnvGitHubWorkspace, path: env.Value(p, EnvGitHubWorkspace)})
	}
	if env.IsSet(p, EnvGitLabCI) {
		candidates = append(candidates, rootSource{name: EnvGitLabProjectDir, path: env.Value(p, EnvGitLabProjectDir)})
	}

	for _, c := range candidates {
		if c.path == "" {
			continue
		}
		if !dirExists(c.path) {
			return "", fmt.Errorf("%w at %s (from %s)", ErrInvalidProjectRoot, c.path, c.name)
		}
		abs, err := filepath.Abs(c.path)
		if err != nil {
			return "", fmt.Errorf("failed to resolve %s: %w", c.path, err)
		}
		log.WithField(logging.StandardFields.ProjectRoot, abs).Debugf("Using project root from %s", c.name)
		return abs, nil
	}

	return findByTraversal(startDir, log)
}

// Resolve is FindProjectRoot falling back to startDir when no root is found.
func Resolve(p env.Provider, startDir string, logger *logrus.Logger) string {
	root, err := FindProjectRoot(p, startDir, logger)
	if err != nil {
		logging.WithStandardFields(logger, nil, logging.ComponentNames.Workspace).
			WithError(err).Debug("Falling back to start directory as project root")
		if abs, absErr := filepath.Abs(startDir); absErr == nil {
			return abs
		}
		return startDir
	}
	return root
}

// findByTraversal looks for project markers from startDir upward
func findByTraversal(startDir string, log *logrus.Entry) (string, error) {
	currentDir, err := filepath.Abs(startDir)
	if err != nil {
		return "", fmt.Errorf("failed to resolve %s: %w", startDir, err)
	}

	for i := 0; i < maxIterations; i++ {
		for _, marker := range Markers {
			if pathExists(filepath.Join(currentDir, marker)) {
				log.WithFields(logrus.Fields{
					logging.StandardFields.ProjectRoot: currentDir,
					"marker":                           marker,
				}).Debug("Found project root")
				return currentDir, nil
			}
		}

		parentDir := filepath.Dir(currentDir)
		if parentDir == currentDir {
			break
		}
		currentDir = parentDir
	}

	return "", fmt.Errorf("%w from %s", ErrProjectRootNotFound, startDir)
}

// pathExists checks if a file or directory exists
func pathExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// dirExists checks if a directory exists
func dirExists(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return info.IsDir()
}
