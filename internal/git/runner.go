package git

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"strings"

	"github.com/sirupsen/logrus"
)

// Common errors
var (
	ErrGitNotFound    = errors.New("git command not found in PATH")
	ErrNotARepository = errors.New("not a git repository")
	ErrGitCommand     = errors.New("git command failed")
)

// ExecRunner implements Runner using os/exec
type ExecRunner struct {
	logger *logrus.Logger
}

// NewExecRunner creates a Runner that executes real processes
func NewExecRunner(logger *logrus.Logger) *ExecRunner {
	return &ExecRunner{logger: logger}
}

// Run executes name with args in dir and returns its raw stdout
func (r *ExecRunner) Run(ctx context.Context, dir, name string, args ...string) (string, error) {
	if _, err := exec.LookPath(name); err != nil {
		return "", fmt.Errorf("%w: %s", ErrGitNotFound, name)
	}

	cmd := exec.CommandContext(ctx, name, args...) //nolint:gosec // Arguments are safely constructed
	cmd.Dir = dir
	cmd.Env = append(os.Environ(), "GIT_TERMINAL_PROMPT=0")

	if r.logger != nil && r.logger.IsLevelEnabled(logrus.DebugLevel) {
		r.logger.WithFields(logrus.Fields{
			"command": strings.Join(cmd.Args, " "),
			"dir":     dir,
		}).Debug("Executing git command")
	}

	var stderr bytes.Buffer
	var stdout bytes.Buffer

	cmd.Stderr = &stderr
	cmd.Stdout = &stdout

	err := cmd.Run()
	if err == nil {
		return stdout.String(), nil
	}

	errMsg := strings.TrimSpace(stderr.String())
	if r.logger != nil {
		r.logger.WithFields(logrus.Fields{
			"command": strings.Join(cmd.Args, " "),
			"error":   errMsg,
		}).Debug("Git command failed")
	}

	// Check for common error patterns
	if strings.Contains(errMsg, "not a git repository") {
		return "", ErrNotARepository
	}

	if errMsg != "" {
		return "", fmt.Errorf("%w: %s", ErrGitCommand, errMsg)
	}
	return "", fmt.Errorf("%w: %w", ErrGitCommand, err)
}
