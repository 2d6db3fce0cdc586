package git

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"
)

// ErrEmptyOutput is returned when git succeeds but prints nothing
var ErrEmptyOutput = errors.New("git returned empty output")

// gitClient implements the Client interface on top of a Runner
type gitClient struct {
	runner Runner
	logger *logrus.Logger
}

// NewClient creates a new Git client. A nil runner uses ExecRunner.
func NewClient(runner Runner, logger *logrus.Logger) Client {
	if runner == nil {
		runner = NewExecRunner(logger)
	}
	return &gitClient{
		runner: runner,
		logger: logger,
	}
}

// CurrentBranch returns the name of the current branch
func (g *gitClient) CurrentBranch(ctx context.Context, repoPath string) (string, error) {
	branch, err := g.output(ctx, repoPath, "rev-parse", "--abbrev-ref", "HEAD")
	if err != nil {
		return "", fmt.Errorf("failed to get current branch: %w", err)
	}
	return branch, nil
}

// output runs a git subcommand and returns its trimmed, non-empty stdout
func (g *gitClient) output(ctx context.Context, repoPath string, args ...string) (string, error) {
	out, err := g.runner.Run(ctx, repoPath, "git", args...)
	if err != nil {
		return "", err
	}

	out = strings.TrimSpace(out)
	if out == "" {
		return "", ErrEmptyOutput
	}
	return out, nil
}
