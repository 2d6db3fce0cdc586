// Package git provides the version-control queries used to classify the
// current deployment environment.
package git

import "context"

// Client defines the interface for Git operations
type Client interface {
	// CurrentBranch returns the abbreviated name of the branch checked out
	// in repoPath. A detached HEAD is reported as "HEAD".
	CurrentBranch(ctx context.Context, repoPath string) (string, error)
}

// Runner executes an external command and returns its standard output.
// Implementations must report failures as errors rather than panicking.
type Runner interface {
	Run(ctx context.Context, dir, name string, args ...string) (string, error)
}
