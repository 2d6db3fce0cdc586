package git

import (
	"context"
	"fmt"

	"github.com/stretchr/testify/mock"
)

// MockClient is a mock implementation of the Client interface
type MockClient struct {
	mock.Mock
}

// CurrentBranch mock implementation
func (m *MockClient) CurrentBranch(ctx context.Context, repoPath string) (string, error) {
	args := m.Called(ctx, repoPath)
	return stringResult(args)
}

// MockRunner is a mock implementation of the Runner interface
type MockRunner struct {
	mock.Mock
}

// Run mock implementation
func (m *MockRunner) Run(ctx context.Context, dir, name string, args ...string) (string, error) {
	callArgs := m.Called(ctx, dir, name, args)
	return stringResult(callArgs)
}

// stringResult extracts a (string, error) pair from mock arguments
func stringResult(args mock.Arguments) (string, error) {
	// Check if we have enough arguments to avoid panic
	if len(args) < 2 {
		return "", fmt.Errorf("mock not properly configured: expected 2 return values, got %d", len(args)) //nolint:err113 // defensive error for test mock
	}

	var err error
	if args.Get(1) != nil {
		e, ok := args.Get(1).(error)
		if !ok {
			return "", fmt.Errorf("mock returned non-error type: %T", args.Get(1)) //nolint:err113 // defensive error for test mock
		}
		err = e
	}

	return args.String(0), err
}
