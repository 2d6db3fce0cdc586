package inspector

import (
	"context"
	"regexp"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/mrz1836/go-envinspect/internal/clock"
	"github.com/mrz1836/go-envinspect/internal/env"
)

var channelNamePattern = regexp.MustCompile(`^pr-[a-z0-9_-]{0,30}-\d{8}$`)

func TestSanitizeBranch(t *testing.T) {
	tests := []struct {
		branch string
		want   string
	}{
		{"main", "main"},
		{"Feature/ABC-123", "feature-abc-123"},
		{"--Hello__World", "hello__world"},
		{"a//b", "a-b"},
		{"fix: the thing!", "fix-the-thing-"},
		{"___", ""},
		{"ÜBER-cool", "ber-cool"},
		{"dependabot/npm_and_yarn/lodash-4.17.21", "dependabot-npm_and_yarn-lodash"},
		{strings.Repeat("x", 45), strings.Repeat("x", 30)},
	}

	for _, tt := range tests {
		t.Run(tt.branch, func(t *testing.T) {
			got := SanitizeBranch(tt.branch)
			assert.Equal(t, tt.want, got)
			assert.LessOrEqual(t, len(got), maxSanitizedChars)
		})
	}
}

func TestGenerateEnvironmentName(t *testing.T) {
	ctx := context.Background()

	t.Run("explicit branch uses UTC date", func(t *testing.T) {
		f := newFixture(t, env.MapProvider{})
		assert.Equal(t, "pr-feature-login-20240306", f.inspector.GenerateEnvironmentName(ctx, "Feature/Login"))
		f.git.AssertNotCalled(t, "CurrentBranch", mock.Anything, mock.Anything)
	})

	t.Run("empty branch resolves from ref", func(t *testing.T) {
		f := newFixture(t, env.MapProvider{"GITHUB_REF": "refs/heads/preview-checkout"})
		assert.Equal(t, "pr-preview-checkout-20240306", f.inspector.GenerateEnvironmentName(ctx, ""))
	})

	t.Run("empty branch resolves from git", func(t *testing.T) {
		f := newFixture(t, env.MapProvider{})
		f.git.On("CurrentBranch", mock.Anything, f.root).Return("bugfix/42", nil)
		assert.Equal(t, "pr-bugfix-42-20240306", f.inspector.GenerateEnvironmentName(ctx, ""))
	})

	t.Run("unresolvable branch is unknown", func(t *testing.T) {
		f := newFixture(t, env.MapProvider{})
		f.noBranch()
		assert.Equal(t, "pr-unknown-20240306", f.inspector.GenerateEnvironmentName(ctx, ""))
	})

	t.Run("branch that sanitizes to nothing", func(t *testing.T) {
		f := newFixture(t, env.MapProvider{})
		assert.Equal(t, "pr--20240306", f.inspector.GenerateEnvironmentName(ctx, "///"))
	})
}

func TestGenerateEnvironmentNameFormat(t *testing.T) {
	f := newFixture(t, env.MapProvider{})
	branches := []string{
		"main",
		"Feature/ABC-123",
		"release/2024.03",
		"  spaces  everywhere  ",
		"UPPER_lower-123",
		strings.Repeat("long-branch-name-", 5),
		"émoji-🚀-branch",
	}

	for _, branch := range branches {
		name := f.inspector.GenerateEnvironmentName(context.Background(), branch)
		assert.Regexp(t, channelNamePattern, name, "branch %q", branch)
	}
}

// Names are unique per branch and UTC day only: two deployments of the same
// branch on the same day collide.
func TestGenerateEnvironmentNameSameDayCollision(t *testing.T) {
	morning := time.Date(2024, 7, 1, 0, 5, 0, 0, time.UTC)
	evening := time.Date(2024, 7, 1, 23, 55, 0, 0, time.UTC)
	nextDay := time.Date(2024, 7, 2, 0, 0, 0, 0, time.UTC)

	nameAt := func(at time.Time) string {
		ins := New(Options{Env: env.MapProvider{}, Clock: clock.Fixed{At: at}})
		return ins.GenerateEnvironmentName(context.Background(), "feature/login")
	}

	assert.Equal(t, nameAt(morning), nameAt(evening))
	assert.Equal(t, "pr-feature-login-20240701", nameAt(evening))
	assert.NotEqual(t, nameAt(evening), nameAt(nextDay))
}
