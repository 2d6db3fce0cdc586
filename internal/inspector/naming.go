package inspector

import (
	"context"
	"regexp"
	"strings"

	"github.com/mrz1836/go-envinspect/internal/logging"
)

const (
	channelPrefix     = "pr-"
	unknownBranch     = "unknown"
	maxSanitizedChars = 30
	dateSuffixLayout  = "20060102"
)

var (
	disallowedChars = regexp.MustCompile(`[^a-z0-9_-]`)
	leadingNonAlnum = regexp.MustCompile(`^[^a-z0-9]+`)
	dashRuns        = regexp.MustCompile(`-{2,}`)
)

// GenerateEnvironmentName builds a preview channel name of the form
// pr-<sanitized branch>-<YYYYMMDD>. An empty branch is resolved from the
// environment, falling back to "unknown". The date is the current UTC day,
// so the same branch yields the same name until midnight UTC.
func (i *Inspector) GenerateEnvironmentName(ctx context.Context, branch string) string {
	if branch == "" {
		resolved, ok := i.BranchName(ctx)
		if !ok || resolved == "" {
			resolved = unknownBranch
		}
		branch = resolved
	}

	name := channelPrefix + SanitizeBranch(branch) + "-" + i.clock.Now().UTC().Format(dateSuffixLayout)

	i.log(logging.OperationTypes.GenerateName).WithFields(map[string]interface{}{
		logging.StandardFields.BranchName:  branch,
		logging.StandardFields.ChannelName: name,
	}).Debug("Generated channel name")

	return name
}

// SanitizeBranch lowercases branch, replaces characters outside
// [a-z0-9_-] with '-', strips leading characters outside [a-z0-9],
// collapses runs of '-' and truncates to 30 characters.
func SanitizeBranch(branch string) string {
	s := strings.ToLower(branch)
	s = disallowedChars.ReplaceAllString(s, "-")
	s = leadingNonAlnum.ReplaceAllString(s, "")
	s = dashRuns.ReplaceAllString(s, "-")
	if len(s) > maxSanitizedChars {
		s = s[:maxSanitizedChars]
	}
	return s
}
