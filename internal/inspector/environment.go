package inspector

import (
	"context"
	"strings"

	"github.com/mrz1836/go-envinspect/internal/env"
	"github.com/mrz1836/go-envinspect/internal/logging"
)

// EnvironmentType is a deployment environment classification
type EnvironmentType string

// Environment types
const (
	Development EnvironmentType = "development"
	Staging     EnvironmentType = "staging"
	Production  EnvironmentType = "production"
	Preview     EnvironmentType = "preview"
)

// EnvironmentTypes lists every classification in a stable order
func EnvironmentTypes() []EnvironmentType {
	return []EnvironmentType{Development, Staging, Production, Preview}
}

// ParseEnvironmentType returns the EnvironmentType named exactly s
func ParseEnvironmentType(s string) (EnvironmentType, bool) {
	for _, t := range EnvironmentTypes() {
		if string(t) == s {
			return t, true
		}
	}
	return "", false
}

// String returns the type name
func (t EnvironmentType) String() string {
	return string(t)
}

const refHeadsPrefix = "refs/heads/"

// IsCI reports whether the generic CI indicator or any platform indicator
// is set to a non-empty value. Any non-empty value counts, "false" included.
func (i *Inspector) IsCI() bool {
	names := append([]string{i.vars.CI}, i.vars.Platforms...)
	for _, name := range names {
		if env.IsSet(i.env, name) {
			i.log(logging.OperationTypes.DetectCI).WithField("variable", name).Debug("CI indicator found")
			return true
		}
	}
	return false
}

// EnvironmentType classifies the current environment. An explicit type
// variable holding one of the known types wins. Otherwise the branch name
// decides: main and master are production, staging and stage are staging,
// pr- and preview- prefixes are preview. Everything else is development.
func (i *Inspector) EnvironmentType(ctx context.Context) EnvironmentType {
	log := i.log(logging.OperationTypes.ClassifyEnv)

	if explicit, ok := ParseEnvironmentType(env.Value(i.env, i.vars.EnvironmentType)); ok {
		log.WithField(logging.StandardFields.EnvironmentType, explicit).Debugf("Using %s", i.vars.EnvironmentType)
		return explicit
	}

	branch, _ := i.BranchName(ctx)
	envType := classifyBranch(branch)
	log.WithFields(map[string]interface{}{
		logging.StandardFields.BranchName:      branch,
		logging.StandardFields.EnvironmentType: envType,
	}).Debug("Classified environment from branch")

	return envType
}

// classifyBranch maps a branch name to an environment type
func classifyBranch(branch string) EnvironmentType {
	switch {
	case branch == "main" || branch == "master":
		return Production
	case branch == "staging" || branch == "stage":
		return Staging
	case strings.HasPrefix(branch, "pr-") || strings.HasPrefix(branch, "preview-"):
		return Preview
	default:
		return Development
	}
}

// BranchName returns the current branch. A ref variable of the form
// refs/heads/<name> is preferred; otherwise git is asked from the project
// root. Git failures are not errors: they yield ("", false).
func (i *Inspector) BranchName(ctx context.Context) (string, bool) {
	log := i.log(logging.OperationTypes.ResolveBranch)

	if name, ok := strings.CutPrefix(env.Value(i.env, i.vars.Ref), refHeadsPrefix); ok && name != "" {
		log.WithField(logging.StandardFields.BranchName, name).Debugf("Branch taken from %s", i.vars.Ref)
		return name, true
	}

	branch, err := i.git.CurrentBranch(ctx, i.root)
	if err != nil {
		log.WithError(err).Debug("Unable to determine branch from git")
		return "", false
	}
	if branch == "" {
		return "", false
	}

	log.WithField(logging.StandardFields.BranchName, branch).Debug("Branch taken from git")
	return branch, true
}
