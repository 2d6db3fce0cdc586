// Package inspector answers questions about the environment a deployment
// runs in: whether it is CI, which environment type applies, what the
// current branch is, and whether the required variables are configured.
package inspector

import (
	"path/filepath"

	"github.com/sirupsen/logrus"

	"github.com/mrz1836/go-envinspect/internal/clock"
	"github.com/mrz1836/go-envinspect/internal/env"
	"github.com/mrz1836/go-envinspect/internal/git"
	"github.com/mrz1836/go-envinspect/internal/logging"
	"github.com/mrz1836/go-envinspect/internal/output"
)

// Default file names, relative to the project root
const (
	DefaultEnvFile  = ".env"
	DefaultTempFile = ".env.temp"
)

// VarNames names the environment variables the inspector reads
type VarNames struct {
	CI              string   // generic CI indicator
	Platforms       []string // platform-specific CI indicators
	EnvironmentType string   // explicit environment type
	Ref             string   // fully-qualified ref, e.g. refs/heads/main
}

// DefaultVarNames returns the variable names used when none are configured
func DefaultVarNames() VarNames {
	return VarNames{
		CI: "CI",
		Platforms: []string{
			"GITHUB_ACTIONS",
			"GITLAB_CI",
			"CIRCLECI",
			"TRAVIS",
			"JENKINS_URL",
			"BITBUCKET_BUILD_NUMBER",
			"BUILDKITE",
			"TF_BUILD",
		},
		EnvironmentType: "ENVIRONMENT",
		Ref:             "GITHUB_REF",
	}
}

// withDefaults fills empty fields from DefaultVarNames
func (v VarNames) withDefaults() VarNames {
	defaults := DefaultVarNames()
	if v.CI == "" {
		v.CI = defaults.CI
	}
	if len(v.Platforms) == 0 {
		v.Platforms = defaults.Platforms
	} else {
		v.Platforms = append([]string(nil), v.Platforms...)
	}
	if v.EnvironmentType == "" {
		v.EnvironmentType = defaults.EnvironmentType
	}
	if v.Ref == "" {
		v.Ref = defaults.Ref
	}
	return v
}

// Options holds the dependencies of an Inspector. Zero values select the
// process environment, the git binary, the system clock, the current
// directory, the console and the standard logger.
type Options struct {
	Env    env.Provider
	Git    git.Client
	Clock  clock.Clock
	Root   string
	Out    output.Writer
	Logger *logrus.Logger
	Vars   VarNames
}

// Inspector inspects the environment. It is immutable after New and safe
// for concurrent use.
type Inspector struct {
	env    env.Provider
	git    git.Client
	clock  clock.Clock
	root   string
	out    output.Writer
	logger *logrus.Logger
	vars   VarNames
}

// New creates an Inspector from opts
func New(opts Options) *Inspector {
	logger := opts.Logger
	if logger == nil {
		logger = logrus.StandardLogger()
	}

	i := &Inspector{
		env:    opts.Env,
		git:    opts.Git,
		clock:  opts.Clock,
		root:   opts.Root,
		out:    opts.Out,
		logger: logger,
		vars:   opts.Vars.withDefaults(),
	}

	if i.env == nil {
		i.env = env.OSProvider{}
	}
	if i.git == nil {
		i.git = git.NewClient(nil, logger)
	}
	if i.clock == nil {
		i.clock = clock.System{}
	}
	if i.out == nil {
		i.out = output.Console()
	}
	if i.root == "" {
		i.root = "."
	}
	if abs, err := filepath.Abs(i.root); err == nil {
		i.root = abs
	}

	return i
}

// Root returns the project root that relative file names resolve against
func (i *Inspector) Root() string {
	return i.root
}

// Vars returns the variable names in effect
func (i *Inspector) Vars() VarNames {
	vars := i.vars
	vars.Platforms = append([]string(nil), i.vars.Platforms...)
	return vars
}

// ResolvePath returns name resolved against the project root
func (i *Inspector) ResolvePath(name string) string {
	if filepath.IsAbs(name) {
		return filepath.Clean(name)
	}
	return filepath.Join(i.root, name)
}

// log returns an entry tagged with the inspector component and operation
func (i *Inspector) log(operation string) *logrus.Entry {
	return logging.WithStandardFields(i.logger, nil, logging.ComponentNames.Inspector).
		WithField(logging.StandardFields.Operation, operation)
}
