// Package cli implements the command-line interface for go-envinspect.
package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/mrz1836/go-envinspect/internal/clock"
	"github.com/mrz1836/go-envinspect/internal/config"
	"github.com/mrz1836/go-envinspect/internal/env"
	"github.com/mrz1836/go-envinspect/internal/git"
	"github.com/mrz1836/go-envinspect/internal/inspector"
	"github.com/mrz1836/go-envinspect/internal/logging"
	"github.com/mrz1836/go-envinspect/internal/output"
	"github.com/mrz1836/go-envinspect/internal/workspace"
)

// sessionContextKey is a type for context keys to avoid collisions
type sessionContextKey struct{}

// Dependencies are the capabilities commands build an Inspector from.
// Nil fields select the production implementations.
type Dependencies struct {
	Env   env.Provider
	Git   git.Client
	Clock clock.Clock
}

// session is the per-invocation state prepared by PersistentPreRunE
type session struct {
	logger    *logrus.Logger
	config    *config.Config
	inspector *inspector.Inspector
}

const rootLong = `go-envinspect inspects the environment a build or deployment runs in.

It detects CI systems, classifies the deployment environment from variables
or the current git branch, derives preview channel names, and verifies that
required variables are present in the environment or in .env files.`

// NewRootCmd creates a new isolated root command instance
func NewRootCmd() *cobra.Command {
	return NewRootCmdWithDependencies(Dependencies{})
}

// NewRootCmdWithDependencies creates a root command whose Inspector uses deps
func NewRootCmdWithDependencies(deps Dependencies) *cobra.Command {
	flags := newFlags()

	cmd := &cobra.Command{
		Use:               "go-envinspect",
		Short:             "Inspect CI, deployment environment and .env files",
		Long:              rootLong,
		PersistentPreRunE: createSetup(flags, deps),
		SilenceUsage:      true,
		SilenceErrors:     true,
	}

	pf := cmd.PersistentFlags()
	pf.StringVarP(&flags.ConfigFile, "config", "c", flags.ConfigFile, "Path to configuration file, relative to the project root")
	pf.StringVar(&flags.Root, "root", "", "Project root (default: detected)")
	pf.StringVar(&flags.LogLevel, "log-level", flags.LogLevel, "Log level (trace, debug, info, warn, error)")
	pf.StringVar(&flags.LogFormat, "log-format", flags.LogFormat, "Log format (text, json)")
	pf.CountVarP(&flags.Verbose, "verbose", "v", "Increase verbosity (-v debug, -vv trace)")
	pf.BoolVar(&flags.JSONOutput, "json", false, "Print results as JSON")
	pf.StringArrayVar(&flags.EnvFiles, "env-file", nil, "Load variables from an env file before inspecting (repeatable)")

	cmd.AddCommand(createCICmd(flags))
	cmd.AddCommand(createEnvTypeCmd(flags))
	cmd.AddCommand(createBranchCmd(flags))
	cmd.AddCommand(createChannelNameCmd(flags))
	cmd.AddCommand(createVerifyCmd(flags))
	cmd.AddCommand(createCheckEnvCmd(flags))
	cmd.AddCommand(createWriteEnvCmd(flags))
	cmd.AddCommand(createReportCmd(flags))
	cmd.AddCommand(createVersionCmd(flags))

	return cmd
}

// ExecuteWithContext runs the CLI with args, canceling ctx on interrupt
func ExecuteWithContext(ctx context.Context, args []string) error {
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	cmd := NewRootCmd()
	cmd.SetArgs(args)
	return cmd.ExecuteContext(ctx)
}

// createSetup configures logging, preloads env files, loads configuration
// and builds the Inspector for the command about to run
func createSetup(flags *Flags, deps Dependencies) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, _ []string) error {
		logConfig := flags.logConfig().WithCorrelationID(logging.GenerateCorrelationID())
		logger, err := newLogger(cmd, logConfig)
		if err != nil {
			return err
		}
		log := logging.WithStandardFields(logger, logConfig, logging.ComponentNames.CLI)

		cwd, err := os.Getwd()
		if err != nil {
			return fmt.Errorf("failed to get working directory: %w", err)
		}

		if len(flags.EnvFiles) > 0 {
			loaded, loadErr := env.Preload(cwd, flags.EnvFiles...)
			if loadErr != nil {
				return loadErr
			}
			log.WithField("files", loaded).Debug("Preloaded env files")
		}

		provider := deps.Env
		if provider == nil {
			provider = env.OSProvider{}
		}

		root := flags.Root
		if root == "" {
			root = workspace.Resolve(provider, cwd, logger)
		}

		configPath := flags.ConfigFile
		if !filepath.IsAbs(configPath) {
			configPath = filepath.Join(root, configPath)
		}

		cfg, err := config.Load(configPath, logger)
		if err != nil {
			return fmt.Errorf("failed to load configuration: %w", err)
		}
		if err = cfg.CheckMinVersion(GetVersion()); err != nil {
			return err
		}

		ins := inspector.New(inspector.Options{
			Env:    provider,
			Git:    deps.Git,
			Clock:  deps.Clock,
			Root:   root,
			Out:    messageWriter(cmd, flags, logger),
			Logger: logger,
			Vars:   varNames(cfg),
		})

		log.WithField("config", configPath).
			WithField(logging.StandardFields.ProjectRoot, ins.Root()).
			Debug("CLI initialized")

		cmd.SetContext(context.WithValue(cmd.Context(), sessionContextKey{}, &session{
			logger:    logger,
			config:    cfg,
			inspector: ins,
		}))
		return nil
	}
}

// newLogger creates an isolated logger writing to the command's stderr
func newLogger(cmd *cobra.Command, logConfig *logging.LogConfig) (*logrus.Logger, error) {
	logger := logrus.New()
	logger.SetOutput(cmd.ErrOrStderr())
	if err := logging.ConfigureLogger(logger, logConfig); err != nil {
		return nil, err
	}
	return logger, nil
}

// messageWriter keeps stdout clean for structured results by routing the
// inspector's messages through the logger
func messageWriter(cmd *cobra.Command, flags *Flags, logger *logrus.Logger) output.Writer {
	if flags.structured() {
		return output.NewLogWriter(logger)
	}
	return output.NewColoredWriter(cmd.OutOrStdout(), cmd.ErrOrStderr())
}

// varNames maps configured variable names onto the inspector's
func varNames(cfg *config.Config) inspector.VarNames {
	return inspector.VarNames{
		CI:              cfg.Variables.CI,
		Platforms:       cfg.Variables.Platforms,
		EnvironmentType: cfg.Variables.EnvironmentType,
		Ref:             cfg.Variables.Ref,
	}
}

// sessionFrom returns the session stored by PersistentPreRunE
func sessionFrom(cmd *cobra.Command) (*session, error) {
	s, ok := cmd.Context().Value(sessionContextKey{}).(*session)
	if !ok {
		return nil, ErrNoSession
	}
	return s, nil
}
