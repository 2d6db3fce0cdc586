package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	appErrors "github.com/mrz1836/go-envinspect/internal/errors"
)

// createCICmd creates the ci command
func createCICmd(flags *Flags) *cobra.Command {
	return &cobra.Command{
		Use:   "ci",
		Short: "Report whether the process runs under a CI system",
		Long: `Print true when the generic CI indicator or any platform-specific
indicator (GitHub Actions, GitLab CI, CircleCI, Travis, Jenkins, Bitbucket,
Buildkite, Azure Pipelines) is set to a non-empty value.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			s, err := sessionFrom(cmd)
			if err != nil {
				return err
			}

			isCI := s.inspector.IsCI()
			return render(cmd.OutOrStdout(), resultFormat(flags), map[string]bool{"ci": isCI}, line(isCI))
		},
	}
}

// createEnvTypeCmd creates the env-type command
func createEnvTypeCmd(flags *Flags) *cobra.Command {
	return &cobra.Command{
		Use:   "env-type",
		Short: "Classify the deployment environment",
		Long: `Print development, staging, production or preview.

An explicit ENVIRONMENT variable holding one of those values wins. Otherwise
the branch decides: main and master are production, staging and stage are
staging, branches starting with pr- or preview- are preview, and anything
else is development.`,
		Aliases: []string{"env"},
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			s, err := sessionFrom(cmd)
			if err != nil {
				return err
			}

			envType := s.inspector.EnvironmentType(cmd.Context())
			return render(cmd.OutOrStdout(), resultFormat(flags),
				map[string]string{"environment_type": envType.String()}, line(envType))
		},
	}
}

// createBranchCmd creates the branch command
func createBranchCmd(flags *Flags) *cobra.Command {
	return &cobra.Command{
		Use:   "branch",
		Short: "Print the current branch name",
		Long: `Print the branch taken from GITHUB_REF (refs/heads/<name>) or, failing
that, from git. Exits non-zero when no branch can be determined.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			s, err := sessionFrom(cmd)
			if err != nil {
				return err
			}

			branch, ok := s.inspector.BranchName(cmd.Context())
			if !ok {
				return fmt.Errorf("%w: not on a branch and %s is not set", appErrors.ErrBranchNotFound, s.inspector.Vars().Ref)
			}
			return render(cmd.OutOrStdout(), resultFormat(flags), map[string]string{"branch": branch}, line(branch))
		},
	}
}

// createChannelNameCmd creates the channel-name command
func createChannelNameCmd(flags *Flags) *cobra.Command {
	return &cobra.Command{
		Use:   "channel-name [branch]",
		Short: "Generate a preview channel name",
		Long: `Print pr-<sanitized branch>-<YYYYMMDD> using the current UTC date.

Without an argument the current branch is used, or "unknown" when it cannot
be determined. The same branch produces the same name for a whole UTC day.`,
		Example: `  # Name for the current branch
  go-envinspect channel-name

  # Name for an explicit branch
  go-envinspect channel-name feature/login`,
		Aliases: []string{"name"},
		Args:    cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := sessionFrom(cmd)
			if err != nil {
				return err
			}

			var branch string
			if len(args) == 1 {
				branch = args[0]
			}

			name := s.inspector.GenerateEnvironmentName(cmd.Context(), branch)
			return render(cmd.OutOrStdout(), resultFormat(flags), map[string]string{"channel_name": name}, line(name))
		},
	}
}
