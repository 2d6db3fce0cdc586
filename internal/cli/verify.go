package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	appErrors "github.com/mrz1836/go-envinspect/internal/errors"
	"github.com/mrz1836/go-envinspect/internal/inspector"
	"github.com/mrz1836/go-envinspect/internal/output"
)

// createVerifyCmd creates the verify command
func createVerifyCmd(flags *Flags) *cobra.Command {
	return &cobra.Command{
		Use:   "verify [VAR...]",
		Short: "Verify required variables are set in the environment",
		Long: `Verify that every named variable, plus the variables the configuration
requires for the current environment type, is set to a non-empty value.
Exits non-zero when any are missing.`,
		Example: `  # Variables from the configuration profile
  go-envinspect verify

  # Extra variables on the command line
  go-envinspect verify API_URL SENTRY_DSN`,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := sessionFrom(cmd)
			if err != nil {
				return err
			}

			required := requiredVars(cmd, s, args)
			result := s.inspector.VerifyRequiredEnvVars(required)

			if err = render(cmd.OutOrStdout(), resultFormat(flags), result, func(w io.Writer) error {
				if result.Valid {
					output.NewColoredWriter(w, cmd.ErrOrStderr()).
						Successf("%d required variable(s) set", len(required))
				}
				return nil
			}); err != nil {
				return err
			}

			if !result.Valid {
				return appErrors.MissingVariablesError("environment", result.Missing)
			}
			return nil
		},
	}
}

// createCheckEnvCmd creates the check-env command
func createCheckEnvCmd(flags *Flags) *cobra.Command {
	var fileName string

	cmd := &cobra.Command{
		Use:   "check-env [VAR...]",
		Short: "Verify required variables are defined in an env file",
		Long: `Verify that an env file assigns every named variable, plus the variables
the configuration requires for the current environment type. Only KEY=VALUE
lines with a non-empty value count. Exits non-zero when the file is missing,
unreadable or incomplete.`,
		Example: `  # Check .env in the project root
  go-envinspect check-env API_URL

  # Check another file
  go-envinspect check-env --file .env.production`,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := sessionFrom(cmd)
			if err != nil {
				return err
			}

			name := fileName
			if name == "" {
				name = s.config.EnvFile
			}

			result := s.inspector.CheckEnvFile(inspector.CheckOptions{
				FileName:     name,
				RequiredVars: requiredVars(cmd, s, args),
			})

			if flags.structured() {
				if err = render(cmd.OutOrStdout(), formatJSON, result, nil); err != nil {
					return err
				}
			}

			switch {
			case result.Error != "":
				return fmt.Errorf("%w: %s", ErrEnvFileUnreadable, result.Error)
			case !result.Exists:
				return fmt.Errorf("%w: %s", ErrEnvFileNotFound, name)
			case !result.Valid:
				return appErrors.MissingVariablesError(name, result.Missing)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&fileName, "file", "f", "", "Env file to check (default from config, .env)")
	return cmd
}

// requiredVars returns args followed by the configured profile for the
// current environment type
func requiredVars(cmd *cobra.Command, s *session, args []string) []string {
	envType := s.inspector.EnvironmentType(cmd.Context())
	profile := s.config.RequiredFor(envType.String())

	required := make([]string, 0, len(args)+len(profile))
	required = append(required, args...)
	required = append(required, profile...)

	s.logger.WithField("environment_type", envType).
		Debugf("Required variables: %s", strings.Join(required, ", "))
	return required
}
