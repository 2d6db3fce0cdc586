package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/mrz1836/go-envinspect/internal/env"
	"github.com/mrz1836/go-envinspect/internal/output"
)

// createWriteEnvCmd creates the write-env command
func createWriteEnvCmd(flags *Flags) *cobra.Command {
	var (
		fileName string
		dryRun   bool
	)

	cmd := &cobra.Command{
		Use:   "write-env KEY=VALUE...",
		Short: "Write variables to a temporary env file",
		Long: `Write one KEY=VALUE line per argument, in argument order, replacing the
file. Values are written verbatim without quoting. With --dry-run a unified
diff against the current file is printed instead.`,
		Example: `  # Write .env.temp in the project root
  go-envinspect write-env API_URL=https://api.example.com DEBUG=false

  # Preview the change
  go-envinspect write-env --dry-run --file .env.ci TOKEN=abc`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := sessionFrom(cmd)
			if err != nil {
				return err
			}

			vars, err := env.ParseAssignments(args)
			if err != nil {
				return err
			}

			name := fileName
			if name == "" {
				name = s.config.TempFile
			}

			if dryRun {
				return previewWrite(cmd, s, name, vars)
			}

			path, err := s.inspector.CreateTempEnvFile(vars, name)
			if err != nil {
				return err
			}

			if flags.structured() {
				return render(cmd.OutOrStdout(), formatJSON, map[string]interface{}{
					"path":      path,
					"variables": vars.Keys(),
				}, nil)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&fileName, "file", "f", "", "File to write (default from config, .env.temp)")
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "Preview the change as a unified diff without writing")
	return cmd
}

// previewWrite prints the diff write-env would apply
func previewWrite(cmd *cobra.Command, s *session, name string, vars env.Variables) error {
	path := s.inspector.ResolvePath(name)

	current, err := os.ReadFile(path) //nolint:gosec // path is chosen by the user
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("failed to read %s: %w", path, err)
	}

	diff, err := output.UnifiedDiff(path, string(current), vars.Render())
	if err != nil {
		return fmt.Errorf("failed to render diff: %w", err)
	}

	out := output.NewColoredWriter(cmd.OutOrStdout(), cmd.ErrOrStderr())
	if diff == "" {
		out.Infof("DRY-RUN: %s is already up to date", path)
		return nil
	}

	out.Infof("DRY-RUN: would write %d variable(s) to %s", len(vars), path)
	_, err = fmt.Fprint(cmd.OutOrStdout(), diff)
	return err
}
