package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
)

// createReportCmd creates the report command
func createReportCmd(flags *Flags) *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "report",
		Short: "Print every environment property at once",
		Long: `Print CI detection, environment type, branch, preview channel name and
project root in one document.`,
		Example: `  go-envinspect report
  go-envinspect report --output yaml
  go-envinspect report --json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			s, err := sessionFrom(cmd)
			if err != nil {
				return err
			}

			if flags.structured() {
				format = formatJSON
			}

			report := s.inspector.Report(cmd.Context())
			return render(cmd.OutOrStdout(), format, report, func(w io.Writer) error {
				branch := report.Branch
				if !report.BranchResolved {
					branch = "(unresolved)"
				}

				rows := []struct {
					label string
					value any
				}{
					{"CI:", report.CI},
					{"Environment:", report.EnvironmentType},
					{"Branch:", branch},
					{"Channel:", report.ChannelName},
					{"Project root:", report.ProjectRoot},
				}
				for _, row := range rows {
					if _, err := fmt.Fprintf(w, "%-14s %v\n", row.label, row.value); err != nil {
						return err
					}
				}
				return nil
			})
		},
	}

	cmd.Flags().StringVarP(&format, "output", "o", formatText, "Output format (text, json, yaml)")
	return cmd
}
