package cmd

import (
	"fmt"
	"regexp"

	"github.com/spf13/cobra"

	"github.com/Aman-CERP/strmatch/internal/logging"
	"github.com/Aman-CERP/strmatch/internal/ui"
)

// newLogsCmd views the strmatch log file.
func newLogsCmd() *cobra.Command {
	var (
		lines   int
		level   string
		filter  string
		noColor bool
		file    string
	)

	cmd := &cobra.Command{
		Use:   "logs",
		Short: "View strmatch logs",
		Long: `View recent entries from the strmatch log file.

Every search run appends structured JSON lines to the log file
(default ~/.strmatch/logs/strmatch.log). This command shows the last
entries in a readable form with optional level and pattern filters.`,
		Example: `  # Show the last 50 log entries
  strmatch logs

  # Show the last 200 entries
  strmatch logs -n 200

  # Show only warnings and errors
  strmatch logs --level warn

  # Filter entries by pattern
  strmatch logs --filter "search_complete"`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			path := file
			if path == "" {
				path = logging.DefaultLogPath()
			}

			var pattern *regexp.Regexp
			if filter != "" {
				var err error
				pattern, err = regexp.Compile(filter)
				if err != nil {
					return fmt.Errorf("invalid filter pattern: %w", err)
				}
			}

			viewer := logging.NewViewer(logging.ViewerConfig{
				Level:   level,
				Pattern: pattern,
				NoColor: noColor || !ui.IsTTY(cmd.OutOrStdout()),
			}, cmd.OutOrStdout())

			fmt.Fprintf(cmd.ErrOrStderr(), "Log file: %s\n---\n", path)

			entries, err := viewer.Tail(path, lines)
			if err != nil {
				return err
			}

			viewer.Print(entries)
			return nil
		},
	}

	cmd.Flags().IntVarP(&lines, "lines", "n", 50, "Number of lines to show")
	cmd.Flags().StringVar(&level, "level", "", "Filter by log level (debug|info|warn|error)")
	cmd.Flags().StringVar(&filter, "filter", "", "Filter by keyword/pattern (regex)")
	cmd.Flags().BoolVar(&noColor, "no-color", false, "Disable colored output")
	cmd.Flags().StringVar(&file, "file", "", "Path to log file (default ~/.strmatch/logs/strmatch.log)")

	return cmd
}
