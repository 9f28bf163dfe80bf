// Package cmd provides the CLI commands for strmatch.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	apperrors "github.com/Aman-CERP/strmatch/internal/errors"
	"github.com/Aman-CERP/strmatch/pkg/version"
)

// Debug logging flags, shared by every subcommand.
var (
	debugMode bool
	logFile   string
)

// NewRootCmd creates the root command for the strmatch CLI.
func NewRootCmd() *cobra.Command {
	var opts searchOptions

	cmd := &cobra.Command{
		Use:   "strmatch <pattern>",
		Short: "Find every occurrence of a fixed string in text, files, or directories",
		Long: `strmatch locates every occurrence of a fixed pattern in an inline
string, a single file, or the top-level text files of a directory.

Two matching algorithms are available: boyer-moore (default) and
naive. Both report identical positions; boyer-moore skips ahead on
mismatches and wins on longer patterns.

Positions count characters, not bytes. Inline searches report column
offsets; file and directory searches report 1-based line numbers with
0-based columns. Matches may overlap.

Runs are logged to ~/.strmatch/logs/strmatch.log; pass --debug for
verbose logging or --log-file to relocate it.`,
		Example: `  # Search an inline string
  strmatch foo --text "foo bar foo"

  # Search one file, case-insensitively
  strmatch -i error --file server.log

  # Search all .txt files in a directory, as JSON
  strmatch needle --dir ./notes --format json

  # Search a latin1 file
  strmatch café --file menu.txt --encoding latin1`,
		Version:       version.Version,
		Args:          cobra.ExactArgs(1),
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			// Usage text accompanies parse errors only, never search
			// failures.
			cmd.SilenceUsage = true
			return runSearch(cmd, args[0], opts)
		},
	}

	// Set version template
	cmd.SetVersionTemplate("strmatch version {{.Version}}\n")

	// Target selectors (exactly one required, validated in runSearch so
	// violations surface as structured usage errors)
	cmd.Flags().StringVarP(&opts.text, "text", "t", "", "Search this string directly")
	cmd.Flags().StringVarP(&opts.file, "file", "f", "", "Search a single file")
	cmd.Flags().StringVarP(&opts.dir, "dir", "d", "", "Search the top-level files of a directory")

	// Search parameters
	cmd.Flags().BoolVarP(&opts.ignoreCase, "ignore-case", "i", false, "Match case-insensitively")
	cmd.Flags().StringVar(&opts.algorithm, "algorithm", "", "Matching algorithm: boyer-moore, naive (default from config)")
	cmd.Flags().StringVar(&opts.encoding, "encoding", "", "Text encoding of file sources (default from config; see 'strmatch encodings')")
	cmd.Flags().StringSliceVar(&opts.extensions, "ext", nil, "File extensions scanned in directory mode (default from config)")

	// Output control
	cmd.Flags().StringVar(&opts.format, "format", "", "Output format: text, json (default from config)")
	cmd.Flags().BoolVar(&opts.noColor, "no-color", false, "Disable styled output")
	cmd.Flags().BoolVar(&opts.noProgress, "no-progress", false, "Disable the directory scan progress display")

	// Debug logging flags
	cmd.PersistentFlags().BoolVar(&debugMode, "debug", false, "Enable debug logging")
	cmd.PersistentFlags().StringVar(&logFile, "log-file", "", "Log file path (default ~/.strmatch/logs/strmatch.log)")

	// Add subcommands
	cmd.AddCommand(newVersionCmd())
	cmd.AddCommand(newEncodingsCmd())
	cmd.AddCommand(newConfigCmd())
	cmd.AddCommand(newLogsCmd())

	return cmd
}

// Execute runs the root command and returns the process exit code.
// Structured errors render with their code and suggestion; anything else
// (cobra's own parse errors) prints as-is.
func Execute() int {
	if err := NewRootCmd().Execute(); err != nil {
		if apperrors.GetCode(err) != "" {
			fmt.Fprint(os.Stderr, apperrors.FormatForCLI(err))
		} else {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		return 1
	}
	return 0
}
