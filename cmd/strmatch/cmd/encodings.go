package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Aman-CERP/strmatch/internal/textenc"
)

// newEncodingsCmd lists the canonical names accepted by --encoding.
func newEncodingsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "encodings",
		Short: "List supported encoding names",
		Long: `List the canonical names accepted by the --encoding flag.

Lookups go through the WHATWG label registry, so common aliases resolve
to the same encoding: "latin1", "ISO-8859-1", and "iso88591" all select
iso-8859-1. The list below shows one canonical name per encoding.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, name := range textenc.Names() {
				fmt.Fprintln(cmd.OutOrStdout(), name)
			}
			return nil
		},
	}
}
