// =============================================================================
// CSV to YAML Converter - Keys Command
// =============================================================================
//
// This file defines the 'keys' command, which lists the keys a conversion
// would offer, one per line, in discovery order.
//
// COMMAND USAGE:
//   csv2yaml keys [file]
//
// The file defaults to the configured input file. Parser settings
// (--delimiter, --sheet) apply as they do for 'convert'.
//
// =============================================================================

package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ginjaninja78/CSV-to-YAML-inputs/internal/converter"
)

// newKeysCmd builds the 'keys' command.
func newKeysCmd(opts *rootOptions) *cobra.Command {
	keysCmd := &cobra.Command{
		Use:   "keys [file]",
		Short: "List the keys discovered in a records file",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd, opts)
			if err != nil {
				return err
			}

			path := cfg.InputFile
			if len(args) == 1 {
				path = args[0]
			}

			discovered, err := converter.DiscoverKeys(path, cfg)
			if err != nil {
				return err
			}

			for _, key := range discovered {
				fmt.Fprintln(cmd.OutOrStdout(), key)
			}
			return nil
		},
	}

	keysCmd.Flags().String("delimiter", "", "CSV delimiter (default \",\", tab for .tsv)")
	keysCmd.Flags().String("sheet", "", "XLSX worksheet to read (default first sheet)")
	return keysCmd
}
