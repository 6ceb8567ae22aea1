// =============================================================================
// CSV to YAML Converter - Convert Command
// =============================================================================
//
// This file defines the 'convert' command, the main command of the tool. The
// root command runs the same function.
//
// COMMAND USAGE:
//   csv2yaml convert [flags]
//
// FLAGS:
//   --input, -i      : Records file (prompted on a terminal when not given)
//   --output, -o     : Output YAML file, "-" for stdout (prompted likewise)
//   --keys           : Preset key selection, skips the checklist
//   --no-interactive : Never prompt; select every key unless --keys is given
//   --verify         : Re-parse the rendered YAML before writing it
//   --delimiter      : CSV delimiter (",", "tab", "pipe", "semicolon", ...)
//   --sheet          : XLSX worksheet (default: first sheet)
//
// INTERACTIVE MODE:
//   Prompts and the checklist only run when stdin is a terminal and
//   interactive mode is enabled. Otherwise defaults are used and every key
//   is selected.
//
// =============================================================================

package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/ginjaninja78/CSV-to-YAML-inputs/internal/config"
	"github.com/ginjaninja78/CSV-to-YAML-inputs/internal/converter"
	"github.com/ginjaninja78/CSV-to-YAML-inputs/internal/prompt"
	"github.com/ginjaninja78/CSV-to-YAML-inputs/internal/selector"
	"github.com/ginjaninja78/CSV-to-YAML-inputs/pkg/utils"
)

// =============================================================================
// CONVERT COMMAND DEFINITION
// =============================================================================

// newConvertCmd builds the 'convert' command.
func newConvertCmd(opts *rootOptions) *cobra.Command {
	convertCmd := &cobra.Command{
		Use:   "convert",
		Short: "Convert a records file to input<i> YAML blocks",
		Long: `The convert command reads every row of the input file, lets you choose
which columns to keep, and writes one YAML block per row.

Values are trimmed, one leading and one trailing quote character are
removed, and the result is written as a double-quoted YAML string. Rows that
lack a selected column get an empty string.

The output file is replaced atomically: a failed run never leaves a
partial file behind.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runConvert(cmd, opts)
		},
	}

	addConvertFlags(convertCmd)
	return convertCmd
}

// =============================================================================
// FLAGS
// =============================================================================

// addConvertFlags registers the conversion flags on cmd. The root command
// and 'convert' share them.
func addConvertFlags(cmd *cobra.Command) {
	flags := cmd.Flags()
	flags.StringP("input", "i", "", "Records file to convert (default "+config.DefaultInputFile+")")
	flags.StringP("output", "o", "", "Output YAML file, - for stdout (default "+config.DefaultOutputFile+")")
	flags.StringSlice("keys", nil, "Comma-separated keys to render, skips the checklist")
	flags.Bool("no-interactive", false, "Never prompt; select every key unless --keys is given")
	flags.Bool("verify", false, "Re-parse the rendered YAML before writing it")
	flags.String("delimiter", "", "CSV delimiter (default \",\", tab for .tsv)")
	flags.String("sheet", "", "XLSX worksheet to read (default first sheet)")
}

// =============================================================================
// COMMAND IMPLEMENTATION
// =============================================================================

// runConvert is the main function for the convert command.
//
// PROCESSING FLOW:
//   1. Load configuration (file, environment, flags)
//   2. Ask for the input and output files when interactive
//   3. Choose the key selector
//   4. Run the conversion pipeline
//   5. Report the generated file
func runConvert(cmd *cobra.Command, opts *rootOptions) error {
	// =========================================================================
	// STEP 1: LOAD CONFIGURATION
	// =========================================================================

	cfg, err := loadConfig(cmd, opts)
	if err != nil {
		return err
	}

	logger := newLogger(cfg.LogLevel, opts.verbose)

	interactive := cfg.IsInteractive() && term.IsTerminal(int(os.Stdin.Fd()))
	logger.Debug("Resolved configuration",
		"config", opts.cfgFile,
		"interactive", interactive,
		"preset_keys", cfg.Keys)

	// =========================================================================
	// STEP 2: PROMPT FOR FILES
	// =========================================================================
	// A flag (or environment variable) skips the matching prompt.

	if interactive {
		p := prompt.New(cmd.InOrStdin(), cmd.OutOrStdout())
		if !cmd.Flags().Changed("input") {
			cfg.InputFile = p.Ask("Input file", cfg.InputFile)
		}
		if !cmd.Flags().Changed("output") {
			cfg.OutputFile = p.Ask("Output YAML file", cfg.OutputFile)
		}
	}

	// =========================================================================
	// STEP 3: CHOOSE SELECTOR
	// =========================================================================

	keySelector := chooseSelector(cfg, interactive)

	// =========================================================================
	// STEP 4: RUN THE PIPELINE
	// =========================================================================

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	conv := converter.New(cfg, keySelector, logger)
	conv.SetStdout(cmd.OutOrStdout())

	result, err := conv.Run(ctx)
	if err != nil {
		return err
	}

	// =========================================================================
	// STEP 5: REPORT
	// =========================================================================

	if result.OutputFile != utils.StdoutPath {
		fmt.Fprintf(cmd.OutOrStdout(), "✓ Generated %s\n", result.OutputFile)
	}

	return nil
}

// chooseSelector picks how keys are selected: a preset list wins, then the
// checklist on a terminal, otherwise every key.
func chooseSelector(cfg *config.Config, interactive bool) converter.KeySelector {
	switch {
	case len(cfg.Keys) > 0:
		return selector.Preset{Keys: cfg.Keys}
	case interactive:
		return &selector.Interactive{
			Title: fmt.Sprintf("Select the keys to include from %s", filepath.Base(cfg.InputFile)),
		}
	default:
		return selector.All{}
	}
}
