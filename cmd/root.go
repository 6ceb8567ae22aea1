// =============================================================================
// CSV to YAML Converter - Root Command
// =============================================================================
//
// This file defines the root command for the Cobra CLI. Run without a
// subcommand, the root command converts one file, exactly like 'convert'.
//
// COBRA CLI STRUCTURE:
//   newRootCmd (csv2yaml)          converts, same flags as 'convert'
//   ├── newConvertCmd (csv2yaml convert)
//   ├── newKeysCmd    (csv2yaml keys)
//   └── newVersionCmd (csv2yaml version)
//
//   The tree is built fresh on every call, so flag state never outlives
//   one execution.
//
// CONFIGURATION:
//   The root command is responsible for:
//   1. Setting up persistent flags (--config, --verbose)
//   2. Loading the config file and layering CSV2YAML_* environment
//      variables and flags on top of it (viper)
//   3. Setting up logging (slog on stderr)
//   4. Mapping errors to exit codes
//
// =============================================================================

package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/ginjaninja78/CSV-to-YAML-inputs/internal/config"
	"github.com/ginjaninja78/CSV-to-YAML-inputs/internal/types"
)

// =============================================================================
// ROOT OPTIONS
// =============================================================================

// rootOptions holds the values of the persistent flags. Each command tree
// built by newRootCmd owns its own copy.
type rootOptions struct {
	// cfgFile holds the path to the configuration file.
	// This can be overridden using the --config flag.
	cfgFile string

	// verbose enables debug logging when set to true.
	verbose bool
}

// =============================================================================
// ROOT COMMAND DEFINITION
// =============================================================================

// newRootCmd builds the base command and attaches its subcommands.
func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	rootCmd := &cobra.Command{
		Use:   "csv2yaml",
		Short: "CSV to YAML Converter - Turn tabular records into input<i> YAML blocks",
		Long: `CSV to YAML Converter reads records from a CSV, XLSX or YAML/JSON file and
writes one YAML block per row:

  input0:
    url: "http://x"
  input1:
    url: "http://y"

On a terminal it asks for the input and output files and shows a checklist
of the discovered columns. Every column starts selected.

Example Usage:
  csv2yaml                                  # Prompt for files, pick columns
  csv2yaml -i hosts.csv -o inputs.yaml      # Skip the file prompts
  csv2yaml --keys url,name --no-interactive # Preset columns, no terminal UI
  csv2yaml keys hosts.csv                   # List the discovered columns`,

		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,

		RunE: func(cmd *cobra.Command, args []string) error {
			return runConvert(cmd, opts)
		},
	}

	// --config flag: Allows the user to specify a custom configuration file.
	// The default file is optional; a file named here must exist.
	rootCmd.PersistentFlags().StringVar(
		&opts.cfgFile,
		"config",
		config.DefaultConfigFile,
		"Path to the configuration file",
	)

	// --verbose flag: Enables debug logging.
	rootCmd.PersistentFlags().BoolVarP(
		&opts.verbose,
		"verbose",
		"v",
		false,
		"Enable verbose output for debugging",
	)

	addConvertFlags(rootCmd)

	rootCmd.AddCommand(
		newConvertCmd(opts),
		newKeysCmd(opts),
		newVersionCmd(),
	)

	return rootCmd
}

// =============================================================================
// EXECUTE FUNCTION
// =============================================================================

// Execute runs the root command. On failure it prints the error and exits
// with the exit code of the error's kind.
func Execute() {
	if err := newRootCmd().ExecuteContext(context.Background()); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(types.KindOf(err).ExitCode())
	}
}

// =============================================================================
// CONFIGURATION AND LOGGING
// =============================================================================

// flagKeys maps config keys to the command-line flags that override them.
var flagKeys = map[string]string{
	"input_file":  "input",
	"output_file": "output",
	"keys":        "keys",
	"verify":      "verify",
	"delimiter":   "delimiter",
	"sheet":       "sheet",
}

// loadConfig reads the config file, then applies CSV2YAML_* environment
// variables and the flags set on cmd. Failures are KindConfig errors.
func loadConfig(cmd *cobra.Command, opts *rootOptions) (*config.Config, error) {
	cfg, err := config.Load(opts.cfgFile, cmd.Flags().Changed("config"))
	if err != nil {
		return nil, types.NewError(types.KindConfig, "configuration error", err)
	}

	v := viper.New()
	v.SetEnvPrefix(config.EnvPrefix)
	v.AutomaticEnv()

	for key, name := range flagKeys {
		if flag := cmd.Flags().Lookup(name); flag != nil {
			if err := v.BindPFlag(key, flag); err != nil {
				return nil, fmt.Errorf("failed to bind --%s: %w", name, err)
			}
		}
	}
	if cmd.Flags().Changed("no-interactive") {
		v.Set("interactive", false)
	}

	if err := cfg.ApplyOverrides(v); err != nil {
		return nil, types.NewError(types.KindConfig, "configuration error", err)
	}

	return cfg, nil
}

// newLogger builds the stderr logger. --verbose wins over log_level.
func newLogger(level string, verbose bool) *slog.Logger {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(strings.ToLower(level))); err != nil {
		lvl = slog.LevelInfo
	}
	if verbose {
		lvl = slog.LevelDebug
	}

	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: lvl}))
}
