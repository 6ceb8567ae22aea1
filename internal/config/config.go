// =============================================================================
// CSV to YAML Converter - Configuration Module
// =============================================================================
//
// This module is responsible for loading the application configuration.
//
// CONFIGURATION SOURCES (later sources win):
//   1. Built-in defaults (applyDefaults)
//   2. The YAML config file (config.yaml, or --config)
//   3. Environment variables (CSV2YAML_INPUT_FILE, CSV2YAML_KEYS, ...)
//   4. Command-line flags
//
// Sources 3 and 4 are layered by the cmd package through viper; see
// ApplyOverrides.
//
// =============================================================================

package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// =============================================================================
// DEFAULTS
// =============================================================================

const (
	// DefaultInputFile is offered when the user leaves the input prompt blank.
	DefaultInputFile = "customdata.csv"

	// DefaultOutputFile is offered when the user leaves the output prompt blank.
	DefaultOutputFile = "inputs.yaml"

	// DefaultConfigFile is the config file read when --config is not given.
	DefaultConfigFile = "config.yaml"

	// EnvPrefix prefixes every environment variable override.
	EnvPrefix = "CSV2YAML"
)

// =============================================================================
// CONFIGURATION STRUCTURE
// =============================================================================

// Config holds the application configuration.
type Config struct {
	// InputFile is the records file to convert.
	// Supported extensions: .csv, .tsv, .txt, .xlsx, .yaml, .yml, .json
	// Default: "customdata.csv"
	InputFile string `yaml:"input_file"`

	// OutputFile is where the rendered YAML is written. "-" means stdout.
	// Placeholders:
	//   {input}     - Input file name without extension
	//   {timestamp} - Current timestamp (YYYYMMDD_HHMMSS)
	//   {date}      - Current date (YYYYMMDD)
	//   {uuid}      - A random UUID
	// Default: "inputs.yaml"
	OutputFile string `yaml:"output_file"`

	// Keys is a preset selection. When non-empty the interactive checklist
	// is skipped and exactly these keys are rendered.
	Keys []string `yaml:"keys"`

	// Interactive enables the filename prompts and the key checklist when
	// stdin is a terminal.
	// Default: true
	Interactive *bool `yaml:"interactive"`

	// Verify re-parses the rendered YAML before it is written.
	Verify bool `yaml:"verify"`

	// LogLevel controls the verbosity of logging.
	// Valid values: "debug", "info", "warn", "error"
	// Default: "info"
	LogLevel string `yaml:"log_level"`

	// CSVSettings contains settings for parsing CSV input.
	CSVSettings CSVSettings `yaml:"csv_settings"`

	// XLSXSettings contains settings for reading XLSX input.
	XLSXSettings XLSXSettings `yaml:"xlsx_settings"`
}

// CSVSettings contains settings for parsing CSV files.
type CSVSettings struct {
	// Delimiter is the character used to separate fields.
	// Accepts a single character or one of "tab", "pipe", "semicolon".
	// Default: "," (or tab for .tsv files)
	Delimiter string `yaml:"delimiter"`

	// Comment, if set, marks lines to ignore when they start with it.
	Comment string `yaml:"comment"`

	// TrimLeadingSpace ignores leading white space in a field.
	// Default: true
	TrimLeadingSpace *bool `yaml:"trim_leading_space"`

	// SkipEmptyRows drops records whose cells are all blank. By default
	// every record becomes a block, blank ones included.
	// Default: false
	SkipEmptyRows bool `yaml:"skip_empty_rows"`
}

// XLSXSettings contains settings for reading XLSX workbooks.
type XLSXSettings struct {
	// Sheet is the worksheet to read. Empty means the first sheet.
	Sheet string `yaml:"sheet"`
}

// IsInteractive reports whether prompts and the checklist are enabled.
func (c *Config) IsInteractive() bool {
	return c.Interactive == nil || *c.Interactive
}

// TrimsLeadingSpace reports whether leading field space is trimmed.
func (s CSVSettings) TrimsLeadingSpace() bool {
	return s.TrimLeadingSpace == nil || *s.TrimLeadingSpace
}


// =============================================================================
// CONFIGURATION LOADING FUNCTIONS
// =============================================================================

// Default returns a configuration with every default applied.
func Default() *Config {
	cfg := &Config{}
	applyDefaults(cfg)
	return cfg
}

// Load loads the configuration from a YAML file.
//
// PARAMETERS:
//   - configPath: The path to the configuration file.
//   - required: Whether a missing file is an error. The default config file
//     is optional; a file named with --config is required.
//
// RETURNS:
//   - A pointer to the Config struct with defaults applied.
//   - An error if the file cannot be read, parsed or validated.
func Load(configPath string, required bool) (*Config, error) {
	cfg := &Config{}

	data, err := os.ReadFile(configPath)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config file %s: %w", configPath, err)
		}
	case errors.Is(err, fs.ErrNotExist) && !required:
		// No config file: defaults only.
	default:
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	applyDefaults(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

// ApplyOverrides copies values set through viper (environment variables or
// bound command-line flags) over the file configuration.
//
// Recognised keys: input_file, output_file, keys, interactive, verify,
// log_level, delimiter, sheet.
func (c *Config) ApplyOverrides(v *viper.Viper) error {
	if v.IsSet("input_file") {
		c.InputFile = v.GetString("input_file")
	}
	if v.IsSet("output_file") {
		c.OutputFile = v.GetString("output_file")
	}
	if v.IsSet("keys") {
		c.Keys = splitKeys(v.GetStringSlice("keys"))
	}
	if v.IsSet("interactive") {
		interactive := v.GetBool("interactive")
		c.Interactive = &interactive
	}
	if v.IsSet("verify") {
		c.Verify = v.GetBool("verify")
	}
	if v.IsSet("log_level") {
		c.LogLevel = v.GetString("log_level")
	}
	if v.IsSet("delimiter") {
		c.CSVSettings.Delimiter = v.GetString("delimiter")
	}
	if v.IsSet("sheet") {
		c.XLSXSettings.Sheet = v.GetString("sheet")
	}

	applyDefaults(c)
	return c.Validate()
}

// applyDefaults sets default values for any unset configuration options.
func applyDefaults(cfg *Config) {
	if cfg.InputFile == "" {
		cfg.InputFile = DefaultInputFile
	}
	if cfg.OutputFile == "" {
		cfg.OutputFile = DefaultOutputFile
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = "info"
	}
	cfg.Keys = splitKeys(cfg.Keys)
}

// Validate checks the configuration for values that cannot work.
func (c *Config) Validate() error {
	switch strings.ToLower(c.LogLevel) {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("unknown log_level %q", c.LogLevel)
	}

	if _, err := ParseDelimiter(c.CSVSettings.Delimiter, ','); err != nil {
		return err
	}

	if len([]rune(c.CSVSettings.Comment)) > 1 {
		return fmt.Errorf("comment must be a single character, got %q", c.CSVSettings.Comment)
	}

	return nil
}

// ParseDelimiter turns a configured delimiter into the rune used by the CSV
// reader. An empty value yields fallback.
func ParseDelimiter(value string, fallback rune) (rune, error) {
	switch value {
	case "":
		return fallback, nil
	case "\\t", "\t", "tab", "TAB":
		return '\t', nil
	case "|", "pipe", "PIPE":
		return '|', nil
	case ";", "semicolon":
		return ';', nil
	}

	runes := []rune(value)
	if len(runes) != 1 {
		return 0, fmt.Errorf("delimiter must be a single character, got %q", value)
	}
	if runes[0] == '"' || runes[0] == '\r' || runes[0] == '\n' {
		return 0, fmt.Errorf("invalid delimiter %q", value)
	}
	return runes[0], nil
}

// splitKeys flattens comma-separated entries and drops blanks, so
// "--keys a,b --keys c" and "keys: [a, 'b, c']" both work.
func splitKeys(keys []string) []string {
	var out []string
	for _, entry := range keys {
		for _, key := range strings.Split(entry, ",") {
			key = strings.TrimSpace(key)
			if key != "" {
				out = append(out, key)
			}
		}
	}
	return out
}
