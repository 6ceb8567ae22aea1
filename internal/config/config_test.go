package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoad_MissingOptionalFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"), false)
	require.NoError(t, err)

	assert.Equal(t, DefaultInputFile, cfg.InputFile)
	assert.Equal(t, DefaultOutputFile, cfg.OutputFile)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.True(t, cfg.IsInteractive())
	assert.True(t, cfg.CSVSettings.TrimsLeadingSpace())
	assert.False(t, cfg.CSVSettings.SkipEmptyRows)
}

func TestLoad_MissingRequiredFileFails(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"), true)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read config file")
}

func TestLoad_ParsesFile(t *testing.T) {
	path := writeConfig(t, `
input_file: data.tsv
output_file: out/{input}.yaml
keys: [url, "name, title"]
interactive: false
verify: true
log_level: debug
csv_settings:
  delimiter: tab
  comment: "#"
  skip_empty_rows: true
xlsx_settings:
  sheet: Inputs
`)

	cfg, err := Load(path, true)
	require.NoError(t, err)

	assert.Equal(t, "data.tsv", cfg.InputFile)
	assert.Equal(t, "out/{input}.yaml", cfg.OutputFile)
	assert.Equal(t, []string{"url", "name", "title"}, cfg.Keys)
	assert.False(t, cfg.IsInteractive())
	assert.True(t, cfg.Verify)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "tab", cfg.CSVSettings.Delimiter)
	assert.Equal(t, "#", cfg.CSVSettings.Comment)
	assert.True(t, cfg.CSVSettings.SkipEmptyRows)
	assert.Equal(t, "Inputs", cfg.XLSXSettings.Sheet)
}

func TestLoad_RejectsInvalidValues(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantErr string
	}{
		{"bad yaml", "input_file: [", "failed to parse config file"},
		{"bad log level", "log_level: loud", "unknown log_level"},
		{"long delimiter", "csv_settings:\n  delimiter: ab", "single character"},
		{"quote delimiter", "csv_settings:\n  delimiter: '\"'", "invalid delimiter"},
		{"long comment", "csv_settings:\n  comment: '//'", "comment must be"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tt.content), true)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestApplyOverrides(t *testing.T) {
	cfg := Default()

	v := viper.New()
	v.Set("input_file", "rows.xlsx")
	v.Set("keys", []string{"b,a"})
	v.Set("interactive", false)
	v.Set("sheet", "Data")

	require.NoError(t, cfg.ApplyOverrides(v))

	assert.Equal(t, "rows.xlsx", cfg.InputFile)
	assert.Equal(t, DefaultOutputFile, cfg.OutputFile)
	assert.Equal(t, []string{"b", "a"}, cfg.Keys)
	assert.False(t, cfg.IsInteractive())
	assert.Equal(t, "Data", cfg.XLSXSettings.Sheet)
}

func TestApplyOverrides_ValidatesResult(t *testing.T) {
	cfg := Default()

	v := viper.New()
	v.Set("delimiter", "::")

	assert.Error(t, cfg.ApplyOverrides(v))
}

func TestParseDelimiter(t *testing.T) {
	tests := []struct {
		in   string
		want rune
	}{
		{"", ','},
		{",", ','},
		{"tab", '\t'},
		{"\\t", '\t'},
		{"pipe", '|'},
		{"semicolon", ';'},
		{"§", '§'},
	}

	for _, tt := range tests {
		got, err := ParseDelimiter(tt.in, ',')
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got, tt.in)
	}
}
