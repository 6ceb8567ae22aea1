// =============================================================================
// CSV to YAML Converter - File Manager Utility
// =============================================================================
//
// This module provides file utilities for the converter:
//   - Atomic output writing (temp file + rename)
//   - Output file naming with placeholders
//   - Small file helpers
//
// WRITE STRATEGY:
//   - Output is written to a hidden temp file next to the target, named with
//     a UUID so concurrent runs never collide
//   - The temp file is synced and renamed over the target
//   - On any failure the temp file is removed and the target is untouched
//   - The path "-" writes to the supplied stdout writer instead
//
// =============================================================================

package utils

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
)

// StdoutPath is the output path that means "write to standard output".
const StdoutPath = "-"

// =============================================================================
// OUTPUT WRITING
// =============================================================================

// WriteOutput writes text to path atomically.
//
// PARAMETERS:
//   - path: The target file, or "-" for stdout.
//   - text: The content to write, written exactly as given.
//   - stdout: Where "-" writes go. Nil means os.Stdout.
//
// RETURNS:
//   - An error if the file cannot be written. The target is left unchanged.
func WriteOutput(path, text string, stdout io.Writer) error {
	if path == StdoutPath {
		if stdout == nil {
			stdout = os.Stdout
		}
		if _, err := io.WriteString(stdout, text); err != nil {
			return fmt.Errorf("failed to write to stdout: %w", err)
		}
		return nil
	}

	dir := filepath.Dir(path)
	tmpPath := filepath.Join(dir, fmt.Sprintf(".%s.%s.tmp", filepath.Base(path), uuid.New().String()))

	file, err := os.OpenFile(tmpPath, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0644)
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}

	// Clean up on any failure below.
	committed := false
	defer func() {
		if !committed {
			file.Close()
			os.Remove(tmpPath)
		}
	}()

	if _, err := io.WriteString(file, text); err != nil {
		return fmt.Errorf("failed to write temp file: %w", err)
	}
	if err := file.Sync(); err != nil {
		return fmt.Errorf("failed to sync temp file: %w", err)
	}
	if err := file.Close(); err != nil {
		return fmt.Errorf("failed to close temp file: %w", err)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		os.Remove(tmpPath)
		committed = true
		return fmt.Errorf("failed to move output into place: %w", err)
	}

	committed = true
	return nil
}

// =============================================================================
// OUTPUT FILE NAMING
// =============================================================================

// GenerateOutputFileName expands placeholders in an output file name.
//
// PARAMETERS:
//   - format: The file name, optionally with placeholders:
//               {input}     - Input file name without directory or extension
//               {timestamp} - Current timestamp (YYYYMMDD_HHMMSS)
//               {date}      - Current date (YYYYMMDD)
//               {uuid}      - A random UUID
//   - inputPath: The input file the output is generated from.
//
// RETURNS:
//   - The expanded file name. A name without placeholders is returned as is.
//
// EXAMPLE:
//   format:    "{input}_{date}.yaml"
//   inputPath: "data/customdata.csv"
//   output:    "customdata_20240115.yaml"
func GenerateOutputFileName(format, inputPath string) string {
	if !strings.Contains(format, "{") {
		return format
	}

	now := time.Now()
	base := filepath.Base(inputPath)
	base = strings.TrimSuffix(base, filepath.Ext(base))

	replacer := strings.NewReplacer(
		"{input}", base,
		"{timestamp}", now.Format("20060102_150405"),
		"{date}", now.Format("20060102"),
		"{uuid}", uuid.New().String(),
	)
	return replacer.Replace(format)
}

// =============================================================================
// UTILITY FUNCTIONS
// =============================================================================

// FileExists reports whether path can be stat'ed. Any error, not only
// "does not exist", reports false.
func FileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
