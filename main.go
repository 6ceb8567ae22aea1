// =============================================================================
// CSV to YAML Converter - Main Entry Point
// =============================================================================
//
// This is the main entry point for the CSV to YAML Converter CLI application.
// It initializes the Cobra CLI framework and delegates command execution to
// the cmd package.
//
// USAGE:
//   csv2yaml               - Convert a records file (prompts on a terminal)
//   csv2yaml convert       - Same as above
//   csv2yaml keys [file]   - List the keys discovered in a records file
//   csv2yaml version       - Display the application version
//
// ARCHITECTURE:
//   This application follows a modular design where:
//   - cmd/           : Contains all CLI command definitions (Cobra)
//   - internal/      : Contains core business logic (not for external import)
//   - pkg/           : Contains shared utilities
//
// =============================================================================

package main

import (
	"github.com/ginjaninja78/CSV-to-YAML-inputs/cmd"
)

// main is the entry point of the application.
// It simply calls the Execute function from the cmd package, which
// initializes and runs the Cobra CLI.
func main() {
	cmd.Execute()
}
