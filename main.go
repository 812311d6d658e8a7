// =============================================================================
// Outreach Merger - Main Entry Point
// =============================================================================
//
// This is the main entry point for the Outreach Merger CLI application. It
// initializes the Cobra CLI framework and delegates command execution to the
// cmd package.
//
// USAGE:
//   outreach-merger merge     - Merge a spreadsheet into the templates
//   outreach-merger validate  - Check placeholders against a spreadsheet
//   outreach-merger version   - Display the application version
//
// ARCHITECTURE:
//   - cmd/       : CLI command definitions (Cobra)
//   - internal/  : Core business logic (not for external import)
//   - pkg/       : Shared utilities
//
// =============================================================================

package main

import (
	"github.com/ginjaninja78/outreach-merger/cmd"
)

// main is the entry point of the application.
func main() {
	cmd.Execute()
}
