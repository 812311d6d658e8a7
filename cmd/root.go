// =============================================================================
// Outreach Merger - Root Command
// =============================================================================
//
// This file defines the root command for the Cobra CLI. The root command is
// the base command that all other commands (like 'merge', 'validate') are
// attached to.
//
// COBRA CLI STRUCTURE:
//   rootCmd (outreach-merger)
//   ├── mergeCmd    (outreach-merger merge)
//   ├── validateCmd (outreach-merger validate)
//   └── versionCmd  (outreach-merger version)
//
// =============================================================================

package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// cfgFile holds the path to the configuration file.
// This can be overridden using the --config flag.
var cfgFile string

// verbose enables verbose logging when set to true.
var verbose bool

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use: "outreach-merger",

	Short: "Outreach Merger - Merge spreadsheet data into outreach templates",

	Long: `Outreach Merger is a CLI tool that merges tabular data into text templates
with placeholder substitution and round-robin template rotation, producing a
CSV export (or a full outreach XLSX workbook).

Placeholders are written as {{column_name}} and match column headers
case-insensitively, ignoring spaces and underscores: {{first_name}} matches
a "First Name" column. Templates rotate across rows (A, B, C, A, ...).
Placeholders with no matching column merge as empty strings; outreach never
blocks on incomplete data.

Example Usage:
  outreach-merger merge leads.xlsx -t "Hi {{first_name}}!"
  outreach-merger merge leads.csv --config campaign.yaml
  outreach-merger validate leads.xlsx --config campaign.yaml`,

	Run: func(cmd *cobra.Command, args []string) {
		// If no subcommand is provided, print the help message.
		cmd.Help()
	},
}

// Execute adds all child commands to the root command and sets flags
// appropriately. This is called by main.main().
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// init sets up the global flags.
func init() {
	// --config flag: path to the YAML configuration file. Missing files
	// are not an error; the defaults let flag-only invocations work.
	rootCmd.PersistentFlags().StringVar(
		&cfgFile,
		"config",
		"config.yaml",
		"Path to the configuration file (default is config.yaml)",
	)

	// --verbose flag: enables debug logging.
	rootCmd.PersistentFlags().BoolVarP(
		&verbose,
		"verbose",
		"v",
		false,
		"Enable verbose output for debugging",
	)
}
