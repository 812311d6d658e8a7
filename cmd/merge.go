// =============================================================================
// Outreach Merger - Merge Command
// =============================================================================
//
// This file defines the 'merge' command, which runs the full pipeline for
// one input spreadsheet: import, placeholder merge with template rotation,
// and export.
//
// COMMAND USAGE:
//   outreach-merger merge <spreadsheet> [flags]
//
// FLAGS:
//   -t, --template    : Email copy template (repeatable; rotation order)
//   --subject         : Subject line template (repeatable)
//   --chaser          : Chaser copy template (repeatable)
//   --format          : Output format: csv or xlsx
//   --output-dir      : Directory for the exported file
//   --blank-fill      : Replacement for blank cells
//
// Templates given on the command line replace the corresponding list from
// the configuration file; lists not given on the command line fall back to
// the configuration.
//
// =============================================================================

package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/ginjaninja78/outreach-merger/internal/config"
	"github.com/ginjaninja78/outreach-merger/internal/generator"
)

// Local flags for the merge command.
var (
	copyTemplates    []string
	subjectTemplates []string
	chaserTemplates  []string
	outputFormat     string
	outputDir        string
	blankFill        string
)

// mergeCmd represents the 'merge' command.
var mergeCmd = &cobra.Command{
	Use:   "merge <spreadsheet>",
	Short: "Merge a spreadsheet into the templates and export the result",
	Long: `The merge command imports a spreadsheet (.xlsx or .csv), merges each row
into the templates, and exports the result.

Templates rotate across rows by row index: with templates A, B, C the rows
receive A, B, C, A, B, ... Every row produces exactly one output line, in
input order.

At least one email copy template is required. A placeholder that matches no
column header merges as an empty string; it never fails the run (use the
'validate' command to catch template typos beforehand).`,

	Args: cobra.ExactArgs(1),

	RunE: func(cmd *cobra.Command, args []string) error {
		return runMerge(args[0])
	},
}

// init registers the merge command and its flags.
func init() {
	rootCmd.AddCommand(mergeCmd)

	mergeCmd.Flags().StringArrayVarP(
		&copyTemplates,
		"template",
		"t",
		nil,
		"Email copy template (repeat for rotation; order is rotation order)",
	)

	mergeCmd.Flags().StringArrayVar(
		&subjectTemplates,
		"subject",
		nil,
		"Subject line template (repeat for rotation)",
	)

	mergeCmd.Flags().StringArrayVar(
		&chaserTemplates,
		"chaser",
		nil,
		"Chaser copy template (repeat for rotation)",
	)

	mergeCmd.Flags().StringVar(
		&outputFormat,
		"format",
		"",
		"Output format: csv (Email,Email Copy) or xlsx (full outreach workbook)",
	)

	mergeCmd.Flags().StringVar(
		&outputDir,
		"output-dir",
		"",
		"Directory for the exported file",
	)

	mergeCmd.Flags().StringVar(
		&blankFill,
		"blank-fill",
		"",
		"Replacement for blank cells (default: empty string)",
	)
}

// runMerge loads the configuration, applies flag overrides, and runs the
// pipeline for the input file.
func runMerge(inputPath string) error {
	startTime := time.Now()

	cfg, err := config.LoadOrDefault(cfgFile)
	if err != nil {
		return err
	}

	applyFlagOverrides(cfg)

	if err := cfg.Validate(); err != nil {
		return err
	}

	gen := generator.New(inputPath, cfg)
	result := gen.Run()

	if !result.Success {
		return result.Error
	}

	fmt.Println("\n=== Merge Complete ===")
	fmt.Printf("Rows merged:           %d\n", result.Stats.RowsProcessed)
	fmt.Printf("Copy templates:        %d\n", result.Stats.CopyTemplates)
	fmt.Printf("Unmapped placeholders: %d\n", result.Stats.UnmappedPlaceholders)
	fmt.Printf("Output file:           %s\n", result.OutputFile)
	fmt.Printf("Time elapsed:          %s\n", time.Since(startTime))

	return nil
}

// applyFlagOverrides folds the command-line flags into the loaded
// configuration. A template flag replaces the whole corresponding list, so
// the rotation order on the command line is exactly what runs.
func applyFlagOverrides(cfg *config.Config) {
	if len(copyTemplates) > 0 {
		cfg.Templates.Copy = inlineSources(copyTemplates)
	}
	if len(subjectTemplates) > 0 {
		cfg.Templates.Subject = inlineSources(subjectTemplates)
	}
	if len(chaserTemplates) > 0 {
		cfg.Templates.Chaser = inlineSources(chaserTemplates)
	}
	if outputFormat != "" {
		cfg.OutputFormat = outputFormat
	}
	if outputDir != "" {
		cfg.OutputDir = outputDir
	}
	if blankFill != "" {
		cfg.BlankFill = blankFill
	}
	if verbose {
		cfg.LogLevel = "debug"
	}
}

// inlineSources wraps command-line template strings as inline sources.
func inlineSources(templates []string) []config.TemplateSource {
	sources := make([]config.TemplateSource, len(templates))
	for i, t := range templates {
		sources[i] = config.TemplateSource{Text: t}
	}
	return sources
}
