// =============================================================================
// Outreach Merger - Validate Command
// =============================================================================
//
// This file defines the 'validate' command, which checks that every
// placeholder across the configured templates maps to a column header in
// the given spreadsheet, without merging or writing any output.
//
// COMMAND USAGE:
//   outreach-merger validate <spreadsheet> [flags]
//
// The merge itself never fails on an unmapped placeholder (it substitutes
// an empty string), so this command is where template typos are caught: it
// exits non-zero when any placeholder is unmapped, which makes it usable as
// a pre-send gate.
//
// =============================================================================

package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ginjaninja78/outreach-merger/internal/config"
	"github.com/ginjaninja78/outreach-merger/internal/importer"
	"github.com/ginjaninja78/outreach-merger/internal/merge"
	"github.com/ginjaninja78/outreach-merger/internal/schema"
	"github.com/ginjaninja78/outreach-merger/internal/validation"
)

// validateCmd represents the 'validate' command.
var validateCmd = &cobra.Command{
	Use:   "validate <spreadsheet>",
	Short: "Check template placeholders against a spreadsheet's headers",
	Long: `The validate command imports the spreadsheet's header row, scans every
configured template for {{placeholders}}, and reports placeholders whose
normalized name matches no column header (matching is case-insensitive and
ignores spaces and underscores).

It writes no output file and exits non-zero when any placeholder is
unmapped.`,

	Args: cobra.ExactArgs(1),

	RunE: func(cmd *cobra.Command, args []string) error {
		return runValidate(args[0])
	},
}

// init registers the validate command.
func init() {
	rootCmd.AddCommand(validateCmd)
}

// runValidate loads the templates and checks them against the spreadsheet.
func runValidate(inputPath string) error {
	cfg, err := config.LoadOrDefault(cfgFile)
	if err != nil {
		return err
	}

	set, err := resolveTemplateSet(cfg)
	if err != nil {
		return err
	}

	if err := set.Validate(cfg.OutputFormat == config.FormatXLSX); err != nil {
		return err
	}

	table, err := importer.Import(inputPath)
	if err != nil {
		return fmt.Errorf("failed to import spreadsheet: %w", err)
	}

	keys := schema.BuildKeyMap(table.Headers)
	issues := validation.ValidateTemplates(set.All(), keys, schema.Normalize)

	fmt.Print(validation.FormatIssues(issues))

	if _, hasEmail := schema.FindEmailColumn(table.Headers); !hasEmail {
		fmt.Println("Note: no email column found; the export will not include an Email column.")
	}

	if len(issues) > 0 {
		return fmt.Errorf("%d placeholder(s) do not match any column header", len(issues))
	}

	return nil
}

// resolveTemplateSet materializes the configured template lists.
func resolveTemplateSet(cfg *config.Config) (*merge.TemplateSet, error) {
	subject, err := config.ResolveTemplates(cfg.Templates.Subject)
	if err != nil {
		return nil, err
	}

	copyTpls, err := config.ResolveTemplates(cfg.Templates.Copy)
	if err != nil {
		return nil, err
	}

	chaser, err := config.ResolveTemplates(cfg.Templates.Chaser)
	if err != nil {
		return nil, err
	}

	return &merge.TemplateSet{Subject: subject, Copy: copyTpls, Chaser: chaser}, nil
}
