// =============================================================================
// Outreach Merger - Generator Module
// =============================================================================
//
// This module orchestrates the merge pipeline for one input spreadsheet,
// from import to the exported file.
//
// PIPELINE:
//   1. Resolve the template lists from the configuration
//   2. Validate the template lists (fail fast before any row is processed)
//   3. Import the spreadsheet
//   4. Build the canonical key map and locate the email column
//   5. Report unmapped placeholders (warning only, never fatal)
//   6. Merge every row in input order
//   7. Export the result set (CSV text or XLSX workbook)
//
// The pass is single-threaded and synchronous: import completes fully, then
// the merge runs over the complete in-memory row set, then the export
// serializes the complete result set. Each row's merge is a pure function of
// its own data plus the read-only template lists and key map.
//
// =============================================================================

package generator

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/ginjaninja78/outreach-merger/internal/config"
	"github.com/ginjaninja78/outreach-merger/internal/exporter"
	"github.com/ginjaninja78/outreach-merger/internal/importer"
	"github.com/ginjaninja78/outreach-merger/internal/merge"
	"github.com/ginjaninja78/outreach-merger/internal/schema"
	"github.com/ginjaninja78/outreach-merger/internal/types"
	"github.com/ginjaninja78/outreach-merger/internal/validation"
	"github.com/ginjaninja78/outreach-merger/pkg/utils"
)

// =============================================================================
// RESULT STRUCTURE
// =============================================================================

// Result represents the outcome of one merge operation.
type Result struct {
	// InputFile is the path to the spreadsheet that was processed.
	InputFile string

	// OutputFile is the path to the exported file. Empty if the run failed.
	OutputFile string

	// Success indicates whether the run completed.
	Success bool

	// Error contains the failure if the run did not complete.
	Error error

	// Stats contains processing statistics.
	Stats Stats
}

// Stats contains statistics about one merge operation.
type Stats struct {
	// RowsProcessed is the number of data rows merged.
	RowsProcessed int

	// CopyTemplates is the number of email copy templates in rotation.
	CopyTemplates int

	// UnmappedPlaceholders is the number of distinct placeholders that
	// matched no column. These merged as empty strings.
	UnmappedPlaceholders int

	// ProcessingTime is the time taken for the full pass.
	ProcessingTime time.Duration
}

// =============================================================================
// GENERATOR STRUCTURE
// =============================================================================

// Generator runs the merge pipeline for a single input spreadsheet.
type Generator struct {
	inputPath string
	cfg       *config.Config
	logger    Logger
}

// New creates a Generator for one input file.
func New(inputPath string, cfg *config.Config) *Generator {
	return &Generator{
		inputPath: inputPath,
		cfg:       cfg,
		logger:    NewLogger(cfg.LogLevel),
	}
}

// SetLogger replaces the generator's logger.
func (g *Generator) SetLogger(logger Logger) {
	g.logger = logger
}

// =============================================================================
// MAIN PROCESSING FUNCTION
// =============================================================================

// Run executes the merge pipeline and returns its result. Run never panics
// on malformed templates or missing columns; the only hard failures are
// IO errors, an unreadable input file, and an empty copy template list.
func (g *Generator) Run() Result {
	startTime := time.Now()
	result := Result{
		InputFile: g.inputPath,
	}

	g.logger.Info("Processing file: %s", g.inputPath)

	// Resolve and validate the template lists before touching the input:
	// a configuration error must surface before any output is produced.
	set, err := g.resolveTemplateSet()
	if err != nil {
		result.Error = err
		return result
	}

	if err := set.Validate(g.cfg.OutputFormat == config.FormatXLSX); err != nil {
		result.Error = err
		return result
	}

	result.Stats.CopyTemplates = len(set.Copy)
	g.logger.Debug("Templates in rotation: %d subject, %d copy, %d chaser",
		len(set.Subject), len(set.Copy), len(set.Chaser))

	// Import the spreadsheet.
	table, err := importer.Import(g.inputPath)
	if err != nil {
		result.Error = fmt.Errorf("failed to import spreadsheet: %w", err)
		return result
	}

	g.logger.Debug("Imported %d rows, %d columns", table.RowCount(), table.ColumnCount())

	// Build the lookup schema once for the whole table.
	keys := schema.BuildKeyMap(table.Headers)
	emailColumn, hasEmail := schema.FindEmailColumn(table.Headers)

	if hasEmail {
		g.logger.Debug("Email column: %q", emailColumn)
	} else {
		g.logger.Warn("No email column found; export will not include an Email column")
	}

	// Report unmapped placeholders. These merge as empty strings, so this
	// is a warning, not a failure.
	issues := validation.ValidateTemplates(set.All(), keys, schema.Normalize)
	result.Stats.UnmappedPlaceholders = len(issues)
	for _, issue := range issues {
		g.logger.Warn("%s", issue.Error())
	}

	// Merge every row in input order.
	results, err := g.mergeRows(table, keys, set, emailColumn)
	if err != nil {
		result.Error = err
		return result
	}

	result.Stats.RowsProcessed = len(results)
	g.logger.Debug("Merged %d rows", len(results))

	// Export.
	outputPath, err := g.export(results, hasEmail)
	if err != nil {
		result.Error = fmt.Errorf("failed to export: %w", err)
		return result
	}

	result.OutputFile = outputPath
	g.logger.Info("Wrote output to: %s", outputPath)

	result.Success = true
	result.Stats.ProcessingTime = time.Since(startTime)

	return result
}

// =============================================================================
// PIPELINE STEPS
// =============================================================================

// resolveTemplateSet materializes the three template lists from the
// configuration (inline text and template files).
func (g *Generator) resolveTemplateSet() (*merge.TemplateSet, error) {
	subject, err := config.ResolveTemplates(g.cfg.Templates.Subject)
	if err != nil {
		return nil, fmt.Errorf("failed to load subject templates: %w", err)
	}

	copyTemplates, err := config.ResolveTemplates(g.cfg.Templates.Copy)
	if err != nil {
		return nil, fmt.Errorf("failed to load copy templates: %w", err)
	}

	chaser, err := config.ResolveTemplates(g.cfg.Templates.Chaser)
	if err != nil {
		return nil, fmt.Errorf("failed to load chaser templates: %w", err)
	}

	return &merge.TemplateSet{
		Subject: subject,
		Copy:    copyTemplates,
		Chaser:  chaser,
	}, nil
}

// mergeRows merges the complete row set. The rotation index is the absolute
// row index in the table, so the output is identical however the caller
// batches its work.
func (g *Generator) mergeRows(table *types.Table, keys map[string]string, set *merge.TemplateSet, emailColumn string) ([]types.MergeResult, error) {
	results := make([]types.MergeResult, 0, table.RowCount())

	for i, row := range table.Rows {
		merged, err := merge.Row(i, row, keys, set, emailColumn, g.cfg.BlankFill)
		if err != nil {
			return nil, err
		}
		results = append(results, merged)
	}

	return results, nil
}

// export writes the result set in the configured format and returns the
// output path.
func (g *Generator) export(results []types.MergeResult, hasEmail bool) (string, error) {
	if err := utils.EnsureDir(g.cfg.OutputDir); err != nil {
		return "", err
	}

	base := filepath.Base(g.inputPath)
	name := strings.TrimSuffix(base, filepath.Ext(base))

	fileName := utils.GenerateOutputFileName(g.cfg.OutputNameFormat, map[string]string{
		"name": name,
		"ext":  g.cfg.OutputFormat,
	})
	outputPath := filepath.Join(g.cfg.OutputDir, fileName)

	switch g.cfg.OutputFormat {
	case config.FormatXLSX:
		if err := exporter.ExportXLSX(results, outputPath); err != nil {
			return "", err
		}
	default:
		text, err := exporter.ExportCSV(results, hasEmail)
		if err != nil {
			return "", err
		}
		if err := utils.WriteTextFile(outputPath, text); err != nil {
			return "", err
		}
	}

	return outputPath, nil
}
