// =============================================================================
// Outreach Merger - Shared Types
// =============================================================================
//
// This package contains shared types used across multiple modules to avoid
// import cycles. Types defined here are used by:
//   - importer
//   - merge
//   - exporter
//   - validation
//
// =============================================================================

package types

// =============================================================================
// TABLE TYPES
// =============================================================================

// Table represents an imported spreadsheet: one header row followed by zero
// or more data rows. Header order is the column order of the source file and
// is preserved for the lifetime of the table.
type Table struct {
	// Headers contains the column headers in source column order.
	Headers []string

	// Rows contains the data rows as maps of header -> cell value.
	// Cell values are always strings; numeric and date cells are coerced
	// to their displayed string form by the importer.
	Rows []map[string]string

	// SourceFile is the path to the source spreadsheet.
	SourceFile string
}

// RowCount returns the number of data rows (excluding the header row).
func (t *Table) RowCount() int {
	return len(t.Rows)
}

// ColumnCount returns the number of columns in the table.
func (t *Table) ColumnCount() int {
	return len(t.Headers)
}

// =============================================================================
// MERGE RESULT TYPES
// =============================================================================

// MergeResult is the merged output for a single input row. It is computed
// once per row and consumed immediately by the exporter; it is never
// persisted.
type MergeResult struct {
	// RowIndex is the 0-based absolute index of the source row. Template
	// rotation is driven by this index, so chunked processing of large
	// files cannot change which template a row receives.
	RowIndex int

	// Email is the value of the source row's email column, or "" if the
	// source schema has no email column.
	Email string

	// Subject is the merged subject line (XLSX workbook output only).
	Subject string

	// Copy is the merged email copy. This is the "Email Copy" column of
	// the CSV export.
	Copy string

	// Chaser is the merged follow-up copy, or "" when no chaser templates
	// were supplied (XLSX workbook output only).
	Chaser string
}
