// =============================================================================
// Outreach Merger - Spreadsheet Importer
// =============================================================================
//
// This module turns an input spreadsheet into an ordered types.Table: the
// header row in source column order, followed by the data rows as maps of
// header -> cell value. Everything downstream (key map construction, merge,
// export) consumes the Table and never touches the file again.
//
// SUPPORTED FORMATS:
//   - .xlsx : read via excelize; cell values arrive in displayed string form
//   - .csv  : read via encoding/csv
//
// All cell values are strings by the time they leave this package, and all
// values are whitespace-trimmed. Rows that are entirely empty are skipped.
//
// =============================================================================

package importer

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/ginjaninja78/outreach-merger/internal/types"
)

// Import reads a spreadsheet and returns its table. The reader is selected
// by file extension.
func Import(path string) (*types.Table, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".xlsx":
		return ImportXLSX(path)
	case ".csv":
		return ImportCSV(path)
	default:
		return nil, fmt.Errorf("unsupported input format: %s (expected .xlsx or .csv)", filepath.Ext(path))
	}
}

// rowToMap converts a raw record to a header -> value map. Values are
// trimmed; columns missing from a short record become empty strings.
func rowToMap(headers []string, record []string) map[string]string {
	row := make(map[string]string, len(headers))

	for i, header := range headers {
		if i < len(record) {
			row[header] = strings.TrimSpace(record[i])
		} else {
			row[header] = ""
		}
	}

	return row
}

// isRowEmpty checks if a record contains only empty values.
func isRowEmpty(record []string) bool {
	for _, cell := range record {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}

// cleanHeaders trims header values and names empty headers by position so
// that every column stays addressable.
func cleanHeaders(headers []string) []string {
	cleaned := make([]string, len(headers))

	for i, header := range headers {
		header = strings.TrimSpace(header)
		if header == "" {
			header = fmt.Sprintf("Column_%d", i+1)
		}
		cleaned[i] = header
	}

	return cleaned
}
