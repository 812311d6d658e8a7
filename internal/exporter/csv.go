// =============================================================================
// Outreach Merger - CSV Exporter
// =============================================================================
//
// Serializes merge results into CSV text ready for download.
//
// OUTPUT FORMAT:
//   - Header line is fixed: "Email,Email Copy" when the source schema has an
//     email column, otherwise "Email Copy" only.
//   - One data line per input row, in input row order. No reordering.
//   - Standard CSV quoting: a field is wrapped in double quotes when it
//     contains a comma, a double quote, or a newline; embedded double quotes
//     are escaped by doubling. encoding/csv implements exactly these rules.
//   - LF line endings, consistently across the whole file.
//
// =============================================================================

package exporter

import (
	"bytes"
	"encoding/csv"
	"fmt"

	"github.com/ginjaninja78/outreach-merger/internal/types"
)

// CSV column headers.
const (
	emailHeader = "Email"
	copyHeader  = "Email Copy"
)

// ExportCSV serializes the merge results into CSV text. hasEmail reports
// whether the source schema contained an email column; it controls both the
// header line and whether an email field is emitted per row.
func ExportCSV(results []types.MergeResult, hasEmail bool) (string, error) {
	var buf bytes.Buffer

	writer := csv.NewWriter(&buf)

	header := []string{copyHeader}
	if hasEmail {
		header = []string{emailHeader, copyHeader}
	}

	if err := writer.Write(header); err != nil {
		return "", fmt.Errorf("failed to write header: %w", err)
	}

	for _, result := range results {
		record := []string{result.Copy}
		if hasEmail {
			record = []string{result.Email, result.Copy}
		}

		if err := writer.Write(record); err != nil {
			return "", fmt.Errorf("failed to write row %d: %w", result.RowIndex+1, err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return "", fmt.Errorf("failed to flush CSV: %w", err)
	}

	return buf.String(), nil
}
