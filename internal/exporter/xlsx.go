// =============================================================================
// Outreach Merger - XLSX Exporter
// =============================================================================
//
// Writes the full outreach workbook: one sheet named "Outreach" with the
// merged subject lines, email copy, and chaser copy per row, plus tracking
// columns the outreach team fills in by hand. The "Email Sent?" and "Chaser
// sent?" columns carry real form-control checkboxes, one per data row.
//
// WORKBOOK LAYOUT:
//   | Email address | Subject line | Email Copy | Email Sent? | Chaser copy | Chaser sent? | Status |
//
// Column widths are sized from the header and a sample of the data so the
// sheet is readable without manual resizing.
//
// =============================================================================

package exporter

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/ginjaninja78/outreach-merger/internal/types"
)

// SheetName is the name of the output worksheet.
const SheetName = "Outreach"

// widthSampleRows is how many data rows are sampled when sizing columns.
const widthSampleRows = 50

// workbookColumns are the output columns in order.
var workbookColumns = []string{
	"Email address",
	"Subject line",
	"Email Copy",
	"Email Sent?",
	"Chaser copy",
	"Chaser sent?",
	"Status",
}

// Positions of the checkbox columns (1-indexed) within workbookColumns.
const (
	emailSentCol  = 4
	chaserSentCol = 6
)

// ExportXLSX builds the outreach workbook and writes it to path.
func ExportXLSX(results []types.MergeResult, path string) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName(f.GetSheetName(0), SheetName); err != nil {
		return fmt.Errorf("failed to name sheet: %w", err)
	}

	// Header row.
	for col, name := range workbookColumns {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			return fmt.Errorf("failed to locate header cell: %w", err)
		}
		if err := f.SetCellValue(SheetName, cell, name); err != nil {
			return fmt.Errorf("failed to write header: %w", err)
		}
	}

	// Data rows. Row 1 is the header, so data starts on row 2.
	for i, result := range results {
		values := []string{
			result.Email,
			result.Subject,
			result.Copy,
			"", // Email Sent? (checkbox)
			result.Chaser,
			"", // Chaser sent? (checkbox)
			"", // Status
		}

		for col, value := range values {
			if value == "" {
				continue
			}
			cell, err := excelize.CoordinatesToCellName(col+1, i+2)
			if err != nil {
				return fmt.Errorf("failed to locate cell: %w", err)
			}
			if err := f.SetCellValue(SheetName, cell, value); err != nil {
				return fmt.Errorf("failed to write row %d: %w", i+1, err)
			}
		}

		// Unchecked checkboxes for the tracking columns.
		for _, col := range []int{emailSentCol, chaserSentCol} {
			cell, err := excelize.CoordinatesToCellName(col, i+2)
			if err != nil {
				return fmt.Errorf("failed to locate checkbox cell: %w", err)
			}
			err = f.AddFormControl(SheetName, excelize.FormControl{
				Cell: cell,
				Type: excelize.FormControlCheckBox,
			})
			if err != nil {
				return fmt.Errorf("failed to add checkbox at %s: %w", cell, err)
			}
		}
	}

	if err := sizeColumns(f, results); err != nil {
		return err
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("failed to save workbook: %w", err)
	}

	return nil
}

// sizeColumns sets column widths from the header and a sample of the data.
// Widths are clamped to [12, 60]; the checkbox columns stay narrow.
func sizeColumns(f *excelize.File, results []types.MergeResult) error {
	sample := results
	if len(sample) > widthSampleRows {
		sample = sample[:widthSampleRows]
	}

	for col, name := range workbookColumns {
		width := float64(len(name)) + 2

		for _, result := range sample {
			var value string
			switch col + 1 {
			case 1:
				value = result.Email
			case 2:
				value = result.Subject
			case 3:
				value = result.Copy
			case 5:
				value = result.Chaser
			}
			if w := float64(len(value)) + 2; w > width {
				width = w
			}
		}

		if width < 12 {
			width = 12
		}
		if width > 60 {
			width = 60
		}
		if col+1 == emailSentCol || col+1 == chaserSentCol {
			width = 12
		}

		colName, err := excelize.ColumnNumberToName(col + 1)
		if err != nil {
			return fmt.Errorf("failed to resolve column name: %w", err)
		}
		if err := f.SetColWidth(SheetName, colName, colName, width); err != nil {
			return fmt.Errorf("failed to set column width: %w", err)
		}
	}

	return nil
}
