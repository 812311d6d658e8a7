// =============================================================================
// Outreach Merger - XLSX Importer
// =============================================================================
//
// Reads an XLSX workbook via excelize. Only the first visible sheet is
// consumed: the upload format is one header row followed by data rows.
// excelize's GetRows returns every cell in its displayed string form, which
// is exactly what the merge needs (numeric and date cells arrive as the
// text the spreadsheet shows).
//
// =============================================================================

package importer

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/ginjaninja78/outreach-merger/internal/types"
)

// ImportXLSX reads the first sheet of an XLSX workbook into a table.
func ImportXLSX(path string) (*types.Table, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open workbook: %w", err)
	}
	defer f.Close()

	sheetName := f.GetSheetName(0)
	if sheetName == "" {
		return nil, fmt.Errorf("workbook has no sheets")
	}

	rows, err := f.GetRows(sheetName)
	if err != nil {
		return nil, fmt.Errorf("failed to read sheet %q: %w", sheetName, err)
	}

	if len(rows) == 0 {
		return nil, fmt.Errorf("sheet %q is empty", sheetName)
	}

	headers := cleanHeaders(rows[0])

	dataRows := make([]map[string]string, 0, len(rows)-1)
	for _, record := range rows[1:] {
		if isRowEmpty(record) {
			continue
		}
		dataRows = append(dataRows, rowToMap(headers, record))
	}

	return &types.Table{
		Headers:    headers,
		Rows:       dataRows,
		SourceFile: path,
	}, nil
}
