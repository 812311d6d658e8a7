// =============================================================================
// Outreach Merger - CSV Importer
// =============================================================================
//
// Reads a CSV file into a table. The first row is the header row; every
// following non-empty row becomes a data row. The reader is tolerant of
// ragged files: rows may have fewer or more fields than the header row, and
// quoting that does not follow strict CSV rules is accepted.
//
// For large files a streaming reader is provided that yields one row at a
// time instead of materializing the whole table. The streaming reader tracks
// the absolute row index so that template rotation is unaffected by how the
// caller chunks its work.
//
// =============================================================================

package importer

import (
	"bufio"
	"encoding/csv"
	"fmt"
	"io"
	"os"

	"github.com/ginjaninja78/outreach-merger/internal/types"
)

// ImportCSV reads an entire CSV file into a table.
func ImportCSV(path string) (*types.Table, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer file.Close()

	reader := csv.NewReader(bufio.NewReader(file))
	configureReader(reader)

	allRows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to read CSV: %w", err)
	}

	if len(allRows) == 0 {
		return nil, fmt.Errorf("CSV file is empty")
	}

	headers := cleanHeaders(allRows[0])

	dataRows := make([]map[string]string, 0, len(allRows)-1)
	for _, record := range allRows[1:] {
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

// configureReader applies the tolerant reading rules shared by the full and
// streaming readers.
func configureReader(reader *csv.Reader) {
	// Allow variable numbers of fields per row.
	reader.FieldsPerRecord = -1

	// Allow quotes that don't follow strict CSV rules.
	reader.LazyQuotes = true

	reader.TrimLeadingSpace = true
}

// =============================================================================
// STREAMING READER FOR LARGE FILES
// =============================================================================

// StreamingReader yields CSV rows one at a time for files too large to hold
// in memory.
//
// USAGE:
//
//	r, err := NewStreamingReader(path)
//	if err != nil {
//	    return err
//	}
//	defer r.Close()
//
//	for r.Next() {
//	    merged := merge.Merge(tpl, r.Row(), keys) // rotation uses r.RowIndex()
//	}
//
//	if err := r.Err(); err != nil {
//	    return err
//	}
type StreamingReader struct {
	file       *os.File
	reader     *csv.Reader
	headers    []string
	currentRow map[string]string
	rowIndex   int
	err        error
}

// NewStreamingReader opens a CSV file and reads its header row.
func NewStreamingReader(path string) (*StreamingReader, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}

	reader := csv.NewReader(bufio.NewReader(file))
	configureReader(reader)

	headerRecord, err := reader.Read()
	if err == io.EOF {
		file.Close()
		return nil, fmt.Errorf("CSV file is empty")
	}
	if err != nil {
		file.Close()
		return nil, fmt.Errorf("failed to read header row: %w", err)
	}

	return &StreamingReader{
		file:     file,
		reader:   reader,
		headers:  cleanHeaders(headerRecord),
		rowIndex: -1,
	}, nil
}

// Next advances to the next data row, skipping rows that are entirely
// empty. It returns false when there are no more rows or an error occurred.
func (r *StreamingReader) Next() bool {
	if r.err != nil {
		return false
	}

	for {
		record, err := r.reader.Read()
		if err == io.EOF {
			return false
		}
		if err != nil {
			r.err = fmt.Errorf("error reading row %d: %w", r.rowIndex+2, err)
			return false
		}

		if isRowEmpty(record) {
			continue
		}

		r.rowIndex++
		r.currentRow = rowToMap(r.headers, record)
		return true
	}
}

// Row returns the current data row.
func (r *StreamingReader) Row() map[string]string {
	return r.currentRow
}

// RowIndex returns the 0-based absolute index of the current data row in
// the file. This is the index that drives template rotation.
func (r *StreamingReader) RowIndex() int {
	return r.rowIndex
}

// Headers returns the header row in source column order.
func (r *StreamingReader) Headers() []string {
	return r.headers
}

// Err returns any error that occurred while reading.
func (r *StreamingReader) Err() error {
	return r.err
}

// Close closes the underlying file.
func (r *StreamingReader) Close() error {
	return r.file.Close()
}
