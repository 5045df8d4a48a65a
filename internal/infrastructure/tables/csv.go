package tables

import (
	"bufio"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"
)

var (
	// ErrEmptyFile indicates the CSV file has no content
	ErrEmptyFile = errors.New("csv file is empty")
	// ErrMissingHeader indicates the CSV file has no header row
	ErrMissingHeader = errors.New("csv file has no header row")
	// ErrMissingColumn indicates a required column is absent from the header
	ErrMissingColumn = errors.New("csv file is missing a required column")
)

// csvReader reads header-mapped CSV rows. The first row names the columns
// and every following row is addressed by column name rather than index.
type csvReader struct {
	reader    *csv.Reader
	headerMap map[string]int
	line      int
}

// row is a single CSV record addressed by header name
type row struct {
	line   int
	fields []string
	r      *csvReader
}

func newCSVReader(src io.Reader) (*csvReader, error) {
	buf := bufio.NewReader(src)

	// Strip a UTF-8 BOM if present
	head, err := buf.Peek(3)
	if err != nil && err != io.EOF {
		return nil, fmt.Errorf("failed to read csv: %w", err)
	}
	if len(head) >= 3 && head[0] == 0xEF && head[1] == 0xBB && head[2] == 0xBF {
		_, _ = buf.Discard(3)
	}

	r := csv.NewReader(buf)
	r.TrimLeadingSpace = true
	r.FieldsPerRecord = -1

	cr := &csvReader{reader: r, headerMap: make(map[string]int)}

	header, err := r.Read()
	if err == io.EOF {
		return nil, ErrEmptyFile
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read csv header: %w", err)
	}
	for i, h := range header {
		cr.headerMap[strings.TrimSpace(strings.ToLower(h))] = i
	}
	if len(cr.headerMap) == 0 {
		return nil, ErrMissingHeader
	}
	cr.line = 1

	return cr, nil
}

// requireColumns verifies every named column exists in the header
func (cr *csvReader) requireColumns(names ...string) error {
	for _, name := range names {
		if _, ok := cr.headerMap[name]; !ok {
			return fmt.Errorf("%w: %q", ErrMissingColumn, name)
		}
	}
	return nil
}

// readRow returns the next record, io.EOF at end of input
func (cr *csvReader) readRow() (*row, error) {
	record, err := cr.reader.Read()
	if err == io.EOF {
		return nil, io.EOF
	}
	cr.line++
	if err != nil {
		return nil, fmt.Errorf("csv line %d: %w", cr.line, err)
	}
	return &row{line: cr.line, fields: record, r: cr}, nil
}

// get returns the trimmed value of the named column, empty if absent
func (r *row) get(name string) string {
	i, ok := r.r.headerMap[name]
	if !ok || i >= len(r.fields) {
		return ""
	}
	return strings.TrimSpace(r.fields[i])
}

// isEmpty reports whether every field in the row is blank
func (r *row) isEmpty() bool {
	for _, f := range r.fields {
		if strings.TrimSpace(f) != "" {
			return false
		}
	}
	return true
}
