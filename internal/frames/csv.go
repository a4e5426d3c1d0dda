package frames

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

var (
	ErrNoHeader     = errors.New("no header row")
	ErrMalformedRow = errors.New("malformed row")
)

const utf8BOM = "\ufeff"

// ReadCSV reads a delimited file with one header row; fields are addressed by name.
// Short rows are padded with missing cells, long rows are rejected. Repeated
// header names get ".1", ".2" suffixes so every column stays addressable.
func ReadCSV(r io.Reader) (*Frame, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if errors.Is(err, io.EOF) {
		return nil, ErrNoHeader
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read header: %w", err)
	}
	if len(header) > 0 {
		header[0] = strings.TrimPrefix(header[0], utf8BOM)
	}
	header = uniqueNames(header)

	cells := make([][]string, len(header))
	line := 1
	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		line++
		if err != nil {
			return nil, fmt.Errorf("%w: line %d: %w", ErrMalformedRow, line, err)
		}
		if len(record) > len(header) {
			return nil, fmt.Errorf("%w: line %d has %d fields, header has %d", ErrMalformedRow, line, len(record), len(header))
		}
		for i := range header {
			if i < len(record) {
				cells[i] = append(cells[i], record[i])
			} else {
				cells[i] = append(cells[i], "")
			}
		}
	}

	columns := make([]*Column, len(header))
	for i, name := range header {
		columns[i] = ParseColumn(name, cells[i])
	}
	return New(columns...)
}

// WriteCSV writes the header and every row; missing cells are written empty.
func WriteCSV(w io.Writer, f *Frame) error {
	writer := csv.NewWriter(w)
	if err := writer.Write(f.ColumnNames()); err != nil {
		return err
	}
	record := make([]string, f.Width())
	for row := 0; row < f.Len(); row++ {
		for ci, c := range f.columns {
			record[ci] = c.Text(row)
		}
		if err := writer.Write(record); err != nil {
			return err
		}
	}
	writer.Flush()
	return writer.Error()
}

func uniqueNames(header []string) []string {
	seen := make(map[string]int, len(header))
	names := make([]string, len(header))
	for i, name := range header {
		n := seen[name]
		seen[name] = n + 1
		if n == 0 {
			names[i] = name
			continue
		}
		candidate := name + "." + strconv.Itoa(n)
		for seen[candidate] > 0 {
			n++
			candidate = name + "." + strconv.Itoa(n)
		}
		seen[candidate] = 1
		names[i] = candidate
	}
	return names
}
