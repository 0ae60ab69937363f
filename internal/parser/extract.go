package parser

import (
	"encoding/csv"
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"

	"github.com/caminohealth/camino-backend/internal/domain/dto"
)

// Table is the output of one extraction: the rows plus which expected
// columns the source actually carried. A column can be present in the
// source while individual cells are still absent; the distinction
// matters downstream (a readiness file without a Country column
// aggregates to nothing).
type Table struct {
	Columns map[string]bool
	Rows    []dto.RawRow
}

func (t Table) HasColumn(field string) bool {
	return t.Columns[field]
}

// ExtractCSV reads an RFC-4180-ish CSV with a header row into raw rows.
// Source column labels are mapped through normalize into the canonical
// vocabulary; columns outside fields are dropped, expected columns
// missing from the source yield absent cells. Fully-empty rows are
// skipped, but row indexes keep counting source positions so keys stay
// stable.
func ExtractCSV(r io.Reader, fields []string, normalize func(string) string) (Table, error) {
	if normalize == nil {
		normalize = TrimColumn
	}

	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err != nil {
		return Table{}, fmt.Errorf("read header: %w", err)
	}

	expected := make(map[string]bool, len(fields))
	for _, f := range fields {
		expected[f] = true
	}

	// source column position → canonical field
	byPos := make(map[int]string, len(header))
	columns := make(map[string]bool, len(fields))
	for i, label := range header {
		canonical := normalize(label)
		if expected[canonical] {
			byPos[i] = canonical
			columns[canonical] = true
		}
	}

	rows := make([]dto.RawRow, 0, 64)
	for index := 0; ; index++ {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return Table{}, fmt.Errorf("read row %d: %w", index, err)
		}

		row := dto.NewRawRow(index)
		for _, field := range fields {
			row.PutAbsent(field)
		}
		for i, value := range record {
			if field, ok := byPos[i]; ok {
				row.Put(field, value)
			}
		}

		if row.Empty() {
			continue
		}
		rows = append(rows, row)
	}

	return Table{Columns: columns, Rows: rows}, nil
}

// ExtractSheet reads one named worksheet the same way, skipping skipRows
// leading rows before the header (ESPAR sheets carry a 13-row preamble).
func ExtractSheet(f *excelize.File, sheet string, fields []string, normalize func(string) string, skipRows int) (Table, error) {
	if normalize == nil {
		normalize = TrimColumn
	}

	all, err := f.GetRows(sheet)
	if err != nil {
		return Table{}, fmt.Errorf("excelize.GetRows %q: %w", sheet, err)
	}
	if len(all) <= skipRows {
		return Table{Columns: map[string]bool{}}, nil
	}

	header := all[skipRows]
	data := all[skipRows+1:]

	expected := make(map[string]bool, len(fields))
	for _, f := range fields {
		expected[f] = true
	}

	byPos := make(map[int]string, len(header))
	columns := make(map[string]bool, len(fields))
	for i, label := range header {
		canonical := normalize(label)
		if expected[canonical] {
			byPos[i] = canonical
			columns[canonical] = true
		}
	}

	rows := make([]dto.RawRow, 0, len(data))
	for index, record := range data {
		row := dto.NewRawRow(index)
		for _, field := range fields {
			row.PutAbsent(field)
		}
		for i, value := range record {
			if field, ok := byPos[i]; ok {
				row.Put(field, value)
			}
		}

		if row.Empty() {
			continue
		}
		rows = append(rows, row)
	}

	return Table{Columns: columns, Rows: rows}, nil
}

// SheetColumns returns every normalized header label of a sheet, not
// just the expected ones; the ESPAR loader treats the unlisted columns
// as indicator codes.
func SheetColumns(f *excelize.File, sheet string, skipRows int) ([]string, error) {
	all, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("excelize.GetRows %q: %w", sheet, err)
	}
	if len(all) <= skipRows {
		return nil, nil
	}

	header := make([]string, 0, len(all[skipRows]))
	for _, label := range all[skipRows] {
		if label = TrimColumn(label); label != "" {
			header = append(header, label)
		}
	}
	return header, nil
}
