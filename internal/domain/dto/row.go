package dto

import (
	"strconv"
	"strings"
)

// Cell is one canonical-field value of a source row. Present is false
// when the column was missing from the source or the cell was blank;
// downstream code never sees a language null, only this marker.
type Cell struct {
	Value   string
	Present bool
}

// RawRow is one extracted source row: its position in the file (which
// determines the row's unique key) and canonical field name → cell.
type RawRow struct {
	Index  int
	Fields map[string]Cell
}

func NewRawRow(index int) RawRow {
	return RawRow{Index: index, Fields: make(map[string]Cell)}
}

func (r RawRow) Put(field, value string) {
	if strings.TrimSpace(value) == "" {
		r.Fields[field] = Cell{}
		return
	}
	r.Fields[field] = Cell{Value: value, Present: true}
}

func (r RawRow) PutAbsent(field string) {
	r.Fields[field] = Cell{}
}

func (r RawRow) Cell(field string) Cell {
	return r.Fields[field]
}

// Str returns the field value, or nil when absent.
func (r RawRow) Str(field string) *string {
	cell := r.Fields[field]
	if !cell.Present {
		return nil
	}
	v := cell.Value
	return &v
}

// Float parses the field as a number; absent values and parse failures
// both yield nil, a genuine zero stays zero.
func (r RawRow) Float(field string) *float64 {
	cell := r.Fields[field]
	if !cell.Present {
		return nil
	}

	v, err := strconv.ParseFloat(strings.TrimSpace(cell.Value), 64)
	if err != nil {
		return nil
	}
	return &v
}

// Int parses the field as an integer, tolerating a float rendering
// ("3.0"); absent values and parse failures yield nil.
func (r RawRow) Int(field string) *int64 {
	cell := r.Fields[field]
	if !cell.Present {
		return nil
	}

	s := strings.TrimSpace(cell.Value)
	if v, err := strconv.ParseInt(s, 10, 64); err == nil {
		return &v
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		v := int64(f)
		return &v
	}
	return nil
}

// Empty reports whether every cell of the row is absent.
func (r RawRow) Empty() bool {
	for _, cell := range r.Fields {
		if cell.Present {
			return false
		}
	}
	return true
}
