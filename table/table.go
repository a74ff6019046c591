package table

import (
	"fmt"
	"slices"
)

// Table is an immutable table of string cells.
type Table struct {
	columns []string
	rows    [][]string
}

// RowMap is a row keyed by column name. When a table has duplicated column
// names the last occurrence wins.
type RowMap map[string]string

// Lookup implements cond.Row.
func (m RowMap) Lookup(column string) (string, bool) {
	v, ok := m[column]
	return v, ok
}

// New builds a table from column names and rows. The inputs are copied.
// Every row must have exactly len(columns) cells.
func New(columns []string, rows [][]string) (*Table, error) {
	for i, row := range rows {
		if len(row) != len(columns) {
			return nil, fmt.Errorf("row %d has %d cells, want %d: %w", i, len(row), len(columns), ErrRowWidth)
		}
	}

	copied := make([][]string, len(rows))
	for i, row := range rows {
		copied[i] = slices.Clone(row)
	}
	return &Table{columns: slices.Clone(columns), rows: copied}, nil
}

// MustNew is like New but panics on error. Intended for fixtures and
// literals known to be well-formed.
func MustNew(columns []string, rows [][]string) *Table {
	t, err := New(columns, rows)
	if err != nil {
		panic(err)
	}
	return t
}

// Columns returns a copy of the column names in order.
func (t *Table) Columns() []string {
	return slices.Clone(t.columns)
}

// NumColumns returns the column count
func (t *Table) NumColumns() int {
	return len(t.columns)
}

// NumRows returns the row count
func (t *Table) NumRows() int {
	return len(t.rows)
}

// Row returns a copy of the i-th row.
func (t *Table) Row(i int) []string {
	return slices.Clone(t.rows[i])
}

// Rows returns a copy of all rows.
func (t *Table) Rows() [][]string {
	out := make([][]string, len(t.rows))
	for i, row := range t.rows {
		out[i] = slices.Clone(row)
	}
	return out
}

// ColumnIndex returns the position of the first column named name, or -1.
func (t *Table) ColumnIndex(name string) int {
	return slices.Index(t.columns, name)
}

// HasColumn reports whether the table has a column named name.
func (t *Table) HasColumn(name string) bool {
	return t.ColumnIndex(name) >= 0
}

// RowMap projects the i-th row into a column-name keyed map.
func (t *Table) RowMap(i int) RowMap {
	return toRowMap(t.columns, t.rows[i])
}

func toRowMap(columns, row []string) RowMap {
	m := make(RowMap, len(columns))
	for j, col := range columns {
		m[col] = row[j]
	}
	return m
}

// Equal reports whether two tables have the same columns and rows in the
// same order.
func (t *Table) Equal(other *Table) bool {
	if t == nil || other == nil {
		return t == other
	}
	if !slices.Equal(t.columns, other.columns) || len(t.rows) != len(other.rows) {
		return false
	}
	for i := range t.rows {
		if !slices.Equal(t.rows[i], other.rows[i]) {
			return false
		}
	}
	return true
}

// Head returns the first n rows. n <= 0 or n beyond the row count returns
// all rows.
func (t *Table) Head(n int) *Table {
	if n <= 0 || n >= len(t.rows) {
		return t
	}
	return &Table{columns: t.columns, rows: t.rows[:n]}
}
