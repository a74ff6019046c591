package table

import (
	"fmt"

	"github.com/vegasq/tabq/cond"
)

// Select returns a table with exactly the requested columns in the
// requested order. Names may repeat. Any unknown name fails with
// ErrMissingColumn.
func (t *Table) Select(columns ...string) (*Table, error) {
	indexes := make([]int, len(columns))
	for i, name := range columns {
		idx := t.ColumnIndex(name)
		if idx < 0 {
			return nil, fmt.Errorf("select %q: %w", name, ErrMissingColumn)
		}
		indexes[i] = idx
	}

	rows := make([][]string, len(t.rows))
	for i, row := range t.rows {
		projected := make([]string, len(indexes))
		for j, idx := range indexes {
			projected[j] = row[idx]
		}
		rows[i] = projected
	}

	out := make([]string, len(columns))
	copy(out, columns)
	return &Table{columns: out, rows: rows}, nil
}

// Filter keeps the rows for which c evaluates to cond.True, preserving
// order. Rows evaluating to False or Undefined are dropped. A filter that
// keeps no rows fails with ErrEmptyFilterResult.
func (t *Table) Filter(c cond.Cond) (*Table, error) {
	var rows [][]string
	for i, row := range t.rows {
		if cond.Eval(c, t.RowMap(i)) == cond.True {
			rows = append(rows, row)
		}
	}

	if len(rows) == 0 {
		return nil, fmt.Errorf("filter %v over %d rows: %w", c, len(t.rows), ErrEmptyFilterResult)
	}
	return &Table{columns: t.columns, rows: rows}, nil
}

// NewColumn appends a column named name holding value in every row.
// Duplicate names are allowed.
func (t *Table) NewColumn(name, value string) *Table {
	columns := make([]string, len(t.columns), len(t.columns)+1)
	copy(columns, t.columns)
	columns = append(columns, name)

	rows := make([][]string, len(t.rows))
	for i, row := range t.rows {
		extended := make([]string, len(row), len(row)+1)
		copy(extended, row)
		rows[i] = append(extended, value)
	}
	return &Table{columns: columns, rows: rows}
}
