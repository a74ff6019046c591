package table

import (
	"fmt"
	"log/slog"
)

// conflictSeparator joins distinct non-empty values folded into one cell.
const conflictSeparator = ";"

// Merge performs a full outer join of t and other on the key column, which
// must exist in both tables.
//
// The result columns are t's columns followed by other's columns not
// already present. Each row of t is emitted once: rows of other sharing
// its key value are folded into it column by column (see mergeValue), the
// key cell keeping t's value. Rows of other whose key matches no row of t
// are appended afterwards in their original order. Cells for columns a
// source table lacks are empty strings.
func (t *Table) Merge(key string, other *Table) (*Table, error) {
	if t == nil {
		return nil, fmt.Errorf("merge on %q: left table: %w", key, ErrNilTable)
	}
	if other == nil {
		return nil, fmt.Errorf("merge on %q: right table: %w", key, ErrNilTable)
	}
	if !t.HasColumn(key) {
		return nil, fmt.Errorf("merge on %q: left table: %w", key, ErrMissingKey)
	}
	if !other.HasColumn(key) {
		return nil, fmt.Errorf("merge on %q: right table: %w", key, ErrMissingKey)
	}

	columns := unionColumns(t.columns, other.columns)

	// hash index over the right side, key value -> row positions
	rightRows := make([]RowMap, len(other.rows))
	index := make(map[string][]int, len(other.rows))
	for i := range other.rows {
		rightRows[i] = other.RowMap(i)
		v := rightRows[i][key]
		index[v] = append(index[v], i)
	}

	leftKeys := make(map[string]struct{}, len(t.rows))
	rows := make([][]string, 0, len(t.rows)+len(other.rows))
	matched := 0

	for i := range t.rows {
		left := t.RowMap(i)
		keyValue := left[key]
		leftKeys[keyValue] = struct{}{}

		positions := index[keyValue]
		if len(positions) > 0 {
			matched++
		}

		out := make([]string, len(columns))
		for j, col := range columns {
			acc := left[col]
			if col != key {
				for _, pos := range positions {
					acc = mergeValue(acc, rightRows[pos][col])
				}
			}
			out[j] = acc
		}
		rows = append(rows, out)
	}

	unmatched := 0
	for _, right := range rightRows {
		if _, ok := leftKeys[right[key]]; ok {
			continue
		}
		unmatched++

		out := make([]string, len(columns))
		for j, col := range columns {
			out[j] = right[col]
		}
		rows = append(rows, out)
	}

	slog.Debug("merge completed",
		slog.String("key", key),
		slog.Int("left_rows", len(t.rows)),
		slog.Int("right_rows", len(other.rows)),
		slog.Int("matched_left_rows", matched),
		slog.Int("unmatched_right_rows", unmatched),
		slog.Int("result_rows", len(rows)),
	)

	return &Table{columns: columns, rows: rows}, nil
}

// mergeValue folds b into the accumulated value a. Empty values yield to
// non-empty ones, equal values collapse, and distinct non-empty values are
// joined left first.
func mergeValue(a, b string) string {
	switch {
	case a == "":
		return b
	case b == "" || a == b:
		return a
	default:
		return a + conflictSeparator + b
	}
}

// unionColumns returns left's distinct columns followed by right's columns
// not seen before, in first-seen order.
func unionColumns(left, right []string) []string {
	seen := make(map[string]struct{}, len(left)+len(right))
	out := make([]string, 0, len(left)+len(right))
	for _, cols := range [][]string{left, right} {
		for _, col := range cols {
			if _, ok := seen[col]; ok {
				continue
			}
			seen[col] = struct{}{}
			out = append(out, col)
		}
	}
	return out
}
