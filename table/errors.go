package table

import "errors"

var (
	// ErrMissingColumn is returned when an operation references a column
	// the table does not have.
	ErrMissingColumn = errors.New("missing column")

	// ErrEmptyFilterResult is returned when a filter matches no rows.
	ErrEmptyFilterResult = errors.New("filter matched no rows")

	// ErrMissingKey is returned when a merge key is absent from either table.
	ErrMissingKey = errors.New("merge key not found")

	// ErrNilTable is returned when a merge operand is nil.
	ErrNilTable = errors.New("nil table")

	// ErrRowWidth is returned when a row's cell count differs from the
	// table's column count.
	ErrRowWidth = errors.New("row width does not match column count")
)
