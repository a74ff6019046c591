package output

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/parquet-go/parquet-go"

	"github.com/vegasq/tabq/table"
)

// ErrDuplicateColumn is returned when a table with repeated column names is
// written as parquet.
var ErrDuplicateColumn = errors.New("duplicate column name")

// ErrNoColumns is returned when a table without columns is written as parquet.
var ErrNoColumns = errors.New("table has no columns")

// ParquetFormatter writes tables as parquet files with one required string
// column per table column. Parquet groups order their fields by name, so the
// file's column order is alphabetical rather than the table's.
type ParquetFormatter struct {
	writer io.Writer
}

// NewParquetFormatter creates a new parquet formatter
func NewParquetFormatter(w io.Writer) *ParquetFormatter {
	return &ParquetFormatter{writer: w}
}

// SetOutput sets the output writer
func (p *ParquetFormatter) SetOutput(w io.Writer) {
	p.writer = w
}

// Format writes t as a complete parquet file
func (p *ParquetFormatter) Format(t *table.Table) error {
	columns := t.Columns()
	if len(columns) == 0 {
		return ErrNoColumns
	}

	group := make(parquet.Group, len(columns))
	for _, col := range columns {
		if _, dup := group[col]; dup {
			return fmt.Errorf("%w: %q", ErrDuplicateColumn, col)
		}
		group[col] = parquet.String()
	}
	schema := parquet.NewSchema("table", group)

	// leafSource maps each leaf column of the schema to its table column.
	leaves := schema.Columns()
	leafSource := make([]int, len(leaves))
	for i, path := range leaves {
		leafSource[i] = t.ColumnIndex(strings.Join(path, "."))
	}

	writer := parquet.NewWriter(p.writer, schema)

	rows := make([]parquet.Row, 0, rowBatchSize)
	flush := func() error {
		if len(rows) == 0 {
			return nil
		}
		if _, err := writer.WriteRows(rows); err != nil {
			return fmt.Errorf("failed to write rows: %w", err)
		}
		rows = rows[:0]
		return nil
	}

	for i := 0; i < t.NumRows(); i++ {
		cells := t.Row(i)
		row := make(parquet.Row, len(leaves))
		for leaf, src := range leafSource {
			row[leaf] = parquet.ByteArrayValue([]byte(cells[src])).Level(0, 0, leaf)
		}
		rows = append(rows, row)
		if len(rows) == rowBatchSize {
			if err := flush(); err != nil {
				return err
			}
		}
	}
	if err := flush(); err != nil {
		return err
	}

	if err := writer.Close(); err != nil {
		return fmt.Errorf("failed to close parquet writer: %w", err)
	}
	return nil
}

// rowBatchSize is the number of rows handed to the parquet writer at once
const rowBatchSize = 128
