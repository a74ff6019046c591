package reader

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/parquet-go/parquet-go"

	"github.com/vegasq/tabq/table"
)

// rowBatchSize is the number of rows pulled from the file per read
const rowBatchSize = 128

// repeatedSeparator joins the values of a repeated leaf in a single cell
const repeatedSeparator = ";"

// ParquetReader reads parquet files into tables.
//
// It maintains both an OS file handle and a parquet file handle to enable
// proper resource cleanup.
type ParquetReader struct {
	file   *os.File
	pqFile *parquet.File
}

// NewParquetReader creates a new parquet reader for the specified file path.
//
// The file is opened and validated as a parquet file. Returns an error if
// the file doesn't exist or is not a valid parquet file.
//
// Example:
//
//	r, err := NewParquetReader("data.parquet")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer r.Close()
func NewParquetReader(path string) (*ParquetReader, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}

	stat, err := file.Stat()
	if err != nil {
		_ = file.Close()
		return nil, fmt.Errorf("failed to stat file: %w", err)
	}

	pqFile, err := parquet.OpenFile(file, stat.Size())
	if err != nil {
		_ = file.Close()
		return nil, fmt.Errorf("failed to open parquet file: %w", err)
	}

	return &ParquetReader{
		file:   file,
		pqFile: pqFile,
	}, nil
}

// Columns returns the leaf column names in file order. Nested fields use
// dot notation (e.g., "address.street").
func (r *ParquetReader) Columns() []string {
	paths := r.pqFile.Schema().Columns()
	columns := make([]string, len(paths))
	for i, path := range paths {
		columns[i] = strings.Join(path, ".")
	}
	return columns
}

// ReadTable reads all rows from the parquet file into memory.
//
// Every value is rendered with its string form; null values become empty
// cells and repeated values are joined with ";".
func (r *ParquetReader) ReadTable() (*table.Table, error) {
	columns := r.Columns()

	reader := parquet.NewReader(r.pqFile)
	defer func() { _ = reader.Close() }()

	buf := make([]parquet.Row, rowBatchSize)
	for i := range buf {
		buf[i] = make(parquet.Row, 0, len(columns))
	}

	var rows [][]string
	for {
		n, err := reader.ReadRows(buf)
		for _, row := range buf[:n] {
			rows = append(rows, rowCells(row, len(columns)))
		}
		if err != nil {
			// Use errors.Is for proper EOF detection
			if errors.Is(err, io.EOF) {
				break
			}
			return nil, fmt.Errorf("failed to read rows: %w", err)
		}
		if n == 0 {
			break
		}
	}

	return table.New(columns, rows)
}

// rowCells flattens a parquet row into one string per leaf column
func rowCells(row parquet.Row, width int) []string {
	cells := make([]string, width)
	for _, v := range row {
		idx := v.Column()
		if idx < 0 || idx >= width || v.IsNull() {
			continue
		}
		if cells[idx] != "" {
			cells[idx] += repeatedSeparator + v.String()
			continue
		}
		cells[idx] = v.String()
	}
	return cells
}

// Schema returns the parquet file schema.
func (r *ParquetReader) Schema() *parquet.Schema {
	return r.pqFile.Schema()
}

// Close closes the parquet reader and releases associated resources.
//
// Should be called when done reading to avoid resource leaks. It is safe
// to call Close multiple times.
func (r *ParquetReader) Close() error {
	if r.file == nil {
		return nil
	}
	err := r.file.Close()
	r.file = nil
	return err
}

// ReadParquet is a convenience wrapper opening path, reading it and closing it.
func ReadParquet(path string) (*table.Table, error) {
	r, err := NewParquetReader(path)
	if err != nil {
		return nil, err
	}
	defer func() { _ = r.Close() }()

	return r.ReadTable()
}
