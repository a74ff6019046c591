package output

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/vegasq/tabq/table"
)

// Output format names accepted by New.
const (
	FormatText    = "text"
	FormatCSV     = "csv"
	FormatJSONL   = "jsonl"
	FormatTable   = "table"
	FormatParquet = "parquet"
)

// ErrUnknownFormat is returned by New for an unsupported format name.
var ErrUnknownFormat = errors.New("unknown output format")

// Formatter defines the interface for output formatters.
//
// Implementers must provide Format to render a table in the target format
// and SetOutput to change the output destination.
type Formatter interface {
	// Format writes t in the formatter's specific format
	Format(t *table.Table) error

	// SetOutput changes the output writer
	SetOutput(w io.Writer)
}

// Options tune formatters that support them.
type Options struct {
	// MaxWidth truncates cells of the table format to this display width.
	// Zero disables truncation.
	MaxWidth int
}

// Formats lists the accepted format names.
func Formats() []string {
	return []string{FormatText, FormatCSV, FormatJSONL, FormatTable, FormatParquet}
}

// New returns the formatter for format writing to w. Format names are
// case-insensitive and "json" is accepted as an alias for "jsonl".
func New(format string, w io.Writer, opts Options) (Formatter, error) {
	switch strings.ToLower(format) {
	case FormatText:
		return NewTextFormatter(w), nil
	case FormatCSV:
		return NewCSVFormatter(w), nil
	case FormatJSONL, "json":
		return NewJSONFormatter(w), nil
	case FormatTable:
		return NewTableFormatter(w, opts.MaxWidth), nil
	case FormatParquet:
		return NewParquetFormatter(w), nil
	default:
		return nil, fmt.Errorf("%w: %q (supported: %s)", ErrUnknownFormat, format, strings.Join(Formats(), ", "))
	}
}
