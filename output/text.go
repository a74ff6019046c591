package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/vegasq/tabq/table"
)

// Encode renders t as the comma-joined header line followed by one
// comma-joined line per row. Cells are not quoted.
func Encode(t *table.Table) string {
	lines := make([]string, 0, t.NumRows()+1)
	lines = append(lines, strings.Join(t.Columns(), ","))
	for _, row := range t.Rows() {
		lines = append(lines, strings.Join(row, ","))
	}
	return strings.Join(lines, "\n")
}

// TextFormatter outputs tables in the plain text encoding
type TextFormatter struct {
	writer io.Writer
}

// NewTextFormatter creates a new text formatter
func NewTextFormatter(w io.Writer) *TextFormatter {
	return &TextFormatter{writer: w}
}

// SetOutput sets the output writer
func (f *TextFormatter) SetOutput(w io.Writer) {
	f.writer = w
}

// Format writes t followed by a newline
func (f *TextFormatter) Format(t *table.Table) error {
	if _, err := io.WriteString(f.writer, Encode(t)+"\n"); err != nil {
		return fmt.Errorf("failed to write text: %w", err)
	}
	return nil
}
