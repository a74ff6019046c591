package output

import (
	"io"

	"github.com/mattn/go-runewidth"
	"github.com/olekukonko/tablewriter"

	"github.com/vegasq/tabq/table"
)

// ellipsis marks a truncated cell
const ellipsis = "…"

// TableFormatter outputs tables as aligned text tables for terminals
type TableFormatter struct {
	writer   io.Writer
	maxWidth int
}

// NewTableFormatter creates a table formatter. Cells wider than maxWidth
// display columns are truncated; maxWidth <= 0 disables truncation.
func NewTableFormatter(w io.Writer, maxWidth int) *TableFormatter {
	return &TableFormatter{writer: w, maxWidth: maxWidth}
}

// SetOutput sets the output writer
func (f *TableFormatter) SetOutput(w io.Writer) {
	f.writer = w
}

// Format renders t with a header row
func (f *TableFormatter) Format(t *table.Table) error {
	tw := tablewriter.NewWriter(f.writer)
	tw.SetAutoFormatHeaders(false)
	tw.SetAutoWrapText(false)
	tw.SetAlignment(tablewriter.ALIGN_LEFT)
	tw.SetHeader(f.truncateAll(t.Columns()))

	for _, row := range t.Rows() {
		tw.Append(f.truncateAll(row))
	}

	tw.Render()
	return nil
}

func (f *TableFormatter) truncateAll(cells []string) []string {
	if f.maxWidth <= 0 {
		return cells
	}
	for i, cell := range cells {
		cells[i] = runewidth.Truncate(cell, f.maxWidth, ellipsis)
	}
	return cells
}
