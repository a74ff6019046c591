package output

import (
	"bufio"
	"fmt"
	"io"

	"github.com/segmentio/encoding/json"

	"github.com/vegasq/tabq/table"
)

// JSONFormatter outputs tables as JSON Lines format
type JSONFormatter struct {
	writer io.Writer
}

// NewJSONFormatter creates a new JSON Lines formatter
func NewJSONFormatter(w io.Writer) *JSONFormatter {
	return &JSONFormatter{writer: w}
}

// SetOutput sets the output writer
func (j *JSONFormatter) SetOutput(w io.Writer) {
	j.writer = w
}

// Format writes one JSON object per row. Keys follow the column order of t;
// a map would lose it.
func (j *JSONFormatter) Format(t *table.Table) error {
	bw := bufio.NewWriter(j.writer)

	keys := make([][]byte, t.NumColumns())
	for i, col := range t.Columns() {
		key, err := json.Marshal(col)
		if err != nil {
			return fmt.Errorf("failed to encode column %q: %w", col, err)
		}
		keys[i] = key
	}

	var line []byte
	for i := 0; i < t.NumRows(); i++ {
		line = append(line[:0], '{')
		for c, cell := range t.Row(i) {
			if c > 0 {
				line = append(line, ',')
			}
			value, err := json.Marshal(cell)
			if err != nil {
				return fmt.Errorf("failed to encode row %d: %w", i, err)
			}
			line = append(line, keys[c]...)
			line = append(line, ':')
			line = append(line, value...)
		}
		line = append(line, '}', '\n')
		if _, err := bw.Write(line); err != nil {
			return err
		}
	}

	return bw.Flush()
}
