package reader

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/vegasq/tabq/table"
)

// fieldSeparator separates both column names and cells.
const fieldSeparator = ","

// maxLineLength bounds a single input line (16MB)
const maxLineLength = 16 * 1024 * 1024

// ParseText decodes a table from delimited text.
func ParseText(text string) (*table.Table, error) {
	return Decode(strings.NewReader(text))
}

// Decode reads delimited text from r. The first non-empty line is the
// header and a trailing CR is stripped from every line. After the header
// every line is a row, an empty line being a single empty cell, except
// for empty lines at the end of the input, which are dropped. A row whose
// field count differs from the header fails with table.ErrRowWidth and its
// 1-based line number. Input without a header yields an empty table with
// no columns.
func Decode(r io.Reader) (*table.Table, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineLength)

	var (
		columns []string
		rows    [][]string
		lineNo  int
		// line numbers of empty lines not yet known to be interior
		pending []int
	)

	addRow := func(fields []string, n int) error {
		if len(fields) != len(columns) {
			return fmt.Errorf("line %d: %d fields, header has %d: %w", n, len(fields), len(columns), table.ErrRowWidth)
		}
		rows = append(rows, fields)
		return nil
	}

	for scanner.Scan() {
		lineNo++
		line := strings.TrimSuffix(scanner.Text(), "\r")

		if columns == nil {
			if line != "" {
				columns = strings.Split(line, fieldSeparator)
			}
			continue
		}
		if line == "" {
			pending = append(pending, lineNo)
			continue
		}

		for _, n := range pending {
			if err := addRow([]string{""}, n); err != nil {
				return nil, err
			}
		}
		pending = pending[:0]

		if err := addRow(strings.Split(line, fieldSeparator), lineNo); err != nil {
			return nil, err
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read text: %w", err)
	}

	return table.New(columns, rows)
}
