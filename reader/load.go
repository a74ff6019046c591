package reader

import (
	"fmt"
	"log/slog"
	"path/filepath"
	"slices"
	"strings"

	"github.com/vegasq/tabq/table"
)

// FileColumn is the column LoadMultiple appends to tag each row with its
// source file.
const FileColumn = "_file"

// maxFiles limits the number of files a glob pattern may expand to
const maxFiles = 1000

// IsParquet reports whether path names a parquet file.
func IsParquet(path string) bool {
	return strings.EqualFold(filepath.Ext(path), ".parquet")
}

// IsGlob reports whether path contains glob wildcards.
func IsGlob(path string) bool {
	return strings.ContainsAny(path, "*?[]")
}

// Load reads a single file. Files ending in .parquet are read as parquet;
// anything else is decoded as (optionally compressed) delimited text.
func Load(path string) (*table.Table, error) {
	if IsParquet(path) {
		return ReadParquet(path)
	}

	rc, err := Open(path)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rc.Close() }()

	t, err := Decode(rc)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return t, nil
}

// LoadMultiple reads every file matching the glob pattern.
//
// The pattern can include wildcards:
//   - * matches any sequence of non-separator characters
//   - ? matches any single non-separator character
//   - [range] matches any character in range
//
// A pattern without wildcards is read with Load and is not tagged.
// Otherwise each row gets a trailing "_file" column containing its source
// path. Returns an error if no files match the pattern, if matched files
// do not share the same header, or if any file fails to read.
func LoadMultiple(pattern string) (*table.Table, error) {
	if !IsGlob(pattern) {
		return Load(pattern)
	}

	matches, err := filepath.Glob(pattern)
	if err != nil {
		return nil, fmt.Errorf("invalid glob pattern: %w", err)
	}

	if len(matches) == 0 {
		return nil, fmt.Errorf("no files match pattern: %s", pattern)
	}

	// Limit number of files to prevent resource exhaustion
	if len(matches) > maxFiles {
		return nil, fmt.Errorf("glob pattern matched too many files (%d), maximum is %d", len(matches), maxFiles)
	}

	var (
		columns []string
		rows    [][]string
	)
	for _, filePath := range matches {
		t, err := Load(filePath)
		if err != nil {
			return nil, fmt.Errorf("failed to read %s: %w", filePath, err)
		}

		if columns == nil {
			columns = t.Columns()
		} else if !slices.Equal(columns, t.Columns()) {
			return nil, fmt.Errorf("%s: header %v differs from %v", filePath, t.Columns(), columns)
		}

		for _, row := range t.Rows() {
			rows = append(rows, append(row, filePath))
		}
	}

	slog.Debug("loaded multiple files",
		slog.String("pattern", pattern),
		slog.Int("files", len(matches)),
		slog.Int("rows", len(rows)),
	)

	return table.New(append(columns, FileColumn), rows)
}
