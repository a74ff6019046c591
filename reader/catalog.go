package reader

import (
	"fmt"
	"log/slog"
	"path/filepath"
	"slices"
	"strings"
	"sync"

	"github.com/vegasq/tabq/table"
)

// Catalog maps source names to file paths and caches loaded tables.
// It implements query.Resolver. Catalog is safe for concurrent use.
type Catalog struct {
	mu     sync.Mutex
	paths  map[string]string
	tables map[string]*table.Table
}

// NewCatalog returns an empty catalog.
func NewCatalog() *Catalog {
	return &Catalog{
		paths:  make(map[string]string),
		tables: make(map[string]*table.Table),
	}
}

// Register binds name to path, replacing any previous binding.
func (c *Catalog) Register(name, path string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.paths[name] = path
	delete(c.tables, name)
}

// RegisterFile binds path under its SourceName and returns that name.
func (c *Catalog) RegisterFile(path string) string {
	name := SourceName(path)
	c.Register(name, path)
	return name
}

// Names returns the registered source names in sorted order.
func (c *Catalog) Names() []string {
	c.mu.Lock()
	defer c.mu.Unlock()

	names := make([]string, 0, len(c.paths))
	for name := range c.paths {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// Resolve returns the table registered under name, loading it on first
// use. Names that were never registered are treated as a path or glob.
func (c *Catalog) Resolve(name string) (*table.Table, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if t, ok := c.tables[name]; ok {
		return t, nil
	}

	path, ok := c.paths[name]
	if !ok {
		path = name
	}

	t, err := LoadMultiple(path)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", path, err)
	}

	slog.Debug("source loaded",
		slog.String("name", name),
		slog.String("path", path),
		slog.Int("rows", t.NumRows()),
		slog.Int("columns", t.NumColumns()),
	)

	c.tables[name] = t
	return t, nil
}

// SourceName derives a source name from a path: the base name without
// compression and format extensions ("data/people.csv.gz" -> "people").
func SourceName(path string) string {
	base := filepath.Base(TrimCodecExt(path))
	if ext := filepath.Ext(base); ext != "" && ext != base {
		base = strings.TrimSuffix(base, ext)
	}
	return base
}
