package reader

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/parquet-go/parquet-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type personRecord struct {
	Name  string   `parquet:"name"`
	Age   *int64   `parquet:"age,optional"`
	Score float64  `parquet:"score"`
	Tags  []string `parquet:"tags,list"`
}

func int64Ptr(v int64) *int64 { return &v }

func writePeopleParquet(t *testing.T, dir string) string {
	t.Helper()
	path := filepath.Join(dir, "people.parquet")
	records := []personRecord{
		{Name: "Alice", Age: int64Ptr(30), Score: 1.5, Tags: []string{"a", "b"}},
		{Name: "Bob", Score: 2},
	}
	require.NoError(t, parquet.WriteFile(path, records))
	return path
}

func TestParquetReader_ReadTable(t *testing.T) {
	path := writePeopleParquet(t, t.TempDir())

	r, err := NewParquetReader(path)
	require.NoError(t, err)
	defer func() { _ = r.Close() }()

	assert.Equal(t, []string{"name", "age", "score", "tags.list.element"}, r.Columns())

	got, err := r.ReadTable()
	require.NoError(t, err)
	require.Equal(t, 2, got.NumRows())

	alice := got.RowMap(0)
	assert.Equal(t, "Alice", alice["name"])
	assert.Equal(t, "30", alice["age"])
	assert.Equal(t, "a;b", alice["tags.list.element"])

	bob := got.RowMap(1)
	assert.Equal(t, "Bob", bob["name"])
	assert.Equal(t, "", bob["age"], "null value becomes an empty cell")
	assert.Equal(t, "", bob["tags.list.element"])
}

func TestParquetReader_CloseTwice(t *testing.T) {
	path := writePeopleParquet(t, t.TempDir())

	r, err := NewParquetReader(path)
	require.NoError(t, err)
	require.NoError(t, r.Close())
	assert.NoError(t, r.Close())
}

func TestNewParquetReader_Errors(t *testing.T) {
	dir := t.TempDir()

	_, err := NewParquetReader(filepath.Join(dir, "missing.parquet"))
	assert.Error(t, err)

	bogus := filepath.Join(dir, "bogus.parquet")
	require.NoError(t, os.WriteFile(bogus, []byte("definitely not parquet"), 0o644))
	_, err = NewParquetReader(bogus)
	assert.Error(t, err)
}

func TestLoad_Parquet(t *testing.T) {
	path := writePeopleParquet(t, t.TempDir())

	got, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 2, got.NumRows())
	assert.True(t, got.HasColumn("name"))
}
