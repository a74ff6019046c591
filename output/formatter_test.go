package output

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vegasq/tabq/reader"
	"github.com/vegasq/tabq/table"
)

func peopleTable(t *testing.T) *table.Table {
	t.Helper()
	tbl, err := table.New(
		[]string{"Name", "Age", "City"},
		[][]string{
			{"Alice", "30", "NYC"},
			{"Bob", "", "LA"},
		},
	)
	require.NoError(t, err)
	return tbl
}

func TestNew(t *testing.T) {
	var buf bytes.Buffer

	for _, name := range append(Formats(), "JSON", "CSV") {
		f, err := New(name, &buf, Options{})
		require.NoError(t, err, name)
		assert.NotNil(t, f, name)
	}

	_, err := New("xml", &buf, Options{})
	require.ErrorIs(t, err, ErrUnknownFormat)
	assert.Contains(t, err.Error(), "xml")
}

func TestEncode(t *testing.T) {
	assert.Equal(t, "Name,Age,City\nAlice,30,NYC\nBob,,LA", Encode(peopleTable(t)))

	empty := table.MustNew([]string{"a", "b"}, nil)
	assert.Equal(t, "a,b", Encode(empty))
}

func TestEncode_RoundTrip(t *testing.T) {
	original := peopleTable(t)

	decoded, err := reader.ParseText(Encode(original))
	require.NoError(t, err)
	assert.True(t, original.Equal(decoded))
}

func TestTextFormatter(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewTextFormatter(&buf).Format(peopleTable(t)))
	assert.Equal(t, "Name,Age,City\nAlice,30,NYC\nBob,,LA\n", buf.String())
}

func TestCSVFormatter(t *testing.T) {
	tbl := table.MustNew(
		[]string{"name", "note"},
		[][]string{
			{"Alice", "hello, world"},
			{"Bob", "=SUM(A1:A2)"},
			{"Carol", "-1"},
			{"Erin", "-@SUM(A1)"},
			{"Dave", "say \"hi\""},
		},
	)

	var buf bytes.Buffer
	f := NewCSVFormatter(&bytes.Buffer{})
	f.SetOutput(&buf)
	require.NoError(t, f.Format(tbl))

	want := strings.Join([]string{
		"name,note",
		`Alice,"hello, world"`,
		"Bob,'=SUM(A1:A2)",
		"Carol,-1",
		"Erin,'-@SUM(A1)",
		`Dave,"say ""hi"""`,
		"",
	}, "\n")
	assert.Equal(t, want, buf.String())
}

func TestSanitizeCell(t *testing.T) {
	tests := map[string]string{
		"":         "",
		"plain":    "plain",
		"=1+1":     "'=1+1",
		"+1":       "+1",
		"-1":       "-1",
		"-2.5e3":   "-2.5e3",
		"+1+cmd":   "'+1+cmd",
		"-":        "'-",
		"@cmd":     "'@cmd",
		"|pipe":    "'|pipe",
		"=it's":    "'=it''s",
		"a=b":      "a=b",
		"\tindent": "'\tindent",
	}
	for in, want := range tests {
		assert.Equal(t, want, sanitizeCell(in), in)
	}
}

func TestJSONFormatter(t *testing.T) {
	tbl := table.MustNew(
		[]string{"z", "a", "quote"},
		[][]string{
			{"1", "2", `say "hi"`},
			{"", "x", "tab\there"},
		},
	)

	var buf bytes.Buffer
	require.NoError(t, NewJSONFormatter(&buf).Format(tbl))

	lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, `{"z":"1","a":"2","quote":"say \"hi\""}`, lines[0])
	assert.Equal(t, `{"z":"","a":"x","quote":"tab\there"}`, lines[1])
}

func TestJSONFormatter_Empty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewJSONFormatter(&buf).Format(table.MustNew([]string{"a"}, nil)))
	assert.Empty(t, buf.String())
}

func TestTableFormatter(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewTableFormatter(&buf, 0).Format(peopleTable(t)))

	out := buf.String()
	assert.Contains(t, out, "Name")
	assert.Contains(t, out, "Alice")
	assert.Contains(t, out, "NYC")
	assert.Contains(t, out, "LA")
}

func TestTableFormatter_Truncates(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewTableFormatter(&buf, 4).Format(peopleTable(t)))

	out := buf.String()
	assert.Contains(t, out, "Ali…")
	assert.NotContains(t, out, "Alice")
	assert.Contains(t, out, "Bob")
}

func TestParquetFormatter_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "people.parquet")
	file, err := os.Create(path)
	require.NoError(t, err)

	require.NoError(t, NewParquetFormatter(file).Format(peopleTable(t)))
	require.NoError(t, file.Close())

	got, err := reader.Load(path)
	require.NoError(t, err)

	// parquet orders group fields by name
	assert.Equal(t, []string{"Age", "City", "Name"}, got.Columns())
	assert.Equal(t, [][]string{
		{"30", "NYC", "Alice"},
		{"", "LA", "Bob"},
	}, got.Rows())
}

func TestParquetFormatter_Errors(t *testing.T) {
	var buf bytes.Buffer

	dup := table.MustNew([]string{"a", "a"}, [][]string{{"1", "2"}})
	require.ErrorIs(t, NewParquetFormatter(&buf).Format(dup), ErrDuplicateColumn)

	none := table.MustNew(nil, nil)
	require.ErrorIs(t, NewParquetFormatter(&buf).Format(none), ErrNoColumns)
}
