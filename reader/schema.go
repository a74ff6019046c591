package reader

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/parquet-go/parquet-go"

	"github.com/vegasq/tabq/table"
)

// SchemaColumns are the columns of the table returned by Describe.
var SchemaColumns = []string{"name", "index", "type", "non_empty", "distinct"}

// textType is reported for every column of a text source
const textType = "STRING"

// Describe summarises t: one row per column with its position, the number
// of non-empty cells and the number of distinct values. Every column is
// reported with type STRING.
func Describe(t *table.Table) *table.Table {
	types := make([]string, t.NumColumns())
	for i := range types {
		types[i] = textType
	}
	return describe(t, types)
}

// DescribeFile loads path and summarises it like Describe. Parquet inputs
// report the user-facing type of each leaf column instead of STRING.
func DescribeFile(path string) (*table.Table, error) {
	if !IsParquet(path) {
		t, err := Load(path)
		if err != nil {
			return nil, err
		}
		return Describe(t), nil
	}

	r, err := NewParquetReader(path)
	if err != nil {
		return nil, err
	}
	defer func() { _ = r.Close() }()

	t, err := r.ReadTable()
	if err != nil {
		return nil, err
	}

	leaves := leafFields(r.Schema().Fields())
	types := make([]string, t.NumColumns())
	for i := range types {
		types[i] = "UNKNOWN"
		if i < len(leaves) {
			types[i] = userFriendlyType(leaves[i])
		}
	}
	return describe(t, types), nil
}

func describe(t *table.Table, types []string) *table.Table {
	columns := t.Columns()
	data := t.Rows()
	rows := make([][]string, len(columns))
	for i, name := range columns {
		nonEmpty := 0
		distinct := make(map[string]struct{})
		for _, row := range data {
			v := row[i]
			if v != "" {
				nonEmpty++
			}
			distinct[v] = struct{}{}
		}
		rows[i] = []string{
			name,
			strconv.Itoa(i),
			types[i],
			strconv.Itoa(nonEmpty),
			strconv.Itoa(len(distinct)),
		}
	}
	return table.MustNew(SchemaColumns, rows)
}

// leafFields flattens nested groups into their leaf fields, in the same
// order as the schema's leaf columns.
func leafFields(fields []parquet.Field) []parquet.Field {
	var leaves []parquet.Field
	for _, field := range fields {
		if children := field.Fields(); len(children) > 0 {
			leaves = append(leaves, leafFields(children)...)
			continue
		}
		leaves = append(leaves, field)
	}
	return leaves
}

// userFriendlyType returns a user-friendly type name for a Parquet field.
//
// This converts Parquet's physical and logical types into simpler, more
// recognizable type names for end users.
func userFriendlyType(field parquet.Field) string {
	if field.Type() == nil {
		return "GROUP"
	}

	if logicalType := field.Type().LogicalType(); logicalType != nil {
		name, _, _ := strings.Cut(logicalType.String(), "(")
		switch name {
		case "STRING", "UTF8":
			return "STRING"
		case "ENUM", "UUID", "DATE", "TIME", "TIMESTAMP", "DECIMAL", "JSON", "BSON":
			return name
		}
	}

	switch kind := field.Type().Kind(); kind {
	case parquet.Boolean:
		return "BOOLEAN"
	case parquet.Int32:
		return "INT32"
	case parquet.Int64:
		return "INT64"
	case parquet.Int96:
		return "INT96"
	case parquet.Float:
		return "FLOAT32"
	case parquet.Double:
		return "FLOAT64"
	case parquet.ByteArray:
		return "BYTE_ARRAY"
	case parquet.FixedLenByteArray:
		return "FIXED_LEN_BYTE_ARRAY"
	default:
		return fmt.Sprintf("UNKNOWN(%v)", kind)
	}
}
