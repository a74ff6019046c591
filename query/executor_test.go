package query

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vegasq/tabq/cond"
	"github.com/vegasq/tabq/table"
)

func peopleTable() *table.Table {
	return table.MustNew(
		[]string{"Name", "Age"},
		[][]string{{"Alice", "30"}, {"Bob", "25"}},
	)
}

func citiesTable() *table.Table {
	return table.MustNew(
		[]string{"Name", "City"},
		[][]string{{"Alice", "NYC"}, {"Bob", "LA"}, {"Carol", "SF"}},
	)
}

func TestEval_Value(t *testing.T) {
	tbl := peopleTable()

	got, err := Eval(NewValue(tbl))
	require.NoError(t, err)
	assert.Same(t, tbl, got)

	_, err = Eval(&Value{})
	assert.ErrorIs(t, err, ErrNilTable)
}

func TestEval_Select(t *testing.T) {
	got, err := Eval(NewSelect([]string{"Age"}, NewValue(peopleTable())))
	require.NoError(t, err)
	assert.Equal(t, []string{"Age"}, got.Columns())
	assert.Equal(t, [][]string{{"30"}, {"25"}}, got.Rows())

	_, err = Eval(NewSelect([]string{"City"}, NewValue(peopleTable())))
	assert.ErrorIs(t, err, table.ErrMissingColumn)
}

func TestEval_Filter(t *testing.T) {
	over := func(n string) cond.Cond {
		return cond.NewField("Age", cond.Compare(cond.OpGreater, n))
	}

	got, err := Eval(NewFilter(over("26"), NewValue(peopleTable())))
	require.NoError(t, err)
	assert.Equal(t, [][]string{{"Alice", "30"}}, got.Rows())

	_, err = Eval(NewFilter(over("100"), NewValue(peopleTable())))
	assert.ErrorIs(t, err, table.ErrEmptyFilterResult)
}

func TestEval_NewCol(t *testing.T) {
	got, err := Eval(NewNewCol("Country", "US", NewValue(peopleTable())))
	require.NoError(t, err)
	assert.Equal(t, []string{"Name", "Age", "Country"}, got.Columns())
	assert.Equal(t, 2, got.NumRows())
}

func TestEval_Merge(t *testing.T) {
	got, err := Eval(NewMerge("Name", NewValue(peopleTable()), NewValue(citiesTable())))
	require.NoError(t, err)
	assert.Equal(t, []string{"Name", "Age", "City"}, got.Columns())
	assert.Equal(t, [][]string{
		{"Alice", "30", "NYC"},
		{"Bob", "25", "LA"},
		{"Carol", "", "SF"},
	}, got.Rows())

	_, err = Eval(NewMerge("Id", NewValue(peopleTable()), NewValue(citiesTable())))
	assert.ErrorIs(t, err, table.ErrMissingKey)
}

func TestEval_Pipeline(t *testing.T) {
	q := NewSelect(
		[]string{"Name", "City", "Source"},
		NewNewCol("Source", "crm",
			NewMerge("Name",
				NewFilter(cond.NewField("Name", cond.HasPrefix("A")), NewValue(peopleTable())),
				NewValue(citiesTable()),
			),
		),
	)

	got, err := Eval(q)
	require.NoError(t, err)
	assert.Equal(t, [][]string{
		{"Alice", "NYC", "crm"},
		{"Bob", "LA", "crm"},
		{"Carol", "SF", "crm"},
	}, got.Rows())

	// re-evaluation gives the same answer
	again, err := Eval(q)
	require.NoError(t, err)
	assert.True(t, got.Equal(again))
}

func TestEval_FailurePropagates(t *testing.T) {
	failing := NewFilter(cond.NewField("Age", cond.Equals("0")), NewValue(peopleTable()))

	tests := []struct {
		name     string
		query    Query
		contains string
	}{
		{"select over failure", NewSelect([]string{"Name"}, failing), "select: filter:"},
		{"filter over failure", NewFilter(cond.NewField("Name", cond.Equals("Alice")), failing), "filter: filter:"},
		{"newcol over failure", NewNewCol("x", "", failing), "newcol: filter:"},
		{"merge left failure", NewMerge("Name", failing, NewValue(citiesTable())), "merge: left: filter:"},
		{"merge right failure", NewMerge("Name", NewValue(citiesTable()), failing), "merge: right: filter:"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Eval(tt.query)
			require.Error(t, err)
			assert.Nil(t, got)
			assert.True(t, errors.Is(err, table.ErrEmptyFilterResult))
			assert.Contains(t, err.Error(), tt.contains)
		})
	}
}

func TestEval_MergeEvaluatesLeftFirst(t *testing.T) {
	var order []string
	tracking := func(name string) cond.Cond {
		return cond.NewField("Name", func(string) bool {
			order = append(order, name)
			return true
		})
	}

	q := NewMerge("Name",
		NewFilter(tracking("left"), NewValue(peopleTable().Head(1))),
		NewFilter(tracking("right"), NewValue(citiesTable().Head(1))),
	)
	_, err := Eval(q)
	require.NoError(t, err)
	assert.Equal(t, []string{"left", "right"}, order)
}

func TestEval_NilNodes(t *testing.T) {
	_, err := Eval(nil)
	assert.ErrorIs(t, err, ErrNilQuery)

	_, err = Eval(NewSelect([]string{"a"}, nil))
	assert.ErrorIs(t, err, ErrNilQuery)

	var sel *Select
	_, err = Eval(sel)
	assert.ErrorIs(t, err, ErrNilQuery)
}

func TestQuery_String(t *testing.T) {
	q := NewSelect([]string{"Name", "first name"},
		NewNewCol("x", "a b",
			NewMerge("Name", &Value{Name: "people"}, NewValue(citiesTable()))))

	assert.Equal(t, `select([Name, "first name"], newcol(x, "a b", merge(Name, people, <table 3x2>)))`, q.String())
}
