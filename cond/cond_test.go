package cond

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type mapRow map[string]string

func (m mapRow) Lookup(column string) (string, bool) {
	v, ok := m[column]
	return v, ok
}

// constCond builds a condition that evaluates to the given Truth against
// the fixture row used below.
func constCond(t Truth) Cond {
	switch t {
	case True:
		return NewField("present", Equals("x"))
	case False:
		return NewField("present", Equals("y"))
	default:
		return NewField("missing", Equals("x"))
	}
}

func TestEval_Field(t *testing.T) {
	row := mapRow{"Name": "Alice", "Age": "30"}

	tests := []struct {
		name string
		cond Cond
		want Truth
	}{
		{"predicate true", NewField("Name", Equals("Alice")), True},
		{"predicate false", NewField("Name", Equals("Bob")), False},
		{"missing column", NewField("City", Equals("NYC")), Undefined},
		{"nil predicate", NewField("Name", nil), False},
		{"numeric compare", NewField("Age", Compare(OpGreater, "26")), True},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Eval(tt.cond, row))
		})
	}
}

func TestEval_TriStateTables(t *testing.T) {
	row := mapRow{"present": "x"}
	values := []Truth{True, False, Undefined}

	wantAnd := map[[2]Truth]Truth{
		{True, True}:           True,
		{True, False}:          False,
		{True, Undefined}:      Undefined,
		{False, True}:          False,
		{False, False}:         False,
		{False, Undefined}:     False,
		{Undefined, True}:      Undefined,
		{Undefined, False}:     False,
		{Undefined, Undefined}: Undefined,
	}
	wantOr := map[[2]Truth]Truth{
		{True, True}:           True,
		{True, False}:          True,
		{True, Undefined}:      True,
		{False, True}:          True,
		{False, False}:         False,
		{False, Undefined}:     Undefined,
		{Undefined, True}:      True,
		{Undefined, False}:     Undefined,
		{Undefined, Undefined}: Undefined,
	}

	for _, l := range values {
		for _, r := range values {
			key := [2]Truth{l, r}
			assert.Equal(t, wantAnd[key], Eval(And(constCond(l), constCond(r)), row), "%v and %v", l, r)
			assert.Equal(t, wantOr[key], Eval(Or(constCond(l), constCond(r)), row), "%v or %v", l, r)
		}
	}
}

func TestEval_NoShortCircuit(t *testing.T) {
	calls := 0
	counting := func(v string) bool {
		calls++
		return true
	}
	row := mapRow{"a": "1", "b": "2"}

	Eval(And(NewField("a", Equals("nope")), NewField("b", counting)), row)
	Eval(Or(NewField("a", Equals("1")), NewField("b", counting)), row)

	assert.Equal(t, 2, calls)
}

func TestAllAny(t *testing.T) {
	row := mapRow{"a": "1", "b": "2"}

	assert.Nil(t, All())
	assert.Nil(t, Any())
	assert.Equal(t, True, Eval(All(NewField("a", Equals("1")), NewField("b", Equals("2"))), row))
	assert.Equal(t, False, Eval(All(NewField("a", Equals("1")), NewField("b", Equals("3")), NewField("c", Equals("x"))), row))
	assert.Equal(t, True, Eval(Any(NewField("c", Equals("1")), NewField("b", Equals("2"))), row))
	assert.Equal(t, Undefined, Eval(Any(NewField("c", Equals("1")), NewField("b", Equals("9"))), row))
}

func TestEval_NilCond(t *testing.T) {
	row := mapRow{"a": "1"}

	assert.Equal(t, Undefined, Eval(nil, row))
	assert.Equal(t, Undefined, Eval((*Field)(nil), row))
	assert.Equal(t, Undefined, Eval((*AndCond)(nil), row))
	assert.Equal(t, Undefined, Eval((*OrCond)(nil), row))

	// a typed-nil operand behaves like a missing column
	assert.Equal(t, False, Eval(And(NewField("a", Equals("2")), (*Field)(nil)), row))
	assert.Equal(t, True, Eval(Or(NewField("a", Equals("1")), (*Field)(nil)), row))
}

func TestCond_String(t *testing.T) {
	c := Or(And(NewField("a", nil), NewField("b", nil)), NewField("c", nil))
	assert.Equal(t, "((field(a) and field(b)) or field(c))", c.String())
}
