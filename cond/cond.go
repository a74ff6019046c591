package cond

import "fmt"

// Row is the view of a single table row a condition is evaluated against.
type Row interface {
	// Lookup returns the cell stored under column and whether the column exists.
	Lookup(column string) (string, bool)
}

// Predicate tests a single cell value.
type Predicate func(value string) bool

// Cond is a filter condition. The set of implementations is closed:
// *Field, *AndCond and *OrCond.
type Cond interface {
	fmt.Stringer
	isCond()
}

// Field applies Predicate to the value of Column.
type Field struct {
	Column    string
	Predicate Predicate
}

// AndCond is the conjunction of two conditions
type AndCond struct {
	Left  Cond
	Right Cond
}

// OrCond is the disjunction of two conditions
type OrCond struct {
	Left  Cond
	Right Cond
}

func (*Field) isCond()   {}
func (*AndCond) isCond() {}
func (*OrCond) isCond()  {}

// NewField builds a leaf condition. A nil predicate never matches.
func NewField(column string, p Predicate) *Field {
	return &Field{Column: column, Predicate: p}
}

// And builds a conjunction. It evaluates to False if either side is False,
// to True only if both sides are True, and to Undefined otherwise.
func And(left, right Cond) Cond {
	return &AndCond{Left: left, Right: right}
}

// Or builds a disjunction. It evaluates to True if either side is True,
// to False only if both sides are False, and to Undefined otherwise.
func Or(left, right Cond) Cond {
	return &OrCond{Left: left, Right: right}
}

// All folds conds left to right into nested And nodes.
// It returns nil when conds is empty.
func All(conds ...Cond) Cond {
	return fold(And, conds)
}

// Any folds conds left to right into nested Or nodes.
// It returns nil when conds is empty.
func Any(conds ...Cond) Cond {
	return fold(Or, conds)
}

func fold(join func(Cond, Cond) Cond, conds []Cond) Cond {
	if len(conds) == 0 {
		return nil
	}
	acc := conds[0]
	for _, c := range conds[1:] {
		acc = join(acc, c)
	}
	return acc
}

// Eval evaluates c against row. A nil condition, typed or not, is Undefined.
func Eval(c Cond, row Row) Truth {
	switch n := c.(type) {
	case *Field:
		if n == nil {
			return Undefined
		}
		value, ok := row.Lookup(n.Column)
		if !ok {
			return Undefined
		}
		if n.Predicate == nil {
			return False
		}
		return FromBool(n.Predicate(value))
	case *AndCond:
		if n == nil {
			return Undefined
		}
		// both sides are evaluated, no short-circuit
		left := Eval(n.Left, row)
		right := Eval(n.Right, row)
		return and(left, right)
	case *OrCond:
		if n == nil {
			return Undefined
		}
		left := Eval(n.Left, row)
		right := Eval(n.Right, row)
		return or(left, right)
	default:
		return Undefined
	}
}

func (f *Field) String() string {
	return fmt.Sprintf("field(%s)", f.Column)
}

func (a *AndCond) String() string {
	return fmt.Sprintf("(%v and %v)", a.Left, a.Right)
}

func (o *OrCond) String() string {
	return fmt.Sprintf("(%v or %v)", o.Left, o.Right)
}
