// Package cond provides filter conditions evaluated against a single row.
//
// A condition is a small expression tree built from three node kinds:
//
//   - Field: a leaf that applies a caller-supplied predicate to one column
//   - And, Or: binary nodes combining two sub-conditions
//
// Evaluation yields a tri-state Truth value. A Field that references a
// column absent from the row evaluates to Undefined rather than False, and
// And/Or combine Undefined as described on their constructors. Both sides
// of a binary node are always evaluated.
//
// Example usage:
//
//	c := cond.And(
//	    cond.NewField("Age", cond.Compare(cond.OpGreater, "26")),
//	    cond.NewField("Name", cond.HasPrefix("A")),
//	)
//	if cond.Eval(c, row) == cond.True {
//	    // keep row
//	}
//
// Conditions hold no mutable state and may be shared across goroutines.
package cond
