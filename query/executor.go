package query

import (
	"errors"
	"fmt"

	"github.com/vegasq/tabq/table"
)

var (
	// ErrNilQuery is returned when a node or one of its targets is nil.
	ErrNilQuery = errors.New("nil query")

	// ErrNilTable is returned when a Value node holds no table.
	ErrNilTable = errors.New("value node has no table")
)

// Eval evaluates q. Failures of sub-queries propagate: the returned error
// wraps the innermost cause, so errors.Is(err, table.ErrMissingColumn) and
// friends work on the result of any tree.
func Eval(q Query) (*table.Table, error) {
	switch n := q.(type) {
	case *Value:
		if n == nil {
			return nil, ErrNilQuery
		}
		if n.Table == nil {
			return nil, ErrNilTable
		}
		return n.Table, nil

	case *Select:
		if n == nil {
			return nil, ErrNilQuery
		}
		target, err := Eval(n.Target)
		if err != nil {
			return nil, fmt.Errorf("select: %w", err)
		}
		result, err := target.Select(n.Columns...)
		if err != nil {
			return nil, fmt.Errorf("select: %w", err)
		}
		return result, nil

	case *Filter:
		if n == nil {
			return nil, ErrNilQuery
		}
		target, err := Eval(n.Target)
		if err != nil {
			return nil, fmt.Errorf("filter: %w", err)
		}
		result, err := target.Filter(n.Cond)
		if err != nil {
			return nil, fmt.Errorf("filter: %w", err)
		}
		return result, nil

	case *NewCol:
		if n == nil {
			return nil, ErrNilQuery
		}
		target, err := Eval(n.Target)
		if err != nil {
			return nil, fmt.Errorf("newcol: %w", err)
		}
		return target.NewColumn(n.Name, n.Default), nil

	case *Merge:
		if n == nil {
			return nil, ErrNilQuery
		}
		// left strictly before right
		left, err := Eval(n.Left)
		if err != nil {
			return nil, fmt.Errorf("merge: left: %w", err)
		}
		right, err := Eval(n.Right)
		if err != nil {
			return nil, fmt.Errorf("merge: right: %w", err)
		}
		result, err := left.Merge(n.Key, right)
		if err != nil {
			return nil, fmt.Errorf("merge: %w", err)
		}
		return result, nil

	case nil:
		return nil, ErrNilQuery

	default:
		return nil, fmt.Errorf("unsupported query node %T", q)
	}
}
