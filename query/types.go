package query

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/vegasq/tabq/cond"
	"github.com/vegasq/tabq/table"
)

// Query is a node of a query tree. The set of implementations is closed:
// *Value, *Select, *Filter, *NewCol and *Merge.
type Query interface {
	fmt.Stringer
	isQuery()
}

// Value is a leaf wrapping a concrete table.
type Value struct {
	Table *table.Table
	Name  string // Optional source name, used for display only
}

// Select projects Columns out of Target.
type Select struct {
	Columns []string
	Target  Query
}

// Filter keeps the rows of Target matching Cond.
type Filter struct {
	Cond   cond.Cond
	Target Query
}

// NewCol appends column Name holding Default to Target.
type NewCol struct {
	Name    string
	Default string
	Target  Query
}

// Merge joins Left and Right on Key.
type Merge struct {
	Key   string
	Left  Query
	Right Query
}

func (*Value) isQuery()  {}
func (*Select) isQuery() {}
func (*Filter) isQuery() {}
func (*NewCol) isQuery() {}
func (*Merge) isQuery()  {}

// NewValue wraps t in a leaf node.
func NewValue(t *table.Table) *Value {
	return &Value{Table: t}
}

// NewSelect builds a Select node.
func NewSelect(columns []string, target Query) *Select {
	return &Select{Columns: columns, Target: target}
}

// NewFilter builds a Filter node.
func NewFilter(c cond.Cond, target Query) *Filter {
	return &Filter{Cond: c, Target: target}
}

// NewNewCol builds a NewCol node.
func NewNewCol(name, defaultValue string, target Query) *NewCol {
	return &NewCol{Name: name, Default: defaultValue, Target: target}
}

// NewMerge builds a Merge node.
func NewMerge(key string, left, right Query) *Merge {
	return &Merge{Key: key, Left: left, Right: right}
}

func (v *Value) String() string {
	if v.Name != "" {
		return v.Name
	}
	if v.Table == nil {
		return "<nil>"
	}
	return fmt.Sprintf("<table %dx%d>", v.Table.NumRows(), v.Table.NumColumns())
}

func (s *Select) String() string {
	quoted := make([]string, len(s.Columns))
	for i, c := range s.Columns {
		quoted[i] = quoteName(c)
	}
	return fmt.Sprintf("select([%s], %v)", strings.Join(quoted, ", "), s.Target)
}

func (f *Filter) String() string {
	return fmt.Sprintf("filter(%v, %v)", f.Cond, f.Target)
}

func (n *NewCol) String() string {
	return fmt.Sprintf("newcol(%s, %s, %v)", quoteName(n.Name), strconv.Quote(n.Default), n.Target)
}

func (m *Merge) String() string {
	return fmt.Sprintf("merge(%s, %v, %v)", quoteName(m.Key), m.Left, m.Right)
}

// quoteName quotes a name unless it lexes as a plain identifier.
func quoteName(name string) string {
	if isPlainIdent(name) {
		return name
	}
	return strconv.Quote(name)
}
