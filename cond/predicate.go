package cond

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Op is a comparison operator used by Compare.
type Op int

const (
	OpEqual        Op = iota // =
	OpNotEqual               // !=
	OpLess                   // <
	OpGreater                // >
	OpLessEqual              // <=
	OpGreaterEqual           // >=
)

var opSymbols = map[Op]string{
	OpEqual:        "=",
	OpNotEqual:     "!=",
	OpLess:         "<",
	OpGreater:      ">",
	OpLessEqual:    "<=",
	OpGreaterEqual: ">=",
}

func (o Op) String() string {
	if s, ok := opSymbols[o]; ok {
		return s
	}
	return fmt.Sprintf("Op(%d)", int(o))
}

// ParseOp maps an operator symbol to its Op.
func ParseOp(symbol string) (Op, error) {
	for op, s := range opSymbols {
		if s == symbol {
			return op, nil
		}
	}
	return 0, fmt.Errorf("unknown comparison operator %q", symbol)
}

// Equals matches cells equal to want.
func Equals(want string) Predicate {
	return func(v string) bool { return v == want }
}

// NotEquals matches cells different from want.
func NotEquals(want string) Predicate {
	return func(v string) bool { return v != want }
}

// HasPrefix matches cells starting with prefix.
func HasPrefix(prefix string) Predicate {
	return func(v string) bool { return strings.HasPrefix(v, prefix) }
}

// HasSuffix matches cells ending with suffix.
func HasSuffix(suffix string) Predicate {
	return func(v string) bool { return strings.HasSuffix(v, suffix) }
}

// Contains matches cells containing sub.
func Contains(sub string) Predicate {
	return func(v string) bool { return strings.Contains(v, sub) }
}

// Not negates p.
func Not(p Predicate) Predicate {
	return func(v string) bool { return !p(v) }
}

// Number parses the cell as a float and applies fn.
// Cells that are not numbers never match.
func Number(fn func(float64) bool) Predicate {
	return func(v string) bool {
		n, ok := parseNumber(v)
		if !ok {
			return false
		}
		return fn(n)
	}
}

// Like matches cells against a SQL LIKE pattern where % matches any
// sequence of characters and _ matches exactly one character.
func Like(pattern string) Predicate {
	p := []rune(pattern)
	return func(v string) bool { return matchLike([]rune(v), p) }
}

// Compare compares each cell against literal with op. When both the cell
// and the literal parse as numbers the comparison is numeric, otherwise it
// is a case-sensitive string comparison.
func Compare(op Op, literal string) Predicate {
	litNum, litIsNum := parseNumber(literal)
	return func(v string) bool {
		if litIsNum {
			if n, ok := parseNumber(v); ok {
				return compareNumbers(n, op, litNum)
			}
		}
		return compareStrings(v, op, literal)
	}
}

func parseNumber(s string) (float64, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, false
	}
	n, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(n) {
		return 0, false
	}
	return n, true
}

// compareNumbers compares two numbers
func compareNumbers(left float64, op Op, right float64) bool {
	const epsilon = 1e-9
	// relative epsilon for large magnitudes, absolute for small ones
	threshold := epsilon * max(1.0, math.Abs(left), math.Abs(right))
	equal := math.Abs(left-right) < threshold

	switch op {
	case OpEqual:
		return equal
	case OpNotEqual:
		return !equal
	case OpLess:
		return left < right && !equal
	case OpGreater:
		return left > right && !equal
	case OpLessEqual:
		return left < right || equal
	case OpGreaterEqual:
		return left > right || equal
	default:
		return false
	}
}

// compareStrings compares two strings (case-sensitive)
func compareStrings(left string, op Op, right string) bool {
	switch op {
	case OpEqual:
		return left == right
	case OpNotEqual:
		return left != right
	case OpLess:
		return left < right
	case OpGreater:
		return left > right
	case OpLessEqual:
		return left <= right
	case OpGreaterEqual:
		return left >= right
	default:
		return false
	}
}

// matchLike is a backtracking wildcard matcher. star remembers the last %
// seen in the pattern and mark the input position it was tried from.
func matchLike(s, p []rune) bool {
	si, pi := 0, 0
	star, mark := -1, 0
	for si < len(s) {
		switch {
		case pi < len(p) && p[pi] == '%':
			star = pi
			mark = si
			pi++
		case pi < len(p) && (p[pi] == '_' || p[pi] == s[si]):
			si++
			pi++
		case star >= 0:
			pi = star + 1
			mark++
			si = mark
		default:
			return false
		}
	}
	for pi < len(p) && p[pi] == '%' {
		pi++
	}
	return pi == len(p)
}
