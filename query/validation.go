package query

import (
	"errors"
	"fmt"
)

// Limits on query text. They bound the work Parse does for a single call
// and the recursion depth of Eval on the tree it returns.
const (
	// MaxQueryLength bounds the query text in bytes (1 MiB)
	MaxQueryLength = 1024 * 1024

	// MaxTokens bounds the token count of one query
	MaxTokens = 1000

	// MaxExpressionDepth bounds nested calls and parenthesised conditions
	MaxExpressionDepth = 100

	// MaxColumnNameLength bounds a column name used in select, filter,
	// newcol or merge
	MaxColumnNameLength = 256

	// MaxSourceNameLength bounds a source name; sources may be file paths
	MaxSourceNameLength = 4096
)

var (
	ErrQueryTooLong      = errors.New("query too long")
	ErrTooManyTokens     = errors.New("too many tokens in query")
	ErrExpressionTooDeep = errors.New("query nested too deep")
	ErrColumnNameTooLong = errors.New("column name too long")
	ErrSourceNameTooLong = errors.New("source name too long")
	ErrEmptySourceName   = errors.New("source name cannot be empty")

	// ErrSyntax is wrapped by every parse error caused by malformed input
	ErrSyntax = errors.New("syntax error")
)

// ValidateQuery rejects query text longer than MaxQueryLength.
func ValidateQuery(query string) error {
	if len(query) > MaxQueryLength {
		return fmt.Errorf("%w: %d bytes (max %d)", ErrQueryTooLong, len(query), MaxQueryLength)
	}
	return nil
}

// ValidateSourceName checks a name before it is handed to a Resolver.
// The CLI applies it to -t and config source names too.
func ValidateSourceName(name string) error {
	if name == "" {
		return ErrEmptySourceName
	}
	if len(name) > MaxSourceNameLength {
		return fmt.Errorf("%w: %d chars (max %d)", ErrSourceNameTooLong, len(name), MaxSourceNameLength)
	}
	return nil
}

// ValidateColumnName rejects column names longer than MaxColumnNameLength.
func ValidateColumnName(name string) error {
	if len(name) > MaxColumnNameLength {
		return fmt.Errorf("%w: %d chars (max %d)", ErrColumnNameTooLong, len(name), MaxColumnNameLength)
	}
	return nil
}

// ValidateTokens rejects token streams longer than MaxTokens.
func ValidateTokens(tokens []Token) error {
	if len(tokens) > MaxTokens {
		return fmt.Errorf("%w: %d tokens (max %d)", ErrTooManyTokens, len(tokens), MaxTokens)
	}
	return nil
}

// ExpressionDepthCounter tracks how deeply the parser is nested in query
// calls and conditions.
type ExpressionDepthCounter struct {
	depth    int
	maxDepth int
}

func NewExpressionDepthCounter() *ExpressionDepthCounter {
	return &ExpressionDepthCounter{maxDepth: MaxExpressionDepth}
}

// Enter records one more level and fails once the limit is passed.
func (c *ExpressionDepthCounter) Enter() error {
	c.depth++
	if c.depth > c.maxDepth {
		return fmt.Errorf("%w: %d (max %d)", ErrExpressionTooDeep, c.depth, c.maxDepth)
	}
	return nil
}

// Exit leaves the current level.
func (c *ExpressionDepthCounter) Exit() {
	c.depth--
}
