package query

import (
	"fmt"
	"strings"

	"github.com/vegasq/tabq/cond"
	"github.com/vegasq/tabq/table"
)

// Resolver turns a source name used in query text into a table.
type Resolver interface {
	Resolve(name string) (*table.Table, error)
}

// ResolverFunc adapts a function to the Resolver interface.
type ResolverFunc func(name string) (*table.Table, error)

// Resolve calls f(name).
func (f ResolverFunc) Resolve(name string) (*table.Table, error) {
	return f(name)
}

// comparisonOps maps comparison tokens onto predicate operators
var comparisonOps = map[TokenType]cond.Op{
	TokenEqual:        cond.OpEqual,
	TokenNotEqual:     cond.OpNotEqual,
	TokenLess:         cond.OpLess,
	TokenGreater:      cond.OpGreater,
	TokenLessEqual:    cond.OpLessEqual,
	TokenGreaterEqual: cond.OpGreaterEqual,
}

// Parser parses query text into a query tree
type Parser struct {
	tokens       []Token
	pos          int
	depthCounter *ExpressionDepthCounter
	resolver     Resolver
}

// NewParser creates a new parser
func NewParser(tokens []Token, r Resolver) *Parser {
	return &Parser{
		tokens:       tokens,
		pos:          0,
		depthCounter: NewExpressionDepthCounter(),
		resolver:     r,
	}
}

// current returns the current token
func (p *Parser) current() Token {
	if p.pos >= len(p.tokens) {
		return Token{Type: TokenEOF, Value: ""}
	}
	return p.tokens[p.pos]
}

// peek returns the next token without advancing
func (p *Parser) peek() Token {
	if p.pos+1 >= len(p.tokens) {
		return Token{Type: TokenEOF, Value: ""}
	}
	return p.tokens[p.pos+1]
}

// advance moves to the next token
func (p *Parser) advance() {
	p.pos++
}

// expect checks if current token matches expected type and advances
func (p *Parser) expect(tokType TokenType) error {
	if p.current().Type != tokType {
		return p.errorf("expected %v, got %s", tokType, describe(p.current()))
	}
	p.advance()
	return nil
}

func (p *Parser) errorf(format string, args ...interface{}) error {
	return fmt.Errorf("%w at token %d: %s", ErrSyntax, p.pos+1, fmt.Sprintf(format, args...))
}

func describe(tok Token) string {
	switch tok.Type {
	case TokenIdent, TokenNumber:
		return fmt.Sprintf("%s %q", tok.Type, tok.Value)
	case TokenString:
		return fmt.Sprintf("string %q", tok.Value)
	case TokenError:
		return fmt.Sprintf("invalid input %q", tok.Value)
	default:
		return tok.Type.String()
	}
}

// Parse parses query text, resolving sources with r.
func Parse(input string, r Resolver) (Query, error) {
	// Validate query length
	if err := ValidateQuery(input); err != nil {
		return nil, err
	}

	tokens := Tokenize(input)

	// Validate token count
	if err := ValidateTokens(tokens); err != nil {
		return nil, err
	}

	parser := NewParser(tokens, r)
	q, err := parser.parseQuery()
	if err != nil {
		return nil, err
	}
	if parser.current().Type != TokenEOF {
		return nil, parser.errorf("unexpected %s after query", describe(parser.current()))
	}
	return q, nil
}

// parseQuery parses: call | source
func (p *Parser) parseQuery() (Query, error) {
	if err := p.depthCounter.Enter(); err != nil {
		return nil, err
	}
	defer p.depthCounter.Exit()

	tok := p.current()
	switch tok.Type {
	case TokenIdent:
		if p.peek().Type == TokenLeftParen {
			return p.parseCall(tok.Value)
		}
		p.advance()
		return p.resolve(tok.Value)
	case TokenString:
		p.advance()
		return p.resolve(tok.Value)
	default:
		return nil, p.errorf("expected query, got %s", describe(tok))
	}
}

// parseCall parses an operation applied to its arguments
func (p *Parser) parseCall(name string) (Query, error) {
	op := strings.ToLower(name)
	p.advance()
	if err := p.expect(TokenLeftParen); err != nil {
		return nil, err
	}

	var (
		q   Query
		err error
	)
	switch op {
	case "select":
		q, err = p.parseSelectArgs()
	case "filter":
		q, err = p.parseFilterArgs()
	case "newcol":
		q, err = p.parseNewColArgs()
	case "merge":
		q, err = p.parseMergeArgs()
	default:
		return nil, p.errorf("unknown operation %q (want select, filter, newcol or merge)", name)
	}
	if err != nil {
		return nil, err
	}

	if err := p.expect(TokenRightParen); err != nil {
		return nil, err
	}
	return q, nil
}

// parseSelectArgs parses: [name, ...], query
func (p *Parser) parseSelectArgs() (Query, error) {
	if err := p.expect(TokenLeftBracket); err != nil {
		return nil, err
	}

	columns := []string{}
	for p.current().Type != TokenRightBracket {
		if len(columns) > 0 {
			if err := p.expect(TokenComma); err != nil {
				return nil, err
			}
		}
		col, err := p.parseName()
		if err != nil {
			return nil, err
		}
		columns = append(columns, col)
	}
	p.advance() // ]

	if err := p.expect(TokenComma); err != nil {
		return nil, err
	}
	target, err := p.parseQuery()
	if err != nil {
		return nil, err
	}
	return NewSelect(columns, target), nil
}

// parseFilterArgs parses: cond, query
func (p *Parser) parseFilterArgs() (Query, error) {
	c, err := p.parseOr()
	if err != nil {
		return nil, err
	}
	if err := p.expect(TokenComma); err != nil {
		return nil, err
	}
	target, err := p.parseQuery()
	if err != nil {
		return nil, err
	}
	return NewFilter(c, target), nil
}

// parseNewColArgs parses: name, literal, query
func (p *Parser) parseNewColArgs() (Query, error) {
	name, err := p.parseName()
	if err != nil {
		return nil, err
	}
	if err := p.expect(TokenComma); err != nil {
		return nil, err
	}
	value, err := p.parseLiteral()
	if err != nil {
		return nil, err
	}
	if err := p.expect(TokenComma); err != nil {
		return nil, err
	}
	target, err := p.parseQuery()
	if err != nil {
		return nil, err
	}
	return NewNewCol(name, value, target), nil
}

// parseMergeArgs parses: key, query, query
func (p *Parser) parseMergeArgs() (Query, error) {
	key, err := p.parseName()
	if err != nil {
		return nil, err
	}
	if err := p.expect(TokenComma); err != nil {
		return nil, err
	}
	left, err := p.parseQuery()
	if err != nil {
		return nil, err
	}
	if err := p.expect(TokenComma); err != nil {
		return nil, err
	}
	right, err := p.parseQuery()
	if err != nil {
		return nil, err
	}
	return NewMerge(key, left, right), nil
}

// parseOr parses OR conditions (lowest precedence)
func (p *Parser) parseOr() (cond.Cond, error) {
	if err := p.depthCounter.Enter(); err != nil {
		return nil, err
	}
	defer p.depthCounter.Exit()

	left, err := p.parseAnd()
	if err != nil {
		return nil, err
	}

	for p.current().Type == TokenOr {
		p.advance()
		right, err := p.parseAnd()
		if err != nil {
			return nil, err
		}
		left = cond.Or(left, right)
	}

	return left, nil
}

// parseAnd parses AND conditions (higher precedence than OR)
func (p *Parser) parseAnd() (cond.Cond, error) {
	left, err := p.parseUnary()
	if err != nil {
		return nil, err
	}

	for p.current().Type == TokenAnd {
		p.advance()
		right, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		left = cond.And(left, right)
	}

	return left, nil
}

// parseUnary parses a parenthesised condition or a single field test
func (p *Parser) parseUnary() (cond.Cond, error) {
	if p.current().Type == TokenLeftParen {
		p.advance()
		c, err := p.parseOr()
		if err != nil {
			return nil, err
		}
		if err := p.expect(TokenRightParen); err != nil {
			return nil, err
		}
		return c, nil
	}

	column, err := p.parseName()
	if err != nil {
		return nil, err
	}

	switch tok := p.current(); tok.Type {
	case TokenNot:
		p.advance()
		if p.current().Type != TokenLike {
			return nil, p.errorf("expected LIKE after NOT, got %s", describe(p.current()))
		}
		p.advance()
		pattern, err := p.parsePattern()
		if err != nil {
			return nil, err
		}
		return cond.NewField(column, cond.Not(cond.Like(pattern))), nil
	case TokenLike:
		p.advance()
		pattern, err := p.parsePattern()
		if err != nil {
			return nil, err
		}
		return cond.NewField(column, cond.Like(pattern)), nil
	default:
		op, ok := comparisonOps[tok.Type]
		if !ok {
			return nil, p.errorf("expected comparison operator after %q, got %s", column, describe(tok))
		}
		p.advance()
		literal, err := p.parseLiteral()
		if err != nil {
			return nil, err
		}
		return cond.NewField(column, cond.Compare(op, literal)), nil
	}
}

// parseName parses a column name: identifier or quoted string
func (p *Parser) parseName() (string, error) {
	tok := p.current()
	if tok.Type != TokenIdent && tok.Type != TokenString {
		return "", p.errorf("expected column name, got %s", describe(tok))
	}
	if err := ValidateColumnName(tok.Value); err != nil {
		return "", err
	}
	p.advance()
	return tok.Value, nil
}

// parseLiteral parses a string or number literal, returned verbatim
func (p *Parser) parseLiteral() (string, error) {
	tok := p.current()
	if tok.Type != TokenString && tok.Type != TokenNumber {
		return "", p.errorf("expected value (string or number), got %s", describe(tok))
	}
	p.advance()
	return tok.Value, nil
}

func (p *Parser) parsePattern() (string, error) {
	tok := p.current()
	if tok.Type != TokenString {
		return "", p.errorf("expected LIKE pattern string, got %s", describe(tok))
	}
	p.advance()
	return tok.Value, nil
}

// resolve turns a source name into a Value node
func (p *Parser) resolve(name string) (Query, error) {
	if err := ValidateSourceName(name); err != nil {
		return nil, err
	}
	if p.resolver == nil {
		return nil, fmt.Errorf("source %q: no resolver configured", name)
	}
	t, err := p.resolver.Resolve(name)
	if err != nil {
		return nil, fmt.Errorf("source %q: %w", name, err)
	}
	return &Value{Table: t, Name: quoteName(name)}, nil
}
