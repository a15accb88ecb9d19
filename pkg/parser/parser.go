// Package parser builds parse trees for the Oracle SQL expression grammar.
//
// # Usage
//
//	res, err := parser.Parse("a.b = 1 AND c > 2", tree.Expr)
//	if err != nil {
//	    // *lexer.LexError or *parser.ParseError
//	}
//	fmt.Println(tree.Format(res.Root))
//
// Any rule can be the start rule. The start rule must consume the whole
// input; a trailing semicolon is allowed.
//
// # Grammar Overview
//
// The parser is recursive descent with bounded lookahead over the lexed
// token slice. Alternatives are tried in a fixed order and the first one
// that applies is taken; nothing is re-parsed. The expression layers,
// loosest first:
//
//	expr           → expr OR expr | expr (AND | &&) expr | (NOT | !) expr | booleanPrimary
//	booleanPrimary → booleanPrimary IS NOT? (TRUE | FALSE | UNKNOWN | NULL)
//	               | booleanPrimary comparisonOperator predicate
//	               | (PRIOR | CONNECT_BY_ROOT) predicate | predicate
//	predicate      → bitExpr NOT? (IN | BETWEEN | LIKE) ... | bitExpr
//	bitExpr        → bitExpr op bitExpr | simpleExpr
//	simpleExpr     → literals | functionCall | columnName | ( exprs ) | ...
//
// Grammar returns every production; see the parser_*.go files for the
// rules of each layer.
package parser

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/leapstack-labs/oraparse/pkg/dialect"
	"github.com/leapstack-labs/oraparse/pkg/dialects/oracle"
	"github.com/leapstack-labs/oraparse/pkg/lexer"
	"github.com/leapstack-labs/oraparse/pkg/token"
	"github.com/leapstack-labs/oraparse/pkg/tree"
)

// maxDepth bounds expression nesting.
const maxDepth = 400

// Parser holds the state of one parse. It is not safe for concurrent use;
// every call to Parse or ParseTokens creates its own.
type Parser struct {
	tokens []token.Token
	pos    int
	depth  int

	dialect   *dialect.Dialect
	logger    *slog.Logger
	recovery  bool
	maxErrors int
	errors    []*ParseError
}

// Option configures a parse.
type Option func(*Parser)

// WithDialect sets the dialect tables. The default is Oracle.
func WithDialect(d *dialect.Dialect) Option {
	return func(p *Parser) {
		if d != nil {
			p.dialect = d
		}
	}
}

// WithRecovery turns on error recovery inside comma-separated lists. A
// broken list item becomes an ErrorNode and parsing continues, up to
// maxErrors errors.
func WithRecovery(maxErrors int) Option {
	return func(p *Parser) {
		if maxErrors < 1 {
			maxErrors = 1
		}
		p.recovery = true
		p.maxErrors = maxErrors
	}
}

// WithLogger sets the logger for debug tracing.
func WithLogger(l *slog.Logger) Option {
	return func(p *Parser) {
		if l != nil {
			p.logger = l
		}
	}
}

// Result is the outcome of a parse.
type Result struct {
	Root   *tree.Node
	Stream *lexer.Stream
	Errors []*ParseError
}

// Parse tokenizes sql and parses it with the given start rule. A lexical
// failure is returned as *lexer.LexError with a nil Result.
func Parse(sql string, start tree.Kind, opts ...Option) (*Result, error) {
	s, err := lexer.Tokenize(sql)
	if err != nil {
		return nil, err
	}
	return ParseTokens(s, start, opts...)
}

// ParseTokens parses an already lexed stream. The Result is returned even
// on failure: Errors lists every syntax error, and with recovery enabled
// Root holds the partial tree. The error is the single *ParseError, or all
// of them joined.
func ParseTokens(s *lexer.Stream, start tree.Kind, opts ...Option) (*Result, error) {
	rule, ok := rules[start]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownRule, start)
	}

	p := newParser(s.Tokens, opts...)
	p.logger.Debug("parse start", "rule", start.String(), "tokens", len(p.tokens)-1)

	root := p.run(rule)
	res := &Result{Root: root, Stream: s, Errors: p.errors}

	p.logger.Debug("parse done", "rule", start.String(), "errors", len(p.errors))

	switch len(p.errors) {
	case 0:
		return res, nil
	case 1:
		return res, p.errors[0]
	default:
		errs := make([]error, len(p.errors))
		for i, e := range p.errors {
			errs[i] = e
		}
		return res, errors.Join(errs...)
	}
}

func newParser(toks []token.Token, opts ...Option) *Parser {
	if n := len(toks); n == 0 || toks[n-1].Type != token.EOF {
		var end token.Position
		if n > 0 {
			end = toks[n-1].Span.End
		} else {
			end = token.Position{Line: 1, Column: 1}
		}
		toks = append(toks[:n:n], token.Token{Type: token.EOF, Span: token.Span{Start: end, End: end}})
	}

	p := &Parser{
		tokens:  toks,
		dialect: oracle.Oracle,
		logger:  slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// run applies the start rule and requires the input to end after it.
func (p *Parser) run(rule ruleFunc) (root *tree.Node) {
	defer func() {
		if r := recover(); r != nil {
			if _, ok := r.(bailout); !ok {
				panic(r)
			}
		}
	}()

	root = rule(p)
	root.Add(p.accept(token.SEMICOLON))
	if p.check(token.EOF) {
		return root
	}

	err := p.unexpected("end of input")
	if p.recovery && len(p.errors) < p.maxErrors {
		p.errors = append(p.errors, err)
		p.logger.Debug("skipping trailing tokens", "pos", err.Pos.String())
		rest := &tree.Node{Kind: tree.ErrorNode}
		for !p.check(token.EOF) {
			rest.Add(p.next())
		}
		root.Add(rest)
		return root
	}
	p.fail(err)
	return nil
}

// bailout unwinds the parse after an unrecoverable error.
type bailout struct{}

// ---------- Token Helpers ----------

// cur returns the current token.
func (p *Parser) cur() token.Token {
	return p.tokens[p.pos]
}

// peek returns the token n positions ahead, or EOF.
func (p *Parser) peek(n int) token.Token {
	if i := p.pos + n; i < len(p.tokens) {
		return p.tokens[i]
	}
	return p.tokens[len(p.tokens)-1]
}

// check returns true if the current token has one of the given types.
func (p *Parser) check(types ...token.TokenType) bool {
	return p.cur().Is(types...)
}

// checkPeek returns true if the token n ahead has one of the given types.
func (p *Parser) checkPeek(n int, types ...token.TokenType) bool {
	return p.peek(n).Is(types...)
}

// checkWord returns true if the current token is the bare word w. Used
// for words the keyword table does not list, such as BYTE or RANGE.
func (p *Parser) checkWord(w string) bool {
	return isWord(p.cur(), w)
}

func isWord(tok token.Token, w string) bool {
	return (tok.Type == token.IDENT || tok.Type.IsUnreserved()) && equalFold(tok.Text, w)
}

func equalFold(a, b string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := 0; i < len(a); i++ {
		ca, cb := a[i], b[i]
		if ca >= 'a' && ca <= 'z' {
			ca -= 'a' - 'A'
		}
		if cb >= 'a' && cb <= 'z' {
			cb -= 'a' - 'A'
		}
		if ca != cb {
			return false
		}
	}
	return true
}

// next consumes the current token and returns it as a terminal.
func (p *Parser) next() *tree.Node {
	tok := p.tokens[p.pos]
	if tok.Type != token.EOF {
		p.pos++
	}
	return tree.NewTerminal(tok)
}

// accept consumes the current token if it matches, otherwise returns nil.
func (p *Parser) accept(types ...token.TokenType) *tree.Node {
	if p.check(types...) {
		return p.next()
	}
	return nil
}

// acceptWord consumes the bare word w if present.
func (p *Parser) acceptWord(w string) *tree.Node {
	if p.checkWord(w) {
		return p.next()
	}
	return nil
}

// expect consumes the current token if it matches, otherwise fails.
func (p *Parser) expect(types ...token.TokenType) *tree.Node {
	if p.check(types...) {
		return p.next()
	}
	expected := make([]string, len(types))
	for i, t := range types {
		expected[i] = quoteType(t)
	}
	p.fail(p.unexpected(expected...))
	return nil
}

// expectWord consumes the bare word w, otherwise fails.
func (p *Parser) expectWord(w string) *tree.Node {
	if n := p.acceptWord(w); n != nil {
		return n
	}
	p.fail(p.unexpected(`"` + w + `"`))
	return nil
}

// ---------- Errors and Recovery ----------

// unexpected builds an error at the current token.
func (p *Parser) unexpected(expected ...string) *ParseError {
	tok := p.cur()
	return &ParseError{Pos: tok.Span.Start, Expected: expected, Found: tok}
}

// fail records err and unwinds to the nearest recovery point.
func (p *Parser) fail(err *ParseError) {
	p.errors = append(p.errors, err)
	p.logger.Debug("syntax error", "pos", err.Pos.String(), "error", err.Error())
	panic(bailout{})
}

// enter guards against runaway nesting.
func (p *Parser) enter() {
	p.depth++
	if p.depth > maxDepth {
		err := p.unexpected()
		err.Message = "expression nested too deeply"
		p.fail(err)
	}
}

func (p *Parser) leave() {
	p.depth--
}

// recoverable runs parse. With recovery enabled a failure inside it is
// turned into an ErrorNode covering the tokens up to the next comma or
// closing parenthesis at the same depth, or one of stop.
func (p *Parser) recoverable(parse func() *tree.Node, stop ...token.TokenType) (n *tree.Node) {
	if !p.recovery {
		return parse()
	}

	start, depth := p.pos, p.depth
	defer func() {
		r := recover()
		if r == nil {
			return
		}
		if _, ok := r.(bailout); !ok || len(p.errors) >= p.maxErrors {
			panic(r)
		}
		p.depth = depth
		n = p.skipItem(start, stop)
		p.logger.Debug("recovered", "skipped", len(n.Children), "errors", len(p.errors))
	}()
	return parse()
}

func (p *Parser) skipItem(start int, stop []token.TokenType) *tree.Node {
	p.pos = start
	n := &tree.Node{Kind: tree.ErrorNode}
	depth := 0
	for !p.check(token.EOF) {
		tok := p.cur()
		if depth == 0 && (tok.Is(token.COMMA, token.RPAREN) || tok.Is(stop...)) {
			break
		}
		switch tok.Type {
		case token.LPAREN:
			depth++
		case token.RPAREN:
			depth--
		}
		n.Add(p.next())
	}
	if len(n.Children) == 0 {
		n.Span = token.Span{Start: p.cur().Span.Start, End: p.cur().Span.Start}
	}
	return n
}

// listInto parses item (COMMA item)* into n.
func (p *Parser) listInto(n *tree.Node, item func() *tree.Node, stop ...token.TokenType) *tree.Node {
	n.Add(p.recoverable(item, stop...))
	for p.check(token.COMMA) {
		n.Add(p.next())
		n.Add(p.recoverable(item, stop...))
	}
	return n
}
