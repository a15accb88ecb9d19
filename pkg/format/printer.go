// Package format reprints parse trees as normalized SQL text.
//
// Keywords are upper-cased, tokens are separated by single spaces, and the
// clauses of every query block start on their own line. Subqueries are
// indented. Comments and hints from the source are carried over in order.
package format

import (
	"bytes"
	"strings"

	"github.com/leapstack-labs/oraparse/pkg/token"
	"github.com/leapstack-labs/oraparse/pkg/tree"
)

const indentSize = 2

// Printer handles SQL formatting with proper indentation and style.
type Printer struct {
	tree.BaseListener

	output      *bytes.Buffer
	depth       int
	atLineStart bool
	prev        *token.Token
	afterSetOp  bool
	parents     []tree.Kind
	comments    []token.Trivia
}

func newPrinter(comments []token.Trivia) *Printer {
	return &Printer{
		output:      &bytes.Buffer{},
		atLineStart: true,
		comments:    comments,
	}
}

// String returns the formatted output.
func (p *Printer) String() string {
	return strings.TrimRight(p.output.String(), "\n") + "\n"
}

func (p *Printer) write(s string) {
	if p.atLineStart && len(s) > 0 && s[0] != '\n' {
		p.writeIndent()
	}
	p.output.WriteString(s)
	p.atLineStart = false
}

func (p *Printer) writeln() {
	if p.atLineStart {
		return
	}
	p.output.WriteByte('\n')
	p.atLineStart = true
}

func (p *Printer) writeIndent() {
	for i := 0; i < p.depth*indentSize; i++ {
		p.output.WriteByte(' ')
	}
	p.atLineStart = false
}

func (p *Printer) indent() {
	p.depth++
}

func (p *Printer) dedent() {
	if p.depth > 0 {
		p.depth--
	}
}

func (p *Printer) space() {
	if !p.atLineStart {
		p.output.WriteByte(' ')
	}
}

func (p *Printer) parent() tree.Kind {
	if len(p.parents) == 0 {
		return tree.Invalid
	}
	return p.parents[len(p.parents)-1]
}

// flushComments prints the comments that start before offset.
func (p *Printer) flushComments(offset int) {
	for len(p.comments) > 0 && p.comments[0].Span.Start.Offset < offset {
		c := p.comments[0]
		p.comments = p.comments[1:]
		if p.prev != nil {
			p.space()
		}
		p.write(c.Text)
		if c.Kind == token.LineComment {
			p.writeln()
			p.prev = nil
			continue
		}
		p.prev = &token.Token{Type: token.ILLEGAL, Text: c.Text}
	}
}

// EnterRule starts a new line for query clauses and for the query that
// follows a set operator.
func (p *Printer) EnterRule(n *tree.Node) {
	if p.afterSetOp || (p.parent() == tree.Select && breaksLine(n.Kind)) {
		p.afterSetOp = false
		p.writeln()
	}
	p.parents = append(p.parents, n.Kind)
}

// ExitRule pops the parent stack.
func (p *Printer) ExitRule(*tree.Node) {
	p.parents = p.parents[:len(p.parents)-1]
}

// VisitTerminal prints one token.
func (p *Printer) VisitTerminal(n *tree.Node) {
	tok := *n.Token
	p.flushComments(tok.Span.Start.Offset)

	switch parent := p.parent(); {
	case parent == tree.Select && isSetOperator(tok.Type):
		p.writeln()
		p.emit(tok)
		p.afterSetOp = true
	case parent == tree.Subquery && tok.Type == token.LPAREN:
		p.emit(tok)
		p.indent()
		p.writeln()
	case parent == tree.Subquery && tok.Type == token.RPAREN:
		p.dedent()
		p.writeln()
		p.emit(tok)
	default:
		p.emit(tok)
	}
}

// VisitErrorNode prints the skipped tokens unchanged.
func (p *Printer) VisitErrorNode(n *tree.Node) {
	for _, tok := range n.Tokens() {
		p.flushComments(tok.Span.Start.Offset)
		p.emit(tok)
	}
}

func (p *Printer) emit(tok token.Token) {
	if p.prev != nil && spaceBetween(*p.prev, tok) {
		p.space()
	}
	p.write(spell(tok))
	p.prev = &tok
}

// breaksLine reports whether a clause of a query block starts a new line.
func breaksLine(k tree.Kind) bool {
	switch k {
	case tree.FromClause, tree.WhereClause, tree.HierarchicalQueryClause,
		tree.GroupByClause, tree.HavingClause, tree.OrderByClause:
		return true
	}
	return false
}

func isSetOperator(tt token.TokenType) bool {
	return tt == token.UNION || tt == token.INTERSECT || tt == token.MINUS_KW
}

// spell returns the printed form of tok: keywords upper-cased, everything
// else as written.
func spell(tok token.Token) string {
	if tok.Type.IsKeyword() {
		return strings.ToUpper(tok.Text)
	}
	return tok.Text
}

// spaceBetween decides whether a space separates prev and next.
func spaceBetween(prev, next token.Token) bool {
	switch next.Type {
	case token.COMMA, token.RPAREN, token.DOT, token.RBRACKET, token.SEMICOLON:
		return false
	case token.LPAREN:
		return !isName(prev)
	}
	switch prev.Type {
	case token.LPAREN, token.DOT, token.LBRACKET:
		return false
	}
	return true
}

// isName reports whether tok can be a function or column name directly
// followed by an argument list or a (+) marker.
func isName(tok token.Token) bool {
	switch tok.Type {
	case token.IDENT, token.QUOTED_IDENT:
		return true
	}
	return tok.Type.IsKeyword() && !tok.Type.IsReserved()
}
