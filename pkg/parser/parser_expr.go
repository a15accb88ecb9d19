package parser

import (
	"github.com/leapstack-labs/oraparse/pkg/dialect"
	"github.com/leapstack-labs/oraparse/pkg/token"
	"github.com/leapstack-labs/oraparse/pkg/tree"
)

// ---------- Expression Layers ----------

// parseExpr parses the loosest expression layer. The result is always an
// Expr node; a lone boolean primary is wrapped.
func (p *Parser) parseExpr() *tree.Node {
	p.enter()
	defer p.leave()

	n := p.parseOr()
	if n.Kind != tree.Expr {
		n = tree.NewRule(tree.Expr, n)
	}
	return n
}

// parseOr parses expr ((OR | XOR) expr)*.
func (p *Parser) parseOr() *tree.Node {
	left := p.parseAnd()
	for p.check(token.OR, token.XOR) {
		op := tree.NewRule(tree.LogicalOperator, p.next())
		left = tree.NewRule(tree.Expr, left, op, p.parseAnd())
	}
	return left
}

// parseAnd parses expr ((AND | &&) expr)*.
func (p *Parser) parseAnd() *tree.Node {
	left := p.parseNot()
	for p.check(token.AND, token.DAMP) {
		op := tree.NewRule(tree.LogicalOperator, p.next())
		left = tree.NewRule(tree.Expr, left, op, p.parseNot())
	}
	return left
}

// parseNot parses (NOT | !) expr | booleanPrimary.
func (p *Parser) parseNot() *tree.Node {
	if p.check(token.NOT, token.BANG) {
		p.enter()
		defer p.leave()
		op := tree.NewRule(tree.NotOperator, p.next())
		return tree.NewRule(tree.Expr, op, p.parseNot())
	}
	return p.parseBooleanPrimary()
}

// parseBooleanPrimary parses comparisons and IS tests, left-associative.
func (p *Parser) parseBooleanPrimary() *tree.Node {
	var n *tree.Node
	if p.check(token.PRIOR, token.CONNECT_BY_ROOT) && canStartExpr(p.peek(1)) {
		op := p.next()
		n = tree.NewRule(tree.BooleanPrimary, op, p.parsePredicate())
	} else {
		n = tree.NewRule(tree.BooleanPrimary, p.parsePredicate())
	}

	for {
		switch {
		case p.check(token.IS):
			n = tree.NewRule(tree.BooleanPrimary, n, p.next())
			n.Add(p.accept(token.NOT))
			n.Add(p.expect(token.TRUE, token.FALSE, token.UNKNOWN, token.NULL))
		case p.check(token.SAFE_EQ):
			op := tree.NewRule(tree.ComparisonOperator, p.next())
			n = tree.NewRule(tree.BooleanPrimary, n, op, p.parsePredicate())
		case p.dialect.IsComparison(p.cur().Type):
			op := tree.NewRule(tree.ComparisonOperator, p.next())
			n = tree.NewRule(tree.BooleanPrimary, n, op)
			if q := p.accept(token.ALL, token.ANY, token.SOME); q != nil {
				n.Add(q)
				if p.atSubquery() {
					n.Add(p.parseSubquery())
				} else {
					n.Add(p.parseExprList())
				}
				continue
			}
			n.Add(p.parsePredicate())
		default:
			return n
		}
	}
}

func (p *Parser) parseComparisonOperator() *tree.Node {
	if p.check(token.SAFE_EQ) || p.dialect.IsComparison(p.cur().Type) {
		return tree.NewRule(tree.ComparisonOperator, p.next())
	}
	p.fail(p.unexpected("comparison operator"))
	return nil
}

func (p *Parser) parseLogicalOperator() *tree.Node {
	return tree.NewRule(tree.LogicalOperator, p.expect(token.OR, token.XOR, token.AND, token.DAMP))
}

func (p *Parser) parseNotOperator() *tree.Node {
	return tree.NewRule(tree.NotOperator, p.expect(token.NOT, token.BANG))
}

// parsePredicate parses bitExpr NOT? (IN | BETWEEN | LIKE) ... | bitExpr.
func (p *Parser) parsePredicate() *tree.Node {
	n := tree.NewRule(tree.Predicate, p.parseBitExpr())
	if p.check(token.NOT) && p.checkPeek(1, token.IN, token.BETWEEN, token.LIKE) {
		n.Add(p.next())
	}

	switch p.cur().Type {
	case token.IN:
		n.Add(p.next())
		if p.atSubquery() {
			n.Add(p.parseSubquery())
			break
		}
		n.Add(p.expect(token.LPAREN))
		p.listInto(n, p.parseExpr)
		n.Add(p.expect(token.RPAREN))
	case token.BETWEEN:
		n.Add(p.next())
		n.Add(p.parseBitExpr())
		n.Add(p.expect(token.AND))
		n.Add(p.parsePredicate())
	case token.LIKE:
		n.Add(p.next())
		n.Add(p.parseSimpleExpr())
		if esc := p.accept(token.ESCAPE); esc != nil {
			n.Add(esc)
			n.Add(p.parseSimpleExpr())
		}
	}
	return n
}

// parseBitExpr parses binary arithmetic with the dialect's precedence
// table. Power is right-associative, everything else left.
func (p *Parser) parseBitExpr() *tree.Node {
	return p.parseBitExprPrec(dialect.PrecedenceBitOr)
}

func (p *Parser) parseBitExprPrec(minPrec int) *tree.Node {
	left := tree.NewRule(tree.BitExpr, p.parseSimpleExpr())
	for {
		prec := p.dialect.Precedence(p.cur().Type)
		if prec == dialect.PrecedenceNone || prec < minPrec {
			return left
		}
		op := p.next()
		next := prec + 1
		if prec == dialect.PrecedencePower {
			next = prec
		}
		p.enter()
		right := p.parseBitExprPrec(next)
		p.leave()
		left = tree.NewRule(tree.BitExpr, left, op, right)
	}
}

// ---------- Expression Lists ----------

// parseExprs parses expr (, expr)*.
func (p *Parser) parseExprs() *tree.Node {
	return p.listInto(tree.NewRule(tree.Exprs), p.parseExpr)
}

// parseExprList parses ( exprs ).
func (p *Parser) parseExprList() *tree.Node {
	n := tree.NewRule(tree.ExprList, p.expect(token.LPAREN))
	n.Add(p.parseExprs())
	n.Add(p.expect(token.RPAREN))
	return n
}

// parseSimpleExprs parses simpleExpr (, simpleExpr)*.
func (p *Parser) parseSimpleExprs() *tree.Node {
	return p.listInto(tree.NewRule(tree.SimpleExprs), p.parseSimpleExpr)
}

// canStartExpr reports whether tok can begin an operand. It decides
// whether words like PRIOR and BINARY act as operators or as names.
func canStartExpr(tok token.Token) bool {
	switch tok.Type {
	case token.EOF:
		return false
	case token.LPAREN, token.LBRACE, token.PLUS, token.MINUS, token.TILDE, token.BANG,
		token.QUESTION, token.NULL, token.CASE, token.EXISTS, token.NOT, token.ROW,
		token.LEVEL, token.ROWNUM:
		return true
	}
	return tok.Type.IsLiteral() || tok.Type.IsUnreserved()
}
