package parser

import (
	"github.com/leapstack-labs/oraparse/pkg/token"
	"github.com/leapstack-labs/oraparse/pkg/tree"
)

// parseSimpleExpr parses a primary expression. Alternatives are tried in
// a fixed order; literals win over unary minus so "-1" stays a number.
func (p *Parser) parseSimpleExpr() *tree.Node {
	p.enter()
	defer p.leave()

	n := tree.NewRule(tree.SimpleExpr)
	tok := p.cur()

	switch {
	case p.atLiteral():
		n.Add(p.parseLiterals())

	case tok.Is(token.PLUS, token.MINUS, token.TILDE, token.BANG),
		tok.Type == token.BINARY && canStartExpr(p.peek(1)) && !p.checkPeek(1, token.LPAREN):
		n.Add(p.next())
		n.Add(p.parseSimpleExpr())

	case tok.Is(token.QUESTION, token.BIND_VAR):
		n.Add(p.parseParameterMarker())

	case tok.Type == token.CASE:
		n.Add(p.parseCaseExpression())

	case tok.Type == token.EXISTS:
		n.Add(p.next())
		n.Add(p.parseSubquery())

	case tok.Type == token.ROW && p.checkPeek(1, token.LPAREN):
		n.Add(p.next())
		n.Add(p.expect(token.LPAREN))
		n.Add(p.parseExprs())
		n.Add(p.expect(token.RPAREN))

	case tok.Type == token.LPAREN:
		if p.atSubquery() {
			n.Add(p.parseSubquery())
			break
		}
		p.parseParenthesized(n)

	case tok.Type == token.LBRACE:
		n.Add(p.next())
		n.Add(p.parseIdentifier())
		n.Add(p.parseExpr())
		n.Add(p.expect(token.RBRACE))

	case tok.Type == token.NEW && p.nameLen(1, 1) > 0 && p.checkPeek(1+p.nameLen(1, 1), token.LPAREN):
		n.Add(p.parseConstructorExpr())

	case p.atFunctionCall():
		n.Add(p.parseFunctionCall())

	case p.atPseudoColumn():
		n.Add(p.parsePseudoColumn())

	case isIdentifier(tok):
		n.Add(p.parseColumnName())
		if p.atOuterJoin(0) {
			n.Add(p.next())
			n.Add(p.next())
			n.Add(p.next())
		}

	default:
		p.fail(p.unexpected("expression"))
	}
	return n
}

// parseParenthesized handles ( exprs ) and the forms that extend it: an
// interval difference or an attribute access on the parenthesized value.
func (p *Parser) parseParenthesized(n *tree.Node) {
	lp := p.next()
	exprs := p.parseExprs()
	rp := p.expect(token.RPAREN)

	switch {
	case p.check(token.DAY, token.YEAR):
		ie := tree.NewRule(tree.IntervalExpression, lp, exprs, rp)
		p.intervalQualifier(ie)
		n.Add(tree.NewRule(tree.PrivateExprOfDb, ie))
	case p.check(token.DOT) && isIdentifier(p.peek(1)):
		oa := tree.NewRule(tree.ObjectAccessExpression, lp, exprs, rp, p.next())
		oa.Add(p.parseAttributeName())
		n.Add(oa)
	default:
		n.Add(lp)
		n.Add(exprs)
		n.Add(rp)
	}
}

// intervalQualifier parses DAY (n)? TO SECOND (n)? | YEAR (n)? TO MONTH.
func (p *Parser) intervalQualifier(n *tree.Node) {
	if day := p.accept(token.DAY); day != nil {
		n.Add(day)
		p.addPrecision(n)
		n.Add(p.expect(token.TO))
		n.Add(p.expect(token.SECOND))
		p.addPrecision(n)
		return
	}
	n.Add(p.expect(token.YEAR))
	p.addPrecision(n)
	n.Add(p.expect(token.TO))
	n.Add(p.expect(token.MONTH))
}

func (p *Parser) parseIntervalExpression() *tree.Node {
	n := tree.NewRule(tree.IntervalExpression, p.expect(token.LPAREN))
	n.Add(p.parseExpr())
	n.Add(p.expect(token.MINUS))
	n.Add(p.parseExpr())
	n.Add(p.expect(token.RPAREN))
	p.intervalQualifier(n)
	return n
}

func (p *Parser) parsePrivateExprOfDb() *tree.Node {
	return tree.NewRule(tree.PrivateExprOfDb, p.parseIntervalExpression())
}

// parseConstructorExpr parses NEW typeName ( exprs? ).
func (p *Parser) parseConstructorExpr() *tree.Node {
	n := tree.NewRule(tree.ConstructorExpr, p.expect(token.NEW))
	n.Add(p.parseTypeName())
	n.Add(p.expect(token.LPAREN))
	if !p.check(token.RPAREN) {
		n.Add(p.parseExprs())
	}
	n.Add(p.expect(token.RPAREN))
	return n
}

// parseObjectAccessExpression parses ( expr ) . attributeName.
func (p *Parser) parseObjectAccessExpression() *tree.Node {
	n := tree.NewRule(tree.ObjectAccessExpression, p.expect(token.LPAREN))
	n.Add(p.parseExprs())
	n.Add(p.expect(token.RPAREN))
	n.Add(p.expect(token.DOT))
	n.Add(p.parseAttributeName())
	return n
}

// atPseudoColumn reports whether the current token is a pseudo column
// used on its own, not as a qualifier or a call.
func (p *Parser) atPseudoColumn() bool {
	tok := p.cur()
	if !tok.Type.IsKeyword() || p.checkPeek(1, token.DOT, token.LPAREN) {
		return false
	}
	return p.dialect.IsPseudoColumn(tok.Text)
}

func (p *Parser) parsePseudoColumn() *tree.Node {
	if !p.atPseudoColumn() {
		p.fail(p.unexpected("pseudo column"))
	}
	return tree.NewRule(tree.PseudoColumn, p.next())
}

// ---------- Lookahead ----------

// nameLen returns how many tokens a dotted name with up to maxOwners
// qualifiers occupies starting at offset from, or 0 if none starts there.
func (p *Parser) nameLen(from, maxOwners int) int {
	if !isIdentifier(p.peek(from)) {
		return 0
	}
	n := 1
	for owners := 0; owners < maxOwners; owners++ {
		if !p.checkPeek(from+n, token.DOT) || !isIdentifier(p.peek(from+n+1)) {
			break
		}
		n += 2
	}
	return n
}

// atOuterJoin reports whether "(+)" starts at offset i.
func (p *Parser) atOuterJoin(i int) bool {
	return p.checkPeek(i, token.LPAREN) && p.checkPeek(i+1, token.PLUS) && p.checkPeek(i+2, token.RPAREN)
}

// atSubquery reports whether the parenthesis at the current token
// encloses a query and nothing else, so "((SELECT 1 FROM dual) + 1)" is a
// parenthesized expression while "((SELECT 1 FROM dual))" is a subquery.
func (p *Parser) atSubquery() bool {
	return p.queryParenAt(0)
}

// queryParenAt reports whether the "(" at offset i holds a query: either
// SELECT directly, or a parenthesized query whose closing ")" is followed
// by the outer ")", a set operator, ORDER BY or a row limit.
func (p *Parser) queryParenAt(i int) bool {
	if i > maxDepth || !p.checkPeek(i, token.LPAREN) {
		return false
	}
	if p.checkPeek(i+1, token.SELECT) {
		return true
	}
	if !p.queryParenAt(i + 1) {
		return false
	}
	end := p.matchingParen(i + 1)
	return end > 0 && p.checkPeek(end+1,
		token.RPAREN, token.UNION, token.INTERSECT, token.MINUS_KW,
		token.ORDER, token.OFFSET, token.FETCH)
}

// matchingParen returns the offset of the ")" closing the "(" at offset
// i, or -1 when the input ends first.
func (p *Parser) matchingParen(i int) int {
	depth := 0
	for j := i; ; j++ {
		switch p.peek(j).Type {
		case token.LPAREN:
			depth++
		case token.RPAREN:
			depth--
			if depth == 0 {
				return j
			}
		case token.EOF:
			return -1
		}
	}
}
