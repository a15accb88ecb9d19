package parser

import (
	"github.com/leapstack-labs/oraparse/pkg/token"
	"github.com/leapstack-labs/oraparse/pkg/tree"
)

// Function calls:
//
//	functionCall        → aggregationFunction | specialFunction | regularFunction
//	aggregationFunction → name ( distinct? (* | exprs)? ) (OVER analyticClause)?
//	specialFunction     → castFunction | charFunction | treatFunction | TRIM (...) | EXTRACT (...)
//	regularFunction     → (owner .)? (owner .)? name ( (* | args)? ) suffix*

// atFunctionCall reports whether a possibly qualified name followed by "("
// starts here. "col(+)" is an outer join marker, not a call.
func (p *Parser) atFunctionCall() bool {
	n := p.nameLen(0, 2)
	return n > 0 && p.checkPeek(n, token.LPAREN) && !p.atOuterJoin(n)
}

func (p *Parser) parseFunctionCall() *tree.Node {
	n := tree.NewRule(tree.FunctionCall)
	switch {
	case p.atSpecialFunction():
		n.Add(p.parseSpecialFunction())
	case p.checkPeek(1, token.LPAREN) && p.dialect.IsAggregate(p.cur().Text):
		n.Add(p.parseAggregationFunction())
	default:
		n.Add(p.parseRegularFunction())
	}
	return n
}

// ---------- Aggregates ----------

func (p *Parser) parseAggregationFunction() *tree.Node {
	n := tree.NewRule(tree.AggregationFunction, p.parseAggregationFunctionName())
	n.Add(p.expect(token.LPAREN))
	if p.check(token.DISTINCT, token.ALL, token.UNIQUE) {
		n.Add(p.parseDistinct())
	}
	switch {
	case p.check(token.STAR):
		n.Add(p.next())
	case !p.check(token.RPAREN):
		n.Add(p.parseExprs())
	}
	n.Add(p.expect(token.RPAREN))
	p.functionSuffix(n)
	return n
}

func (p *Parser) parseAggregationFunctionName() *tree.Node {
	tok := p.cur()
	if !isIdentifier(tok) || !p.dialect.IsAggregate(tok.Text) {
		p.fail(p.unexpected("aggregate function"))
	}
	return tree.NewRule(tree.AggregationFunctionName, p.next())
}

func (p *Parser) parseDistinct() *tree.Node {
	return tree.NewRule(tree.Distinct, p.expect(token.DISTINCT, token.ALL, token.UNIQUE))
}

// ---------- Regular Functions ----------

func (p *Parser) parseRegularFunction() *tree.Node {
	n := tree.NewRule(tree.RegularFunction, p.parseRegularFunctionName())
	n.Add(p.expect(token.LPAREN))
	if p.check(token.DISTINCT, token.UNIQUE) {
		n.Add(p.parseDistinct())
	}
	switch {
	case p.check(token.STAR):
		n.Add(p.next())
	case !p.check(token.RPAREN):
		n.Add(p.parseArguments())
	}
	n.Add(p.expect(token.RPAREN))
	p.functionSuffix(n)
	return n
}

func (p *Parser) parseRegularFunctionName() *tree.Node {
	return p.parseQualified(tree.RegularFunctionName, 2)
}

// parseArguments parses a call's argument list. Named arguments
// (name => expr) keep the name and arrow inline before the value.
func (p *Parser) parseArguments() *tree.Node {
	n := tree.NewRule(tree.Exprs)
	for {
		if isIdentifier(p.cur()) && p.checkPeek(1, token.ASSOC) {
			n.Add(p.parseIdentifier())
			n.Add(p.next())
		}
		n.Add(p.recoverable(p.parseExpr))
		if !p.check(token.COMMA) {
			return n
		}
		n.Add(p.next())
	}
}

// functionSuffix parses WITHIN GROUP ( orderByClause ) and OVER clauses
// trailing a call.
func (p *Parser) functionSuffix(n *tree.Node) {
	if p.check(token.WITHIN) && p.checkPeek(1, token.GROUP) {
		n.Add(p.next())
		n.Add(p.next())
		n.Add(p.expect(token.LPAREN))
		n.Add(p.parseOrderByClause())
		n.Add(p.expect(token.RPAREN))
	}
	if p.check(token.OVER) {
		n.Add(p.parseAnalyticClause())
	}
}

// parseAnalyticClause parses OVER window | OVER ( partition? order? frame? ).
func (p *Parser) parseAnalyticClause() *tree.Node {
	n := tree.NewRule(tree.AnalyticClause, p.expect(token.OVER))
	if isIdentifier(p.cur()) {
		n.Add(p.parseIdentifier())
		return n
	}

	n.Add(p.expect(token.LPAREN))
	if part := p.accept(token.PARTITION); part != nil {
		n.Add(part)
		n.Add(p.expect(token.BY))
		n.Add(p.parseExprs())
	}
	if p.check(token.ORDER) {
		n.Add(p.parseOrderByClause())
	}
	if p.check(token.ROWS) || p.checkWord("RANGE") {
		p.windowFrame(n)
	}
	n.Add(p.expect(token.RPAREN))
	return n
}

// windowFrame parses (ROWS | RANGE) (BETWEEN bound AND bound | bound).
func (p *Parser) windowFrame(n *tree.Node) {
	n.Add(p.next())
	if between := p.accept(token.BETWEEN); between != nil {
		n.Add(between)
		p.frameBound(n)
		n.Add(p.expect(token.AND))
	}
	p.frameBound(n)
}

func (p *Parser) frameBound(n *tree.Node) {
	switch {
	case p.checkWord("UNBOUNDED"):
		n.Add(p.next())
		p.frameDirection(n)
	case p.check(token.CURRENT):
		n.Add(p.next())
		n.Add(p.expect(token.ROW))
	default:
		n.Add(p.parseBitExpr())
		p.frameDirection(n)
	}
}

func (p *Parser) frameDirection(n *tree.Node) {
	if tok := p.acceptWord("PRECEDING"); tok != nil {
		n.Add(tok)
		return
	}
	n.Add(p.expectWord("FOLLOWING"))
}

// ---------- Special Functions ----------

func (p *Parser) atSpecialFunction() bool {
	if !p.checkPeek(1, token.LPAREN) {
		return false
	}
	return p.check(token.CAST, token.CHAR, token.TREAT, token.TRIM) || p.checkWord("EXTRACT")
}

func (p *Parser) parseSpecialFunction() *tree.Node {
	n := tree.NewRule(tree.SpecialFunction)
	switch p.cur().Type {
	case token.CAST:
		n.Add(p.parseCastFunction())
	case token.CHAR:
		n.Add(p.parseCharFunction())
	case token.TREAT:
		n.Add(p.parseTreatFunction())
	case token.TRIM:
		p.trimFunction(n)
	default:
		if !p.checkWord("EXTRACT") {
			p.fail(p.unexpected("special function"))
		}
		p.extractFunction(n)
	}
	return n
}

// parseCastFunction parses CAST ( expr AS dataType ).
func (p *Parser) parseCastFunction() *tree.Node {
	n := tree.NewRule(tree.CastFunction, p.expect(token.CAST))
	n.Add(p.expect(token.LPAREN))
	n.Add(p.parseExpr())
	n.Add(p.expect(token.AS))
	n.Add(p.parseDataType())
	n.Add(p.expect(token.RPAREN))
	return n
}

// parseCharFunction parses CHAR ( exprs (USING ignoredIdentifier)? ).
func (p *Parser) parseCharFunction() *tree.Node {
	n := tree.NewRule(tree.CharFunction, p.expect(token.CHAR))
	n.Add(p.expect(token.LPAREN))
	n.Add(p.parseExprs())
	if using := p.accept(token.USING); using != nil {
		n.Add(using)
		n.Add(p.parseIgnoredIdentifier())
	}
	n.Add(p.expect(token.RPAREN))
	return n
}

// parseTreatFunction parses TREAT ( expr AS REF? dataTypeName ).
func (p *Parser) parseTreatFunction() *tree.Node {
	n := tree.NewRule(tree.TreatFunction, p.expect(token.TREAT))
	n.Add(p.expect(token.LPAREN))
	n.Add(p.parseExpr())
	n.Add(p.expect(token.AS))
	n.Add(p.accept(token.REF))
	n.Add(p.parseDataTypeName())
	n.Add(p.expect(token.RPAREN))
	return n
}

// trimFunction parses TRIM ( (LEADING | TRAILING | BOTH)? expr? FROM? expr ).
func (p *Parser) trimFunction(n *tree.Node) {
	n.Add(p.next())
	n.Add(p.expect(token.LPAREN))
	if spec := p.accept(token.LEADING, token.TRAILING, token.BOTH); spec != nil {
		n.Add(spec)
		if !p.check(token.FROM) {
			n.Add(p.parseExpr())
		}
		n.Add(p.expect(token.FROM))
		n.Add(p.parseExpr())
	} else {
		n.Add(p.parseExpr())
		if from := p.accept(token.FROM); from != nil {
			n.Add(from)
			n.Add(p.parseExpr())
		}
	}
	n.Add(p.expect(token.RPAREN))
}

// extractFunction parses EXTRACT ( field FROM expr ).
func (p *Parser) extractFunction(n *tree.Node) {
	n.Add(p.next())
	n.Add(p.expect(token.LPAREN))
	if !isIdentifier(p.cur()) {
		p.fail(p.unexpected("datetime field"))
	}
	n.Add(p.next())
	n.Add(p.expect(token.FROM))
	n.Add(p.parseExpr())
	n.Add(p.expect(token.RPAREN))
}
