package parser

import (
	"github.com/leapstack-labs/oraparse/pkg/token"
	"github.com/leapstack-labs/oraparse/pkg/tree"
)

// ---------- CASE ----------

// parseCaseExpression parses CASE (simpleCaseExpr | searchedCaseExpr) caseElse? END.
func (p *Parser) parseCaseExpression() *tree.Node {
	n := tree.NewRule(tree.CaseExpression, p.expect(token.CASE))
	if p.check(token.WHEN) {
		n.Add(p.parseSearchedCaseExpr())
	} else {
		n.Add(p.parseSimpleCaseExpr())
	}
	if p.check(token.ELSE) {
		n.Add(p.parseCaseElse())
	}
	n.Add(p.expect(token.END))
	return n
}

func (p *Parser) parseSimpleCaseExpr() *tree.Node {
	n := tree.NewRule(tree.SimpleCaseExpr, p.parseExpr())
	p.caseWhens(n)
	return n
}

func (p *Parser) parseSearchedCaseExpr() *tree.Node {
	n := tree.NewRule(tree.SearchedCaseExpr)
	p.caseWhens(n)
	return n
}

// caseWhens parses one or more WHEN branches into n.
func (p *Parser) caseWhens(n *tree.Node) {
	n.Add(p.parseCaseWhen())
	for p.check(token.WHEN) {
		n.Add(p.parseCaseWhen())
	}
}

func (p *Parser) parseCaseWhen() *tree.Node {
	n := tree.NewRule(tree.CaseWhen, p.expect(token.WHEN))
	n.Add(p.parseExpr())
	n.Add(p.expect(token.THEN))
	n.Add(p.parseExpr())
	return n
}

func (p *Parser) parseCaseElse() *tree.Node {
	n := tree.NewRule(tree.CaseElse, p.expect(token.ELSE))
	n.Add(p.parseExpr())
	return n
}

// ---------- Data Types ----------

// parseDataType parses dataTypeName dataTypeLength? datetimeTypeSuffix?
// or a %TYPE / %ROWTYPE reference.
func (p *Parser) parseDataType() *tree.Node {
	if p.atSpecialDatatype() {
		return tree.NewRule(tree.DataType, p.parseSpecialDatatype())
	}

	n := tree.NewRule(tree.DataType, p.parseDataTypeName())
	if p.check(token.LPAREN) {
		n.Add(p.parseDataTypeLength())
	}
	if p.check(token.WITH, token.TO) {
		n.Add(p.parseDatetimeTypeSuffix())
	}
	return n
}

// parseDataTypeName handles the multi-word built-in names, then any name
// the dialect lists, then user-defined type names.
func (p *Parser) parseDataTypeName() *tree.Node {
	n := tree.NewRule(tree.DataTypeName)
	tok := p.cur()

	switch {
	case tok.Type == token.LONG:
		n.Add(p.next())
		n.Add(p.accept(token.RAW))
	case tok.Type == token.DOUBLE && p.checkPeek(1, token.PRECISION):
		n.Add(p.next())
		n.Add(p.next())
	case tok.Type == token.NATIONAL && p.checkPeek(1, token.CHAR, token.CHARACTER):
		n.Add(p.next())
		n.Add(p.next())
		n.Add(p.accept(token.VARYING))
	case tok.Is(token.CHAR, token.CHARACTER) && p.checkPeek(1, token.VARYING):
		n.Add(p.next())
		n.Add(p.next())
	case tok.Type == token.INTERVAL:
		n.Add(p.next())
		n.Add(p.expect(token.YEAR, token.DAY))
	case tok.Type.IsKeyword() && p.dialect.IsDataType(tok.Text):
		n.Add(p.next())
	case isIdentifier(tok):
		if p.dialect.IsDataType(tok.Text) && !p.checkPeek(1, token.DOT) {
			n.Add(p.next())
		} else {
			n.Add(p.parseTypeName())
		}
	default:
		p.fail(p.unexpected("data type"))
	}
	return n
}

// parseDataTypeLength parses ( (INT | *) (, -? INT)? (CHAR | BYTE)? ).
func (p *Parser) parseDataTypeLength() *tree.Node {
	n := tree.NewRule(tree.DataTypeLength, p.expect(token.LPAREN))
	n.Add(p.expect(token.INT_LIT, token.STAR))
	if comma := p.accept(token.COMMA); comma != nil {
		n.Add(comma)
		n.Add(p.accept(token.MINUS))
		n.Add(p.expect(token.INT_LIT))
	}
	if unit := p.accept(token.CHAR); unit != nil {
		n.Add(unit)
	} else {
		n.Add(p.acceptWord("BYTE"))
	}
	n.Add(p.expect(token.RPAREN))
	return n
}

// parseDatetimeTypeSuffix parses WITH LOCAL? TIME ZONE | TO MONTH | TO SECOND (n)?.
func (p *Parser) parseDatetimeTypeSuffix() *tree.Node {
	n := tree.NewRule(tree.DatetimeTypeSuffix)
	if with := p.accept(token.WITH); with != nil {
		n.Add(with)
		n.Add(p.accept(token.LOCAL))
		n.Add(p.expect(token.TIME))
		n.Add(p.expect(token.ZONE))
		return n
	}
	n.Add(p.expect(token.TO))
	if sec := p.accept(token.SECOND); sec != nil {
		n.Add(sec)
		p.addPrecision(n)
		return n
	}
	n.Add(p.expect(token.MONTH))
	return n
}

func (p *Parser) atSpecialDatatype() bool {
	n := p.nameLen(0, 2)
	if n == 0 || !p.checkPeek(n, token.PERCENT) {
		return false
	}
	next := p.peek(n + 1)
	return next.Type == token.TYPE || isWord(next, "ROWTYPE")
}

// parseSpecialDatatype parses columnName % (TYPE | ROWTYPE).
func (p *Parser) parseSpecialDatatype() *tree.Node {
	n := tree.NewRule(tree.SpecialDatatype, p.parseColumnName())
	n.Add(p.expect(token.PERCENT))
	if t := p.accept(token.TYPE); t != nil {
		n.Add(t)
		return n
	}
	n.Add(p.expectWord("ROWTYPE"))
	return n
}
