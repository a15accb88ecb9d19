package parser

import (
	"github.com/leapstack-labs/oraparse/pkg/token"
	"github.com/leapstack-labs/oraparse/pkg/tree"
)

// Query rules. Only enough of SELECT is covered to host subqueries:
//
//	select   → queryBlock ((UNION ALL? | INTERSECT | MINUS) queryBlock)* orderByClause? rowLimit?
//	queryBlock → SELECT distinct? selectList fromClause? whereClause?
//	             hierarchicalQueryClause? groupByClause? havingClause?
//	subquery → ( select )

// aliasStops lists the non-reserved words that end an expression in a
// select list or a table reference instead of naming it.
var aliasStops = map[token.TokenType]struct{}{
	token.JOIN: {}, token.INNER: {}, token.LEFT: {}, token.RIGHT: {}, token.FULL: {},
	token.CROSS: {}, token.NATURAL: {}, token.OUTER: {}, token.USING: {},
	token.FETCH: {}, token.OFFSET: {}, token.WINDOW: {}, token.EXCEPT: {},
	token.MODEL: {}, token.LIMIT: {},
}

// atAlias reports whether an alias without AS starts here.
func (p *Parser) atAlias() bool {
	tok := p.cur()
	if _, stop := aliasStops[tok.Type]; stop {
		return false
	}
	return isIdentifier(tok)
}

// optionalAlias parses (AS alias | alias)? into n.
func (p *Parser) optionalAlias(n *tree.Node) {
	if as := p.accept(token.AS); as != nil {
		n.Add(as)
		n.Add(p.parseAlias())
		return
	}
	if p.atAlias() {
		n.Add(p.parseAlias())
	}
}

// ---------- SELECT ----------

func (p *Parser) parseSelect() *tree.Node {
	p.enter()
	defer p.leave()

	n := p.queryOperand()
	for {
		switch {
		case p.check(token.UNION):
			n = tree.NewRule(tree.Select, n, p.next())
			n.Add(p.accept(token.ALL))
		case p.check(token.INTERSECT, token.MINUS_KW):
			n = tree.NewRule(tree.Select, n, p.next())
		default:
			if p.check(token.ORDER) {
				n.Add(p.parseOrderByClause())
			}
			p.rowLimit(n)
			return n
		}
		n.Add(p.queryOperand())
	}
}

// queryOperand parses a query block or a parenthesized query.
func (p *Parser) queryOperand() *tree.Node {
	if p.check(token.LPAREN) {
		return tree.NewRule(tree.Select, p.parseSubquery())
	}
	return p.queryBlock()
}

func (p *Parser) queryBlock() *tree.Node {
	n := tree.NewRule(tree.Select, p.expect(token.SELECT))
	if p.check(token.DISTINCT, token.UNIQUE, token.ALL) {
		n.Add(p.parseDistinct())
	}
	n.Add(p.parseSelectList())
	if p.check(token.FROM) {
		n.Add(p.parseFromClause())
	}
	if p.check(token.WHERE) {
		n.Add(p.parseWhereClause())
	}
	if p.check(token.CONNECT, token.START) {
		n.Add(p.parseHierarchicalQueryClause())
	}
	if p.check(token.GROUP) {
		n.Add(p.parseGroupByClause())
	}
	if p.check(token.HAVING) {
		n.Add(p.parseHavingClause())
	}
	return n
}

// rowLimit parses OFFSET n ROWS and FETCH (FIRST | NEXT) n? ROWS (ONLY | WITH TIES).
func (p *Parser) rowLimit(n *tree.Node) {
	if off := p.accept(token.OFFSET); off != nil {
		n.Add(off)
		n.Add(p.parseBitExpr())
		n.Add(p.expect(token.ROW, token.ROWS))
	}
	if fetch := p.accept(token.FETCH); fetch != nil {
		n.Add(fetch)
		n.Add(p.expect(token.FIRST, token.NEXT))
		if !p.check(token.ROW, token.ROWS) {
			n.Add(p.parseBitExpr())
		}
		n.Add(p.expect(token.ROW, token.ROWS))
		if with := p.accept(token.WITH); with != nil {
			n.Add(with)
			n.Add(p.expect(token.TIES))
		} else {
			n.Add(p.expect(token.ONLY))
		}
	}
}

func (p *Parser) parseSelectList() *tree.Node {
	if p.check(token.STAR) {
		return tree.NewRule(tree.SelectList, p.next())
	}
	return p.listInto(tree.NewRule(tree.SelectList), p.parseSelectItem, token.FROM)
}

// parseSelectItem parses owner.* or expr (AS? alias)?.
func (p *Parser) parseSelectItem() *tree.Node {
	if n := p.nameLen(0, 1); n > 0 && p.checkPeek(n, token.DOT) && p.checkPeek(n+1, token.STAR) {
		item := tree.NewRule(tree.SelectItem, p.parseQualified(tree.TableName, 1))
		item.Add(p.next())
		item.Add(p.next())
		return item
	}
	item := tree.NewRule(tree.SelectItem, p.parseExpr())
	p.optionalAlias(item)
	return item
}

// ---------- FROM ----------

func (p *Parser) parseFromClause() *tree.Node {
	n := tree.NewRule(tree.FromClause, p.expect(token.FROM))
	return p.listInto(n, p.parseTableReference, token.WHERE, token.GROUP, token.ORDER)
}

// parseTableReference parses a table factor followed by its joins.
func (p *Parser) parseTableReference() *tree.Node {
	n := p.tableFactor()
	for p.atJoin() {
		n.Add(p.parseJoinClause())
	}
	return n
}

// tableFactor parses (subquery | tableName) alias?.
func (p *Parser) tableFactor() *tree.Node {
	n := tree.NewRule(tree.TableReference)
	if p.atSubquery() {
		n.Add(p.parseSubquery())
	} else {
		n.Add(p.parseTableName())
	}
	p.optionalAlias(n)
	return n
}

func (p *Parser) atJoin() bool {
	switch p.cur().Type {
	case token.JOIN, token.INNER, token.CROSS, token.NATURAL, token.LEFT, token.RIGHT, token.FULL:
		return true
	}
	return false
}

// parseJoinClause parses
// (INNER | CROSS | NATURAL? (LEFT | RIGHT | FULL) OUTER?)? JOIN tableFactor (ON expr | USING columnNames)?.
func (p *Parser) parseJoinClause() *tree.Node {
	n := tree.NewRule(tree.JoinClause)
	switch {
	case p.check(token.INNER, token.CROSS):
		n.Add(p.next())
	case p.check(token.NATURAL, token.LEFT, token.RIGHT, token.FULL):
		n.Add(p.accept(token.NATURAL))
		if side := p.accept(token.LEFT, token.RIGHT, token.FULL); side != nil {
			n.Add(side)
			n.Add(p.accept(token.OUTER))
		}
	}
	n.Add(p.expect(token.JOIN))
	n.Add(p.tableFactor())

	if on := p.accept(token.ON); on != nil {
		n.Add(on)
		n.Add(p.parseExpr())
	} else if using := p.accept(token.USING); using != nil {
		n.Add(using)
		n.Add(p.parseColumnNames())
	}
	return n
}

// ---------- Filters and Grouping ----------

func (p *Parser) parseWhereClause() *tree.Node {
	n := tree.NewRule(tree.WhereClause, p.expect(token.WHERE))
	n.Add(p.parseExpr())
	return n
}

// parseHierarchicalQueryClause parses CONNECT BY NOCYCLE? expr (START WITH expr)?
// in either order.
func (p *Parser) parseHierarchicalQueryClause() *tree.Node {
	n := tree.NewRule(tree.HierarchicalQueryClause)
	if p.check(token.START) {
		p.startWith(n)
		p.connectBy(n)
		return n
	}
	p.connectBy(n)
	if p.check(token.START) {
		p.startWith(n)
	}
	return n
}

func (p *Parser) connectBy(n *tree.Node) {
	n.Add(p.expect(token.CONNECT))
	n.Add(p.expect(token.BY))
	n.Add(p.accept(token.NOCYCLE))
	n.Add(p.parseExpr())
}

func (p *Parser) startWith(n *tree.Node) {
	n.Add(p.expect(token.START))
	n.Add(p.expect(token.WITH))
	n.Add(p.parseExpr())
}

func (p *Parser) parseGroupByClause() *tree.Node {
	n := tree.NewRule(tree.GroupByClause, p.expect(token.GROUP))
	n.Add(p.expect(token.BY))
	n.Add(p.parseExprs())
	return n
}

func (p *Parser) parseHavingClause() *tree.Node {
	n := tree.NewRule(tree.HavingClause, p.expect(token.HAVING))
	n.Add(p.parseExpr())
	return n
}

// ---------- ORDER BY ----------

// parseOrderByClause parses ORDER SIBLINGS? BY orderByItem (, orderByItem)*.
func (p *Parser) parseOrderByClause() *tree.Node {
	n := tree.NewRule(tree.OrderByClause, p.expect(token.ORDER))
	n.Add(p.accept(token.SIBLINGS))
	n.Add(p.expect(token.BY))
	return p.listInto(n, p.parseOrderByItem)
}

// parseOrderByItem parses expr (ASC | DESC)? (NULLS (FIRST | LAST))?.
func (p *Parser) parseOrderByItem() *tree.Node {
	n := tree.NewRule(tree.OrderByItem, p.parseExpr())
	n.Add(p.accept(token.ASC, token.DESC))
	if nulls := p.accept(token.NULLS); nulls != nil {
		n.Add(nulls)
		n.Add(p.expect(token.FIRST, token.LAST))
	}
	return n
}

// ---------- Subqueries and LOB Items ----------

// parseSubquery parses ( select ).
func (p *Parser) parseSubquery() *tree.Node {
	n := tree.NewRule(tree.Subquery, p.expect(token.LPAREN))
	n.Add(p.parseSelect())
	n.Add(p.expect(token.RPAREN))
	return n
}

func (p *Parser) parseLobItem() *tree.Node {
	return tree.NewRule(tree.LobItem, p.parseColumnName())
}

func (p *Parser) parseLobItems() *tree.Node {
	return p.listInto(tree.NewRule(tree.LobItems), p.parseLobItem)
}

// parseLobItemList parses ( lobItems ).
func (p *Parser) parseLobItemList() *tree.Node {
	n := tree.NewRule(tree.LobItemList, p.expect(token.LPAREN))
	n.Add(p.parseLobItems())
	n.Add(p.expect(token.RPAREN))
	return n
}
