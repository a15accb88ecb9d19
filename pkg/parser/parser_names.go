package parser

import (
	"github.com/leapstack-labs/oraparse/pkg/token"
	"github.com/leapstack-labs/oraparse/pkg/tree"
)

// Lexical glue and name rules:
//
//	parameterMarker → ? | :name
//	literals        → stringLiterals | numberLiterals | dateTimeLiterals
//	                | hexadecimalLiterals | bitValueLiterals | booleanLiterals
//	                | nullValueLiterals
//	identifier      → IDENT | QUOTED_IDENT | unreservedWord
//	columnName      → (owner .)? (owner .)? name
//	tableName       → (owner .)? name (@ dbLink)?

// isIdentifier reports whether tok can serve as a name.
func isIdentifier(tok token.Token) bool {
	return tok.Type == token.IDENT || tok.Type == token.QUOTED_IDENT || tok.Type.IsUnreserved()
}

// ---------- Literals ----------

// atLiteral reports whether a literal starts at the current token.
func (p *Parser) atLiteral() bool {
	switch p.cur().Type {
	case token.STRING_LIT, token.NSTRING_LIT, token.INT_LIT, token.DECIMAL_LIT,
		token.HEX_LIT, token.BIT_LIT, token.TRUE, token.FALSE, token.NULL:
		return true
	case token.MINUS:
		return p.checkPeek(1, token.INT_LIT, token.DECIMAL_LIT)
	case token.DATE, token.TIME, token.TIMESTAMP, token.INTERVAL:
		return p.checkPeek(1, token.STRING_LIT)
	case token.LBRACE:
		return isIdentifier(p.peek(1)) && p.checkPeek(2, token.STRING_LIT) && p.checkPeek(3, token.RBRACE)
	}
	return false
}

func (p *Parser) parseParameterMarker() *tree.Node {
	return tree.NewRule(tree.ParameterMarker, p.expect(token.QUESTION, token.BIND_VAR))
}

func (p *Parser) parseLiterals() *tree.Node {
	var inner *tree.Node
	switch p.cur().Type {
	case token.STRING_LIT, token.NSTRING_LIT:
		inner = p.parseStringLiterals()
	case token.INT_LIT, token.DECIMAL_LIT, token.MINUS:
		inner = p.parseNumberLiterals()
	case token.DATE, token.TIME, token.TIMESTAMP, token.INTERVAL, token.LBRACE:
		inner = p.parseDateTimeLiterals()
	case token.HEX_LIT:
		inner = p.parseHexadecimalLiterals()
	case token.BIT_LIT:
		inner = p.parseBitValueLiterals()
	case token.TRUE, token.FALSE:
		inner = p.parseBooleanLiterals()
	case token.NULL:
		inner = p.parseNullValueLiterals()
	default:
		p.fail(p.unexpected("literal"))
	}
	return tree.NewRule(tree.Literals, inner)
}

func (p *Parser) parseStringLiterals() *tree.Node {
	return tree.NewRule(tree.StringLiterals, p.expect(token.STRING_LIT, token.NSTRING_LIT))
}

func (p *Parser) parseNumberLiterals() *tree.Node {
	n := tree.NewRule(tree.NumberLiterals, p.accept(token.MINUS))
	n.Add(p.expect(token.INT_LIT, token.DECIMAL_LIT))
	return n
}

// parseDateTimeLiterals handles DATE 'x', TIMESTAMP 'x', {d 'x'} and
// INTERVAL '1-2' YEAR TO MONTH.
func (p *Parser) parseDateTimeLiterals() *tree.Node {
	n := tree.NewRule(tree.DateTimeLiterals)
	switch p.cur().Type {
	case token.LBRACE:
		n.Add(p.next())
		n.Add(p.parseIdentifier())
		n.Add(p.expect(token.STRING_LIT))
		n.Add(p.expect(token.RBRACE))
	case token.INTERVAL:
		n.Add(p.next())
		n.Add(p.expect(token.STRING_LIT))
		n.Add(p.expect(intervalFields...))
		p.addPrecision(n)
		if to := p.accept(token.TO); to != nil {
			n.Add(to)
			n.Add(p.expect(intervalFields...))
			p.addPrecision(n)
		}
	default:
		n.Add(p.expect(token.DATE, token.TIME, token.TIMESTAMP))
		n.Add(p.expect(token.STRING_LIT))
	}
	return n
}

var intervalFields = []token.TokenType{token.YEAR, token.MONTH, token.DAY, token.HOUR, token.MINUTE, token.SECOND}

// addPrecision appends an optional ( INT ) to n.
func (p *Parser) addPrecision(n *tree.Node) {
	if p.check(token.LPAREN) && p.checkPeek(1, token.INT_LIT) && p.checkPeek(2, token.RPAREN) {
		n.Add(p.next())
		n.Add(p.next())
		n.Add(p.next())
	}
}

func (p *Parser) parseHexadecimalLiterals() *tree.Node {
	return tree.NewRule(tree.HexadecimalLiterals, p.expect(token.HEX_LIT))
}

func (p *Parser) parseBitValueLiterals() *tree.Node {
	return tree.NewRule(tree.BitValueLiterals, p.expect(token.BIT_LIT))
}

func (p *Parser) parseBooleanLiterals() *tree.Node {
	return tree.NewRule(tree.BooleanLiterals, p.expect(token.TRUE, token.FALSE))
}

func (p *Parser) parseNullValueLiterals() *tree.Node {
	return tree.NewRule(tree.NullValueLiterals, p.expect(token.NULL))
}

// ---------- Identifiers ----------

func (p *Parser) parseIdentifier() *tree.Node {
	tok := p.cur()
	switch {
	case tok.Is(token.IDENT, token.QUOTED_IDENT):
		return tree.NewRule(tree.Identifier, p.next())
	case tok.Type.IsUnreserved():
		return tree.NewRule(tree.Identifier, tree.NewRule(tree.UnreservedWord, p.next()))
	}
	p.fail(p.unexpected("identifier"))
	return nil
}

func (p *Parser) parseUnreservedWord() *tree.Node {
	if !p.cur().Type.IsUnreserved() {
		p.fail(p.unexpected("non-reserved keyword"))
	}
	return tree.NewRule(tree.UnreservedWord, p.next())
}

// wrapIdentifier returns kind → identifier.
func (p *Parser) wrapIdentifier(kind tree.Kind) *tree.Node {
	return tree.NewRule(kind, p.parseIdentifier())
}

// parseQualified parses up to maxOwners "owner ." prefixes and a final
// name. Owners stop where a dot is not followed by a name, so "t.*"
// leaves the dot in place.
func (p *Parser) parseQualified(kind tree.Kind, maxOwners int) *tree.Node {
	parts := []*tree.Node{p.parseIdentifier()}
	var dots []*tree.Node
	for len(dots) < maxOwners && p.check(token.DOT) && isIdentifier(p.peek(1)) {
		dots = append(dots, p.next())
		parts = append(parts, p.parseIdentifier())
	}

	n := tree.NewRule(kind)
	last := len(parts) - 1
	for i, part := range parts {
		if i == last {
			n.Add(tree.NewRule(tree.Name, part))
			break
		}
		n.Add(tree.NewRule(tree.Owner, part))
		n.Add(dots[i])
	}
	return n
}

func (p *Parser) parseName() *tree.Node           { return p.wrapIdentifier(tree.Name) }
func (p *Parser) parseOwner() *tree.Node          { return p.wrapIdentifier(tree.Owner) }
func (p *Parser) parseSchemaName() *tree.Node     { return p.wrapIdentifier(tree.SchemaName) }
func (p *Parser) parseConstraintName() *tree.Node { return p.wrapIdentifier(tree.ConstraintName) }
func (p *Parser) parseSavepointName() *tree.Node  { return p.wrapIdentifier(tree.SavepointName) }
func (p *Parser) parseTablespaceName() *tree.Node { return p.wrapIdentifier(tree.TablespaceName) }
func (p *Parser) parseRoleName() *tree.Node       { return p.wrapIdentifier(tree.RoleName) }

func (p *Parser) parseViewName() *tree.Node      { return p.parseQualified(tree.ViewName, 1) }
func (p *Parser) parseIndexName() *tree.Node     { return p.parseQualified(tree.IndexName, 1) }
func (p *Parser) parseSynonymName() *tree.Node   { return p.parseQualified(tree.SynonymName, 1) }
func (p *Parser) parseFunctionName() *tree.Node  { return p.parseQualified(tree.FunctionName, 1) }
func (p *Parser) parseTypeName() *tree.Node      { return p.parseQualified(tree.TypeName, 1) }
func (p *Parser) parseIndexTypeName() *tree.Node { return p.parseQualified(tree.IndexTypeName, 1) }
func (p *Parser) parseColumnName() *tree.Node    { return p.parseQualified(tree.ColumnName, 2) }

// parseTableName parses (owner .)? name (@ dbLink)?.
func (p *Parser) parseTableName() *tree.Node {
	n := p.parseQualified(tree.TableName, 1)
	if at := p.accept(token.AT_SIGN); at != nil {
		n.Add(at)
		n.Add(p.parseDbLink())
	}
	return n
}

// parseDbLink parses identifier (. identifier)*.
func (p *Parser) parseDbLink() *tree.Node {
	n := tree.NewRule(tree.DbLink, p.parseIdentifier())
	for p.check(token.DOT) && isIdentifier(p.peek(1)) {
		n.Add(p.next())
		n.Add(p.parseIdentifier())
	}
	return n
}

// parseOracleID parses identifier (. identifier)*.
func (p *Parser) parseOracleID() *tree.Node {
	n := tree.NewRule(tree.OracleID, p.parseIdentifier())
	for p.check(token.DOT) && isIdentifier(p.peek(1)) {
		n.Add(p.next())
		n.Add(p.parseIdentifier())
	}
	return n
}

func (p *Parser) parseAttributeName() *tree.Node {
	return tree.NewRule(tree.AttributeName, p.parseOracleID())
}

// parseAlias parses identifier | STRING.
func (p *Parser) parseAlias() *tree.Node {
	if p.check(token.STRING_LIT) {
		return tree.NewRule(tree.Alias, p.next())
	}
	return p.wrapIdentifier(tree.Alias)
}

// parseColumnNames parses ( columnName (, columnName)* ) with optional
// parentheses.
func (p *Parser) parseColumnNames() *tree.Node {
	return p.parseNameList(tree.ColumnNames, p.parseColumnName)
}

func (p *Parser) parseTableNames() *tree.Node {
	return p.parseNameList(tree.TableNames, p.parseTableName)
}

func (p *Parser) parseNameList(kind tree.Kind, item func() *tree.Node) *tree.Node {
	n := tree.NewRule(kind)
	lp := p.accept(token.LPAREN)
	n.Add(lp)
	p.listInto(n, item)
	if lp != nil {
		n.Add(p.expect(token.RPAREN))
	}
	return n
}

// parseIgnoredIdentifier parses identifier (. identifier)?.
func (p *Parser) parseIgnoredIdentifier() *tree.Node {
	n := tree.NewRule(tree.IgnoredIdentifier, p.parseIdentifier())
	if p.check(token.DOT) && isIdentifier(p.peek(1)) {
		n.Add(p.next())
		n.Add(p.parseIdentifier())
	}
	return n
}

func (p *Parser) parseIgnoredIdentifiers() *tree.Node {
	return p.listInto(tree.NewRule(tree.IgnoredIdentifiers), p.parseIgnoredIdentifier)
}
