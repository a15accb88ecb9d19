package parser

import (
	"slices"

	"github.com/leapstack-labs/oraparse/pkg/tree"
)

type ruleFunc func(*Parser) *tree.Node

// rules maps every start rule to its entry point.
var rules = map[tree.Kind]ruleFunc{
	tree.ParameterMarker:     (*Parser).parseParameterMarker,
	tree.Literals:            (*Parser).parseLiterals,
	tree.StringLiterals:      (*Parser).parseStringLiterals,
	tree.NumberLiterals:      (*Parser).parseNumberLiterals,
	tree.DateTimeLiterals:    (*Parser).parseDateTimeLiterals,
	tree.HexadecimalLiterals: (*Parser).parseHexadecimalLiterals,
	tree.BitValueLiterals:    (*Parser).parseBitValueLiterals,
	tree.BooleanLiterals:     (*Parser).parseBooleanLiterals,
	tree.NullValueLiterals:   (*Parser).parseNullValueLiterals,

	tree.Identifier:         (*Parser).parseIdentifier,
	tree.UnreservedWord:     (*Parser).parseUnreservedWord,
	tree.SchemaName:         (*Parser).parseSchemaName,
	tree.TableName:          (*Parser).parseTableName,
	tree.ViewName:           (*Parser).parseViewName,
	tree.ColumnName:         (*Parser).parseColumnName,
	tree.IndexName:          (*Parser).parseIndexName,
	tree.ConstraintName:     (*Parser).parseConstraintName,
	tree.SavepointName:      (*Parser).parseSavepointName,
	tree.SynonymName:        (*Parser).parseSynonymName,
	tree.FunctionName:       (*Parser).parseFunctionName,
	tree.TypeName:           (*Parser).parseTypeName,
	tree.IndexTypeName:      (*Parser).parseIndexTypeName,
	tree.TablespaceName:     (*Parser).parseTablespaceName,
	tree.RoleName:           (*Parser).parseRoleName,
	tree.DbLink:             (*Parser).parseDbLink,
	tree.Owner:              (*Parser).parseOwner,
	tree.Name:               (*Parser).parseName,
	tree.Alias:              (*Parser).parseAlias,
	tree.AttributeName:      (*Parser).parseAttributeName,
	tree.OracleID:           (*Parser).parseOracleID,
	tree.ColumnNames:        (*Parser).parseColumnNames,
	tree.TableNames:         (*Parser).parseTableNames,
	tree.IgnoredIdentifier:  (*Parser).parseIgnoredIdentifier,
	tree.IgnoredIdentifiers: (*Parser).parseIgnoredIdentifiers,

	tree.Expr:                   (*Parser).parseExpr,
	tree.LogicalOperator:        (*Parser).parseLogicalOperator,
	tree.NotOperator:            (*Parser).parseNotOperator,
	tree.BooleanPrimary:         (*Parser).parseBooleanPrimary,
	tree.ComparisonOperator:     (*Parser).parseComparisonOperator,
	tree.Predicate:              (*Parser).parsePredicate,
	tree.BitExpr:                (*Parser).parseBitExpr,
	tree.SimpleExpr:             (*Parser).parseSimpleExpr,
	tree.Exprs:                  (*Parser).parseExprs,
	tree.ExprList:               (*Parser).parseExprList,
	tree.SimpleExprs:            (*Parser).parseSimpleExprs,
	tree.PseudoColumn:           (*Parser).parsePseudoColumn,
	tree.PrivateExprOfDb:        (*Parser).parsePrivateExprOfDb,
	tree.IntervalExpression:     (*Parser).parseIntervalExpression,
	tree.ObjectAccessExpression: (*Parser).parseObjectAccessExpression,
	tree.ConstructorExpr:        (*Parser).parseConstructorExpr,

	tree.FunctionCall:            (*Parser).parseFunctionCall,
	tree.AggregationFunction:     (*Parser).parseAggregationFunction,
	tree.AggregationFunctionName: (*Parser).parseAggregationFunctionName,
	tree.Distinct:                (*Parser).parseDistinct,
	tree.AnalyticClause:          (*Parser).parseAnalyticClause,
	tree.SpecialFunction:         (*Parser).parseSpecialFunction,
	tree.CastFunction:            (*Parser).parseCastFunction,
	tree.CharFunction:            (*Parser).parseCharFunction,
	tree.TreatFunction:           (*Parser).parseTreatFunction,
	tree.RegularFunction:         (*Parser).parseRegularFunction,
	tree.RegularFunctionName:     (*Parser).parseRegularFunctionName,

	tree.CaseExpression:   (*Parser).parseCaseExpression,
	tree.SimpleCaseExpr:   (*Parser).parseSimpleCaseExpr,
	tree.SearchedCaseExpr: (*Parser).parseSearchedCaseExpr,
	tree.CaseWhen:         (*Parser).parseCaseWhen,
	tree.CaseElse:         (*Parser).parseCaseElse,

	tree.DataType:           (*Parser).parseDataType,
	tree.DataTypeName:       (*Parser).parseDataTypeName,
	tree.DataTypeLength:     (*Parser).parseDataTypeLength,
	tree.SpecialDatatype:    (*Parser).parseSpecialDatatype,
	tree.DatetimeTypeSuffix: (*Parser).parseDatetimeTypeSuffix,

	tree.OrderByClause: (*Parser).parseOrderByClause,
	tree.OrderByItem:   (*Parser).parseOrderByItem,
	tree.Subquery:      (*Parser).parseSubquery,
	tree.LobItem:       (*Parser).parseLobItem,
	tree.LobItems:      (*Parser).parseLobItems,
	tree.LobItemList:   (*Parser).parseLobItemList,

	tree.Select:                  (*Parser).parseSelect,
	tree.SelectList:              (*Parser).parseSelectList,
	tree.SelectItem:              (*Parser).parseSelectItem,
	tree.FromClause:              (*Parser).parseFromClause,
	tree.TableReference:          (*Parser).parseTableReference,
	tree.WhereClause:             (*Parser).parseWhereClause,
	tree.GroupByClause:           (*Parser).parseGroupByClause,
	tree.HavingClause:            (*Parser).parseHavingClause,
	tree.HierarchicalQueryClause: (*Parser).parseHierarchicalQueryClause,
	tree.JoinClause:              (*Parser).parseJoinClause,
}

// Production describes one grammar rule for display.
type Production struct {
	Kind         tree.Kind
	Name         string
	Group        tree.Group
	Alternatives []string
}

var alternatives = map[tree.Kind][]string{
	tree.ParameterMarker:     {"?", ":name"},
	tree.Literals:            {"stringLiterals", "numberLiterals", "dateTimeLiterals", "hexadecimalLiterals", "bitValueLiterals", "booleanLiterals", "nullValueLiterals"},
	tree.StringLiterals:      {"STRING", "NSTRING"},
	tree.NumberLiterals:      {"-? (INT | DECIMAL)"},
	tree.DateTimeLiterals:    {"(DATE | TIME | TIMESTAMP) STRING", "{ identifier STRING }", "INTERVAL STRING field (( INT ))? (TO field (( INT ))?)?"},
	tree.HexadecimalLiterals: {"HEX"},
	tree.BitValueLiterals:    {"BIT"},
	tree.BooleanLiterals:     {"TRUE", "FALSE"},
	tree.NullValueLiterals:   {"NULL"},

	tree.Identifier:         {"IDENT", "QUOTED_IDENT", "unreservedWord"},
	tree.UnreservedWord:     {"non-reserved keyword"},
	tree.SchemaName:         {"identifier"},
	tree.TableName:          {"(owner .)? name (@ dbLink)?"},
	tree.ViewName:           {"(owner .)? name"},
	tree.ColumnName:         {"(owner .)? (owner .)? name"},
	tree.IndexName:          {"(owner .)? name"},
	tree.ConstraintName:     {"identifier"},
	tree.SavepointName:      {"identifier"},
	tree.SynonymName:        {"(owner .)? name"},
	tree.FunctionName:       {"(owner .)? name"},
	tree.TypeName:           {"(owner .)? name"},
	tree.IndexTypeName:      {"(owner .)? name"},
	tree.TablespaceName:     {"identifier"},
	tree.RoleName:           {"identifier"},
	tree.DbLink:             {"identifier (. identifier)*"},
	tree.Owner:              {"identifier"},
	tree.Name:               {"identifier"},
	tree.Alias:              {"identifier", "STRING"},
	tree.AttributeName:      {"oracleId"},
	tree.OracleID:           {"identifier (. identifier)*"},
	tree.ColumnNames:        {"(? columnName (, columnName)* )?"},
	tree.TableNames:         {"(? tableName (, tableName)* )?"},
	tree.IgnoredIdentifier:  {"identifier (. identifier)?"},
	tree.IgnoredIdentifiers: {"ignoredIdentifier (, ignoredIdentifier)*"},

	tree.Expr:                   {"expr (OR | XOR) expr", "expr (AND | &&) expr", "notOperator expr", "booleanPrimary"},
	tree.LogicalOperator:        {"OR", "XOR", "AND", "&&"},
	tree.NotOperator:            {"NOT", "!"},
	tree.BooleanPrimary:         {"booleanPrimary IS NOT? (TRUE | FALSE | UNKNOWN | NULL)", "booleanPrimary <=> predicate", "booleanPrimary comparisonOperator predicate", "booleanPrimary comparisonOperator (ALL | ANY | SOME) (subquery | exprList)", "(PRIOR | CONNECT_BY_ROOT) predicate", "predicate"},
	tree.ComparisonOperator:     {"=", "<>", "!=", "^=", "<", ">", "<=", ">=", "<=>"},
	tree.Predicate:              {"bitExpr NOT? IN (subquery | ( expr (, expr)* ))", "bitExpr NOT? BETWEEN bitExpr AND predicate", "bitExpr NOT? LIKE simpleExpr (ESCAPE simpleExpr)?", "bitExpr"},
	tree.BitExpr:                {"bitExpr (| | ^ | & | << | >> | + | - | '||' | * | / | % | MOD | **) bitExpr", "simpleExpr"},
	tree.SimpleExpr:             {"literals", "(+ | - | ~ | ! | BINARY) simpleExpr", "parameterMarker", "caseExpression", "EXISTS subquery", "ROW ( exprs )", "subquery", "( exprs )", "privateExprOfDb", "objectAccessExpression", "{ identifier expr }", "constructorExpr", "functionCall", "pseudoColumn", "columnName (+)?"},
	tree.Exprs:                  {"expr (, expr)*"},
	tree.ExprList:               {"( exprs )"},
	tree.SimpleExprs:            {"simpleExpr (, simpleExpr)*"},
	tree.PseudoColumn:           {"ROWNUM", "LEVEL", "ROWID", "SYSDATE", "SYSTIMESTAMP", "USER", "UID"},
	tree.PrivateExprOfDb:        {"intervalExpression"},
	tree.IntervalExpression:     {"( expr - expr ) DAY (( INT ))? TO SECOND (( INT ))?", "( expr - expr ) YEAR (( INT ))? TO MONTH"},
	tree.ObjectAccessExpression: {"( exprs ) . attributeName"},
	tree.ConstructorExpr:        {"NEW typeName ( exprs? )"},

	tree.FunctionCall:            {"aggregationFunction", "specialFunction", "regularFunction"},
	tree.AggregationFunction:     {"aggregationFunctionName ( distinct? (* | exprs)? ) (WITHIN GROUP ( orderByClause ))? analyticClause?"},
	tree.AggregationFunctionName: {"MAX", "MIN", "SUM", "COUNT", "AVG"},
	tree.Distinct:                {"DISTINCT", "UNIQUE", "ALL"},
	tree.AnalyticClause:          {"OVER identifier", "OVER ( (PARTITION BY exprs)? orderByClause? ((ROWS | RANGE) frame)? )"},
	tree.SpecialFunction:         {"castFunction", "charFunction", "treatFunction", "TRIM ( ((LEADING | TRAILING | BOTH) expr? FROM)? expr )", "EXTRACT ( field FROM expr )"},
	tree.CastFunction:            {"CAST ( expr AS dataType )"},
	tree.CharFunction:            {"CHAR ( exprs (USING ignoredIdentifier)? )"},
	tree.TreatFunction:           {"TREAT ( expr AS REF? dataTypeName )"},
	tree.RegularFunction:         {"regularFunctionName ( distinct? (* | (name =>)? expr (, (name =>)? expr)*)? ) (WITHIN GROUP ( orderByClause ))? analyticClause?"},
	tree.RegularFunctionName:     {"(owner .)? (owner .)? name"},

	tree.CaseExpression:   {"CASE (simpleCaseExpr | searchedCaseExpr) caseElse? END"},
	tree.SimpleCaseExpr:   {"expr caseWhen+"},
	tree.SearchedCaseExpr: {"caseWhen+"},
	tree.CaseWhen:         {"WHEN expr THEN expr"},
	tree.CaseElse:         {"ELSE expr"},

	tree.DataType:           {"dataTypeName dataTypeLength? datetimeTypeSuffix?", "specialDatatype"},
	tree.DataTypeName:       {"LONG RAW?", "DOUBLE PRECISION", "NATIONAL (CHAR | CHARACTER) VARYING?", "(CHAR | CHARACTER) VARYING", "INTERVAL (YEAR | DAY)", "built-in type name", "typeName"},
	tree.DataTypeLength:     {"( (INT | *) (, -? INT)? (CHAR | BYTE)? )"},
	tree.SpecialDatatype:    {"columnName % (TYPE | ROWTYPE)"},
	tree.DatetimeTypeSuffix: {"WITH LOCAL? TIME ZONE", "TO MONTH", "TO SECOND (( INT ))?"},

	tree.OrderByClause: {"ORDER SIBLINGS? BY orderByItem (, orderByItem)*"},
	tree.OrderByItem:   {"expr (ASC | DESC)? (NULLS (FIRST | LAST))?"},
	tree.Subquery:      {"( select )"},
	tree.LobItem:       {"columnName"},
	tree.LobItems:      {"lobItem (, lobItem)*"},
	tree.LobItemList:   {"( lobItems )"},

	tree.Select:                  {"queryBlock ((UNION ALL? | INTERSECT | MINUS) queryBlock)* orderByClause? (OFFSET n ROWS)? (FETCH (FIRST | NEXT) n? ROWS (ONLY | WITH TIES))?"},
	tree.SelectList:              {"*", "selectItem (, selectItem)*"},
	tree.SelectItem:              {"tableName . *", "expr (AS? alias)?"},
	tree.FromClause:              {"FROM tableReference (, tableReference)*"},
	tree.TableReference:          {"(subquery | tableName) (AS? alias)? joinClause*"},
	tree.WhereClause:             {"WHERE expr"},
	tree.GroupByClause:           {"GROUP BY exprs"},
	tree.HavingClause:            {"HAVING expr"},
	tree.HierarchicalQueryClause: {"CONNECT BY NOCYCLE? expr (START WITH expr)?", "START WITH expr CONNECT BY NOCYCLE? expr"},
	tree.JoinClause:              {"(INNER | CROSS | NATURAL? (LEFT | RIGHT | FULL) OUTER?)? JOIN tableReference (ON expr | USING columnNames)?"},
}

// Grammar returns every production in rule declaration order.
func Grammar() []Production {
	out := make([]Production, 0, len(rules))
	for _, k := range tree.RuleKinds() {
		if _, ok := rules[k]; !ok {
			continue
		}
		out = append(out, Production{
			Kind:         k,
			Name:         k.String(),
			Group:        k.Group(),
			Alternatives: slices.Clone(alternatives[k]),
		})
	}
	return out
}

// Lookup returns the production for a rule name.
func Lookup(name string) (Production, bool) {
	k, ok := tree.KindByName(name)
	if !ok {
		return Production{}, false
	}
	if _, ok := rules[k]; !ok {
		return Production{}, false
	}
	return Production{Kind: k, Name: k.String(), Group: k.Group(), Alternatives: slices.Clone(alternatives[k])}, true
}

// HasRule reports whether k can be used as a start rule.
func HasRule(k tree.Kind) bool {
	_, ok := rules[k]
	return ok
}
