package tree

import "fmt"

// Kind identifies the grammar rule a node was produced by. Terminal and
// ErrorNode are the two leaf-level kinds.
type Kind int

// Rule kinds, grouped by Group.
const (
	Invalid Kind = iota
	Terminal
	ErrorNode

	literalBeg
	ParameterMarker
	Literals
	StringLiterals
	NumberLiterals
	DateTimeLiterals
	HexadecimalLiterals
	BitValueLiterals
	BooleanLiterals
	NullValueLiterals
	literalEnd

	nameBeg
	Identifier
	UnreservedWord
	SchemaName
	TableName
	ViewName
	ColumnName
	IndexName
	ConstraintName
	SavepointName
	SynonymName
	FunctionName
	TypeName
	IndexTypeName
	TablespaceName
	RoleName
	DbLink
	Owner
	Name
	Alias
	AttributeName
	OracleID
	ColumnNames
	TableNames
	IgnoredIdentifier
	IgnoredIdentifiers
	nameEnd

	exprBeg
	Expr
	LogicalOperator
	NotOperator
	BooleanPrimary
	ComparisonOperator
	Predicate
	BitExpr
	SimpleExpr
	Exprs
	ExprList
	SimpleExprs
	PseudoColumn
	PrivateExprOfDb
	IntervalExpression
	ObjectAccessExpression
	ConstructorExpr
	exprEnd

	functionBeg
	FunctionCall
	AggregationFunction
	AggregationFunctionName
	Distinct
	AnalyticClause
	SpecialFunction
	CastFunction
	CharFunction
	TreatFunction
	RegularFunction
	RegularFunctionName
	functionEnd

	caseBeg
	CaseExpression
	SimpleCaseExpr
	SearchedCaseExpr
	CaseWhen
	CaseElse
	caseEnd

	dataTypeBeg
	DataType
	DataTypeName
	DataTypeLength
	SpecialDatatype
	DatetimeTypeSuffix
	dataTypeEnd

	clauseBeg
	OrderByClause
	OrderByItem
	Subquery
	LobItem
	LobItems
	LobItemList
	clauseEnd

	queryBeg
	Select
	SelectList
	SelectItem
	FromClause
	TableReference
	WhereClause
	GroupByClause
	HavingClause
	HierarchicalQueryClause
	JoinClause
	queryEnd

	kindCount
)

var kindNames = [kindCount]string{
	Invalid:   "invalid",
	Terminal:  "terminal",
	ErrorNode: "error",

	ParameterMarker:     "parameterMarker",
	Literals:            "literals",
	StringLiterals:      "stringLiterals",
	NumberLiterals:      "numberLiterals",
	DateTimeLiterals:    "dateTimeLiterals",
	HexadecimalLiterals: "hexadecimalLiterals",
	BitValueLiterals:    "bitValueLiterals",
	BooleanLiterals:     "booleanLiterals",
	NullValueLiterals:   "nullValueLiterals",

	Identifier:         "identifier",
	UnreservedWord:     "unreservedWord",
	SchemaName:         "schemaName",
	TableName:          "tableName",
	ViewName:           "viewName",
	ColumnName:         "columnName",
	IndexName:          "indexName",
	ConstraintName:     "constraintName",
	SavepointName:      "savepointName",
	SynonymName:        "synonymName",
	FunctionName:       "functionName",
	TypeName:           "typeName",
	IndexTypeName:      "indexTypeName",
	TablespaceName:     "tablespaceName",
	RoleName:           "roleName",
	DbLink:             "dbLink",
	Owner:              "owner",
	Name:               "name",
	Alias:              "alias",
	AttributeName:      "attributeName",
	OracleID:           "oracleId",
	ColumnNames:        "columnNames",
	TableNames:         "tableNames",
	IgnoredIdentifier:  "ignoredIdentifier",
	IgnoredIdentifiers: "ignoredIdentifiers",

	Expr:                   "expr",
	LogicalOperator:        "logicalOperator",
	NotOperator:            "notOperator",
	BooleanPrimary:         "booleanPrimary",
	ComparisonOperator:     "comparisonOperator",
	Predicate:              "predicate",
	BitExpr:                "bitExpr",
	SimpleExpr:             "simpleExpr",
	Exprs:                  "exprs",
	ExprList:               "exprList",
	SimpleExprs:            "simpleExprs",
	PseudoColumn:           "pseudoColumn",
	PrivateExprOfDb:        "privateExprOfDb",
	IntervalExpression:     "intervalExpression",
	ObjectAccessExpression: "objectAccessExpression",
	ConstructorExpr:        "constructorExpr",

	FunctionCall:            "functionCall",
	AggregationFunction:     "aggregationFunction",
	AggregationFunctionName: "aggregationFunctionName",
	Distinct:                "distinct",
	AnalyticClause:          "analyticClause",
	SpecialFunction:         "specialFunction",
	CastFunction:            "castFunction",
	CharFunction:            "charFunction",
	TreatFunction:           "treatFunction",
	RegularFunction:         "regularFunction",
	RegularFunctionName:     "regularFunctionName",

	CaseExpression:   "caseExpression",
	SimpleCaseExpr:   "simpleCaseExpr",
	SearchedCaseExpr: "searchedCaseExpr",
	CaseWhen:         "caseWhen",
	CaseElse:         "caseElse",

	DataType:           "dataType",
	DataTypeName:       "dataTypeName",
	DataTypeLength:     "dataTypeLength",
	SpecialDatatype:    "specialDatatype",
	DatetimeTypeSuffix: "datetimeTypeSuffix",

	OrderByClause: "orderByClause",
	OrderByItem:   "orderByItem",
	Subquery:      "subquery",
	LobItem:       "lobItem",
	LobItems:      "lobItems",
	LobItemList:   "lobItemList",

	Select:                  "select",
	SelectList:              "selectList",
	SelectItem:              "selectItem",
	FromClause:              "fromClause",
	TableReference:          "tableReference",
	WhereClause:             "whereClause",
	GroupByClause:           "groupByClause",
	HavingClause:            "havingClause",
	HierarchicalQueryClause: "hierarchicalQueryClause",
	JoinClause:              "joinClause",
}

var kindsByName = func() map[string]Kind {
	m := make(map[string]Kind, kindCount)
	for k, name := range kindNames {
		if name != "" && Kind(k).IsRule() {
			m[name] = Kind(k)
		}
	}
	return m
}()

// String returns the rule name, e.g. "booleanPrimary".
func (k Kind) String() string {
	if k >= 0 && k < kindCount && kindNames[k] != "" {
		return kindNames[k]
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// IsRule reports whether k names a grammar rule, as opposed to a leaf kind.
func (k Kind) IsRule() bool {
	return k.Group() != GroupInvalid && k != Terminal && k != ErrorNode
}

// KindByName resolves a rule name as produced by String.
func KindByName(name string) (Kind, bool) {
	k, ok := kindsByName[name]
	return k, ok
}

// RuleKinds returns every rule kind in declaration order.
func RuleKinds() []Kind {
	out := make([]Kind, 0, kindCount)
	for k := Kind(0); k < kindCount; k++ {
		if k.IsRule() {
			out = append(out, k)
		}
	}
	return out
}

// Group is a logical family of rule kinds. Visitors dispatch on it.
type Group int

// Rule groups.
const (
	GroupInvalid Group = iota
	GroupTerminal
	GroupError
	GroupLiteral
	GroupName
	GroupExpression
	GroupFunction
	GroupCase
	GroupDataType
	GroupClause
	GroupQuery
)

var groupNames = [...]string{
	GroupInvalid:    "invalid",
	GroupTerminal:   "terminal",
	GroupError:      "error",
	GroupLiteral:    "literal",
	GroupName:       "name",
	GroupExpression: "expression",
	GroupFunction:   "function",
	GroupCase:       "case",
	GroupDataType:   "dataType",
	GroupClause:     "clause",
	GroupQuery:      "query",
}

func (g Group) String() string {
	if g >= 0 && int(g) < len(groupNames) {
		return groupNames[g]
	}
	return fmt.Sprintf("Group(%d)", int(g))
}

// Group returns the logical group of k.
func (k Kind) Group() Group {
	switch {
	case k == Terminal:
		return GroupTerminal
	case k == ErrorNode:
		return GroupError
	case k > literalBeg && k < literalEnd:
		return GroupLiteral
	case k > nameBeg && k < nameEnd:
		return GroupName
	case k > exprBeg && k < exprEnd:
		return GroupExpression
	case k > functionBeg && k < functionEnd:
		return GroupFunction
	case k > caseBeg && k < caseEnd:
		return GroupCase
	case k > dataTypeBeg && k < dataTypeEnd:
		return GroupDataType
	case k > clauseBeg && k < clauseEnd:
		return GroupClause
	case k > queryBeg && k < queryEnd:
		return GroupQuery
	default:
		return GroupInvalid
	}
}
