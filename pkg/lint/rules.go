package lint

import (
	"fmt"
	"strconv"

	"github.com/leapstack-labs/oraparse/pkg/token"
	"github.com/leapstack-labs/oraparse/pkg/tree"
)

func init() {
	Register(DistinctWithGroupBy)
	Register(NullComparison)
	Register(NotInSubquery)
	Register(SelectStar)
	Register(OuterJoinOperator)
	Register(RownumComparison)
}

// DistinctWithGroupBy detects redundant DISTINCT with GROUP BY.
var DistinctWithGroupBy = RuleDef{
	ID:          "AM01",
	Name:        "ambiguous.distinct",
	Group:       "ambiguous",
	Description: "Using DISTINCT with GROUP BY is redundant.",
	Severity:    SeverityWarning,
	Check:       checkDistinctWithGroupBy,
}

// NullComparison detects = NULL and <> NULL, which never evaluate to true.
var NullComparison = RuleDef{
	ID:          "CV01",
	Name:        "convention.null_comparison",
	Group:       "convention",
	Description: "Comparisons with NULL should use IS NULL or IS NOT NULL.",
	Severity:    SeverityError,
	Check:       checkNullComparison,
}

// NotInSubquery detects NOT IN over a subquery.
var NotInSubquery = RuleDef{
	ID:          "AM02",
	Name:        "ambiguous.not_in_subquery",
	Group:       "ambiguous",
	Description: "NOT IN with a subquery matches nothing once the subquery yields a NULL.",
	Severity:    SeverityWarning,
	Check:       checkNotInSubquery,
}

// SelectStar detects SELECT * and table.* in select lists.
var SelectStar = RuleDef{
	ID:          "ST01",
	Name:        "structure.select_star",
	Group:       "structure",
	Description: "Select lists should name their columns.",
	Severity:    SeverityInfo,
	Check:       checkSelectStar,
}

// OuterJoinOperator detects the legacy (+) join marker.
var OuterJoinOperator = RuleDef{
	ID:          "OR01",
	Name:        "oracle.outer_join_operator",
	Group:       "oracle",
	Description: "The (+) outer join operator should be replaced by ANSI JOIN syntax.",
	Severity:    SeverityWarning,
	Check:       checkOuterJoinOperator,
}

// RownumComparison detects ROWNUM filters that can never match, such as
// ROWNUM > 1. ROWNUM is assigned as rows pass the filter, so the first
// candidate row always fails.
var RownumComparison = RuleDef{
	ID:          "OR02",
	Name:        "oracle.rownum_comparison",
	Group:       "oracle",
	Description: "ROWNUM compared with > n, >= n or = n above 1 never matches.",
	Severity:    SeverityError,
	Check:       checkRownumComparison,
}

func checkDistinctWithGroupBy(n *tree.Node) []string {
	if n.Kind != tree.Select || n.ChildOfKind(tree.GroupByClause) == nil {
		return nil
	}
	d := n.ChildOfKind(tree.Distinct)
	if d == nil || d.TerminalOf(token.ALL) != nil {
		return nil
	}
	return []string{"Using DISTINCT with GROUP BY is redundant; GROUP BY already produces unique rows"}
}

// comparison splits a binary comparison into its operands and operator.
func comparison(n *tree.Node) (left *tree.Node, op token.TokenType, right *tree.Node, ok bool) {
	if n.Kind != tree.BooleanPrimary || len(n.Children) != 3 || n.Children[1].Kind != tree.ComparisonOperator {
		return nil, 0, nil, false
	}
	toks := n.Children[1].Tokens()
	if len(toks) != 1 {
		return nil, 0, nil, false
	}
	return n.Children[0], toks[0].Type, n.Children[2], true
}

// single returns the only token under n.
func single(n *tree.Node) (token.Token, bool) {
	toks := n.Tokens()
	if len(toks) != 1 {
		return token.Token{}, false
	}
	return toks[0], true
}

func isToken(n *tree.Node, tt token.TokenType) bool {
	tok, ok := single(n)
	return ok && tok.Type == tt
}

func checkNullComparison(n *tree.Node) []string {
	left, op, right, ok := comparison(n)
	if !ok || (!isToken(left, token.NULL) && !isToken(right, token.NULL)) {
		return nil
	}
	switch op {
	case token.EQ:
		return []string{"comparison with NULL is never true; use IS NULL"}
	case token.NE:
		return []string{"comparison with NULL is never true; use IS NOT NULL"}
	default:
		return []string{"comparison with NULL is never true"}
	}
}

func checkNotInSubquery(n *tree.Node) []string {
	if n.Kind != tree.Predicate || len(n.Children) != 4 {
		return nil
	}
	c := n.Children
	if c[1].IsTerminal() && c[1].Token.Type == token.NOT &&
		c[2].IsTerminal() && c[2].Token.Type == token.IN &&
		c[3].Kind == tree.Subquery {
		return []string{"NOT IN over a subquery matches no rows if the subquery returns NULL; consider NOT EXISTS"}
	}
	return nil
}

func checkSelectStar(n *tree.Node) []string {
	switch n.Kind {
	case tree.SelectList:
		if first := n.Child(0); first != nil && first.IsTerminal() && first.Token.Type == token.STAR {
			return []string{"SELECT * returns every column; list the columns explicitly"}
		}
	case tree.SelectItem:
		if last := n.Child(len(n.Children) - 1); last != nil && last.IsTerminal() && last.Token.Type == token.STAR {
			return []string{"qualified wildcard returns every column; list the columns explicitly"}
		}
	}
	return nil
}

func checkOuterJoinOperator(n *tree.Node) []string {
	if n.Kind != tree.SimpleExpr || len(n.Children) != 4 || n.Children[0].Kind != tree.ColumnName {
		return nil
	}
	if isToken(n.Children[2], token.PLUS) {
		return []string{"(+) outer join operator; use LEFT or RIGHT OUTER JOIN"}
	}
	return nil
}

func checkRownumComparison(n *tree.Node) []string {
	left, op, right, ok := comparison(n)
	if !ok || !isToken(left, token.ROWNUM) {
		return nil
	}
	lit, ok := single(right)
	if !ok || lit.Type != token.INT_LIT {
		return nil
	}
	v, err := strconv.ParseInt(lit.Text, 10, 64)
	if err != nil {
		return nil
	}
	never := false
	switch op {
	case token.GT:
		never = v >= 1
	case token.GE, token.EQ:
		never = v > 1
	}
	if !never {
		return nil
	}
	return []string{fmt.Sprintf("ROWNUM %s %d never matches a row", op, v)}
}
