package parser_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leapstack-labs/oraparse/pkg/parser"
	"github.com/leapstack-labs/oraparse/pkg/tree"
)

func TestGrammarCoversEveryRule(t *testing.T) {
	prods := parser.Grammar()
	require.Len(t, prods, len(tree.RuleKinds()))

	for _, p := range prods {
		assert.True(t, parser.HasRule(p.Kind), p.Name)
		assert.NotEmpty(t, p.Alternatives, "%s has no alternatives", p.Name)
		assert.Equal(t, p.Kind.Group(), p.Group)
	}
}

func TestGrammarLookup(t *testing.T) {
	p, ok := parser.Lookup("booleanPrimary")
	require.True(t, ok)
	assert.Equal(t, tree.BooleanPrimary, p.Kind)
	assert.Equal(t, tree.GroupExpression, p.Group)

	_, ok = parser.Lookup("terminal")
	assert.False(t, ok)
	_, ok = parser.Lookup("nope")
	assert.False(t, ok)
}

func TestGrammarReturnsCopies(t *testing.T) {
	a := parser.Grammar()
	a[0].Alternatives[0] = "changed"

	b := parser.Grammar()
	assert.NotEqual(t, "changed", b[0].Alternatives[0])
}

// Every rule can serve as a start rule.
func TestEveryRuleStarts(t *testing.T) {
	samples := map[tree.Kind]string{
		tree.Literals:        "'x'",
		tree.Identifier:      "abc",
		tree.Expr:            "a = 1",
		tree.FunctionCall:    "f(1)",
		tree.CaseExpression:  "CASE WHEN a THEN b END",
		tree.DataType:        "NUMBER(5)",
		tree.OrderByClause:   "ORDER BY a",
		tree.Subquery:        "(SELECT 1 FROM dual)",
		tree.WhereClause:     "WHERE a > 0",
		tree.JoinClause:      "JOIN t ON a = b",
		tree.ParameterMarker: ":p",
		tree.AnalyticClause:  "OVER (PARTITION BY a)",
	}
	for k, sql := range samples {
		t.Run(k.String(), func(t *testing.T) {
			res, err := parser.Parse(sql, k)
			require.NoError(t, err)
			assert.Equal(t, k, res.Root.Kind)
		})
	}
}
