package tree_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leapstack-labs/oraparse/pkg/token"
	"github.com/leapstack-labs/oraparse/pkg/tree"
)

func tok(tt token.TokenType, text string, offset int) token.Token {
	return token.Token{
		Type:  tt,
		Text:  text,
		Value: text,
		Span: token.Span{
			Start: token.Position{Line: 1, Column: offset + 1, Offset: offset},
			End:   token.Position{Line: 1, Column: offset + 1 + len(text), Offset: offset + len(text)},
		},
	}
}

// sample builds the tree for "a AND )" with the parenthesis swallowed by
// an error node.
func sample() *tree.Node {
	left := tree.NewRule(tree.BooleanPrimary, tree.NewTerminal(tok(token.IDENT, "a", 0)))
	op := tree.NewRule(tree.LogicalOperator, tree.NewTerminal(tok(token.AND, "AND", 2)))
	bad := tree.NewRule(tree.ErrorNode, tree.NewTerminal(tok(token.RPAREN, ")", 6)))
	return tree.NewRule(tree.Expr, left, op, bad)
}

type recorder struct {
	tree.BaseListener
	events []string
}

func (r *recorder) EnterRule(n *tree.Node)      { r.events = append(r.events, "enter "+n.Kind.String()) }
func (r *recorder) ExitRule(n *tree.Node)       { r.events = append(r.events, "exit "+n.Kind.String()) }
func (r *recorder) VisitTerminal(n *tree.Node)  { r.events = append(r.events, "term "+n.Token.Text) }
func (r *recorder) VisitErrorNode(n *tree.Node) { r.events = append(r.events, "error") }

func TestWalkOrder(t *testing.T) {
	r := &recorder{}
	tree.Walk(r, sample())

	assert.Equal(t, []string{
		"enter expr",
		"enter booleanPrimary",
		"term a",
		"exit booleanPrimary",
		"enter logicalOperator",
		"term AND",
		"exit logicalOperator",
		"error",
		"exit expr",
	}, r.events)
}

func TestWalkBaseListener(t *testing.T) {
	assert.NotPanics(t, func() {
		tree.Walk(tree.BaseListener{}, sample())
		tree.Walk(tree.BaseListener{}, nil)
	})
}

func TestNodeSpanAndHelpers(t *testing.T) {
	n := sample()
	assert.Equal(t, 0, n.Span.Start.Offset)
	assert.Equal(t, 7, n.Span.End.Offset)
	assert.Equal(t, "a AND )", n.Text("a AND )"))

	assert.Equal(t, tree.LogicalOperator, n.Child(1).Kind)
	assert.Nil(t, n.Child(5))
	assert.NotNil(t, n.ChildOfKind(tree.ErrorNode))
	assert.Len(t, n.ChildrenOfKind(tree.BooleanPrimary), 1)
	assert.NotNil(t, n.Child(1).TerminalOf(token.AND))

	toks := n.Tokens()
	require.Len(t, toks, 3)
	assert.Equal(t, ")", toks[2].Text)

	terms := n.Find(func(x *tree.Node) bool { return x.IsTerminal() })
	assert.Len(t, terms, 3)
}

func TestFormat(t *testing.T) {
	assert.Equal(t, `(expr (booleanPrimary a) (logicalOperator AND) (error ")"))`, tree.Format(sample()))

	out := tree.Indent(sample())
	lines := strings.Split(strings.TrimSpace(out), "\n")
	assert.Equal(t, "expr", lines[0])
	assert.Equal(t, "  booleanPrimary", lines[1])
	assert.Equal(t, "    a", lines[2])
}

func TestKindGroups(t *testing.T) {
	tests := []struct {
		kind  tree.Kind
		group tree.Group
		name  string
	}{
		{tree.Terminal, tree.GroupTerminal, "terminal"},
		{tree.ErrorNode, tree.GroupError, "error"},
		{tree.NumberLiterals, tree.GroupLiteral, "numberLiterals"},
		{tree.ColumnName, tree.GroupName, "columnName"},
		{tree.BooleanPrimary, tree.GroupExpression, "booleanPrimary"},
		{tree.IntervalExpression, tree.GroupExpression, "intervalExpression"},
		{tree.CastFunction, tree.GroupFunction, "castFunction"},
		{tree.CaseWhen, tree.GroupCase, "caseWhen"},
		{tree.DataTypeName, tree.GroupDataType, "dataTypeName"},
		{tree.OrderByItem, tree.GroupClause, "orderByItem"},
		{tree.SelectItem, tree.GroupQuery, "selectItem"},
		{tree.Invalid, tree.GroupInvalid, "invalid"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.group, tt.kind.Group())
			assert.Equal(t, tt.name, tt.kind.String())
		})
	}
}

func TestKindByName(t *testing.T) {
	for _, k := range tree.RuleKinds() {
		got, ok := tree.KindByName(k.String())
		require.True(t, ok, k.String())
		assert.Equal(t, k, got)
		assert.NotEqual(t, tree.GroupInvalid, k.Group(), k.String())
	}
	_, ok := tree.KindByName("terminal")
	assert.False(t, ok)
	_, ok = tree.KindByName("nope")
	assert.False(t, ok)
}

// groupCounter counts nodes per group and sums children.
type groupCounter struct {
	tree.BaseVisitor[int]
	groups map[tree.Group]int
}

func (g *groupCounter) visit(n *tree.Node) int {
	g.groups[n.Kind.Group()]++
	return 1 + tree.VisitChildren[int](g, n, func(a, b int) int { return a + b })
}

func (g *groupCounter) VisitExpression(n *tree.Node) int { return g.visit(n) }
func (g *groupCounter) VisitTerminal(n *tree.Node) int   { return g.visit(n) }
func (g *groupCounter) VisitError(n *tree.Node) int      { return g.visit(n) }

func TestAcceptDispatch(t *testing.T) {
	g := &groupCounter{groups: map[tree.Group]int{}}
	total := tree.Accept[int](g, sample())

	assert.Equal(t, 7, total)
	assert.Equal(t, 3, g.groups[tree.GroupExpression])
	assert.Equal(t, 3, g.groups[tree.GroupTerminal])
	assert.Equal(t, 1, g.groups[tree.GroupError])
}

func TestBaseVisitorZero(t *testing.T) {
	var v tree.BaseVisitor[string]
	assert.Equal(t, "", tree.Accept[string](v, sample()))
}

func TestNewView(t *testing.T) {
	assert.Nil(t, tree.NewView(nil))

	v := tree.NewView(sample())
	require.NotNil(t, v)
	assert.Equal(t, "expr", v.Rule)
	assert.Equal(t, 0, v.Offset)
	assert.Equal(t, 7, v.End)
	require.Len(t, v.Children, 3)

	and := v.Children[1].Children[0]
	assert.Equal(t, "AND", and.Token)
	assert.Equal(t, "AND", and.Text)
	assert.Equal(t, 3, and.Column)
	assert.Empty(t, and.Rule)
	assert.Nil(t, and.Children)

	assert.Equal(t, "error", v.Children[2].Rule)
}
