package format_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leapstack-labs/oraparse/pkg/format"
	"github.com/leapstack-labs/oraparse/pkg/lexer"
	"github.com/leapstack-labs/oraparse/pkg/parser"
	"github.com/leapstack-labs/oraparse/pkg/tree"
)

func TestSource(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "clauses on their own lines",
			input: "select a,b from t where a=1",
			want:  "SELECT a, b\nFROM t\nWHERE a = 1\n",
		},
		{
			name:  "function call and alias",
			input: "select count(*) as n from emp group by dept having count(*)>1",
			want:  "SELECT COUNT(*) AS n\nFROM emp\nGROUP BY dept\nHAVING COUNT(*) > 1\n",
		},
		{
			name:  "subquery indented",
			input: "select a from t where a in (select b from u)",
			want:  "SELECT a\nFROM t\nWHERE a IN (\n  SELECT b\n  FROM u\n)\n",
		},
		{
			name:  "set operator",
			input: "select a from t union all select b from u order by 1",
			want:  "SELECT a\nFROM t\nUNION ALL\nSELECT b\nFROM u\nORDER BY 1\n",
		},
		{
			name:  "outer join marker",
			input: "select a from t, u where t.id = u.id (+)",
			want:  "SELECT a\nFROM t, u\nWHERE t.id = u.id(+)\n",
		},
		{
			name:  "hint and comment kept",
			input: "select /*+ full(t) */ a -- first\nfrom t",
			want:  "SELECT /*+ full(t) */ a\n-- first\nFROM t\n",
		},
		{
			name:  "statements terminated",
			input: "select a from t; select b from u",
			want:  "SELECT a\nFROM t;\n\nSELECT b\nFROM u;\n",
		},
		{
			name:  "single statement with semicolon",
			input: "select 1 from t;",
			want:  "SELECT 1\nFROM t;\n",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := format.Source(tt.input, tree.Select)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSourceIdempotent(t *testing.T) {
	input := "select a, count(*) from t where a not in (select b from u where c = 'x') group by a"
	once, err := format.Source(input, tree.Select)
	require.NoError(t, err)
	twice, err := format.Source(once, tree.Select)
	require.NoError(t, err)
	assert.Equal(t, once, twice)
}

func TestSourceErrors(t *testing.T) {
	_, err := format.Source("select from", tree.Select)
	var pe *parser.ParseError
	require.ErrorAs(t, err, &pe)

	_, err = format.Source("select 'open", tree.Select)
	var le *lexer.LexError
	require.ErrorAs(t, err, &le)
}

func TestNode(t *testing.T) {
	res, err := parser.Parse("a+b*2 between 1 and 10", tree.Expr)
	require.NoError(t, err)
	assert.Equal(t, "a + b * 2 BETWEEN 1 AND 10\n", format.Node(res.Root))
}
