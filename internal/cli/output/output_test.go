package output

import (
	"bytes"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/leapstack-labs/oraparse/internal/check"
	"github.com/leapstack-labs/oraparse/pkg/lexer"
	"github.com/leapstack-labs/oraparse/pkg/parser"
	"github.com/leapstack-labs/oraparse/pkg/token"
	"github.com/leapstack-labs/oraparse/pkg/tree"
)

func newTestRenderer(mode Mode) (*Renderer, *bytes.Buffer, *bytes.Buffer) {
	var out, errOut bytes.Buffer
	return NewRenderer(&out, &errOut, mode, "never"), &out, &errOut
}

func TestEffectiveMode(t *testing.T) {
	r, _, _ := newTestRenderer(ModeAuto)
	assert.Equal(t, ModeText, r.EffectiveMode())
	r, _, _ = newTestRenderer("")
	assert.Equal(t, ModeText, r.EffectiveMode())
	r, _, _ = newTestRenderer(ModeYAML)
	assert.Equal(t, ModeYAML, r.EffectiveMode())
}

func TestColorSelection(t *testing.T) {
	var buf bytes.Buffer
	assert.True(t, NewRenderer(&buf, &buf, ModeText, "always").Color())
	assert.False(t, NewRenderer(&buf, &buf, ModeText, "never").Color())
	assert.False(t, NewRenderer(&buf, &buf, ModeText, "auto").Color(), "a buffer is not a terminal")
}

func TestTokensTable(t *testing.T) {
	s, err := lexer.Tokenize("SELECT name -- who\nFROM t")
	require.NoError(t, err)

	r, out, _ := newTestRenderer(ModeText)
	require.NoError(t, r.Tokens(s, false))
	text := out.String()
	assert.Contains(t, text, "SELECT")
	assert.Contains(t, text, "reserved")
	assert.Contains(t, text, "2:1")
	assert.Contains(t, text, "(4 tokens)")
	assert.NotContains(t, text, "LINE_COMMENT")

	out.Reset()
	require.NoError(t, r.Tokens(s, true))
	assert.Contains(t, out.String(), "LINE_COMMENT")
}

func TestTokenViews(t *testing.T) {
	s, err := lexer.Tokenize("a /* c */ 'x''y'")
	require.NoError(t, err)

	views := TokenViews(s, true)
	require.Len(t, views, 5)
	assert.Equal(t, []string{"IDENT", "WHITESPACE", "BLOCK_COMMENT", "WHITESPACE", "STRING"},
		[]string{views[0].Type, views[1].Type, views[2].Type, views[3].Type, views[4].Type})
	assert.Equal(t, "x'y", views[4].Value)
	assert.Empty(t, views[0].Value)
	assert.Equal(t, "hidden", views[2].Class)
}

func TestTokensJSON(t *testing.T) {
	s, err := lexer.Tokenize("a AND b")
	require.NoError(t, err)

	r, out, _ := newTestRenderer(ModeJSON)
	require.NoError(t, r.Tokens(s, false))

	var views []TokenView
	require.NoError(t, json.Unmarshal(out.Bytes(), &views))
	require.Len(t, views, 3)
	assert.Equal(t, TokenView{Type: "AND", Text: "AND", Line: 1, Column: 3, Offset: 2, Class: "reserved"}, views[1])
}

func TestTreeModes(t *testing.T) {
	res, err := parser.Parse("a = 1", tree.Expr)
	require.NoError(t, err)

	t.Run("text", func(t *testing.T) {
		r, out, _ := newTestRenderer(ModeText)
		require.NoError(t, r.Tree(tree.Expr, res))
		assert.Equal(t, tree.Indent(res.Root), out.String())
	})

	t.Run("sexpr", func(t *testing.T) {
		r, out, _ := newTestRenderer(ModeSexpr)
		require.NoError(t, r.Tree(tree.Expr, res))
		assert.Equal(t, tree.Format(res.Root)+"\n", out.String())
	})

	t.Run("yaml", func(t *testing.T) {
		r, out, _ := newTestRenderer(ModeYAML)
		require.NoError(t, r.Tree(tree.Expr, res))
		var v ParseView
		require.NoError(t, yaml.Unmarshal(out.Bytes(), &v))
		assert.Equal(t, "expr", v.Rule)
		assert.Equal(t, "expr", v.Tree.Rule)
		assert.Empty(t, v.Errors)
	})

	t.Run("table", func(t *testing.T) {
		r, out, _ := newTestRenderer(ModeTable)
		require.NoError(t, r.Tree(tree.Expr, res))
		assert.Contains(t, out.String(), "comparisonOperator")
		assert.Contains(t, out.String(), "INT")
	})
}

func TestParseViewErrors(t *testing.T) {
	res, err := parser.Parse("f(1 +, 2)", tree.Expr, parser.WithRecovery(5))
	require.Error(t, err)

	v := NewParseView(tree.Expr, res)
	require.Len(t, v.Errors, 1)
	assert.Equal(t, 1, v.Errors[0].Line)
	assert.Equal(t, 6, v.Errors[0].Column)
	assert.NotNil(t, v.Tree)
}

func TestKeywords(t *testing.T) {
	r, out, _ := newTestRenderer(ModeText)
	require.NoError(t, r.Keywords(token.Keywords()))
	assert.Contains(t, out.String(), "SELECT")
	assert.Contains(t, out.String(), "69 reserved")

	r, out, _ = newTestRenderer(ModeJSON)
	require.NoError(t, r.Keywords([]token.KeywordEntry{{Spelling: "END"}, {Spelling: "FROM", Reserved: true}}))
	var views []KeywordView
	require.NoError(t, json.Unmarshal(out.Bytes(), &views))
	assert.Equal(t, []KeywordView{{Spelling: "END"}, {Spelling: "FROM", Reserved: true}}, views)
}

func TestGrammar(t *testing.T) {
	p, ok := parser.Lookup("caseElse")
	require.True(t, ok)

	r, out, _ := newTestRenderer(ModeText)
	require.NoError(t, r.Grammar([]parser.Production{p}))
	assert.Contains(t, out.String(), "caseElse : ")
	assert.Contains(t, out.String(), p.Group.String())

	r, out, _ = newTestRenderer(ModeJSON)
	require.NoError(t, r.Grammar([]parser.Production{p}))
	var views []ProductionView
	require.NoError(t, json.Unmarshal(out.Bytes(), &views))
	require.Len(t, views, 1)
	assert.Equal(t, "caseElse", views[0].Name)
}

func TestSnippet(t *testing.T) {
	r, _, _ := newTestRenderer(ModeText)
	src := "SELECT a\nFROM )"
	assert.Equal(t, "   2 | FROM )\n     |      ^\n", r.Snippet(src, 2, 6))
	assert.Equal(t, "   1 | \tx\n     | \t^\n", r.Snippet("\tx", 1, 2))
	assert.Empty(t, r.Snippet(src, 3, 1))
}

func TestErrors(t *testing.T) {
	src := "a )\nb"
	_, err := parser.Parse(src, tree.Expr)
	require.Error(t, err)

	r, _, errOut := newTestRenderer(ModeText)
	r.Errors(err, src)
	assert.Contains(t, errOut.String(), "Error: parse error at line 1, column 3")
	assert.Contains(t, errOut.String(), "   1 | a )\n     |   ^\n")

	errOut.Reset()
	r.Errors(errors.Join(errors.New("first"), errors.New("second")), "")
	assert.Equal(t, "Error: first\nError: second\n", errOut.String())
}

func TestLocate(t *testing.T) {
	_, err := lexer.Tokenize("x = 'open")
	loc := Locate(err)
	assert.Equal(t, ErrorLocation{Message: "unterminated string literal", Line: 1, Column: 5, Offset: 4}, loc)

	assert.Equal(t, ErrorLocation{Message: "boom"}, Locate(errors.New("boom")))
}

func TestCheckResults(t *testing.T) {
	results := []check.FileResult{
		{Path: "a.sql", Statements: 2},
		{Path: "b.sql", Statements: 1, Diagnostics: []check.Diagnostic{{Statement: 1, Line: 1, Column: 8, Message: "unexpected end of input"}}},
	}

	r, out, _ := newTestRenderer(ModeText)
	require.NoError(t, r.CheckResults(results))
	assert.Contains(t, out.String(), "ok a.sql (2 statements)")
	assert.Contains(t, out.String(), "FAIL b.sql")
	assert.Contains(t, out.String(), "b.sql:1:8: unexpected end of input")
	assert.Contains(t, out.String(), "2 files, 1 failed, 1 errors")

	r, out, _ = newTestRenderer(ModeJSON)
	require.NoError(t, r.CheckResults(results))
	var decoded []check.FileResult
	require.NoError(t, json.Unmarshal(out.Bytes(), &decoded))
	assert.Equal(t, results, decoded)
}
