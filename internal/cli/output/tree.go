package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/leapstack-labs/oraparse/pkg/parser"
	"github.com/leapstack-labs/oraparse/pkg/token"
	"github.com/leapstack-labs/oraparse/pkg/tree"
)

// ParseView is the data form of a parse result.
type ParseView struct {
	Rule   string          `json:"rule" yaml:"rule"`
	Tree   *tree.View      `json:"tree" yaml:"tree"`
	Errors []ErrorLocation `json:"errors,omitempty" yaml:"errors,omitempty"`
}

// NewParseView converts a parse result.
func NewParseView(rule tree.Kind, res *parser.Result) ParseView {
	v := ParseView{Rule: rule.String()}
	if res == nil {
		return v
	}
	v.Tree = tree.NewView(res.Root)
	for _, e := range res.Errors {
		v.Errors = append(v.Errors, Locate(e))
	}
	return v
}

// Tree renders a parse result in the current mode.
func (r *Renderer) Tree(rule tree.Kind, res *parser.Result) error {
	switch r.EffectiveMode() {
	case ModeJSON, ModeYAML:
		return r.Encode(NewParseView(rule, res))
	case ModeSexpr:
		if res.Root != nil {
			r.Println(tree.Format(res.Root))
		}
		return nil
	case ModeTable:
		r.treeTable(res.Root)
		return nil
	}
	if res.Root != nil {
		_, _ = fmt.Fprint(r.out, r.indent(res.Root))
	}
	return nil
}

// indent is tree.Indent with styles applied.
func (r *Renderer) indent(n *tree.Node) string {
	var b strings.Builder
	var walk func(*tree.Node, int)
	walk = func(n *tree.Node, depth int) {
		b.WriteString(strings.Repeat("  ", depth))
		switch n.Kind {
		case tree.Terminal:
			b.WriteString(r.terminal(n.Token))
		case tree.ErrorNode:
			b.WriteString(r.styles.Error.Render(n.Kind.String()))
		default:
			b.WriteString(r.styles.Rule.Render(n.Kind.String()))
		}
		b.WriteByte('\n')
		for _, c := range n.Children {
			walk(c, depth+1)
		}
	}
	walk(n, 0)
	return b.String()
}

func (r *Renderer) terminal(tok *token.Token) string {
	switch {
	case tok.Type.IsKeyword():
		return r.styles.Keyword.Render(tok.Text)
	case tok.Type.IsLiteral() && !tok.Is(token.IDENT, token.QUOTED_IDENT):
		return r.styles.Literal.Render(tok.Text)
	default:
		return tok.Text
	}
}

func (r *Renderer) treeTable(root *tree.Node) {
	t := table.NewWriter()
	t.SetOutputMirror(r.out)
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"Node", "Token", "Pos"})
	var walk func(*tree.Node, int)
	walk = func(n *tree.Node, depth int) {
		pad := strings.Repeat("  ", depth)
		if n.Kind == tree.Terminal {
			t.AppendRow(table.Row{pad + n.Token.Text, n.Token.Type.String(), n.Span.Start.String()})
			return
		}
		t.AppendRow(table.Row{pad + n.Kind.String(), "", n.Span.Start.String()})
		for _, c := range n.Children {
			walk(c, depth+1)
		}
	}
	if root != nil {
		walk(root, 0)
	}
	t.Render()
}

// Formatted writes reformatted SQL, wrapped in a {"sql": ...} document in
// the data modes.
func (r *Renderer) Formatted(sql string) error {
	if r.structured() {
		return r.Encode(struct {
			SQL string `json:"sql" yaml:"sql"`
		}{sql})
	}
	_, err := io.WriteString(r.out, sql)
	return err
}
