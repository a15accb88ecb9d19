package tree

import (
	"strconv"
	"strings"
)

// Format renders n as an S-expression, one rule per parenthesised group,
// terminals as their source text:
//
//	(expr (booleanPrimary ...) (logicalOperator AND) (booleanPrimary ...))
//
// Error nodes render as (error ...) around the skipped tokens.
func Format(n *Node) string {
	var b strings.Builder
	format(&b, n)
	return b.String()
}

func format(b *strings.Builder, n *Node) {
	if n == nil {
		b.WriteString("nil")
		return
	}
	if n.Kind == Terminal {
		writeTerminal(b, n)
		return
	}
	b.WriteByte('(')
	b.WriteString(n.Kind.String())
	for _, c := range n.Children {
		b.WriteByte(' ')
		format(b, c)
	}
	b.WriteByte(')')
}

func writeTerminal(b *strings.Builder, n *Node) {
	text := n.Token.Text
	if text == "" || strings.ContainsAny(text, " ()\t\n") {
		text = strconv.Quote(text)
	}
	b.WriteString(text)
}

// Indent renders n one node per line, indented by depth. Used for human
// output where an S-expression gets too wide.
func Indent(n *Node) string {
	var b strings.Builder
	indent(&b, n, 0)
	return b.String()
}

func indent(b *strings.Builder, n *Node, depth int) {
	b.WriteString(strings.Repeat("  ", depth))
	if n.Kind == Terminal {
		writeTerminal(b, n)
		b.WriteByte('\n')
		return
	}
	b.WriteString(n.Kind.String())
	b.WriteByte('\n')
	for _, c := range n.Children {
		indent(b, c, depth+1)
	}
}
