// Package tree defines the parse tree produced by the parser and the two
// traversal forms over it: a Listener driven by Walk, and a generic
// Visitor that returns a value per node.
//
// A tree is built once per parse and owned by the caller. Nothing here
// mutates a tree after construction.
package tree

import (
	"github.com/leapstack-labs/oraparse/pkg/token"
)

// Node is one node of a parse tree. Rule nodes have children; terminal
// nodes carry the token they wrap; error nodes hold the terminals skipped
// during recovery.
type Node struct {
	Kind     Kind
	Token    *token.Token // set for Terminal only
	Children []*Node
	Span     token.Span
}

// NewTerminal wraps a token in a terminal node.
func NewTerminal(tok token.Token) *Node {
	return &Node{Kind: Terminal, Token: &tok, Span: tok.Span}
}

// NewRule creates a rule node and computes its span from the children.
func NewRule(kind Kind, children ...*Node) *Node {
	n := &Node{Kind: kind}
	for _, c := range children {
		n.Add(c)
	}
	return n
}

// Add appends a child and widens the span to cover it. Nil children are
// ignored.
func (n *Node) Add(c *Node) {
	if c == nil {
		return
	}
	n.Children = append(n.Children, c)
	n.Span = n.Span.Cover(c.Span)
}

// IsLeaf reports whether n has no children.
func (n *Node) IsLeaf() bool {
	return len(n.Children) == 0
}

// IsTerminal reports whether n wraps a token.
func (n *Node) IsTerminal() bool {
	return n.Kind == Terminal
}

// Child returns the i-th child or nil.
func (n *Node) Child(i int) *Node {
	if i < 0 || i >= len(n.Children) {
		return nil
	}
	return n.Children[i]
}

// ChildOfKind returns the first direct child of the given kind.
func (n *Node) ChildOfKind(k Kind) *Node {
	for _, c := range n.Children {
		if c.Kind == k {
			return c
		}
	}
	return nil
}

// ChildrenOfKind returns all direct children of the given kind.
func (n *Node) ChildrenOfKind(k Kind) []*Node {
	var out []*Node
	for _, c := range n.Children {
		if c.Kind == k {
			out = append(out, c)
		}
	}
	return out
}

// TerminalOf returns the first direct terminal child whose token has the
// given type.
func (n *Node) TerminalOf(tt token.TokenType) *Node {
	for _, c := range n.Children {
		if c.Kind == Terminal && c.Token.Type == tt {
			return c
		}
	}
	return nil
}

// Tokens returns the tokens under n in source order.
func (n *Node) Tokens() []token.Token {
	var out []token.Token
	var collect func(*Node)
	collect = func(x *Node) {
		if x.Token != nil {
			out = append(out, *x.Token)
			return
		}
		for _, c := range x.Children {
			collect(c)
		}
	}
	collect(n)
	return out
}

// Text returns the source text covered by n, comments included.
func (n *Node) Text(src string) string {
	if !n.Span.IsValid() || n.Span.End.Offset > len(src) {
		return ""
	}
	return src[n.Span.Start.Offset:n.Span.End.Offset]
}

// Find returns every node under n, n included, for which match is true,
// in depth-first order.
func (n *Node) Find(match func(*Node) bool) []*Node {
	var out []*Node
	var walk func(*Node)
	walk = func(x *Node) {
		if match(x) {
			out = append(out, x)
		}
		for _, c := range x.Children {
			walk(c)
		}
	}
	walk(n)
	return out
}
