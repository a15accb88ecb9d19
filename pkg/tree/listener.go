package tree

// Listener receives notifications while Walk traverses a tree.
type Listener interface {
	EnterRule(n *Node)
	ExitRule(n *Node)
	VisitTerminal(n *Node)
	VisitErrorNode(n *Node)
}

// BaseListener implements Listener with no-ops. Embed it and override the
// methods of interest.
type BaseListener struct{}

// EnterRule does nothing.
func (BaseListener) EnterRule(*Node) {}

// ExitRule does nothing.
func (BaseListener) ExitRule(*Node) {}

// VisitTerminal does nothing.
func (BaseListener) VisitTerminal(*Node) {}

// VisitErrorNode does nothing.
func (BaseListener) VisitErrorNode(*Node) {}

// Walk traverses n depth-first, left to right. Rule nodes get EnterRule
// before their children and ExitRule after. An error node is reported once
// through VisitErrorNode; the tokens it swallowed are not reported again.
func Walk(l Listener, n *Node) {
	if n == nil {
		return
	}
	switch n.Kind {
	case Terminal:
		l.VisitTerminal(n)
	case ErrorNode:
		l.VisitErrorNode(n)
	default:
		l.EnterRule(n)
		for _, c := range n.Children {
			Walk(l, c)
		}
		l.ExitRule(n)
	}
}
