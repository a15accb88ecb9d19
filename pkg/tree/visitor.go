package tree

// Visitor computes a value of type T per node. Accept selects the method
// from the node's Group, so an implementation handles families of rules
// and switches on Kind inside a method when it needs finer detail.
type Visitor[T any] interface {
	VisitLiteral(n *Node) T
	VisitName(n *Node) T
	VisitExpression(n *Node) T
	VisitFunction(n *Node) T
	VisitCase(n *Node) T
	VisitDataType(n *Node) T
	VisitClause(n *Node) T
	VisitQuery(n *Node) T
	VisitTerminal(n *Node) T
	VisitError(n *Node) T
}

// Accept dispatches n to the Visitor method of its group.
func Accept[T any](v Visitor[T], n *Node) T {
	switch n.Kind.Group() {
	case GroupLiteral:
		return v.VisitLiteral(n)
	case GroupName:
		return v.VisitName(n)
	case GroupExpression:
		return v.VisitExpression(n)
	case GroupFunction:
		return v.VisitFunction(n)
	case GroupCase:
		return v.VisitCase(n)
	case GroupDataType:
		return v.VisitDataType(n)
	case GroupClause:
		return v.VisitClause(n)
	case GroupQuery:
		return v.VisitQuery(n)
	case GroupTerminal:
		return v.VisitTerminal(n)
	default:
		return v.VisitError(n)
	}
}

// VisitChildren accepts every child of n in order and folds the results
// with merge, starting from the zero value.
func VisitChildren[T any](v Visitor[T], n *Node, merge func(acc, next T) T) T {
	var acc T
	for i, c := range n.Children {
		r := Accept(v, c)
		if i == 0 {
			acc = r
			continue
		}
		acc = merge(acc, r)
	}
	return acc
}

// BaseVisitor returns the zero value for every node. Embed it to get
// defaults for the groups a visitor does not care about.
type BaseVisitor[T any] struct{}

// VisitLiteral returns the zero value.
func (BaseVisitor[T]) VisitLiteral(*Node) (zero T) { return }

// VisitName returns the zero value.
func (BaseVisitor[T]) VisitName(*Node) (zero T) { return }

// VisitExpression returns the zero value.
func (BaseVisitor[T]) VisitExpression(*Node) (zero T) { return }

// VisitFunction returns the zero value.
func (BaseVisitor[T]) VisitFunction(*Node) (zero T) { return }

// VisitCase returns the zero value.
func (BaseVisitor[T]) VisitCase(*Node) (zero T) { return }

// VisitDataType returns the zero value.
func (BaseVisitor[T]) VisitDataType(*Node) (zero T) { return }

// VisitClause returns the zero value.
func (BaseVisitor[T]) VisitClause(*Node) (zero T) { return }

// VisitQuery returns the zero value.
func (BaseVisitor[T]) VisitQuery(*Node) (zero T) { return }

// VisitTerminal returns the zero value.
func (BaseVisitor[T]) VisitTerminal(*Node) (zero T) { return }

// VisitError returns the zero value.
func (BaseVisitor[T]) VisitError(*Node) (zero T) { return }
