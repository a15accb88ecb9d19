package tree

// View is a plain-data copy of a tree, shaped for JSON and YAML output.
// Rule nodes carry Rule and Children; terminals carry Token and Text.
type View struct {
	Rule     string  `json:"rule,omitempty" yaml:"rule,omitempty"`
	Token    string  `json:"token,omitempty" yaml:"token,omitempty"`
	Text     string  `json:"text,omitempty" yaml:"text,omitempty"`
	Line     int     `json:"line" yaml:"line"`
	Column   int     `json:"column" yaml:"column"`
	Offset   int     `json:"offset" yaml:"offset"`
	End      int     `json:"end" yaml:"end"`
	Children []*View `json:"children,omitempty" yaml:"children,omitempty"`
}

// NewView converts n. A nil node yields nil.
func NewView(n *Node) *View {
	if n == nil {
		return nil
	}
	v := &View{
		Line:   n.Span.Start.Line,
		Column: n.Span.Start.Column,
		Offset: n.Span.Start.Offset,
		End:    n.Span.End.Offset,
	}
	if n.Kind == Terminal {
		v.Token = n.Token.Type.String()
		v.Text = n.Token.Text
		return v
	}
	v.Rule = n.Kind.String()
	v.Children = make([]*View, 0, len(n.Children))
	for _, c := range n.Children {
		v.Children = append(v.Children, NewView(c))
	}
	return v
}
