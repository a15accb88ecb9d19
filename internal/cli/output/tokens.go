package output

import (
	"fmt"
	"sort"

	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/leapstack-labs/oraparse/pkg/lexer"
	"github.com/leapstack-labs/oraparse/pkg/token"
)

// TokenView is the data form of one token or trivia item.
type TokenView struct {
	Type   string `json:"type" yaml:"type"`
	Text   string `json:"text" yaml:"text"`
	Value  string `json:"value,omitempty" yaml:"value,omitempty"`
	Line   int    `json:"line" yaml:"line"`
	Column int    `json:"column" yaml:"column"`
	Offset int    `json:"offset" yaml:"offset"`
	Class  string `json:"class,omitempty" yaml:"class,omitempty"` // reserved, keyword or hidden
}

// TokenViews flattens a stream, EOF excluded. With hidden, whitespace and
// comments are merged in source order.
func TokenViews(s *lexer.Stream, hidden bool) []TokenView {
	out := make([]TokenView, 0, s.Len())
	for _, tok := range s.Tokens {
		if tok.Type == token.EOF {
			continue
		}
		v := TokenView{
			Type:   tok.Type.String(),
			Text:   tok.Text,
			Line:   tok.Span.Start.Line,
			Column: tok.Span.Start.Column,
			Offset: tok.Span.Start.Offset,
		}
		if tok.Value != tok.Text {
			v.Value = tok.Value
		}
		switch {
		case tok.Type.IsReserved():
			v.Class = "reserved"
		case tok.Type.IsKeyword():
			v.Class = "keyword"
		}
		out = append(out, v)
	}
	if hidden {
		for _, h := range s.Hidden {
			out = append(out, TokenView{
				Type:   h.Kind.String(),
				Text:   h.Text,
				Line:   h.Span.Start.Line,
				Column: h.Span.Start.Column,
				Offset: h.Span.Start.Offset,
				Class:  "hidden",
			})
		}
		sort.SliceStable(out, func(i, j int) bool { return out[i].Offset < out[j].Offset })
	}
	return out
}

// Tokens renders the token list of s.
func (r *Renderer) Tokens(s *lexer.Stream, hidden bool) error {
	views := TokenViews(s, hidden)
	if r.structured() {
		return r.Encode(views)
	}

	t := table.NewWriter()
	t.SetOutputMirror(r.out)
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"#", "Type", "Text", "Value", "Pos", "Class"})
	for i, v := range views {
		typ := v.Type
		switch v.Class {
		case "reserved", "keyword":
			typ = r.styles.Keyword.Render(typ)
		case "hidden":
			typ = r.styles.Muted.Render(typ)
		}
		t.AppendRow(table.Row{i + 1, typ, fmt.Sprintf("%q", v.Text), v.Value, fmt.Sprintf("%d:%d", v.Line, v.Column), v.Class})
	}
	t.Render()
	r.Printf("(%d tokens)\n", s.Len())
	return nil
}
