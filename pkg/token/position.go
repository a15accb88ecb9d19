package token

import "fmt"

// Position locates a byte in the source. Line and Column start at 1 and
// Column counts runes; Offset is the 0-based byte index. The zero value
// means "no position".
type Position struct {
	Line   int
	Column int
	Offset int
}

// IsValid reports whether p was set by the lexer.
func (p Position) IsValid() bool { return p.Line > 0 }

func (p Position) String() string {
	return fmt.Sprintf("%d:%d", p.Line, p.Column)
}

// Span is the half-open byte range [Start, End).
type Span struct {
	Start Position
	End   Position
}

// Contains reports whether offset falls inside s.
func (s Span) Contains(offset int) bool {
	return offset >= s.Start.Offset && offset < s.End.Offset
}

func (s Span) IsValid() bool { return s.Start.IsValid() && s.End.IsValid() }

// Len returns the span length in bytes.
func (s Span) Len() int {
	return s.End.Offset - s.Start.Offset
}

// Cover returns the smallest span containing both s and o. An invalid
// span is ignored.
func (s Span) Cover(o Span) Span {
	if !s.IsValid() {
		return o
	}
	if !o.IsValid() {
		return s
	}
	out := s
	if o.Start.Offset < out.Start.Offset {
		out.Start = o.Start
	}
	if o.End.Offset > out.End.Offset {
		out.End = o.End
	}
	return out
}
