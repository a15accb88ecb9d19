package lexer

import (
	"strings"

	"github.com/leapstack-labs/oraparse/pkg/token"
)

// Stream is the result of tokenizing one source text.
type Stream struct {
	Source string
	Tokens []token.Token  // terminated by EOF
	Hidden []token.Trivia // whitespace and comments, in source order
}

// Len returns the number of tokens excluding EOF.
func (s *Stream) Len() int {
	if n := len(s.Tokens); n > 0 && s.Tokens[n-1].Type == token.EOF {
		return n - 1
	}
	return len(s.Tokens)
}

// Comments returns the hidden trivia that are comments or hints.
func (s *Stream) Comments() []token.Trivia {
	var out []token.Trivia
	for _, h := range s.Hidden {
		if h.IsComment() {
			out = append(out, h)
		}
	}
	return out
}

// Reconstruct merges tokens and trivia back into text. For a stream
// produced by Tokenize it returns Source exactly.
func (s *Stream) Reconstruct() string {
	var b strings.Builder
	b.Grow(len(s.Source))

	i, j := 0, 0
	for i < len(s.Tokens) || j < len(s.Hidden) {
		if i < len(s.Tokens) && s.Tokens[i].Type == token.EOF {
			i++
			continue
		}
		switch {
		case j >= len(s.Hidden):
			b.WriteString(s.Tokens[i].Text)
			i++
		case i >= len(s.Tokens) || s.Hidden[j].Span.Start.Offset < s.Tokens[i].Span.Start.Offset:
			b.WriteString(s.Hidden[j].Text)
			j++
		default:
			b.WriteString(s.Tokens[i].Text)
			i++
		}
	}
	return b.String()
}

// Tokenize lexes the whole input. On failure it returns the tokens read so
// far together with the *LexError.
func Tokenize(input string) (*Stream, error) {
	l := New(input)
	s := &Stream{Source: input}
	for {
		tok, err := l.Next()
		if err != nil {
			s.Hidden = l.hidden
			return s, err
		}
		s.Tokens = append(s.Tokens, tok)
		if tok.Type == token.EOF {
			break
		}
	}
	s.Hidden = l.hidden
	return s, nil
}

// Split breaks the stream into statements at semicolons outside
// parentheses. Each part keeps the original positions, ends with its own
// EOF token and shares Source. Empty statements are dropped; the hidden
// trivia are not carried over.
func (s *Stream) Split() []*Stream {
	var (
		out   []*Stream
		start int
		depth int
	)
	flush := func(end int) {
		if end > start {
			out = append(out, s.part(start, end))
		}
	}

	for i, tok := range s.Tokens {
		switch tok.Type {
		case token.LPAREN:
			depth++
		case token.RPAREN:
			if depth > 0 {
				depth--
			}
		case token.SEMICOLON:
			if depth == 0 {
				flush(i)
				start = i + 1
			}
		case token.EOF:
			flush(i)
			return out
		}
	}
	flush(len(s.Tokens))
	return out
}

func (s *Stream) part(start, end int) *Stream {
	toks := make([]token.Token, end-start, end-start+1)
	copy(toks, s.Tokens[start:end])
	last := toks[len(toks)-1].Span.End
	toks = append(toks, token.Token{Type: token.EOF, Span: token.Span{Start: last, End: last}})
	return &Stream{Source: s.Source, Tokens: toks}
}
