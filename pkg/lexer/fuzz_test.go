package lexer_test

import (
	"testing"

	"github.com/leapstack-labs/oraparse/pkg/lexer"
	"github.com/leapstack-labs/oraparse/pkg/token"
)

// FuzzTokenize checks that lexing never panics, always terminates, and that
// a successful stream rebuilds its source exactly.
func FuzzTokenize(f *testing.F) {
	seeds := []string{
		"SELECT * FROM emp",
		"a.b = 1 AND c > 2",
		"'O''Brien'",
		"q'[x]' N'y' X'1F' B'01' 0x1F 0b1 5.5e10 .5",
		"CAST(a AS VARCHAR2(10)) || :b",
		"/*+ hint */ -- comment\n x",
		"\"quoted\"\"id\"",
		"'unterminated",
		"/* open",
		"1e+",
		"größe <=> €",
	}
	for _, s := range seeds {
		f.Add(s)
	}

	f.Fuzz(func(t *testing.T, input string) {
		s, err := lexer.Tokenize(input)
		if err != nil {
			return
		}
		if len(s.Tokens) == 0 || s.Tokens[len(s.Tokens)-1].Type != token.EOF {
			t.Fatalf("stream for %q does not end with EOF", input)
		}
		prev := -1
		for _, tok := range s.Tokens[:len(s.Tokens)-1] {
			if tok.Span.Start.Offset <= prev {
				t.Fatalf("offsets not increasing at %v", tok)
			}
			if tok.Text == "" {
				t.Fatalf("empty token %v", tok)
			}
			prev = tok.Span.Start.Offset
		}
		if got := s.Reconstruct(); got != input {
			t.Fatalf("reconstruct mismatch:\n got %q\nwant %q", got, input)
		}
	})
}
