package format

import (
	"strings"

	"github.com/leapstack-labs/oraparse/pkg/lexer"
	"github.com/leapstack-labs/oraparse/pkg/parser"
	"github.com/leapstack-labs/oraparse/pkg/token"
	"github.com/leapstack-labs/oraparse/pkg/tree"
)

// Node formats a single tree without comments.
func Node(n *tree.Node) string {
	p := newPrinter(nil)
	tree.Walk(p, n)
	return p.String()
}

// Source parses every statement of sql with the start rule and reprints
// them, each terminated by a semicolon when the input had more than one
// statement or ended with one. The first lexical or syntax error stops
// formatting and is returned.
func Source(sql string, start tree.Kind, opts ...parser.Option) (string, error) {
	s, err := lexer.Tokenize(sql)
	if err != nil {
		return "", err
	}

	parts := s.Split()
	terminate := len(parts) > 1 || endsWithSemicolon(s)

	var (
		b        strings.Builder
		comments = s.Comments()
	)
	for i, part := range parts {
		res, err := parser.ParseTokens(part, start, opts...)
		if err != nil {
			return "", err
		}
		p := newPrinter(comments)
		tree.Walk(p, res.Root)
		comments = p.comments

		out := strings.TrimRight(p.String(), "\n")
		if terminate {
			out += ";"
		}
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(out)
		b.WriteString("\n")
	}

	if len(comments) > 0 {
		p := newPrinter(comments)
		p.flushComments(len(sql) + 1)
		b.WriteString(p.String())
	}
	return b.String(), nil
}

func endsWithSemicolon(s *lexer.Stream) bool {
	n := s.Len()
	return n > 0 && s.Tokens[n-1].Type == token.SEMICOLON
}
