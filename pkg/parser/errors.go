package parser

import (
	"errors"
	"fmt"
	"strings"

	"github.com/leapstack-labs/oraparse/pkg/token"
)

var (
	// ErrUnexpectedToken is the reason wrapped by every *ParseError.
	ErrUnexpectedToken = errors.New("unexpected token")
	// ErrUnknownRule is returned for a start rule the grammar does not define.
	ErrUnknownRule = errors.New("unknown start rule")
)

// ParseError represents a parsing error with position information.
type ParseError struct {
	Pos      token.Position
	Expected []string // alternatives, quoted for tokens and bare for rule names
	Found    token.Token
	Message  string // overrides the generated description when set
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse error at line %d, column %d: %s", e.Pos.Line, e.Pos.Column, e.Description())
}

// Description returns the message without the position prefix.
func (e *ParseError) Description() string {
	if e.Message != "" {
		return e.Message
	}
	var b strings.Builder
	b.WriteString("unexpected ")
	b.WriteString(describe(e.Found))
	if len(e.Expected) > 0 {
		b.WriteString(", expected ")
		b.WriteString(joinAlternatives(e.Expected))
	}
	return b.String()
}

// Unwrap returns ErrUnexpectedToken.
func (e *ParseError) Unwrap() error {
	return ErrUnexpectedToken
}

func describe(tok token.Token) string {
	switch {
	case tok.Type == token.EOF:
		return "end of input"
	case tok.Type.IsReserved():
		return fmt.Sprintf("reserved word %q", tok.Text)
	default:
		return fmt.Sprintf("%q", tok.Text)
	}
}

func joinAlternatives(alts []string) string {
	switch len(alts) {
	case 1:
		return alts[0]
	case 2:
		return alts[0] + " or " + alts[1]
	default:
		return strings.Join(alts[:len(alts)-1], ", ") + " or " + alts[len(alts)-1]
	}
}

func quoteType(t token.TokenType) string {
	if t == token.EOF {
		return "end of input"
	}
	return `"` + t.String() + `"`
}
