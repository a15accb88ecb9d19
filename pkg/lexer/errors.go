package lexer

import (
	"errors"
	"fmt"

	"github.com/leapstack-labs/oraparse/pkg/token"
)

// Failure reasons. A *LexError wraps exactly one of them.
var (
	ErrUnterminatedString     = errors.New("unterminated string literal")
	ErrUnterminatedIdentifier = errors.New("unterminated quoted identifier")
	ErrUnterminatedComment    = errors.New("unterminated block comment")
	ErrEmptyIdentifier        = errors.New("empty quoted identifier")
	ErrUnexpectedChar         = errors.New("unexpected character")
	ErrMalformedNumber        = errors.New("malformed number literal")
)

// LexError represents a lexical analysis error.
type LexError struct {
	Pos     token.Position
	Reason  error
	Message string
}

func (e *LexError) Error() string {
	return fmt.Sprintf("lexer error at line %d, column %d: %s", e.Pos.Line, e.Pos.Column, e.Description())
}

// Description returns the message without the position prefix.
func (e *LexError) Description() string {
	if e.Message != "" {
		return e.Reason.Error() + ": " + e.Message
	}
	return e.Reason.Error()
}

// Unwrap returns the failure reason.
func (e *LexError) Unwrap() error {
	return e.Reason
}
