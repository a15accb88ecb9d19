// Package token defines the lexical vocabulary of the Oracle SQL front end:
// token kinds, source positions, hidden trivia and the keyword table.
//
// Non-keyword kinds are declared here. Keyword kinds (IDs 1000 and up) are
// generated from keywords.yaml into keywords_gen.go. The enumeration is
// closed; nothing is registered at runtime.
package token

import "fmt"

// TokenType represents the type of a lexical token.
//
//nolint:revive // Accept stutter as token.TokenType is clear and widely used
type TokenType int32

//nolint:revive // ALL_CAPS names follow SQL token conventions
const (
	// Special tokens
	EOF TokenType = iota
	ILLEGAL

	literalBeg
	IDENT        // identifier, $ and # allowed after the first character
	QUOTED_IDENT // "Mixed Case"
	STRING_LIT   // 'hello', q'[hello]'
	NSTRING_LIT  // N'hello'
	INT_LIT      // 123
	DECIMAL_LIT  // 1.5, .5, 5.5e10, 1.5f
	HEX_LIT      // 0x1F, X'1F'
	BIT_LIT      // 0b101, B'101'
	BIND_VAR     // :name, :1
	literalEnd

	operatorBeg
	PLUS      // +
	MINUS     // -
	STAR      // *
	SLASH     // /
	PERCENT   // %
	CARET     // ^
	TILDE     // ~
	BANG      // !
	PIPE      // |
	AMPERSAND // &
	DPIPE     // ||
	DAMP      // &&
	LSHIFT    // <<
	RSHIFT    // >>
	DSTAR     // **
	EQ        // =
	NE        // <>, != or ^=
	LT        // <
	GT        // >
	LE        // <=
	GE        // >=
	SAFE_EQ   // <=>
	DOT       // .
	DOTDOT    // ..
	COMMA     // ,
	SEMICOLON // ;
	COLON     // :
	ASSIGN    // :=
	ASSOC     // =>
	ARROW     // ->
	LPAREN    // (
	RPAREN    // )
	LBRACE    // {
	RBRACE    // }
	LBRACKET  // [
	RBRACKET  // ]
	QUESTION  // ?
	AT_SIGN   // @
	HASH      // #
	BACKSLASH // \
	operatorEnd
)

// String returns the string representation of the token type.
func (t TokenType) String() string {
	if t.IsKeyword() {
		return keywordEntries[t-keywordBeg-1].Spelling
	}
	if name, ok := tokenNames[t]; ok {
		return name
	}
	return fmt.Sprintf("TokenType(%d)", t)
}

// tokenNames maps non-keyword token types to their display form.
var tokenNames = map[TokenType]string{
	EOF:     "EOF",
	ILLEGAL: "ILLEGAL",

	IDENT:        "IDENT",
	QUOTED_IDENT: "QUOTED_IDENT",
	STRING_LIT:   "STRING",
	NSTRING_LIT:  "NSTRING",
	INT_LIT:      "INT",
	DECIMAL_LIT:  "DECIMAL",
	HEX_LIT:      "HEX",
	BIT_LIT:      "BIT",
	BIND_VAR:     "BIND_VAR",

	PLUS:      "+",
	MINUS:     "-",
	STAR:      "*",
	SLASH:     "/",
	PERCENT:   "%",
	CARET:     "^",
	TILDE:     "~",
	BANG:      "!",
	PIPE:      "|",
	AMPERSAND: "&",
	DPIPE:     "||",
	DAMP:      "&&",
	LSHIFT:    "<<",
	RSHIFT:    ">>",
	DSTAR:     "**",
	EQ:        "=",
	NE:        "<>",
	LT:        "<",
	GT:        ">",
	LE:        "<=",
	GE:        ">=",
	SAFE_EQ:   "<=>",
	DOT:       ".",
	DOTDOT:    "..",
	COMMA:     ",",
	SEMICOLON: ";",
	COLON:     ":",
	ASSIGN:    ":=",
	ASSOC:     "=>",
	ARROW:     "->",
	LPAREN:    "(",
	RPAREN:    ")",
	LBRACE:    "{",
	RBRACE:    "}",
	LBRACKET:  "[",
	RBRACKET:  "]",
	QUESTION:  "?",
	AT_SIGN:   "@",
	HASH:      "#",
	BACKSLASH: "\\",
}

// IsLiteral reports whether t is an identifier or literal kind.
func (t TokenType) IsLiteral() bool {
	return t > literalBeg && t < literalEnd
}

// IsOperator reports whether t is a symbol kind.
func (t TokenType) IsOperator() bool {
	return t > operatorBeg && t < operatorEnd
}

// IsKeyword reports whether t is a keyword kind.
func (t TokenType) IsKeyword() bool {
	return t > keywordBeg && t < keywordEnd
}

// IsReserved reports whether t is a reserved keyword.
func (t TokenType) IsReserved() bool {
	return t.IsKeyword() && keywordEntries[t-keywordBeg-1].Reserved
}

// IsUnreserved reports whether t is a keyword that may also serve as a name.
func (t TokenType) IsUnreserved() bool {
	return t.IsKeyword() && !keywordEntries[t-keywordBeg-1].Reserved
}

// Token represents a lexical token.
//
// Text is the exact source slice. Value is the decoded payload: string
// contents with escapes resolved, quoted identifiers without their quotes,
// hex and bit digits without prefix, bind variable names without the colon.
// For every other kind Value equals Text.
type Token struct {
	Type  TokenType
	Text  string
	Value string
	Span  Span
}

// Pos returns the start position of the token.
func (t Token) Pos() Position {
	return t.Span.Start
}

// Is reports whether the token has one of the given types.
func (t Token) Is(types ...TokenType) bool {
	for _, tt := range types {
		if t.Type == tt {
			return true
		}
	}
	return false
}

func (t Token) String() string {
	if t.Type == EOF {
		return "EOF"
	}
	return fmt.Sprintf("%s %q", t.Type, t.Text)
}
