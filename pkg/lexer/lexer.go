// Package lexer turns Oracle SQL text into a token stream.
//
// The lexer is a single forward pass over the input bytes with one
// character of lookahead (occasionally two). Whitespace and comments are
// not tokens; they are collected as trivia so the source can be rebuilt
// from the stream. The first error ends the stream: every later call to
// Next returns the same *LexError.
package lexer

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/leapstack-labs/oraparse/pkg/token"
)

// Lexer tokenizes SQL input.
type Lexer struct {
	input   string
	pos     int  // current position in input
	readPos int  // reading position (after current char)
	ch      byte // current char under examination
	line    int  // current line number (1-based)
	col     int  // current column number (1-based, in runes)

	hidden []token.Trivia
	err    error
}

// New creates a new Lexer for the given input.
func New(input string) *Lexer {
	l := &Lexer{
		input: input,
		line:  1,
	}
	l.readChar()
	return l
}

// Trivia returns the whitespace and comments consumed so far.
func (l *Lexer) Trivia() []token.Trivia {
	return l.hidden
}

// readChar advances to the next byte. Columns advance once per rune.
func (l *Lexer) readChar() {
	if l.pos >= len(l.input) && l.readPos > l.pos {
		return
	}
	if l.readPos > 0 && l.input[l.pos] == '\n' {
		l.line++
		l.col = 0
	}
	l.pos = l.readPos
	l.readPos++
	if l.pos >= len(l.input) {
		l.ch = 0
		l.col++
		return
	}
	l.ch = l.input[l.pos]
	if utf8.RuneStart(l.ch) {
		l.col++
	}
}

// peekChar returns the next character without advancing.
func (l *Lexer) peekChar() byte {
	return l.peekAt(1)
}

// peekAt returns the byte n positions ahead of the current one.
func (l *Lexer) peekAt(n int) byte {
	if l.pos+n >= len(l.input) {
		return 0
	}
	return l.input[l.pos+n]
}

func (l *Lexer) atEOF() bool {
	return l.pos >= len(l.input)
}

// currentPos returns the current position.
func (l *Lexer) currentPos() token.Position {
	return token.Position{
		Line:   l.line,
		Column: l.col,
		Offset: l.pos,
	}
}

// Next returns the next token. At the end of input it returns an EOF token
// whose span is empty.
func (l *Lexer) Next() (token.Token, error) {
	if l.err != nil {
		return token.Token{Type: token.ILLEGAL}, l.err
	}

	if err := l.skipTrivia(); err != nil {
		l.err = err
		return token.Token{Type: token.ILLEGAL}, err
	}

	start := l.currentPos()
	if l.atEOF() {
		return token.Token{Type: token.EOF, Span: token.Span{Start: start, End: start}}, nil
	}

	tok, err := l.scan(start)
	if err != nil {
		l.err = err
	}
	return tok, err
}

func (l *Lexer) scan(start token.Position) (token.Token, error) {
	ch := l.ch
	next := l.peekChar()

	switch {
	case ch == '\'':
		return l.readString(start, token.STRING_LIT)
	case ch == '"':
		return l.readQuotedIdentifier(start)
	case (ch == 'n' || ch == 'N') && next == '\'':
		l.readChar()
		return l.readString(start, token.NSTRING_LIT)
	case (ch == 'q' || ch == 'Q') && next == '\'':
		return l.readQuoteDelimited(start)
	case (ch == 'x' || ch == 'X') && next == '\'':
		return l.readQuotedDigits(start, token.HEX_LIT, isHexDigit)
	case (ch == 'b' || ch == 'B') && next == '\'':
		return l.readQuotedDigits(start, token.BIT_LIT, isBitDigit)
	case isDigit(ch) || ch == '.' && isDigit(next):
		return l.readNumber(start)
	case isIdentStart(ch):
		return l.readIdentifier(start), nil
	case ch >= utf8.RuneSelf:
		if r, _ := utf8.DecodeRuneInString(l.input[l.pos:]); unicode.IsLetter(r) {
			return l.readIdentifier(start), nil
		}
	}
	return l.readOperator(start)
}

// emit builds a token spanning from start to the current position.
func (l *Lexer) emit(tt token.TokenType, start token.Position, value string) token.Token {
	return token.Token{
		Type:  tt,
		Text:  l.input[start.Offset:l.pos],
		Value: value,
		Span:  token.Span{Start: start, End: l.currentPos()},
	}
}

func (l *Lexer) errorAt(pos token.Position, reason error, msg string) *LexError {
	return &LexError{Pos: pos, Reason: reason, Message: msg}
}

// skipTrivia consumes whitespace and comments, recording each run.
func (l *Lexer) skipTrivia() error {
	for !l.atEOF() {
		start := l.currentPos()
		switch {
		case isSpace(l.ch):
			for !l.atEOF() && isSpace(l.ch) {
				l.readChar()
			}
			l.addTrivia(token.Whitespace, start)
		case l.ch == '-' && l.peekChar() == '-':
			for !l.atEOF() && l.ch != '\n' {
				l.readChar()
			}
			l.addTrivia(token.LineComment, start)
		case l.ch == '/' && l.peekChar() == '*':
			kind := token.BlockComment
			if l.peekAt(2) == '+' {
				kind = token.Hint
			}
			l.readChar()
			l.readChar()
			for {
				if l.atEOF() {
					return l.errorAt(start, ErrUnterminatedComment, "")
				}
				if l.ch == '*' && l.peekChar() == '/' {
					l.readChar()
					l.readChar()
					break
				}
				l.readChar()
			}
			l.addTrivia(kind, start)
		default:
			return nil
		}
	}
	return nil
}

func (l *Lexer) addTrivia(kind token.TriviaKind, start token.Position) {
	l.hidden = append(l.hidden, token.Trivia{
		Kind: kind,
		Text: l.input[start.Offset:l.pos],
		Span: token.Span{Start: start, End: l.currentPos()},
	})
}

// readString reads a single-quoted string. The current char is the opening
// quote. A doubled quote stands for one quote; a backslash escapes the next
// character.
func (l *Lexer) readString(start token.Position, tt token.TokenType) (token.Token, error) {
	l.readChar()

	var b strings.Builder
	for {
		if l.atEOF() {
			return token.Token{Type: token.ILLEGAL}, l.errorAt(start, ErrUnterminatedString, "")
		}
		switch l.ch {
		case '\'':
			if l.peekChar() == '\'' {
				b.WriteByte('\'')
				l.readChar()
				l.readChar()
				continue
			}
			l.readChar()
			return l.emit(tt, start, b.String()), nil
		case '\\':
			l.readChar()
			if l.atEOF() {
				continue
			}
			b.WriteString(unescape(l.ch))
			l.readChar()
		default:
			b.WriteByte(l.ch)
			l.readChar()
		}
	}
}

// unescape decodes the character following a backslash.
func unescape(c byte) string {
	switch c {
	case 'n':
		return "\n"
	case 't':
		return "\t"
	case 'r':
		return "\r"
	case '0':
		return "\x00"
	case 'b':
		return "\b"
	case 'Z':
		return "\x1a"
	case '%', '_':
		// kept escaped for LIKE patterns
		return "\\" + string(c)
	default:
		return string(c)
	}
}

// readQuoteDelimited reads Oracle alternative quoting: q'[...]'. The body
// is taken verbatim up to the closing delimiter followed by a quote.
func (l *Lexer) readQuoteDelimited(start token.Position) (token.Token, error) {
	l.readChar() // q
	l.readChar() // '
	if l.atEOF() {
		return token.Token{Type: token.ILLEGAL}, l.errorAt(start, ErrUnterminatedString, "")
	}
	if isSpace(l.ch) {
		return token.Token{Type: token.ILLEGAL}, l.errorAt(l.currentPos(), ErrUnexpectedChar, "whitespace is not a quote delimiter")
	}

	closing := l.ch
	switch l.ch {
	case '[':
		closing = ']'
	case '{':
		closing = '}'
	case '(':
		closing = ')'
	case '<':
		closing = '>'
	}
	l.readChar()

	bodyStart := l.pos
	for {
		if l.atEOF() {
			return token.Token{Type: token.ILLEGAL}, l.errorAt(start, ErrUnterminatedString, "")
		}
		if l.ch == closing && l.peekChar() == '\'' {
			body := l.input[bodyStart:l.pos]
			l.readChar()
			l.readChar()
			return l.emit(token.STRING_LIT, start, body), nil
		}
		l.readChar()
	}
}

// readQuotedDigits reads X'1F' or B'101'.
func (l *Lexer) readQuotedDigits(start token.Position, tt token.TokenType, valid func(byte) bool) (token.Token, error) {
	l.readChar() // X or B
	l.readChar() // '
	digStart := l.pos
	for !l.atEOF() && l.ch != '\'' {
		if !valid(l.ch) {
			return token.Token{Type: token.ILLEGAL}, l.errorAt(start, ErrMalformedNumber, fmt.Sprintf("invalid digit %q", l.ch))
		}
		l.readChar()
	}
	if l.atEOF() {
		return token.Token{Type: token.ILLEGAL}, l.errorAt(start, ErrMalformedNumber, "missing closing quote")
	}
	digits := l.input[digStart:l.pos]
	l.readChar()
	return l.emit(tt, start, digits), nil
}

// readNumber reads integers, decimals, exponent forms and 0x / 0b literals.
func (l *Lexer) readNumber(start token.Position) (token.Token, error) {
	if l.ch == '0' {
		switch l.peekChar() {
		case 'x', 'X':
			return l.readPrefixedDigits(start, token.HEX_LIT, isHexDigit)
		case 'b', 'B':
			return l.readPrefixedDigits(start, token.BIT_LIT, isBitDigit)
		}
	}

	tt := token.INT_LIT
	for isDigit(l.ch) {
		l.readChar()
	}
	if l.ch == '.' && l.peekChar() != '.' {
		tt = token.DECIMAL_LIT
		l.readChar()
		for isDigit(l.ch) {
			l.readChar()
		}
	}

	if l.ch == 'e' || l.ch == 'E' {
		next := l.peekChar()
		switch {
		case isDigit(next):
			l.readChar()
		case (next == '+' || next == '-') && isDigit(l.peekAt(2)):
			l.readChar()
			l.readChar()
		case next == '+' || next == '-' || !isIdentPart(next):
			return token.Token{Type: token.ILLEGAL}, l.errorAt(start, ErrMalformedNumber, "exponent has no digits")
		}
		if isDigit(l.ch) {
			tt = token.DECIMAL_LIT
			for isDigit(l.ch) {
				l.readChar()
			}
		}
	}

	// binary float / double suffix
	switch l.ch {
	case 'f', 'F', 'd', 'D':
		if !isIdentPart(l.peekChar()) {
			tt = token.DECIMAL_LIT
			l.readChar()
		}
	}

	return l.emit(tt, start, l.input[start.Offset:l.pos]), nil
}

func (l *Lexer) readPrefixedDigits(start token.Position, tt token.TokenType, valid func(byte) bool) (token.Token, error) {
	l.readChar() // 0
	l.readChar() // x or b
	digStart := l.pos
	for valid(l.ch) {
		l.readChar()
	}
	if l.pos == digStart {
		return token.Token{Type: token.ILLEGAL}, l.errorAt(start, ErrMalformedNumber, "no digits after prefix")
	}
	if isIdentPart(l.ch) {
		return token.Token{Type: token.ILLEGAL}, l.errorAt(start, ErrMalformedNumber, fmt.Sprintf("invalid digit %q", l.ch))
	}
	return l.emit(tt, start, l.input[digStart:l.pos]), nil
}

// readIdentifier reads a bare word and resolves it against the keyword
// table.
func (l *Lexer) readIdentifier(start token.Position) token.Token {
	for !l.atEOF() {
		if l.ch < utf8.RuneSelf {
			if !isIdentPart(l.ch) {
				break
			}
			l.readChar()
			continue
		}
		r, size := utf8.DecodeRuneInString(l.input[l.pos:])
		if r == utf8.RuneError || !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			break
		}
		for i := 0; i < size; i++ {
			l.readChar()
		}
	}
	text := l.input[start.Offset:l.pos]
	return l.emit(token.LookupIdent(text), start, text)
}

// readQuotedIdentifier reads "name". A doubled quote stands for one quote.
func (l *Lexer) readQuotedIdentifier(start token.Position) (token.Token, error) {
	l.readChar()

	var b strings.Builder
	for {
		if l.atEOF() {
			return token.Token{Type: token.ILLEGAL}, l.errorAt(start, ErrUnterminatedIdentifier, "")
		}
		if l.ch == '"' {
			if l.peekChar() == '"' {
				b.WriteByte('"')
				l.readChar()
				l.readChar()
				continue
			}
			l.readChar()
			break
		}
		b.WriteByte(l.ch)
		l.readChar()
	}

	if b.Len() == 0 {
		return token.Token{Type: token.ILLEGAL}, l.errorAt(start, ErrEmptyIdentifier, "")
	}
	return l.emit(token.QUOTED_IDENT, start, b.String()), nil
}

// readOperator reads a symbol, longest spelling first.
func (l *Lexer) readOperator(start token.Position) (token.Token, error) {
	tt := token.ILLEGAL
	n := 1
	next := l.peekChar()

	switch l.ch {
	case '+':
		tt = token.PLUS
	case '-':
		tt, n = pick(next == '>', token.ARROW, token.MINUS)
	case '*':
		tt, n = pick(next == '*', token.DSTAR, token.STAR)
	case '/':
		tt = token.SLASH
	case '%':
		tt = token.PERCENT
	case '^':
		tt, n = pick(next == '=', token.NE, token.CARET)
	case '~':
		tt = token.TILDE
	case '!':
		tt, n = pick(next == '=', token.NE, token.BANG)
	case '|':
		tt, n = pick(next == '|', token.DPIPE, token.PIPE)
	case '&':
		tt, n = pick(next == '&', token.DAMP, token.AMPERSAND)
	case '<':
		switch next {
		case '=':
			if l.peekAt(2) == '>' {
				tt, n = token.SAFE_EQ, 3
			} else {
				tt, n = token.LE, 2
			}
		case '>':
			tt, n = token.NE, 2
		case '<':
			tt, n = token.LSHIFT, 2
		default:
			tt = token.LT
		}
	case '>':
		switch next {
		case '=':
			tt, n = token.GE, 2
		case '>':
			tt, n = token.RSHIFT, 2
		default:
			tt = token.GT
		}
	case '=':
		tt, n = pick(next == '>', token.ASSOC, token.EQ)
	case '.':
		tt, n = pick(next == '.', token.DOTDOT, token.DOT)
	case ':':
		if next == '=' {
			tt, n = token.ASSIGN, 2
		} else if isIdentPart(next) && next != '$' && next != '#' {
			return l.readBindVariable(start), nil
		} else {
			tt = token.COLON
		}
	case ',':
		tt = token.COMMA
	case ';':
		tt = token.SEMICOLON
	case '(':
		tt = token.LPAREN
	case ')':
		tt = token.RPAREN
	case '{':
		tt = token.LBRACE
	case '}':
		tt = token.RBRACE
	case '[':
		tt = token.LBRACKET
	case ']':
		tt = token.RBRACKET
	case '?':
		tt = token.QUESTION
	case '@':
		tt = token.AT_SIGN
	case '#':
		tt = token.HASH
	case '\\':
		tt = token.BACKSLASH
	}

	if tt == token.ILLEGAL {
		r, _ := utf8.DecodeRuneInString(l.input[l.pos:])
		return token.Token{Type: token.ILLEGAL}, l.errorAt(start, ErrUnexpectedChar, fmt.Sprintf("%q", r))
	}

	for i := 0; i < n; i++ {
		l.readChar()
	}
	text := l.input[start.Offset:l.pos]
	return l.emit(tt, start, text), nil
}

// readBindVariable reads :name or :1. The value omits the colon.
func (l *Lexer) readBindVariable(start token.Position) token.Token {
	l.readChar()
	nameStart := l.pos
	for isIdentPart(l.ch) {
		l.readChar()
	}
	return l.emit(token.BIND_VAR, start, l.input[nameStart:l.pos])
}

// pick returns the two-character kind when cond holds.
func pick(cond bool, long, short token.TokenType) (token.TokenType, int) {
	if cond {
		return long, 2
	}
	return short, 1
}

func isSpace(ch byte) bool {
	return ch == ' ' || ch == '\t' || ch == '\n' || ch == '\r' || ch == '\f' || ch == '\v'
}

func isLetter(ch byte) bool {
	return ch >= 'a' && ch <= 'z' || ch >= 'A' && ch <= 'Z'
}

func isDigit(ch byte) bool {
	return ch >= '0' && ch <= '9'
}

func isHexDigit(ch byte) bool {
	return isDigit(ch) || ch >= 'a' && ch <= 'f' || ch >= 'A' && ch <= 'F'
}

func isBitDigit(ch byte) bool {
	return ch == '0' || ch == '1'
}

func isIdentStart(ch byte) bool {
	return isLetter(ch) || ch == '_'
}

func isIdentPart(ch byte) bool {
	return isLetter(ch) || isDigit(ch) || ch == '_' || ch == '$' || ch == '#'
}
