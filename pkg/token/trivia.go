package token

// TriviaKind distinguishes the hidden text between tokens.
type TriviaKind int

// Trivia kinds.
const (
	Whitespace   TriviaKind = iota // spaces, tabs, newlines
	LineComment                    // -- comment
	BlockComment                   // /* comment */
	Hint                           // /*+ optimizer hint */
)

func (k TriviaKind) String() string {
	switch k {
	case Whitespace:
		return "WHITESPACE"
	case LineComment:
		return "LINE_COMMENT"
	case BlockComment:
		return "BLOCK_COMMENT"
	case Hint:
		return "HINT"
	default:
		return "TRIVIA"
	}
}

// Trivia is text the lexer consumes without producing a token. It is kept
// on the side so the original source can be reconstructed.
type Trivia struct {
	Kind TriviaKind
	Text string // includes delimiters (-- or /* */)
	Span Span
}

// IsComment returns true for line comments, block comments and hints.
func (t Trivia) IsComment() bool {
	return t.Kind != Whitespace
}
