package token

import "sort"

//go:generate go run ../../scripts/genkeywords -in keywords.yaml -out keywords_gen.go

// maxKeywordLen bounds the spellings Lookup folds on the stack. No keyword
// is longer, so anything above it is an identifier.
const maxKeywordLen = 64

// KeywordEntry describes one keyword spelling.
type KeywordEntry struct {
	Spelling string // upper case
	Type     TokenType
	Reserved bool
}

// keywordIndex maps upper-case spellings to entries. Built once, read only.
var keywordIndex map[string]KeywordEntry

func init() {
	keywordIndex = make(map[string]KeywordEntry, len(keywordEntries))
	for _, e := range keywordEntries {
		keywordIndex[e.Spelling] = e
	}
}

// Lookup returns the keyword entry for a spelling. Matching folds ASCII
// letters only, so "select", "Select" and "SELECT" are the same keyword.
// It does not allocate.
func Lookup(spelling string) (KeywordEntry, bool) {
	if len(spelling) == 0 || len(spelling) > maxKeywordLen {
		return KeywordEntry{}, false
	}
	var buf [maxKeywordLen]byte
	for i := 0; i < len(spelling); i++ {
		c := spelling[i]
		switch {
		case c >= 'a' && c <= 'z':
			c -= 'a' - 'A'
		case c >= 0x80:
			return KeywordEntry{}, false
		}
		buf[i] = c
	}
	e, ok := keywordIndex[string(buf[:len(spelling)])]
	return e, ok
}

// LookupIdent returns the keyword type for a spelling, or IDENT.
func LookupIdent(spelling string) TokenType {
	if e, ok := Lookup(spelling); ok {
		return e.Type
	}
	return IDENT
}

// IsReservedWord reports whether a spelling is a reserved keyword.
func IsReservedWord(spelling string) bool {
	e, ok := Lookup(spelling)
	return ok && e.Reserved
}

// Keywords returns a copy of the keyword table sorted by spelling.
func Keywords() []KeywordEntry {
	out := make([]KeywordEntry, len(keywordEntries))
	copy(out, keywordEntries[:])
	sort.Slice(out, func(i, j int) bool { return out[i].Spelling < out[j].Spelling })
	return out
}
