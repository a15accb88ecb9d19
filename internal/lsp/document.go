package lsp

import (
	"sort"
	"strings"
	"sync"
	"unicode/utf8"

	"github.com/leapstack-labs/oraparse/pkg/token"
)

// Document is an open text document. Character offsets are counted in
// runes, matching token.Position columns.
type Document struct {
	URI     string
	Content string
	Version int
	lines   []int // byte offset of each line start
}

func newDocument(uri, content string, version int) *Document {
	d := &Document{URI: uri, Content: content, Version: version, lines: []int{0}}
	for i := 0; i < len(content); i++ {
		if content[i] == '\n' {
			d.lines = append(d.lines, i+1)
		}
	}
	return d
}

// DocumentStore manages open documents in memory.
type DocumentStore struct {
	mu        sync.RWMutex
	documents map[string]*Document
}

// NewDocumentStore creates a new document store.
func NewDocumentStore() *DocumentStore {
	return &DocumentStore{documents: make(map[string]*Document)}
}

// Open adds or replaces a document.
func (s *DocumentStore) Open(uri, content string, version int) *Document {
	s.mu.Lock()
	defer s.mu.Unlock()
	d := newDocument(uri, content, version)
	s.documents[uri] = d
	return d
}

// Update replaces the content of an open document. Unknown URIs are
// opened.
func (s *DocumentStore) Update(uri, content string, version int) *Document {
	return s.Open(uri, content, version)
}

// Close removes a document from the store.
func (s *DocumentStore) Close(uri string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.documents, uri)
}

// Get retrieves a document by URI.
func (s *DocumentStore) Get(uri string) *Document {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.documents[uri]
}

// Offset converts an LSP position to a byte offset, clamped to the line.
func (d *Document) Offset(pos Position) int {
	if int(pos.Line) >= len(d.lines) {
		return len(d.Content)
	}
	off := d.lines[pos.Line]
	for n := uint32(0); n < pos.Character && off < len(d.Content) && d.Content[off] != '\n'; n++ {
		_, size := utf8.DecodeRuneInString(d.Content[off:])
		off += size
	}
	return off
}

// End returns the position just past the last character.
func (d *Document) End() Position {
	last := len(d.lines) - 1
	return Position{
		Line:      uint32(last),
		Character: uint32(utf8.RuneCountInString(d.Content[d.lines[last]:])),
	}
}

// tokenPosition converts a 1-based token position to an LSP position.
func tokenPosition(p token.Position) Position {
	if p.Line < 1 || p.Column < 1 {
		return Position{}
	}
	return Position{Line: uint32(p.Line - 1), Character: uint32(p.Column - 1)}
}

// WordAt returns the identifier-like word around pos and its range.
func (d *Document) WordAt(pos Position) (string, Range) {
	off := d.Offset(pos)
	start, end := off, off
	for start > 0 && isWordChar(d.Content[start-1]) {
		start--
	}
	for end < len(d.Content) && isWordChar(d.Content[end]) {
		end++
	}
	return d.Content[start:end], Range{Start: d.PositionAt(start), End: d.PositionAt(end)}
}

// PositionAt converts a byte offset, clamped to the content, to an LSP
// position.
func (d *Document) PositionAt(off int) Position {
	off = max(0, min(off, len(d.Content)))
	line := sort.Search(len(d.lines), func(i int) bool { return d.lines[i] > off }) - 1
	return Position{
		Line:      uint32(line),
		Character: uint32(utf8.RuneCountInString(d.Content[d.lines[line]:off])),
	}
}

// Prefix returns the word characters immediately before pos.
func (d *Document) Prefix(pos Position) string {
	off := d.Offset(pos)
	start := off
	for start > 0 && isWordChar(d.Content[start-1]) {
		start--
	}
	return d.Content[start:off]
}

// isWordChar reports whether c can appear in an unquoted word.
func isWordChar(c byte) bool {
	return (c >= 'a' && c <= 'z') ||
		(c >= 'A' && c <= 'Z') ||
		(c >= '0' && c <= '9') ||
		c == '_' || c == '$' || c == '#'
}

// URIToPath converts a file:// URI to a file system path.
func URIToPath(uri string) string {
	return strings.TrimPrefix(uri, "file://")
}
