package lsp

import (
	"fmt"
	"sort"
	"strings"

	"github.com/leapstack-labs/oraparse/pkg/format"
	"github.com/leapstack-labs/oraparse/pkg/lint"
	"github.com/leapstack-labs/oraparse/pkg/parser"
	"github.com/leapstack-labs/oraparse/pkg/token"
)

const diagnosticSource = "oraparse"

// publishDiagnostics checks doc and sends its syntax errors and lint
// findings.
func (s *Server) publishDiagnostics(doc *Document) {
	res := s.checker.CheckSource(URIToPath(doc.URI), doc.Content)

	diags := make([]Diagnostic, 0, len(res.Diagnostics)+len(res.Findings))
	for _, d := range res.Diagnostics {
		start := tokenPosition(token.Position{Line: d.Line, Column: d.Column})
		_, word := doc.WordAt(start)
		end := word.End
		if end == start {
			end.Character++
		}
		diags = append(diags, Diagnostic{
			Range:    Range{Start: start, End: end},
			Severity: DiagnosticSeverityError,
			Source:   diagnosticSource,
			Message:  d.Message,
		})
	}
	for _, f := range res.Findings {
		diags = append(diags, Diagnostic{
			Range: Range{
				Start: tokenPosition(token.Position{Line: f.Line, Column: f.Column}),
				End:   tokenPosition(token.Position{Line: f.EndLine, Column: f.EndColumn}),
			},
			Severity: severity(f.Severity),
			Code:     f.Rule,
			Source:   diagnosticSource,
			Message:  f.Message,
		})
	}

	s.logger.Debug("publish diagnostics", "uri", doc.URI, "count", len(diags))
	s.notify("textDocument/publishDiagnostics", &PublishDiagnosticsParams{
		URI:         doc.URI,
		Version:     doc.Version,
		Diagnostics: diags,
	})
}

func severity(s lint.Severity) DiagnosticSeverity {
	switch s {
	case lint.SeverityError:
		return DiagnosticSeverityError
	case lint.SeverityWarning:
		return DiagnosticSeverityWarning
	case lint.SeverityInfo:
		return DiagnosticSeverityInformation
	default:
		return DiagnosticSeverityHint
	}
}

// completion offers the keywords starting with the word before pos.
// Reserved words sort first.
func (s *Server) completion(uri string, pos Position) *CompletionList {
	list := &CompletionList{Items: []CompletionItem{}}
	doc := s.documents.Get(uri)
	if doc == nil {
		return list
	}

	prefix := strings.ToUpper(doc.Prefix(pos))
	for _, kw := range token.Keywords() {
		if !strings.HasPrefix(kw.Spelling, prefix) {
			continue
		}
		item := CompletionItem{Label: kw.Spelling, Kind: CompletionItemKindKeyword, Detail: "keyword", SortText: "1" + kw.Spelling}
		if kw.Reserved {
			item.Detail = "reserved keyword"
			item.SortText = "0" + kw.Spelling
		}
		list.Items = append(list.Items, item)
	}
	sort.Slice(list.Items, func(i, j int) bool { return list.Items[i].SortText < list.Items[j].SortText })
	return list
}

// hover describes the keyword, pseudo column or aggregate under pos.
func (s *Server) hover(uri string, pos Position) *Hover {
	doc := s.documents.Get(uri)
	if doc == nil {
		return nil
	}
	word, r := doc.WordAt(pos)
	if word == "" {
		return nil
	}

	var lines []string
	if kw, ok := token.Lookup(word); ok {
		if kw.Reserved {
			lines = append(lines, fmt.Sprintf("**%s** reserved keyword; cannot be used as an identifier", kw.Spelling))
		} else {
			lines = append(lines, fmt.Sprintf("**%s** non-reserved keyword", kw.Spelling))
		}
	}
	if s.dialect.IsPseudoColumn(word) {
		lines = append(lines, "pseudo column")
	}
	if s.dialect.IsAggregate(word) {
		lines = append(lines, "aggregate function")
	}
	if len(lines) == 0 {
		return nil
	}
	return &Hover{Contents: MarkupContent{Kind: "markdown", Value: strings.Join(lines, "\n\n")}, Range: &r}
}

// formatting replaces the whole document with its formatted form.
func (s *Server) formatting(uri string) ([]TextEdit, *ResponseError) {
	doc := s.documents.Get(uri)
	if doc == nil {
		return nil, &ResponseError{Code: codeInvalidParams, Message: "unknown document " + uri}
	}
	out, err := format.Source(doc.Content, s.checker.Rule, parser.WithDialect(s.dialect))
	if err != nil {
		return nil, &ResponseError{Code: codeRequestFailed, Message: err.Error()}
	}
	if out == doc.Content {
		return []TextEdit{}, nil
	}
	return []TextEdit{{Range: Range{End: doc.End()}, NewText: out}}, nil
}
