// Package main generates the keyword table of pkg/token from keywords.yaml.
//
// Usage:
//
//	go run ./scripts/genkeywords -in=pkg/token/keywords.yaml -out=pkg/token/keywords_gen.go
package main

import (
	"bytes"
	"flag"
	"fmt"
	"go/format"
	"log"
	"os"
	"sort"
	"strings"
	"text/template"

	"gopkg.in/yaml.v3"
)

var (
	inFlag  = flag.String("in", "keywords.yaml", "keyword declaration file")
	outFlag = flag.String("out", "keywords_gen.go", "output file path")
)

// keywordFile mirrors the layout of keywords.yaml.
type keywordFile struct {
	Reserved    []string `yaml:"reserved"`
	Nonreserved []string `yaml:"nonreserved"`
}

// entry is one generated keyword constant.
type entry struct {
	Spelling string
	Ident    string
	Reserved bool
}

// symbolNames are the non-keyword token type names already declared in
// token.go. A keyword with the same spelling gets a _KW suffix.
var symbolNames = map[string]bool{
	"EOF": true, "ILLEGAL": true, "IDENT": true, "QUOTED_IDENT": true,
	"STRING_LIT": true, "NSTRING_LIT": true, "INT_LIT": true, "DECIMAL_LIT": true,
	"HEX_LIT": true, "BIT_LIT": true, "BIND_VAR": true,
	"PLUS": true, "MINUS": true, "STAR": true, "SLASH": true, "PERCENT": true,
	"CARET": true, "TILDE": true, "BANG": true, "PIPE": true, "AMPERSAND": true,
	"DPIPE": true, "DAMP": true, "LSHIFT": true, "RSHIFT": true, "DSTAR": true,
	"EQ": true, "NE": true, "LT": true, "GT": true, "LE": true, "GE": true,
	"SAFE_EQ": true, "DOT": true, "DOTDOT": true, "COMMA": true, "SEMICOLON": true,
	"COLON": true, "ASSIGN": true, "ASSOC": true, "ARROW": true,
	"LPAREN": true, "RPAREN": true, "LBRACE": true, "RBRACE": true,
	"LBRACKET": true, "RBRACKET": true, "QUESTION": true, "AT_SIGN": true,
	"HASH": true, "BACKSLASH": true,
}

var genTemplate = template.Must(template.New("keywords").Parse(`// Code generated by genkeywords from keywords.yaml. DO NOT EDIT.

package token

// Keyword token types, in spelling order.
const (
	keywordBeg TokenType = iota + 1000

{{- range .}}
	{{.Ident}}{{if .Reserved}} // reserved{{end}}
{{- end}}

	keywordEnd
)

// keywordEntries is indexed by TokenType - keywordBeg - 1.
var keywordEntries = [...]KeywordEntry{
{{- range .}}
	{Spelling: "{{.Spelling}}", Type: {{.Ident}}, Reserved: {{.Reserved}}},
{{- end}}
}
`))

func main() {
	flag.Parse()

	data, err := os.ReadFile(*inFlag)
	if err != nil {
		log.Fatalf("failed to read %s: %v", *inFlag, err)
	}

	var kf keywordFile
	if err := yaml.Unmarshal(data, &kf); err != nil {
		log.Fatalf("failed to parse %s: %v", *inFlag, err)
	}

	entries, err := buildEntries(kf)
	if err != nil {
		log.Fatal(err)
	}
	log.Printf("Collected %d keywords (%d reserved)", len(entries), len(kf.Reserved))

	var buf bytes.Buffer
	if err := genTemplate.Execute(&buf, entries); err != nil {
		log.Fatalf("failed to render template: %v", err)
	}

	formatted, err := format.Source(buf.Bytes())
	if err != nil {
		log.Printf("Warning: failed to format generated code: %v", err)
		formatted = buf.Bytes()
	}

	if err := os.WriteFile(*outFlag, formatted, 0o600); err != nil {
		log.Fatalf("failed to write output: %v", err)
	}

	log.Printf("Generated %s", *outFlag)
}

// buildEntries merges both lists into one sorted table. A spelling listed
// as reserved wins over a non-reserved duplicate.
func buildEntries(kf keywordFile) ([]entry, error) {
	seen := make(map[string]*entry)
	add := func(word string, reserved bool) error {
		spelling := strings.ToUpper(strings.TrimSpace(word))
		if spelling == "" {
			return fmt.Errorf("empty keyword in %s", *inFlag)
		}
		for i := 0; i < len(spelling); i++ {
			c := spelling[i]
			if !(c >= 'A' && c <= 'Z' || c >= '0' && c <= '9' || c == '_') {
				return fmt.Errorf("keyword %q contains %q", spelling, c)
			}
		}
		if e, ok := seen[spelling]; ok {
			e.Reserved = e.Reserved || reserved
			return nil
		}
		ident := spelling
		if symbolNames[ident] {
			ident += "_KW"
		}
		seen[spelling] = &entry{Spelling: spelling, Ident: ident, Reserved: reserved}
		return nil
	}

	for _, w := range kf.Reserved {
		if err := add(w, true); err != nil {
			return nil, err
		}
	}
	for _, w := range kf.Nonreserved {
		if err := add(w, false); err != nil {
			return nil, err
		}
	}

	entries := make([]entry, 0, len(seen))
	for _, e := range seen {
		entries = append(entries, *e)
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].Spelling < entries[j].Spelling })
	return entries, nil
}
