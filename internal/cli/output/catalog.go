package output

import (
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/leapstack-labs/oraparse/pkg/parser"
	"github.com/leapstack-labs/oraparse/pkg/token"
)

// KeywordView is the data form of a keyword table entry.
type KeywordView struct {
	Spelling string `json:"spelling" yaml:"spelling"`
	Reserved bool   `json:"reserved" yaml:"reserved"`
}

// ProductionView is the data form of a grammar production.
type ProductionView struct {
	Name         string   `json:"name" yaml:"name"`
	Group        string   `json:"group" yaml:"group"`
	Alternatives []string `json:"alternatives" yaml:"alternatives"`
}

// NewProductionView converts p.
func NewProductionView(p parser.Production) ProductionView {
	return ProductionView{Name: p.Name, Group: p.Group.String(), Alternatives: p.Alternatives}
}

// Keywords renders the keyword table.
func (r *Renderer) Keywords(entries []token.KeywordEntry) error {
	if r.structured() {
		views := make([]KeywordView, len(entries))
		for i, e := range entries {
			views[i] = KeywordView{Spelling: e.Spelling, Reserved: e.Reserved}
		}
		return r.Encode(views)
	}

	t := table.NewWriter()
	t.SetOutputMirror(r.out)
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"Keyword", "Reserved"})
	reserved := 0
	for _, e := range entries {
		mark := ""
		if e.Reserved {
			mark = "yes"
			reserved++
		}
		t.AppendRow(table.Row{r.styles.Keyword.Render(e.Spelling), mark})
	}
	t.Render()
	r.Printf("(%d keywords, %d reserved)\n", len(entries), reserved)
	return nil
}

// Grammar renders productions. Text mode prints them in BNF-like form
// grouped by category; table mode prints one row per production.
func (r *Renderer) Grammar(prods []parser.Production) error {
	switch r.EffectiveMode() {
	case ModeJSON, ModeYAML:
		views := make([]ProductionView, len(prods))
		for i, p := range prods {
			views[i] = NewProductionView(p)
		}
		return r.Encode(views)

	case ModeTable:
		t := table.NewWriter()
		t.SetOutputMirror(r.out)
		t.SetStyle(table.StyleLight)
		t.AppendHeader(table.Row{"Rule", "Group", "Alternatives"})
		for _, p := range prods {
			t.AppendRow(table.Row{p.Name, p.Group.String(), strings.Join(p.Alternatives, "\n")})
		}
		t.Render()
		return nil
	}

	group := ""
	for _, p := range prods {
		if g := p.Group.String(); g != group {
			if group != "" {
				r.Println("")
			}
			group = g
			r.Println(r.styles.Header2.Render(group))
		}
		if len(p.Alternatives) == 0 {
			r.Println(r.styles.Rule.Render(p.Name))
			continue
		}
		pad := strings.Repeat(" ", len(p.Name))
		for i, alt := range p.Alternatives {
			if i == 0 {
				r.Printf("%s : %s\n", r.styles.Rule.Render(p.Name), alt)
				continue
			}
			r.Printf("%s | %s\n", pad, alt)
		}
	}
	return nil
}
