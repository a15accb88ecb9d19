package output

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/leapstack-labs/oraparse/internal/check"
	"github.com/leapstack-labs/oraparse/pkg/lexer"
	"github.com/leapstack-labs/oraparse/pkg/lint"
	"github.com/leapstack-labs/oraparse/pkg/parser"
	"github.com/leapstack-labs/oraparse/pkg/token"
)

// ErrorLocation is the data form of a positioned error.
type ErrorLocation struct {
	Message string `json:"message" yaml:"message"`
	Line    int    `json:"line,omitempty" yaml:"line,omitempty"`
	Column  int    `json:"column,omitempty" yaml:"column,omitempty"`
	Offset  int    `json:"offset,omitempty" yaml:"offset,omitempty"`
}

// Locate extracts the position of a *lexer.LexError or *parser.ParseError.
// Other errors keep only their message.
func Locate(err error) ErrorLocation {
	var (
		lexErr   *lexer.LexError
		parseErr *parser.ParseError
	)
	switch {
	case errors.As(err, &lexErr):
		return located(lexErr.Description(), lexErr.Pos)
	case errors.As(err, &parseErr):
		return located(parseErr.Description(), parseErr.Pos)
	default:
		return ErrorLocation{Message: err.Error()}
	}
}

func located(msg string, pos token.Position) ErrorLocation {
	return ErrorLocation{Message: msg, Line: pos.Line, Column: pos.Column, Offset: pos.Offset}
}

// Flatten splits an errors.Join result into its parts.
func Flatten(err error) []error {
	if err == nil {
		return nil
	}
	if j, ok := err.(interface{ Unwrap() []error }); ok {
		var out []error
		for _, e := range j.Unwrap() {
			out = append(out, Flatten(e)...)
		}
		return out
	}
	return []error{err}
}

// Errors writes every error in err to the error stream, each positioned
// one followed by the offending source line and a caret.
func (r *Renderer) Errors(err error, src string) {
	for _, e := range Flatten(err) {
		loc := Locate(e)
		_, _ = fmt.Fprintf(r.errOut, "%s %s\n", r.styles.Error.Render("Error:"), e.Error())
		if loc.Line > 0 {
			_, _ = fmt.Fprint(r.errOut, r.Snippet(src, loc.Line, loc.Column))
		}
	}
}

// Snippet returns the source line at line with a caret under column.
// Tabs before the column are kept so the caret lines up.
func (r *Renderer) Snippet(src string, line, column int) string {
	lines := strings.Split(src, "\n")
	if line < 1 || line > len(lines) {
		return ""
	}
	text := strings.TrimRight(lines[line-1], "\r")
	runes := []rune(text)

	var pad strings.Builder
	for i := 0; i < column-1; i++ {
		if i < len(runes) && runes[i] == '\t' {
			pad.WriteByte('\t')
		} else {
			pad.WriteByte(' ')
		}
	}

	gutter := fmt.Sprintf("%4d | ", line)
	blank := strings.Repeat(" ", len(gutter)-2) + "| "
	return r.styles.Muted.Render(gutter) + text + "\n" +
		r.styles.Muted.Render(blank) + pad.String() + r.styles.Caret.Render("^") + "\n"
}

// CheckResults renders the outcome of a batch check.
func (r *Renderer) CheckResults(results []check.FileResult) error {
	if r.structured() {
		return r.Encode(results)
	}

	failed, errs := 0, 0
	switch r.EffectiveMode() {
	case ModeTable:
		t := table.NewWriter()
		t.SetOutputMirror(r.out)
		t.SetStyle(table.StyleLight)
		t.AppendHeader(table.Row{"File", "Stmt", "Pos", "Message"})
		for _, res := range results {
			if res.Err != nil {
				t.AppendRow(table.Row{res.Path, "", "", res.Err.Error()})
			}
			for _, d := range res.Diagnostics {
				t.AppendRow(table.Row{res.Path, d.Statement, fmt.Sprintf("%d:%d", d.Line, d.Column), d.Message})
			}
		}
		t.Render()
	default:
		for _, res := range results {
			if res.OK() {
				r.Printf("%s %s (%d statements)\n", r.styles.Success.Render("ok"), res.Path, res.Statements)
				continue
			}
			r.Printf("%s %s\n", r.styles.Error.Render("FAIL"), res.Path)
			if res.Err != nil {
				r.Printf("    %s\n", res.Err)
			}
			for _, d := range res.Diagnostics {
				r.Printf("    %s:%d:%d: %s\n", filepath.Base(res.Path), d.Line, d.Column, d.Message)
			}
		}
	}

	for _, res := range results {
		if !res.OK() {
			failed++
		}
		errs += len(res.Diagnostics)
	}
	r.Println(r.styles.Muted.Render(fmt.Sprintf("%d files, %d failed, %d errors", len(results), failed, errs)))
	return nil
}

// LintResults renders lint findings. Files with syntax errors list those
// instead, since they were not linted.
func (r *Renderer) LintResults(results []check.FileResult) error {
	if r.structured() {
		return r.Encode(results)
	}

	findings := 0
	switch r.EffectiveMode() {
	case ModeTable:
		t := table.NewWriter()
		t.SetOutputMirror(r.out)
		t.SetStyle(table.StyleLight)
		t.AppendHeader(table.Row{"File", "Pos", "Severity", "Rule", "Message"})
		for _, res := range results {
			if res.Err != nil {
				t.AppendRow(table.Row{res.Path, "", "error", "", res.Err.Error()})
			}
			for _, d := range res.Diagnostics {
				t.AppendRow(table.Row{res.Path, fmt.Sprintf("%d:%d", d.Line, d.Column), "error", "syntax", d.Message})
			}
			for _, f := range res.Findings {
				t.AppendRow(table.Row{res.Path, fmt.Sprintf("%d:%d", f.Line, f.Column), f.Severity.String(), f.Rule, f.Message})
			}
		}
		t.Render()
	default:
		for _, res := range results {
			if res.Err != nil {
				r.Printf("%s: %s\n", res.Path, res.Err)
			}
			for _, d := range res.Diagnostics {
				r.Printf("%s:%d:%d: %s %s\n", res.Path, d.Line, d.Column, r.styles.Error.Render("syntax"), d.Message)
			}
			for _, f := range res.Findings {
				r.Printf("%s:%d:%d: %s [%s] %s\n", res.Path, f.Line, f.Column, r.severity(f.Severity), f.Rule, f.Message)
			}
		}
	}

	for _, res := range results {
		findings += len(res.Findings)
	}
	r.Println(r.styles.Muted.Render(fmt.Sprintf("%d files, %d findings", len(results), findings)))
	return nil
}

func (r *Renderer) severity(s lint.Severity) string {
	switch s {
	case lint.SeverityError:
		return r.styles.Error.Render(s.String())
	case lint.SeverityWarning:
		return r.styles.Warning.Render(s.String())
	default:
		return r.styles.Info.Render(s.String())
	}
}

// Rules lists the registered lint rules.
func (r *Renderer) Rules(rules []lint.RuleDef) error {
	if r.structured() {
		views := make([]RuleView, 0, len(rules))
		for _, rule := range rules {
			views = append(views, RuleView{rule.ID, rule.Name, rule.Group, rule.Severity.String(), rule.Description})
		}
		return r.Encode(views)
	}

	t := table.NewWriter()
	t.SetOutputMirror(r.out)
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"ID", "Name", "Severity", "Description"})
	for _, rule := range rules {
		t.AppendRow(table.Row{rule.ID, rule.Name, rule.Severity.String(), rule.Description})
	}
	t.Render()
	return nil
}

// RuleView is the data form of a lint rule.
type RuleView struct {
	ID          string `json:"id" yaml:"id"`
	Name        string `json:"name" yaml:"name"`
	Group       string `json:"group" yaml:"group"`
	Severity    string `json:"severity" yaml:"severity"`
	Description string `json:"description" yaml:"description"`
}
