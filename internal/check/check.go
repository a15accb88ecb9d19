// Package check parses SQL files statement by statement and reports the
// syntax errors found. With an analyzer attached, every statement that
// parses cleanly is also linted.
package check

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"

	"golang.org/x/sync/errgroup"

	"github.com/leapstack-labs/oraparse/pkg/lexer"
	"github.com/leapstack-labs/oraparse/pkg/lint"
	"github.com/leapstack-labs/oraparse/pkg/parser"
	"github.com/leapstack-labs/oraparse/pkg/token"
	"github.com/leapstack-labs/oraparse/pkg/tree"
)

// Extension is the file extension picked up when a directory is checked.
const Extension = ".sql"

// Diagnostic is one error found in a file.
type Diagnostic struct {
	Statement int    `json:"statement" yaml:"statement"` // 1-based; 0 for lexical errors
	Line      int    `json:"line" yaml:"line"`
	Column    int    `json:"column" yaml:"column"`
	Offset    int    `json:"offset" yaml:"offset"`
	Message   string `json:"message" yaml:"message"`
}

// Finding is one lint diagnostic found in a file.
type Finding struct {
	Statement int           `json:"statement" yaml:"statement"`
	Line      int           `json:"line" yaml:"line"`
	Column    int           `json:"column" yaml:"column"`
	EndLine   int           `json:"end_line" yaml:"end_line"`
	EndColumn int           `json:"end_column" yaml:"end_column"`
	Rule      string        `json:"rule" yaml:"rule"`
	Severity  lint.Severity `json:"severity" yaml:"severity"`
	Message   string        `json:"message" yaml:"message"`
}

// FileResult is the outcome of checking one file.
type FileResult struct {
	Path        string       `json:"path" yaml:"path"`
	Statements  int          `json:"statements" yaml:"statements"`
	Diagnostics []Diagnostic `json:"diagnostics,omitempty" yaml:"diagnostics,omitempty"`
	Findings    []Finding    `json:"findings,omitempty" yaml:"findings,omitempty"`
	Err         error        `json:"-" yaml:"-"` // the file could not be read
	ReadError   string       `json:"error,omitempty" yaml:"error,omitempty"`
}

// OK reports whether the file was read and had no errors.
func (r FileResult) OK() bool {
	return r.Err == nil && len(r.Diagnostics) == 0
}

// HasErrorFindings reports whether any lint finding has error severity.
func (r FileResult) HasErrorFindings() bool {
	for _, f := range r.Findings {
		if f.Severity == lint.SeverityError {
			return true
		}
	}
	return false
}

// Checker checks files concurrently. The zero value parses one worker at a
// time with the select rule.
type Checker struct {
	Rule    tree.Kind
	Workers int
	Options []parser.Option
	Logger  *slog.Logger

	// Lint, when set, runs on every statement without syntax errors.
	Lint *lint.Analyzer
}

func (c *Checker) logger() *slog.Logger {
	if c.Logger == nil {
		return slog.New(slog.DiscardHandler)
	}
	return c.Logger
}

func (c *Checker) rule() tree.Kind {
	if c.Rule == tree.Invalid {
		return tree.Select
	}
	return c.Rule
}

// CheckFiles checks every file, expanding directories to the .sql files
// below them. Results are in input order. Unreadable files are reported in
// their FileResult; the returned error is only for an unknown start rule,
// a failed directory walk or a cancelled context.
func (c *Checker) CheckFiles(ctx context.Context, paths []string) ([]FileResult, error) {
	if !parser.HasRule(c.rule()) {
		return nil, fmt.Errorf("%w: %s", parser.ErrUnknownRule, c.rule())
	}
	files, err := ExpandPaths(paths)
	if err != nil {
		return nil, err
	}

	results := make([]FileResult, len(files))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(max(c.Workers, 1))

	for i, path := range files {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			src, err := os.ReadFile(path)
			if err != nil {
				results[i] = FileResult{Path: path, Err: err, ReadError: err.Error()}
				return nil
			}
			results[i] = c.CheckSource(path, string(src))
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	c.logger().Debug("check done", "files", len(files))
	return results, nil
}

// CheckSource checks one source text.
func (c *Checker) CheckSource(path, src string) FileResult {
	res := FileResult{Path: path}

	s, err := lexer.Tokenize(src)
	if err != nil {
		var lexErr *lexer.LexError
		if errors.As(err, &lexErr) {
			res.Diagnostics = append(res.Diagnostics, diagnostic(0, lexErr.Pos, lexErr.Description()))
		} else {
			res.Err = err
		}
		return res
	}

	stmts := s.Split()
	res.Statements = len(stmts)
	for i, stmt := range stmts {
		r, _ := parser.ParseTokens(stmt, c.rule(), c.Options...)
		if r == nil {
			continue
		}
		for _, pe := range r.Errors {
			res.Diagnostics = append(res.Diagnostics, diagnostic(i+1, pe.Pos, pe.Description()))
		}
		if c.Lint != nil && len(r.Errors) == 0 {
			for _, d := range c.Lint.Analyze(r.Root) {
				res.Findings = append(res.Findings, Finding{
					Statement: i + 1,
					Line:      d.Pos.Line,
					Column:    d.Pos.Column,
					EndLine:   d.EndPos.Line,
					EndColumn: d.EndPos.Column,
					Rule:      d.RuleID,
					Severity:  d.Severity,
					Message:   d.Message,
				})
			}
		}
	}

	c.logger().Debug("checked file", "path", path, "statements", res.Statements,
		"errors", len(res.Diagnostics), "findings", len(res.Findings))
	return res
}

func diagnostic(stmt int, pos token.Position, msg string) Diagnostic {
	return Diagnostic{Statement: stmt, Line: pos.Line, Column: pos.Column, Offset: pos.Offset, Message: msg}
}

// ExpandPaths replaces each directory by the .sql files below it, sorted
// by the walk. Plain files are kept even without the extension.
func ExpandPaths(paths []string) ([]string, error) {
	var out []string
	for _, p := range paths {
		info, err := os.Stat(p)
		if err != nil || !info.IsDir() {
			out = append(out, p)
			continue
		}
		err = filepath.WalkDir(p, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if !d.IsDir() && filepath.Ext(path) == Extension {
				out = append(out, path)
			}
			return nil
		})
		if err != nil {
			return nil, fmt.Errorf("walk %s: %w", p, err)
		}
	}
	return out, nil
}
