package server

import (
	"fmt"
	"net/http"

	"github.com/leapstack-labs/oraparse/internal/check"
	"github.com/leapstack-labs/oraparse/pkg/format"
	"github.com/leapstack-labs/oraparse/pkg/lint"
	"github.com/leapstack-labs/oraparse/pkg/parser"
	"github.com/leapstack-labs/oraparse/pkg/tree"
)

type formatRequest struct {
	SQL  string `json:"sql"`
	Rule string `json:"rule"`
}

type formatResponse struct {
	SQL string `json:"sql"`
}

type lintRequest struct {
	SQL     string   `json:"sql"`
	Rule    string   `json:"rule"`
	Disable []string `json:"disable"`
}

type lintResponse struct {
	Statements int             `json:"statements"`
	Findings   []check.Finding `json:"findings"`
}

// statementRule resolves the start rule for multi-statement requests,
// writing a 400 when it is unknown.
func statementRule(w http.ResponseWriter, name string) (tree.Kind, bool) {
	if name == "" {
		return tree.Select, true
	}
	rule, ok := tree.KindByName(name)
	if !ok || !parser.HasRule(rule) {
		writeError(w, http.StatusBadRequest, errorBody{Message: fmt.Sprintf("%s: %q", parser.ErrUnknownRule, name)})
		return 0, false
	}
	return rule, true
}

func (s *Server) handleFormat(w http.ResponseWriter, r *http.Request) {
	var req formatRequest
	if !s.decode(w, r, &req) {
		return
	}
	rule, ok := statementRule(w, req.Rule)
	if !ok {
		return
	}

	out, err := format.Source(req.SQL, rule, parser.WithDialect(s.dialect), parser.WithLogger(s.logger))
	if err != nil {
		s.writeSyntaxError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, formatResponse{SQL: out})
}

func (s *Server) handleLint(w http.ResponseWriter, r *http.Request) {
	var req lintRequest
	if !s.decode(w, r, &req) {
		return
	}
	rule, ok := statementRule(w, req.Rule)
	if !ok {
		return
	}
	cfg, err := lint.ParseConfig(req.Disable, nil)
	if err != nil {
		writeError(w, http.StatusBadRequest, errorBody{Message: err.Error()})
		return
	}

	checker := &check.Checker{
		Rule:    rule,
		Options: []parser.Option{parser.WithDialect(s.dialect)},
		Logger:  s.logger,
		Lint:    lint.NewAnalyzer(cfg),
	}
	res := checker.CheckSource("request", req.SQL)
	if len(res.Diagnostics) > 0 {
		d := res.Diagnostics[0]
		writeError(w, http.StatusUnprocessableEntity, errorBody{Message: d.Message, Line: d.Line, Column: d.Column, Offset: d.Offset})
		return
	}

	resp := lintResponse{Statements: res.Statements, Findings: res.Findings}
	if resp.Findings == nil {
		resp.Findings = []check.Finding{}
	}
	writeJSON(w, http.StatusOK, resp)
}
