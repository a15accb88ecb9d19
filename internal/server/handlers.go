package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/leapstack-labs/oraparse/pkg/lexer"
	"github.com/leapstack-labs/oraparse/pkg/parser"
	"github.com/leapstack-labs/oraparse/pkg/token"
	"github.com/leapstack-labs/oraparse/pkg/tree"
)

type tokenizeRequest struct {
	SQL    string `json:"sql"`
	Hidden bool   `json:"hidden"`
}

type tokenJSON struct {
	Type   string `json:"type"`
	Text   string `json:"text"`
	Value  string `json:"value"`
	Line   int    `json:"line"`
	Column int    `json:"column"`
	Offset int    `json:"offset"`
}

type triviaJSON struct {
	Kind   string `json:"kind"`
	Text   string `json:"text"`
	Line   int    `json:"line"`
	Column int    `json:"column"`
	Offset int    `json:"offset"`
}

type tokenizeResponse struct {
	Tokens []tokenJSON  `json:"tokens"`
	Hidden []triviaJSON `json:"hidden,omitempty"`
}

type parseRequest struct {
	SQL     string `json:"sql"`
	Rule    string `json:"rule"`
	Recover bool   `json:"recover"`
}

type parseResponse struct {
	Rule   string      `json:"rule"`
	Tree   *tree.View  `json:"tree"`
	Errors []errorBody `json:"errors,omitempty"`
}

type keywordJSON struct {
	Spelling string `json:"spelling"`
	Reserved bool   `json:"reserved"`
}

type productionJSON struct {
	Name         string   `json:"name"`
	Group        string   `json:"group"`
	Alternatives []string `json:"alternatives"`
}

type errorBody struct {
	Message string `json:"message"`
	Line    int    `json:"line"`
	Column  int    `json:"column"`
	Offset  int    `json:"offset,omitempty"`
}

type errorResponse struct {
	Error errorBody `json:"error"`
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleTokenize(w http.ResponseWriter, r *http.Request) {
	var req tokenizeRequest
	if !s.decode(w, r, &req) {
		return
	}

	st, err := lexer.Tokenize(req.SQL)
	if err != nil {
		s.writeSyntaxError(w, err)
		return
	}

	resp := tokenizeResponse{Tokens: make([]tokenJSON, 0, st.Len())}
	for _, tok := range st.Tokens[:st.Len()] {
		resp.Tokens = append(resp.Tokens, tokenJSON{
			Type:   tok.Type.String(),
			Text:   tok.Text,
			Value:  tok.Value,
			Line:   tok.Span.Start.Line,
			Column: tok.Span.Start.Column,
			Offset: tok.Span.Start.Offset,
		})
	}
	if req.Hidden {
		for _, h := range st.Hidden {
			resp.Hidden = append(resp.Hidden, triviaJSON{
				Kind:   h.Kind.String(),
				Text:   h.Text,
				Line:   h.Span.Start.Line,
				Column: h.Span.Start.Column,
				Offset: h.Span.Start.Offset,
			})
		}
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleParse(w http.ResponseWriter, r *http.Request) {
	var req parseRequest
	if !s.decode(w, r, &req) {
		return
	}
	if req.Rule == "" {
		req.Rule = tree.Expr.String()
	}
	rule, ok := tree.KindByName(req.Rule)
	if !ok || !parser.HasRule(rule) {
		writeError(w, http.StatusBadRequest, errorBody{Message: fmt.Sprintf("%s: %q", parser.ErrUnknownRule, req.Rule)})
		return
	}

	opts := []parser.Option{parser.WithDialect(s.dialect), parser.WithLogger(s.logger)}
	if req.Recover {
		opts = append(opts, parser.WithRecovery(s.maxErrors))
	}

	res, err := parser.Parse(req.SQL, rule, opts...)
	switch {
	case err == nil:
		writeJSON(w, http.StatusOK, parseResponse{Rule: rule.String(), Tree: tree.NewView(res.Root)})
	case req.Recover && res != nil && res.Root != nil:
		// Partial tree: report every error with the tree.
		resp := parseResponse{Rule: rule.String(), Tree: tree.NewView(res.Root)}
		for _, pe := range res.Errors {
			resp.Errors = append(resp.Errors, positioned(pe.Description(), pe.Pos))
		}
		writeJSON(w, http.StatusUnprocessableEntity, resp)
	default:
		s.writeSyntaxError(w, err)
	}
}

func (s *Server) handleKeywords(w http.ResponseWriter, r *http.Request) {
	filter := r.URL.Query().Get("reserved")
	out := []keywordJSON{}
	for _, e := range token.Keywords() {
		if (filter == "true" && !e.Reserved) || (filter == "false" && e.Reserved) {
			continue
		}
		out = append(out, keywordJSON{Spelling: e.Spelling, Reserved: e.Reserved})
	}
	writeJSON(w, http.StatusOK, out)
}

func (s *Server) handleGrammar(w http.ResponseWriter, _ *http.Request) {
	prods := parser.Grammar()
	out := make([]productionJSON, len(prods))
	for i, p := range prods {
		out[i] = production(p)
	}
	writeJSON(w, http.StatusOK, out)
}

func (s *Server) handleGrammarRule(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "rule")
	p, ok := parser.Lookup(name)
	if !ok {
		writeError(w, http.StatusNotFound, errorBody{Message: fmt.Sprintf("%s: %q", parser.ErrUnknownRule, name)})
		return
	}
	writeJSON(w, http.StatusOK, production(p))
}

func production(p parser.Production) productionJSON {
	return productionJSON{Name: p.Name, Group: p.Group.String(), Alternatives: p.Alternatives}
}

// decode reads a JSON body into v, writing a 400 on failure.
func (s *Server) decode(w http.ResponseWriter, r *http.Request, v any) bool {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, s.maxBodyBytes))
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			writeError(w, http.StatusRequestEntityTooLarge, errorBody{Message: "request body too large"})
			return false
		}
		writeError(w, http.StatusBadRequest, errorBody{Message: "invalid request body: " + err.Error()})
		return false
	}
	return true
}

// writeSyntaxError maps lexer and parser errors to 422. Multiple joined
// errors report the first.
func (s *Server) writeSyntaxError(w http.ResponseWriter, err error) {
	var (
		lexErr   *lexer.LexError
		parseErr *parser.ParseError
	)
	switch {
	case errors.As(err, &lexErr):
		writeError(w, http.StatusUnprocessableEntity, positioned(lexErr.Description(), lexErr.Pos))
	case errors.As(err, &parseErr):
		writeError(w, http.StatusUnprocessableEntity, positioned(parseErr.Description(), parseErr.Pos))
	default:
		s.logger.Error("unexpected error", "error", err)
		writeError(w, http.StatusInternalServerError, errorBody{Message: err.Error()})
	}
}

func positioned(msg string, pos token.Position) errorBody {
	return errorBody{Message: msg, Line: pos.Line, Column: pos.Column, Offset: pos.Offset}
}

func writeError(w http.ResponseWriter, status int, body errorBody) {
	writeJSON(w, status, errorResponse{Error: body})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
