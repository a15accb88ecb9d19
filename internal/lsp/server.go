package lsp

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"

	"github.com/leapstack-labs/oraparse/internal/check"
	"github.com/leapstack-labs/oraparse/pkg/dialect"
	"github.com/leapstack-labs/oraparse/pkg/dialects/oracle"
	"github.com/leapstack-labs/oraparse/pkg/lint"
	"github.com/leapstack-labs/oraparse/pkg/parser"
	"github.com/leapstack-labs/oraparse/pkg/tree"
)

const (
	codeInvalidRequest = -32600
	codeMethodNotFound = -32601
	codeInvalidParams  = -32602
	codeRequestFailed  = -32803
)

// Options configures a Server.
type Options struct {
	Rule    tree.Kind // start rule per statement, select by default
	Dialect *dialect.Dialect
	Lint    *lint.Analyzer // nil disables lint diagnostics
	Logger  *slog.Logger
	Version string
}

// handler serves one method. Requests return a result or an error;
// for notifications both are ignored.
type handler func(params json.RawMessage) (any, *ResponseError)

// Server is a single-client language server. Messages are handled one
// at a time in arrival order.
type Server struct {
	conn      *conn
	documents *DocumentStore
	checker   *check.Checker
	dialect   *dialect.Dialect
	version   string
	logger    *slog.Logger
	methods   map[string]handler

	shutdown bool
	exited   bool
}

// NewServer returns a server that reads frames from r and writes to w.
func NewServer(r io.Reader, w io.Writer, opts Options) *Server {
	if opts.Logger == nil {
		opts.Logger = slog.New(slog.DiscardHandler)
	}
	if opts.Dialect == nil {
		opts.Dialect = oracle.Oracle
	}
	if opts.Rule == tree.Invalid {
		opts.Rule = tree.Select
	}
	s := &Server{
		conn:      newConn(r, w),
		documents: NewDocumentStore(),
		checker: &check.Checker{
			Rule:    opts.Rule,
			Options: []parser.Option{parser.WithDialect(opts.Dialect)},
			Logger:  opts.Logger,
			Lint:    opts.Lint,
		},
		dialect: opts.Dialect,
		version: opts.Version,
		logger:  opts.Logger,
	}
	s.methods = map[string]handler{
		"initialize":  decode(s.initialize),
		"initialized": func(json.RawMessage) (any, *ResponseError) { return nil, nil },
		"shutdown": func(json.RawMessage) (any, *ResponseError) {
			s.shutdown = true
			return nil, nil
		},
		"exit": func(json.RawMessage) (any, *ResponseError) {
			s.exited = true
			return nil, nil
		},
		"textDocument/didOpen":   decode(s.didOpen),
		"textDocument/didChange": decode(s.didChange),
		"textDocument/didClose":  decode(s.didClose),
		"textDocument/completion": decode(func(p CompletionParams) (any, *ResponseError) {
			return s.completion(p.TextDocument.URI, p.Position), nil
		}),
		"textDocument/hover": decode(func(p HoverParams) (any, *ResponseError) {
			return s.hover(p.TextDocument.URI, p.Position), nil
		}),
		"textDocument/formatting": decode(func(p DocumentFormattingParams) (any, *ResponseError) {
			return s.formatting(p.TextDocument.URI)
		}),
	}
	return s
}

// decode adapts a typed handler, answering bad params with -32602.
func decode[P any](fn func(P) (any, *ResponseError)) handler {
	return func(raw json.RawMessage) (any, *ResponseError) {
		var p P
		if len(raw) > 0 {
			if err := json.Unmarshal(raw, &p); err != nil {
				return nil, &ResponseError{Code: codeInvalidParams, Message: err.Error()}
			}
		}
		return fn(p)
	}
}

// Run serves until exit, end of input or cancellation of ctx, which is
// checked between messages.
func (s *Server) Run(ctx context.Context) error {
	s.logger.Info("lsp server starting")
	for !s.exited {
		if err := ctx.Err(); err != nil {
			return err
		}
		msg, err := s.conn.read()
		if errors.Is(err, io.EOF) {
			s.logger.Info("client disconnected")
			return nil
		}
		if err != nil {
			return err
		}
		if err := s.dispatch(msg); err != nil {
			s.logger.Warn("write failed", "method", msg.Method, "error", err)
		}
	}
	return nil
}

func (s *Server) dispatch(msg *Message) error {
	s.logger.Debug("received", "method", msg.Method)
	isRequest := msg.ID != nil

	var (
		result any
		rerr   *ResponseError
	)
	h, ok := s.methods[msg.Method]
	switch {
	case s.shutdown && msg.Method != "exit":
		rerr = &ResponseError{Code: codeInvalidRequest, Message: "server is shut down"}
	case !ok:
		rerr = &ResponseError{Code: codeMethodNotFound, Message: "method not found: " + msg.Method}
	default:
		result, rerr = h(msg.Params)
	}

	if !isRequest {
		if rerr != nil && rerr.Code != codeMethodNotFound && rerr.Code != codeInvalidRequest {
			s.logger.Warn("notification failed", "method", msg.Method, "error", rerr)
		}
		return nil
	}
	return s.conn.reply(msg.ID, result, rerr)
}

func (s *Server) initialize(p InitializeParams) (any, *ResponseError) {
	s.logger.Info("initialize", "root", URIToPath(p.RootURI))
	return InitializeResult{
		Capabilities: ServerCapabilities{
			TextDocumentSync:           &TextDocumentSyncOptions{OpenClose: true, Change: TextDocumentSyncKindFull},
			CompletionProvider:         &CompletionOptions{TriggerCharacters: []string{" ", "("}},
			HoverProvider:              true,
			DocumentFormattingProvider: true,
		},
		ServerInfo: &ServerInfo{Name: "oraparse", Version: s.version},
	}, nil
}

func (s *Server) didOpen(p DidOpenTextDocumentParams) (any, *ResponseError) {
	item := p.TextDocument
	s.publishDiagnostics(s.documents.Open(item.URI, item.Text, item.Version))
	return nil, nil
}

// didChange applies the last full-text change.
func (s *Server) didChange(p DidChangeTextDocumentParams) (any, *ResponseError) {
	if n := len(p.ContentChanges); n > 0 {
		s.publishDiagnostics(s.documents.Update(p.TextDocument.URI, p.ContentChanges[n-1].Text, p.TextDocument.Version))
	}
	return nil, nil
}

// didClose clears the client's diagnostics for the document.
func (s *Server) didClose(p DidCloseTextDocumentParams) (any, *ResponseError) {
	uri := p.TextDocument.URI
	s.documents.Close(uri)
	s.notify("textDocument/publishDiagnostics", &PublishDiagnosticsParams{URI: uri, Diagnostics: []Diagnostic{}})
	return nil, nil
}

func (s *Server) notify(method string, params any) {
	if err := s.conn.notify(method, params); err != nil {
		s.logger.Warn("notify failed", "method", method, "error", err)
	}
}
