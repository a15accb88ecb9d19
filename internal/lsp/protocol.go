// Package lsp implements a Language Server Protocol server for Oracle SQL
// files. It publishes syntax errors and lint findings, completes keywords,
// describes keywords on hover and formats whole documents.
package lsp

// Wire types for the requests and notifications the server handles.
// Field names follow LSP 3.17; anything the server never reads is omitted.

// Positions are zero-based. Character counts runes on the line.
type (
	Position struct {
		Line      uint32 `json:"line"`
		Character uint32 `json:"character"`
	}

	Range struct {
		Start Position `json:"start"`
		End   Position `json:"end"`
	}
)

// Documents.
type (
	TextDocumentIdentifier struct {
		URI string `json:"uri"`
	}

	VersionedTextDocumentIdentifier struct {
		TextDocumentIdentifier
		Version int `json:"version"`
	}

	TextDocumentItem struct {
		URI        string `json:"uri"`
		LanguageID string `json:"languageId"`
		Version    int    `json:"version"`
		Text       string `json:"text"`
	}

	// TextDocumentContentChangeEvent carries the whole new text; the
	// server only advertises full sync.
	TextDocumentContentChangeEvent struct {
		Text string `json:"text"`
	}

	TextDocumentPositionParams struct {
		TextDocument TextDocumentIdentifier `json:"textDocument"`
		Position     Position               `json:"position"`
	}

	DidOpenTextDocumentParams struct {
		TextDocument TextDocumentItem `json:"textDocument"`
	}

	DidChangeTextDocumentParams struct {
		TextDocument   VersionedTextDocumentIdentifier  `json:"textDocument"`
		ContentChanges []TextDocumentContentChangeEvent `json:"contentChanges"`
	}

	DidCloseTextDocumentParams struct {
		TextDocument TextDocumentIdentifier `json:"textDocument"`
	}
)

// Handshake.
type (
	InitializeParams struct {
		ProcessID int    `json:"processId"`
		RootURI   string `json:"rootUri"`
	}

	InitializeResult struct {
		Capabilities ServerCapabilities `json:"capabilities"`
		ServerInfo   *ServerInfo        `json:"serverInfo,omitempty"`
	}

	ServerInfo struct {
		Name    string `json:"name"`
		Version string `json:"version,omitempty"`
	}

	ServerCapabilities struct {
		TextDocumentSync           *TextDocumentSyncOptions `json:"textDocumentSync,omitempty"`
		CompletionProvider         *CompletionOptions       `json:"completionProvider,omitempty"`
		HoverProvider              bool                     `json:"hoverProvider,omitempty"`
		DocumentFormattingProvider bool                     `json:"documentFormattingProvider,omitempty"`
	}

	TextDocumentSyncOptions struct {
		OpenClose bool                 `json:"openClose,omitempty"`
		Change    TextDocumentSyncKind `json:"change,omitempty"`
	}

	CompletionOptions struct {
		TriggerCharacters []string `json:"triggerCharacters,omitempty"`
	}
)

// TextDocumentSyncKind selects how edits reach the server.
type TextDocumentSyncKind int

const TextDocumentSyncKindFull TextDocumentSyncKind = 1

// DiagnosticSeverity mirrors lint.Severity on the wire, 1 being error.
type DiagnosticSeverity int

const (
	DiagnosticSeverityError DiagnosticSeverity = iota + 1
	DiagnosticSeverityWarning
	DiagnosticSeverityInformation
	DiagnosticSeverityHint
)

// Diagnostics. Code holds the lint rule ID and is empty for syntax errors.
type (
	Diagnostic struct {
		Range    Range              `json:"range"`
		Severity DiagnosticSeverity `json:"severity,omitempty"`
		Code     string             `json:"code,omitempty"`
		Source   string             `json:"source,omitempty"`
		Message  string             `json:"message"`
	}

	PublishDiagnosticsParams struct {
		URI         string       `json:"uri"`
		Version     int          `json:"version,omitempty"`
		Diagnostics []Diagnostic `json:"diagnostics"`
	}
)

// CompletionItemKind 14 is the protocol's keyword kind.
type CompletionItemKind int

const CompletionItemKindKeyword CompletionItemKind = 14

// Language features.
type (
	CompletionParams struct {
		TextDocumentPositionParams
	}

	CompletionItem struct {
		Label    string             `json:"label"`
		Kind     CompletionItemKind `json:"kind,omitempty"`
		Detail   string             `json:"detail,omitempty"`
		SortText string             `json:"sortText,omitempty"`
	}

	CompletionList struct {
		IsIncomplete bool             `json:"isIncomplete"`
		Items        []CompletionItem `json:"items"`
	}

	HoverParams struct {
		TextDocumentPositionParams
	}

	MarkupContent struct {
		Kind  string `json:"kind"`
		Value string `json:"value"`
	}

	Hover struct {
		Contents MarkupContent `json:"contents"`
		Range    *Range        `json:"range,omitempty"`
	}

	DocumentFormattingParams struct {
		TextDocument TextDocumentIdentifier `json:"textDocument"`
	}

	TextEdit struct {
		Range   Range  `json:"range"`
		NewText string `json:"newText"`
	}
)
