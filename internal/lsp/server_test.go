package lsp

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leapstack-labs/oraparse/internal/testutil"
	"github.com/leapstack-labs/oraparse/pkg/lint"
)

const docURI = "file:///tmp/q.sql"

// session frames requests, runs the server over them and decodes every
// message it wrote.
type session struct {
	in  bytes.Buffer
	seq int
}

func (s *session) request(method string, params any) int {
	s.seq++
	s.send(map[string]any{"jsonrpc": "2.0", "id": s.seq, "method": method, "params": params})
	return s.seq
}

func (s *session) notify(method string, params any) {
	s.send(map[string]any{"jsonrpc": "2.0", "method": method, "params": params})
}

func (s *session) send(msg map[string]any) {
	body, _ := json.Marshal(msg)
	fmt.Fprintf(&s.in, "Content-Length: %d\r\n\r\n%s", len(body), body)
}

func (s *session) run(t *testing.T, opts Options) []Message {
	t.Helper()
	opts.Logger = testutil.NewTestLogger(t)
	var out bytes.Buffer
	require.NoError(t, NewServer(&s.in, &out, opts).Run(context.Background()))
	return decodeAll(t, &out)
}

func decodeAll(t *testing.T, r io.Reader) []Message {
	t.Helper()
	br := bufio.NewReader(r)
	var msgs []Message
	for {
		line, err := br.ReadString('\n')
		if err == io.EOF {
			return msgs
		}
		require.NoError(t, err)
		n, err := strconv.Atoi(strings.TrimSpace(strings.TrimPrefix(line, "Content-Length:")))
		require.NoError(t, err)
		_, err = br.ReadString('\n')
		require.NoError(t, err)
		body := make([]byte, n)
		_, err = io.ReadFull(br, body)
		require.NoError(t, err)
		var msg Message
		require.NoError(t, json.Unmarshal(body, &msg))
		msgs = append(msgs, msg)
	}
}

func response(t *testing.T, msgs []Message, id int, out any) *ResponseError {
	t.Helper()
	for _, m := range msgs {
		if m.ID != nil && string(*m.ID) == strconv.Itoa(id) {
			if m.Error == nil && out != nil {
				require.NoError(t, json.Unmarshal(m.Result, out))
			}
			return m.Error
		}
	}
	t.Fatalf("no response for request %d", id)
	return nil
}

func published(t *testing.T, msgs []Message) []PublishDiagnosticsParams {
	t.Helper()
	var out []PublishDiagnosticsParams
	for _, m := range msgs {
		if m.Method == "textDocument/publishDiagnostics" {
			var p PublishDiagnosticsParams
			require.NoError(t, json.Unmarshal(m.Params, &p))
			out = append(out, p)
		}
	}
	return out
}

func open(s *session, text string) {
	s.notify("textDocument/didOpen", map[string]any{
		"textDocument": map[string]any{"uri": docURI, "languageId": "sql", "version": 1, "text": text},
	})
}

func at(line, char int) map[string]any {
	return map[string]any{
		"textDocument": map[string]any{"uri": docURI},
		"position":     map[string]any{"line": line, "character": char},
	}
}

func TestInitialize(t *testing.T) {
	var s session
	id := s.request("initialize", map[string]any{"processId": 1, "rootUri": "file:///tmp"})
	s.notify("initialized", map[string]any{})
	msgs := s.run(t, Options{Version: "1.2.3"})

	var res InitializeResult
	require.Nil(t, response(t, msgs, id, &res))
	assert.True(t, res.Capabilities.HoverProvider)
	assert.True(t, res.Capabilities.DocumentFormattingProvider)
	assert.Equal(t, TextDocumentSyncKindFull, res.Capabilities.TextDocumentSync.Change)
	assert.Equal(t, "1.2.3", res.ServerInfo.Version)
}

func TestDiagnostics(t *testing.T) {
	var s session
	open(&s, "SELECT a FROM t WHERE b = NULL;\nSELECT FROM u")
	s.notify("textDocument/didChange", map[string]any{
		"textDocument":   map[string]any{"uri": docURI, "version": 2},
		"contentChanges": []map[string]any{{"text": "SELECT a FROM t"}},
	})
	s.notify("textDocument/didClose", map[string]any{"textDocument": map[string]any{"uri": docURI}})
	msgs := s.run(t, Options{Lint: lint.NewAnalyzer(nil)})

	pubs := published(t, msgs)
	require.Len(t, pubs, 3)

	first := pubs[0]
	assert.Equal(t, 1, first.Version)
	require.Len(t, first.Diagnostics, 2)

	syntax := first.Diagnostics[0]
	assert.Equal(t, DiagnosticSeverityError, syntax.Severity)
	assert.Equal(t, Range{Start: Position{1, 7}, End: Position{1, 11}}, syntax.Range)
	assert.Contains(t, syntax.Message, `"FROM"`)

	finding := first.Diagnostics[1]
	assert.Equal(t, "CV01", finding.Code)
	assert.Equal(t, Range{Start: Position{0, 22}, End: Position{0, 30}}, finding.Range)

	assert.Equal(t, 2, pubs[1].Version)
	assert.Empty(t, pubs[1].Diagnostics)
	assert.Empty(t, pubs[2].Diagnostics)
}

func TestCompletion(t *testing.T) {
	var s session
	open(&s, "SEL")
	id := s.request("textDocument/completion", at(0, 3))
	msgs := s.run(t, Options{})

	var list CompletionList
	require.Nil(t, response(t, msgs, id, &list))
	var labels []string
	for _, item := range list.Items {
		labels = append(labels, item.Label)
		assert.True(t, strings.HasPrefix(item.Label, "SEL"))
	}
	assert.Contains(t, labels, "SELECT")
}

func TestHover(t *testing.T) {
	var s session
	open(&s, "SELECT count(x) FROM t WHERE rownum < 3 AND foo = 1")
	kw := s.request("textDocument/hover", at(0, 2))
	agg := s.request("textDocument/hover", at(0, 9))
	pseudo := s.request("textDocument/hover", at(0, 31))
	none := s.request("textDocument/hover", at(0, 45))
	msgs := s.run(t, Options{})

	var h Hover
	require.Nil(t, response(t, msgs, kw, &h))
	assert.Contains(t, h.Contents.Value, "**SELECT** reserved keyword")
	assert.Equal(t, Range{Start: Position{0, 0}, End: Position{0, 6}}, *h.Range)

	require.Nil(t, response(t, msgs, agg, &h))
	assert.Contains(t, h.Contents.Value, "aggregate function")

	require.Nil(t, response(t, msgs, pseudo, &h))
	assert.Contains(t, h.Contents.Value, "pseudo column")

	var missing *Hover
	require.Nil(t, response(t, msgs, none, &missing))
	assert.Nil(t, missing)
}

func TestFormatting(t *testing.T) {
	var s session
	open(&s, "select a\nfrom t where b=1")
	ok := s.request("textDocument/formatting", map[string]any{"textDocument": map[string]any{"uri": docURI}})
	unknown := s.request("textDocument/formatting", map[string]any{"textDocument": map[string]any{"uri": "file:///nope.sql"}})
	msgs := s.run(t, Options{})

	var edits []TextEdit
	require.Nil(t, response(t, msgs, ok, &edits))
	require.Len(t, edits, 1)
	assert.Equal(t, "SELECT a\nFROM t\nWHERE b = 1\n", edits[0].NewText)
	assert.Equal(t, Range{End: Position{1, 16}}, edits[0].Range)

	rpcErr := response(t, msgs, unknown, nil)
	require.NotNil(t, rpcErr)
	assert.Equal(t, codeInvalidParams, rpcErr.Code)
}

func TestShutdown(t *testing.T) {
	var s session
	down := s.request("shutdown", nil)
	after := s.request("textDocument/hover", at(0, 0))
	s.notify("exit", nil)
	s.request("initialize", map[string]any{}) // never read
	msgs := s.run(t, Options{})

	assert.Nil(t, response(t, msgs, down, nil))
	rpcErr := response(t, msgs, after, nil)
	require.NotNil(t, rpcErr)
	assert.Equal(t, codeInvalidRequest, rpcErr.Code)
	assert.Len(t, msgs, 2)
}

func TestUnknownMethod(t *testing.T) {
	var s session
	id := s.request("workspace/symbol", map[string]any{})
	s.notify("$/cancelRequest", map[string]any{"id": 1})
	msgs := s.run(t, Options{})

	require.Len(t, msgs, 1)
	rpcErr := response(t, msgs, id, nil)
	require.NotNil(t, rpcErr)
	assert.Equal(t, codeMethodNotFound, rpcErr.Code)
}

func TestDocumentPositions(t *testing.T) {
	d := newDocument(docURI, "ab\ncdé f\n", 1)
	assert.Equal(t, 0, d.Offset(Position{0, 0}))
	assert.Equal(t, 2, d.Offset(Position{0, 9}))
	assert.Equal(t, 7, d.Offset(Position{1, 3}))
	assert.Equal(t, len(d.Content), d.Offset(Position{5, 0}))
	assert.Equal(t, Position{2, 0}, d.End())

	word, r := d.WordAt(Position{1, 1})
	assert.Equal(t, "cd", word)
	assert.Equal(t, Range{Start: Position{1, 0}, End: Position{1, 2}}, r)
	assert.Equal(t, "c", d.Prefix(Position{1, 1}))

	// Positions past the line or the document clamp like Offset does.
	word, r = d.WordAt(Position{0, 9})
	assert.Equal(t, "ab", word)
	assert.Equal(t, Range{Start: Position{0, 0}, End: Position{0, 2}}, r)
	word, r = d.WordAt(Position{5, 4})
	assert.Empty(t, word)
	assert.Equal(t, Range{Start: Position{2, 0}, End: Position{2, 0}}, r)

	assert.Equal(t, Position{1, 3}, d.PositionAt(7))
	assert.Equal(t, Position{0, 0}, d.PositionAt(-1))
	assert.Equal(t, Position{2, 0}, d.PositionAt(100))
	assert.Equal(t, "/tmp/q.sql", URIToPath(docURI))
}

func TestConnFraming(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		wantErr string
		eof     bool
	}{
		{name: "empty input", in: "", eof: true},
		{name: "truncated header", in: "Content-Length: 4\r\n", eof: true},
		{name: "no length", in: "Content-Type: x\r\n\r\n{}", wantErr: "without Content-Length"},
		{name: "bad length", in: "Content-Length: abc\r\n\r\n", wantErr: "bad Content-Length"},
		{name: "short body", in: "Content-Length: 10\r\n\r\n{}", wantErr: "short body"},
		{name: "bad json", in: "Content-Length: 2\r\n\r\n{[", wantErr: "decode frame"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := newConn(strings.NewReader(tt.in), io.Discard).read()
			if tt.eof {
				assert.ErrorIs(t, err, io.EOF)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}

	var out bytes.Buffer
	c := newConn(strings.NewReader(""), &out)
	require.NoError(t, c.notify("window/logMessage", map[string]string{"message": "hi"}))
	msgs := decodeAll(t, &out)
	require.Len(t, msgs, 1)
	assert.Equal(t, "2.0", msgs[0].JSONRPC)
	assert.Equal(t, "window/logMessage", msgs[0].Method)
}
