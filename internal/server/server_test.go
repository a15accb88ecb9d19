package server

import (
	"context"
	"encoding/json"
	"fmt"
	"net"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leapstack-labs/oraparse/internal/testutil"
)

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	s := New(Config{Logger: testutil.NewTestLogger(t), MaxBodyBytes: 4096})
	ts := httptest.NewServer(s.Handler())
	t.Cleanup(ts.Close)
	return ts
}

func do(t *testing.T, ts *httptest.Server, method, path, body string, out any) int {
	t.Helper()
	req, err := http.NewRequestWithContext(context.Background(), method, ts.URL+path, strings.NewReader(body))
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	resp, err := ts.Client().Do(req)
	require.NoError(t, err)
	defer func() { _ = resp.Body.Close() }()
	assert.Equal(t, "application/json", resp.Header.Get("Content-Type"))
	if out != nil {
		require.NoError(t, json.NewDecoder(resp.Body).Decode(out))
	}
	return resp.StatusCode
}

func TestHealth(t *testing.T) {
	ts := newTestServer(t)
	var body map[string]string
	assert.Equal(t, http.StatusOK, do(t, ts, http.MethodGet, "/healthz", "", &body))
	assert.Equal(t, "ok", body["status"])
}

func TestTokenize(t *testing.T) {
	ts := newTestServer(t)

	var resp tokenizeResponse
	status := do(t, ts, http.MethodPost, "/v1/tokenize", `{"sql":"SELECT q'[it's]' -- c","hidden":true}`, &resp)
	require.Equal(t, http.StatusOK, status)
	require.Len(t, resp.Tokens, 2)
	assert.Equal(t, tokenJSON{Type: "SELECT", Text: "SELECT", Value: "SELECT", Line: 1, Column: 1}, resp.Tokens[0])
	assert.Equal(t, "STRING", resp.Tokens[1].Type)
	assert.Equal(t, "it's", resp.Tokens[1].Value)
	require.NotEmpty(t, resp.Hidden)
	assert.Equal(t, "LINE_COMMENT", resp.Hidden[len(resp.Hidden)-1].Kind)
}

func TestTokenizeLexError(t *testing.T) {
	ts := newTestServer(t)

	var resp errorResponse
	status := do(t, ts, http.MethodPost, "/v1/tokenize", `{"sql":"a = 'open"}`, &resp)
	assert.Equal(t, http.StatusUnprocessableEntity, status)
	assert.Equal(t, errorBody{Message: "unterminated string literal", Line: 1, Column: 5, Offset: 4}, resp.Error)
}

func TestErrorBodyFields(t *testing.T) {
	ts := newTestServer(t)

	var resp map[string]map[string]any
	status := do(t, ts, http.MethodPost, "/v1/parse", `{"sql":")"}`, &resp)
	require.Equal(t, http.StatusUnprocessableEntity, status)
	body := resp["error"]
	assert.Equal(t, float64(1), body["line"])
	assert.Equal(t, float64(1), body["column"])
	assert.NotContains(t, body, "offset")

	status = do(t, ts, http.MethodPost, "/v1/parse", `{"sql":"a","rule":"statement"}`, &resp)
	require.Equal(t, http.StatusBadRequest, status)
	assert.Contains(t, resp["error"], "line")
	assert.Contains(t, resp["error"], "column")
}

func TestParse(t *testing.T) {
	ts := newTestServer(t)

	var resp parseResponse
	status := do(t, ts, http.MethodPost, "/v1/parse", `{"sql":"a.b = 1 AND c > 2"}`, &resp)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, "expr", resp.Rule)
	require.NotNil(t, resp.Tree)
	assert.Equal(t, "expr", resp.Tree.Rule)
	assert.Equal(t, 17, resp.Tree.End)
	assert.Empty(t, resp.Errors)
}

func TestParseWithRule(t *testing.T) {
	ts := newTestServer(t)

	var resp parseResponse
	status := do(t, ts, http.MethodPost, "/v1/parse", `{"sql":"SELECT a FROM t","rule":"select"}`, &resp)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, "select", resp.Tree.Rule)
}

func TestParseErrors(t *testing.T) {
	ts := newTestServer(t)

	tests := []struct {
		name   string
		body   string
		status int
		want   errorBody
	}{
		{
			name:   "syntax",
			body:   `{"sql":"a +"}`,
			status: http.StatusUnprocessableEntity,
			want:   errorBody{Message: "unexpected end of input, expected expression", Line: 1, Column: 4, Offset: 3},
		},
		{
			name:   "unknown rule",
			body:   `{"sql":"a","rule":"statement"}`,
			status: http.StatusBadRequest,
			want:   errorBody{Message: `unknown start rule: "statement"`},
		},
		{
			name:   "bad json",
			body:   `{"sql":`,
			status: http.StatusBadRequest,
		},
		{
			name:   "unknown field",
			body:   `{"query":"a"}`,
			status: http.StatusBadRequest,
		},
		{
			name:   "too large",
			body:   fmt.Sprintf(`{"sql":"%s"}`, strings.Repeat("a", 5000)),
			status: http.StatusRequestEntityTooLarge,
			want:   errorBody{Message: "request body too large"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var resp errorResponse
			status := do(t, ts, http.MethodPost, "/v1/parse", tt.body, &resp)
			assert.Equal(t, tt.status, status)
			if tt.want.Message != "" {
				assert.Equal(t, tt.want, resp.Error)
			} else {
				assert.NotEmpty(t, resp.Error.Message)
			}
		})
	}
}

func TestParseRecover(t *testing.T) {
	ts := newTestServer(t)

	var resp parseResponse
	status := do(t, ts, http.MethodPost, "/v1/parse", `{"sql":"f(1 +, 2)","recover":true}`, &resp)
	assert.Equal(t, http.StatusUnprocessableEntity, status)
	require.NotNil(t, resp.Tree)
	require.Len(t, resp.Errors, 1)
	assert.Equal(t, 6, resp.Errors[0].Column)
}

func TestFormat(t *testing.T) {
	ts := newTestServer(t)

	var resp formatResponse
	status := do(t, ts, http.MethodPost, "/v1/format", `{"sql":"select a from t where b=1"}`, &resp)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, "SELECT a\nFROM t\nWHERE b = 1\n", resp.SQL)

	status = do(t, ts, http.MethodPost, "/v1/format", `{"sql":"a+1","rule":"expr"}`, &resp)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, "a + 1\n", resp.SQL)

	var errResp errorResponse
	status = do(t, ts, http.MethodPost, "/v1/format", `{"sql":"select from"}`, &errResp)
	assert.Equal(t, http.StatusUnprocessableEntity, status)
	assert.Equal(t, 8, errResp.Error.Column)

	status = do(t, ts, http.MethodPost, "/v1/format", `{"sql":"a","rule":"nope"}`, &errResp)
	assert.Equal(t, http.StatusBadRequest, status)
}

func TestLint(t *testing.T) {
	ts := newTestServer(t)

	var resp lintResponse
	status := do(t, ts, http.MethodPost, "/v1/lint", `{"sql":"SELECT a FROM t WHERE ROWNUM > 5; SELECT b FROM u"}`, &resp)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, 2, resp.Statements)
	require.Len(t, resp.Findings, 1)
	assert.Equal(t, "OR02", resp.Findings[0].Rule)
	assert.Equal(t, 1, resp.Findings[0].Statement)

	status = do(t, ts, http.MethodPost, "/v1/lint", `{"sql":"SELECT a FROM t WHERE ROWNUM > 5","disable":["OR02"]}`, &resp)
	require.Equal(t, http.StatusOK, status)
	assert.Empty(t, resp.Findings)

	var errResp errorResponse
	status = do(t, ts, http.MethodPost, "/v1/lint", `{"sql":"SELECT a FROM","disable":[]}`, &errResp)
	assert.Equal(t, http.StatusUnprocessableEntity, status)

	status = do(t, ts, http.MethodPost, "/v1/lint", `{"sql":"SELECT 1 FROM t","disable":["XX"]}`, &errResp)
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Contains(t, errResp.Error.Message, "unknown lint rule")
}

func TestKeywords(t *testing.T) {
	ts := newTestServer(t)

	var all, reserved, unreserved []keywordJSON
	require.Equal(t, http.StatusOK, do(t, ts, http.MethodGet, "/v1/keywords", "", &all))
	require.Equal(t, http.StatusOK, do(t, ts, http.MethodGet, "/v1/keywords?reserved=true", "", &reserved))
	require.Equal(t, http.StatusOK, do(t, ts, http.MethodGet, "/v1/keywords?reserved=false", "", &unreserved))

	assert.Len(t, reserved, 69)
	assert.Equal(t, len(all), len(reserved)+len(unreserved))
	for _, k := range reserved {
		assert.True(t, k.Reserved, k.Spelling)
	}
}

func TestGrammar(t *testing.T) {
	ts := newTestServer(t)

	var prods []productionJSON
	require.Equal(t, http.StatusOK, do(t, ts, http.MethodGet, "/v1/grammar", "", &prods))
	require.NotEmpty(t, prods)

	var one productionJSON
	require.Equal(t, http.StatusOK, do(t, ts, http.MethodGet, "/v1/grammar/caseElse", "", &one))
	assert.Equal(t, productionJSON{Name: "caseElse", Group: one.Group, Alternatives: []string{"ELSE expr"}}, one)

	var missing errorResponse
	assert.Equal(t, http.StatusNotFound, do(t, ts, http.MethodGet, "/v1/grammar/nope", "", &missing))
}

func TestNotFound(t *testing.T) {
	ts := newTestServer(t)
	var resp errorResponse
	assert.Equal(t, http.StatusNotFound, do(t, ts, http.MethodGet, "/nope", "", &resp))
	assert.Equal(t, "not found", resp.Error.Message)
}

func TestServeListenerShutdown(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	s := New(Config{Logger: testutil.NewTestLogger(t)})
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- s.ServeListener(ctx, ln) }()

	url := "http://" + ln.Addr().String() + "/healthz"
	require.Eventually(t, func() bool {
		resp, err := http.Get(url) //nolint:noctx
		if err != nil {
			return false
		}
		_ = resp.Body.Close()
		return resp.StatusCode == http.StatusOK
	}, 2*time.Second, 10*time.Millisecond)

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not shut down")
	}
}
