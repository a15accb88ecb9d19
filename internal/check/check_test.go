package check

import (
	"context"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leapstack-labs/oraparse/internal/testutil"
	"github.com/leapstack-labs/oraparse/pkg/lint"
	"github.com/leapstack-labs/oraparse/pkg/parser"
	"github.com/leapstack-labs/oraparse/pkg/tree"
)

func writeFile(t *testing.T, dir, name, body string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestCheckSource(t *testing.T) {
	c := &Checker{Logger: testutil.NewTestLogger(t)}

	tests := []struct {
		name       string
		src        string
		statements int
		diags      []Diagnostic
	}{
		{
			name:       "clean",
			src:        "SELECT a FROM t;\nSELECT b FROM u WHERE b > 1;",
			statements: 2,
		},
		{
			name:       "empty statements dropped",
			src:        ";;SELECT 1 FROM dual;;",
			statements: 1,
		},
		{
			name:       "error in second statement",
			src:        "SELECT a FROM t;\nSELECT FROM u;",
			statements: 2,
			diags: []Diagnostic{
				{Statement: 2, Line: 2, Column: 8, Offset: 24, Message: `unexpected reserved word "FROM", expected expression`},
			},
		},
		{
			name: "lexical error",
			src:  "SELECT 'open",
			diags: []Diagnostic{
				{Statement: 0, Line: 1, Column: 8, Offset: 7, Message: "unterminated string literal"},
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := c.CheckSource("x.sql", tt.src)
			assert.Equal(t, tt.statements, res.Statements)
			assert.Equal(t, tt.diags, res.Diagnostics)
			assert.Equal(t, len(tt.diags) == 0, res.OK())
		})
	}
}

func TestCheckSourceWithRule(t *testing.T) {
	c := &Checker{Rule: tree.Expr}
	res := c.CheckSource("e.sql", "a = 1; b > ; c")
	require.Len(t, res.Diagnostics, 1)
	assert.Equal(t, 2, res.Diagnostics[0].Statement)
	assert.Equal(t, 3, res.Statements)
}

func TestCheckSourceLogsSummary(t *testing.T) {
	log, rec := testutil.NewRecorder()
	c := &Checker{Logger: log, Lint: lint.NewAnalyzer(nil)}
	c.CheckSource("q.sql", "SELECT * FROM t;\nSELECT FROM;")

	lines := rec.Lines("checked file")
	require.Len(t, lines, 1)
	assert.Contains(t, lines[0], "path=q.sql")
	assert.Contains(t, lines[0], "statements=2")
	assert.Contains(t, lines[0], "errors=1")
	assert.Contains(t, lines[0], "findings=1")
}

func TestCheckSourceRecovery(t *testing.T) {
	c := &Checker{Rule: tree.Expr, Options: []parser.Option{parser.WithRecovery(10)}}
	res := c.CheckSource("e.sql", "f(1 +, 2 +)")
	assert.Len(t, res.Diagnostics, 2)
}

func TestCheckSourceLint(t *testing.T) {
	c := &Checker{Logger: testutil.NewTestLogger(t), Lint: lint.NewAnalyzer(nil)}

	res := c.CheckSource("q.sql", "SELECT a FROM t;\nSELECT a FROM t WHERE b = NULL;\nSELECT FROM;")
	require.Len(t, res.Diagnostics, 1)
	assert.Equal(t, 3, res.Diagnostics[0].Statement)

	require.Len(t, res.Findings, 1)
	f := res.Findings[0]
	assert.Equal(t, 2, f.Statement)
	assert.Equal(t, "CV01", f.Rule)
	assert.Equal(t, 2, f.Line)
	assert.Equal(t, 23, f.Column)
	assert.True(t, res.HasErrorFindings())

	quiet := &Checker{Lint: lint.NewAnalyzer(lint.NewConfig().SetSeverity("CV01", lint.SeverityWarning))}
	res = quiet.CheckSource("q.sql", "SELECT a FROM t WHERE b = NULL")
	require.Len(t, res.Findings, 1)
	assert.False(t, res.HasErrorFindings())
	assert.True(t, res.OK())
}

func TestCheckFilesOrderAndErrors(t *testing.T) {
	dir := t.TempDir()
	var paths []string
	for i, body := range []string{"SELECT 1 FROM dual", "SELECT FROM", "SELECT a, b FROM t", "SELECT (", "SELECT x FROM y"} {
		paths = append(paths, writeFile(t, dir, string(rune('a'+i))+".sql", body))
	}
	missing := filepath.Join(dir, "missing.sql")
	paths = append(paths, missing)

	c := &Checker{Workers: 3, Logger: testutil.NewTestLogger(t)}
	results, err := c.CheckFiles(context.Background(), paths)
	require.NoError(t, err)
	require.Len(t, results, len(paths))

	for i, r := range results {
		assert.Equal(t, paths[i], r.Path)
	}
	ok := []bool{true, false, true, false, true, false}
	for i, r := range results {
		assert.Equal(t, ok[i], r.OK(), r.Path)
	}
	assert.ErrorIs(t, results[5].Err, os.ErrNotExist)
}

func TestCheckFilesDirectory(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "a.sql", "SELECT 1 FROM dual")
	writeFile(t, dir, "sub/b.sql", "SELECT 2 FROM dual")
	writeFile(t, dir, "notes.txt", "not sql")

	c := &Checker{}
	results, err := c.CheckFiles(context.Background(), []string{dir})
	require.NoError(t, err)
	require.Len(t, results, 2)
	assert.Equal(t, filepath.Join(dir, "a.sql"), results[0].Path)
	assert.Equal(t, filepath.Join(dir, "sub", "b.sql"), results[1].Path)
}

func TestCheckFilesUnknownRule(t *testing.T) {
	c := &Checker{Rule: tree.Terminal}
	_, err := c.CheckFiles(context.Background(), nil)
	assert.ErrorIs(t, err, parser.ErrUnknownRule)
}

func TestCheckFilesCancelled(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "a.sql", "SELECT 1 FROM dual")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := (&Checker{}).CheckFiles(ctx, []string{path})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestRelevant(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "one.txt")
	files := map[string]bool{file: true}
	roots := []string{filepath.Join(dir, "models")}

	assert.True(t, relevant(file, files, roots))
	assert.True(t, relevant(filepath.Join(dir, "models", "x", "a.sql"), files, roots))
	assert.False(t, relevant(filepath.Join(dir, "models", "a.txt"), files, roots))
	assert.False(t, relevant(filepath.Join(dir, "other.sql"), files, roots))
}

func TestWatch(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "a.sql", "SELECT 1 FROM dual")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var runs atomic.Int32
	done := make(chan error, 1)
	go func() {
		done <- Watch(ctx, []string{dir}, 20*time.Millisecond, testutil.NewTestLogger(t), func(context.Context) {
			runs.Add(1)
		})
	}()

	require.Eventually(t, func() bool { return runs.Load() == 1 }, 2*time.Second, 10*time.Millisecond)

	for range 3 {
		require.NoError(t, os.WriteFile(path, []byte("SELECT 2 FROM dual"), 0o600))
	}
	require.Eventually(t, func() bool { return runs.Load() >= 2 }, 2*time.Second, 10*time.Millisecond)

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("watch did not stop")
	}
}
