package cli

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leapstack-labs/oraparse/internal/cli/commands"
	"github.com/leapstack-labs/oraparse/pkg/tree"
)

// run executes the root command in an empty directory so no config file
// is picked up.
func run(t *testing.T, stdin string, args ...string) (string, string, error) {
	t.Helper()
	t.Chdir(t.TempDir())
	cfgFile = ""

	cmd := NewRootCmd()
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), errOut.String(), err
}

func TestRootCommands(t *testing.T) {
	cmd := NewRootCmd()
	var names []string
	for _, c := range cmd.Commands() {
		names = append(names, c.Name())
	}
	for _, want := range []string{"tokens", "parse", "keywords", "grammar", "check", "lint", "fmt", "repl", "serve", "lsp", "version", "completion"} {
		assert.Contains(t, names, want)
	}
}

func TestParseCommand(t *testing.T) {
	t.Run("sexpr", func(t *testing.T) {
		out, _, err := run(t, "", "parse", "-o", "sexpr", "a = 1")
		require.NoError(t, err)
		assert.True(t, strings.HasPrefix(out, "(expr "), out)
	})

	t.Run("stdin", func(t *testing.T) {
		out, _, err := run(t, "SELECT a FROM t;", "parse", "--rule", "select", "-o", "sexpr", "-")
		require.NoError(t, err)
		assert.True(t, strings.HasPrefix(out, "(select "), out)
	})

	t.Run("json", func(t *testing.T) {
		out, _, err := run(t, "", "parse", "-o", "json", "--rule", "columnName", "s.t.c")
		require.NoError(t, err)
		var v struct {
			Rule string     `json:"rule"`
			Tree *tree.View `json:"tree"`
		}
		require.NoError(t, json.Unmarshal([]byte(out), &v))
		assert.Equal(t, "columnName", v.Rule)
		assert.Equal(t, "columnName", v.Tree.Rule)
	})

	t.Run("syntax error", func(t *testing.T) {
		out, errOut, err := run(t, "", "parse", "--color", "never", "a +")
		assert.ErrorIs(t, err, commands.ErrReported)
		assert.Empty(t, out)
		assert.Contains(t, errOut, "Error: parse error at line 1, column 4: unexpected end of input, expected expression")
		assert.Contains(t, errOut, "   1 | a +\n     |    ^\n")
	})

	t.Run("recover prints partial tree", func(t *testing.T) {
		out, errOut, err := run(t, "", "parse", "--recover", "-o", "sexpr", "f(1 +, 2)")
		assert.ErrorIs(t, err, commands.ErrReported)
		assert.Contains(t, out, "(error ")
		assert.Contains(t, errOut, "column 6")
	})

	t.Run("unknown rule", func(t *testing.T) {
		_, _, err := run(t, "", "parse", "--rule", "nope", "a")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "unknown start rule")
	})
}

func TestTokensCommand(t *testing.T) {
	out, _, err := run(t, "", "tokens", "-o", "json", "SELECT", "x")
	require.NoError(t, err)
	var toks []map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &toks))
	require.Len(t, toks, 2)
	assert.Equal(t, "SELECT", toks[0]["type"])
	assert.Equal(t, "IDENT", toks[1]["type"])

	_, errOut, err := run(t, "", "tokens", "--color", "never", "'open")
	assert.ErrorIs(t, err, commands.ErrReported)
	assert.Contains(t, errOut, "unterminated string literal")
}

func TestKeywordsCommand(t *testing.T) {
	out, _, err := run(t, "", "keywords", "--reserved", "-o", "json")
	require.NoError(t, err)
	var kws []struct {
		Spelling string `json:"spelling"`
		Reserved bool   `json:"reserved"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &kws))
	assert.Len(t, kws, 69)

	_, _, err = run(t, "", "keywords", "--reserved", "--nonreserved")
	assert.Error(t, err)
}

func TestGrammarCommand(t *testing.T) {
	out, _, err := run(t, "", "grammar", "--color", "never", "caseElse")
	require.NoError(t, err)
	assert.Contains(t, out, "caseElse : ELSE expr")

	_, _, err = run(t, "", "grammar", "nope")
	assert.Error(t, err)
}

func TestCheckCommand(t *testing.T) {
	dir := t.TempDir()
	good := filepath.Join(dir, "good.sql")
	bad := filepath.Join(dir, "bad.sql")
	require.NoError(t, os.WriteFile(good, []byte("SELECT a FROM t;\nSELECT b FROM u;"), 0o600))
	require.NoError(t, os.WriteFile(bad, []byte("SELECT a FROM t WHERE;"), 0o600))

	out, _, err := run(t, "", "check", "--color", "never", good)
	require.NoError(t, err)
	assert.Contains(t, out, "ok "+good+" (2 statements)")

	out, _, err = run(t, "", "check", "--color", "never", good, bad)
	assert.ErrorIs(t, err, commands.ErrReported)
	assert.Contains(t, out, "FAIL "+bad)
	assert.Contains(t, out, "2 files, 1 failed, 1 errors")

	_, _, err = run(t, "", "check")
	assert.Error(t, err)
}

func TestLintCommand(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "q.sql")
	require.NoError(t, os.WriteFile(path, []byte("SELECT * FROM t WHERE a = NULL;"), 0o600))

	out, _, err := run(t, "", "lint", "--color", "never", path)
	assert.ErrorIs(t, err, commands.ErrReported)
	assert.Contains(t, out, path+":1:8: info [ST01]")
	assert.Contains(t, out, path+":1:23: error [CV01]")
	assert.Contains(t, out, "1 files, 2 findings")

	out, _, err = run(t, "", "lint", "--color", "never", "--disable", "CV01", path)
	require.NoError(t, err)
	assert.NotContains(t, out, "CV01")
	assert.Contains(t, out, "1 files, 1 findings")

	out, _, err = run(t, "", "lint", "--rules", "-o", "json")
	require.NoError(t, err)
	var rules []map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &rules))
	assert.Len(t, rules, 6)

	_, _, err = run(t, "", "lint", "--disable", "NOPE", path)
	assert.ErrorContains(t, err, "unknown lint rule")
}

func TestFmtCommand(t *testing.T) {
	out, _, err := run(t, "", "fmt", "select a,b from t where a=1")
	require.NoError(t, err)
	assert.Equal(t, "SELECT a, b\nFROM t\nWHERE a = 1\n", out)

	out, _, err = run(t, "select 1 from t;", "fmt", "-o", "json", "-")
	require.NoError(t, err)
	assert.JSONEq(t, `{"sql": "SELECT 1\nFROM t;\n"}`, out)

	_, errOut, err := run(t, "", "fmt", "--color", "never", "select from")
	assert.ErrorIs(t, err, commands.ErrReported)
	assert.Contains(t, errOut, "Error:")
}

func TestLSPCommand(t *testing.T) {
	body := `{"jsonrpc":"2.0","id":1,"method":"shutdown"}`
	exit := `{"jsonrpc":"2.0","method":"exit"}`
	in := fmt.Sprintf("Content-Length: %d\r\n\r\n%sContent-Length: %d\r\n\r\n%s", len(body), body, len(exit), exit)

	out, _, err := run(t, in, "lsp")
	require.NoError(t, err)
	assert.Contains(t, out, `"id":1`)
	assert.True(t, strings.HasPrefix(out, "Content-Length: "))
}

func TestConfigFileApplies(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "custom.yaml")
	require.NoError(t, os.WriteFile(path, []byte("output: sexpr\n"), 0o600))

	out, _, err := run(t, "", "--config", path, "parse", "a")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "(expr "), out)
}

func TestInvalidConfig(t *testing.T) {
	_, _, err := run(t, "", "parse", "-o", "xml", "a")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid configuration")
}

func TestCompletionCommand(t *testing.T) {
	out, _, err := run(t, "", "completion", "bash")
	require.NoError(t, err)
	assert.Contains(t, out, "oraparse")
}
