package config

import (
	"bytes"
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leapstack-labs/oraparse/pkg/lint"
	"github.com/leapstack-labs/oraparse/pkg/parser"
	"github.com/leapstack-labs/oraparse/pkg/tree"
)

func writeConfig(t *testing.T, dir, body string) string {
	t.Helper()
	path := filepath.Join(dir, FileName)
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func testFlags() *pflag.FlagSet {
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	fs.String("rule", DefaultStartRule, "")
	fs.String("output", DefaultOutput, "")
	fs.Int("max-errors", DefaultMaxErrors, "")
	fs.Bool("recover", false, "")
	fs.String("addr", DefaultAddr, "")
	fs.Duration("debounce", DefaultDebounce, "")
	return fs
}

func TestLoadDefaults(t *testing.T) {
	t.Chdir(t.TempDir())

	cfg, err := Load("", nil)
	require.NoError(t, err)
	require.NoError(t, cfg.Validate())

	assert.Equal(t, DefaultStartRule, cfg.StartRule)
	assert.Equal(t, DefaultCheckRule, cfg.CheckRule)
	assert.Equal(t, DefaultOutput, cfg.Output)
	assert.Equal(t, DefaultMaxErrors, cfg.MaxErrors)
	assert.Equal(t, DefaultAddr, cfg.Server.Addr)
	assert.Equal(t, DefaultReadHeaderTimeout, cfg.Server.ReadHeaderTimeout)
	assert.Equal(t, DefaultDebounce, cfg.Watch.Debounce)
	assert.Empty(t, cfg.File)
}

func TestLoadPrecedence(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	writeConfig(t, dir, `
start_rule: select
output: json
max_errors: 3
server:
  addr: ":9000"
watch:
  debounce: 1s
`)

	t.Run("file", func(t *testing.T) {
		cfg, err := Load("", nil)
		require.NoError(t, err)
		assert.Equal(t, "select", cfg.StartRule)
		assert.Equal(t, OutputJSON, cfg.Output)
		assert.Equal(t, 3, cfg.MaxErrors)
		assert.Equal(t, ":9000", cfg.Server.Addr)
		assert.Equal(t, time.Second, cfg.Watch.Debounce)
		assert.Equal(t, filepath.Join(dir, FileName), cfg.File)
	})

	t.Run("env over file", func(t *testing.T) {
		t.Setenv("ORAPARSE_OUTPUT", "yaml")
		t.Setenv("ORAPARSE_SERVER__ADDR", ":7000")
		cfg, err := Load("", nil)
		require.NoError(t, err)
		assert.Equal(t, OutputYAML, cfg.Output)
		assert.Equal(t, ":7000", cfg.Server.Addr)
		assert.Equal(t, "select", cfg.StartRule)
	})

	t.Run("flags over env", func(t *testing.T) {
		t.Setenv("ORAPARSE_OUTPUT", "yaml")
		fs := testFlags()
		require.NoError(t, fs.Parse([]string{"--output", "sexpr", "--rule", "columnName", "--addr", ":1", "--debounce", "5ms"}))
		cfg, err := Load("", fs)
		require.NoError(t, err)
		assert.Equal(t, OutputSexpr, cfg.Output)
		assert.Equal(t, "columnName", cfg.StartRule)
		assert.Equal(t, ":1", cfg.Server.Addr)
		assert.Equal(t, 5*time.Millisecond, cfg.Watch.Debounce)
	})

	t.Run("unset flags keep file values", func(t *testing.T) {
		fs := testFlags()
		require.NoError(t, fs.Parse(nil))
		cfg, err := Load("", fs)
		require.NoError(t, err)
		assert.Equal(t, OutputJSON, cfg.Output)
		assert.Equal(t, 3, cfg.MaxErrors)
	})
}

func TestLoadSearchesParents(t *testing.T) {
	root := t.TempDir()
	writeConfig(t, root, "output: table\n")
	sub := filepath.Join(root, "a", "b")
	require.NoError(t, os.MkdirAll(sub, 0o755))
	t.Chdir(sub)

	cfg, err := Load("", nil)
	require.NoError(t, err)
	assert.Equal(t, OutputTable, cfg.Output)
}

func TestLoadExplicitFile(t *testing.T) {
	t.Chdir(t.TempDir())
	path := writeConfig(t, t.TempDir(), "recover: true\nworkers: 8\n")

	cfg, err := Load(path, nil)
	require.NoError(t, err)
	assert.True(t, cfg.Recover)
	assert.Equal(t, 8, cfg.Workers)

	_, err = Load(filepath.Join(t.TempDir(), "missing.yaml"), nil)
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name      string
		mutate    func(*Config)
		errSubstr string
	}{
		{"defaults", func(*Config) {}, ""},
		{"unknown rule", func(c *Config) { c.StartRule = "statement" }, "unknown start rule"},
		{"terminal is not a rule", func(c *Config) { c.StartRule = "terminal" }, "unknown start rule"},
		{"bad check rule", func(c *Config) { c.CheckRule = "nope" }, "check_rule"},
		{"bad output", func(c *Config) { c.Output = "xml" }, "unknown output"},
		{"bad color", func(c *Config) { c.Color = "sometimes" }, "unknown color"},
		{"bad dialect", func(c *Config) { c.Dialect = "db2" }, "unknown dialect"},
		{"zero max errors", func(c *Config) { c.MaxErrors = 0 }, "max_errors"},
		{"zero workers", func(c *Config) { c.Workers = 0 }, "workers"},
		{"bad level", func(c *Config) { c.LogLevel = "loud" }, "log_level"},
		{"negative debounce", func(c *Config) { c.Watch.Debounce = -time.Second }, "debounce"},
		{"unknown lint rule", func(c *Config) { c.Lint.Disable = []string{"ZZ01"} }, "unknown lint rule"},
		{"bad lint severity", func(c *Config) { c.Lint.Severity = map[string]string{"OR01": "fatal"} }, "unknown severity"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.errSubstr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errSubstr)
		})
	}
}

func TestResolveRule(t *testing.T) {
	k, err := ResolveRule("columnName")
	require.NoError(t, err)
	assert.Equal(t, tree.ColumnName, k)

	_, err = ResolveRule("")
	assert.ErrorIs(t, err, parser.ErrUnknownRule)
}

func TestParserOptions(t *testing.T) {
	cfg := Default()
	assert.Len(t, cfg.ParserOptions(), 1)

	cfg.Recover = true
	opts := cfg.ParserOptions()
	assert.Len(t, opts, 2)

	res, err := parser.Parse("f(1 +, 2)", tree.Expr, opts...)
	require.Error(t, err)
	require.NotNil(t, res.Root)
	assert.Len(t, res.Errors, 1)
}

func TestContextHelpers(t *testing.T) {
	ctx := context.Background()
	assert.NotNil(t, GetLogger(ctx))
	assert.Equal(t, Default(), FromContext(ctx))

	var buf bytes.Buffer
	l := NewLogger("debug", &buf)
	ctx = WithLogger(ctx, l)
	GetLogger(ctx).Debug("hello", "k", 1)
	assert.Contains(t, buf.String(), "hello")
	assert.Equal(t, l, ctx.Value(LoggerKey()))

	cfg := Default()
	cfg.Output = OutputJSON
	assert.Same(t, cfg, FromContext(WithConfig(ctx, cfg)))
}

func TestParseLevel(t *testing.T) {
	for in, want := range map[string]slog.Level{
		"debug": slog.LevelDebug,
		"INFO":  slog.LevelInfo,
		"warn":  slog.LevelWarn,
		"error": slog.LevelError,
	} {
		got, err := ParseLevel(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got)
	}
	_, err := ParseLevel("verbose")
	assert.Error(t, err)
}

func TestLoadLintSection(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	writeConfig(t, dir, `
lint:
  disable: [ST01]
  severity:
    OR01: error
`)

	cfg, err := Load("", nil)
	require.NoError(t, err)
	require.NoError(t, cfg.Validate())
	assert.Equal(t, []string{"ST01"}, cfg.Lint.Disable)

	lc, err := cfg.LintConfig()
	require.NoError(t, err)
	assert.True(t, lc.IsDisabled("ST01"))
	assert.Equal(t, lint.SeverityError, lc.GetSeverity("OR01", lint.SeverityWarning))
}
