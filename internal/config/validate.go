package config

import (
	"fmt"
	"slices"
	"strings"

	"github.com/leapstack-labs/oraparse/pkg/dialect"
	"github.com/leapstack-labs/oraparse/pkg/lint"
	"github.com/leapstack-labs/oraparse/pkg/parser"
	"github.com/leapstack-labs/oraparse/pkg/tree"
)

// OutputModes lists the accepted output values.
var OutputModes = []string{OutputText, OutputTable, OutputJSON, OutputYAML, OutputSexpr}

// ColorModes lists the accepted color values.
var ColorModes = []string{ColorAuto, ColorAlways, ColorNever}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if _, err := ResolveRule(c.StartRule); err != nil {
		return fmt.Errorf("start_rule: %w", err)
	}
	if _, err := ResolveRule(c.CheckRule); err != nil {
		return fmt.Errorf("check_rule: %w", err)
	}
	if _, err := dialect.Lookup(c.Dialect); err != nil {
		return err
	}
	if !slices.Contains(OutputModes, c.Output) {
		return fmt.Errorf("unknown output %q (want one of %s)", c.Output, strings.Join(OutputModes, ", "))
	}
	if !slices.Contains(ColorModes, c.Color) {
		return fmt.Errorf("unknown color %q (want one of %s)", c.Color, strings.Join(ColorModes, ", "))
	}
	if c.MaxErrors < 1 {
		return fmt.Errorf("max_errors must be at least 1, got %d", c.MaxErrors)
	}
	if c.Workers < 1 {
		return fmt.Errorf("workers must be at least 1, got %d", c.Workers)
	}
	if _, err := ParseLevel(c.LogLevel); err != nil {
		return err
	}
	if c.Watch != nil && c.Watch.Debounce < 0 {
		return fmt.Errorf("watch.debounce must not be negative")
	}
	if c.Server != nil && c.Server.MaxBodyBytes < 1 {
		return fmt.Errorf("server.max_body_bytes must be positive")
	}
	if _, err := c.LintConfig(); err != nil {
		return fmt.Errorf("lint: %w", err)
	}
	return nil
}

// LintConfig converts the lint section into an analyzer configuration.
func (c *Config) LintConfig() (*lint.Config, error) {
	if c.Lint == nil {
		return lint.NewConfig(), nil
	}
	return lint.ParseConfig(c.Lint.Disable, c.Lint.Severity)
}

// ResolveRule maps a rule name such as "expr" or "columnName" to its kind.
func ResolveRule(name string) (tree.Kind, error) {
	k, ok := tree.KindByName(name)
	if !ok || !parser.HasRule(k) {
		return 0, fmt.Errorf("%w: %q", parser.ErrUnknownRule, name)
	}
	return k, nil
}

// Rule returns the start rule kind. Call after Validate.
func (c *Config) Rule() tree.Kind {
	k, _ := ResolveRule(c.StartRule)
	return k
}

// ParserOptions returns the parser options for this configuration.
func (c *Config) ParserOptions() []parser.Option {
	opts := c.DialectOptions()
	if c.Recover {
		opts = append(opts, parser.WithRecovery(c.MaxErrors))
	}
	return opts
}

// DialectOptions returns the parser options without error recovery, for
// callers that need a complete tree.
func (c *Config) DialectOptions() []parser.Option {
	var opts []parser.Option
	if d, ok := dialect.Get(c.Dialect); ok {
		opts = append(opts, parser.WithDialect(d))
	}
	return opts
}
