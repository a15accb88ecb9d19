package commands

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/leapstack-labs/oraparse/internal/cli/output"
	"github.com/leapstack-labs/oraparse/internal/config"
	"github.com/leapstack-labs/oraparse/pkg/tree"
)

// ErrReported is returned after a command has already written its errors;
// the caller only sets the exit status.
var ErrReported = errors.New("errors reported")

// CommandContext holds common dependencies for CLI commands.
type CommandContext struct {
	Cfg      *config.Config
	Logger   *slog.Logger
	Renderer *output.Renderer
}

// NewCommandContext builds the context for cmd from the configuration the
// root command loaded.
func NewCommandContext(cmd *cobra.Command) *CommandContext {
	cfg := config.FromContext(cmd.Context())
	return &CommandContext{
		Cfg:      cfg,
		Logger:   config.GetLogger(cmd.Context()),
		Renderer: output.NewRenderer(cmd.OutOrStdout(), cmd.ErrOrStderr(), output.Mode(cfg.Output), cfg.Color),
	}
}

// readInput returns the SQL given as arguments, or standard input when
// there are none or the only argument is "-".
func readInput(cmd *cobra.Command, args []string) (string, error) {
	if len(args) == 0 || (len(args) == 1 && args[0] == "-") {
		if f, ok := cmd.InOrStdin().(*os.File); ok && f == os.Stdin {
			if info, err := f.Stat(); err == nil && info.Mode()&os.ModeCharDevice != 0 {
				return "", fmt.Errorf("no SQL given: pass it as an argument or pipe it on stdin")
			}
		}
		b, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return "", fmt.Errorf("failed to read stdin: %w", err)
		}
		return string(b), nil
	}
	return strings.Join(args, " "), nil
}

// startRule resolves the rule flag of cmd, falling back to fallback.
func startRule(cmd *cobra.Command, fallback string) (tree.Kind, error) {
	name := fallback
	if f := cmd.Flags().Lookup("rule"); f != nil && f.Changed {
		name = f.Value.String()
	}
	return config.ResolveRule(name)
}

// completeRules offers every rule name for --rule.
func completeRules(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
	kinds := tree.RuleKinds()
	names := make([]string, 0, len(kinds))
	for _, k := range kinds {
		names = append(names, k.String())
	}
	return names, cobra.ShellCompDirectiveNoFileComp
}
