package commands

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/chzyer/readline"
	"github.com/spf13/cobra"

	"github.com/leapstack-labs/oraparse/internal/config"
	"github.com/leapstack-labs/oraparse/pkg/lexer"
	"github.com/leapstack-labs/oraparse/pkg/parser"
	"github.com/leapstack-labs/oraparse/pkg/tree"
)

const (
	replPrompt     = "oraparse> "
	replContPrompt = "     ...> "
)

// NewREPLCommand creates the repl command.
func NewREPLCommand() *cobra.Command {
	var history string

	cmd := &cobra.Command{
		Use:   "repl",
		Short: "Interactive tokenizer and parser",
		Long: `Start an interactive session. Input ending in a semicolon (or a single
line in expression mode) is parsed with the current rule and the tree is
printed. Type .help for commands.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmdCtx := NewCommandContext(cmd)
			rule, err := startRule(cmd, cmdCtx.Cfg.StartRule)
			if err != nil {
				return err
			}
			if history == "" {
				if home, err := os.UserHomeDir(); err == nil {
					history = filepath.Join(home, ".oraparse_history")
				}
			}

			rl, err := readline.NewEx(&readline.Config{
				Prompt:          replPrompt,
				HistoryFile:     history,
				AutoComplete:    newREPLCompleter(),
				InterruptPrompt: "^C",
				EOFPrompt:       ".quit",
				Stdin:           io.NopCloser(cmd.InOrStdin()),
				Stdout:          cmd.OutOrStdout(),
				Stderr:          cmd.ErrOrStderr(),
			})
			if err != nil {
				return fmt.Errorf("failed to initialize REPL: %w", err)
			}
			defer func() { _ = rl.Close() }()

			session := &replSession{ctx: cmdCtx, rule: rule, out: cmd.OutOrStdout(), errOut: cmd.ErrOrStderr()}
			return session.run(rl)
		},
	}

	cmd.Flags().StringP("rule", "r", "expr", "Start rule")
	cmd.Flags().StringVar(&history, "history", "", "History file (default ~/.oraparse_history)")
	_ = cmd.RegisterFlagCompletionFunc("rule", completeRules)
	return cmd
}

// lineReader is the part of *readline.Instance the loop needs.
type lineReader interface {
	Readline() (string, error)
	SetPrompt(string)
}

type replSession struct {
	ctx         *CommandContext
	rule        tree.Kind
	tokensOnly  bool
	out, errOut io.Writer
}

func (s *replSession) run(rl lineReader) error {
	_, _ = fmt.Fprintf(s.out, "oraparse REPL (rule: %s)\n", s.rule)
	_, _ = fmt.Fprintln(s.out, "Type .help for commands, .quit to exit")
	_, _ = fmt.Fprintln(s.out)

	var buf strings.Builder
	for {
		line, err := rl.Readline()
		if errors.Is(err, readline.ErrInterrupt) {
			buf.Reset()
			rl.SetPrompt(replPrompt)
			continue
		}
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return err
		}

		trimmed := strings.TrimSpace(line)
		if trimmed == "" && buf.Len() == 0 {
			continue
		}

		// Handle dot-commands
		if buf.Len() == 0 && strings.HasPrefix(trimmed, ".") {
			if quit := s.dotCommand(trimmed); quit {
				return nil
			}
			continue
		}

		// Queries accumulate until a semicolon; expression-level rules
		// take one line at a time.
		buf.WriteString(line)
		if s.rule == tree.Select && !strings.HasSuffix(trimmed, ";") {
			buf.WriteString("\n")
			rl.SetPrompt(replContPrompt)
			continue
		}
		rl.SetPrompt(replPrompt)

		src := buf.String()
		buf.Reset()
		s.eval(src)
		_, _ = fmt.Fprintln(s.out)
	}
}

// eval tokenizes or parses src and prints the result.
func (s *replSession) eval(src string) {
	r := s.ctx.Renderer
	if s.tokensOnly {
		st, err := lexer.Tokenize(src)
		if err != nil {
			r.Errors(err, src)
			return
		}
		_ = r.Tokens(st, false)
		return
	}

	opts := append(s.ctx.Cfg.ParserOptions(), parser.WithLogger(s.ctx.Logger))
	res, err := parser.Parse(src, s.rule, opts...)
	if res != nil && res.Root != nil {
		_ = r.Tree(s.rule, res)
	}
	if err != nil {
		r.Errors(err, src)
	}
}

// dotCommand runs a dot-command and reports whether the session ends.
func (s *replSession) dotCommand(line string) bool {
	parts := strings.Fields(line)
	command := strings.ToLower(parts[0])

	switch command {
	case ".quit", ".exit":
		return true

	case ".help":
		printREPLHelp(s.out)

	case ".rule":
		if len(parts) < 2 {
			_, _ = fmt.Fprintf(s.out, "rule: %s\n", s.rule)
			return false
		}
		k, err := config.ResolveRule(parts[1])
		if err != nil {
			_, _ = fmt.Fprintf(s.errOut, "Error: %v\n", err)
			return false
		}
		s.rule = k
		_, _ = fmt.Fprintf(s.out, "rule: %s\n", s.rule)

	case ".tokens":
		s.tokensOnly = !s.tokensOnly
		state := "off"
		if s.tokensOnly {
			state = "on"
		}
		_, _ = fmt.Fprintf(s.out, "tokens mode %s\n", state)

	case ".grammar":
		name := s.rule.String()
		if len(parts) > 1 {
			name = parts[1]
		}
		p, ok := parser.Lookup(name)
		if !ok {
			_, _ = fmt.Fprintf(s.errOut, "Error: %v: %q\n", parser.ErrUnknownRule, name)
			return false
		}
		_ = s.ctx.Renderer.Grammar([]parser.Production{p})

	default:
		_, _ = fmt.Fprintf(s.errOut, "Unknown command: %s (type .help for commands)\n", command)
	}
	return false
}

func printREPLHelp(w io.Writer) {
	help := `
Commands:
  .help            Show this help message
  .rule [name]     Show or change the start rule
  .tokens          Toggle printing tokens instead of trees
  .grammar [name]  Show the productions of a rule
  .quit / .exit    Exit the REPL

Tips:
  - With the select rule, input ends at a semicolon (;)
  - Use arrow keys to navigate history
  - Tab completes dot-commands and rule names
`
	_, _ = fmt.Fprintln(w, help)
}

// newREPLCompleter completes dot-commands and rule names.
func newREPLCompleter() *readline.PrefixCompleter {
	kinds := tree.RuleKinds()
	rules := make([]readline.PrefixCompleterInterface, 0, len(kinds))
	for _, k := range kinds {
		rules = append(rules, readline.PcItem(k.String()))
	}

	return readline.NewPrefixCompleter(
		readline.PcItem(".help"),
		readline.PcItem(".rule", rules...),
		readline.PcItem(".tokens"),
		readline.PcItem(".grammar", rules...),
		readline.PcItem(".quit"),
		readline.PcItem(".exit"),
	)
}
