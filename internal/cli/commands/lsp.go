package commands

import (
	"github.com/spf13/cobra"

	"github.com/leapstack-labs/oraparse/internal/lsp"
	"github.com/leapstack-labs/oraparse/pkg/dialect"
	"github.com/leapstack-labs/oraparse/pkg/lint"
)

// NewLSPCommand creates the lsp command.
func NewLSPCommand(version string) *cobra.Command {
	var noLint bool

	cmd := &cobra.Command{
		Use:   "lsp",
		Short: "Start a language server on stdin and stdout",
		Long: `Start a Language Server Protocol server speaking over stdio.

Open documents are checked on every change. Syntax errors and lint
findings are published as diagnostics; keywords are completed and
described on hover, and whole-document formatting is available. Logs go
to stderr.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmdCtx := NewCommandContext(cmd)
			rule, err := startRule(cmd, cmdCtx.Cfg.CheckRule)
			if err != nil {
				return err
			}
			d, _ := dialect.Get(cmdCtx.Cfg.Dialect)

			opts := lsp.Options{Rule: rule, Dialect: d, Logger: cmdCtx.Logger, Version: version}
			if !noLint {
				lintCfg, err := cmdCtx.Cfg.LintConfig()
				if err != nil {
					return err
				}
				opts.Lint = lint.NewAnalyzer(lintCfg)
			}
			return lsp.NewServer(cmd.InOrStdin(), cmd.OutOrStdout(), opts).Run(cmd.Context())
		},
	}

	cmd.Flags().StringP("rule", "r", "select", "Start rule for each statement")
	cmd.Flags().BoolVar(&noLint, "no-lint", false, "Publish syntax errors only")
	_ = cmd.RegisterFlagCompletionFunc("rule", completeRules)
	return cmd
}
