package commands

import (
	"github.com/spf13/cobra"

	"github.com/leapstack-labs/oraparse/internal/check"
	"github.com/leapstack-labs/oraparse/pkg/lint"
)

// NewLintCommand creates the lint command.
func NewLintCommand() *cobra.Command {
	var listRules bool

	cmd := &cobra.Command{
		Use:   "lint FILE|DIR...",
		Short: "Report questionable constructs in SQL files",
		Long: `Lint SQL files.

Each statement is parsed like 'oraparse check' does and, when it parses,
run through the lint rules. Rules can be disabled with --disable or the
lint.disable config key, and lint.severity overrides their severity. The
command fails when a file has syntax errors or an error-severity finding.`,
		Example: `  oraparse lint queries/
  oraparse lint --disable ST01,OR01 report.sql
  oraparse lint --rules`,
		Args: func(cmd *cobra.Command, args []string) error {
			if listRules {
				return cobra.NoArgs(cmd, args)
			}
			return cobra.MinimumNArgs(1)(cmd, args)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			cmdCtx := NewCommandContext(cmd)
			if listRules {
				return cmdCtx.Renderer.Rules(lint.GetAll())
			}

			rule, err := startRule(cmd, cmdCtx.Cfg.CheckRule)
			if err != nil {
				return err
			}
			lintCfg, err := cmdCtx.Cfg.LintConfig()
			if err != nil {
				return err
			}

			checker := &check.Checker{
				Rule:    rule,
				Workers: cmdCtx.Cfg.Workers,
				Options: cmdCtx.Cfg.DialectOptions(),
				Logger:  cmdCtx.Logger,
				Lint:    lint.NewAnalyzer(lintCfg),
			}
			results, err := checker.CheckFiles(cmd.Context(), args)
			if err != nil {
				return err
			}
			if err := cmdCtx.Renderer.LintResults(results); err != nil {
				return err
			}
			for _, r := range results {
				if !r.OK() || r.HasErrorFindings() {
					return ErrReported
				}
			}
			return nil
		},
	}

	cmd.Flags().StringP("rule", "r", "select", "Start rule for each statement")
	cmd.Flags().StringSlice("disable", nil, "Rule IDs to skip")
	cmd.Flags().Int("workers", 0, "Files checked in parallel")
	cmd.Flags().BoolVar(&listRules, "rules", false, "List the lint rules and exit")
	_ = cmd.RegisterFlagCompletionFunc("rule", completeRules)
	_ = cmd.RegisterFlagCompletionFunc("disable", func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
		var ids []string
		for _, r := range lint.GetAll() {
			ids = append(ids, r.ID+"\t"+r.Description)
		}
		return ids, cobra.ShellCompDirectiveNoFileComp
	})
	return cmd
}
