package commands

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/leapstack-labs/oraparse/internal/check"
)

// NewCheckCommand creates the check command.
func NewCheckCommand() *cobra.Command {
	var watch bool

	cmd := &cobra.Command{
		Use:   "check FILE|DIR...",
		Short: "Check SQL files for syntax errors",
		Long: `Check SQL files for syntax errors.

Each file is split into statements at semicolons outside parentheses and
every statement is parsed with the check rule (select by default).
Directories are searched for .sql files. With --watch the files are
re-checked whenever they change.`,
		Example: `  oraparse check queries/
  oraparse check --rule expr filters.sql
  oraparse check --watch -o table queries/`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cmdCtx := NewCommandContext(cmd)
			rule, err := startRule(cmd, cmdCtx.Cfg.CheckRule)
			if err != nil {
				return err
			}

			checker := &check.Checker{
				Rule:    rule,
				Workers: cmdCtx.Cfg.Workers,
				Options: cmdCtx.Cfg.ParserOptions(),
				Logger:  cmdCtx.Logger,
			}

			if watch {
				return check.Watch(cmd.Context(), args, cmdCtx.Cfg.Watch.Debounce, cmdCtx.Logger, func(ctx context.Context) {
					results, err := checker.CheckFiles(ctx, args)
					if err != nil {
						if ctx.Err() == nil {
							cmdCtx.Logger.Error("check failed", "error", err)
						}
						return
					}
					_ = cmdCtx.Renderer.CheckResults(results)
				})
			}

			results, err := checker.CheckFiles(cmd.Context(), args)
			if err != nil {
				return err
			}
			if err := cmdCtx.Renderer.CheckResults(results); err != nil {
				return err
			}
			for _, r := range results {
				if !r.OK() {
					return ErrReported
				}
			}
			return nil
		},
	}

	cmd.Flags().StringP("rule", "r", "select", "Start rule for each statement")
	cmd.Flags().BoolVarP(&watch, "watch", "w", false, "Re-check on file changes")
	cmd.Flags().Int("workers", 0, "Files checked in parallel")
	cmd.Flags().Duration("debounce", 0, "Quiet period before a re-check in watch mode")
	_ = cmd.RegisterFlagCompletionFunc("rule", completeRules)
	return cmd
}
