package commands

import (
	"github.com/spf13/cobra"

	"github.com/leapstack-labs/oraparse/pkg/format"
	"github.com/leapstack-labs/oraparse/pkg/parser"
)

// NewFmtCommand creates the fmt command.
func NewFmtCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "fmt [SQL|-]",
		Short: "Reformat SQL text",
		Long: `Reformat SQL text.

Keywords are upper-cased, clauses start on their own line and subqueries
are indented. Comments and optimizer hints are kept. Each statement is
parsed with the check rule (select by default); input that does not parse
is left alone and the error is reported.`,
		Example: `  oraparse fmt "select a,b from t where a=1"
  oraparse fmt - < query.sql
  oraparse fmt --rule expr "a+b between 1 and 2"`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cmdCtx := NewCommandContext(cmd)
			rule, err := startRule(cmd, cmdCtx.Cfg.CheckRule)
			if err != nil {
				return err
			}
			src, err := readInput(cmd, args)
			if err != nil {
				return err
			}

			opts := append(cmdCtx.Cfg.DialectOptions(), parser.WithLogger(cmdCtx.Logger))
			out, err := format.Source(src, rule, opts...)
			if err != nil {
				cmdCtx.Renderer.Errors(err, src)
				return ErrReported
			}
			return cmdCtx.Renderer.Formatted(out)
		},
	}

	cmd.Flags().StringP("rule", "r", "select", "Start rule for each statement")
	_ = cmd.RegisterFlagCompletionFunc("rule", completeRules)
	return cmd
}
