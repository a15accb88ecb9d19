package commands

import (
	"github.com/spf13/cobra"

	"github.com/leapstack-labs/oraparse/pkg/parser"
)

// NewParseCommand creates the parse command.
func NewParseCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "parse [SQL|-]",
		Short: "Parse SQL text and print the parse tree",
		Long: `Parse SQL text with a start rule and print the tree.

The default start rule is expr. Any grammar rule can be used; see
'oraparse grammar' for the list. With --recover, errors inside lists
are collected and the partial tree is printed as well.`,
		Example: `  oraparse parse "a.b = 1 AND c > 2"
  oraparse parse --rule select -o sexpr "SELECT a FROM t WHERE b IS NULL"
  oraparse parse --rule dataType "NUMBER(10, 2)"`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cmdCtx := NewCommandContext(cmd)
			rule, err := startRule(cmd, cmdCtx.Cfg.StartRule)
			if err != nil {
				return err
			}
			src, err := readInput(cmd, args)
			if err != nil {
				return err
			}

			opts := append(cmdCtx.Cfg.ParserOptions(), parser.WithLogger(cmdCtx.Logger))
			res, err := parser.Parse(src, rule, opts...)
			if res != nil && res.Root != nil {
				if rerr := cmdCtx.Renderer.Tree(rule, res); rerr != nil {
					return rerr
				}
			}
			if err != nil {
				cmdCtx.Renderer.Errors(err, src)
				return ErrReported
			}
			return nil
		},
	}

	cmd.Flags().StringP("rule", "r", "expr", "Start rule")
	_ = cmd.RegisterFlagCompletionFunc("rule", completeRules)
	return cmd
}
