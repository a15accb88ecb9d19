package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/leapstack-labs/oraparse/pkg/parser"
)

// NewGrammarCommand creates the grammar command.
func NewGrammarCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "grammar [rule...]",
		Short: "Print grammar productions",
		Example: `  oraparse grammar
  oraparse grammar expr booleanPrimary
  oraparse grammar -o json`,
		ValidArgsFunction: completeRules,
		RunE: func(cmd *cobra.Command, args []string) error {
			cmdCtx := NewCommandContext(cmd)
			if len(args) == 0 {
				return cmdCtx.Renderer.Grammar(parser.Grammar())
			}

			prods := make([]parser.Production, 0, len(args))
			for _, name := range args {
				p, ok := parser.Lookup(name)
				if !ok {
					return fmt.Errorf("%w: %q", parser.ErrUnknownRule, name)
				}
				prods = append(prods, p)
			}
			return cmdCtx.Renderer.Grammar(prods)
		},
	}
	return cmd
}
