package commands

import (
	"github.com/spf13/cobra"

	"github.com/leapstack-labs/oraparse/pkg/lexer"
)

// NewTokensCommand creates the tokens command.
func NewTokensCommand() *cobra.Command {
	var hidden bool

	cmd := &cobra.Command{
		Use:   "tokens [SQL|-]",
		Short: "Print the token stream of SQL text",
		Example: `  oraparse tokens "SELECT a FROM t"
  echo "x := :bind" | oraparse tokens --hidden -o json`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cmdCtx := NewCommandContext(cmd)
			src, err := readInput(cmd, args)
			if err != nil {
				return err
			}

			s, err := lexer.Tokenize(src)
			if err != nil {
				cmdCtx.Renderer.Errors(err, src)
				return ErrReported
			}
			cmdCtx.Logger.Debug("tokenized", "tokens", s.Len(), "hidden", len(s.Hidden))
			return cmdCtx.Renderer.Tokens(s, hidden)
		},
	}

	cmd.Flags().BoolVar(&hidden, "hidden", false, "Also list whitespace and comments")
	return cmd
}
