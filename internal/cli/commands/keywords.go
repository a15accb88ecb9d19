package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/leapstack-labs/oraparse/pkg/token"
)

// NewKeywordsCommand creates the keywords command.
func NewKeywordsCommand() *cobra.Command {
	var reserved, nonReserved bool

	cmd := &cobra.Command{
		Use:   "keywords",
		Short: "List the keyword table",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if reserved && nonReserved {
				return fmt.Errorf("--reserved and --nonreserved are mutually exclusive")
			}
			cmdCtx := NewCommandContext(cmd)

			all := token.Keywords()
			entries := all[:0:0]
			for _, e := range all {
				if (reserved && !e.Reserved) || (nonReserved && e.Reserved) {
					continue
				}
				entries = append(entries, e)
			}
			return cmdCtx.Renderer.Keywords(entries)
		},
	}

	cmd.Flags().BoolVar(&reserved, "reserved", false, "Only reserved words")
	cmd.Flags().BoolVar(&nonReserved, "nonreserved", false, "Only non-reserved keywords")
	return cmd
}
