package commands

import (
	"fmt"
	"runtime"
	"strings"

	"github.com/spf13/cobra"

	"github.com/leapstack-labs/oraparse/pkg/dialect"
	"github.com/leapstack-labs/oraparse/pkg/lint"
	"github.com/leapstack-labs/oraparse/pkg/parser"
	"github.com/leapstack-labs/oraparse/pkg/token"
)

// NewVersionCommand creates the version command.
func NewVersionCommand(version string) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Long:  `Display the oraparse version and the size of its built-in tables.`,
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			reserved := 0
			kws := token.Keywords()
			for _, kw := range kws {
				if kw.Reserved {
					reserved++
				}
			}
			w := cmd.OutOrStdout()
			_, _ = fmt.Fprintf(w, "oraparse v%s (%s)\n", version, runtime.Version())
			_, _ = fmt.Fprintf(w, "dialects: %s\n", strings.Join(dialect.List(), ", "))
			_, _ = fmt.Fprintf(w, "%d keywords (%d reserved), %d grammar rules, %d lint rules\n",
				len(kws), reserved, len(parser.Grammar()), len(lint.GetAll()))
		},
	}
}
