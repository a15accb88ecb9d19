package commands

import (
	"github.com/spf13/cobra"

	"github.com/leapstack-labs/oraparse/internal/server"
	"github.com/leapstack-labs/oraparse/pkg/dialect"
)

// NewServeCommand creates the serve command.
func NewServeCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the tokenizer and parser over HTTP",
		Long: `Start the HTTP API.

Endpoints:
  POST /v1/tokenize       {"sql": "...", "hidden": false}
  POST /v1/parse          {"sql": "...", "rule": "expr", "recover": false}
  POST /v1/format         {"sql": "...", "rule": "select"}
  POST /v1/lint           {"sql": "...", "rule": "select", "disable": []}
  GET  /v1/keywords       ?reserved=true|false
  GET  /v1/grammar[/rule]
  GET  /healthz`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmdCtx := NewCommandContext(cmd)
			d, _ := dialect.Get(cmdCtx.Cfg.Dialect)

			srv := server.New(server.Config{
				Addr:              cmdCtx.Cfg.Server.Addr,
				ReadHeaderTimeout: cmdCtx.Cfg.Server.ReadHeaderTimeout,
				MaxBodyBytes:      cmdCtx.Cfg.Server.MaxBodyBytes,
				MaxErrors:         cmdCtx.Cfg.MaxErrors,
				Dialect:           d,
				Logger:            cmdCtx.Logger,
			})
			return srv.Serve(cmd.Context())
		},
	}

	cmd.Flags().String("addr", "", "Listen address (default :8080)")
	return cmd
}
