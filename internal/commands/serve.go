package commands

import (
	"log"
	"net/http"

	"github.com/spf13/cobra"

	"github.com/Nayem55/accounts-app/internal/server"
)

func newServeCommand(configPath *string) *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the ledger over a local HTTP API",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, store, err := openStore(*configPath)
			if err != nil {
				return err
			}

			if addr == "" {
				addr = cfg.Server.Addr
			}

			srv := server.New(store, cfg.Display.Currency)
			log.Printf("serving ledger on %s", addr)
			return http.ListenAndServe(addr, srv)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "listen address (defaults to config)")

	return cmd
}
