package commands

import (
	"log"
	"net/http"

	"github.com/spf13/cobra"

	"github.com/athanorlabs/go-dlog/relay"
)

func relayCmd() *cobra.Command {
	var addr string
	cmd := &cobra.Command{
		Use:   "relay",
		Short: "Run an in-memory proof relay",
		RunE: func(cmd *cobra.Command, args []string) error {
			log.Println("relay listening on", addr)
			return http.ListenAndServe(addr, relay.NewServer(relay.DefaultWait))
		},
	}
	cmd.Flags().StringVar(&addr, "addr", ":8080", "listen address")
	return cmd
}
