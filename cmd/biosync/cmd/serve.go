// cmd/biosync/cmd/serve.go
package cmd

import (
	"fmt"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/SriNikhita22/biosync-carechain/internal/app/client"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the local rescue page and JSON API",
	Long: `Serves the rescue page the QR code points at, plus a JSON API over
the profile and timeline. Stops on SIGINT or SIGTERM.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := client.FromContext(cmd.Context())
		if err != nil {
			return err
		}

		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		fmt.Printf("Serving on http://%s (Ctrl-C to stop)\n", app.Config.ListenAddress)
		return app.Serve(ctx)
	},
}
