// cmd/biosync/cmd/root.go
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/exp/slog"

	"github.com/SriNikhita22/biosync-carechain/internal/app/client"
	"github.com/SriNikhita22/biosync-carechain/internal/app/client/config"
	"github.com/SriNikhita22/biosync-carechain/internal/utils/logger"
)

var (
	cfg *config.Config
	log *slog.Logger
	app *client.App
)

var rootCmd = &cobra.Command{
	Use:   "biosync",
	Short: "BioSync - personal health record and emergency card vault",
	Long: `BioSync keeps your medical profile and CareChain timeline on your
own machine and renders an emergency card reachable by QR code.

All data lives in a local SQLite database. The advisory bullets are
generated remotely when a key is configured and derived locally when
it is not.`,
	PersistentPreRunE: setupApp,
	SilenceUsage:      true,
	SilenceErrors:     true,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func setupApp(cmd *cobra.Command, _ []string) error {
	cfg = config.MustLoad()
	log = logger.New(cfg.Env)

	var err error
	app, err = client.New(cfg, log)
	if err != nil {
		return fmt.Errorf("initialize application: %w", err)
	}

	cmd.SetContext(client.IntoContext(cmd.Context(), app))
	return nil
}

func teardownApp(_ *cobra.Command, _ []string) error {
	if app == nil {
		return nil
	}
	return app.Close()
}

func init() {
	rootCmd.PersistentPostRunE = teardownApp
}
