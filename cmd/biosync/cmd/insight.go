// cmd/biosync/cmd/insight.go
package cmd

import (
	"errors"
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/SriNikhita22/biosync-carechain/internal/app/client"
	"github.com/SriNikhita22/biosync-carechain/internal/domain/profile"
)

var insightCmd = &cobra.Command{
	Use:   "insight",
	Short: "Responder bullets for the registered profile",
	Long: `Prints three action-oriented bullets for first responders, generated
from the registered profile. Works offline: when generation is
unavailable the bullets are derived locally from the profile.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := client.FromContext(cmd.Context())
		if err != nil {
			return err
		}

		data, err := app.Profile.Load(cmd.Context())
		if errors.Is(err, profile.ErrNoProfile) {
			return fmt.Errorf("no profile registered; run 'biosync profile register' first")
		}
		if err != nil {
			return err
		}

		color.New(color.FgRed, color.Bold).Println("HEALTH INSIGHT")
		fmt.Println(app.Advisory.HealthInsight(cmd.Context(), data))
		return nil
	},
}
