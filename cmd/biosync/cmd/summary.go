// cmd/biosync/cmd/summary.go
package cmd

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/SriNikhita22/biosync-carechain/internal/app/client"
)

var summaryCmd = &cobra.Command{
	Use:   "summary",
	Short: "Health snapshot of the timeline",
	Long: `Prints a three-line snapshot of the CareChain timeline. An empty
timeline yields a fixed message without any network traffic.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := client.FromContext(cmd.Context())
		if err != nil {
			return err
		}

		color.New(color.FgCyan, color.Bold).Println("CURRENT HEALTH SNAPSHOT")
		fmt.Println(app.Advisory.TimelineSummary(cmd.Context(), app.Timeline.Events()))
		return nil
	},
}
