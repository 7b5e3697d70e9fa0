// cmd/biosync/cmd/init.go
package cmd

import (
	"github.com/SriNikhita22/biosync-carechain/cmd/biosync/cmd/profile"
	"github.com/SriNikhita22/biosync-carechain/cmd/biosync/cmd/timeline"
)

func init() {
	rootCmd.AddCommand(profile.ProfileCmd)
	profile.ProfileCmd.AddCommand(profile.RegisterCmd)
	profile.ProfileCmd.AddCommand(profile.ShowCmd)
	profile.ProfileCmd.AddCommand(profile.ClearCmd)

	rootCmd.AddCommand(timeline.TimelineCmd)
	timeline.TimelineCmd.AddCommand(timeline.AddCmd)
	timeline.TimelineCmd.AddCommand(timeline.ListCmd)
	timeline.TimelineCmd.AddCommand(timeline.EditCmd)
	timeline.TimelineCmd.AddCommand(timeline.DeleteCmd)

	rootCmd.AddCommand(insightCmd)
	rootCmd.AddCommand(summaryCmd)
	rootCmd.AddCommand(qrCmd)
	rootCmd.AddCommand(serveCmd)
}
