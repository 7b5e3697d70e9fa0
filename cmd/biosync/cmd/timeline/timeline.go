// cmd/biosync/cmd/timeline/timeline.go
package timeline

import (
	"github.com/spf13/cobra"
)

var TimelineCmd = &cobra.Command{
	Use:   "timeline",
	Short: "Manage the CareChain event timeline",
	Long: `The timeline is the chronological medical history: lab results,
surgeries and prescriptions, each optionally carrying one attachment.`,
}
