// cmd/biosync/cmd/profile/profile.go
package profile

import (
	"github.com/spf13/cobra"
)

var ProfileCmd = &cobra.Command{
	Use:   "profile",
	Short: "Manage the registered health profile",
	Long: `The profile holds the medical facts the emergency card shows:
identity, blood group, allergies, chronic conditions, medications and
lifestyle flags. One profile per vault.`,
}
