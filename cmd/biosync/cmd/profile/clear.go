// cmd/biosync/cmd/profile/clear.go
package profile

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/SriNikhita22/biosync-carechain/internal/app/client"
)

var clearYes bool

var ClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Erase the profile and the entire timeline",
	Long: `Erases the health profile. The CareChain timeline and its last-sync
marker go with it; the theme setting stays. There is no undo.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := client.FromContext(cmd.Context())
		if err != nil {
			return err
		}

		if !clearYes {
			if !term.IsTerminal(int(os.Stdin.Fd())) {
				return fmt.Errorf("refusing to wipe without confirmation; pass --yes")
			}
			color.Red("This erases the profile AND every timeline event.")
			fmt.Print("Type 'yes' to confirm: ")
			scanner := bufio.NewScanner(os.Stdin)
			scanner.Scan()
			if strings.TrimSpace(scanner.Text()) != "yes" {
				fmt.Println("Aborted.")
				return nil
			}
		}

		if err := app.ClearProfile(cmd.Context()); err != nil {
			return err
		}

		fmt.Println("Profile and timeline erased.")
		return nil
	},
}

func init() {
	ClearCmd.Flags().BoolVar(&clearYes, "yes", false, "skip the confirmation prompt")
}
