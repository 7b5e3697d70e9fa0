// cmd/biosync/cmd/timeline/delete.go
package timeline

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/SriNikhita22/biosync-carechain/internal/app/client"
	"github.com/SriNikhita22/biosync-carechain/internal/domain/timeline"
)

var deleteYes bool

var DeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a timeline event",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := client.FromContext(cmd.Context())
		if err != nil {
			return err
		}

		if !deleteYes {
			if !term.IsTerminal(int(os.Stdin.Fd())) {
				return fmt.Errorf("refusing to delete without confirmation; pass --yes")
			}
			fmt.Printf("Delete event %s? Type 'yes' to confirm: ", args[0])
			scanner := bufio.NewScanner(os.Stdin)
			scanner.Scan()
			if strings.TrimSpace(scanner.Text()) != "yes" {
				fmt.Println("Aborted.")
				return nil
			}
		}

		err = app.Timeline.Delete(cmd.Context(), args[0])
		if timeline.IsNotFound(err) {
			return fmt.Errorf("no event with id %s", args[0])
		}
		if err != nil {
			return err
		}

		fmt.Println("Event deleted.")
		return nil
	},
}

func init() {
	DeleteCmd.Flags().BoolVar(&deleteYes, "yes", false, "skip the confirmation prompt")
}
