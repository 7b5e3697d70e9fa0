// cmd/biosync/cmd/qr.go
package cmd

import (
	"errors"
	"fmt"

	"github.com/skip2/go-qrcode"
	"github.com/spf13/cobra"

	"github.com/SriNikhita22/biosync-carechain/internal/app/client"
	"github.com/SriNikhita22/biosync-carechain/internal/domain/profile"
)

var (
	qrOutput string
	qrSize   int
)

var qrCmd = &cobra.Command{
	Use:   "qr",
	Short: "Generate the emergency card QR code",
	Long: `Writes a PNG QR code pointing at the rescue page for the registered
profile. All profile fields travel in the URL, so the card renders
without access to this machine's database.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := client.FromContext(cmd.Context())
		if err != nil {
			return err
		}

		url, err := app.RescueURL(cmd.Context())
		if errors.Is(err, profile.ErrNoProfile) {
			return fmt.Errorf("no profile registered; run 'biosync profile register' first")
		}
		if err != nil {
			return err
		}

		if err := qrcode.WriteFile(url, qrcode.High, qrSize, qrOutput); err != nil {
			return fmt.Errorf("write QR code: %w", err)
		}

		fmt.Printf("Emergency card QR written to %s\n", qrOutput)
		fmt.Printf("Card URL: %s\n", url)
		return nil
	},
}

func init() {
	qrCmd.Flags().StringVarP(&qrOutput, "output", "o", "emergency_card.png", "output PNG path")
	qrCmd.Flags().IntVar(&qrSize, "size", 320, "image size in pixels")
}
