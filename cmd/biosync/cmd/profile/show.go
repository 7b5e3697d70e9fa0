// cmd/biosync/cmd/profile/show.go
package profile

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/SriNikhita22/biosync-carechain/internal/app/client"
	"github.com/SriNikhita22/biosync-carechain/internal/domain/profile"
)

var showJSON bool

var ShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the registered health profile",
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := client.FromContext(cmd.Context())
		if err != nil {
			return err
		}

		data, err := app.Profile.Load(cmd.Context())
		if errors.Is(err, profile.ErrNoProfile) {
			fmt.Println("No profile registered yet. Run 'biosync profile register' first.")
			return nil
		}
		if err != nil {
			return err
		}

		if showJSON {
			encoder := json.NewEncoder(os.Stdout)
			encoder.SetIndent("", "  ")
			return encoder.Encode(data)
		}

		header := color.New(color.FgRed, color.Bold)
		header.Println("MEDICAL ALERT PROFILE")
		fmt.Println()
		fmt.Printf("%-22s %s\n", "Name:", data.FullName)
		fmt.Printf("%-22s %s\n", "Blood group:", orDash(data.BloodGroup))
		fmt.Printf("%-22s %s\n", "Emergency contact:", data.EmergencyContact)
		fmt.Printf("%-22s %s\n", "Allergies:", orDash(data.Allergies))
		fmt.Printf("%-22s %s\n", "Chronic conditions:", orDash(data.ChronicDiseases))
		fmt.Printf("%-22s %s\n", "Medications:", orDash(data.CurrentMedications))
		fmt.Printf("%-22s %s\n", "Past surgeries:", orDash(data.PastSurgeries))
		if data.BMI != nil {
			fmt.Printf("%-22s %.1f (%s)\n", "BMI:", *data.BMI, profile.BMICategory(data.BMI))
		}
		fmt.Printf("%-22s %s\n", "Last updated:", orDash(data.LastUpdated))
		return nil
	},
}

func orDash(v string) string {
	if v == "" {
		return "-"
	}
	return v
}

func init() {
	ShowCmd.Flags().BoolVar(&showJSON, "json", false, "output as JSON")
}
