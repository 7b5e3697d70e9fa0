// cmd/biosync/cmd/profile/register.go
package profile

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/SriNikhita22/biosync-carechain/internal/app/client"
	"github.com/SriNikhita22/biosync-carechain/internal/domain/profile"
)

var (
	fullName        string
	bloodGroup      string
	allergies       string
	chronicDiseases string
	medications     string
	pastSurgeries   string
	contact         string
	gender          string
	height          float64
	weight          float64
	age             int
	alcoholUse      string
	drugUse         string
	painkillerDep   string
	smokingTobacco  string
)

var RegisterCmd = &cobra.Command{
	Use:   "register",
	Short: "Register or replace the health profile",
	Long: `Registers the health profile. BMI is derived from height and weight;
the update timestamp is stamped automatically. Running register again
replaces the stored profile.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := client.FromContext(cmd.Context())
		if err != nil {
			return err
		}

		data := profile.HealthData{
			FullName:             fullName,
			BloodGroup:           bloodGroup,
			Allergies:            allergies,
			ChronicDiseases:      chronicDiseases,
			CurrentMedications:   medications,
			PastSurgeries:        pastSurgeries,
			EmergencyContact:     contact,
			Gender:               gender,
			AlcoholUse:           profile.UsageStatus(alcoholUse),
			DrugUse:              profile.UsageStatus(drugUse),
			PainkillerDependence: painkillerDep,
			SmokingTobacco:       profile.UsageStatus(smokingTobacco),
		}
		if cmd.Flags().Changed("height") {
			data.Height = &height
		}
		if cmd.Flags().Changed("weight") {
			data.Weight = &weight
		}
		if cmd.Flags().Changed("age") {
			data.Age = &age
		}

		saved, err := app.Profile.Save(cmd.Context(), data)
		if err != nil {
			return err
		}

		color.Green("Profile registered for %s", saved.FullName)
		if saved.BMI != nil {
			fmt.Printf("BMI: %.1f (%s)\n", *saved.BMI, profile.BMICategory(saved.BMI))
		}
		fmt.Println("Next: generate your emergency card with 'biosync qr'")
		return nil
	},
}

func init() {
	RegisterCmd.Flags().StringVar(&fullName, "name", "", "full name (required)")
	RegisterCmd.Flags().StringVar(&bloodGroup, "blood-group", "", "blood group (A+, A-, B+, B-, AB+, AB-, O+, O-)")
	RegisterCmd.Flags().StringVar(&allergies, "allergies", "", "known allergies")
	RegisterCmd.Flags().StringVar(&chronicDiseases, "chronic", "", "chronic conditions, comma separated")
	RegisterCmd.Flags().StringVar(&medications, "medications", "", "current medications")
	RegisterCmd.Flags().StringVar(&pastSurgeries, "surgeries", "", "past surgeries")
	RegisterCmd.Flags().StringVar(&contact, "contact", "", "emergency contact phone (required, 10+ digits)")
	RegisterCmd.Flags().StringVar(&gender, "gender", "", "gender")
	RegisterCmd.Flags().Float64Var(&height, "height", 0, "height in cm")
	RegisterCmd.Flags().Float64Var(&weight, "weight", 0, "weight in kg")
	RegisterCmd.Flags().IntVar(&age, "age", 0, "age in years")
	RegisterCmd.Flags().StringVar(&alcoholUse, "alcohol", "", "alcohol use (Yes, No, Former)")
	RegisterCmd.Flags().StringVar(&drugUse, "drugs", "", "recreational drug use (Yes, No, Former)")
	RegisterCmd.Flags().StringVar(&painkillerDep, "painkillers", "", "painkiller dependence")
	RegisterCmd.Flags().StringVar(&smokingTobacco, "smoking", "", "smoking or tobacco use (Yes, No, Former)")
}
