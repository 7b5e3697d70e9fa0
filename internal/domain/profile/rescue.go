package profile

import (
	"net/url"
	"strings"
)

// RescueURL builds the emergency-card URL encoded into the QR code.
// Every profile field travels as an abbreviated query parameter with a
// fixed placeholder when absent, so the rescue view is total over
// partial profiles. The field set is a de facto contract with the
// rescue rendering path; do not drop keys.
func RescueURL(base string, d HealthData) string {
	params := url.Values{}
	params.Set("n", orElse(d.FullName, "Unknown"))
	params.Set("a", orElse(formatInt(d.Age), "N/A"))
	params.Set("g", orElse(d.Gender, "N/A"))
	params.Set("bg", orElse(d.BloodGroup, "--"))
	params.Set("al", orElse(d.Allergies, "None"))
	params.Set("cc", orElse(d.ChronicDiseases, "None"))
	params.Set("m", orElse(d.CurrentMedications, "None"))
	params.Set("s", orElse(d.PastSurgeries, "None"))
	params.Set("ec", d.EmergencyContact)
	params.Set("ht", orElse(formatNumber(d.Height), "N/A"))
	params.Set("wt", orElse(formatNumber(d.Weight), "N/A"))
	params.Set("bmi", orElse(formatNumber(d.BMI), "N/A"))
	params.Set("alc", orElse(string(d.AlcoholUse), "No"))
	params.Set("drg", orElse(string(d.DrugUse), "No"))
	params.Set("pnd", orElse(d.PainkillerDependence, "No"))
	params.Set("smk", orElse(string(d.SmokingTobacco), "No"))

	return strings.TrimSuffix(base, "/") + "/rescue?" + params.Encode()
}

func orElse(v, placeholder string) string {
	if v == "" {
		return placeholder
	}
	return v
}
