package profile

import (
	"math"
	"strconv"
	"time"
)

// UsageStatus describes addiction-history answers.
type UsageStatus string

const (
	UsageYes    UsageStatus = "Yes"
	UsageNo     UsageStatus = "No"
	UsageFormer UsageStatus = "Former"
)

// BloodGroups is the closed set of accepted blood group labels.
var BloodGroups = []string{"A+", "A-", "B+", "B-", "AB+", "AB-", "O+", "O-"}

// HealthData is the registered medical profile. The core reads it for
// cache keys, advisory prompts and the rescue payload; it never mutates
// an existing record outside the explicit save path.
type HealthData struct {
	FullName             string      `json:"fullName"`
	BloodGroup           string      `json:"bloodGroup"`
	Allergies            string      `json:"allergies"`
	ChronicDiseases      string      `json:"chronicDiseases"`
	CurrentMedications   string      `json:"currentMedications"`
	ProfileImage         string      `json:"profileImage,omitempty"`
	PastSurgeries        string      `json:"pastSurgeries,omitempty"`
	EmergencyContact     string      `json:"emergencyContact"`
	Gender               string      `json:"gender,omitempty"`
	Height               *float64    `json:"height,omitempty"`
	Weight               *float64    `json:"weight,omitempty"`
	BMI                  *float64    `json:"bmi,omitempty"`
	Age                  *int        `json:"age,omitempty"`
	LastUpdated          string      `json:"lastUpdated"`
	AlcoholUse           UsageStatus `json:"alcoholUse,omitempty"`
	DrugUse              UsageStatus `json:"drugUse,omitempty"`
	PainkillerDependence string      `json:"painkillerDependence,omitempty"`
	SmokingTobacco       UsageStatus `json:"smokingTobacco,omitempty"`
}

// ComputeBMI derives body mass index from height in cm and weight in
// kg, rounded to one decimal. Nil when either input is missing or zero.
func ComputeBMI(height, weight *float64) *float64 {
	if height == nil || weight == nil || *height <= 0 || *weight <= 0 {
		return nil
	}
	meters := *height / 100
	bmi := math.Round(*weight/(meters*meters)*10) / 10
	return &bmi
}

// BMICategory labels a BMI value; empty for a missing BMI.
func BMICategory(bmi *float64) string {
	switch {
	case bmi == nil:
		return ""
	case *bmi < 18.5:
		return "Underweight"
	case *bmi < 25:
		return "Normal"
	case *bmi < 30:
		return "Overweight"
	default:
		return "Obese"
	}
}

// Stamp sets LastUpdated to the current moment.
func (d *HealthData) Stamp(now time.Time) {
	d.LastUpdated = now.Format(time.RFC3339)
}

func formatNumber(v *float64) string {
	if v == nil {
		return ""
	}
	return strconv.FormatFloat(*v, 'f', -1, 64)
}

func formatInt(v *int) string {
	if v == nil {
		return ""
	}
	return strconv.Itoa(*v)
}
