package profile

import (
	"context"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/slog"
)

// MockRepository is a mock implementation of the Repository interface for testing
type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) Load(ctx context.Context) (HealthData, error) {
	args := m.Called(ctx)
	return args.Get(0).(HealthData), args.Error(1)
}

func (m *MockRepository) Save(ctx context.Context, data HealthData) error {
	args := m.Called(ctx, data)
	return args.Error(0)
}

func (m *MockRepository) ClearAll(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func f64(v float64) *float64 { return &v }

func i(v int) *int { return &v }

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		data    HealthData
		wantErr bool
		field   string
	}{
		{
			name: "valid profile",
			data: HealthData{FullName: "Asha Rao", EmergencyContact: "+1 (555) 010-2345", BloodGroup: "O+"},
		},
		{
			name:    "missing name",
			data:    HealthData{FullName: "   ", EmergencyContact: "5550102345"},
			wantErr: true,
			field:   "fullName",
		},
		{
			name:    "short phone",
			data:    HealthData{FullName: "Asha Rao", EmergencyContact: "555-0102"},
			wantErr: true,
			field:   "emergencyContact",
		},
		{
			name:    "unknown blood group",
			data:    HealthData{FullName: "Asha Rao", EmergencyContact: "5550102345", BloodGroup: "C+"},
			wantErr: true,
			field:   "bloodGroup",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Validate(tt.data)
			if !tt.wantErr {
				assert.NoError(t, err)
				return
			}
			var verr *ValidationError
			require.ErrorAs(t, err, &verr)
			assert.Contains(t, verr.Fields, tt.field)
		})
	}
}

func TestComputeBMI(t *testing.T) {
	bmi := ComputeBMI(f64(170), f64(68))
	require.NotNil(t, bmi)
	assert.InDelta(t, 23.5, *bmi, 0.001)

	assert.Nil(t, ComputeBMI(nil, f64(68)))
	assert.Nil(t, ComputeBMI(f64(170), nil))
	assert.Nil(t, ComputeBMI(f64(0), f64(68)))
}

func TestBMICategory(t *testing.T) {
	assert.Equal(t, "", BMICategory(nil))
	assert.Equal(t, "Underweight", BMICategory(f64(17.0)))
	assert.Equal(t, "Normal", BMICategory(f64(22.0)))
	assert.Equal(t, "Overweight", BMICategory(f64(27.5)))
	assert.Equal(t, "Obese", BMICategory(f64(31.0)))
}

func TestRescueURL_FullProfile(t *testing.T) {
	data := HealthData{
		FullName:             "Asha Rao",
		BloodGroup:           "O+",
		Allergies:            "Peanuts",
		ChronicDiseases:      "Diabetes",
		CurrentMedications:   "Metformin",
		PastSurgeries:        "Appendectomy",
		EmergencyContact:     "5550102345",
		Gender:               "Female",
		Height:               f64(170),
		Weight:               f64(68),
		BMI:                  f64(23.5),
		Age:                  i(34),
		AlcoholUse:           UsageNo,
		DrugUse:              UsageNo,
		PainkillerDependence: "No",
		SmokingTobacco:       UsageFormer,
	}

	raw := RescueURL("http://localhost:8484/", data)
	assert.True(t, strings.HasPrefix(raw, "http://localhost:8484/rescue?"))

	parsed, err := url.Parse(raw)
	require.NoError(t, err)
	q := parsed.Query()
	assert.Equal(t, "Asha Rao", q.Get("n"))
	assert.Equal(t, "34", q.Get("a"))
	assert.Equal(t, "O+", q.Get("bg"))
	assert.Equal(t, "Peanuts", q.Get("al"))
	assert.Equal(t, "Diabetes", q.Get("cc"))
	assert.Equal(t, "Metformin", q.Get("m"))
	assert.Equal(t, "Appendectomy", q.Get("s"))
	assert.Equal(t, "5550102345", q.Get("ec"))
	assert.Equal(t, "170", q.Get("ht"))
	assert.Equal(t, "68", q.Get("wt"))
	assert.Equal(t, "23.5", q.Get("bmi"))
	assert.Equal(t, "Former", q.Get("smk"))
}

func TestRescueURL_PlaceholdersForEmptyProfile(t *testing.T) {
	raw := RescueURL("http://localhost:8484", HealthData{})

	parsed, err := url.Parse(raw)
	require.NoError(t, err)
	q := parsed.Query()

	want := map[string]string{
		"n": "Unknown", "a": "N/A", "g": "N/A", "bg": "--",
		"al": "None", "cc": "None", "m": "None", "s": "None",
		"ec": "", "ht": "N/A", "wt": "N/A", "bmi": "N/A",
		"alc": "No", "drg": "No", "pnd": "No", "smk": "No",
	}
	for key, value := range want {
		assert.Equal(t, value, q.Get(key), "key %s", key)
		assert.True(t, q.Has(key), "key %s must always be present", key)
	}
}

func TestService_SaveDerivesBMIAndStamp(t *testing.T) {
	repo := new(MockRepository)
	service := NewService(repo, slog.Default())
	service.now = func() time.Time {
		return time.Date(2024, time.March, 5, 14, 30, 0, 0, time.UTC)
	}

	repo.On("Save", mock.Anything, mock.MatchedBy(func(d HealthData) bool {
		return d.BMI != nil && *d.BMI == 23.5 && d.LastUpdated != ""
	})).Return(nil)

	saved, err := service.Save(context.Background(), HealthData{
		FullName:         "Asha Rao",
		EmergencyContact: "5550102345",
		Height:           f64(170),
		Weight:           f64(68),
	})

	require.NoError(t, err)
	require.NotNil(t, saved.BMI)
	assert.Equal(t, 23.5, *saved.BMI)
	assert.Equal(t, "2024-03-05T14:30:00Z", saved.LastUpdated)
	repo.AssertExpectations(t)
}

func TestService_SaveRejectsInvalid(t *testing.T) {
	repo := new(MockRepository)
	service := NewService(repo, slog.Default())

	_, err := service.Save(context.Background(), HealthData{})

	var verr *ValidationError
	assert.ErrorAs(t, err, &verr)
	repo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
}

func TestService_ClearCascades(t *testing.T) {
	repo := new(MockRepository)
	service := NewService(repo, slog.Default())
	repo.On("ClearAll", mock.Anything).Return(nil)

	require.NoError(t, service.Clear(context.Background()))
	repo.AssertCalled(t, "ClearAll", mock.Anything)
}
