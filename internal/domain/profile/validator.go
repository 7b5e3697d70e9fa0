package profile

import (
	"errors"
	"fmt"
	"strings"
	"unicode"
)

var (
	ErrNameRequired     = errors.New("full name is required")
	ErrInvalidContact   = errors.New("enter a valid 10-digit phone number")
	ErrUnknownBloodType = errors.New("unknown blood group")
)

// ValidationError aggregates per-field validation failures. It is the
// only profile error shown directly to the user.
type ValidationError struct {
	Fields map[string]error
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Fields))
	for field, err := range e.Fields {
		parts = append(parts, fmt.Sprintf("%s: %v", field, err))
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// Validate checks the user-supplied fields. A nil return means the
// profile may be saved.
func Validate(d HealthData) error {
	fields := map[string]error{}

	if strings.TrimSpace(d.FullName) == "" {
		fields["fullName"] = ErrNameRequired
	}

	if countDigits(d.EmergencyContact) < 10 {
		fields["emergencyContact"] = ErrInvalidContact
	}

	if d.BloodGroup != "" && !validBloodGroup(d.BloodGroup) {
		fields["bloodGroup"] = ErrUnknownBloodType
	}

	if len(fields) == 0 {
		return nil
	}
	return &ValidationError{Fields: fields}
}

func countDigits(s string) int {
	n := 0
	for _, r := range s {
		if unicode.IsDigit(r) {
			n++
		}
	}
	return n
}

func validBloodGroup(bg string) bool {
	for _, known := range BloodGroups {
		if bg == known {
			return true
		}
	}
	return false
}
