package profile

import (
	"context"
	"errors"
)

// ErrNoProfile signals that no profile has been registered yet.
var ErrNoProfile = errors.New("no health profile registered")

// Repository persists the single health profile record.
type Repository interface {
	// Load returns the stored profile, or ErrNoProfile.
	Load(ctx context.Context) (HealthData, error)
	// Save replaces the stored profile.
	Save(ctx context.Context, data HealthData) error
	// ClearAll removes the profile record, the timeline collection and
	// the timeline last-sync marker in one transaction. Clearing the
	// profile cascades by contract, not by courtesy.
	ClearAll(ctx context.Context) error
}
