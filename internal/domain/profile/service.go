package profile

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/exp/slog"
)

// Service owns profile registration, lookup and the clear cascade.
type Service struct {
	repo Repository
	log  *slog.Logger
	now  func() time.Time
}

func NewService(repo Repository, log *slog.Logger) *Service {
	return &Service{
		repo: repo,
		log:  log.With("component", "profile_service"),
		now:  time.Now,
	}
}

// Save validates and persists the profile, deriving BMI and stamping
// LastUpdated.
func (s *Service) Save(ctx context.Context, data HealthData) (HealthData, error) {
	if err := Validate(data); err != nil {
		return HealthData{}, err
	}

	data.BMI = ComputeBMI(data.Height, data.Weight)
	data.Stamp(s.now())

	if err := s.repo.Save(ctx, data); err != nil {
		s.log.Error("failed to save profile", "error", err)
		return HealthData{}, fmt.Errorf("save profile: %w", err)
	}

	s.log.Info("profile saved", "name", data.FullName)
	return data, nil
}

// Load returns the stored profile, or ErrNoProfile.
func (s *Service) Load(ctx context.Context) (HealthData, error) {
	data, err := s.repo.Load(ctx)
	if err != nil {
		return HealthData{}, err
	}
	return data, nil
}

// Clear wipes the profile and, by cascade, the timeline collection and
// its last-sync marker.
func (s *Service) Clear(ctx context.Context) error {
	if err := s.repo.ClearAll(ctx); err != nil {
		s.log.Error("failed to clear profile", "error", err)
		return fmt.Errorf("clear profile: %w", err)
	}
	s.log.Info("profile and timeline cleared")
	return nil
}
