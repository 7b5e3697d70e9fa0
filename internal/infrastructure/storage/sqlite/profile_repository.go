package sqlite

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/SriNikhita22/biosync-carechain/internal/domain/profile"
	"github.com/SriNikhita22/biosync-carechain/internal/infrastructure/storage"
)

// ProfileRepository persists the single health profile document.
type ProfileRepository struct {
	kv storage.KV
}

func NewProfileRepository(kv storage.KV) *ProfileRepository {
	return &ProfileRepository{kv: kv}
}

func (r *ProfileRepository) Load(ctx context.Context) (profile.HealthData, error) {
	raw, err := r.kv.Get(ctx, keyHealthData)
	if errors.Is(err, storage.ErrKeyNotFound) {
		return profile.HealthData{}, profile.ErrNoProfile
	}
	if err != nil {
		return profile.HealthData{}, fmt.Errorf("load profile: %w", err)
	}

	var data profile.HealthData
	if err := json.Unmarshal([]byte(raw), &data); err != nil {
		return profile.HealthData{}, fmt.Errorf("decode profile: %w", err)
	}
	return data, nil
}

func (r *ProfileRepository) Save(ctx context.Context, data profile.HealthData) error {
	raw, err := json.Marshal(data)
	if err != nil {
		return fmt.Errorf("encode profile: %w", err)
	}
	return r.kv.PutMany(ctx, map[string]string{keyHealthData: string(raw)})
}

// ClearAll removes the profile, the timeline collection and the
// last-sync marker in one transaction. The theme setting survives a
// wipe on purpose.
func (r *ProfileRepository) ClearAll(ctx context.Context) error {
	return r.kv.Delete(ctx, keyHealthData, keyTimeline, keyTimelineUpdated)
}
