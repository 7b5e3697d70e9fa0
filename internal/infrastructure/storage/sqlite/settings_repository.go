package sqlite

import (
	"context"
	"errors"

	"github.com/SriNikhita22/biosync-carechain/internal/infrastructure/storage"
)

// SettingsRepository holds small UI preferences, currently the theme.
type SettingsRepository struct {
	kv storage.KV
}

func NewSettingsRepository(kv storage.KV) *SettingsRepository {
	return &SettingsRepository{kv: kv}
}

// Theme returns the stored theme, defaulting to dark.
func (r *SettingsRepository) Theme(ctx context.Context) (string, error) {
	theme, err := r.kv.Get(ctx, keyTheme)
	if errors.Is(err, storage.ErrKeyNotFound) {
		return "dark", nil
	}
	if err != nil {
		return "", err
	}
	return theme, nil
}

func (r *SettingsRepository) SetTheme(ctx context.Context, theme string) error {
	return r.kv.PutMany(ctx, map[string]string{keyTheme: theme})
}
