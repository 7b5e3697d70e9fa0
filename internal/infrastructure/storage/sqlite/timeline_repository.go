package sqlite

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"golang.org/x/exp/slog"

	"github.com/SriNikhita22/biosync-carechain/internal/domain/timeline"
	"github.com/SriNikhita22/biosync-carechain/internal/infrastructure/storage"
)

// TimelineRepository persists the event collection and its last-sync
// marker as JSON documents.
type TimelineRepository struct {
	kv  storage.KV
	log *slog.Logger
}

func NewTimelineRepository(kv storage.KV, log *slog.Logger) *TimelineRepository {
	return &TimelineRepository{
		kv:  kv,
		log: log.With("component", "timeline_repository"),
	}
}

// Load returns the stored events and last-sync marker. An absent or
// unreadable collection degrades to empty rather than failing; the app
// must start even over damaged data.
func (r *TimelineRepository) Load(ctx context.Context) ([]timeline.Event, string, error) {
	raw, err := r.kv.Get(ctx, keyTimeline)
	if errors.Is(err, storage.ErrKeyNotFound) {
		return []timeline.Event{}, "", nil
	}
	if err != nil {
		return nil, "", fmt.Errorf("load timeline: %w", err)
	}

	var events []timeline.Event
	if err := json.Unmarshal([]byte(raw), &events); err != nil {
		r.log.Warn("timeline document unreadable, starting empty", "error", err)
		return []timeline.Event{}, "", nil
	}

	lastSync, err := r.kv.Get(ctx, keyTimelineUpdated)
	if err != nil && !errors.Is(err, storage.ErrKeyNotFound) {
		return nil, "", fmt.Errorf("load last sync marker: %w", err)
	}

	return events, lastSync, nil
}

// Save writes the collection and the marker atomically.
func (r *TimelineRepository) Save(ctx context.Context, events []timeline.Event, lastSync string) error {
	raw, err := json.Marshal(events)
	if err != nil {
		return fmt.Errorf("encode timeline: %w", err)
	}

	return r.kv.PutMany(ctx, map[string]string{
		keyTimeline:        string(raw),
		keyTimelineUpdated: lastSync,
	})
}

func (r *TimelineRepository) Clear(ctx context.Context) error {
	return r.kv.Delete(ctx, keyTimeline, keyTimelineUpdated)
}
