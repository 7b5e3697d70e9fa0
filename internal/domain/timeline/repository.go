package timeline

import "context"

// Repository is the durable key-value surface behind the timeline: the
// ordered collection and its last-sync marker, persisted as a whole.
type Repository interface {
	// Load returns the persisted collection and last-sync marker.
	// A store with no timeline yet returns an empty slice and marker.
	Load(ctx context.Context) ([]Event, string, error)
	// Save persists the full collection and marker in one write.
	Save(ctx context.Context, events []Event, marker string) error
	// Clear removes the collection and marker.
	Clear(ctx context.Context) error
}
