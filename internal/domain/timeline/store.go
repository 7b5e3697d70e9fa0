package timeline

import (
	"context"
	"errors"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	"golang.org/x/exp/slog"
)

// Store owns the canonical ordered event collection and its last-sync
// marker. The persisted order is whatever the active sort order was at
// the moment of the last write: changing the sort order between writes
// changes the meaning of the stored order. View is a pure projection
// and does not depend on the stored order.
type Store struct {
	mu        sync.Mutex
	repo      Repository
	log       *slog.Logger
	now       func() time.Time
	events    []Event
	lastSync  string
	sortOrder SortOrder
	subs      []func([]Event)
}

// NewStore creates a timeline store. Call Load before any mutation.
func NewStore(repo Repository, log *slog.Logger) *Store {
	return &Store{
		repo:      repo,
		log:       log.With("component", "timeline_store"),
		now:       time.Now,
		sortOrder: SortDesc,
	}
}

// Load reads the persisted collection and marker. A missing or corrupt
// collection degrades to an empty one; Load never fails the startup.
func (s *Store) Load(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	events, marker, err := s.repo.Load(ctx)
	if err != nil {
		s.log.Warn("failed to load timeline, starting empty", "error", err)
		s.events = nil
		s.lastSync = ""
		return
	}

	s.events = events
	s.lastSync = marker
	s.log.Debug("timeline loaded", "events", len(events))
}

// Subscribe registers a listener invoked with a snapshot of the
// collection after every successful mutation.
func (s *Store) Subscribe(fn func([]Event)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.subs = append(s.subs, fn)
}

// SetSortOrder changes the order applied by subsequent writes.
func (s *Store) SetSortOrder(order SortOrder) {
	if order.Validate() != nil {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sortOrder = order
}

// Events returns a snapshot of the collection in stored order.
func (s *Store) Events() []Event {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshot()
}

// LastSync returns the last-sync marker, empty if never written.
func (s *Store) LastSync() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastSync
}

// Create assigns a fresh id to the draft, applies defaults, prepends it
// to the collection, re-sorts under the active sort order and persists.
func (s *Store) Create(ctx context.Context, draft Draft) (Event, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	timestamp := FormatTimestamp(s.now())
	event := Event{
		ID:           uuid.NewString(),
		Date:         s.now().Format(dateLayout),
		Category:     CategoryLabs,
		Title:        "Untitled Record",
		LastModified: timestamp,
	}
	applyDraft(&event, draft)

	if err := validateEvent(event); err != nil {
		return Event{}, err
	}

	s.events = append([]Event{event}, s.events...)
	sortByDate(s.events, s.sortOrder)
	s.lastSync = timestamp

	err := s.persist(ctx, "create")
	s.log.Info("timeline event created", "event_id", event.ID, "category", event.Category)
	s.notify()
	return event, err
}

// Update merges the supplied draft fields onto the event matching id.
func (s *Store) Update(ctx context.Context, id string, draft Draft) (Event, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.indexOf(id)
	if idx < 0 {
		return Event{}, ErrNotFound
	}

	updated := s.events[idx]
	applyDraft(&updated, draft)
	if err := validateEvent(updated); err != nil {
		return Event{}, err
	}

	timestamp := FormatTimestamp(s.now())
	updated.LastModified = timestamp
	s.events[idx] = updated
	sortByDate(s.events, s.sortOrder)
	s.lastSync = timestamp

	err := s.persist(ctx, "update")
	s.log.Info("timeline event updated", "event_id", id)
	s.notify()
	return updated, err
}

// Delete removes the event matching id and persists the collection.
// Confirmation of the destructive action is the caller's concern.
func (s *Store) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.indexOf(id)
	if idx < 0 {
		return ErrNotFound
	}

	s.events = append(s.events[:idx], s.events[idx+1:]...)
	s.lastSync = FormatTimestamp(s.now())

	err := s.persist(ctx, "delete")
	s.log.Info("timeline event deleted", "event_id", id)
	s.notify()
	return err
}

// Clear wipes the collection and marker, in memory and in the store.
// Used by the profile-clear cascade.
func (s *Store) Clear(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.events = nil
	s.lastSync = ""
	if err := s.repo.Clear(ctx); err != nil {
		return &PersistenceError{Op: "clear", Err: err}
	}
	s.notify()
	return nil
}

// persist writes the collection and marker; a write failure is logged
// and surfaced but never rolls back the in-memory state.
func (s *Store) persist(ctx context.Context, op string) error {
	if err := s.repo.Save(ctx, s.events, s.lastSync); err != nil {
		s.log.Error("timeline write failed, in-memory state retained", "op", op, "error", err)
		return &PersistenceError{Op: op, Err: err}
	}
	return nil
}

func (s *Store) indexOf(id string) int {
	for i, e := range s.events {
		if e.ID == id {
			return i
		}
	}
	return -1
}

func (s *Store) snapshot() []Event {
	out := make([]Event, len(s.events))
	copy(out, s.events)
	return out
}

func (s *Store) notify() {
	snap := s.snapshot()
	for _, fn := range s.subs {
		fn(snap)
	}
}

func applyDraft(e *Event, d Draft) {
	if d.Date != nil {
		e.Date = *d.Date
	}
	if d.Category != nil {
		e.Category = *d.Category
	}
	if d.Title != nil {
		e.Title = *d.Title
	}
	if d.Summary != nil {
		e.Summary = *d.Summary
	}
	if d.Notes != nil {
		e.Notes = *d.Notes
	}
	if d.FileName != nil {
		e.FileName = *d.FileName
	}
	if d.FileData != nil {
		e.FileData = *d.FileData
	}
}

func validateEvent(e Event) error {
	if err := e.Category.Validate(); err != nil {
		return err
	}
	if e.FileData != "" && e.FileName == "" {
		return ErrMissingFileName
	}
	return nil
}

func sortByDate(events []Event, order SortOrder) {
	sort.SliceStable(events, func(i, j int) bool {
		a, b := parseDate(events[i].Date), parseDate(events[j].Date)
		if order == SortAsc {
			return a.Before(b)
		}
		return b.Before(a)
	})
}

// IsNotFound reports whether err signals a missing event.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}
