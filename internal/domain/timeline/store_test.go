package timeline

import (
	"context"
	"errors"
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

func (m *MockRepository) Load(ctx context.Context) ([]Event, string, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.String(1), args.Error(2)
	}
	return args.Get(0).([]Event), args.String(1), args.Error(2)
}

func (m *MockRepository) Save(ctx context.Context, events []Event, marker string) error {
	args := m.Called(ctx, events, marker)
	return args.Error(0)
}

func (m *MockRepository) Clear(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func newTestStore(t *testing.T) (*Store, *MockRepository) {
	t.Helper()
	repo := new(MockRepository)
	store := NewStore(repo, slog.Default())
	store.now = func() time.Time {
		return time.Date(2024, time.March, 5, 14, 30, 0, 0, time.UTC)
	}
	return store, repo
}

func str(s string) *string { return &s }

func cat(c Category) *Category { return &c }

func TestStore_LoadEmptyOnError(t *testing.T) {
	store, repo := newTestStore(t)
	repo.On("Load", mock.Anything).Return(nil, "", errors.New("corrupt payload"))

	store.Load(context.Background())

	assert.Empty(t, store.Events())
	assert.Empty(t, store.LastSync())
	repo.AssertExpectations(t)
}

func TestStore_CreateDefaults(t *testing.T) {
	store, repo := newTestStore(t)
	repo.On("Save", mock.Anything, mock.Anything, mock.Anything).Return(nil)

	event, err := store.Create(context.Background(), Draft{})

	require.NoError(t, err)
	assert.NotEmpty(t, event.ID)
	assert.Equal(t, CategoryLabs, event.Category)
	assert.Equal(t, "2024-03-05", event.Date)
	assert.Equal(t, "Untitled Record", event.Title)
	assert.Empty(t, event.Summary)
	assert.Empty(t, event.Notes)
	assert.Equal(t, "Mar 5, 2024 - 02:30 PM", event.LastModified)
	assert.Equal(t, "Mar 5, 2024 - 02:30 PM", store.LastSync())
}

func TestStore_CreateRejectsInvalidCategory(t *testing.T) {
	store, _ := newTestStore(t)

	_, err := store.Create(context.Background(), Draft{Category: cat("Imaging")})

	assert.ErrorIs(t, err, ErrInvalidCategory)
	assert.Empty(t, store.Events())
}

func TestStore_CreateRejectsAttachmentWithoutName(t *testing.T) {
	store, _ := newTestStore(t)

	_, err := store.Create(context.Background(), Draft{FileData: str("data:image/png;base64,AAAA")})

	assert.ErrorIs(t, err, ErrMissingFileName)
	assert.Empty(t, store.Events())
}

func TestStore_SurvivingOperationsMatchCollection(t *testing.T) {
	store, repo := newTestStore(t)
	repo.On("Save", mock.Anything, mock.Anything, mock.Anything).Return(nil)
	ctx := context.Background()

	first, err := store.Create(ctx, Draft{Title: str("CBC Panel"), Date: str("2024-01-10")})
	require.NoError(t, err)
	second, err := store.Create(ctx, Draft{Title: str("Appendectomy"), Category: cat(CategorySurgeries), Date: str("2024-02-01")})
	require.NoError(t, err)
	third, err := store.Create(ctx, Draft{Title: str("Metformin"), Category: cat(CategoryPrescriptions), Date: str("2024-02-20")})
	require.NoError(t, err)

	updated, err := store.Update(ctx, second.ID, Draft{Title: str("Laparoscopic Appendectomy")})
	require.NoError(t, err)
	assert.Equal(t, second.ID, updated.ID)

	require.NoError(t, store.Delete(ctx, first.ID))

	events := store.Events()
	require.Len(t, events, 2)
	ids := map[string]bool{}
	for _, e := range events {
		assert.False(t, ids[e.ID], "duplicate id in collection")
		ids[e.ID] = true
	}
	assert.True(t, ids[second.ID])
	assert.True(t, ids[third.ID])
	assert.False(t, ids[first.ID])
}

func TestStore_UpdateUnknownID(t *testing.T) {
	store, _ := newTestStore(t)

	_, err := store.Update(context.Background(), "missing", Draft{Title: str("x")})

	assert.ErrorIs(t, err, ErrNotFound)
}

func TestStore_DeleteUnknownID(t *testing.T) {
	store, _ := newTestStore(t)

	err := store.Delete(context.Background(), "missing")

	assert.ErrorIs(t, err, ErrNotFound)
}

func TestStore_PersistFailureKeepsState(t *testing.T) {
	store, repo := newTestStore(t)
	repo.On("Save", mock.Anything, mock.Anything, mock.Anything).Return(errors.New("quota exceeded"))

	event, err := store.Create(context.Background(), Draft{Title: str("MRI")})

	var perr *PersistenceError
	require.ErrorAs(t, err, &perr)
	assert.Equal(t, "create", perr.Op)

	events := store.Events()
	require.Len(t, events, 1)
	assert.Equal(t, event.ID, events[0].ID)
}

func TestStore_WriteTimeSortCapture(t *testing.T) {
	store, repo := newTestStore(t)
	repo.On("Save", mock.Anything, mock.Anything, mock.Anything).Return(nil)
	ctx := context.Background()

	_, err := store.Create(ctx, Draft{Title: str("old"), Date: str("2023-01-01")})
	require.NoError(t, err)
	_, err = store.Create(ctx, Draft{Title: str("new"), Date: str("2024-01-01")})
	require.NoError(t, err)

	events := store.Events()
	assert.Equal(t, "new", events[0].Title, "default desc order puts newest first")

	// Flipping the active order only reorders on the next write.
	store.SetSortOrder(SortAsc)
	_, err = store.Create(ctx, Draft{Title: str("middle"), Date: str("2023-06-01")})
	require.NoError(t, err)

	events = store.Events()
	require.Len(t, events, 3)
	assert.Equal(t, "old", events[0].Title)
	assert.Equal(t, "middle", events[1].Title)
	assert.Equal(t, "new", events[2].Title)
}

func TestStore_SubscriberNotifiedOnMutations(t *testing.T) {
	store, repo := newTestStore(t)
	repo.On("Save", mock.Anything, mock.Anything, mock.Anything).Return(nil)
	ctx := context.Background()

	var calls [][]Event
	store.Subscribe(func(events []Event) {
		calls = append(calls, events)
	})

	event, err := store.Create(ctx, Draft{Title: str("CBC")})
	require.NoError(t, err)
	require.Len(t, calls, 1)
	assert.Len(t, calls[0], 1)

	_, err = store.Update(ctx, event.ID, Draft{Notes: str("fasting")})
	require.NoError(t, err)
	require.Len(t, calls, 2)

	// A failed mutation must not notify.
	_, err = store.Update(ctx, "missing", Draft{Title: str("x")})
	assert.ErrorIs(t, err, ErrNotFound)
	assert.Len(t, calls, 2)

	require.NoError(t, store.Delete(ctx, event.ID))
	require.Len(t, calls, 3)
	assert.Empty(t, calls[2])
}

func TestStore_Clear(t *testing.T) {
	store, repo := newTestStore(t)
	repo.On("Save", mock.Anything, mock.Anything, mock.Anything).Return(nil)
	repo.On("Clear", mock.Anything).Return(nil)
	ctx := context.Background()

	_, err := store.Create(ctx, Draft{Title: str("CBC")})
	require.NoError(t, err)

	require.NoError(t, store.Clear(ctx))
	assert.Empty(t, store.Events())
	assert.Empty(t, store.LastSync())
	repo.AssertCalled(t, "Clear", mock.Anything)
}
