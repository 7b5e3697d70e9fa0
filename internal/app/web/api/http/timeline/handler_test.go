package timeline

import (
	"context"
	"testing"

	"github.com/danielgtaylor/huma/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/slog"

	"github.com/SriNikhita22/biosync-carechain/internal/domain/timeline"
)

// MockServicer is a mock implementation of the Servicer interface for testing
type MockServicer struct {
	mock.Mock
}

func (m *MockServicer) View(filter, search string, order timeline.SortOrder) []timeline.Event {
	args := m.Called(filter, search, order)
	return args.Get(0).([]timeline.Event)
}

func (m *MockServicer) Create(ctx context.Context, draft timeline.Draft) (timeline.Event, error) {
	args := m.Called(ctx, draft)
	return args.Get(0).(timeline.Event), args.Error(1)
}

func (m *MockServicer) Update(ctx context.Context, id string, draft timeline.Draft) (timeline.Event, error) {
	args := m.Called(ctx, id, draft)
	return args.Get(0).(timeline.Event), args.Error(1)
}

func (m *MockServicer) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockServicer) SetSortOrder(order timeline.SortOrder) {
	m.Called(order)
}

func (m *MockServicer) LastSync() string {
	args := m.Called()
	return args.String(0)
}

func newTestHandler(store *MockServicer) *Handler {
	return NewHandler(store, slog.Default(), huma.Middlewares{})
}

func TestHandler_list(t *testing.T) {
	store := new(MockServicer)
	store.On("SetSortOrder", timeline.SortAsc).Return()
	store.On("View", "Labs", "cbc", timeline.SortAsc).Return([]timeline.Event{{ID: "e1"}})
	store.On("LastSync").Return("Mar 5, 2024 - 02:30 PM")

	handler := newTestHandler(store)
	output, err := handler.list(context.Background(), &listInput{Category: "Labs", Search: "cbc", Sort: "asc"})

	require.NoError(t, err)
	require.Len(t, output.Body.Events, 1)
	assert.Equal(t, "e1", output.Body.Events[0].ID)
	assert.Equal(t, "Mar 5, 2024 - 02:30 PM", output.Body.LastSync)
}

func TestHandler_list_SortBecomesActiveOrder(t *testing.T) {
	store := new(MockServicer)
	store.On("SetSortOrder", timeline.SortAsc).Return()
	store.On("View", "", "", timeline.SortAsc).Return([]timeline.Event{})
	store.On("LastSync").Return("")

	handler := newTestHandler(store)
	_, err := handler.list(context.Background(), &listInput{Sort: "asc"})

	require.NoError(t, err)
	store.AssertCalled(t, "SetSortOrder", timeline.SortAsc)
}

func TestHandler_list_BadSortFallsBackToDesc(t *testing.T) {
	store := new(MockServicer)
	store.On("SetSortOrder", timeline.SortDesc).Return()
	store.On("View", "", "", timeline.SortDesc).Return([]timeline.Event{})
	store.On("LastSync").Return("")

	handler := newTestHandler(store)
	_, err := handler.list(context.Background(), &listInput{Sort: "sideways"})

	require.NoError(t, err)
	store.AssertCalled(t, "View", "", "", timeline.SortDesc)
	store.AssertCalled(t, "SetSortOrder", timeline.SortDesc)
}

func TestHandler_create(t *testing.T) {
	store := new(MockServicer)
	store.On("Create", mock.Anything, mock.MatchedBy(func(d timeline.Draft) bool {
		return d.Title != nil && *d.Title == "CBC Panel" &&
			d.Category != nil && *d.Category == timeline.CategoryLabs
	})).Return(timeline.Event{ID: "new-id", Title: "CBC Panel"}, nil)

	handler := newTestHandler(store)
	title, category := "CBC Panel", "Labs"
	output, err := handler.create(context.Background(), &createInput{
		Body: eventRequest{Title: &title, Category: &category},
	})

	require.NoError(t, err)
	assert.Equal(t, "new-id", output.Body.ID)
}

func TestHandler_create_InvalidCategory(t *testing.T) {
	store := new(MockServicer)
	store.On("Create", mock.Anything, mock.Anything).Return(timeline.Event{}, timeline.ErrInvalidCategory)

	handler := newTestHandler(store)
	_, err := handler.create(context.Background(), &createInput{})

	var status huma.StatusError
	require.ErrorAs(t, err, &status)
	assert.Equal(t, 422, status.GetStatus())
}

func TestHandler_update_NotFound(t *testing.T) {
	store := new(MockServicer)
	store.On("Update", mock.Anything, "missing", mock.Anything).Return(timeline.Event{}, timeline.ErrNotFound)

	handler := newTestHandler(store)
	_, err := handler.update(context.Background(), &updateInput{ID: "missing"})

	var status huma.StatusError
	require.ErrorAs(t, err, &status)
	assert.Equal(t, 404, status.GetStatus())
}

func TestHandler_delete(t *testing.T) {
	store := new(MockServicer)
	store.On("Delete", mock.Anything, "e1").Return(nil)

	handler := newTestHandler(store)
	output, err := handler.delete(context.Background(), &deleteInput{ID: "e1"})

	require.NoError(t, err)
	assert.Equal(t, "Ok", output.Body.Status)
}
