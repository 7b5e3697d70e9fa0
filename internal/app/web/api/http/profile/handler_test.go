package profile

import (
	"context"
	"testing"

	"github.com/danielgtaylor/huma/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/slog"

	"github.com/SriNikhita22/biosync-carechain/internal/domain/profile"
)

// MockServicer is a mock implementation of the Servicer interface for testing
type MockServicer struct {
	mock.Mock
}

func (m *MockServicer) Save(ctx context.Context, data profile.HealthData) (profile.HealthData, error) {
	args := m.Called(ctx, data)
	return args.Get(0).(profile.HealthData), args.Error(1)
}

func (m *MockServicer) Load(ctx context.Context) (profile.HealthData, error) {
	args := m.Called(ctx)
	return args.Get(0).(profile.HealthData), args.Error(1)
}

func (m *MockServicer) Clear(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func TestHandler_show(t *testing.T) {
	service := new(MockServicer)
	service.On("Load", mock.Anything).Return(profile.HealthData{FullName: "Asha Rao"}, nil)

	handler := NewHandler(service, slog.Default(), huma.Middlewares{})
	output, err := handler.show(context.Background(), nil)

	require.NoError(t, err)
	assert.Equal(t, "Asha Rao", output.Body.FullName)
}

func TestHandler_show_NoProfile(t *testing.T) {
	service := new(MockServicer)
	service.On("Load", mock.Anything).Return(profile.HealthData{}, profile.ErrNoProfile)

	handler := NewHandler(service, slog.Default(), huma.Middlewares{})
	_, err := handler.show(context.Background(), nil)

	require.Error(t, err)
	var status huma.StatusError
	require.ErrorAs(t, err, &status)
	assert.Equal(t, 404, status.GetStatus())
}

func TestHandler_save_Validation(t *testing.T) {
	service := new(MockServicer)
	service.On("Save", mock.Anything, mock.Anything).Return(
		profile.HealthData{},
		&profile.ValidationError{Fields: map[string]error{"fullName": profile.ErrNameRequired}},
	)

	handler := NewHandler(service, slog.Default(), huma.Middlewares{})
	_, err := handler.save(context.Background(), &saveInput{})

	require.Error(t, err)
	var status huma.StatusError
	require.ErrorAs(t, err, &status)
	assert.Equal(t, 422, status.GetStatus())
}

func TestHandler_clear(t *testing.T) {
	service := new(MockServicer)
	service.On("Clear", mock.Anything).Return(nil)

	handler := NewHandler(service, slog.Default(), huma.Middlewares{})
	output, err := handler.clear(context.Background(), nil)

	require.NoError(t, err)
	assert.Equal(t, "Ok", output.Body.Status)
	service.AssertCalled(t, "Clear", mock.Anything)
}
