package health

import (
	"context"
	"testing"

	"github.com/danielgtaylor/huma/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/slog"
)

// MockSyncer is a mock implementation of the Syncer interface for testing
type MockSyncer struct {
	mock.Mock
}

func (m *MockSyncer) LastSync() string {
	args := m.Called()
	return args.String(0)
}

func TestHandler_healthCheck(t *testing.T) {
	tests := []struct {
		name     string
		lastSync string
	}{
		{
			name:     "fresh vault has no last-write marker",
			lastSync: "",
		},
		{
			name:     "marker surfaces after writes",
			lastSync: "Mar 5, 2024 - 02:30 PM",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sync := new(MockSyncer)
			sync.On("LastSync").Return(tt.lastSync)
			handler := NewHandler(sync, slog.Default(), huma.Middlewares{})

			output, err := handler.healthCheck(context.Background(), &Input{})

			require.NoError(t, err)
			assert.Equal(t, "OK", output.Body.Status)
			assert.Equal(t, ServiceName, output.Body.Service)
			assert.Equal(t, Version, output.Body.Version)
			assert.Equal(t, tt.lastSync, output.Body.LastUpdated)
		})
	}
}
