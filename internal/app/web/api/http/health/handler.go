package health

import (
	"context"

	"github.com/danielgtaylor/huma/v2"
	"golang.org/x/exp/slog"
)

const (
	ServiceName = "biosync-carechain"
	Version     = "1.0.0"
)

// Syncer exposes the timeline's last-write marker.
type Syncer interface {
	LastSync() string
}

type Handler struct {
	sync       Syncer
	log        *slog.Logger
	middleware huma.Middlewares
}

func NewHandler(sync Syncer, log *slog.Logger, middleware huma.Middlewares) *Handler {
	return &Handler{
		sync:       sync,
		log:        log,
		middleware: middleware,
	}
}

func (h *Handler) SetupRoutes(api huma.API) {
	huma.Register(api, h.healthCheckOp(), h.healthCheck)
}

func (h *Handler) healthCheck(_ context.Context, _ *Input) (*Output, error) {
	h.log.Debug("health check request received")

	return &Output{
		Body: Response{
			Status:      "OK",
			Service:     ServiceName,
			Version:     Version,
			LastUpdated: h.sync.LastSync(),
		},
	}, nil
}
