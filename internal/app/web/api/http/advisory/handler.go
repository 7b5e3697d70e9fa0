package advisory

import (
	"context"
	"errors"

	"github.com/danielgtaylor/huma/v2"
	"golang.org/x/exp/slog"

	"github.com/SriNikhita22/biosync-carechain/internal/domain/profile"
	"github.com/SriNikhita22/biosync-carechain/internal/domain/timeline"
)

// Advisor renders advisory text; it never fails.
type Advisor interface {
	HealthInsight(ctx context.Context, data profile.HealthData) string
	TimelineSummary(ctx context.Context, events []timeline.Event) string
}

// ProfileLoader fetches the registered profile for the insight path.
type ProfileLoader interface {
	Load(ctx context.Context) (profile.HealthData, error)
}

// EventSource provides the current event collection.
type EventSource interface {
	Events() []timeline.Event
}

type Handler struct {
	advisor    Advisor
	profiles   ProfileLoader
	events     EventSource
	log        *slog.Logger
	middleware huma.Middlewares
}

func NewHandler(advisor Advisor, profiles ProfileLoader, events EventSource, log *slog.Logger, mws huma.Middlewares) *Handler {
	return &Handler{
		advisor:    advisor,
		profiles:   profiles,
		events:     events,
		log:        log,
		middleware: mws,
	}
}

func (h *Handler) SetupRoutes(api huma.API) {
	huma.Register(api, h.insightOp(), h.insight)
	huma.Register(api, h.summaryOp(), h.summary)
}

func (h *Handler) insight(ctx context.Context, _ *struct{}) (*insightOutput, error) {
	data, err := h.profiles.Load(ctx)
	if errors.Is(err, profile.ErrNoProfile) {
		return nil, huma.Error404NotFound("no health profile registered")
	}
	if err != nil {
		return nil, err
	}

	return &insightOutput{
		Body: bulletsResponse{Text: h.advisor.HealthInsight(ctx, data)},
	}, nil
}

func (h *Handler) summary(ctx context.Context, _ *struct{}) (*summaryOutput, error) {
	return &summaryOutput{
		Body: bulletsResponse{Text: h.advisor.TimelineSummary(ctx, h.events.Events())},
	}, nil
}
