package profile

import (
	"context"
	"errors"

	"github.com/danielgtaylor/huma/v2"
	"golang.org/x/exp/slog"

	"github.com/SriNikhita22/biosync-carechain/internal/domain/profile"
)

// Servicer is the profile service surface the handler depends on.
type Servicer interface {
	Save(ctx context.Context, data profile.HealthData) (profile.HealthData, error)
	Load(ctx context.Context) (profile.HealthData, error)
	Clear(ctx context.Context) error
}

type Handler struct {
	service    Servicer
	log        *slog.Logger
	middleware huma.Middlewares
}

func NewHandler(service Servicer, log *slog.Logger, mws huma.Middlewares) *Handler {
	return &Handler{
		service:    service,
		log:        log,
		middleware: mws,
	}
}

func (h *Handler) SetupRoutes(api huma.API) {
	huma.Register(api, h.showOp(), h.show)
	huma.Register(api, h.saveOp(), h.save)
	huma.Register(api, h.clearOp(), h.clear)
}

func (h *Handler) show(ctx context.Context, _ *struct{}) (*showOutput, error) {
	data, err := h.service.Load(ctx)
	if errors.Is(err, profile.ErrNoProfile) {
		return nil, huma.Error404NotFound("no health profile registered")
	}
	if err != nil {
		return nil, err
	}

	return &showOutput{Body: data}, nil
}

func (h *Handler) save(ctx context.Context, input *saveInput) (*saveOutput, error) {
	saved, err := h.service.Save(ctx, input.Body)

	var verr *profile.ValidationError
	if errors.As(err, &verr) {
		return nil, huma.Error422UnprocessableEntity(verr.Error())
	}
	if err != nil {
		return nil, err
	}

	return &saveOutput{Body: saved}, nil
}

func (h *Handler) clear(ctx context.Context, _ *struct{}) (*clearOutput, error) {
	if err := h.service.Clear(ctx); err != nil {
		return nil, err
	}

	return &clearOutput{
		Body: clearResponse{Status: "Ok"},
	}, nil
}
