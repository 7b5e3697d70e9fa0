package settings

import (
	"context"

	"github.com/danielgtaylor/huma/v2"
	"golang.org/x/exp/slog"
)

// Store persists UI preferences.
type Store interface {
	Theme(ctx context.Context) (string, error)
	SetTheme(ctx context.Context, theme string) error
}

type Handler struct {
	store      Store
	log        *slog.Logger
	middleware huma.Middlewares
}

func NewHandler(store Store, log *slog.Logger, mws huma.Middlewares) *Handler {
	return &Handler{
		store:      store,
		log:        log,
		middleware: mws,
	}
}

func (h *Handler) SetupRoutes(api huma.API) {
	huma.Register(api, h.themeOp(), h.theme)
	huma.Register(api, h.setThemeOp(), h.setTheme)
}

func (h *Handler) theme(ctx context.Context, _ *struct{}) (*themeOutput, error) {
	theme, err := h.store.Theme(ctx)
	if err != nil {
		return nil, err
	}

	return &themeOutput{Body: themeResponse{Theme: theme}}, nil
}

func (h *Handler) setTheme(ctx context.Context, input *setThemeInput) (*themeOutput, error) {
	if err := h.store.SetTheme(ctx, input.Body.Theme); err != nil {
		return nil, err
	}

	return &themeOutput{Body: themeResponse{Theme: input.Body.Theme}}, nil
}
