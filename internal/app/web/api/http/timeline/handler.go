package timeline

import (
	"context"
	"errors"

	"github.com/danielgtaylor/huma/v2"
	"golang.org/x/exp/slog"

	"github.com/SriNikhita22/biosync-carechain/internal/domain/timeline"
)

// Servicer is the timeline store surface the handler depends on.
type Servicer interface {
	View(filter string, search string, order timeline.SortOrder) []timeline.Event
	Create(ctx context.Context, draft timeline.Draft) (timeline.Event, error)
	Update(ctx context.Context, id string, draft timeline.Draft) (timeline.Event, error)
	Delete(ctx context.Context, id string) error
	SetSortOrder(order timeline.SortOrder)
	LastSync() string
}

type Handler struct {
	store      Servicer
	log        *slog.Logger
	middleware huma.Middlewares
}

func NewHandler(store Servicer, log *slog.Logger, mws huma.Middlewares) *Handler {
	return &Handler{
		store:      store,
		log:        log,
		middleware: mws,
	}
}

func (h *Handler) SetupRoutes(api huma.API) {
	huma.Register(api, h.listOp(), h.list)
	huma.Register(api, h.createOp(), h.create)
	huma.Register(api, h.updateOp(), h.update)
	huma.Register(api, h.deleteOp(), h.delete)
}

func (h *Handler) list(_ context.Context, input *listInput) (*listOutput, error) {
	order := timeline.SortOrder(input.Sort)
	if order.Validate() != nil {
		order = timeline.SortDesc
	}

	// The requested order becomes the active one, so later writes
	// persist the collection the way the client last viewed it.
	h.store.SetSortOrder(order)
	events := h.store.View(input.Category, input.Search, order)

	return &listOutput{
		Body: listResponse{
			Events:   events,
			LastSync: h.store.LastSync(),
		},
	}, nil
}

func (h *Handler) create(ctx context.Context, input *createInput) (*eventOutput, error) {
	event, err := h.store.Create(ctx, input.Body.draft())
	if err != nil {
		return nil, mapError(err)
	}

	return &eventOutput{Body: event}, nil
}

func (h *Handler) update(ctx context.Context, input *updateInput) (*eventOutput, error) {
	event, err := h.store.Update(ctx, input.ID, input.Body.draft())
	if err != nil {
		return nil, mapError(err)
	}

	return &eventOutput{Body: event}, nil
}

func (h *Handler) delete(ctx context.Context, input *deleteInput) (*deleteOutput, error) {
	if err := h.store.Delete(ctx, input.ID); err != nil {
		return nil, mapError(err)
	}

	return &deleteOutput{
		Body: deleteResponse{Status: "Ok"},
	}, nil
}

func mapError(err error) error {
	var perr *timeline.PersistenceError
	switch {
	case timeline.IsNotFound(err):
		return huma.Error404NotFound("timeline event not found")
	case errors.Is(err, timeline.ErrInvalidCategory),
		errors.Is(err, timeline.ErrMissingFileName):
		return huma.Error422UnprocessableEntity(err.Error())
	case errors.As(err, &perr):
		return huma.Error500InternalServerError("timeline write failed")
	default:
		return err
	}
}
