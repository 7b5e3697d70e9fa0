package timeline

import (
	"net/http"

	"github.com/danielgtaylor/huma/v2"
)

func (h *Handler) listOp() huma.Operation {
	return huma.Operation{
		OperationID: "timeline-list",
		Method:      http.MethodGet,
		Path:        "/api/v1/timeline",
		Summary:     "List timeline events",
		Description: "Returns a filtered, searched and date-sorted projection of the event history.",
		Tags:        []string{"timeline"},
		Middlewares: h.middleware,
	}
}

func (h *Handler) createOp() huma.Operation {
	return huma.Operation{
		OperationID: "timeline-create",
		Method:      http.MethodPost,
		Path:        "/api/v1/timeline",
		Summary:     "Add a timeline event",
		Description: "Missing fields receive defaults: today's date, Labs category, Untitled Record title.",
		Tags:        []string{"timeline"},
		Middlewares: h.middleware,
	}
}

func (h *Handler) updateOp() huma.Operation {
	return huma.Operation{
		OperationID: "timeline-update",
		Method:      http.MethodPut,
		Path:        "/api/v1/timeline/{id}",
		Summary:     "Update a timeline event",
		Tags:        []string{"timeline"},
		Middlewares: h.middleware,
	}
}

func (h *Handler) deleteOp() huma.Operation {
	return huma.Operation{
		OperationID: "timeline-delete",
		Method:      http.MethodDelete,
		Path:        "/api/v1/timeline/{id}",
		Summary:     "Delete a timeline event",
		Tags:        []string{"timeline"},
		Middlewares: h.middleware,
	}
}
