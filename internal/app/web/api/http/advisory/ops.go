package advisory

import (
	"net/http"

	"github.com/danielgtaylor/huma/v2"
)

func (h *Handler) insightOp() huma.Operation {
	return huma.Operation{
		OperationID: "advisory-insight",
		Method:      http.MethodGet,
		Path:        "/api/v1/advisory/insight",
		Summary:     "Responder bullets for the registered profile",
		Description: "Cached per profile; degrades to locally derived bullets when generation is unavailable.",
		Tags:        []string{"advisory"},
		Middlewares: h.middleware,
	}
}

func (h *Handler) summaryOp() huma.Operation {
	return huma.Operation{
		OperationID: "advisory-summary",
		Method:      http.MethodGet,
		Path:        "/api/v1/advisory/summary",
		Summary:     "Health snapshot of the timeline",
		Tags:        []string{"advisory"},
		Middlewares: h.middleware,
	}
}
