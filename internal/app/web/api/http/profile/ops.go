package profile

import (
	"net/http"

	"github.com/danielgtaylor/huma/v2"
)

func (h *Handler) showOp() huma.Operation {
	return huma.Operation{
		OperationID: "profile-show",
		Method:      http.MethodGet,
		Path:        "/api/v1/profile",
		Summary:     "Get the registered health profile",
		Tags:        []string{"profile"},
		Middlewares: h.middleware,
	}
}

func (h *Handler) saveOp() huma.Operation {
	return huma.Operation{
		OperationID: "profile-save",
		Method:      http.MethodPut,
		Path:        "/api/v1/profile",
		Summary:     "Register or replace the health profile",
		Description: "Validates the profile, derives BMI and stamps the update time.",
		Tags:        []string{"profile"},
		Middlewares: h.middleware,
	}
}

func (h *Handler) clearOp() huma.Operation {
	return huma.Operation{
		OperationID: "profile-clear",
		Method:      http.MethodDelete,
		Path:        "/api/v1/profile",
		Summary:     "Erase the profile and the timeline",
		Description: "Removes the profile, all timeline events and the last-sync marker.",
		Tags:        []string{"profile"},
		Middlewares: h.middleware,
	}
}
