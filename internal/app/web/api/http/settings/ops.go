package settings

import (
	"net/http"

	"github.com/danielgtaylor/huma/v2"
)

func (h *Handler) themeOp() huma.Operation {
	return huma.Operation{
		OperationID: "settings-theme",
		Method:      http.MethodGet,
		Path:        "/api/v1/settings/theme",
		Summary:     "Get the stored theme",
		Tags:        []string{"settings"},
		Middlewares: h.middleware,
	}
}

func (h *Handler) setThemeOp() huma.Operation {
	return huma.Operation{
		OperationID: "settings-theme-set",
		Method:      http.MethodPut,
		Path:        "/api/v1/settings/theme",
		Summary:     "Store the theme",
		Description: "The theme survives a profile wipe.",
		Tags:        []string{"settings"},
		Middlewares: h.middleware,
	}
}
