// Package rescue renders the emergency card page the QR code points
// at. Everything it shows arrives in the query string, so the page
// works with no profile stored on the serving machine.
package rescue

import (
	"embed"
	"html/template"
	"net/http"
	"net/url"

	"golang.org/x/exp/slog"
)

//go:embed rescue.html.tmpl
var templateFS embed.FS

type Handler struct {
	tmpl *template.Template
	log  *slog.Logger
}

func NewHandler(log *slog.Logger) *Handler {
	return &Handler{
		tmpl: template.Must(template.ParseFS(templateFS, "rescue.html.tmpl")),
		log:  log.With("component", "rescue_page"),
	}
}

type cardData struct {
	Name             string
	Age              string
	Gender           string
	BloodGroup       string
	Allergies        string
	Chronic          string
	Medications      string
	Surgeries        string
	EmergencyContact string
	Height           string
	Weight           string
	BMI              string
	Alcohol          string
	Drugs            string
	Painkillers      string
	Smoking          string
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	data := cardData{
		Name:             param(q, "n", "Unknown"),
		Age:              param(q, "a", "N/A"),
		Gender:           param(q, "g", "N/A"),
		BloodGroup:       param(q, "bg", "--"),
		Allergies:        param(q, "al", "None"),
		Chronic:          param(q, "cc", "None"),
		Medications:      param(q, "m", "None"),
		Surgeries:        param(q, "s", "None"),
		EmergencyContact: q.Get("ec"),
		Height:           param(q, "ht", "N/A"),
		Weight:           param(q, "wt", "N/A"),
		BMI:              param(q, "bmi", "N/A"),
		Alcohol:          param(q, "alc", "No"),
		Drugs:            param(q, "drg", "No"),
		Painkillers:      param(q, "pnd", "No"),
		Smoking:          param(q, "smk", "No"),
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := h.tmpl.Execute(w, data); err != nil {
		h.log.Error("failed to render rescue page", "error", err)
	}
}

func param(q url.Values, key, placeholder string) string {
	if v := q.Get(key); v != "" {
		return v
	}
	return placeholder
}
