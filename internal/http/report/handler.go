package report

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/inflybi/warehouse/internal/report"
)

type Handler struct {
	svc *report.Service
}

func NewHandler(svc *report.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) Routes(r chi.Router) {
	r.Get("/lead-origins", h.leadOrigins)
	r.Get("/enrollments", h.enrollments)
	r.Get("/conversion", h.conversion)
	r.Get("/delinquency", h.delinquency)
}

// months reads the window size from the query string; the dashboards send
// 3, 6 or 12 and default to 6.
func months(r *http.Request) int {
	if s := r.URL.Query().Get("months"); s != "" {
		if n, err := strconv.Atoi(s); err == nil && n > 0 {
			return n
		}
	}

	return 6
}

func (h *Handler) leadOrigins(w http.ResponseWriter, r *http.Request) {
	out, err := h.svc.LeadOrigins(r.Context(), months(r))
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	writeJSON(w, out)
}

func (h *Handler) enrollments(w http.ResponseWriter, r *http.Request) {
	out, err := h.svc.Enrollments(r.Context(), months(r))
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	writeJSON(w, out)
}

func (h *Handler) conversion(w http.ResponseWriter, r *http.Request) {
	out, err := h.svc.Conversion(r.Context(), months(r))
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	writeJSON(w, out)
}

func (h *Handler) delinquency(w http.ResponseWriter, r *http.Request) {
	out, err := h.svc.Delinquency(r.Context(), months(r))
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	writeJSON(w, out)
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}
