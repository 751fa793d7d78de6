package httpadapter

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"campaign-reporting/internal/core/port"
)

// handleDailyMetrics returns the per-day aggregates for an account. It
// requires `startDate` and `endDate` query parameters; the missing-bounds
// check itself lives in the service so the rule is enforced no matter the
// transport. On success it writes an unpaginated JSON array ordered by day
// ascending.
func (h *Handler) handleDailyMetrics(w http.ResponseWriter, r *http.Request) {
	window, err := parseWindow(r.URL.Query())
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	result, err := h.svc.DailyMetrics(r.Context(), port.DailyQuery{
		Account: chi.URLParam(r, "accountName"),
		Window:  window,
	})
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, r, result)
}
