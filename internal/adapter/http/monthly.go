package httpadapter

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"campaign-reporting/internal/core/port"
)

// handleMonthlyMetrics returns one page of per-month aggregates. The
// window is optional; paging defaults to the first page of ten items.
// With `format=csv` the page is rendered as a CSV attachment instead of
// JSON.
func (h *Handler) handleMonthlyMetrics(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	window, err := parseWindow(q)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	paging, err := parsePaging(q)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	page, err := h.svc.MonthlyMetrics(r.Context(), port.MonthlyQuery{
		Account: chi.URLParam(r, "accountName"),
		Window:  window,
		Paging:  paging,
	})
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	if q.Get("format") == "csv" {
		h.writeMonthlyCSV(w, r, page)
		return
	}
	h.writeJSON(w, r, page)
}
