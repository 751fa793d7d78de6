package httpadapter

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"campaign-reporting/internal/core/port"
)

// handleSentMetrics returns one page of per-campaign aggregates. The
// window, campaign filter (name, type, fromEmail, labels) and paging are
// all optional query parameters. With `format=csv` the page is rendered as
// a CSV attachment instead of JSON.
func (h *Handler) handleSentMetrics(w http.ResponseWriter, r *http.Request) {
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

	page, err := h.svc.SentCampaignMetrics(r.Context(), port.SentQuery{
		Account: chi.URLParam(r, "accountName"),
		Window:  window,
		Filter:  parseCampaignFilter(q),
		Paging:  paging,
	})
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	if q.Get("format") == "csv" {
		h.writeSentCSV(w, r, page)
		return
	}
	h.writeJSON(w, r, page)
}
