package httpadapter

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"campaign-reporting/internal/adapter/usecase"
	"campaign-reporting/internal/core/port"
)

func (h *Handler) writeJSON(w http.ResponseWriter, r *http.Request, v any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		h.logger.Error("encode response error", slog.Any("error", err), slog.String("rid", RID(r.Context())))
	}
}

// writeError maps service errors onto HTTP statuses: validation failures
// are 400, unknown accounts 404, fact source outages 503, everything else
// (including reconciliation invariant violations) 500.
func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case usecase.IsValidationError(err):
		http.Error(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, port.ErrAccountNotFound):
		http.Error(w, "account not found", http.StatusNotFound)
	case errors.Is(err, port.ErrDataUnavailable):
		h.logger.Error("fact source unavailable", slog.Any("error", err), slog.String("rid", RID(r.Context())))
		http.Error(w, "service unavailable", http.StatusServiceUnavailable)
	default:
		h.logger.Error("reporting error", slog.Any("error", err), slog.String("rid", RID(r.Context())))
		http.Error(w, "internal error", http.StatusInternalServerError)
	}
}
