package httpadapter

import (
	"encoding/json"
	"log/slog"
	"net/http"
)

// respondJSON writes v as a JSON body with the given status code.
// Encoding failures are logged; the status line has already been sent.
func (h *Handler) respondJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		h.logger.Error("encode response error", slog.Any("error", err))
	}
}

// respondError writes an {"error": msg} body with the given status code.
func (h *Handler) respondError(w http.ResponseWriter, status int, msg string) {
	h.respondJSON(w, status, map[string]string{"error": msg})
}
