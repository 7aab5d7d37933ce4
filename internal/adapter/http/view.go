package httpadapter

import (
	"encoding/json"
	"log/slog"
	"net/http"
)

// handleViewAd increments an advertisement's view counter. A missing ad
// is a silent success; only store failures surface as HTTP 500.
func (h *Handler) handleViewAd(w http.ResponseWriter, r *http.Request) {
	var req viewAdRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.AdID == nil {
		h.respondError(w, http.StatusBadRequest, "Missing adId")
		return
	}

	if err := h.svc.RecordView(r.Context(), *req.AdID); err != nil {
		h.logger.Error("view ad error", slog.Any("error", err))
		h.respondError(w, http.StatusInternalServerError, err.Error())
		return
	}
	h.respondJSON(w, http.StatusOK, map[string]any{"success": true})
}
