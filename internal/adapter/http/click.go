package httpadapter

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"adverse/internal/core/port"
)

// handleClickAd records a click on an advertisement. The user-agent and
// referer request headers are captured as click metadata. adId and cellId
// are both required.
func (h *Handler) handleClickAd(w http.ResponseWriter, r *http.Request) {
	var req clickAdRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.AdID == nil || req.CellID == nil {
		h.respondError(w, http.StatusBadRequest, "Missing adId or cellId")
		return
	}

	var meta port.ClickMetadata
	if ua := r.Header.Get("User-Agent"); ua != "" {
		meta.UserAgent = &ua
	}
	if ref := r.Header.Get("Referer"); ref != "" {
		meta.Referrer = &ref
	}

	clickID, err := h.svc.Click(r.Context(), *req.AdID, *req.CellID, meta)
	if err != nil {
		h.logger.Error("click ad error", slog.Any("error", err))
		h.respondError(w, http.StatusInternalServerError, err.Error())
		return
	}
	h.respondJSON(w, http.StatusOK, map[string]any{"success": true, "clickId": clickID})
}
