package httpadapter

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"adverse/internal/core/port"
)

// handleUpdateAd applies a partial edit to an existing advertisement.
// adId and adData are required; userId is optional and, when supplied,
// must match the ad's owner. An ownership mismatch yields HTTP 403 with
// the permission marker in the error text; any other domain failure is
// HTTP 500.
func (h *Handler) handleUpdateAd(w http.ResponseWriter, r *http.Request) {
	var req updateAdRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.AdID == nil || req.AdData == nil {
		h.respondError(w, http.StatusBadRequest, "Missing required fields")
		return
	}

	userID := ""
	if req.UserID != nil {
		userID = *req.UserID
	}

	ad, err := h.svc.UpdateAd(r.Context(), *req.AdID, userID, req.AdData.patch())
	if err != nil {
		if errors.Is(err, port.ErrNotOwner) {
			h.respondError(w, http.StatusForbidden, err.Error())
			return
		}
		h.logger.Error("update ad error", slog.Any("error", err))
		h.respondError(w, http.StatusInternalServerError, err.Error())
		return
	}
	h.respondJSON(w, http.StatusOK, map[string]any{"success": true, "ad": ad})
}
