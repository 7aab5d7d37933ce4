package httpadapter

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"adverse/internal/core/domain"
	"adverse/internal/core/port"
)

// handleGetGrid serves cell reads in three forms. With x and y it returns
// a single cell joined with its ad, `{"cell": null}` when no row exists.
// With minX/maxX/minY/maxY it returns `{"cells": [{cell, ad}, ...]}` for
// the inclusive box. With no parameters it returns the whole table as
// bare cell rows, which is expensive and meant for tooling only. Malformed
// numbers produce HTTP 400; store failures produce HTTP 500.
func (h *Handler) handleGetGrid(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	if q.Get("x") != "" && q.Get("y") != "" {
		x, errX := strconv.Atoi(q.Get("x"))
		y, errY := strconv.Atoi(q.Get("y"))
		if errX != nil || errY != nil {
			h.respondError(w, http.StatusBadRequest, "invalid coordinates")
			return
		}
		item, err := h.svc.Cell(r.Context(), x, y)
		if err != nil {
			h.logger.Error("get cell error", slog.Any("error", err))
			h.respondError(w, http.StatusInternalServerError, "Failed to fetch grid")
			return
		}
		if item == nil {
			h.respondJSON(w, http.StatusOK, map[string]any{"cell": nil})
			return
		}
		h.respondJSON(w, http.StatusOK, map[string]any{"cell": item.Cell, "ad": item.Ad})
		return
	}

	if q.Get("minX") != "" && q.Get("maxX") != "" && q.Get("minY") != "" && q.Get("maxY") != "" {
		var (
			b    port.Bounds
			errs [4]error
		)
		b.MinX, errs[0] = strconv.Atoi(q.Get("minX"))
		b.MaxX, errs[1] = strconv.Atoi(q.Get("maxX"))
		b.MinY, errs[2] = strconv.Atoi(q.Get("minY"))
		b.MaxY, errs[3] = strconv.Atoi(q.Get("maxY"))
		for _, err := range errs {
			if err != nil {
				h.respondError(w, http.StatusBadRequest, "invalid bounds")
				return
			}
		}
		cells, err := h.svc.Cells(r.Context(), &b)
		if err != nil {
			h.logger.Error("get cells error", slog.Any("error", err))
			h.respondError(w, http.StatusInternalServerError, "Failed to fetch grid")
			return
		}
		h.respondJSON(w, http.StatusOK, map[string]any{"cells": cells})
		return
	}

	items, err := h.svc.Cells(r.Context(), nil)
	if err != nil {
		h.logger.Error("get all cells error", slog.Any("error", err))
		h.respondError(w, http.StatusInternalServerError, "Failed to fetch grid")
		return
	}
	cells := make([]domain.Cell, len(items))
	for i, item := range items {
		cells[i] = item.Cell
	}
	h.respondJSON(w, http.StatusOK, map[string]any{"cells": cells})
}

// handlePlaceAd claims a cell for a new advertisement. Missing x, y,
// userId or adData fields are rejected with HTTP 400 before the store is
// touched; the adData itself must carry title and targetUrl. Domain
// failures, the already-taken conflict included, surface as HTTP 500 with
// the error text in the body.
func (h *Handler) handlePlaceAd(w http.ResponseWriter, r *http.Request) {
	var req placeAdRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.X == nil || req.Y == nil || req.UserID == nil || req.AdData == nil {
		h.respondError(w, http.StatusBadRequest, "Missing required fields")
		return
	}
	if req.AdData.Title == nil || req.AdData.TargetURL == nil {
		h.respondError(w, http.StatusBadRequest, "Missing required fields")
		return
	}

	content := port.AdContent{
		Name:      req.AdData.Name,
		Title:     *req.AdData.Title,
		Message:   req.AdData.Message,
		ImageURL:  req.AdData.ImageURL,
		TargetURL: *req.AdData.TargetURL,
	}
	if req.AdData.Color != nil {
		content.Color = *req.AdData.Color
	}

	result, err := h.svc.PlaceAd(r.Context(), *req.X, *req.Y, *req.UserID, content)
	if err != nil {
		h.logger.Error("place ad error", slog.Any("error", err))
		h.respondError(w, http.StatusInternalServerError, err.Error())
		return
	}
	h.respondJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"cellId":  result.CellID,
		"adId":    result.AdID,
	})
}
