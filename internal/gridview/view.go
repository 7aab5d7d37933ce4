package gridview

import (
	"context"

	"adverse/internal/core/port"
)

// GridView owns the viewport, cache and selection for one grid surface
// and translates cursor events into state changes and server calls. It is
// the explicit-struct counterpart of component state: no globals, the
// caller decides when to re-render from Render.
type GridView struct {
	Viewport *Viewport
	Cache    *CellCache
	Client   *Client

	Selected *Coord
	Hovered  *port.CellWithAd
}

// NewGridView wires a view over the given client.
func NewGridView(client *Client, gridSize, canvasWidth, canvasHeight int, cellSize float64) *GridView {
	return &GridView{
		Viewport: NewViewport(gridSize, canvasWidth, canvasHeight, cellSize),
		Cache:    NewCellCache(),
		Client:   client,
	}
}

// Refresh fetches the prefetch-expanded visible range and replaces the
// cache with the response. Fetches do not block panning or zooming; the
// caller may invoke this from a goroutine and a completed fetch simply
// swaps the map.
func (g *GridView) Refresh(ctx context.Context) error {
	items, err := g.Client.FetchRange(ctx, g.Viewport.FetchBounds())
	if err != nil {
		return err
	}
	g.Cache.Replace(items)
	return nil
}

// HandleClick selects the cell under the cursor. When the cell carries an
// ad it also reports the click to the server and returns the ad's target
// URL for the caller to open; otherwise it returns an empty string.
// Clicks during a drag are ignored.
func (g *GridView) HandleClick(ctx context.Context, px, py float64) (string, error) {
	if g.Viewport.Dragging() {
		return "", nil
	}
	gx, gy := g.Viewport.PixelToGrid(px, py)
	if !g.inGrid(gx, gy) {
		return "", nil
	}
	g.Selected = &Coord{X: gx, Y: gy}

	item, ok := g.Cache.At(gx, gy)
	if !ok || item.Ad == nil {
		return "", nil
	}
	if _, err := g.Client.Click(ctx, item.Ad.AdID, item.Cell.CellID); err != nil {
		return "", err
	}
	if item.Ad.TargetURL != nil {
		return *item.Ad.TargetURL, nil
	}
	return "", nil
}

// HandleHover updates the hover state for the cursor position. Only cells
// carrying an ad produce a tooltip.
func (g *GridView) HandleHover(px, py float64) {
	gx, gy := g.Viewport.PixelToGrid(px, py)
	if !g.inGrid(gx, gy) {
		g.Hovered = nil
		return
	}
	if item, ok := g.Cache.At(gx, gy); ok && item.Ad != nil {
		g.Hovered = &item
		return
	}
	g.Hovered = nil
}

// HandleRightClick resolves the cell under the cursor for the placement
// form. The returned item is nil for an empty coordinate, and ok is false
// when the cursor is outside the grid.
func (g *GridView) HandleRightClick(px, py float64) (x, y int, item *port.CellWithAd, ok bool) {
	gx, gy := g.Viewport.PixelToGrid(px, py)
	if !g.inGrid(gx, gy) {
		return 0, 0, nil, false
	}
	if cached, found := g.Cache.At(gx, gy); found {
		return gx, gy, &cached, true
	}
	return gx, gy, nil, true
}

func (g *GridView) inGrid(x, y int) bool {
	return x >= 0 && x < g.Viewport.GridSize && y >= 0 && y < g.Viewport.GridSize
}
