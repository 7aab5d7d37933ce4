// Package gridview implements the client side of the grid: a viewport
// over the cell plane with pan and zoom, a renderer that turns the
// visible state into a display list, an HTTP-backed cell cache, and the
// ad placement form. State lives in explicit structs owned by the caller;
// there are no package-level globals.
package gridview

import (
	"math"

	"adverse/internal/core/port"
)

const (
	// MinCellSize and MaxCellSize clamp the zoom level, in pixels per cell.
	MinCellSize = 5
	MaxCellSize = 100

	// PrefetchBuffer is the extra cell margin fetched beyond the visible
	// area to keep panning smooth.
	PrefetchBuffer = 5

	zoomOutFactor = 0.9
	zoomInFactor  = 1.1
)

// Viewport tracks a continuous pixel offset for the grid origin and the
// current cell size, and converts between pixel and grid coordinates.
// Offsets are non-positive: offset (0,0) puts grid cell (0,0) at the
// canvas top-left corner.
type Viewport struct {
	GridSize     int
	CanvasWidth  int
	CanvasHeight int

	OffsetX  float64
	OffsetY  float64
	CellSize float64

	dragging    bool
	dragStartX  float64
	dragStartY  float64
	dragOriginX float64
	dragOriginY float64
}

// NewViewport creates a viewport anchored at the grid origin.
func NewViewport(gridSize, canvasWidth, canvasHeight int, cellSize float64) *Viewport {
	return &Viewport{
		GridSize:     gridSize,
		CanvasWidth:  canvasWidth,
		CanvasHeight: canvasHeight,
		CellSize:     cellSize,
	}
}

// PixelToGrid converts a canvas pixel position to grid coordinates. The
// result may lie outside [0, GridSize); callers decide whether to ignore
// out-of-range hits.
func (v *Viewport) PixelToGrid(px, py float64) (int, int) {
	gx := int(math.Floor((px - v.OffsetX) / v.CellSize))
	gy := int(math.Floor((py - v.OffsetY) / v.CellSize))
	return gx, gy
}

// GridToPixel returns the canvas pixel position of a cell's top-left
// corner.
func (v *Viewport) GridToPixel(gx, gy int) (float64, float64) {
	return float64(gx)*v.CellSize + v.OffsetX, float64(gy)*v.CellSize + v.OffsetY
}

// VisibleBounds computes the grid coordinate range currently covered by
// the canvas, clamped to the grid extent.
func (v *Viewport) VisibleBounds() port.Bounds {
	return port.Bounds{
		MinX: maxInt(0, int(math.Floor(-v.OffsetX/v.CellSize))),
		MaxX: minInt(v.GridSize-1, int(math.Ceil((float64(v.CanvasWidth)-v.OffsetX)/v.CellSize))),
		MinY: maxInt(0, int(math.Floor(-v.OffsetY/v.CellSize))),
		MaxY: minInt(v.GridSize-1, int(math.Ceil((float64(v.CanvasHeight)-v.OffsetY)/v.CellSize))),
	}
}

// FetchBounds is the visible range expanded by the prefetch buffer,
// clamped to the grid extent. This is the box the client requests from
// the server.
func (v *Viewport) FetchBounds() port.Bounds {
	b := v.VisibleBounds()
	return port.Bounds{
		MinX: maxInt(0, b.MinX-PrefetchBuffer),
		MaxX: minInt(v.GridSize-1, b.MaxX+PrefetchBuffer),
		MinY: maxInt(0, b.MinY-PrefetchBuffer),
		MaxY: minInt(v.GridSize-1, b.MaxY+PrefetchBuffer),
	}
}

// StartDrag begins a primary-button pan at the given cursor position.
func (v *Viewport) StartDrag(px, py float64) {
	v.dragging = true
	v.dragStartX, v.dragStartY = px, py
	v.dragOriginX, v.dragOriginY = v.OffsetX, v.OffsetY
}

// DragTo pans the viewport while a drag is active: the offset tracks the
// cumulative cursor delta added to the offset captured at drag start. The
// offset is intentionally not clamped mid-drag.
func (v *Viewport) DragTo(px, py float64) {
	if !v.dragging {
		return
	}
	v.OffsetX = v.dragOriginX + (px - v.dragStartX)
	v.OffsetY = v.dragOriginY + (py - v.dragStartY)
}

// EndDrag finishes a pan and clamps the offset so no coordinate outside
// the grid is shown.
func (v *Viewport) EndDrag() {
	v.dragging = false
	v.ClampOffset()
}

// Dragging reports whether a pan is in progress.
func (v *Viewport) Dragging() bool {
	return v.dragging
}

// ZoomAt applies a wheel-zoom step anchored at the given cursor position:
// the grid coordinate under the cursor is the same before and after the
// zoom. wheelDown zooms out.
func (v *Viewport) ZoomAt(px, py float64, wheelDown bool) {
	gridX := (px - v.OffsetX) / v.CellSize
	gridY := (py - v.OffsetY) / v.CellSize

	factor := zoomInFactor
	if wheelDown {
		factor = zoomOutFactor
	}
	newSize := math.Max(MinCellSize, math.Min(MaxCellSize, v.CellSize*factor))

	v.CellSize = newSize
	v.OffsetX = px - gridX*newSize
	v.OffsetY = py - gridY*newSize
	v.ClampOffset()
}

// ClampOffset restricts the offset to [-(GridSize-1)*CellSize, 0] on both
// axes.
func (v *Viewport) ClampOffset() {
	maxX := float64(v.GridSize-1) * v.CellSize
	maxY := float64(v.GridSize-1) * v.CellSize
	v.OffsetX = math.Max(-maxX, math.Min(0, v.OffsetX))
	v.OffsetY = math.Max(-maxY, math.Min(0, v.OffsetY))
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
