package gridview

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPixelGridRoundTrip(t *testing.T) {
	vp := NewViewport(1000, 800, 600, 20)
	vp.OffsetX = -123.4
	vp.OffsetY = -56.7

	for _, c := range [][2]int{{0, 0}, {3, 7}, {500, 500}, {999, 999}} {
		px, py := vp.GridToPixel(c[0], c[1])
		gx, gy := vp.PixelToGrid(px, py)
		require.Equal(t, c[0], gx)
		require.Equal(t, c[1], gy)
	}
}

func TestVisibleBounds(t *testing.T) {
	vp := NewViewport(1000, 800, 600, 20)

	b := vp.VisibleBounds()
	require.Equal(t, 0, b.MinX)
	require.Equal(t, 40, b.MaxX) // ceil(800/20)
	require.Equal(t, 0, b.MinY)
	require.Equal(t, 30, b.MaxY)

	vp.OffsetX = -100
	vp.OffsetY = -100
	b = vp.VisibleBounds()
	require.Equal(t, 5, b.MinX)
	require.Equal(t, 45, b.MaxX)
	require.Equal(t, 5, b.MinY)
	require.Equal(t, 35, b.MaxY)
}

func TestVisibleBoundsClampedToGrid(t *testing.T) {
	vp := NewViewport(1000, 800, 600, 20)
	vp.OffsetX = -(999 * 20)
	vp.OffsetY = -(999 * 20)

	b := vp.VisibleBounds()
	require.LessOrEqual(t, b.MaxX, 999)
	require.LessOrEqual(t, b.MaxY, 999)
	require.GreaterOrEqual(t, b.MinX, 0)
	require.GreaterOrEqual(t, b.MinY, 0)
}

func TestFetchBounds(t *testing.T) {
	vp := NewViewport(1000, 800, 600, 20)
	vp.OffsetX = -200
	vp.OffsetY = -200

	visible := vp.VisibleBounds()
	fetch := vp.FetchBounds()
	require.Equal(t, visible.MinX-PrefetchBuffer, fetch.MinX)
	require.Equal(t, visible.MaxX+PrefetchBuffer, fetch.MaxX)
	require.Equal(t, visible.MinY-PrefetchBuffer, fetch.MinY)
	require.Equal(t, visible.MaxY+PrefetchBuffer, fetch.MaxY)

	// the buffer never extends past the grid edges
	vp.OffsetX = 0
	vp.OffsetY = 0
	fetch = vp.FetchBounds()
	require.Equal(t, 0, fetch.MinX)
	require.Equal(t, 0, fetch.MinY)
}

func TestDragPansAndClampsOnRelease(t *testing.T) {
	vp := NewViewport(1000, 800, 600, 20)
	vp.OffsetX = -500
	vp.OffsetY = -500

	vp.StartDrag(400, 300)
	require.True(t, vp.Dragging())

	vp.DragTo(410, 280)
	require.InDelta(t, -490, vp.OffsetX, 1e-9)
	require.InDelta(t, -520, vp.OffsetY, 1e-9)

	// cumulative delta is measured from drag start, not the last event
	vp.DragTo(450, 350)
	require.InDelta(t, -450, vp.OffsetX, 1e-9)
	require.InDelta(t, -450, vp.OffsetY, 1e-9)

	// dragging past the origin is allowed mid-drag and clamped on release
	vp.DragTo(2000, 2000)
	require.Greater(t, vp.OffsetX, 0.0)
	vp.EndDrag()
	require.False(t, vp.Dragging())
	require.Equal(t, 0.0, vp.OffsetX)
	require.Equal(t, 0.0, vp.OffsetY)
}

func TestDragToWithoutStartIsIgnored(t *testing.T) {
	vp := NewViewport(1000, 800, 600, 20)
	vp.DragTo(100, 100)
	require.Equal(t, 0.0, vp.OffsetX)
	require.Equal(t, 0.0, vp.OffsetY)
}

func TestZoomAnchorsCursor(t *testing.T) {
	vp := NewViewport(1000, 800, 600, 20)
	vp.OffsetX = -2000
	vp.OffsetY = -2000

	const cursorX, cursorY = 400.0, 300.0
	beforeX := (cursorX - vp.OffsetX) / vp.CellSize
	beforeY := (cursorY - vp.OffsetY) / vp.CellSize

	vp.ZoomAt(cursorX, cursorY, false)

	afterX := (cursorX - vp.OffsetX) / vp.CellSize
	afterY := (cursorY - vp.OffsetY) / vp.CellSize
	require.Less(t, math.Abs(afterX-beforeX), 1.0)
	require.Less(t, math.Abs(afterY-beforeY), 1.0)
	require.InDelta(t, 22.0, vp.CellSize, 1e-9)
}

func TestZoomClampsCellSize(t *testing.T) {
	vp := NewViewport(1000, 800, 600, 20)

	for i := 0; i < 100; i++ {
		vp.ZoomAt(400, 300, true)
	}
	require.Equal(t, float64(MinCellSize), vp.CellSize)

	for i := 0; i < 100; i++ {
		vp.ZoomAt(400, 300, false)
	}
	require.Equal(t, float64(MaxCellSize), vp.CellSize)
}
