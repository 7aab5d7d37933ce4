package gridview

import (
	"testing"

	"github.com/stretchr/testify/require"

	"adverse/internal/core/domain"
	"adverse/internal/core/port"
)

func cacheWithAd(x, y int, color string) *CellCache {
	adID := "ad-1"
	userID := "u1"
	cache := NewCellCache()
	cache.Replace([]port.CellWithAd{{
		Cell: domain.Cell{CellID: domain.CellKey(x, y), X: x, Y: y, AdID: &adID, UserID: &userID},
		Ad:   &domain.Advertisement{AdID: adID, UserID: userID, Color: color},
	}})
	return cache
}

func opsForCell(t *testing.T, ops []Op, vp *Viewport, x, y int) []Op {
	t.Helper()
	px, py := vp.GridToPixel(x, y)
	var out []Op
	for _, op := range ops {
		if op.X == px && op.Y == py {
			out = append(out, op)
		}
	}
	return out
}

func TestRenderColors(t *testing.T) {
	vp := NewViewport(1000, 100, 100, 20)
	cache := cacheWithAd(1, 1, "#ff0000")

	ops := Render(cache, vp, nil)
	require.NotEmpty(t, ops)

	adOps := opsForCell(t, ops, vp, 1, 1)
	require.Len(t, adOps, 2) // fill + gridline
	require.Equal(t, OpFill, adOps[0].Kind)
	require.Equal(t, "#ff0000", adOps[0].Color)
	require.Equal(t, vp.CellSize-1, adOps[0].W)
	require.Equal(t, OpStroke, adOps[1].Kind)
	require.Equal(t, GridLineColor, adOps[1].Color)

	emptyOps := opsForCell(t, ops, vp, 2, 2)
	require.Len(t, emptyOps, 2)
	require.Equal(t, EmptyCellColor, emptyOps[0].Color)
}

func TestRenderSelection(t *testing.T) {
	vp := NewViewport(1000, 100, 100, 20)
	cache := NewCellCache()

	ops := Render(cache, vp, &Coord{X: 2, Y: 3})
	sel := opsForCell(t, ops, vp, 2, 3)
	require.Len(t, sel, 3) // fill + selection stroke + gridline
	require.Equal(t, SelectionColor, sel[1].Color)
	require.Equal(t, 2.0, sel[1].Width)
}

func TestRenderSkipsOffscreenCells(t *testing.T) {
	vp := NewViewport(1000, 100, 100, 20)

	ops := Render(NewCellCache(), vp, nil)
	for _, op := range ops {
		require.LessOrEqual(t, op.X, float64(vp.CanvasWidth))
		require.LessOrEqual(t, op.Y, float64(vp.CanvasHeight))
		require.GreaterOrEqual(t, op.X+vp.CellSize, 0.0)
		require.GreaterOrEqual(t, op.Y+vp.CellSize, 0.0)
	}
}

func TestTooltipPosition(t *testing.T) {
	// plenty of room: below-right of the cursor
	left, top := TooltipPosition(100, 100, 1920, 1080)
	require.Equal(t, 108.0, left)
	require.Equal(t, 108.0, top)

	// near the right edge: flips to the left of the cursor
	left, _ = TooltipPosition(1900, 100, 1920, 1080)
	require.Equal(t, 1900.0-TooltipWidth-8, left)

	// near the bottom edge: flips above the cursor
	_, top = TooltipPosition(100, 1070, 1920, 1080)
	require.Equal(t, 1070.0-TooltipHeight-8, top)

	// never escapes the window
	for _, c := range [][2]float64{{0, 0}, {1920, 1080}, {5, 1075}, {1915, 3}} {
		left, top = TooltipPosition(c[0], c[1], 1920, 1080)
		require.GreaterOrEqual(t, left, 5.0)
		require.GreaterOrEqual(t, top, 5.0)
		require.LessOrEqual(t, left+TooltipWidth, 1920.0-5)
		require.LessOrEqual(t, top+TooltipHeight, 1080.0-5)
	}
}
