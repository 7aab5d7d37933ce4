package gridview

// Drawing colors, matching the served page.
const (
	EmptyCellColor = "#f3f4f6"
	GridLineColor  = "#e5e7eb"
	SelectionColor = "#ef4444"
)

// Tooltip geometry: a fixed-size box offset from the cursor, flipped to
// the opposite side near screen edges and kept a small margin away from
// them.
const (
	TooltipWidth  = 250
	TooltipHeight = 150
	tooltipOffset = 8
	tooltipMargin = 5
)

// OpKind distinguishes display-list operations.
type OpKind int

const (
	OpFill OpKind = iota
	OpStroke
)

// Op is one drawing operation: a filled or stroked rectangle in canvas
// pixel coordinates. Ops are emitted in paint order.
type Op struct {
	Kind  OpKind
	X, Y  float64
	W, H  float64
	Color string
	Width float64
}

// Coord is a grid cell coordinate.
type Coord struct {
	X, Y int
}

// Render produces the display list for the current state: a pure function
// of the cell cache, viewport and selection. Cells fully outside the
// canvas are skipped. Each visible cell gets a fill (the ad's color, or
// the neutral empty color), a selection stroke when it is the current
// selection, and a gridline stroke. Rectangles are one pixel short of the
// cell size to leave the gridline gap.
func Render(cache *CellCache, vp *Viewport, selected *Coord) []Op {
	b := vp.VisibleBounds()
	ops := make([]Op, 0, (b.MaxX-b.MinX+1)*(b.MaxY-b.MinY+1)*2)

	for gx := b.MinX; gx <= b.MaxX; gx++ {
		for gy := b.MinY; gy <= b.MaxY; gy++ {
			px, py := vp.GridToPixel(gx, gy)
			if px+vp.CellSize < 0 || px > float64(vp.CanvasWidth) ||
				py+vp.CellSize < 0 || py > float64(vp.CanvasHeight) {
				continue
			}

			side := vp.CellSize - 1
			color := EmptyCellColor
			if item, ok := cache.At(gx, gy); ok && item.Cell.AdID != nil && item.Ad != nil {
				color = item.Ad.Color
				if color == "" {
					color = EmptyCellColor
				}
			}
			ops = append(ops, Op{Kind: OpFill, X: px, Y: py, W: side, H: side, Color: color})

			if selected != nil && selected.X == gx && selected.Y == gy {
				ops = append(ops, Op{Kind: OpStroke, X: px, Y: py, W: side, H: side, Color: SelectionColor, Width: 2})
			}

			ops = append(ops, Op{Kind: OpStroke, X: px, Y: py, W: side, H: side, Color: GridLineColor, Width: 1})
		}
	}
	return ops
}

// TooltipPosition places the hover tooltip near the cursor, clamped to
// stay inside the window. The box sits below-right of the cursor and
// flips above or to the left when it would overflow.
func TooltipPosition(cursorX, cursorY, windowWidth, windowHeight float64) (left, top float64) {
	left = cursorX + tooltipOffset
	top = cursorY + tooltipOffset

	if left+TooltipWidth > windowWidth {
		left = cursorX - TooltipWidth - tooltipOffset
	}
	if top+TooltipHeight > windowHeight {
		top = cursorY - TooltipHeight - tooltipOffset
	}

	left = clampFloat(left, tooltipMargin, windowWidth-TooltipWidth-tooltipMargin)
	top = clampFloat(top, tooltipMargin, windowHeight-TooltipHeight-tooltipMargin)
	return left, top
}

func clampFloat(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
