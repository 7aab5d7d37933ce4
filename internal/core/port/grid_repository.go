package port

import (
	"context"
	"errors"

	"adverse/internal/core/domain"
)

// ErrCellTaken is returned when a placement targets a cell that already
// references an ad. Handlers surface it as a generic failure.
var ErrCellTaken = errors.New("cell is already taken")

// ErrAdNotFound is returned when an update targets an unknown ad id.
var ErrAdNotFound = errors.New("advertisement not found")

// ErrNotOwner is returned when an update is attempted by a user that does
// not own the ad. Handlers should translate this into HTTP 403.
var ErrNotOwner = errors.New("permission denied: not the ad owner")

// Bounds is an inclusive coordinate box for range queries.
type Bounds struct {
	MinX, MaxX, MinY, MaxY int
}

// Contains reports whether the coordinate lies inside the box.
func (b Bounds) Contains(x, y int) bool {
	return x >= b.MinX && x <= b.MaxX && y >= b.MinY && y <= b.MaxY
}

// GridRepository is the outbound port over the cell, advertisement and
// click tables. Lookup methods return (nil, nil) when the row does not
// exist; absence is not an error.
type GridRepository interface {
	// AllCells returns every cell row. Expensive on a populated grid;
	// callers should prefer CellsInRange.
	AllCells(ctx context.Context) ([]domain.Cell, error)
	// CellsInRange returns cells inside the inclusive bounds.
	CellsInRange(ctx context.Context, b Bounds) ([]domain.Cell, error)
	// CellByID returns the cell with the given key, or nil.
	CellByID(ctx context.Context, cellID string) (*domain.Cell, error)
	// InsertCell creates a new cell row.
	InsertCell(ctx context.Context, cell *domain.Cell) error
	// BindCellAd points an existing cell row at an ad and owner.
	BindCellAd(ctx context.Context, cellID, adID, userID string) error

	// AdByID returns the advertisement with the given id, or nil.
	AdByID(ctx context.Context, adID string) (*domain.Advertisement, error)
	// InsertAd creates a new advertisement row.
	InsertAd(ctx context.Context, ad *domain.Advertisement) error
	// UpdateAd overwrites the mutable columns of an advertisement row,
	// counters included. Callers read, modify and write; the store does
	// not arbitrate concurrent writers.
	UpdateAd(ctx context.Context, ad *domain.Advertisement) error

	// InsertClick appends a click-log row.
	InsertClick(ctx context.Context, click *domain.Click) error
}
