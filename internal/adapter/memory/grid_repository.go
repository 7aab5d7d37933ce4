// Package memory provides an in-memory implementation of the grid
// repository port. It backs tests and local experiments; the postgres
// adapter is the production store.
package memory

import (
	"context"
	"sync"

	"adverse/internal/core/domain"
	"adverse/internal/core/port"
)

// GridRepository keeps cells, ads and clicks in maps guarded by a mutex.
// Lookup methods return copies so callers cannot mutate stored rows in
// place; like the postgres adapter, a missing row is (nil, nil).
type GridRepository struct {
	mu     sync.Mutex
	cells  map[string]domain.Cell
	ads    map[string]domain.Advertisement
	clicks []domain.Click
}

// NewGridRepository returns an empty in-memory repository.
func NewGridRepository() *GridRepository {
	return &GridRepository{
		cells: make(map[string]domain.Cell),
		ads:   make(map[string]domain.Advertisement),
	}
}

// AllCells returns every stored cell.
func (r *GridRepository) AllCells(ctx context.Context) ([]domain.Cell, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]domain.Cell, 0, len(r.cells))
	for _, c := range r.cells {
		out = append(out, c)
	}
	return out, nil
}

// CellsInRange returns cells inside the inclusive bounds.
func (r *GridRepository) CellsInRange(ctx context.Context, b port.Bounds) ([]domain.Cell, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []domain.Cell
	for _, c := range r.cells {
		if b.Contains(c.X, c.Y) {
			out = append(out, c)
		}
	}
	return out, nil
}

// CellByID returns the cell with the given key, or nil.
func (r *GridRepository) CellByID(ctx context.Context, cellID string) (*domain.Cell, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	c, ok := r.cells[cellID]
	if !ok {
		return nil, nil
	}
	return &c, nil
}

// InsertCell stores a new cell row.
func (r *GridRepository) InsertCell(ctx context.Context, cell *domain.Cell) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.cells[cell.CellID] = *cell
	return nil
}

// BindCellAd points an existing cell row at an ad and owner.
func (r *GridRepository) BindCellAd(ctx context.Context, cellID, adID, userID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	c, ok := r.cells[cellID]
	if !ok {
		return nil
	}
	c.AdID = &adID
	c.UserID = &userID
	r.cells[cellID] = c
	return nil
}

// AdByID returns the advertisement with the given id, or nil.
func (r *GridRepository) AdByID(ctx context.Context, adID string) (*domain.Advertisement, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	a, ok := r.ads[adID]
	if !ok {
		return nil, nil
	}
	return &a, nil
}

// InsertAd stores a new advertisement row.
func (r *GridRepository) InsertAd(ctx context.Context, ad *domain.Advertisement) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.ads[ad.AdID] = *ad
	return nil
}

// UpdateAd overwrites an advertisement row.
func (r *GridRepository) UpdateAd(ctx context.Context, ad *domain.Advertisement) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.ads[ad.AdID]; !ok {
		return nil
	}
	r.ads[ad.AdID] = *ad
	return nil
}

// InsertClick appends a click-log row.
func (r *GridRepository) InsertClick(ctx context.Context, click *domain.Click) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.clicks = append(r.clicks, *click)
	return nil
}

// Clicks returns a copy of the click log, oldest first.
func (r *GridRepository) Clicks() []domain.Click {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]domain.Click, len(r.clicks))
	copy(out, r.clicks)
	return out
}
