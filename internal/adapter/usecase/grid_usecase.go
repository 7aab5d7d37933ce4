package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"adverse/internal/core/domain"
	"adverse/internal/core/port"
)

// GridUseCase implements the grid business logic on top of a
// port.GridRepository. The store is the sole serialization point: the
// placement check and the counter increments are plain read-modify-write
// sequences with no in-process locking.
type GridUseCase struct {
	repo port.GridRepository

	// gridSize is the side length of the grid; valid coordinates are in
	// [0, gridSize) on both axes.
	gridSize int

	// genesisSize is the side length of the origin block whose cells are
	// flagged special at creation time.
	genesisSize int
}

// NewGridUseCase creates a usecase over the given repository and grid
// dimensions.
func NewGridUseCase(repo port.GridRepository, gridSize, genesisSize int) *GridUseCase {
	return &GridUseCase{repo: repo, gridSize: gridSize, genesisSize: genesisSize}
}

// Cells returns cells joined with their ads. A nil bounds fetches the
// whole table, which is expensive on a populated grid; the unbounded form
// skips the per-cell ad lookup and leaves Ad nil.
func (u *GridUseCase) Cells(ctx context.Context, b *port.Bounds) ([]port.CellWithAd, error) {
	if b == nil {
		cells, err := u.repo.AllCells(ctx)
		if err != nil {
			return nil, err
		}
		out := make([]port.CellWithAd, len(cells))
		for i, cell := range cells {
			out[i] = port.CellWithAd{Cell: cell}
		}
		return out, nil
	}

	cells, err := u.repo.CellsInRange(ctx, *b)
	if err != nil {
		return nil, err
	}
	out := make([]port.CellWithAd, 0, len(cells))
	for _, cell := range cells {
		item := port.CellWithAd{Cell: cell}
		if cell.AdID != nil {
			item.Ad, err = u.repo.AdByID(ctx, *cell.AdID)
			if err != nil {
				return nil, err
			}
		}
		out = append(out, item)
	}
	return out, nil
}

// Cell returns the cell at a coordinate with its ad, or nil when no row
// exists for it yet.
func (u *GridUseCase) Cell(ctx context.Context, x, y int) (*port.CellWithAd, error) {
	cell, err := u.repo.CellByID(ctx, domain.CellKey(x, y))
	if err != nil || cell == nil {
		return nil, err
	}
	item := &port.CellWithAd{Cell: *cell}
	if cell.AdID != nil {
		item.Ad, err = u.repo.AdByID(ctx, *cell.AdID)
		if err != nil {
			return nil, err
		}
	}
	return item, nil
}

// Ad returns an advertisement by id, or nil when it does not exist.
func (u *GridUseCase) Ad(ctx context.Context, adID string) (*domain.Advertisement, error) {
	return u.repo.AdByID(ctx, adID)
}

// PlaceAd claims an empty cell and creates its advertisement. The existing
// cell row, if any, must carry no ad reference; otherwise ErrCellTaken is
// returned. The check and the subsequent writes are not atomic against a
// concurrent placement on the same coordinate.
func (u *GridUseCase) PlaceAd(ctx context.Context, x, y int, userID string, content port.AdContent) (*port.Placement, error) {
	if x < 0 || x >= u.gridSize || y < 0 || y >= u.gridSize {
		return nil, fmt.Errorf("coordinate (%d, %d) is outside the grid", x, y)
	}

	cellID := domain.CellKey(x, y)
	existing, err := u.repo.CellByID(ctx, cellID)
	if err != nil {
		return nil, err
	}
	if existing != nil && existing.AdID != nil {
		return nil, port.ErrCellTaken
	}

	color := content.Color
	if color == "" {
		color = domain.DefaultAdColor
	}
	now := time.Now().UTC()
	ad := &domain.Advertisement{
		AdID:      uuid.NewString(),
		UserID:    userID,
		Name:      content.Name,
		Title:     &content.Title,
		Message:   content.Message,
		ImageURL:  content.ImageURL,
		TargetURL: &content.TargetURL,
		Color:     color,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err = u.repo.InsertAd(ctx, ad); err != nil {
		return nil, err
	}

	if existing != nil {
		err = u.repo.BindCellAd(ctx, cellID, ad.AdID, userID)
	} else {
		err = u.repo.InsertCell(ctx, &domain.Cell{
			CellID:    cellID,
			X:         x,
			Y:         y,
			AdID:      &ad.AdID,
			UserID:    &userID,
			IsSpecial: x < u.genesisSize && y < u.genesisSize,
			CreatedAt: now,
		})
	}
	if err != nil {
		return nil, err
	}
	return &port.Placement{CellID: cellID, AdID: ad.AdID}, nil
}

// UpdateAd applies a partial update to an existing advertisement. Only the
// provided fields change. A non-empty userID must match the ad's owner.
func (u *GridUseCase) UpdateAd(ctx context.Context, adID, userID string, patch port.AdPatch) (*domain.Advertisement, error) {
	ad, err := u.repo.AdByID(ctx, adID)
	if err != nil {
		return nil, err
	}
	if ad == nil {
		return nil, port.ErrAdNotFound
	}
	if userID != "" && ad.UserID != userID {
		return nil, port.ErrNotOwner
	}

	if patch.Name != nil {
		ad.Name = patch.Name
	}
	if patch.Title != nil {
		ad.Title = patch.Title
	}
	if patch.Message != nil {
		ad.Message = patch.Message
	}
	if patch.ImageURL != nil {
		ad.ImageURL = patch.ImageURL
	}
	if patch.TargetURL != nil {
		ad.TargetURL = patch.TargetURL
	}
	if patch.Color != nil {
		ad.Color = *patch.Color
	}
	ad.UpdatedAt = time.Now().UTC()

	if err = u.repo.UpdateAd(ctx, ad); err != nil {
		return nil, err
	}
	return ad, nil
}

// Click increments the ad's click counter and appends a click-log row. The
// counter increment is a read-modify-write and is silently skipped when
// the ad no longer exists; the click attempt is logged either way.
func (u *GridUseCase) Click(ctx context.Context, adID, cellID string, meta port.ClickMetadata) (string, error) {
	ad, err := u.repo.AdByID(ctx, adID)
	if err != nil {
		return "", err
	}
	if ad != nil {
		ad.ClickCount++
		ad.UpdatedAt = time.Now().UTC()
		if err = u.repo.UpdateAd(ctx, ad); err != nil {
			return "", err
		}
	}

	click := &domain.Click{
		ClickID:   uuid.NewString(),
		AdID:      adID,
		CellID:    cellID,
		UserAgent: meta.UserAgent,
		Referrer:  meta.Referrer,
		CreatedAt: time.Now().UTC(),
	}
	if err = u.repo.InsertClick(ctx, click); err != nil {
		return "", err
	}
	return click.ClickID, nil
}

// RecordView increments the ad's view counter with the same
// read-modify-write pattern as Click. No log entry is written and a
// missing ad is a silent no-op.
func (u *GridUseCase) RecordView(ctx context.Context, adID string) error {
	ad, err := u.repo.AdByID(ctx, adID)
	if err != nil || ad == nil {
		return err
	}
	ad.ViewCount++
	ad.UpdatedAt = time.Now().UTC()
	return u.repo.UpdateAd(ctx, ad)
}
