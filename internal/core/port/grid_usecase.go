package port

import (
	"context"

	"adverse/internal/core/domain"
)

// GridUseCase defines the business operations of the grid. This is the
// primary port into the application domain; the HTTP adapter and the CLI
// both depend on it.
type GridUseCase interface {
	// Cells returns cells joined with their ads. A nil bounds fetches the
	// whole table.
	Cells(ctx context.Context, b *Bounds) ([]CellWithAd, error)

	// Cell returns the cell at a coordinate with its ad, or nil when no
	// row exists. A missing cell is not an error.
	Cell(ctx context.Context, x, y int) (*CellWithAd, error)

	// Ad returns an advertisement by id, or nil.
	Ad(ctx context.Context, adID string) (*domain.Advertisement, error)

	// PlaceAd claims an empty cell for userID and creates the ad. It
	// fails with ErrCellTaken when the cell already references an ad.
	PlaceAd(ctx context.Context, x, y int, userID string, content AdContent) (*Placement, error)

	// UpdateAd applies a partial update to an existing ad. When userID is
	// non-empty it must match the ad's owner or ErrNotOwner is returned.
	// Unknown ids yield ErrAdNotFound.
	UpdateAd(ctx context.Context, adID, userID string, patch AdPatch) (*domain.Advertisement, error)

	// Click increments the ad's click counter and appends a click-log
	// row. The counter update is skipped silently when the ad no longer
	// exists; the click is logged regardless. Returns the click id.
	Click(ctx context.Context, adID, cellID string, meta ClickMetadata) (string, error)

	// RecordView increments the ad's view counter. No log entry is
	// written and a missing ad is a silent no-op.
	RecordView(ctx context.Context, adID string) error
}

// CellWithAd pairs a cell with its advertisement, nil for empty cells.
type CellWithAd struct {
	Cell domain.Cell           `json:"cell"`
	Ad   *domain.Advertisement `json:"ad"`
}

// AdContent carries the fields of a new advertisement.
type AdContent struct {
	Name      *string
	Title     string
	Message   *string
	ImageURL  *string
	TargetURL string
	Color     string
}

// AdPatch carries a partial update; nil fields are left untouched.
type AdPatch struct {
	Name      *string
	Title     *string
	Message   *string
	ImageURL  *string
	TargetURL *string
	Color     *string
}

// ClickMetadata is request context captured alongside a click.
type ClickMetadata struct {
	UserAgent *string
	Referrer  *string
}

// Placement identifies a newly claimed cell and its ad.
type Placement struct {
	CellID string `json:"cellId"`
	AdID   string `json:"adId"`
}
