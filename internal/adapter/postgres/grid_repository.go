package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"adverse/internal/core/domain"
	"adverse/internal/core/port"
)

// GridRepository implements port.GridRepository using pgxpool for
// PostgreSQL.
type GridRepository struct {
	pool *pgxpool.Pool
}

// NewGridRepository returns a new repository instance.
func NewGridRepository(pool *pgxpool.Pool) *GridRepository {
	return &GridRepository{pool: pool}
}

const cellColumns = `"cellId", x, y, "adId", "userId", "isSpecial", "createdAt"`

func scanCell(row pgx.CollectableRow) (domain.Cell, error) {
	var c domain.Cell
	err := row.Scan(&c.CellID, &c.X, &c.Y, &c.AdID, &c.UserID, &c.IsSpecial, &c.CreatedAt)
	return c, err
}

// AllCells returns every cell row, ordered by key for stable output.
func (r *GridRepository) AllCells(ctx context.Context) ([]domain.Cell, error) {
	rows, err := r.pool.Query(ctx, `SELECT `+cellColumns+` FROM grid_cells ORDER BY "cellId"`)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, scanCell)
}

// CellsInRange returns cells inside the inclusive bounds.
func (r *GridRepository) CellsInRange(ctx context.Context, b port.Bounds) ([]domain.Cell, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT `+cellColumns+` FROM grid_cells WHERE x >= $1 AND x <= $2 AND y >= $3 AND y <= $4`,
		b.MinX, b.MaxX, b.MinY, b.MaxY)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, scanCell)
}

// CellByID returns the cell with the given key, or nil when absent.
func (r *GridRepository) CellByID(ctx context.Context, cellID string) (*domain.Cell, error) {
	var c domain.Cell
	err := r.pool.QueryRow(ctx,
		`SELECT `+cellColumns+` FROM grid_cells WHERE "cellId" = $1`, cellID).
		Scan(&c.CellID, &c.X, &c.Y, &c.AdID, &c.UserID, &c.IsSpecial, &c.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// InsertCell creates a new cell row.
func (r *GridRepository) InsertCell(ctx context.Context, cell *domain.Cell) error {
	_, err := r.pool.Exec(ctx,
		`INSERT INTO grid_cells ("cellId", x, y, "adId", "userId", "isSpecial", "createdAt")
		 VALUES ($1,$2,$3,$4,$5,$6,$7)`,
		cell.CellID, cell.X, cell.Y, cell.AdID, cell.UserID, cell.IsSpecial, cell.CreatedAt)
	return err
}

// BindCellAd points an existing cell row at an ad and owner.
func (r *GridRepository) BindCellAd(ctx context.Context, cellID, adID, userID string) error {
	_, err := r.pool.Exec(ctx,
		`UPDATE grid_cells SET "adId" = $1, "userId" = $2 WHERE "cellId" = $3`,
		adID, userID, cellID)
	return err
}

const adColumns = `"adId", "userId", name, title, message, "imageUrl", "targetUrl", color, "clickCount", "viewCount", "createdAt", "updatedAt"`

// AdByID returns the advertisement with the given id, or nil when absent.
func (r *GridRepository) AdByID(ctx context.Context, adID string) (*domain.Advertisement, error) {
	var a domain.Advertisement
	err := r.pool.QueryRow(ctx,
		`SELECT `+adColumns+` FROM advertisements WHERE "adId" = $1`, adID).
		Scan(&a.AdID, &a.UserID, &a.Name, &a.Title, &a.Message, &a.ImageURL,
			&a.TargetURL, &a.Color, &a.ClickCount, &a.ViewCount, &a.CreatedAt, &a.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &a, nil
}

// InsertAd creates a new advertisement row with counters at zero.
func (r *GridRepository) InsertAd(ctx context.Context, ad *domain.Advertisement) error {
	_, err := r.pool.Exec(ctx,
		`INSERT INTO advertisements ("adId", "userId", name, title, message, "imageUrl", "targetUrl", color, "clickCount", "viewCount", "createdAt", "updatedAt")
		 VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12)`,
		ad.AdID, ad.UserID, ad.Name, ad.Title, ad.Message, ad.ImageURL,
		ad.TargetURL, ad.Color, ad.ClickCount, ad.ViewCount, ad.CreatedAt, ad.UpdatedAt)
	return err
}

// UpdateAd overwrites the mutable columns of an advertisement row. The
// counters are written with whatever value the caller read, so concurrent
// increments can lose updates; that imprecision is accepted.
func (r *GridRepository) UpdateAd(ctx context.Context, ad *domain.Advertisement) error {
	_, err := r.pool.Exec(ctx,
		`UPDATE advertisements
		 SET name = $1, title = $2, message = $3, "imageUrl" = $4, "targetUrl" = $5,
		     color = $6, "clickCount" = $7, "viewCount" = $8, "updatedAt" = $9
		 WHERE "adId" = $10`,
		ad.Name, ad.Title, ad.Message, ad.ImageURL, ad.TargetURL,
		ad.Color, ad.ClickCount, ad.ViewCount, ad.UpdatedAt, ad.AdID)
	return err
}

// InsertClick appends a click-log row.
func (r *GridRepository) InsertClick(ctx context.Context, click *domain.Click) error {
	_, err := r.pool.Exec(ctx,
		`INSERT INTO clicks ("clickId", "adId", "cellId", "userAgent", "ipAddress", referrer, "createdAt")
		 VALUES ($1,$2,$3,$4,$5,$6,$7)`,
		click.ClickID, click.AdID, click.CellID, click.UserAgent, click.IPAddress,
		click.Referrer, click.CreatedAt)
	return err
}
