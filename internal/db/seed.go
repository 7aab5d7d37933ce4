package db

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Seed inserts demo data: a handful of users, a cluster of ads in the
// genesis area plus scattered ads across the grid, and click logs backing
// the counters. Re-running is safe; conflicting rows are skipped.
func Seed(ctx context.Context, pool *pgxpool.Pool) error {
	r := rand.New(rand.NewSource(time.Now().UnixNano()))

	colors := []string{"#3b82f6", "#ef4444", "#22c55e", "#eab308", "#a855f7"}

	for i := 1; i <= 10; i++ {
		userID := fmt.Sprintf("user-%d", i)
		email := fmt.Sprintf("user%d@example.com", i)
		_, err := pool.Exec(ctx, `INSERT INTO users ("userId", username, email, "createdAt")
VALUES ($1,$2,$3,now()) ON CONFLICT DO NOTHING`,
			userID, fmt.Sprintf("Demo User %d", i), email)
		if err != nil {
			return err
		}
	}

	place := func(x, y int, userID string) error {
		cellID := fmt.Sprintf("%d_%d", x, y)
		adID := uuid.NewString()
		title := fmt.Sprintf("Ad at %s", cellID)
		message := "Seeded demo advertisement"
		targetURL := fmt.Sprintf("https://example.com/ads/%s", cellID)
		color := colors[r.Intn(len(colors))]
		clickCount := r.Intn(50)
		viewCount := clickCount + r.Intn(200)

		_, err := pool.Exec(ctx, `INSERT INTO advertisements
("adId", "userId", title, message, "targetUrl", color, "clickCount", "viewCount", "createdAt", "updatedAt")
VALUES ($1,$2,$3,$4,$5,$6,$7,$8,now(),now()) ON CONFLICT DO NOTHING`,
			adID, userID, title, message, targetURL, color, clickCount, viewCount)
		if err != nil {
			return err
		}

		_, err = pool.Exec(ctx, `INSERT INTO grid_cells
("cellId", x, y, "adId", "userId", "isSpecial", "createdAt")
VALUES ($1,$2,$3,$4,$5,$6,now()) ON CONFLICT DO NOTHING`,
			cellID, x, y, adID, userID, x < 10 && y < 10)
		if err != nil {
			return err
		}

		for c := 0; c < clickCount; c++ {
			ua := "Mozilla/5.0 (seed)"
			_, err = pool.Exec(ctx, `INSERT INTO clicks
("clickId", "adId", "cellId", "userAgent", "createdAt")
VALUES ($1,$2,$3,$4,now()) ON CONFLICT DO NOTHING`,
				uuid.NewString(), adID, cellID, ua)
			if err != nil {
				return err
			}
		}
		return nil
	}

	// fill part of the genesis area
	for x := 0; x < 5; x++ {
		for y := 0; y < 5; y++ {
			if r.Intn(2) == 0 {
				continue
			}
			if err := place(x, y, fmt.Sprintf("user-%d", r.Intn(10)+1)); err != nil {
				return err
			}
		}
	}

	// scatter ads across the rest of the grid
	for i := 0; i < 40; i++ {
		x := 10 + r.Intn(190)
		y := 10 + r.Intn(190)
		if err := place(x, y, fmt.Sprintf("user-%d", r.Intn(10)+1)); err != nil {
			return err
		}
	}

	return nil
}
