package domain

import (
	"fmt"
	"time"
)

// Cell is one addressable unit of the grid. A cell row is created lazily
// on the first successful ad placement; an empty coordinate usually has no
// row at all. AdID and UserID are either both set or both nil.
type Cell struct {
	CellID    string    `json:"cellId"`
	X         int       `json:"x"`
	Y         int       `json:"y"`
	AdID      *string   `json:"adId"`
	UserID    *string   `json:"userId"`
	IsSpecial bool      `json:"isSpecial"`
	CreatedAt time.Time `json:"createdAt"`
}

// CellKey derives the primary key for a coordinate, e.g. "100_200".
func CellKey(x, y int) string {
	return fmt.Sprintf("%d_%d", x, y)
}
