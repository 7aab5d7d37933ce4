package domain

import "time"

// DefaultAdColor is used when a placement request carries no color.
const DefaultAdColor = "#3b82f6"

// Advertisement is the content bound to a claimed cell. Counters are
// non-negative and only ever increase.
type Advertisement struct {
	AdID       string    `json:"adId"`
	UserID     string    `json:"userId"`
	Name       *string   `json:"name,omitempty"`
	Title      *string   `json:"title"`
	Message    *string   `json:"message"`
	ImageURL   *string   `json:"imageUrl,omitempty"`
	TargetURL  *string   `json:"targetUrl"`
	Color      string    `json:"color"`
	ClickCount int64     `json:"clickCount"`
	ViewCount  int64     `json:"viewCount"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}
