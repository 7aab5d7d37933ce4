package domain

import "time"

// User owns cells and ads. There is no registration flow; the client
// supplies an opaque userId and rows exist mainly for seeding and joins.
type User struct {
	UserID    string    `json:"userId"`
	Username  string    `json:"username"`
	Email     *string   `json:"email"`
	CreatedAt time.Time `json:"createdAt"`
}
