package domain

import "time"

// Click is an append-only record of an ad click. It is written once per
// click, independently of the ad's counter update. IPAddress is carried in
// the schema but never populated.
type Click struct {
	ClickID   string    `json:"clickId"`
	AdID      string    `json:"adId"`
	CellID    string    `json:"cellId"`
	UserAgent *string   `json:"userAgent"`
	IPAddress *string   `json:"ipAddress"`
	Referrer  *string   `json:"referrer"`
	CreatedAt time.Time `json:"createdAt"`
}
