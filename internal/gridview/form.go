package gridview

import (
	"context"
	"errors"

	"adverse/internal/core/port"
)

// FormMode selects between placing a new ad and editing an existing one.
type FormMode int

const (
	ModeCreate FormMode = iota
	ModeEdit
)

// PlacementForm mirrors one ad's editable fields. A right-click on a
// populated cell pre-fills it from that cell's ad and marks edit mode; a
// right-click on an empty cell resets it for creation.
type PlacementForm struct {
	Mode FormMode
	X, Y int

	// AdID and OwnerID are set in edit mode.
	AdID    string
	OwnerID string

	// ViewerID is the client's stored identity, sent as userId.
	ViewerID string

	Name      string
	Title     string
	Message   string
	ImageURL  string
	TargetURL string
	Color     string
}

// Prefill loads the form for the right-clicked coordinate. A populated
// cell switches to edit mode with the ad's current content; an empty cell
// resets to a blank create form with the default color.
func (f *PlacementForm) Prefill(x, y int, item *port.CellWithAd) {
	f.X, f.Y = x, y
	if item != nil && item.Ad != nil {
		f.Mode = ModeEdit
		f.AdID = item.Ad.AdID
		f.OwnerID = item.Ad.UserID
		f.Name = deref(item.Ad.Name)
		f.Title = deref(item.Ad.Title)
		f.Message = deref(item.Ad.Message)
		f.ImageURL = deref(item.Ad.ImageURL)
		f.TargetURL = deref(item.Ad.TargetURL)
		f.Color = item.Ad.Color
		return
	}
	f.Mode = ModeCreate
	f.AdID = ""
	f.OwnerID = ""
	f.Name = ""
	f.Title = ""
	f.Message = ""
	f.ImageURL = ""
	f.TargetURL = ""
	f.Color = ""
}

// CanEdit reports whether the viewer may submit in edit mode. This
// mirrors the server-side ownership check; it does not replace it.
func (f *PlacementForm) CanEdit() bool {
	if f.Mode != ModeEdit {
		return true
	}
	return f.OwnerID == "" || f.OwnerID == f.ViewerID
}

// Submit dispatches the form to the create or update endpoint depending
// on mode. In create mode it returns the new placement; in edit mode the
// placement is nil. Title and target URL are required in both modes.
func (f *PlacementForm) Submit(ctx context.Context, c *Client) (*port.Placement, error) {
	if f.Title == "" || f.TargetURL == "" {
		return nil, errors.New("title and target URL are required")
	}

	if f.Mode == ModeEdit {
		if !f.CanEdit() {
			return nil, port.ErrNotOwner
		}
		patch := port.AdPatch{
			Name:      optional(f.Name),
			Title:     &f.Title,
			Message:   optional(f.Message),
			ImageURL:  optional(f.ImageURL),
			TargetURL: &f.TargetURL,
			Color:     optional(f.Color),
		}
		return nil, c.UpdateAd(ctx, f.AdID, f.ViewerID, patch)
	}

	content := port.AdContent{
		Name:      optional(f.Name),
		Title:     f.Title,
		Message:   optional(f.Message),
		ImageURL:  optional(f.ImageURL),
		TargetURL: f.TargetURL,
		Color:     f.Color,
	}
	return c.PlaceAd(ctx, f.X, f.Y, f.ViewerID, content)
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
