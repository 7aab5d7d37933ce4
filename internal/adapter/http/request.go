package httpadapter

import "adverse/internal/core/port"

// adDataRequest is the ad payload of placement and update requests. All
// fields are pointers so that absence can be distinguished from zero
// values; required-field checks happen before the store is touched.
type adDataRequest struct {
	Name      *string `json:"name"`
	Title     *string `json:"title"`
	Message   *string `json:"message"`
	ImageURL  *string `json:"imageUrl"`
	TargetURL *string `json:"targetUrl"`
	Color     *string `json:"color"`
}

// patch converts the payload into a partial update.
func (d *adDataRequest) patch() port.AdPatch {
	return port.AdPatch{
		Name:      d.Name,
		Title:     d.Title,
		Message:   d.Message,
		ImageURL:  d.ImageURL,
		TargetURL: d.TargetURL,
		Color:     d.Color,
	}
}

// placeAdRequest is the body of POST /grid.
type placeAdRequest struct {
	X      *int           `json:"x"`
	Y      *int           `json:"y"`
	UserID *string        `json:"userId"`
	AdData *adDataRequest `json:"adData"`
}

// updateAdRequest is the body of PUT /grid/update. UserID is optional;
// when present it is checked against the ad's owner.
type updateAdRequest struct {
	AdID   *string        `json:"adId"`
	UserID *string        `json:"userId"`
	AdData *adDataRequest `json:"adData"`
}

// clickAdRequest is the body of POST /grid/click.
type clickAdRequest struct {
	AdID   *string `json:"adId"`
	CellID *string `json:"cellId"`
}

// viewAdRequest is the body of POST /grid/view.
type viewAdRequest struct {
	AdID *string `json:"adId"`
}
