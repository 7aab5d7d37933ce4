package gridview

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"adverse/internal/core/domain"
	"adverse/internal/core/port"
)

// CellCache is the client's in-memory view of the grid, keyed by the
// "x_y" cell key. A completed fetch replaces the whole map; responses are
// never merged, so an out-of-order completion simply wins.
type CellCache struct {
	cells map[string]port.CellWithAd
}

// NewCellCache returns an empty cache.
func NewCellCache() *CellCache {
	return &CellCache{cells: make(map[string]port.CellWithAd)}
}

// Replace swaps the cache contents for the given items.
func (c *CellCache) Replace(items []port.CellWithAd) {
	next := make(map[string]port.CellWithAd, len(items))
	for _, item := range items {
		next[item.Cell.CellID] = item
	}
	c.cells = next
}

// At returns the cached entry for a coordinate.
func (c *CellCache) At(x, y int) (port.CellWithAd, bool) {
	item, ok := c.cells[domain.CellKey(x, y)]
	return item, ok
}

// Len returns the number of cached cells.
func (c *CellCache) Len() int {
	return len(c.cells)
}

// Client talks to the grid HTTP endpoints. Methods return the decoded
// response or the server's error message.
type Client struct {
	baseURL string
	hc      *http.Client
}

// NewClient creates a client for the given base URL, e.g.
// "http://localhost:8080".
func NewClient(baseURL string) *Client {
	return &Client{baseURL: baseURL, hc: http.DefaultClient}
}

// FetchRange requests all cells in the inclusive bounds.
func (c *Client) FetchRange(ctx context.Context, b port.Bounds) ([]port.CellWithAd, error) {
	q := url.Values{}
	q.Set("minX", fmt.Sprint(b.MinX))
	q.Set("maxX", fmt.Sprint(b.MaxX))
	q.Set("minY", fmt.Sprint(b.MinY))
	q.Set("maxY", fmt.Sprint(b.MaxY))

	var resp struct {
		Cells []port.CellWithAd `json:"cells"`
	}
	if err := c.do(ctx, http.MethodGet, "/grid?"+q.Encode(), nil, &resp); err != nil {
		return nil, err
	}
	return resp.Cells, nil
}

// FetchCell requests a single cell, nil when the coordinate has no row.
func (c *Client) FetchCell(ctx context.Context, x, y int) (*port.CellWithAd, error) {
	path := fmt.Sprintf("/grid?x=%d&y=%d", x, y)
	var resp struct {
		Cell *domain.Cell          `json:"cell"`
		Ad   *domain.Advertisement `json:"ad"`
	}
	if err := c.do(ctx, http.MethodGet, path, nil, &resp); err != nil {
		return nil, err
	}
	if resp.Cell == nil {
		return nil, nil
	}
	return &port.CellWithAd{Cell: *resp.Cell, Ad: resp.Ad}, nil
}

// adDataPayload is the adData object of placement and update bodies.
type adDataPayload struct {
	Name      *string `json:"name,omitempty"`
	Title     *string `json:"title,omitempty"`
	Message   *string `json:"message,omitempty"`
	ImageURL  *string `json:"imageUrl,omitempty"`
	TargetURL *string `json:"targetUrl,omitempty"`
	Color     *string `json:"color,omitempty"`
}

// PlaceAd claims a cell for a new advertisement.
func (c *Client) PlaceAd(ctx context.Context, x, y int, userID string, ad port.AdContent) (*port.Placement, error) {
	body := map[string]any{
		"x":      x,
		"y":      y,
		"userId": userID,
		"adData": adDataPayload{
			Name:      ad.Name,
			Title:     &ad.Title,
			Message:   ad.Message,
			ImageURL:  ad.ImageURL,
			TargetURL: &ad.TargetURL,
			Color:     optional(ad.Color),
		},
	}
	var resp struct {
		CellID string `json:"cellId"`
		AdID   string `json:"adId"`
	}
	if err := c.do(ctx, http.MethodPost, "/grid", body, &resp); err != nil {
		return nil, err
	}
	return &port.Placement{CellID: resp.CellID, AdID: resp.AdID}, nil
}

// UpdateAd applies a partial edit to an existing advertisement. userID is
// sent only when non-empty.
func (c *Client) UpdateAd(ctx context.Context, adID, userID string, patch port.AdPatch) error {
	body := map[string]any{
		"adId": adID,
		"adData": adDataPayload{
			Name:      patch.Name,
			Title:     patch.Title,
			Message:   patch.Message,
			ImageURL:  patch.ImageURL,
			TargetURL: patch.TargetURL,
			Color:     patch.Color,
		},
	}
	if userID != "" {
		body["userId"] = userID
	}
	return c.do(ctx, http.MethodPut, "/grid/update", body, nil)
}

// Click reports a click on an advertisement and returns the click id.
func (c *Client) Click(ctx context.Context, adID, cellID string) (string, error) {
	var resp struct {
		ClickID string `json:"clickId"`
	}
	err := c.do(ctx, http.MethodPost, "/grid/click", map[string]any{"adId": adID, "cellId": cellID}, &resp)
	return resp.ClickID, err
}

// View reports that an advertisement was shown.
func (c *Client) View(ctx context.Context, adID string) error {
	return c.do(ctx, http.MethodPost, "/grid/view", map[string]any{"adId": adID}, nil)
}

func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var reader io.Reader
	if body != nil {
		buf, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reader = bytes.NewReader(buf)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.hc.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}

	if resp.StatusCode >= 400 {
		var e struct {
			Error string `json:"error"`
		}
		if json.Unmarshal(data, &e) == nil && e.Error != "" {
			return fmt.Errorf("server: %s", e.Error)
		}
		return fmt.Errorf("server: unexpected status %d", resp.StatusCode)
	}

	if out != nil {
		return json.Unmarshal(data, out)
	}
	return nil
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
