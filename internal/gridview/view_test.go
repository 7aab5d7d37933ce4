package gridview

import (
	"context"
	"io"
	"log/slog"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	httpadapter "adverse/internal/adapter/http"
	"adverse/internal/adapter/memory"
	"adverse/internal/adapter/usecase"
	"adverse/internal/core/port"
)

func newTestView(t *testing.T) (*GridView, *usecase.GridUseCase) {
	t.Helper()
	repo := memory.NewGridRepository()
	svc := usecase.NewGridUseCase(repo, 1000, 10)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	srv := httptest.NewServer(httpadapter.NewHandler(svc, logger).Router())
	t.Cleanup(srv.Close)
	return NewGridView(NewClient(srv.URL), 1000, 800, 600, 20), svc
}

func TestRefreshFillsCache(t *testing.T) {
	view, svc := newTestView(t)
	ctx := context.Background()

	_, err := svc.PlaceAd(ctx, 2, 3, "u1", port.AdContent{Title: "T", TargetURL: "https://e.com"})
	require.NoError(t, err)
	// outside the fetch window at offset (0,0)
	_, err = svc.PlaceAd(ctx, 500, 500, "u1", port.AdContent{Title: "far", TargetURL: "https://e.com"})
	require.NoError(t, err)

	require.NoError(t, view.Refresh(ctx))
	require.Equal(t, 1, view.Cache.Len())

	item, ok := view.Cache.At(2, 3)
	require.True(t, ok)
	require.NotNil(t, item.Ad)
	require.Equal(t, "T", *item.Ad.Title)

	// a later fetch replaces the cache wholesale
	view.Viewport.OffsetX = -(490 * view.Viewport.CellSize)
	view.Viewport.OffsetY = -(490 * view.Viewport.CellSize)
	require.NoError(t, view.Refresh(ctx))
	_, ok = view.Cache.At(2, 3)
	require.False(t, ok)
	_, ok = view.Cache.At(500, 500)
	require.True(t, ok)
}

func TestHandleClickReportsAndSelects(t *testing.T) {
	view, svc := newTestView(t)
	ctx := context.Background()

	result, err := svc.PlaceAd(ctx, 1, 1, "u1", port.AdContent{Title: "T", TargetURL: "https://e.com"})
	require.NoError(t, err)
	require.NoError(t, view.Refresh(ctx))

	px, py := view.Viewport.GridToPixel(1, 1)
	target, err := view.HandleClick(ctx, px+1, py+1)
	require.NoError(t, err)
	require.Equal(t, "https://e.com", target)
	require.Equal(t, &Coord{X: 1, Y: 1}, view.Selected)

	ad, err := svc.Ad(ctx, result.AdID)
	require.NoError(t, err)
	require.EqualValues(t, 1, ad.ClickCount)

	// clicking an empty cell selects it but reports nothing
	target, err = view.HandleClick(ctx, px+view.Viewport.CellSize*3, py)
	require.NoError(t, err)
	require.Empty(t, target)
	require.Equal(t, &Coord{X: 4, Y: 1}, view.Selected)
}

func TestHandleHover(t *testing.T) {
	view, svc := newTestView(t)
	ctx := context.Background()

	_, err := svc.PlaceAd(ctx, 2, 2, "u1", port.AdContent{Title: "T", TargetURL: "https://e.com"})
	require.NoError(t, err)
	require.NoError(t, view.Refresh(ctx))

	px, py := view.Viewport.GridToPixel(2, 2)
	view.HandleHover(px+1, py+1)
	require.NotNil(t, view.Hovered)
	require.Equal(t, "T", *view.Hovered.Ad.Title)

	view.HandleHover(px+view.Viewport.CellSize*5, py)
	require.Nil(t, view.Hovered)
}

func TestFormCreateAndEdit(t *testing.T) {
	view, svc := newTestView(t)
	ctx := context.Background()

	// right-click on an empty cell opens a blank create form
	px, py := view.Viewport.GridToPixel(6, 6)
	x, y, item, ok := view.HandleRightClick(px+1, py+1)
	require.True(t, ok)
	require.Nil(t, item)

	form := &PlacementForm{ViewerID: "me"}
	form.Prefill(x, y, item)
	require.Equal(t, ModeCreate, form.Mode)

	// required fields are checked before any request
	_, err := form.Submit(ctx, view.Client)
	require.Error(t, err)

	form.Title = "Created"
	form.TargetURL = "https://e.com"
	placement, err := form.Submit(ctx, view.Client)
	require.NoError(t, err)
	require.Equal(t, "6_6", placement.CellID)

	// right-click on the populated cell pre-fills an edit form
	require.NoError(t, view.Refresh(ctx))
	x, y, item, ok = view.HandleRightClick(px+1, py+1)
	require.True(t, ok)
	require.NotNil(t, item)

	form.Prefill(x, y, item)
	require.Equal(t, ModeEdit, form.Mode)
	require.Equal(t, placement.AdID, form.AdID)
	require.Equal(t, "Created", form.Title)
	require.True(t, form.CanEdit())

	form.Title = "Edited"
	_, err = form.Submit(ctx, view.Client)
	require.NoError(t, err)

	ad, err := svc.Ad(ctx, placement.AdID)
	require.NoError(t, err)
	require.Equal(t, "Edited", *ad.Title)
	require.Equal(t, "https://e.com", *ad.TargetURL)
}

func TestFormOwnershipGate(t *testing.T) {
	view, svc := newTestView(t)
	ctx := context.Background()

	_, err := svc.PlaceAd(ctx, 3, 3, "owner", port.AdContent{Title: "T", TargetURL: "https://e.com"})
	require.NoError(t, err)
	require.NoError(t, view.Refresh(ctx))

	px, py := view.Viewport.GridToPixel(3, 3)
	x, y, item, ok := view.HandleRightClick(px+1, py+1)
	require.True(t, ok)

	form := &PlacementForm{ViewerID: "someone-else"}
	form.Prefill(x, y, item)
	require.Equal(t, ModeEdit, form.Mode)
	require.False(t, form.CanEdit())

	form.Title = "hijack"
	form.TargetURL = "https://evil.com"
	_, err = form.Submit(ctx, view.Client)
	require.ErrorIs(t, err, port.ErrNotOwner)
}
