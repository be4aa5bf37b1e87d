package ui

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/renato0307/swipelist/internal/adapters/clock"
	"github.com/renato0307/swipelist/internal/adapters/view"
	"github.com/renato0307/swipelist/internal/config"
	"github.com/renato0307/swipelist/internal/domain"
	"github.com/renato0307/swipelist/internal/ports"
	"github.com/renato0307/swipelist/internal/services"
	"github.com/renato0307/swipelist/internal/swipe"
)

func TestItemRow_ImmediateHideStaysCollapsedAfterSlideOut(t *testing.T) {
	settings := config.DefaultSwipeSettings()
	require.Equal(t, domain.PostSwipeHide, settings.Left.AfterSwipe)
	require.Zero(t, settings.Left.Delay)

	scheduler := clock.NewManual()
	page := view.NewNode(pageName, domain.Rect{Width: 400, Height: 600})
	row := newItemRow(domain.Item{ID: "a", Title: "Buy milk"}, settings, headerLines, 50)
	page.Append(row.node)

	var swiped []domain.Direction
	opts, err := services.BuildSwipeOptions(settings, page, func(_ ports.Element, d domain.Direction) {
		swiped = append(swiped, d)
	})
	require.NoError(t, err)
	cfg, err := swipe.NewConfiguration(opts)
	require.NoError(t, err)
	require.NoError(t, row.attach(cfg, scheduler))

	for _, sample := range []domain.PanSample{
		{Phase: domain.PanStart, Pointer: domain.PointerTouch},
		{Phase: domain.PanMove, DeltaX: -150, Pointer: domain.PointerTouch},
		{Phase: domain.PanMove, DeltaX: -300, Pointer: domain.PointerTouch},
		{Phase: domain.PanEnd, DeltaX: -300, Pointer: domain.PointerTouch},
	} {
		row.source.Emit(sample)
	}
	require.Equal(t, swipe.PhaseSwipedOut, row.phase())

	scheduler.Advance(0)
	require.NotNil(t, row.presenter.height)
	assert.Equal(t, 0.0, *row.presenter.height)
	assert.True(t, row.collapsed())

	// the slide out ends while the row is already collapsing
	scheduler.Advance(TransitionDuration)
	assert.Equal(t, 0.0, *row.presenter.height)
	assert.True(t, row.collapsed())
	assert.Empty(t, swiped)

	scheduler.Advance(swipe.RemoveItemDelay - TransitionDuration)
	assert.True(t, row.presenter.flag(domain.FlagHiddenCollapsed))
	assert.Equal(t, []domain.Direction{domain.DirectionLeft}, swiped)
	assert.Equal(t, 0.0, *row.presenter.height)
}
