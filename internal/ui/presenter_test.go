package ui

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/renato0307/swipelist/internal/adapters/clock"
	"github.com/renato0307/swipelist/internal/adapters/view"
	"github.com/renato0307/swipelist/internal/domain"
)

func TestRowPresenter_AnimatedMoveEndsTransition(t *testing.T) {
	scheduler := clock.NewManual()
	fg := view.NewNode("fg", domain.Rect{X: 0, Y: 32, Width: 400, Height: 16})
	p := newRowPresenter(fg, scheduler)

	var ended int
	unsubscribe := p.OnTransitionEnd(func() { ended++ })

	p.SetFlag(domain.FlagAnimating, true)
	p.SetForeground(-80, 0.5)

	assert.Equal(t, -80.0, fg.Bounds().X)
	assert.Equal(t, 400.0, fg.Bounds().Width)
	assert.Equal(t, 1, scheduler.Pending())

	scheduler.Advance(TransitionDuration - 1)
	assert.Equal(t, 0, ended)
	scheduler.Advance(1)
	assert.Equal(t, 1, ended)

	unsubscribe()
	p.SetForeground(0, 1)
	scheduler.Flush()
	assert.Equal(t, 1, ended)
}

func TestRowPresenter_DragDoesNotStartTransition(t *testing.T) {
	scheduler := clock.NewManual()
	fg := view.NewNode("fg", domain.Rect{Width: 400, Height: 16})
	p := newRowPresenter(fg, scheduler)

	p.SetFlag(domain.FlagAnimating, false)
	p.SetForeground(40, 1)
	assert.Equal(t, 0, scheduler.Pending())

	// Same offset while animating is not a move
	p.SetFlag(domain.FlagAnimating, true)
	p.SetForeground(40, 1)
	assert.Equal(t, 0, scheduler.Pending())
}

func TestRowPresenter_RestartedTransitionFiresOnce(t *testing.T) {
	scheduler := clock.NewManual()
	p := newRowPresenter(view.NewNode("fg", domain.Rect{Width: 400, Height: 16}), scheduler)

	var ended int
	p.OnTransitionEnd(func() { ended++ })
	p.SetFlag(domain.FlagAnimating, true)
	p.SetForeground(-400, 1)
	p.SetForeground(0, 1)

	scheduler.Flush()
	assert.Equal(t, 1, ended)
}

func TestRowPresenter_PaneFlagsHideNodes(t *testing.T) {
	p := newRowPresenter(nil, clock.NewManual())
	pane := view.NewNode("bg-left", domain.Rect{Width: 400, Height: 16})

	p.SetPaneFlag(pane, domain.PaneHidden, true)
	assert.False(t, p.paneVisible(pane))
	assert.True(t, p.paneFlag("bg-left", domain.PaneHidden))

	p.SetPaneFlag(pane, domain.PaneHidden, false)
	assert.True(t, p.paneVisible(pane))
	assert.False(t, p.paneVisible(nil))
}

func TestRowPresenter_Collapsed(t *testing.T) {
	p := newRowPresenter(nil, clock.NewManual())
	require.False(t, p.collapsed())

	p.SetHeight(16)
	assert.False(t, p.collapsed())
	p.SetHeight(0)
	assert.True(t, p.collapsed())

	p.SetHeight(16)
	p.SetFlag(domain.FlagHiddenCollapsed, true)
	assert.True(t, p.collapsed())
}
