package ui

import (
	"time"

	"github.com/renato0307/swipelist/internal/adapters/view"
	"github.com/renato0307/swipelist/internal/domain"
	"github.com/renato0307/swipelist/internal/ports"
)

// TransitionDuration is how long an animated foreground move takes on screen
const TransitionDuration = 200 * time.Millisecond

// rowPresenter applies the visual state of one swipeable row to the terminal view tree.
// Animated foreground moves end with a transition end notification after TransitionDuration.
type rowPresenter struct {
	flags      map[domain.VisualFlag]bool
	foreground *view.Node
	height     *float64
	listeners  map[int]func()
	nextID     int
	offset     float64
	opacity    float64
	paneFlags  map[string]map[domain.PaneFlag]bool
	rest       domain.Rect
	scheduler  ports.Scheduler
	transition ports.Timer
}

// Verify interface compliance at compile time
var _ ports.Presenter = (*rowPresenter)(nil)

func newRowPresenter(foreground *view.Node, scheduler ports.Scheduler) *rowPresenter {
	p := &rowPresenter{
		flags:      make(map[domain.VisualFlag]bool),
		foreground: foreground,
		listeners:  make(map[int]func()),
		opacity:    1,
		paneFlags:  make(map[string]map[domain.PaneFlag]bool),
		scheduler:  scheduler,
	}
	if foreground != nil {
		p.rest = foreground.Bounds()
	}
	return p
}

// SetFlag implements ports.Presenter
func (p *rowPresenter) SetFlag(flag domain.VisualFlag, on bool) {
	p.flags[flag] = on
}

// SetPaneFlag implements ports.Presenter
func (p *rowPresenter) SetPaneFlag(pane ports.Element, flag domain.PaneFlag, on bool) {
	flags, ok := p.paneFlags[pane.Name()]
	if !ok {
		flags = make(map[domain.PaneFlag]bool)
		p.paneFlags[pane.Name()] = flags
	}
	flags[flag] = on

	if node, ok := pane.(*view.Node); ok {
		node.SetClass(string(flag), on)
	}
}

// SetForeground implements ports.Presenter
func (p *rowPresenter) SetForeground(offset, opacity float64) {
	moved := offset != p.offset
	p.offset = offset
	p.opacity = opacity

	if p.foreground != nil {
		bounds := p.rest
		bounds.X += offset
		p.foreground.SetBounds(bounds)
	}

	if moved && p.flags[domain.FlagAnimating] {
		p.startTransition()
	}
}

// SetHeight implements ports.Presenter
func (p *rowPresenter) SetHeight(height float64) {
	h := height
	p.height = &h
}

// OnTransitionEnd implements ports.Presenter
func (p *rowPresenter) OnTransitionEnd(fn func()) func() {
	p.nextID++
	id := p.nextID
	p.listeners[id] = fn
	return func() { delete(p.listeners, id) }
}

func (p *rowPresenter) startTransition() {
	if p.scheduler == nil {
		return
	}
	if p.transition != nil {
		p.transition.Stop()
	}
	p.transition = p.scheduler.AfterFunc(TransitionDuration, p.endTransition)
}

func (p *rowPresenter) endTransition() {
	p.transition = nil
	for id := 1; id <= p.nextID; id++ {
		if fn, ok := p.listeners[id]; ok {
			fn()
		}
	}
}

// stop cancels a running transition
func (p *rowPresenter) stop() {
	if p.transition != nil {
		p.transition.Stop()
		p.transition = nil
	}
}

func (p *rowPresenter) flag(flag domain.VisualFlag) bool {
	return p.flags[flag]
}

// paneVisible reports whether a pane is shown; panes start visible unless marked hidden
func (p *rowPresenter) paneVisible(node *view.Node) bool {
	if node == nil {
		return false
	}
	return node.Visible()
}

// collapsed reports whether the row no longer takes vertical space
func (p *rowPresenter) collapsed() bool {
	if p.flags[domain.FlagHiddenCollapsed] {
		return true
	}
	return p.height != nil && *p.height == 0
}

func (p *rowPresenter) paneFlag(name string, flag domain.PaneFlag) bool {
	return p.paneFlags[name][flag]
}
