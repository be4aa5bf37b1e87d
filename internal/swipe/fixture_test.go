package swipe

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/renato0307/swipelist/internal/adapters/clock"
	"github.com/renato0307/swipelist/internal/adapters/view"
	"github.com/renato0307/swipelist/internal/domain"
	"github.com/renato0307/swipelist/internal/ports"
)

const rowWidth = 300.0

type swipeCall struct {
	direction domain.Direction
	item      ports.Element
	at        time.Duration
}

// harness wires a controller to an in-memory row:
//
//	page (boundary)
//	└── row 300x64
//	    ├── bg-left   [archive @80..150] [delete @150..220]
//	    ├── bg-right  [flag @0..90]
//	    ├── after-left, after-right
//	    └── fg
type harness struct {
	calls     []swipeCall
	ctrl      *Controller
	page      *view.Node
	presenter *view.Recorder
	row       *view.Node
	scheduler *clock.Manual
	source    *view.Source
}

func rowTree() (*view.Node, *view.Node) {
	page := view.NewNode("page", domain.Rect{X: 0, Y: 0, Width: 300, Height: 600})
	row := view.NewNode("row", domain.Rect{X: 0, Y: 100, Width: rowWidth, Height: 64})
	bgLeft := view.NewNode("bg-left", domain.Rect{X: 0, Y: 100, Width: rowWidth, Height: 64}).Append(
		view.NewNode("archive", domain.Rect{X: 80, Y: 100, Width: 70, Height: 64}, "mx-button"),
		view.NewNode("delete", domain.Rect{X: 150, Y: 100, Width: 70, Height: 64}, "mx-button").Append(
			view.NewNode("delete-icon", domain.Rect{X: 170, Y: 110, Width: 10, Height: 10}),
		),
	)
	bgRight := view.NewNode("bg-right", domain.Rect{X: 0, Y: 100, Width: rowWidth, Height: 64}).Append(
		view.NewNode("flag", domain.Rect{X: 0, Y: 100, Width: 90, Height: 64}, "clickable"),
	)
	row.Append(
		bgLeft,
		bgRight,
		view.NewNode("after-left", domain.Rect{X: 0, Y: 100, Width: rowWidth, Height: 64}),
		view.NewNode("after-right", domain.Rect{X: 0, Y: 100, Width: rowWidth, Height: 64}),
		view.NewNode("fg", domain.Rect{X: 0, Y: 100, Width: rowWidth, Height: 64}).Append(
			view.NewNode("title", domain.Rect{X: 10, Y: 110, Width: 100, Height: 16}),
		),
	)
	page.Append(row)
	return page, row
}

func defaultOptions() Options {
	return Options{
		Axis:       domain.AxisHorizontal,
		Foreground: "fg",
		Left: DirectionOptions{
			Action:          domain.PostSwipeReset,
			AfterBackground: "after-left",
			Background:      "bg-left",
		},
		Right: DirectionOptions{
			Action:          domain.PostSwipeReset,
			AfterBackground: "after-right",
			Background:      "bg-right",
		},
	}
}

func newHarness(t *testing.T, mutate func(*Options)) *harness {
	t.Helper()

	page, row := rowTree()
	h := &harness{
		page:      page,
		presenter: view.NewRecorder(),
		row:       row,
		scheduler: clock.NewManual(),
		source:    view.NewSource(),
	}

	opts := defaultOptions()
	opts.Boundary = page
	opts.Callback = func(item ports.Element, d domain.Direction) {
		h.calls = append(h.calls, swipeCall{direction: d, item: item, at: h.scheduler.Now()})
	}
	if mutate != nil {
		mutate(&opts)
	}

	cfg, err := NewConfiguration(opts)
	require.NoError(t, err)

	ctrl, err := Attach(row, cfg, Deps{
		Presenter: h.presenter,
		Scheduler: h.scheduler,
		Source:    h.source,
	})
	require.NoError(t, err)
	h.ctrl = ctrl
	return h
}

func (h *harness) pan(phase domain.PanPhase, dx, dy, vx float64) {
	h.source.Emit(domain.PanSample{
		DeltaX:    dx,
		DeltaY:    dy,
		Phase:     phase,
		Pointer:   domain.PointerTouch,
		VelocityX: vx,
	})
}

// drag performs a full touch gesture from 0 to dx and releases with velocity vx
func (h *harness) drag(dx, vx float64) {
	h.pan(domain.PanStart, 0, 0, 0)
	h.pan(domain.PanMove, dx/2, 0, 0)
	h.pan(domain.PanMove, dx, 0, 0)
	h.pan(domain.PanEnd, dx, 0, vx)
}

func (h *harness) phase() Phase {
	return h.ctrl.Session().Phase
}
