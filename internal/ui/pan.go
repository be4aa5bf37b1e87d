package ui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/renato0307/swipelist/internal/adapters/view"
	"github.com/renato0307/swipelist/internal/domain"
)

// PanState represents the current state of a mouse pan
type PanState int

const (
	PanStateIdle PanState = iota
	PanStatePressed
	PanStatePanning
)

// panEventKind tells what a mouse event turned into
type panEventKind int

const (
	panEventNone panEventKind = iota
	panEventSample
	panEventTap
)

// panEvent is the outcome of one mouse event
type panEvent struct {
	kind   panEventKind
	row    int
	sample domain.PanSample
	x      int
	y      int
}

// PanRecognizer turns terminal mouse presses, motions and releases into pan samples.
// A press followed by a release without horizontal travel is a tap.
type PanRecognizer struct {
	lastAt   time.Time
	lastX    int
	now      func() time.Time
	row      int
	startX   int
	startY   int
	state    PanState
	velocity float64
}

// NewPanRecognizer creates a new pan recognizer
func NewPanRecognizer(now func() time.Time) *PanRecognizer {
	if now == nil {
		now = time.Now
	}
	return &PanRecognizer{
		now:   now,
		row:   -1,
		state: PanStateIdle,
	}
}

// HandleMouseEvent processes a mouse event; rowAt maps a screen line to a row index or -1
func (r *PanRecognizer) HandleMouseEvent(msg tea.MouseMsg, rowAt func(y int) int) []panEvent {
	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button == tea.MouseButtonLeft {
			r.press(msg.X, msg.Y, rowAt(msg.Y))
		}

	case tea.MouseActionMotion:
		switch r.state {
		case PanStatePressed:
			if msg.X == r.startX || r.row < 0 {
				return nil
			}
			r.state = PanStatePanning
			r.track(msg.X)
			return []panEvent{
				{kind: panEventSample, row: r.row, sample: r.sample(domain.PanStart, r.startX, r.startY)},
				{kind: panEventSample, row: r.row, sample: r.sample(domain.PanMove, msg.X, msg.Y)},
			}
		case PanStatePanning:
			r.track(msg.X)
			return []panEvent{{kind: panEventSample, row: r.row, sample: r.sample(domain.PanMove, msg.X, msg.Y)}}
		}

	case tea.MouseActionRelease:
		switch r.state {
		case PanStatePressed:
			ev := panEvent{kind: panEventTap, row: r.row, x: r.startX, y: r.startY}
			r.reset()
			return []panEvent{ev}
		case PanStatePanning:
			ev := panEvent{kind: panEventSample, row: r.row, sample: r.sample(domain.PanEnd, msg.X, msg.Y)}
			r.reset()
			return []panEvent{ev}
		}
	}
	return nil
}

// IsPanning returns true if currently in a pan
func (r *PanRecognizer) IsPanning() bool {
	return r.state == PanStatePanning
}

// Cancel aborts the current pan, returning the cancel sample when one was running
func (r *PanRecognizer) Cancel() (panEvent, bool) {
	if r.state != PanStatePanning {
		r.reset()
		return panEvent{}, false
	}
	ev := panEvent{kind: panEventSample, row: r.row, sample: r.sample(domain.PanCancel, r.lastX, r.startY)}
	r.reset()
	return ev, true
}

func (r *PanRecognizer) press(x, y, row int) {
	r.state = PanStatePressed
	r.row = row
	r.startX = x
	r.startY = y
	r.lastX = x
	r.lastAt = r.now()
	r.velocity = 0
}

// track updates the horizontal velocity in element units per millisecond
func (r *PanRecognizer) track(x int) {
	at := r.now()
	if elapsed := at.Sub(r.lastAt); elapsed > 0 {
		ms := float64(elapsed) / float64(time.Millisecond)
		r.velocity = float64(x-r.lastX) * view.CellWidth / ms
	}
	r.lastX = x
	r.lastAt = at
}

func (r *PanRecognizer) sample(phase domain.PanPhase, x, y int) domain.PanSample {
	s := domain.PanSample{
		DeltaX:  float64(x-r.startX) * view.CellWidth,
		DeltaY:  float64(y-r.startY) * view.CellHeight,
		Phase:   phase,
		Pointer: domain.PointerMouse,
	}
	if phase == domain.PanEnd {
		s.VelocityX = r.velocity
	}
	return s
}

func (r *PanRecognizer) reset() {
	r.state = PanStateIdle
	r.row = -1
	r.startX = 0
	r.startY = 0
	r.lastX = 0
	r.velocity = 0
}

// keyboardPan synthesizes a complete swipe of travel element units towards d
func keyboardPan(d domain.Direction, travel float64) []domain.PanSample {
	dx := d.Sign() * travel
	return []domain.PanSample{
		{Phase: domain.PanStart, Pointer: domain.PointerKeyboard},
		{Phase: domain.PanMove, DeltaX: dx / 2, Pointer: domain.PointerKeyboard},
		{Phase: domain.PanMove, DeltaX: dx, Pointer: domain.PointerKeyboard},
		{Phase: domain.PanEnd, DeltaX: dx, Pointer: domain.PointerKeyboard},
	}
}
