package view

import (
	"fmt"
	"strconv"

	"github.com/renato0307/swipelist/internal/domain"
	"github.com/renato0307/swipelist/internal/ports"
)

// Recorder is a headless presenter that keeps the current visual state
// and a log of every change applied to it.
type Recorder struct {
	Height     *float64
	Offset     float64
	Opacity    float64
	flags      map[domain.VisualFlag]bool
	log        []string
	nextID     int
	paneFlags  map[ports.Element]map[domain.PaneFlag]bool
	transition map[int]func()
}

// Verify interface compliance at compile time
var _ ports.Presenter = (*Recorder)(nil)

// NewRecorder creates a Recorder with the foreground at rest
func NewRecorder() *Recorder {
	return &Recorder{
		Opacity:    1,
		flags:      make(map[domain.VisualFlag]bool),
		paneFlags:  make(map[ports.Element]map[domain.PaneFlag]bool),
		transition: make(map[int]func()),
	}
}

// SetFlag implements ports.Presenter
func (r *Recorder) SetFlag(flag domain.VisualFlag, on bool) {
	if r.flags[flag] == on {
		return
	}
	r.flags[flag] = on
	r.record("flag %s=%t", flag, on)
}

// Flag reports whether a container flag is set
func (r *Recorder) Flag(flag domain.VisualFlag) bool {
	return r.flags[flag]
}

// SetPaneFlag implements ports.Presenter
func (r *Recorder) SetPaneFlag(pane ports.Element, flag domain.PaneFlag, on bool) {
	flags, ok := r.paneFlags[pane]
	if !ok {
		flags = make(map[domain.PaneFlag]bool)
		r.paneFlags[pane] = flags
	}
	if flags[flag] == on {
		return
	}
	flags[flag] = on
	r.record("pane %s %s=%t", pane.Name(), flag, on)
}

// PaneFlag reports whether a pane flag is set
func (r *Recorder) PaneFlag(pane ports.Element, flag domain.PaneFlag) bool {
	return r.paneFlags[pane][flag]
}

// SetForeground implements ports.Presenter
func (r *Recorder) SetForeground(offset, opacity float64) {
	if r.Offset == offset && r.Opacity == opacity {
		return
	}
	r.Offset = offset
	r.Opacity = opacity
	r.record("foreground offset=%s opacity=%s", formatFloat(offset), formatFloat(opacity))
}

// SetHeight implements ports.Presenter
func (r *Recorder) SetHeight(height float64) {
	h := height
	r.Height = &h
	r.record("height %s", formatFloat(height))
}

// OnTransitionEnd implements ports.Presenter
func (r *Recorder) OnTransitionEnd(fn func()) func() {
	r.nextID++
	id := r.nextID
	r.transition[id] = fn
	return func() { delete(r.transition, id) }
}

// EndTransition fires the transition end listeners in subscription order
func (r *Recorder) EndTransition() {
	for id := 1; id <= r.nextID; id++ {
		if fn, ok := r.transition[id]; ok {
			fn()
		}
	}
}

// TransitionListeners returns the number of transition end subscribers
func (r *Recorder) TransitionListeners() int {
	return len(r.transition)
}

// Log returns the recorded changes
func (r *Recorder) Log() []string {
	return append([]string(nil), r.log...)
}

// ResetLog clears the recorded changes, keeping the state
func (r *Recorder) ResetLog() {
	r.log = nil
}

func (r *Recorder) record(format string, args ...any) {
	r.log = append(r.log, fmt.Sprintf(format, args...))
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
