package clock

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/renato0307/swipelist/internal/ports"
)

// FiredMsg is delivered to the Bubble Tea program when a timer falls due
type FiredMsg struct {
	ID int
}

// Tea schedules callbacks as Bubble Tea tick commands so they run inside Update,
// on the program's single goroutine.
type Tea struct {
	nextID int
	queued []tea.Cmd
	timers map[int]*teaTimer
}

// Verify interface compliance at compile time
var _ ports.Scheduler = (*Tea)(nil)

type teaTimer struct {
	fn    func()
	id    int
	owner *Tea
}

// NewTea creates a Tea scheduler
func NewTea() *Tea {
	return &Tea{timers: make(map[int]*teaTimer)}
}

// AfterFunc queues a tick command; call Drain to hand it to the program
func (s *Tea) AfterFunc(d time.Duration, fn func()) ports.Timer {
	s.nextID++
	id := s.nextID
	t := &teaTimer{fn: fn, id: id, owner: s}
	s.timers[id] = t
	s.queued = append(s.queued, tea.Tick(d, func(time.Time) tea.Msg {
		return FiredMsg{ID: id}
	}))
	return t
}

// Drain returns the queued tick commands batched, or nil
func (s *Tea) Drain() tea.Cmd {
	if len(s.queued) == 0 {
		return nil
	}
	cmds := s.queued
	s.queued = nil
	return tea.Batch(cmds...)
}

// Fire runs the callback for msg; false if the timer was stopped
func (s *Tea) Fire(msg FiredMsg) bool {
	t, ok := s.timers[msg.ID]
	if !ok {
		return false
	}
	delete(s.timers, msg.ID)
	t.fn()
	return true
}

// Pending returns the number of timers not yet fired or stopped
func (s *Tea) Pending() int {
	return len(s.timers)
}

// Stop cancels the timer; its tick still arrives but is ignored
func (t *teaTimer) Stop() bool {
	if _, ok := t.owner.timers[t.id]; !ok {
		return false
	}
	delete(t.owner.timers, t.id)
	return true
}
