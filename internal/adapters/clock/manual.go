package clock

import (
	"sort"
	"time"

	"github.com/renato0307/swipelist/internal/ports"
)

// Manual is a virtual-time scheduler. Callbacks run only from Advance,
// on the caller's goroutine, in deadline order.
type Manual struct {
	now     time.Duration
	pending []*manualTimer
	seq     int
}

// Verify interface compliance at compile time
var _ ports.Scheduler = (*Manual)(nil)

type manualTimer struct {
	at    time.Duration
	fn    func()
	owner *Manual
	seq   int
}

// NewManual creates a Manual scheduler at virtual time zero
func NewManual() *Manual {
	return &Manual{}
}

// AfterFunc schedules fn to run d after the current virtual time
func (m *Manual) AfterFunc(d time.Duration, fn func()) ports.Timer {
	if d < 0 {
		d = 0
	}
	m.seq++
	t := &manualTimer{at: m.now + d, fn: fn, owner: m, seq: m.seq}
	m.pending = append(m.pending, t)
	return t
}

// Now returns the elapsed virtual time
func (m *Manual) Now() time.Duration {
	return m.now
}

// Pending returns the number of timers not yet fired or stopped
func (m *Manual) Pending() int {
	return len(m.pending)
}

// Advance moves virtual time forward by d, firing every timer that falls due.
// Timers scheduled by fired callbacks run too when they fall inside the window.
func (m *Manual) Advance(d time.Duration) {
	deadline := m.now + d
	for {
		next := m.next()
		if next == nil || next.at > deadline {
			break
		}
		m.remove(next)
		m.now = next.at
		next.fn()
	}
	m.now = deadline
}

// Flush fires timers until none remain
func (m *Manual) Flush() {
	for {
		next := m.next()
		if next == nil {
			return
		}
		m.Advance(next.at - m.now)
	}
}

func (m *Manual) next() *manualTimer {
	if len(m.pending) == 0 {
		return nil
	}
	sort.SliceStable(m.pending, func(i, j int) bool {
		if m.pending[i].at == m.pending[j].at {
			return m.pending[i].seq < m.pending[j].seq
		}
		return m.pending[i].at < m.pending[j].at
	})
	return m.pending[0]
}

func (m *Manual) remove(t *manualTimer) bool {
	for i, p := range m.pending {
		if p == t {
			m.pending = append(m.pending[:i], m.pending[i+1:]...)
			return true
		}
	}
	return false
}

// Stop cancels the timer
func (t *manualTimer) Stop() bool {
	return t.owner.remove(t)
}
