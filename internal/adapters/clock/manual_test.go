package clock

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestManual_FiresInDeadlineOrder(t *testing.T) {
	m := NewManual()
	var order []string

	m.AfterFunc(300*time.Millisecond, func() { order = append(order, "c") })
	m.AfterFunc(100*time.Millisecond, func() { order = append(order, "a") })
	m.AfterFunc(100*time.Millisecond, func() { order = append(order, "b") })

	m.Advance(99 * time.Millisecond)
	assert.Empty(t, order)

	m.Advance(time.Millisecond)
	assert.Equal(t, []string{"a", "b"}, order)

	m.Advance(time.Second)
	assert.Equal(t, []string{"a", "b", "c"}, order)
	assert.Equal(t, 1100*time.Millisecond, m.Now())
}

func TestManual_NestedTimersRelativeToFiringTime(t *testing.T) {
	m := NewManual()
	var firedAt []time.Duration

	m.AfterFunc(200*time.Millisecond, func() {
		firedAt = append(firedAt, m.Now())
		m.AfterFunc(400*time.Millisecond, func() {
			firedAt = append(firedAt, m.Now())
		})
	})

	m.Advance(time.Second)

	assert.Equal(t, []time.Duration{200 * time.Millisecond, 600 * time.Millisecond}, firedAt)
}

func TestManual_ZeroDelayIsDeferred(t *testing.T) {
	m := NewManual()
	fired := false

	m.AfterFunc(0, func() { fired = true })

	assert.False(t, fired)
	assert.Equal(t, 1, m.Pending())
	m.Advance(0)
	assert.True(t, fired)
}

func TestManual_Stop(t *testing.T) {
	m := NewManual()
	fired := false

	timer := m.AfterFunc(time.Millisecond, func() { fired = true })

	assert.True(t, timer.Stop())
	assert.False(t, timer.Stop())
	m.Flush()
	assert.False(t, fired)
	assert.Zero(t, m.Pending())
}
