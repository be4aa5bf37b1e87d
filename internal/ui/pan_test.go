package ui

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/renato0307/swipelist/internal/domain"
)

// steppingClock advances by step on every call
func steppingClock(step time.Duration) func() time.Time {
	at := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	return func() time.Time {
		at = at.Add(step)
		return at
	}
}

func mouse(action tea.MouseAction, x, y int) tea.MouseMsg {
	return tea.MouseMsg{X: x, Y: y, Action: action, Button: tea.MouseButtonLeft}
}

func anyRow(int) int { return 0 }

func TestPanRecognizer_DragEmitsStartMoveEnd(t *testing.T) {
	r := NewPanRecognizer(steppingClock(10 * time.Millisecond))

	assert.Empty(t, r.HandleMouseEvent(mouse(tea.MouseActionPress, 40, 3), anyRow))

	events := r.HandleMouseEvent(mouse(tea.MouseActionMotion, 35, 3), anyRow)
	require.Len(t, events, 2)
	assert.Equal(t, domain.PanStart, events[0].sample.Phase)
	assert.Equal(t, 0.0, events[0].sample.DeltaX)
	assert.Equal(t, domain.PanMove, events[1].sample.Phase)
	assert.Equal(t, -40.0, events[1].sample.DeltaX)
	assert.Equal(t, domain.PointerMouse, events[1].sample.Pointer)
	assert.True(t, r.IsPanning())

	events = r.HandleMouseEvent(mouse(tea.MouseActionMotion, 30, 4), anyRow)
	require.Len(t, events, 1)
	assert.Equal(t, -80.0, events[0].sample.DeltaX)
	assert.Equal(t, 16.0, events[0].sample.DeltaY)

	events = r.HandleMouseEvent(mouse(tea.MouseActionRelease, 30, 4), anyRow)
	require.Len(t, events, 1)
	assert.Equal(t, domain.PanEnd, events[0].sample.Phase)
	// 5 cells of 8 units in 10ms
	assert.InDelta(t, -4.0, events[0].sample.VelocityX, 0.001)
	assert.False(t, r.IsPanning())
}

func TestPanRecognizer_PressReleaseIsTap(t *testing.T) {
	r := NewPanRecognizer(steppingClock(time.Millisecond))

	r.HandleMouseEvent(mouse(tea.MouseActionPress, 12, 5), func(y int) int { return y - 2 })
	events := r.HandleMouseEvent(mouse(tea.MouseActionRelease, 12, 5), anyRow)

	require.Len(t, events, 1)
	assert.Equal(t, panEventTap, events[0].kind)
	assert.Equal(t, 3, events[0].row)
	assert.Equal(t, 12, events[0].x)
}

func TestPanRecognizer_IgnoresMotionOutsideRows(t *testing.T) {
	r := NewPanRecognizer(steppingClock(time.Millisecond))

	assert.Empty(t, r.HandleMouseEvent(mouse(tea.MouseActionMotion, 10, 1), anyRow))

	r.HandleMouseEvent(mouse(tea.MouseActionPress, 10, 0), func(int) int { return -1 })
	assert.Empty(t, r.HandleMouseEvent(mouse(tea.MouseActionMotion, 20, 0), anyRow))
	assert.False(t, r.IsPanning())
}

func TestPanRecognizer_Cancel(t *testing.T) {
	r := NewPanRecognizer(steppingClock(time.Millisecond))

	_, ok := r.Cancel()
	assert.False(t, ok)

	r.HandleMouseEvent(mouse(tea.MouseActionPress, 10, 2), anyRow)
	r.HandleMouseEvent(mouse(tea.MouseActionMotion, 14, 2), anyRow)

	ev, ok := r.Cancel()
	require.True(t, ok)
	assert.Equal(t, domain.PanCancel, ev.sample.Phase)
	assert.Equal(t, 32.0, ev.sample.DeltaX)
	assert.False(t, r.IsPanning())
}

func TestKeyboardPan(t *testing.T) {
	samples := keyboardPan(domain.DirectionLeft, 200)

	require.Len(t, samples, 4)
	assert.Equal(t, domain.PanStart, samples[0].Phase)
	assert.Equal(t, -100.0, samples[1].DeltaX)
	assert.Equal(t, -200.0, samples[3].DeltaX)
	assert.Equal(t, domain.PanEnd, samples[3].Phase)
	for _, s := range samples {
		assert.Equal(t, domain.PointerKeyboard, s.Pointer)
	}
}
