package clock

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestTea_DrainAndFire(t *testing.T) {
	defer goleak.VerifyNone(t, goleak.IgnoreCurrent())

	s := NewTea()
	fired := 0
	s.AfterFunc(time.Millisecond, func() { fired++ })

	cmd := s.Drain()
	require.NotNil(t, cmd)
	assert.Nil(t, s.Drain())

	msg := cmd()
	if batch, ok := msg.(tea.BatchMsg); ok {
		require.Len(t, batch, 1)
		msg = batch[0]()
	}
	firedMsg, ok := msg.(FiredMsg)
	require.True(t, ok)

	assert.True(t, s.Fire(firedMsg))
	assert.False(t, s.Fire(firedMsg))
	assert.Equal(t, 1, fired)
	assert.Zero(t, s.Pending())
}

func TestTea_StoppedTimerIgnored(t *testing.T) {
	s := NewTea()
	fired := false
	timer := s.AfterFunc(time.Hour, func() { fired = true })

	assert.True(t, timer.Stop())
	assert.False(t, s.Fire(FiredMsg{ID: 1}))
	assert.False(t, fired)
}
