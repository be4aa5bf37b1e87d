package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/renato0307/swipelist/internal/domain"
	"github.com/renato0307/swipelist/internal/ports"
	"github.com/renato0307/swipelist/internal/swipe"
)

func TestDeriveAxis(t *testing.T) {
	tests := []struct {
		name    string
		left    domain.SwipeAction
		right   domain.SwipeAction
		want    domain.Axis
		wantErr bool
	}{
		{name: "both enabled", left: domain.SwipeActionArchive, right: domain.SwipeActionFlag, want: domain.AxisHorizontal},
		{name: "only right", left: domain.SwipeActionDisabled, right: domain.SwipeActionFlag, want: domain.AxisRight},
		{name: "only left", left: domain.SwipeActionDelete, right: "", want: domain.AxisLeft},
		{name: "none", left: domain.SwipeActionDisabled, right: domain.SwipeActionDisabled, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			axis, err := DeriveAxis(SwipeSettings{
				Left:  DirectionSettings{OnSwipe: tt.left},
				Right: DirectionSettings{OnSwipe: tt.right},
			})
			if tt.wantErr {
				assert.True(t, domain.IsConfigError(err))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, axis)
		})
	}
}

func TestValidateSwipeSettings(t *testing.T) {
	t.Run("button without background", func(t *testing.T) {
		err := ValidateSwipeSettings(SwipeSettings{
			Left: DirectionSettings{OnSwipe: domain.SwipeActionDelete, AfterSwipe: domain.PostSwipeButton},
		})
		require.Error(t, err)
		assert.True(t, domain.IsConfigError(err))
		assert.Contains(t, err.Error(), "Swipe container left")
	})

	t.Run("button on a disabled direction is ignored", func(t *testing.T) {
		err := ValidateSwipeSettings(SwipeSettings{
			Left:  DirectionSettings{OnSwipe: domain.SwipeActionDisabled, AfterSwipe: domain.PostSwipeButton},
			Right: DirectionSettings{OnSwipe: domain.SwipeActionFlag},
		})
		assert.NoError(t, err)
	})

	t.Run("unknown on swipe action", func(t *testing.T) {
		err := ValidateSwipeSettings(SwipeSettings{
			Left:  DirectionSettings{OnSwipe: "explode"},
			Right: DirectionSettings{OnSwipe: domain.SwipeActionFlag},
		})
		assert.True(t, domain.IsConfigError(err))
	})
}

func TestBuildSwipeOptions(t *testing.T) {
	var called bool
	opts, err := BuildSwipeOptions(SwipeSettings{
		Foreground: "fg",
		Left: DirectionSettings{
			AfterBackground: "after-left",
			AfterSwipe:      domain.PostSwipeHide,
			Background:      "bg-left",
			Delay:           200 * time.Millisecond,
			Fade:            true,
			OnSwipe:         domain.SwipeActionArchive,
		},
		Right: DirectionSettings{OnSwipe: domain.SwipeActionDisabled},
	}, nil, func(_ ports.Element, _ domain.Direction) { called = true })

	require.NoError(t, err)
	assert.Equal(t, domain.AxisLeft, opts.Axis)
	assert.Equal(t, "fg", opts.Foreground)
	assert.Equal(t, swipe.DirectionOptions{
		Action:          domain.PostSwipeHide,
		AfterBackground: "after-left",
		Background:      "bg-left",
		Delay:           200 * time.Millisecond,
		Fade:            true,
	}, opts.Left)

	opts.Callback(nil, domain.DirectionLeft)
	assert.True(t, called)

	_, err = swipe.NewConfiguration(opts)
	assert.NoError(t, err)
}

func TestValidateSwipeSettings_Buttons(t *testing.T) {
	err := ValidateSwipeSettings(SwipeSettings{
		Left: DirectionSettings{
			AfterSwipe: domain.PostSwipeButton,
			Background: "bg-left",
			Buttons:    []domain.SwipeAction{domain.SwipeActionDelete, domain.SwipeActionDoNothing},
			OnSwipe:    domain.SwipeActionDoNothing,
		},
	})
	assert.True(t, domain.IsConfigError(err))
	assert.Contains(t, err.Error(), "do_nothing")
}
