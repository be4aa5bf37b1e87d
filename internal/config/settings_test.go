package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/renato0307/swipelist/internal/domain"
)

func writeSettings(t *testing.T, content string) {
	t.Helper()

	home := t.TempDir()
	t.Setenv("SWIPELIST_HOME", home)
	require.NoError(t, os.WriteFile(filepath.Join(home, "settings.json"), []byte(content), 0644))
}

func TestLoadSettings_MissingFile(t *testing.T) {
	t.Setenv("SWIPELIST_HOME", t.TempDir())

	settings, err := LoadSettings()
	require.NoError(t, err)
	assert.Nil(t, settings.Swipe)

	swipe, err := settings.ResolveSwipeSettings()
	require.NoError(t, err)
	assert.Equal(t, DefaultSwipeSettings(), swipe)
}

func TestLoadSettings_SwipeOverrides(t *testing.T) {
	writeSettings(t, `{
		"debug": true,
		"swipe": {
			"allow_mouse": true,
			"left": {"on_swipe": "delete", "after_swipe": "reset", "delay_ms": 250, "fade": false},
			"right": {"on_swipe": "disabled"}
		}
	}`)

	settings, err := LoadSettings()
	require.NoError(t, err)
	require.NotNil(t, settings.Debug)
	assert.True(t, *settings.Debug)

	swipe, err := settings.ResolveSwipeSettings()
	require.NoError(t, err)
	assert.True(t, swipe.AllowMouse)
	assert.Equal(t, domain.SwipeActionDelete, swipe.Left.OnSwipe)
	assert.Equal(t, domain.PostSwipeReset, swipe.Left.AfterSwipe)
	assert.Equal(t, 250*time.Millisecond, swipe.Left.Delay)
	assert.False(t, swipe.Left.Fade)
	assert.Equal(t, PaneBackgroundLeft, swipe.Left.Background)
	assert.Equal(t, domain.SwipeActionDisabled, swipe.Right.OnSwipe)
}

func TestResolveSwipeSettings_Errors(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    string
	}{
		{
			name:    "unknown after swipe",
			content: `{"swipe": {"left": {"after_swipe": "explode"}}}`,
			want:    "After swipe left",
		},
		{
			name:    "both disabled",
			content: `{"swipe": {"left": {"on_swipe": "disabled"}, "right": {"on_swipe": "disabled"}}}`,
			want:    "no 'On swipe action' left or right selected",
		},
		{
			name:    "unknown button",
			content: `{"swipe": {"right": {"buttons": "flag, explode"}}}`,
			want:    "Buttons right",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			writeSettings(t, tt.content)

			settings, err := LoadSettings()
			require.NoError(t, err)

			_, err = settings.ResolveSwipeSettings()
			require.Error(t, err)
			assert.True(t, domain.IsConfigError(err))
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestLoadSettings_InvalidJSON(t *testing.T) {
	writeSettings(t, `{"swipe": `)

	_, err := LoadSettings()
	assert.ErrorContains(t, err, "invalid settings.json")
}

func TestSaveSettings_RoundTrip(t *testing.T) {
	t.Setenv("SWIPELIST_HOME", filepath.Join(t.TempDir(), "nested"))

	fade := true
	require.NoError(t, SaveSettings(&Settings{
		Swipe: &SwipeConfig{Left: &DirectionConfig{Fade: &fade, Buttons: StringArray{"flag"}}},
	}))

	settings, err := LoadSettings()
	require.NoError(t, err)
	require.NotNil(t, settings.Swipe.Left.Fade)
	assert.True(t, *settings.Swipe.Left.Fade)
	assert.Equal(t, StringArray{"flag"}, settings.Swipe.Left.Buttons)
}

func TestKeyBindingsConfig_Validate(t *testing.T) {
	valid := []string{"add", "quit"}

	assert.NoError(t, KeyBindingsConfig{"add": {"n"}}.Validate(valid))
	assert.ErrorContains(t, KeyBindingsConfig{"fly": {"f"}}.Validate(valid), "unknown key binding")
	assert.ErrorContains(t, KeyBindingsConfig{"add": {"x"}, "quit": {"x"}}.Validate(valid), "assigned to both")
}

func TestGetSettingsExample_IncludesSwipe(t *testing.T) {
	example := GetSettingsExample()

	swipe, ok := example["swipe"].(map[string]any)
	require.True(t, ok)
	left, ok := swipe["left"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "archive", left["on_swipe"])
	assert.Equal(t, 300, left["delay_ms"])
}

func TestMergeSwipeSettings_LeavesValidationToCaller(t *testing.T) {
	writeSettings(t, `{"swipe": {"left": {"on_swipe": "disabled"}, "right": {"on_swipe": "disabled"}}}`)

	settings, err := LoadSettings()
	require.NoError(t, err)

	merged, err := settings.MergeSwipeSettings()
	require.NoError(t, err)
	assert.Equal(t, domain.SwipeActionDisabled, merged.Left.OnSwipe)

	_, err = settings.ResolveSwipeSettings()
	require.Error(t, err)
	assert.True(t, domain.IsConfigError(err))
}
