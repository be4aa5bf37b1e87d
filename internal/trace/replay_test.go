package trace

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/renato0307/swipelist/internal/domain"
)

func TestReplay_Golden(t *testing.T) {
	files, err := filepath.Glob(filepath.Join("testdata", "*.yaml"))
	require.NoError(t, err)
	require.NotEmpty(t, files)

	for _, path := range files {
		t.Run(filepath.Base(path), func(t *testing.T) {
			f, err := Load(path)
			require.NoError(t, err)
			require.NotNil(t, f.Expect, "golden traces must declare expectations")

			result, err := Replay(f)
			require.NoError(t, err)

			if diff := f.Verify(result); diff != "" {
				t.Errorf("replay mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestReplay_HideCollapses(t *testing.T) {
	f, err := Load(filepath.Join("testdata", "hide_left.yaml"))
	require.NoError(t, err)

	result, err := Replay(f)
	require.NoError(t, err)
	assert.True(t, result.Collapsed)
}

func TestParse_RejectsUnknownFields(t *testing.T) {
	_, err := Parse([]byte("name: x\nspeed: 3\n"))
	assert.ErrorContains(t, err, "invalid trace")
}

func TestParse_StepNeedsExactlyOneAction(t *testing.T) {
	_, err := Parse([]byte(`
steps:
  - advance: 10ms
    flush: true
`))
	assert.ErrorContains(t, err, "step 1")

	_, err = Parse([]byte(`
steps:
  - pan: {phase: wiggle}
`))
	assert.ErrorContains(t, err, "invalid pan phase")
}

func TestParse_DefaultsWidth(t *testing.T) {
	f, err := Parse([]byte("name: x\n"))
	require.NoError(t, err)
	assert.Equal(t, DefaultRowWidth, f.Width)
}

func TestReplay_ConfigurationError(t *testing.T) {
	f, err := Parse([]byte(`
swipe:
  left:
    after: button
`))
	require.NoError(t, err)

	_, err = Replay(f)
	require.Error(t, err)
	assert.True(t, domain.IsConfigError(err))
}

func TestReplay_UnknownTapTarget(t *testing.T) {
	f, err := Parse([]byte(`
steps:
  - tap: nowhere
`))
	require.NoError(t, err)

	_, err = Replay(f)
	assert.ErrorContains(t, err, "no element named 'nowhere'")
}

func TestVerify_ReportsDiff(t *testing.T) {
	f := &File{Expect: &Expect{Calls: []Call{{At: "0s", Direction: domain.DirectionLeft}}}}

	diff := f.Verify(&Result{Calls: []Call{{At: "0s", Direction: domain.DirectionRight}}})
	assert.Contains(t, diff, "right")

	assert.Empty(t, (&File{}).Verify(&Result{Calls: []Call{{At: "1s"}}}))
}
