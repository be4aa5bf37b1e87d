package view

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/renato0307/swipelist/internal/domain"
	"github.com/renato0307/swipelist/internal/ports"
)

func testLayout() RowLayout {
	return RowLayout{
		AfterBackground: map[domain.Direction]string{
			domain.DirectionLeft:  "after-left",
			domain.DirectionRight: "after-right",
		},
		Background: map[domain.Direction]string{
			domain.DirectionLeft:  "bg-left",
			domain.DirectionRight: "bg-right",
		},
		Bounds: domain.Rect{X: 0, Y: 32, Width: 400, Height: 16},
		Buttons: map[domain.Direction][]string{
			domain.DirectionLeft: {"button-flag", "button-delete"},
		},
		Foreground: "fg",
		Name:       "item-1",
	}
}

func TestBuildRow_ButtonsOnUncoveredEdge(t *testing.T) {
	row := BuildRow(testLayout())

	flag := row.Find("button-flag")
	del := row.Find("button-delete")
	require.NotNil(t, flag)
	require.NotNil(t, del)

	assert.Equal(t, 240.0, flag.Bounds().X)
	assert.Equal(t, 320.0, del.Bounds().X)
	assert.Equal(t, 400.0, del.Bounds().Right())
	assert.True(t, flag.HasClass(ButtonClass))
	assert.Equal(t, "bg-left", flag.Parent().Name())
}

func TestBuildRow_SharedPaneCreatedOnce(t *testing.T) {
	layout := testLayout()
	layout.Background[domain.DirectionRight] = "bg-left"
	layout.Buttons[domain.DirectionRight] = []string{"button-open"}

	row := BuildRow(layout)

	var panes int
	for _, child := range row.Children() {
		if child.Name() == "bg-left" {
			panes++
		}
	}
	assert.Equal(t, 1, panes)
	assert.Equal(t, 0.0, row.Find("button-open").Bounds().X)
}

func TestHitTest_ForegroundCoversPanes(t *testing.T) {
	row := BuildRow(testLayout())

	hit := row.HitTest(330, 40)
	require.NotNil(t, hit)
	assert.Equal(t, "fg", hit.Name())

	// Translating the foreground uncovers the buttons of the visible pane
	row.Find("bg-right").SetClass(string(domain.PaneHidden), true)
	fg := row.Find("fg")
	fg.SetBounds(domain.Rect{X: -160, Y: 32, Width: 400, Height: 16})

	hit = row.HitTest(330, 40)
	require.NotNil(t, hit)
	assert.Equal(t, "button-delete-label", hit.Name())
}

func TestTap_CaptureOrderAndStop(t *testing.T) {
	page := NewNode("page", domain.Rect{Width: 400, Height: 400})
	row := BuildRow(testLayout())
	page.Append(row)

	var order []string
	removePage := page.AddTapCapture(func(ev *ports.TapEvent) { order = append(order, "page") })
	row.AddTapCapture(func(ev *ports.TapEvent) {
		order = append(order, "row")
		ev.StopPropagation()
	})

	assert.False(t, Tap(row.Find("fg")))
	assert.Equal(t, []string{"page", "row"}, order)

	removePage()
	assert.Equal(t, 0, page.CaptureListeners())
}
