package swipe

import (
	"errors"
	"fmt"
	"math"

	"github.com/renato0307/swipelist/internal/domain"
)

// DefaultAcceptThreshold is the drag percentage needed to accept a swipe
const DefaultAcceptThreshold = 30.0

var errNoWidth = errors.New("container has no width")

// GeometrySnapshot is the geometry captured at the start of a gesture
type GeometrySnapshot struct {
	SnapBorder byDirection[float64] // signed offset a committed foreground settles at
	Threshold  byDirection[float64] // acceptance threshold in percent of Width
	Width      float64
}

// Offset converts a percentage of the container width to an offset
func (g GeometrySnapshot) Offset(percentage float64) float64 {
	return g.Width * percentage / 100
}

// Percentage converts an offset to a percentage of the container width
func (g GeometrySnapshot) Percentage(offset float64) float64 {
	return offset * 100 / g.Width
}

// ResolveGeometry measures the container and the button panes.
// It runs at every gesture start because rows can be resized between gestures.
func ResolveGeometry(cfg Configuration, els ElementSet) (GeometrySnapshot, error) {
	bounds := els.Container.Bounds()
	width := bounds.Width
	if width <= 0 {
		return GeometrySnapshot{}, errNoWidth
	}

	snap := GeometrySnapshot{
		SnapBorder: newByDirection(-width, width),
		Threshold:  newByDirection(DefaultAcceptThreshold, DefaultAcceptThreshold),
		Width:      width,
	}

	for _, d := range domain.Directions {
		if cfg.Action(d) != domain.PostSwipeButton || !cfg.axis.Allows(d) {
			continue
		}
		border, err := buttonBorder(els, d, bounds)
		if err != nil {
			return GeometrySnapshot{}, err
		}
		snap.SnapBorder[d] = border
		snap.Threshold[d] = snap.Percentage(math.Abs(border))
	}

	return snap, nil
}

// buttonBorder returns the signed offset at which the pane for d exposes all its buttons
func buttonBorder(els ElementSet, d domain.Direction, container domain.Rect) (float64, error) {
	pane := els.Background[d]
	if pane == nil {
		return 0, domain.NewConfigError(fmt.Sprintf("Swipe container %s", d), "not found")
	}
	buttons := actionableDescendants(pane)
	if len(buttons) == 0 {
		return 0, domain.NewConfigError(fmt.Sprintf("Swipe container %s", d), "no buttons found in '%s'", pane.Name())
	}

	if d == domain.DirectionLeft {
		edge := math.Inf(1)
		for _, b := range buttons {
			edge = math.Min(edge, b.Bounds().Left()-container.Left())
		}
		return -container.Width + edge, nil
	}

	edge := math.Inf(-1)
	for _, b := range buttons {
		edge = math.Max(edge, b.Bounds().Right()-container.Left())
	}
	return edge, nil
}
