package view

import (
	"github.com/renato0307/swipelist/internal/domain"
)

// Terminal cells are mapped to element coordinates with a fixed cell size
const (
	CellWidth  = 8.0
	CellHeight = 16.0

	// ButtonCells is the width of a pane button in cells
	ButtonCells = 10
	// ButtonClass marks pane buttons as actionable
	ButtonClass = "mx-button"
)

// RowLayout describes the element tree of one list row
type RowLayout struct {
	AfterBackground map[domain.Direction]string
	Background      map[domain.Direction]string
	Bounds          domain.Rect
	// Buttons lists button names per direction, placed inside that direction's background pane
	Buttons    map[domain.Direction][]string
	Foreground string
	Name       string
}

// BuildRow creates the container node of a row with its panes, buttons and foreground.
// Panes sharing a name are created once.
func BuildRow(l RowLayout) *Node {
	row := NewNode(l.Name, l.Bounds)

	panes := make(map[string]*Node)
	pane := func(name string) *Node {
		if name == "" {
			return nil
		}
		if p, ok := panes[name]; ok {
			return p
		}
		p := NewNode(name, l.Bounds)
		panes[name] = p
		row.Append(p)
		return p
	}

	for _, d := range domain.Directions {
		bg := pane(l.Background[d])
		if bg == nil {
			continue
		}
		appendButtons(bg, l.Bounds, d, l.Buttons[d])
	}
	backgrounds := make(map[string]bool, len(panes))
	for name := range panes {
		backgrounds[name] = true
	}
	for _, d := range domain.Directions {
		name := l.AfterBackground[d]
		if after := pane(name); after != nil && !backgrounds[name] {
			after.AddClass(string(domain.PaneHidden))
		}
	}

	if l.Foreground != "" && l.Foreground != l.Name {
		row.Append(NewNode(l.Foreground, l.Bounds))
	}
	return row
}

// appendButtons lays buttons out on the side a swipe in d uncovers:
// a left swipe uncovers the right edge, a right swipe the left edge.
func appendButtons(pane *Node, bounds domain.Rect, d domain.Direction, names []string) {
	width := ButtonCells * CellWidth
	x := bounds.Left()
	if d == domain.DirectionLeft {
		x = bounds.Right() - width*float64(len(names))
	}

	for _, name := range names {
		rect := domain.Rect{X: x, Y: bounds.Y, Width: width, Height: bounds.Height}
		button := NewNode(name, rect, ButtonClass).Append(
			NewNode(name+"-label", domain.Rect{X: x + CellWidth, Y: bounds.Y, Width: width - 2*CellWidth, Height: CellHeight}),
		)
		pane.Append(button)
		x += width
	}
}
