package ui

import (
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/renato0307/swipelist/internal/adapters/view"
	"github.com/renato0307/swipelist/internal/domain"
	"github.com/renato0307/swipelist/internal/ports"
	"github.com/renato0307/swipelist/internal/services"
	"github.com/renato0307/swipelist/internal/swipe"
	"github.com/renato0307/swipelist/internal/theme"
)

const (
	// connectedClass marks a row whose swipe controller is attached
	connectedClass = "swipe-connected"
	buttonPrefix   = "button-"
	rowNamePrefix  = "item-"
)

// itemRow is one list entry: its element tree, presenter and swipe controller.
// The controller is attached on the first interaction with the row.
type itemRow struct {
	buttons   map[string]domain.SwipeAction
	ctrl      *swipe.Controller
	item      domain.Item
	layout    view.RowLayout
	node      *view.Node
	presenter *rowPresenter
	source    *view.Source
}

// newItemRow builds the element tree of item at line y of a list width cells wide
func newItemRow(item domain.Item, settings services.SwipeSettings, line, width int) *itemRow {
	layout := view.RowLayout{
		AfterBackground: make(map[domain.Direction]string),
		Background:      make(map[domain.Direction]string),
		Bounds: domain.Rect{
			X:      0,
			Y:      float64(line) * view.CellHeight,
			Width:  float64(width) * view.CellWidth,
			Height: view.CellHeight,
		},
		Buttons:    make(map[domain.Direction][]string),
		Foreground: settings.Foreground,
		Name:       rowNamePrefix + item.ID,
	}

	buttons := make(map[string]domain.SwipeAction)
	for _, d := range domain.Directions {
		ds := settings.Direction(d)
		if !ds.OnSwipe.Enabled() {
			continue
		}
		layout.Background[d] = ds.Background
		if ds.AfterSwipe == domain.PostSwipeHide {
			layout.AfterBackground[d] = ds.AfterBackground
		}
		if ds.AfterSwipe != domain.PostSwipeButton {
			continue
		}
		for _, action := range ds.Buttons {
			name := buttonPrefix + string(action)
			layout.Buttons[d] = append(layout.Buttons[d], name)
			buttons[name] = action
		}
	}

	return &itemRow{
		buttons: buttons,
		item:    item,
		layout:  layout,
		node:    view.BuildRow(layout),
		source:  view.NewSource(),
	}
}

// attach connects the swipe controller; it is a no-op once connected
func (r *itemRow) attach(cfg swipe.Configuration, scheduler ports.Scheduler) error {
	if r.ctrl != nil {
		return nil
	}
	r.presenter = newRowPresenter(r.node.Find(r.layout.Foreground), scheduler)
	ctrl, err := swipe.Attach(r.node, cfg, swipe.Deps{
		Presenter: r.presenter,
		Scheduler: scheduler,
		Source:    r.source,
	})
	if err != nil {
		r.presenter = nil
		return err
	}
	r.ctrl = ctrl
	r.node.AddClass(connectedClass)
	return nil
}

func (r *itemRow) connected() bool {
	return r.ctrl != nil
}

// destroy detaches the controller and cancels a running transition
func (r *itemRow) destroy() {
	if r.ctrl != nil {
		r.ctrl.Destroy()
	}
	if r.presenter != nil {
		r.presenter.stop()
	}
}

func (r *itemRow) collapsed() bool {
	if r.presenter == nil {
		return false
	}
	return r.presenter.collapsed() || r.ctrl.Collapsed()
}

func (r *itemRow) phase() swipe.Phase {
	if r.ctrl == nil {
		return swipe.PhaseIdle
	}
	return r.ctrl.Session().Phase
}

// buttonFor returns the action of the button target belongs to, if any
func (r *itemRow) buttonFor(target *view.Node) (domain.SwipeAction, bool) {
	for n := target; n != nil && n != r.node; {
		if n.HasClass(view.ButtonClass) {
			action, ok := r.buttons[n.Name()]
			return action, ok
		}
		parent, _ := n.Parent().(*view.Node)
		n = parent
	}
	return "", false
}

// firstButton returns the first visible button uncovered by a swipe in d
func (r *itemRow) firstButton(d domain.Direction) *view.Node {
	names := r.layout.Buttons[d]
	if len(names) == 0 {
		return nil
	}
	return r.node.Find(names[0])
}

// tapTarget hit tests the row at column x, at the vertical center of the row
func (r *itemRow) tapTarget(x int) *view.Node {
	bounds := r.node.Bounds()
	px := float64(x)*view.CellWidth + view.CellWidth/2
	return r.node.HitTest(px, bounds.Y+bounds.Height/2)
}

// offsetCells returns the foreground offset in terminal cells
func (r *itemRow) offsetCells() int {
	if r.presenter == nil {
		return 0
	}
	return int(math.Round(r.presenter.offset / view.CellWidth))
}

// renderRow renders the row on one line of width cells
func renderRow(r *itemRow, settings services.SwipeSettings, width int, selected bool) string {
	text := foregroundText(r.item, selected)
	offset := r.offsetCells()
	if offset > width {
		offset = width
	}
	if offset < -width {
		offset = -width
	}

	fgStyle := theme.NormalStyle
	switch {
	case selected:
		fgStyle = theme.SelectedStyle
	case r.item.IsArchived:
		fgStyle = theme.ArchivedStyle
	}
	if r.presenter != nil && r.presenter.opacity < 0.5 {
		fgStyle = theme.MutedStyle
	}

	if offset == 0 {
		return fgStyle.Render(fitCells(text, width))
	}

	uncovered := abs(offset)
	d := domain.DirectionRight
	if offset < 0 {
		d = domain.DirectionLeft
	}
	pane := r.renderPane(settings, d, width)
	fg := []rune(fitCells(text, width))

	if d == domain.DirectionLeft {
		// Foreground slid left: its head is off screen, the right edge is uncovered
		visible := string(fg[uncovered:])
		return fgStyle.Render(visible) + pane
	}
	visible := string(fg[:width-uncovered])
	return pane + fgStyle.Render(visible)
}

// renderPane renders the uncovered part of the pane revealed by a swipe in d
func (r *itemRow) renderPane(settings services.SwipeSettings, d domain.Direction, width int) string {
	uncovered := abs(r.offsetCells())
	if uncovered > width {
		uncovered = width
	}
	ds := settings.Direction(d)

	if after := r.node.Find(r.layout.AfterBackground[d]); after != nil && after.Visible() && r.layout.Background[d] != r.layout.AfterBackground[d] {
		label := fitCells(" "+string(ds.OnSwipe), uncovered)
		return theme.PaneStyle(string(ds.OnSwipe)).Render(label)
	}

	bg := r.node.Find(r.layout.Background[d])
	if bg == nil || !bg.Visible() {
		return strings.Repeat(" ", uncovered)
	}

	line := []rune(strings.Repeat(" ", width))
	if names := r.layout.Buttons[d]; len(names) > 0 {
		for _, name := range names {
			button := r.node.Find(name)
			if button == nil {
				continue
			}
			col := int(button.Bounds().X / view.CellWidth)
			label := []rune(centerCells(string(r.buttons[name]), view.ButtonCells))
			copy(line[clamp(col, 0, width):], label)
		}
	} else {
		label := string(ds.OnSwipe)
		if r.presenter != nil && r.presenter.flag(domain.FlagWillAccept) {
			label += " ✓"
		}
		label = " " + label + " "
		runes := []rune(label)
		if d == domain.DirectionLeft {
			copy(line[clamp(width-len(runes), 0, width):], runes)
		} else {
			copy(line, runes)
		}
	}

	var segment string
	if d == domain.DirectionLeft {
		segment = string(line[width-uncovered:])
	} else {
		segment = string(line[:uncovered])
	}

	style := theme.PaneStyle(string(ds.OnSwipe))
	if len(r.layout.Buttons[d]) > 0 {
		style = theme.ButtonStyle
	}
	if r.presenter != nil && r.presenter.flag(domain.FlagWillAccept) {
		style = style.Inherit(theme.AcceptHintStyle)
	}
	return style.Render(segment)
}

func foregroundText(item domain.Item, selected bool) string {
	var b strings.Builder
	if selected {
		b.WriteString("> ")
	} else {
		b.WriteString("  ")
	}
	if item.IsFlagged {
		b.WriteString("⚑ ")
	}
	b.WriteString(item.Title)
	if item.Note != "" {
		b.WriteString("  ")
		b.WriteString(firstLine(item.Note))
	}
	return b.String()
}

// fitCells pads or truncates s to exactly width runes
func fitCells(s string, width int) string {
	runes := []rune(s)
	if len(runes) >= width {
		return string(runes[:width])
	}
	return s + strings.Repeat(" ", width-len(runes))
}

func centerCells(s string, width int) string {
	return lipgloss.PlaceHorizontal(width, lipgloss.Center, fitCells(s, min(len([]rune(s)), width)))
}

func firstLine(s string) string {
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		return s[:i]
	}
	return s
}

func clamp(v, lo, hi int) int {
	return max(lo, min(v, hi))
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
