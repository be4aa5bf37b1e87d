package ui

import (
	"fmt"
	"io"
	"slices"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/renato0307/swipelist/internal/adapters/view"
	"github.com/renato0307/swipelist/internal/domain"
	"github.com/renato0307/swipelist/internal/logging"
	"github.com/renato0307/swipelist/internal/ports"
	"github.com/renato0307/swipelist/internal/services"
	"github.com/renato0307/swipelist/internal/swipe"
	"github.com/renato0307/swipelist/internal/theme"
)

const (
	// headerLines is the number of lines above the first row
	headerLines = 2
	minWidth    = 20
	pageName    = "page"

	// keyboardTravel is the share of the row width a keyboard swipe drags
	keyboardTravel = 0.5
)

// rowItem implements list.Item
type rowItem struct {
	row *itemRow
}

// FilterValue implements list.Item
func (i rowItem) FilterValue() string {
	return i.row.item.Title
}

// rowDelegate renders one swipeable row per line
type rowDelegate struct {
	settings services.SwipeSettings
}

// Height implements list.ItemDelegate
func (d rowDelegate) Height() int {
	return 1
}

// Spacing implements list.ItemDelegate
func (d rowDelegate) Spacing() int {
	return 0
}

// Update implements list.ItemDelegate
func (d rowDelegate) Update(msg tea.Msg, m *list.Model) tea.Cmd {
	return nil
}

// Render implements list.ItemDelegate
func (d rowDelegate) Render(w io.Writer, m list.Model, index int, listItem list.Item) {
	item, ok := listItem.(rowItem)
	if !ok {
		return
	}
	fmt.Fprint(w, renderRow(item.row, d.settings, m.Width(), index == m.Index()))
}

// ItemList renders the swipeable rows and turns keys and mouse events into gestures.
// Completed swipes and tapped buttons are collected and handed to the model with TakeMessages.
type ItemList struct {
	byName    map[string]*itemRow
	cfg       swipe.Configuration
	cfgErr    error
	height    int
	items     []domain.Item
	keys      KeyMap
	list      list.Model
	page      *view.Node
	pan       *PanRecognizer
	pending   []tea.Msg
	reported  bool
	rows      []*itemRow
	scheduler ports.Scheduler
	settings  services.SwipeSettings
	// shown holds the rows handed to the list model, in list order
	shown []*itemRow
	width int
}

// NewItemList creates an empty list; now feeds the mouse velocity tracking
func NewItemList(settings services.SwipeSettings, scheduler ports.Scheduler, keys KeyMap, now func() time.Time) *ItemList {
	l := &ItemList{
		byName:    make(map[string]*itemRow),
		height:    24,
		keys:      keys,
		pan:       NewPanRecognizer(now),
		scheduler: scheduler,
		settings:  settings,
		width:     80,
	}
	l.list = list.New(nil, rowDelegate{settings: settings}, l.width, l.listLines())
	l.list.SetShowTitle(false)
	l.list.SetShowStatusBar(false)
	l.list.SetShowPagination(false)
	l.list.SetFilteringEnabled(false)
	l.list.SetShowHelp(false)
	l.rebuild()
	return l
}

// SetSize resizes the list; rows are rebuilt so gestures measure the new width
func (l *ItemList) SetSize(width, height int) {
	l.width = max(width, minWidth)
	l.height = max(height, headerLines+1)
	l.list.SetSize(l.width, l.listLines())
	l.rebuild()
}

// SetItems replaces the rows, destroying the controllers of the previous ones
func (l *ItemList) SetItems(items []domain.Item) {
	l.items = items
	l.rebuild()
}

// Items returns the listed items
func (l *ItemList) Items() []domain.Item {
	return l.items
}

// Selected returns the item under the cursor, or nil
func (l *ItemList) Selected() *domain.Item {
	row := l.selectedRow()
	if row == nil {
		return nil
	}
	item := row.item
	return &item
}

// TakeMessages returns and clears the messages produced by gestures
func (l *ItemList) TakeMessages() []tea.Msg {
	msgs := l.pending
	l.pending = nil
	return msgs
}

// Destroy detaches every swipe controller and cancels running transitions
func (l *ItemList) Destroy() {
	for _, row := range l.rows {
		row.destroy()
	}
}

func (l *ItemList) rebuild() {
	l.Destroy()
	l.rows = nil
	l.shown = nil
	l.byName = make(map[string]*itemRow)
	l.page = view.NewNode(pageName, domain.Rect{
		Width:  float64(l.width) * view.CellWidth,
		Height: float64(headerLines+len(l.items)) * view.CellHeight,
	})

	opts, err := services.BuildSwipeOptions(l.settings, l.page, l.onSwipe)
	if err == nil {
		l.cfg, err = swipe.NewConfiguration(opts)
	}
	l.cfgErr = err
	l.reported = false

	for i, item := range l.items {
		row := newItemRow(item, l.settings, headerLines+i, l.width)
		l.page.Append(row.node)
		l.rows = append(l.rows, row)
		l.byName[row.node.Name()] = row
	}
	l.syncRows()
}

// onSwipe is the swipe callback shared by every row
func (l *ItemList) onSwipe(item ports.Element, direction domain.Direction) {
	row, ok := l.byName[item.Name()]
	if !ok {
		logging.Logger.Warn("Swipe completed for unknown row", "row", item.Name())
		return
	}
	l.pending = append(l.pending, swipeCompletedMsg{direction: direction, itemID: row.item.ID})
}

// attach connects the controller of row. Configuration errors are returned once per rebuild.
func (l *ItemList) attach(row *itemRow) (bool, error) {
	if row.connected() {
		return true, nil
	}
	err := l.cfgErr
	if err == nil {
		err = row.attach(l.cfg, l.scheduler)
	}
	if err == nil {
		return true, nil
	}
	if l.reported {
		return false, nil
	}
	l.reported = true
	logging.Logger.Error("Failed to attach swipe controller", "row", row.node.Name(), "error", err)
	return false, classifySwipeError(err)
}

// HandleKey processes navigation and swipe keys; handled is false for keys the list ignores
func (l *ItemList) HandleKey(msg tea.KeyMsg) (handled bool, err error) {
	switch {
	case key.Matches(msg, l.keys.Up):
		l.moveCursor(-1)
	case key.Matches(msg, l.keys.Down):
		l.moveCursor(1)
	case key.Matches(msg, l.keys.SwipeLeft):
		return true, l.keyboardSwipe(domain.DirectionLeft)
	case key.Matches(msg, l.keys.SwipeRight):
		return true, l.keyboardSwipe(domain.DirectionRight)
	case key.Matches(msg, l.keys.Tap):
		return true, l.keyboardTap()
	case key.Matches(msg, l.keys.Restore):
		view.Tap(l.page)
	default:
		return false, nil
	}
	return true, nil
}

func (l *ItemList) keyboardSwipe(d domain.Direction) error {
	row := l.selectedRow()
	if row == nil {
		return nil
	}
	ok, err := l.attach(row)
	if !ok {
		return err
	}
	travel := row.node.Bounds().Width * keyboardTravel
	for _, sample := range keyboardPan(d, travel) {
		row.source.Emit(sample)
	}
	return nil
}

func (l *ItemList) keyboardTap() error {
	row := l.selectedRow()
	if row == nil {
		return nil
	}
	ok, err := l.attach(row)
	if !ok {
		return err
	}

	target := row.node.Find(row.layout.Foreground)
	if row.phase() == swipe.PhaseSwipedOut {
		if button := row.firstButton(row.ctrl.Session().Direction); button != nil && button.Visible() {
			target = button
		}
	}
	if target == nil {
		target = row.node
	}
	l.tap(row, target)
	return nil
}

// tap dispatches a tap at target and reports button taps that reached their target
func (l *ItemList) tap(row *itemRow, target *view.Node) {
	if !view.Tap(target) {
		return
	}
	if action, ok := row.buttonFor(target); ok {
		logging.Logger.Debug("Pane button tapped", "item", row.item.ID, "action", action)
		l.pending = append(l.pending, buttonTappedMsg{action: action, itemID: row.item.ID})
	}
}

// HandleMouse turns a mouse event into pan samples or a tap
func (l *ItemList) HandleMouse(msg tea.MouseMsg) error {
	if msg.Action == tea.MouseActionPress {
		switch msg.Button {
		case tea.MouseButtonWheelUp:
			l.moveCursor(-1)
			return nil
		case tea.MouseButtonWheelDown:
			l.moveCursor(1)
			return nil
		}
	}

	for _, ev := range l.pan.HandleMouseEvent(msg, l.rowAt) {
		if err := l.handlePanEvent(ev); err != nil {
			return err
		}
	}
	return nil
}

func (l *ItemList) handlePanEvent(ev panEvent) error {
	l.syncRows()
	visible := l.shown
	if ev.row < 0 || ev.row >= len(visible) {
		if ev.kind == panEventTap {
			view.Tap(l.page)
		}
		return nil
	}
	row := visible[ev.row]

	switch ev.kind {
	case panEventSample:
		ok, err := l.attach(row)
		if !ok {
			return err
		}
		row.source.Emit(ev.sample)
	case panEventTap:
		l.list.Select(ev.row)
		ok, err := l.attach(row)
		if !ok {
			return err
		}
		target := row.tapTarget(ev.x)
		if target == nil {
			target = row.node
		}
		l.tap(row, target)
	}
	return nil
}

// rowAt maps a screen line to an index into the visible rows, or -1
func (l *ItemList) rowAt(y int) int {
	l.syncRows()
	line := y - headerLines
	if line < 0 || line >= l.list.Paginator.ItemsOnPage(len(l.shown)) {
		return -1
	}
	return l.list.Paginator.Page*l.list.Paginator.PerPage + line
}

func (l *ItemList) selectedRow() *itemRow {
	l.syncRows()
	item, ok := l.list.SelectedItem().(rowItem)
	if !ok {
		return nil
	}
	return item.row
}

// visibleRows returns the rows that still take vertical space
func (l *ItemList) visibleRows() []*itemRow {
	visible := make([]*itemRow, 0, len(l.rows))
	for _, row := range l.rows {
		if !row.collapsed() {
			visible = append(visible, row)
		}
	}
	return visible
}

// syncRows hands rows that collapsed since the last call over to the list model.
// The selection keeps its index, so it moves to the row that took the collapsed one's place.
func (l *ItemList) syncRows() {
	visible := l.visibleRows()
	if !slices.Equal(visible, l.shown) {
		l.shown = visible
		items := make([]list.Item, len(visible))
		for i, row := range visible {
			items[i] = rowItem{row: row}
		}
		l.list.SetItems(items)
	}
	l.list.Select(clamp(l.list.Index(), 0, max(len(l.shown)-1, 0)))
}

func (l *ItemList) moveCursor(delta int) {
	if l.pan.IsPanning() {
		return
	}
	l.syncRows()
	if delta < 0 {
		l.list.CursorUp()
		return
	}
	l.list.CursorDown()
}

func (l *ItemList) listLines() int {
	return max(l.height-headerLines, 1)
}

// View renders the header and the current page of rows
func (l *ItemList) View() string {
	l.syncRows()

	var b strings.Builder
	b.WriteString(theme.TitleStyle.Render("swipelist"))
	b.WriteString(theme.MutedStyle.Render(fmt.Sprintf("  %d items", len(l.items))))
	b.WriteString("\n\n")

	if len(l.shown) == 0 {
		b.WriteString(theme.MutedStyle.Render("  No items. Press a to add one."))
		return b.String()
	}
	b.WriteString(l.list.View())
	return b.String()
}
