package ui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/renato0307/swipelist/internal/adapters/clock"
	"github.com/renato0307/swipelist/internal/domain"
	"github.com/renato0307/swipelist/internal/logging"
	"github.com/renato0307/swipelist/internal/services"
	"github.com/renato0307/swipelist/internal/theme"
)

type uiState int

const (
	stateList uiState = iota
	stateAddingItem
	stateEditingNote
	stateHelp
)

// footerLines is the space below the list: help line plus two error lines
const footerLines = 4

// ModelOptions configures a Model
type ModelOptions struct {
	Dispatcher      *services.SwipeDispatcher
	ErrorClearDelay time.Duration
	ItemService     *services.ItemService
	Keys            KeyMap
	ShowArchived    bool
}

type Model struct {
	dispatcher   *services.SwipeDispatcher // Runs host actions for swipes and buttons
	errorManager *ErrorManager             // Error display and auto-clearing
	height       int
	help         help.Model
	itemForm     *ItemForm // Add item or edit note dialog
	itemList     *ItemList // Swipeable rows
	itemService  *services.ItemService
	keys         KeyMap
	scheduler    *clock.Tea // Runs swipe stages inside Update
	showArchived bool
	state        uiState
	width        int
}

func NewModel(opts ModelOptions) *Model {
	scheduler := clock.NewTea()
	return &Model{
		dispatcher:   opts.Dispatcher,
		errorManager: NewErrorManager(opts.ErrorClearDelay),
		help:         help.New(),
		itemList:     NewItemList(opts.Dispatcher.Settings(), scheduler, opts.Keys, time.Now),
		itemService:  opts.ItemService,
		keys:         opts.Keys,
		scheduler:    scheduler,
		showArchived: opts.ShowArchived,
		state:        stateList,
	}
}

func (m *Model) Init() tea.Cmd {
	return m.loadItems()
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	// Timers and resizes are handled in every state so pending swipe stages keep running
	switch msg := msg.(type) {
	case clock.FiredMsg:
		m.scheduler.Fire(msg)
		return m, m.collect(nil)
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.itemList.SetSize(msg.Width, msg.Height-footerLines)
		if m.itemForm != nil {
			return m, m.forwardToForm(msg)
		}
		return m, nil
	case clearErrorMsg:
		m.errorManager.ClearError()
		return m, nil
	}

	switch m.state {
	case stateList:
		return m.updateList(msg)
	case stateAddingItem:
		return m.updateAddingItem(msg)
	case stateEditingNote:
		return m.updateEditingNote(msg)
	case stateHelp:
		return m.updateHelp(msg)
	}
	return m, nil
}

func (m *Model) updateList(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case itemsLoadedMsg:
		if msg.err != nil {
			return m, m.showError(fmt.Errorf("failed to load items: %w", msg.err))
		}
		m.itemList.SetItems(msg.items)
		return m, nil

	case swipeCompletedMsg:
		return m, m.dispatch(msg.itemID, msg.direction)

	case buttonTappedMsg:
		return m, m.run(msg.itemID, msg.action)

	case dispatchResultMsg:
		if msg.err != nil {
			logging.Logger.Error("Swipe action failed", "item", msg.result.ItemID, "action", msg.result.Action, "error", msg.err)
			return m, tea.Batch(m.showError(msg.err), m.loadItems())
		}
		if msg.result.Open {
			return m, m.openItem(msg.result.ItemID)
		}
		if msg.result.Refresh {
			return m, m.loadItems()
		}
		return m, nil

	case itemAddedMsg:
		if msg.err != nil {
			return m, m.showError(fmt.Errorf("failed to add item: %w", msg.err))
		}
		return m, m.loadItems()

	case tea.KeyMsg:
		return m.handleListKey(msg)

	case tea.MouseMsg:
		err := m.itemList.HandleMouse(msg)
		return m, m.collect(err)
	}
	return m, nil
}

func (m *Model) handleListKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.ForceQuit), key.Matches(msg, m.keys.Quit):
		m.itemList.Destroy()
		return m, tea.Quit
	case key.Matches(msg, m.keys.Help):
		m.state = stateHelp
		return m, nil
	case key.Matches(msg, m.keys.Refresh):
		return m, m.loadItems()
	case key.Matches(msg, m.keys.ShowArchived):
		m.showArchived = !m.showArchived
		logging.Logger.Debug("Toggled archived items", "show_archived", m.showArchived)
		return m, m.loadItems()
	case key.Matches(msg, m.keys.Add):
		m.itemForm = NewItemForm()
		m.state = stateAddingItem
		return m, m.itemForm.Init()
	}

	_, err := m.itemList.HandleKey(msg)
	return m, m.collect(err)
}

// collect turns list output, scheduled timers and err into commands
func (m *Model) collect(err error) tea.Cmd {
	var cmds []tea.Cmd
	for _, msg := range m.itemList.TakeMessages() {
		cmds = append(cmds, func() tea.Msg { return msg })
	}
	if cmd := m.scheduler.Drain(); cmd != nil {
		cmds = append(cmds, cmd)
	}
	if err != nil {
		cmds = append(cmds, m.showError(err))
	}
	return tea.Batch(cmds...)
}

func (m *Model) showError(err error) tea.Cmd {
	m.errorManager.SetError(err)
	return m.errorManager.ClearAfterDelay()
}

func (m *Model) loadItems() tea.Cmd {
	includeArchived := m.showArchived
	return func() tea.Msg {
		items, err := m.itemService.List(context.Background(), includeArchived)
		return itemsLoadedMsg{err: err, items: items}
	}
}

func (m *Model) dispatch(itemID string, direction domain.Direction) tea.Cmd {
	return func() tea.Msg {
		result, err := m.dispatcher.Dispatch(context.Background(), itemID, direction)
		return dispatchResultMsg{err: err, result: result}
	}
}

func (m *Model) run(itemID string, action domain.SwipeAction) tea.Cmd {
	return func() tea.Msg {
		result, err := m.dispatcher.Run(context.Background(), itemID, action)
		return dispatchResultMsg{err: err, result: result}
	}
}

// openItem shows the note editor of itemID
func (m *Model) openItem(itemID string) tea.Cmd {
	item, err := m.itemService.Get(context.Background(), itemID)
	if err != nil {
		return m.showError(fmt.Errorf("failed to open item: %w", err))
	}
	m.itemForm = NewNoteForm(*item)
	m.state = stateEditingNote
	return m.itemForm.Init()
}

func (m *Model) forwardToForm(msg tea.Msg) tea.Cmd {
	updated, cmd := m.itemForm.Update(msg)
	m.itemForm = updated.(*ItemForm)
	return cmd
}

func (m *Model) updateAddingItem(msg tea.Msg) (tea.Model, tea.Cmd) {
	cmd := m.forwardToForm(msg)
	if !m.itemForm.Completed {
		return m, cmd
	}

	result := m.itemForm.Result()
	m.itemForm = nil
	m.state = stateList
	if result.Cancelled {
		return m, nil
	}

	return m, func() tea.Msg {
		item, err := m.itemService.Add(context.Background(), services.AddItemParams{
			Note:  result.Note,
			Title: result.Title,
		})
		return itemAddedMsg{err: err, item: item}
	}
}

func (m *Model) updateEditingNote(msg tea.Msg) (tea.Model, tea.Cmd) {
	cmd := m.forwardToForm(msg)
	if !m.itemForm.Completed {
		return m, cmd
	}

	result := m.itemForm.Result()
	m.itemForm = nil
	m.state = stateList
	if result.Cancelled {
		return m, nil
	}

	return m, func() tea.Msg {
		err := m.itemService.UpdateNote(context.Background(), result.ItemID, result.Note)
		return dispatchResultMsg{
			err:    err,
			result: services.DispatchResult{ItemID: result.ItemID, Refresh: true},
		}
	}
}

func (m *Model) updateHelp(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if key.Matches(msg, m.keys.ForceQuit) {
			m.itemList.Destroy()
			return m, tea.Quit
		}
		m.state = stateList
	case tea.MouseMsg:
		// Ignored until the help screen is closed
	default:
		// Results of commands started before opening help
		return m.updateList(msg)
	}
	return m, nil
}

func (m *Model) View() string {
	switch m.state {
	case stateAddingItem, stateEditingNote:
		if m.itemForm != nil {
			return m.itemForm.View()
		}
	case stateHelp:
		m.help.ShowAll = true
		view := theme.TitleStyle.Render("Keyboard shortcuts") + "\n\n" + m.help.View(m.keys)
		m.help.ShowAll = false
		return view + "\n\n" + theme.MutedStyle.Render("Press any key to return")
	}

	var b strings.Builder
	b.WriteString(m.itemList.View())
	b.WriteString("\n\n")
	b.WriteString(theme.HelpStyle.Render(m.help.View(m.keys)))
	b.WriteString("\n")

	// Bottom section - fixed 2 lines
	if m.errorManager.HasError() {
		err := m.errorManager.GetError()
		style := theme.ErrorStyle
		if domain.IsConfigError(err) {
			style = theme.ConfigErrorStyle
		}
		b.WriteString(style.Render(formatErrorForDisplay(err, m.width)))
	} else {
		b.WriteString(" \n ")
	}
	return b.String()
}
