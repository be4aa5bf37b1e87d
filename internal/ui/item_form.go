package ui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/renato0307/swipelist/internal/domain"
)

// ItemFormResult contains the values entered in an ItemForm
type ItemFormResult struct {
	Cancelled bool
	ItemID    string
	Note      string
	Title     string
}

// ItemForm is a Bubble Tea component for adding an item or editing its note
type ItemForm struct {
	Completed bool
	form      *huh.Form
	result    ItemFormResult
}

// NewItemForm creates the form that adds a new item
func NewItemForm() *ItemForm {
	f := &ItemForm{}
	f.form = huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Title").
				Value(&f.result.Title).
				Validate(func(s string) error {
					if strings.TrimSpace(s) == "" {
						return fmt.Errorf("title is required")
					}
					return nil
				}),
			huh.NewText().
				Title("Note").
				Description("Optional").
				Value(&f.result.Note).
				CharLimit(500),
		),
	)
	return f
}

// NewNoteForm creates the form that edits the note of item
func NewNoteForm(item domain.Item) *ItemForm {
	f := &ItemForm{
		result: ItemFormResult{
			ItemID: item.ID,
			Note:   item.Note, // Preload the current note for editing
			Title:  item.Title,
		},
	}
	f.form = huh.NewForm(
		huh.NewGroup(
			huh.NewText().
				Title(item.Title).
				Description("Note (empty to delete)").
				Value(&f.result.Note).
				CharLimit(500),
		),
	)
	return f
}

func (f *ItemForm) Init() tea.Cmd {
	return f.form.Init()
}

func (f *ItemForm) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	// Handle Escape or Ctrl+C to cancel
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		if keyMsg.String() == "esc" || keyMsg.String() == "ctrl+c" {
			f.result.Cancelled = true
			f.Completed = true
			return f, nil
		}
	}

	form, cmd := f.form.Update(msg)
	if hf, ok := form.(*huh.Form); ok {
		f.form = hf
	}

	switch f.form.State {
	case huh.StateCompleted:
		f.result.Note = strings.TrimSpace(f.result.Note)
		f.Completed = true
	case huh.StateAborted:
		f.result.Cancelled = true
		f.Completed = true
	}
	return f, cmd
}

func (f *ItemForm) View() string {
	return f.form.View()
}

// Result returns the entered values
func (f *ItemForm) Result() ItemFormResult {
	return f.result
}
