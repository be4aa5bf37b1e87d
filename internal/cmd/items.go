package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/renato0307/swipelist/internal/adapters/editor"
	"github.com/renato0307/swipelist/internal/logging"
	"github.com/renato0307/swipelist/internal/ports"
	"github.com/renato0307/swipelist/internal/services"
)

// ItemsCmd manages list items
type ItemsCmd struct {
	Add     ItemsAddCmd     `cmd:"add" help:"Add a new item"`
	Archive ItemsArchiveCmd `cmd:"archive" help:"Archive or unarchive an item"`
	Del     ItemsDelCmd     `cmd:"del" help:"Delete an item"`
	Flag    ItemsFlagCmd    `cmd:"flag" help:"Toggle item flag"`
	List    ItemsListCmd    `cmd:"list" help:"List all items" default:"1"`
	Note    ItemsNoteCmd    `cmd:"note" help:"Set or clear the note of an item"`
}

// ItemsListCmd lists items
type ItemsListCmd struct {
	Archived bool   `help:"Include archived items" short:"a"`
	Format   string `help:"Output format: table or json" enum:"table,json" default:"table"`
}

// Run executes the list command
func (s *ItemsListCmd) Run(cli *CLI) error {
	items, err := cli.Container.ItemService.List(context.Background(), s.Archived)
	if err != nil {
		return fmt.Errorf("failed to list items: %w", err)
	}

	if s.Format == "json" {
		data, err := json.MarshalIndent(items, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal JSON: %w", err)
		}
		fmt.Println(string(data))
		return nil
	}

	if len(items) == 0 {
		fmt.Println("No items")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 3, ' ', 0)
	fmt.Fprintln(w, "ID\tTitle\tFlag\tArchived\tNote")
	fmt.Fprintln(w, "──\t─────\t────\t────────\t────")
	for _, item := range items {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
			item.ID,
			item.Title,
			yesOrDash(item.IsFlagged),
			yesOrDash(item.IsArchived),
			strings.ReplaceAll(item.Note, "\n", " "))
	}
	return w.Flush()
}

func yesOrDash(v bool) string {
	if v {
		return "yes"
	}
	return "-"
}

// ItemsAddCmd adds an item
type ItemsAddCmd struct {
	Note  string `help:"Optional note" short:"n"`
	Title string `arg:"" help:"Item title"`
}

// Run executes the add command
func (s *ItemsAddCmd) Run(cli *CLI) error {
	item, err := cli.Container.ItemService.Add(context.Background(), services.AddItemParams{
		Note:  s.Note,
		Title: s.Title,
	})
	if err != nil {
		return fmt.Errorf("failed to add item: %w", err)
	}

	fmt.Printf("Item '%s' added with ID %s\n", item.Title, item.ID)
	return nil
}

// ItemsArchiveCmd toggles the archived state of an item
type ItemsArchiveCmd struct {
	ID string `arg:"" help:"Item ID"`
}

// Run executes the archive command
func (s *ItemsArchiveCmd) Run(cli *CLI) error {
	ctx := context.Background()
	item, err := cli.Container.ItemService.Get(ctx, s.ID)
	if err != nil {
		return fmt.Errorf("item not found: %w", err)
	}

	if item.IsArchived {
		if err := cli.Container.ItemService.Unarchive(ctx, s.ID); err != nil {
			return fmt.Errorf("failed to unarchive item: %w", err)
		}
		fmt.Printf("Item '%s' unarchived\n", item.Title)
		return nil
	}

	if err := cli.Container.ItemService.Archive(ctx, s.ID); err != nil {
		return fmt.Errorf("failed to archive item: %w", err)
	}
	fmt.Printf("Item '%s' archived\n", item.Title)
	return nil
}

// ItemsDelCmd deletes an item
type ItemsDelCmd struct {
	Force bool   `help:"Delete without confirmation" short:"f"`
	ID    string `arg:"" help:"Item ID"`
}

// Run executes the del command
func (s *ItemsDelCmd) Run(cli *CLI) error {
	ctx := context.Background()
	item, err := cli.Container.ItemService.Get(ctx, s.ID)
	if err != nil {
		return fmt.Errorf("item not found: %w", err)
	}

	if !s.Force && !confirm(fmt.Sprintf("Delete item '%s'?", item.Title)) {
		fmt.Println("Cancelled")
		return nil
	}

	if err := cli.Container.ItemService.Delete(ctx, s.ID); err != nil {
		logging.Logger.Error("Failed to delete item", "id", s.ID, "error", err)
		return fmt.Errorf("failed to delete item: %w", err)
	}

	fmt.Printf("Item '%s' deleted\n", item.Title)
	return nil
}

// ItemsFlagCmd toggles the flag of an item
type ItemsFlagCmd struct {
	ID string `arg:"" help:"Item ID"`
}

// Run executes the flag command
func (s *ItemsFlagCmd) Run(cli *CLI) error {
	ctx := context.Background()
	item, err := cli.Container.ItemService.Get(ctx, s.ID)
	if err != nil {
		return fmt.Errorf("item not found: %w", err)
	}

	if err := cli.Container.ItemService.ToggleFlag(ctx, s.ID); err != nil {
		return fmt.Errorf("failed to toggle flag: %w", err)
	}

	if item.IsFlagged {
		fmt.Printf("Item '%s' unflagged\n", item.Title)
	} else {
		fmt.Printf("Item '%s' flagged\n", item.Title)
	}
	return nil
}

// ItemsNoteCmd sets the note of an item
type ItemsNoteCmd struct {
	Clear  bool   `help:"Remove the note" short:"c"`
	Edit   bool   `help:"Edit the note in an external editor" short:"e"`
	Editor string `help:"Editor to use with --edit (overrides $SWIPELIST_EDITOR, $VISUAL, $EDITOR)"`
	ID     string `arg:"" help:"Item ID"`
	Note   string `arg:"" optional:"" help:"Note text"`
}

// Run executes the note command
func (s *ItemsNoteCmd) Run(cli *CLI) error {
	return s.run(cli.Container.ItemService, editor.NewOpener(s.Editor))
}

func (s *ItemsNoteCmd) run(items *services.ItemService, noteEditor ports.NoteEditor) error {
	ctx := context.Background()

	var note string
	switch {
	case s.Clear:
	case s.Edit:
		item, err := items.Get(ctx, s.ID)
		if err != nil {
			return fmt.Errorf("item not found: %w", err)
		}
		if note, err = noteEditor.Edit(item.Note); err != nil {
			return err
		}
		if note == item.Note {
			fmt.Println("Note unchanged")
			return nil
		}
	case s.Note != "":
		note = s.Note
	default:
		return fmt.Errorf("provide a note, --edit or --clear")
	}

	if err := items.UpdateNote(ctx, s.ID, note); err != nil {
		return err
	}

	fmt.Println("Note updated")
	return nil
}

func confirm(question string) bool {
	fmt.Printf("%s (y/N): ", question)
	var response string
	fmt.Scanln(&response)
	return response == "y" || response == "Y"
}
