package editor

import (
	"fmt"
	"os"
	"os/exec"
	"strings"

	"github.com/renato0307/swipelist/internal/logging"
	"github.com/renato0307/swipelist/internal/ports"
)

// Opener implements ports.NoteEditor with an external text editor
type Opener struct {
	editor string
}

// Verify interface compliance at compile time
var _ ports.NoteEditor = (*Opener)(nil)

// NewOpener creates a new editor opener.
// Priority: cliEditor → $SWIPELIST_EDITOR → $VISUAL → $EDITOR → platform defaults
func NewOpener(cliEditor string) *Opener {
	return &Opener{editor: cliEditor}
}

// Edit opens text in the editor, waits for it to exit and returns the saved text
func (o *Opener) Edit(text string) (string, error) {
	f, err := os.CreateTemp("", "swipelist-note-*.txt")
	if err != nil {
		return "", fmt.Errorf("failed to create note file: %w", err)
	}
	path := f.Name()
	defer os.Remove(path)

	if _, err := f.WriteString(text); err != nil {
		f.Close()
		return "", fmt.Errorf("failed to write note file: %w", err)
	}
	if err := f.Close(); err != nil {
		return "", fmt.Errorf("failed to write note file: %w", err)
	}

	editor, args := findEditor(path, o.editor)
	if editor == "" {
		return "", fmt.Errorf("no suitable editor found. Set --editor flag, $SWIPELIST_EDITOR, $VISUAL, or $EDITOR")
	}

	logging.Logger.Info("Opening editor", "editor", editor, "path", path)

	cmd := exec.Command(editor, args...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		logging.Logger.Warn("Editor exited with error", "error", err, "editor", editor)
		return "", fmt.Errorf("editor failed: %w", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read note file: %w", err)
	}
	return strings.TrimSpace(string(data)), nil
}

func findEditor(path string, cliEditor string) (string, []string) {
	// 1. CLI flag takes precedence
	if cliEditor != "" {
		return cliEditor, []string{path}
	}

	// 2. Check SWIPELIST_EDITOR
	if editor := os.Getenv("SWIPELIST_EDITOR"); editor != "" {
		return editor, []string{path}
	}

	// 3. Check VISUAL
	if editor := os.Getenv("VISUAL"); editor != "" {
		return editor, []string{path}
	}

	// 4. Check EDITOR
	if editor := os.Getenv("EDITOR"); editor != "" {
		return editor, []string{path}
	}

	// 5. Platform-specific defaults
	return findPlatformEditor(path)
}
