package ui

import (
	"errors"
	"strings"
	"time"
	"unicode/utf8"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/renato0307/swipelist/internal/domain"
)

const (
	maxErrorLines  = 2
	truncationMark = "..."

	codeExceptionPrefix = "List view swipe code exception: "
	configErrorPrefix   = "List view swipe configuration error: "
	genericErrorPrefix  = "Error: "
)

// codeException marks a failure of the swipe machinery that is not a configuration problem
type codeException struct {
	err error
}

func (e *codeException) Error() string { return e.err.Error() }
func (e *codeException) Unwrap() error { return e.err }

// classifySwipeError wraps runtime faults of the swipe machinery as code exceptions
func classifySwipeError(err error) error {
	if err == nil || domain.IsConfigError(err) {
		return err
	}
	return &codeException{err: err}
}

// errorPrefixFor returns the display prefix for err
func errorPrefixFor(err error) string {
	var ce *codeException
	switch {
	case domain.IsConfigError(err):
		return configErrorPrefix
	case errors.As(err, &ce):
		return codeExceptionPrefix
	}
	return genericErrorPrefix
}

// ErrorManager manages error display state and auto-clearing.
type ErrorManager struct {
	currentError    error
	errorClearDelay time.Duration
}

// NewErrorManager creates a new ErrorManager with the specified auto-clear delay.
func NewErrorManager(errorClearDelay time.Duration) *ErrorManager {
	return &ErrorManager{
		errorClearDelay: errorClearDelay,
	}
}

// SetError sets the current error to be displayed.
func (em *ErrorManager) SetError(err error) {
	em.currentError = err
}

// ClearError clears the current error.
func (em *ErrorManager) ClearError() {
	em.currentError = nil
}

// GetError returns the current error.
func (em *ErrorManager) GetError() error {
	return em.currentError
}

// HasError returns true if there is a current error.
func (em *ErrorManager) HasError() bool {
	return em.currentError != nil
}

// ClearAfterDelay returns a tea.Cmd that sends clearErrorMsg after the configured delay.
func (em *ErrorManager) ClearAfterDelay() tea.Cmd {
	return tea.Tick(em.errorClearDelay, func(time.Time) tea.Msg {
		return clearErrorMsg{}
	})
}

// formatErrorForDisplay formats an error message for TUI display.
// It limits the error to maxErrorLines (2 lines) and wraps text based on terminal width.
// The function accounts for the kind prefix when calculating line width.
// If the error message is too long, it truncates with "..." at the end.
func formatErrorForDisplay(err error, maxWidth int) string {
	if err == nil {
		return ""
	}
	errorPrefix := errorPrefixFor(err)

	// Get the error message
	message := err.Error()
	if message == "" {
		return errorPrefix + "unknown error"
	}

	// Calculate available width per line (accounting for "Error: " prefix on first line)
	firstLineWidth := maxWidth - utf8.RuneCountInString(errorPrefix)
	if firstLineWidth < 10 {
		firstLineWidth = 10 // Minimum width to prevent edge cases
	}

	otherLineWidth := maxWidth
	if otherLineWidth < 10 {
		otherLineWidth = 10
	}

	// Split message into words
	words := strings.Fields(message)
	if len(words) == 0 {
		return errorPrefix + message
	}

	// Build lines
	var lines []string
	var currentLine strings.Builder
	currentLineWidth := firstLineWidth

	for _, word := range words {
		wordLen := utf8.RuneCountInString(word)
		currentLen := utf8.RuneCountInString(currentLine.String())

		// Check if adding this word would exceed the current line width
		if currentLen > 0 && currentLen+1+wordLen > currentLineWidth {
			// Save current line and start a new one
			lines = append(lines, currentLine.String())
			currentLine.Reset()

			// Check if we've reached max lines
			if len(lines) >= maxErrorLines {
				break
			}

			// Switch to other line width after first line
			currentLineWidth = otherLineWidth
		}

		// Add word to current line
		if currentLine.Len() > 0 {
			currentLine.WriteString(" ")
		}
		currentLine.WriteString(word)
	}

	// Add the last line if there's content and we haven't exceeded max lines
	if currentLine.Len() > 0 && len(lines) < maxErrorLines {
		lines = append(lines, currentLine.String())
	}

	// If we have exactly maxErrorLines and there are more words, add truncation mark
	if len(lines) == maxErrorLines && len(words) > 0 {
		lastLine := lines[maxErrorLines-1]
		truncLen := utf8.RuneCountInString(truncationMark)

		// If the last line is too long, truncate it to make room for "..."
		if utf8.RuneCountInString(lastLine)+truncLen > otherLineWidth {
			// Calculate how many runes we can keep
			maxRunes := otherLineWidth - truncLen
			if maxRunes > 0 {
				runes := []rune(lastLine)
				if len(runes) > maxRunes {
					lastLine = string(runes[:maxRunes])
				}
			}
		}

		lines[maxErrorLines-1] = lastLine + truncationMark
	}

	// Combine lines with newlines
	if len(lines) == 0 {
		return errorPrefix
	}

	// Add "Error: " prefix to first line
	result := errorPrefix + lines[0]
	if len(lines) > 1 {
		result += "\n" + strings.Join(lines[1:], "\n")
	}

	return result
}
