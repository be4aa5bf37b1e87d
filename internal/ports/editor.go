package ports

// NoteEditor edits a note in an external program
type NoteEditor interface {
	Edit(text string) (string, error)
}
