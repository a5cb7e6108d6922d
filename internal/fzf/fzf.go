// Package fzf wraps the fuzzy finder used to pick a note interactively
// when an action that needs exactly one note is given none.
package fzf

import (
	"fmt"
	"strings"

	"github.com/ktr0731/go-fuzzyfinder"

	"github.com/notebus/notebus/internal/note"
)

// PickNote lets the user fuzzy-select one note by title.
func PickNote(notes []note.Note) (note.Note, error) {
	if len(notes) == 0 {
		return note.Note{}, fmt.Errorf("there are no notes to choose from")
	}

	idx, err := fuzzyfinder.Find(
		notes,
		func(i int) string {
			return notes[i].Title
		},
		fuzzyfinder.WithPreviewWindow(func(i, _, _ int) string {
			if i < 0 {
				return ""
			}
			n := notes[i]
			lines := []string{
				n.Listing(),
				"",
				"Modified: " + n.Changed.Format("2006-01-02 15:04"),
			}
			if book := n.Book(); book != "" {
				lines = append(lines, "Book:     "+book)
			}
			if tags := n.UserTags(); len(tags) > 0 {
				lines = append(lines, "Tags:     "+strings.Join(tags, ", "))
			}
			return strings.Join(lines, "\n")
		}),
	)
	if err != nil {
		return note.Note{}, fmt.Errorf("note selection aborted: %w", err)
	}

	return notes[idx], nil
}
