package edit

import (
	"context"
	"fmt"
	"os"
	"os/exec"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/spf13/cobra"

	"github.com/notebus/notebus/internal/action"
	"github.com/notebus/notebus/internal/fzf"
	"github.com/notebus/notebus/internal/note"
	"github.com/notebus/notebus/internal/state"
	"github.com/notebus/notebus/pkg/flags"
)

const fallbackEditor = "vi"

func NewCmdEdit(s *state.State, d *action.Dispatcher) *cobra.Command {
	a := &editAction{}

	cmd := &cobra.Command{
		Use:   "edit [note_name]",
		Short: "Edit a note's content in your text editor.",
		Long: heredoc.Doc(`
			Open one note's content in $EDITOR and write the result back to
			the note-taking application when the editor exits. With no name,
			a fuzzy finder over all notes picks one.

			The first line of the buffer is the note's title; changing it
			renames the note.
		`),
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := flags.HandleBackendGroup(cmd, s.Config); err != nil {
				return err
			}
			if len(args) == 1 {
				a.name = args[0]
			}
			return d.Run(cmd.Context(), s, a)
		},
	}

	flags.AddBackendGroup(cmd)

	return cmd
}

type editAction struct {
	name string
}

func (a *editAction) Name() string { return "edit" }

func (a *editAction) Run(ctx context.Context, s *state.State) error {
	notes, err := s.Client.ListNotes(ctx)
	if err != nil {
		return err
	}

	var target note.Note
	if a.name == "" {
		target, err = fzf.PickNote(notes)
		if err != nil {
			return err
		}
	} else {
		found := false
		for _, n := range notes {
			if n.Title == a.name {
				target, found = n, true
				break
			}
		}
		if !found {
			return &note.NotFoundError{Name: a.name}
		}
	}

	content, err := s.Client.Content(ctx, target)
	if err != nil {
		return err
	}

	edited, changed, err := editInEditor(ctx, content)
	if err != nil {
		return err
	}
	if !changed {
		fmt.Fprintln(s.Stderr, "No changes; note left untouched.")
		return nil
	}

	if err := s.Client.SetContent(ctx, target, edited); err != nil {
		return fmt.Errorf("saving %q: %w", target.Title, err)
	}
	fmt.Fprintf(s.Stdout, "Saved %q\n", target.Title)
	return nil
}

// editInEditor round-trips text through the user's editor and reports
// whether it came back different.
func editInEditor(ctx context.Context, text string) (string, bool, error) {
	f, err := os.CreateTemp("", "notebus-*.txt")
	if err != nil {
		return "", false, err
	}
	path := f.Name()
	defer os.Remove(path)

	if _, err := f.WriteString(text); err != nil {
		f.Close()
		return "", false, err
	}
	if err := f.Close(); err != nil {
		return "", false, err
	}

	editor := os.Getenv("EDITOR")
	if editor == "" {
		editor = fallbackEditor
	}

	cmd := exec.CommandContext(ctx, editor, path)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return "", false, fmt.Errorf("running editor %q: %w", editor, err)
	}

	out, err := os.ReadFile(path)
	if err != nil {
		return "", false, err
	}

	edited := string(out)
	return edited, edited != text, nil
}
