package display

import (
	"context"
	"fmt"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/atotto/clipboard"
	"github.com/spf13/cobra"

	"github.com/notebus/notebus/internal/action"
	"github.com/notebus/notebus/internal/fzf"
	"github.com/notebus/notebus/internal/note"
	"github.com/notebus/notebus/internal/state"
	"github.com/notebus/notebus/pkg/flags"
)

const noteSeparator = "\n==========================\n"

func NewCmdDisplay(s *state.State, d *action.Dispatcher) *cobra.Command {
	a := &displayAction{}

	cmd := &cobra.Command{
		Use:   "display [note_name ...]",
		Short: "Display the content of one or more notes.",
		Long: heredoc.Doc(`
			Print the full content of the named notes to standard output,
			separated by a separator line. The note's tags are shown after
			its title. A name that does not match any note is reported on
			standard error without aborting the remaining notes.

			With no name, a fuzzy finder over all notes picks one.
		`),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := flags.HandleBackendGroup(cmd, s.Config); err != nil {
				return err
			}
			a.names = args
			return d.Run(cmd.Context(), s, a)
		},
	}

	cmd.Flags().BoolVar(&a.copyToClipboard, "copy", false, "Also copy the displayed content to the clipboard.")
	flags.AddBackendGroup(cmd)

	return cmd
}

type displayAction struct {
	names           []string
	copyToClipboard bool
}

func (a *displayAction) Name() string { return "display" }

func (a *displayAction) Run(ctx context.Context, s *state.State) error {
	notes, err := s.Client.ListNotes(ctx)
	if err != nil {
		return err
	}

	var selected []note.Note
	var missing []string
	if len(a.names) == 0 {
		picked, err := fzf.PickNote(notes)
		if err != nil {
			return err
		}
		selected = []note.Note{picked}
	} else {
		selected = note.Select(notes, note.Criteria{
			Names:     a.names,
			Templates: note.TemplateInclude,
		})
		missing = note.MissingNames(notes, a.names)
	}

	var copied string
	for i, n := range selected {
		if i > 0 {
			fmt.Fprint(s.Stdout, noteSeparator+"\n")
		}

		content, err := s.Client.Content(ctx, n)
		if err != nil {
			return err
		}

		fmt.Fprintln(s.Stdout, note.ContentWithTags(n, content))
		copied += content
	}

	if a.copyToClipboard && copied != "" {
		if err := clipboard.WriteAll(copied); err != nil {
			return fmt.Errorf("copying to clipboard: %w", err)
		}
	}

	for _, name := range missing {
		fmt.Fprintf(s.Stderr, "notebus: error: note named %q was not found\n", name)
	}
	if len(missing) > 0 {
		return &note.NotFoundError{Name: missing[0]}
	}
	return nil
}
