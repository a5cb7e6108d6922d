package delete

import (
	"context"
	"fmt"
	"os"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/erikgeiser/promptkit/confirmation"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/notebus/notebus/internal/action"
	"github.com/notebus/notebus/internal/note"
	"github.com/notebus/notebus/internal/state"
	"github.com/notebus/notebus/pkg/flags"
)

func NewCmdDelete(s *state.State, d *action.Dispatcher) *cobra.Command {
	a := &deleteAction{}

	cmd := &cobra.Command{
		Use:   "delete [filters] [note_name ...]",
		Short: "Delete notes by name or by filter.",
		Long: heredoc.Doc(`
			Permanently remove notes from the note-taking application.
			Notes are selected by name, by a filter, or both; with nothing
			selected the action refuses to run. Deleting a book also
			deletes the book's template notes so the whole book goes away;
			use --spare-templates to keep them.

			Examples:
			  notebus delete "An old note"
			  notebus delete -b HGTTG --dry-run
			  notebus delete --all-notes --force
		`),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := flags.HandleBackendGroup(cmd, s.Config); err != nil {
				return err
			}

			criteria, err := flags.Criteria(cmd, args)
			if err != nil {
				return err
			}
			if a.allNotes {
				criteria = note.Criteria{AllNotes: true, Templates: criteria.Templates}
			}
			if criteria.Empty() {
				return fmt.Errorf(
					"no filters or note names given; to delete notes, specify "+
						"a filtering option, note names, or both: %w",
					action.ErrTooFewArguments,
				)
			}

			a.criteria = criteria
			return d.Run(cmd.Context(), s, a)
		},
	}

	cmd.Flags().BoolVar(&a.dryRun, "dry-run", false,
		"Print the notes selected for deletion without deleting anything.")
	cmd.Flags().BoolVar(&a.allNotes, "all-notes", false,
		"Delete every note. There is no turning back; try --dry-run first.")
	cmd.Flags().BoolVar(&a.force, "force", false,
		"Skip the confirmation prompt.")
	flags.AddFilterGroup(cmd, "Delete")
	flags.AddSpareTemplates(cmd)
	flags.AddBackendGroup(cmd)

	return cmd
}

type deleteAction struct {
	dryRun   bool
	allNotes bool
	force    bool
	criteria note.Criteria
}

func (a *deleteAction) Name() string { return "delete" }

func (a *deleteAction) Run(ctx context.Context, s *state.State) error {
	notes, err := s.Client.ListNotes(ctx)
	if err != nil {
		return err
	}

	selected := note.Select(notes, a.criteria)
	missing := note.MissingNames(notes, a.criteria.Names)
	for _, name := range missing {
		fmt.Fprintf(s.Stderr, "notebus: error: note named %q was not found\n", name)
	}

	if a.dryRun {
		fmt.Fprintln(s.Stdout, "The following notes are selected for deletion:")
		for _, n := range selected {
			fmt.Fprintf(s.Stdout, "  %s\n", n.Title)
		}
		if len(missing) > 0 {
			return &note.NotFoundError{Name: missing[0]}
		}
		return nil
	}

	if len(selected) > 0 && !a.force && term.IsTerminal(int(os.Stdin.Fd())) {
		prompt := confirmation.New(
			fmt.Sprintf("Permanently delete %d note(s)?", len(selected)),
			confirmation.No,
		)
		confirmed, err := prompt.RunPrompt()
		if err != nil {
			return err
		}
		if !confirmed {
			fmt.Fprintln(s.Stderr, "Deletion aborted.")
			return nil
		}
	}

	var failures []error
	for _, n := range selected {
		if err := action.Checkpoint(ctx); err != nil {
			return fmt.Errorf("delete: %w", err)
		}

		if err := s.Client.Delete(ctx, n); err != nil {
			failures = append(failures, err)
			fmt.Fprintf(s.Stderr, "notebus: error: could not delete %q: %v\n", n.Title, err)
			continue
		}
		fmt.Fprintf(s.Stdout, "Deleted %q\n", n.Title)
	}

	if len(failures) > 0 {
		return &action.BatchError{Op: "delete", Failures: failures}
	}
	if len(missing) > 0 {
		return &note.NotFoundError{Name: missing[0]}
	}
	return nil
}
