package tag

import (
	"context"
	"fmt"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/spf13/cobra"

	"github.com/notebus/notebus/internal/action"
	"github.com/notebus/notebus/internal/note"
	"github.com/notebus/notebus/internal/state"
	"github.com/notebus/notebus/pkg/flags"
)

func NewCmdTag(s *state.State, d *action.Dispatcher) *cobra.Command {
	a := &tagAction{}

	cmd := &cobra.Command{
		Use:   "tag <tag_name> [filters] [note_name ...]",
		Short: "Add or remove a tag on a set of notes.",
		Long: heredoc.Doc(`
			Add a tag to the selected notes, or remove one with --remove.
			--remove-all strips every tag from the selected notes. Notes
			are selected by name, by a filter, or both; with nothing
			selected the action refuses to run.

			Tags with the "system:" prefix are reserved by the
			applications; "system:notebook:<name>" places a note inside a
			book.

			Examples:
			  notebus tag urgent "A note"
			  notebus tag --remove urgent -b Work
			  notebus tag --remove-all -T "An untagged mess"
		`),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := flags.HandleBackendGroup(cmd, s.Config); err != nil {
				return err
			}

			names := args
			if !a.removeAll {
				if len(args) < 1 {
					return fmt.Errorf(
						"you must specify a tag name: %w", action.ErrTooFewArguments,
					)
				}
				a.tag = args[0]
				names = args[1:]
			}

			criteria, err := flags.Criteria(cmd, names)
			if err != nil {
				return err
			}
			if criteria.Empty() {
				return fmt.Errorf(
					"no filters or note names given; specify the notes to modify "+
						"with a filtering option, note names, or both: %w",
					action.ErrTooFewArguments,
				)
			}

			a.criteria = criteria
			return d.Run(cmd.Context(), s, a)
		},
	}

	cmd.Flags().BoolVar(&a.remove, "remove", false, "Remove the tag from the selected notes.")
	cmd.Flags().BoolVar(&a.removeAll, "remove-all", false, "Remove every tag from the selected notes.")
	flags.AddFilterGroup(cmd, "Modify")
	flags.AddSpareTemplates(cmd)
	flags.AddBackendGroup(cmd)

	return cmd
}

type tagAction struct {
	tag       string
	remove    bool
	removeAll bool
	criteria  note.Criteria
}

func (a *tagAction) Name() string { return "tag" }

func (a *tagAction) Run(ctx context.Context, s *state.State) error {
	notes, err := s.Client.ListNotes(ctx)
	if err != nil {
		return err
	}

	selected := note.Select(notes, a.criteria)
	missing := note.MissingNames(notes, a.criteria.Names)
	for _, name := range missing {
		fmt.Fprintf(s.Stderr, "notebus: error: note named %q was not found\n", name)
	}

	var failures []error
	for _, n := range selected {
		if err := action.Checkpoint(ctx); err != nil {
			return fmt.Errorf("tag: %w", err)
		}

		if err := a.apply(ctx, s, n); err != nil {
			failures = append(failures, err)
			fmt.Fprintf(s.Stderr, "notebus: error: %v\n", err)
		}
	}

	if len(failures) > 0 {
		return &action.BatchError{Op: "tag", Failures: failures}
	}
	if len(missing) > 0 {
		return &note.NotFoundError{Name: missing[0]}
	}
	return nil
}

func (a *tagAction) apply(ctx context.Context, s *state.State, n note.Note) error {
	switch {
	case a.removeAll:
		for _, t := range n.Tags {
			if err := s.Client.RemoveTag(ctx, n, t); err != nil {
				return fmt.Errorf("removing tag %q from %q: %w", t, n.Title, err)
			}
		}
		return nil
	case a.remove:
		if !n.HasTag(a.tag) {
			return fmt.Errorf("tag %q not found on note %q", a.tag, n.Title)
		}
		if err := s.Client.RemoveTag(ctx, n, a.tag); err != nil {
			return fmt.Errorf("removing tag %q from %q: %w", a.tag, n.Title, err)
		}
		return nil
	default:
		if n.HasTag(a.tag) {
			return nil
		}
		if err := s.Client.AddTag(ctx, n, a.tag); err != nil {
			return fmt.Errorf("adding tag %q to %q: %w", a.tag, n.Title, err)
		}
		return nil
	}
}
