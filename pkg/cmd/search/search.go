package search

import (
	"context"
	"fmt"
	"strings"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/spf13/cobra"

	"github.com/notebus/notebus/internal/action"
	"github.com/notebus/notebus/internal/note"
	"github.com/notebus/notebus/internal/state"
	"github.com/notebus/notebus/pkg/flags"
)

func NewCmdSearch(s *state.State, d *action.Dispatcher) *cobra.Command {
	a := &searchAction{}

	cmd := &cobra.Command{
		Use:   "search <pattern> [note_name ...] [filters]",
		Short: "Search for text in all or a filtered set of notes.",
		Long: heredoc.Doc(`
			Perform a case-insensitive text search over note contents.
			Every occurrence is reported as "title : line number : line".
			If nothing is found, nothing is printed and the exit status
			is 1.

			Examples:
			  notebus search towel
			  notebus search -b HGTTG "don't panic"
		`),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := flags.HandleBackendGroup(cmd, s.Config); err != nil {
				return err
			}
			if len(args) < 1 {
				return fmt.Errorf(
					"you must specify a pattern to perform a search: %w",
					action.ErrTooFewArguments,
				)
			}

			criteria, err := flags.Criteria(cmd, args[1:])
			if err != nil {
				return err
			}
			if criteria.Empty() {
				criteria.AllNotes = true
				if criteria.Templates == note.TemplateDefault {
					criteria.Templates = note.TemplateExclude
				}
			}

			a.pattern = args[0]
			a.criteria = criteria
			return d.Run(cmd.Context(), s, a)
		},
	}

	flags.AddFilterGroup(cmd, "Search")
	flags.AddWithTemplates(cmd)
	flags.AddBackendGroup(cmd)

	return cmd
}

type searchAction struct {
	pattern  string
	criteria note.Criteria
}

func (a *searchAction) Name() string { return "search" }

func (a *searchAction) Run(ctx context.Context, s *state.State) error {
	notes, err := s.Client.ListNotes(ctx)
	if err != nil {
		return err
	}

	pattern := strings.ToLower(a.pattern)
	found := false

	for _, n := range note.Select(notes, a.criteria) {
		content, err := s.Client.Content(ctx, n)
		if err != nil {
			return err
		}

		// The first line repeats the title; search the body only.
		lines := strings.Split(content, "\n")
		if len(lines) > 0 {
			lines = lines[1:]
		}

		for i, line := range lines {
			if strings.Contains(strings.ToLower(line), pattern) {
				found = true
				fmt.Fprintf(s.Stdout, "%s : %d : %s\n", n.Title, i, line)
			}
		}
	}

	if !found {
		return action.ErrNoMatches
	}
	return nil
}
