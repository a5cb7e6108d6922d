package list

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/araddon/dateparse"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/notebus/notebus/internal/action"
	"github.com/notebus/notebus/internal/note"
	"github.com/notebus/notebus/internal/state"
	"github.com/notebus/notebus/pkg/flags"
)

var (
	dateStyle = lipgloss.NewStyle().Faint(true)
	tagStyle  = lipgloss.NewStyle().Faint(true).Italic(true)
)

func NewCmdList(s *state.State, d *action.Dispatcher) *cobra.Command {
	a := &listAction{}

	cmd := &cobra.Command{
		Use:   "list [-n <num>] [--since <date>] [filters]",
		Short: "List information about all or a filtered set of notes.",
		Long: heredoc.Doc(`
			Print the modification date, title and tags of notes, one per
			line. With no filter, all notes are listed; template notes are
			hidden unless --with-templates is given.

			Examples:
			  notebus list
			  notebus list -n 10
			  notebus list -b HGTTG --since "last monday"
		`),
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := flags.HandleBackendGroup(cmd, s.Config); err != nil {
				return err
			}

			criteria, err := flags.Criteria(cmd, nil)
			if err != nil {
				return err
			}
			if a.since != "" {
				if a.sinceTime, err = dateparse.ParseAny(a.since); err != nil {
					return fmt.Errorf("cannot parse --since value %q: %w", a.since, err)
				}
			}

			// Listing everything hides templates unless asked for,
			// matching what the applications show in their own search
			// window.
			if criteria.Empty() {
				criteria.AllNotes = true
				if criteria.Templates == note.TemplateDefault {
					criteria.Templates = note.TemplateExclude
				}
			}
			a.criteria = criteria

			return d.Run(cmd.Context(), s, a)
		},
	}

	cmd.Flags().IntVarP(&a.limit, "limit", "n", 0, "Limit the number of notes listed.")
	cmd.Flags().StringVar(&a.since, "since", "", "Only list notes modified on or after the given date.")
	flags.AddFilterGroup(cmd, "List")
	flags.AddWithTemplates(cmd)
	flags.AddBackendGroup(cmd)

	return cmd
}

type listAction struct {
	limit     int
	since     string
	sinceTime time.Time
	criteria  note.Criteria
}

func (a *listAction) Name() string { return "list" }

func (a *listAction) Run(ctx context.Context, s *state.State) error {
	notes, err := s.Client.ListNotes(ctx)
	if err != nil {
		return err
	}

	selected := note.Select(notes, a.criteria)

	if a.since != "" {
		kept := selected[:0]
		for _, n := range selected {
			if !n.Changed.Before(a.sinceTime) {
				kept = append(kept, n)
			}
		}
		selected = kept
	}

	if a.limit > 0 && len(selected) > a.limit {
		selected = selected[:a.limit]
	}

	for _, n := range selected {
		fmt.Fprintln(s.Stdout, listing(n))
	}
	return nil
}

func listing(n note.Note) string {
	title := n.Title
	if title == "" {
		title = "_note doesn't have a name_"
	}

	line := fmt.Sprintf(
		"%s | %s",
		dateStyle.Render(n.Changed.Format("2006-01-02")),
		title,
	)
	if len(n.Tags) > 0 {
		line += tagStyle.Render(fmt.Sprintf("  (%s)", strings.Join(n.Tags, ", ")))
	}
	return line
}
