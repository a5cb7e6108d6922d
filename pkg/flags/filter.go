// Package flags provides the option groups shared by several actions: the
// note-filtering group and the backend-selection group.
package flags

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/notebus/notebus/internal/config"
	"github.com/notebus/notebus/internal/note"
)

// AddFilterGroup adds the filtering options common to list, search, delete
// and tag. The verb is spliced into the help text ("List notes...",
// "Delete notes...").
func AddFilterGroup(cmd *cobra.Command, verb string) {
	cmd.Flags().StringArrayP(
		"book", "b", nil,
		fmt.Sprintf(
			"%s notes belonging to the given book. A book is a shortcut for the tag "+
				"\"%s<name>\". Repeat for each desired book.",
			verb, note.BookPrefix,
		),
	)
	cmd.Flags().BoolP(
		"no-book", "B", false,
		fmt.Sprintf("%s notes that are not part of any book.", verb),
	)
	cmd.Flags().StringArrayP(
		"tag", "t", nil,
		fmt.Sprintf(
			"%s notes carrying the given raw tag. Repeat for each desired tag.",
			verb,
		),
	)
	cmd.Flags().BoolP(
		"no-tag", "T", false,
		fmt.Sprintf("%s notes with no tags at all.", verb),
	)
}

// AddWithTemplates adds the --with-templates option used by the read-only
// actions, which hide templates unless asked.
func AddWithTemplates(cmd *cobra.Command) {
	cmd.Flags().Bool(
		"with-templates", false,
		"Include template notes in the selection.",
	)
}

// AddSpareTemplates adds the --spare-templates option used by the mutating
// actions, which keep a book's templates with the book unless asked.
func AddSpareTemplates(cmd *cobra.Command) {
	cmd.Flags().Bool(
		"spare-templates", false,
		"Leave template notes alone even when a book or tag selects them.",
	)
}

// Criteria assembles the note selection criteria from the filter group and
// the positional note names.
func Criteria(cmd *cobra.Command, names []string) (note.Criteria, error) {
	books, err := cmd.Flags().GetStringArray("book")
	if err != nil {
		return note.Criteria{}, err
	}
	noBook, err := cmd.Flags().GetBool("no-book")
	if err != nil {
		return note.Criteria{}, err
	}
	tags, err := cmd.Flags().GetStringArray("tag")
	if err != nil {
		return note.Criteria{}, err
	}
	noTags, err := cmd.Flags().GetBool("no-tag")
	if err != nil {
		return note.Criteria{}, err
	}

	c := note.Criteria{
		Books:  books,
		NoBook: noBook,
		Tags:   tags,
		NoTags: noTags,
		Names:  names,
	}

	if with, _ := cmd.Flags().GetBool("with-templates"); with {
		c.Templates = note.TemplateInclude
	}
	if spare, _ := cmd.Flags().GetBool("spare-templates"); spare {
		c.Templates = note.TemplateExclude
	}

	return c, nil
}

// AddBackendGroup adds the options every action accepts for reaching the
// note application.
func AddBackendGroup(cmd *cobra.Command) {
	cmd.Flags().String(
		"application", "",
		"Application to connect to; one of Tomboy or Gnote. Defaults to autodetection.",
	)
	cmd.Flags().String(
		"display", "",
		"X display the note application is running on.",
	)
}

// HandleBackendGroup resolves the effective backend selection into the
// configuration, flag over file, and exports the chosen display. It is the
// last step of assembling the invocation context, before dispatch.
func HandleBackendGroup(cmd *cobra.Command, cfg *config.Config) error {
	app, err := cmd.Flags().GetString("application")
	if err != nil {
		return err
	}
	if app != "" {
		if app != "Tomboy" && app != "Gnote" {
			return fmt.Errorf("application must be one of Tomboy or Gnote, got %q", app)
		}
		cfg.Application = app
	}

	display, err := cmd.Flags().GetString("display")
	if err != nil {
		return err
	}
	switch {
	case display != "":
		return os.Setenv("DISPLAY", display)
	case cfg.Display != "" && os.Getenv("DISPLAY") == "":
		return os.Setenv("DISPLAY", cfg.Display)
	}
	return nil
}
