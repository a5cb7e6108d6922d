// Package cmd assembles the notebus command line: it registers every
// action, parses the top-level invocation and maps the outcome to an exit
// status.
package cmd

import (
	"github.com/notebus/notebus/internal/action"
	"github.com/notebus/notebus/pkg/cmd/delete"
	"github.com/notebus/notebus/pkg/cmd/display"
	"github.com/notebus/notebus/pkg/cmd/edit"
	"github.com/notebus/notebus/pkg/cmd/list"
	"github.com/notebus/notebus/pkg/cmd/search"
	"github.com/notebus/notebus/pkg/cmd/tag"
	"github.com/notebus/notebus/pkg/cmd/version"
)

// register wires every action into the registry. The order here is the
// order the top-level help lists them in.
func register(reg *action.Registry) error {
	regs := []action.Registration{
		{
			Name:  "list",
			Short: "List notes, optionally limited or filtered.",
			Build: list.NewCmdList,
		},
		{
			Name:  "display",
			Short: "Display the content of one or more notes.",
			Build: display.NewCmdDisplay,
		},
		{
			Name:  "search",
			Short: "Search for text in all or a filtered set of notes.",
			Build: search.NewCmdSearch,
		},
		{
			Name:  "edit",
			Short: "Edit a note's content in your text editor.",
			Build: edit.NewCmdEdit,
		},
		{
			Name:  "tag",
			Short: "Add or remove a tag on a set of notes.",
			Build: tag.NewCmdTag,
		},
		{
			Name:  "delete",
			Short: "Delete notes by name or by filter.",
			Build: delete.NewCmdDelete,
		},
		{
			Name:  "version",
			Short: "Print the version of notebus and of the note-taking application.",
			Build: version.NewCmdVersion,
		},
	}

	for _, r := range regs {
		if err := reg.Register(r); err != nil {
			return err
		}
	}
	return nil
}
