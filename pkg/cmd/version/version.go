package version

import (
	"context"
	"fmt"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/spf13/cobra"

	"github.com/notebus/notebus/internal/action"
	"github.com/notebus/notebus/internal/state"
	"github.com/notebus/notebus/pkg/flags"
)

func NewCmdVersion(s *state.State, d *action.Dispatcher) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "version",
		Short: "Print the version of notebus and of the note-taking application.",
		Long: heredoc.Doc(`
			Report the notebus version along with the name and version of
			the note-taking application it is connected to.
		`),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := flags.HandleBackendGroup(cmd, s.Config); err != nil {
				return err
			}
			return d.Run(cmd.Context(), s, &versionAction{})
		},
	}

	flags.AddBackendGroup(cmd)

	return cmd
}

type versionAction struct{}

func (a *versionAction) Name() string { return "version" }

func (a *versionAction) Run(ctx context.Context, s *state.State) error {
	appVersion, err := s.Client.Version(ctx)
	if err != nil {
		return err
	}

	fmt.Fprintf(s.Stdout, "notebus version %s using %s version %s\n",
		s.Version, s.Client.Application(), appVersion)
	return nil
}
