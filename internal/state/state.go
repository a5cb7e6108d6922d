// Package state carries the resolved context of one invocation: the
// configuration, the output streams and, once the dispatcher has located
// it, the backend handle. It is assembled before dispatch and not modified
// while an action runs.
package state

import (
	"io"

	"github.com/notebus/notebus/internal/backend"
	"github.com/notebus/notebus/internal/config"
)

type State struct {
	Config *config.Config

	// Client is the handle to the bound note application. The dispatcher
	// sets it right before the action runs and releases it afterwards;
	// tests may preset it to skip backend location.
	Client *backend.Client

	Stdout io.Writer
	Stderr io.Writer

	// Version is the notebus build version.
	Version string
}
