// Package action routes a subcommand name to its handler. It holds the
// registry of known actions, the dispatcher that resolves a name and runs
// the handler against a located backend, and the exit-code taxonomy.
package action

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/notebus/notebus/internal/state"
)

// Action is one user-facing operation. The command packages under pkg/cmd
// build an Action from parsed flags; the dispatcher supplies the backend
// handle through the state and invokes Run. The action's name and
// description live on its Registration.
type Action interface {
	Name() string
	Run(ctx context.Context, s *state.State) error
}

// ErrInterrupted marks an operation cut short by the user. Batch handlers
// return it (wrapped) from a checkpoint; the dispatcher warns on stderr
// and the process exits with the dedicated interrupted status.
var ErrInterrupted = errors.New("interrupted")

// ErrTooFewArguments marks an action invoked without the arguments or
// filters it needs to do anything.
var ErrTooFewArguments = errors.New("too few arguments")

// ErrNoMatches is returned by search when nothing matched. It maps to exit
// status 1 with no error message.
var ErrNoMatches = errors.New("no matches")

// Checkpoint reports a pending interruption. Batch handlers call it
// between per-note operations; this is the only point where cancellation
// is observed, so a half-applied per-note operation is never abandoned.
func Checkpoint(ctx context.Context) error {
	select {
	case <-ctx.Done():
		return ErrInterrupted
	default:
		return nil
	}
}

// BatchError aggregates per-note failures from a delete or tag batch. A
// single failing note never aborts the batch; the failures are collected
// and surfaced once the batch is done.
type BatchError struct {
	Op       string
	Failures []error
}

func (e *BatchError) Error() string {
	return fmt.Sprintf("%s: %d note(s) failed", e.Op, len(e.Failures))
}

// UnknownActionError reports a subcommand name that is not registered.
type UnknownActionError struct {
	Name  string
	Valid []string
}

func (e *UnknownActionError) Error() string {
	return fmt.Sprintf(
		"%s is not a valid action (valid actions: %s); use -h for details",
		e.Name,
		strings.Join(e.Valid, ", "),
	)
}

// DuplicateActionError reports a second registration under the same name.
type DuplicateActionError struct {
	Name string
}

func (e *DuplicateActionError) Error() string {
	return fmt.Sprintf("action %q is already registered", e.Name)
}
