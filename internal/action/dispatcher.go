package action

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/notebus/notebus/internal/backend"
	"github.com/notebus/notebus/internal/state"
)

// Phase tracks the dispatcher through one invocation.
type Phase int

const (
	PhaseIdle Phase = iota
	PhaseResolving
	PhaseRunning
	PhaseCompleted
	PhaseFailed
	PhaseInterrupted
)

func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseResolving:
		return "resolving"
	case PhaseRunning:
		return "running"
	case PhaseCompleted:
		return "completed"
	case PhaseFailed:
		return "failed"
	case PhaseInterrupted:
		return "interrupted"
	default:
		return "unknown"
	}
}

// ConnectFunc opens the session bus connection. Production uses
// backend.Connect; tests substitute fakes.
type ConnectFunc func(ctx context.Context) (backend.Bus, error)

// Dispatcher resolves a subcommand name against the registry and runs the
// action with a located backend handle. One dispatcher serves one
// invocation; it is not safe for concurrent use and does not need to be.
type Dispatcher struct {
	registry *Registry
	connect  ConnectFunc
	stderr   io.Writer
	phase    Phase
}

func NewDispatcher(reg *Registry, stderr io.Writer) *Dispatcher {
	return &Dispatcher{
		registry: reg,
		connect:  backend.Connect,
		stderr:   stderr,
	}
}

// SetConnect replaces the bus connector. Tests use it to fail or fake the
// connection step.
func (d *Dispatcher) SetConnect(connect ConnectFunc) {
	d.connect = connect
}

// Registry returns the registry the dispatcher resolves against.
func (d *Dispatcher) Registry() *Registry {
	return d.registry
}

// Phase returns the dispatcher's current phase.
func (d *Dispatcher) Phase() Phase {
	return d.phase
}

// Dispatch resolves a name and executes the action's command with the
// given arguments. No backend connection is opened until the name has
// resolved, so an unknown action never touches the bus.
func (d *Dispatcher) Dispatch(ctx context.Context, s *state.State, name string, args []string) error {
	d.phase = PhaseResolving

	reg, err := d.registry.Resolve(name)
	if err != nil {
		d.phase = PhaseFailed
		return err
	}

	cmd := reg.Build(s, d)
	cmd.SetArgs(args)
	cmd.SetOut(s.Stdout)
	cmd.SetErr(s.Stderr)
	cmd.SilenceUsage = true
	cmd.SilenceErrors = true

	return cmd.ExecuteContext(ctx)
}

// Run locates the backend, invokes the action and settles the final
// phase. The bus connection is released on every exit path. A canceled
// context or an ErrInterrupted from the action ends in the Interrupted
// phase with a warning on stderr; the handler has already been given its
// chance to reach a consistent stopping point.
func (d *Dispatcher) Run(ctx context.Context, s *state.State, act Action) error {
	d.phase = PhaseRunning

	if s.Client == nil {
		bus, err := d.connect(ctx)
		if err != nil {
			d.phase = PhaseFailed
			return err
		}

		client, err := backend.Locate(bus, backend.ServiceName(s.Config.Application))
		if err != nil {
			bus.Close()
			d.phase = PhaseFailed
			return err
		}

		s.Client = client
		defer func() {
			client.Close()
			s.Client = nil
		}()
	}

	err := act.Run(ctx, s)

	switch {
	case err == nil && ctx.Err() == nil:
		d.phase = PhaseCompleted
		return nil
	case errors.Is(err, ErrInterrupted) || errors.Is(err, context.Canceled) || ctx.Err() != nil:
		d.phase = PhaseInterrupted
		fmt.Fprintf(
			d.stderr,
			"notebus: warning: %s was interrupted; work done so far has been kept\n",
			act.Name(),
		)
		if err == nil || !errors.Is(err, ErrInterrupted) {
			err = fmt.Errorf("%s: %w", act.Name(), ErrInterrupted)
		}
		return err
	default:
		d.phase = PhaseFailed
		return err
	}
}
