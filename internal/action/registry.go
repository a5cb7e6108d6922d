package action

import (
	"github.com/spf13/cobra"

	"github.com/notebus/notebus/internal/state"
)

// BuildFunc constructs the cobra command for one action. The command's
// RunE binds the parsed flags into the action value and hands it to the
// dispatcher.
type BuildFunc func(s *state.State, d *Dispatcher) *cobra.Command

// Registration ties an action name to its short description and command
// builder.
type Registration struct {
	Name  string
	Short string
	Build BuildFunc
}

// Registry maps subcommand names to registrations. Names are unique.
type Registry struct {
	order  []string
	byName map[string]Registration
}

func NewRegistry() *Registry {
	return &Registry{byName: make(map[string]Registration)}
}

// Register adds a registration. Registering a name twice is an error.
func (r *Registry) Register(reg Registration) error {
	if _, exists := r.byName[reg.Name]; exists {
		return &DuplicateActionError{Name: reg.Name}
	}
	r.byName[reg.Name] = reg
	r.order = append(r.order, reg.Name)
	return nil
}

// Resolve returns the registration for a name, or an UnknownActionError
// listing the valid names.
func (r *Registry) Resolve(name string) (Registration, error) {
	reg, ok := r.byName[name]
	if !ok {
		return Registration{}, &UnknownActionError{Name: name, Valid: r.Names()}
	}
	return reg, nil
}

// Has reports whether a name is registered.
func (r *Registry) Has(name string) bool {
	_, ok := r.byName[name]
	return ok
}

// All returns every registration in registration order. The top-level help
// renders actions in this order.
func (r *Registry) All() []Registration {
	regs := make([]Registration, 0, len(r.order))
	for _, name := range r.order {
		regs = append(regs, r.byName[name])
	}
	return regs
}

// Names returns the registered names in registration order.
func (r *Registry) Names() []string {
	return append([]string(nil), r.order...)
}
