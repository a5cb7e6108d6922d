package action

import (
	"errors"
	"reflect"
	"testing"

	"github.com/spf13/cobra"

	"github.com/notebus/notebus/internal/state"
)

func buildNoop(*state.State, *Dispatcher) *cobra.Command {
	return &cobra.Command{}
}

func TestRegistryRejectsDuplicates(t *testing.T) {
	r := NewRegistry()
	if err := r.Register(Registration{Name: "list", Build: buildNoop}); err != nil {
		t.Fatalf("first registration failed: %v", err)
	}

	err := r.Register(Registration{Name: "list", Build: buildNoop})
	var dup *DuplicateActionError
	if !errors.As(err, &dup) {
		t.Fatalf("expected DuplicateActionError, got %v", err)
	}
	if dup.Name != "list" {
		t.Fatalf("DuplicateActionError.Name = %q, want %q", dup.Name, "list")
	}
}

func TestRegistryResolveUnknownListsValidNames(t *testing.T) {
	r := NewRegistry()
	for _, name := range []string{"list", "display", "delete"} {
		if err := r.Register(Registration{Name: name, Build: buildNoop}); err != nil {
			t.Fatalf("registration failed: %v", err)
		}
	}

	_, err := r.Resolve("frobnicate")
	var unknown *UnknownActionError
	if !errors.As(err, &unknown) {
		t.Fatalf("expected UnknownActionError, got %v", err)
	}
	if unknown.Name != "frobnicate" {
		t.Fatalf("UnknownActionError.Name = %q", unknown.Name)
	}
	if want := []string{"list", "display", "delete"}; !reflect.DeepEqual(unknown.Valid, want) {
		t.Fatalf("UnknownActionError.Valid = %v, want %v", unknown.Valid, want)
	}
}

func TestRegistryAllPreservesRegistrationOrder(t *testing.T) {
	r := NewRegistry()
	names := []string{"zeta", "alpha", "mid"}
	for _, name := range names {
		if err := r.Register(Registration{Name: name, Build: buildNoop}); err != nil {
			t.Fatalf("registration failed: %v", err)
		}
	}

	var got []string
	for _, reg := range r.All() {
		got = append(got, reg.Name)
	}
	if !reflect.DeepEqual(got, names) {
		t.Fatalf("All() order = %v, want %v", got, names)
	}
}
