package display

import (
	"bytes"
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/notebus/notebus/internal/action"
	"github.com/notebus/notebus/internal/backend"
	"github.com/notebus/notebus/internal/backend/backendtest"
	"github.com/notebus/notebus/internal/config"
	"github.com/notebus/notebus/internal/note"
	"github.com/notebus/notebus/internal/state"
)

func fakeNotes() *backendtest.FakeRemoteControl {
	return backendtest.New(
		backendtest.FakeNote{
			URI: "note://tomboy/1", Title: "addressed to me",
			Content: "addressed to me\nDon't panic.",
		},
		backendtest.FakeNote{
			URI: "note://tomboy/2", Title: "dell",
			Content: "dell\nA sturdy laptop.",
			Tags:    []string{"system:notebook:Hardware"},
		},
	)
}

func testState(rc *backendtest.FakeRemoteControl) (*state.State, *bytes.Buffer, *bytes.Buffer) {
	var out, errOut bytes.Buffer
	s := &state.State{
		Config:  &config.Config{},
		Client:  backend.NewClient(backend.Tomboy, rc),
		Stdout:  &out,
		Stderr:  &errOut,
		Version: "test",
	}
	return s, &out, &errOut
}

func run(t *testing.T, s *state.State, args ...string) error {
	t.Helper()

	d := action.NewDispatcher(action.NewRegistry(), io.Discard)
	d.SetConnect(func(context.Context) (backend.Bus, error) {
		t.Fatal("unexpected bus connection")
		return nil, nil
	})

	cmd := NewCmdDisplay(s, d)
	cmd.SetArgs(args)
	cmd.SetOut(io.Discard)
	cmd.SetErr(io.Discard)
	cmd.SilenceUsage = true
	cmd.SilenceErrors = true
	return cmd.ExecuteContext(context.Background())
}

func TestDisplayShowsTagsOnTitleLine(t *testing.T) {
	s, out, _ := testState(fakeNotes())

	if err := run(t, s, "dell"); err != nil {
		t.Fatalf("display: %v", err)
	}

	want := "dell  (system:notebook:Hardware)\nA sturdy laptop.\n"
	if out.String() != want {
		t.Errorf("got %q, want %q", out.String(), want)
	}
}

func TestDisplaySeparatesNotes(t *testing.T) {
	s, out, _ := testState(fakeNotes())

	if err := run(t, s, "addressed to me", "dell"); err != nil {
		t.Fatalf("display: %v", err)
	}

	if !strings.Contains(out.String(), noteSeparator) {
		t.Errorf("expected a separator between notes, got %q", out.String())
	}
	if !strings.Contains(out.String(), "Don't panic.") ||
		!strings.Contains(out.String(), "A sturdy laptop.") {
		t.Errorf("missing note content in %q", out.String())
	}
}

func TestDisplayMissingNameDoesNotAbortTheRest(t *testing.T) {
	s, out, errOut := testState(fakeNotes())

	err := run(t, s, "no such note", "dell")

	var notFound *note.NotFoundError
	if !errors.As(err, &notFound) {
		t.Fatalf("got %v, want NotFoundError", err)
	}
	if notFound.Name != "no such note" {
		t.Errorf("NotFoundError.Name = %q", notFound.Name)
	}
	if code := action.ExitCode(err); code != action.ExitNoteNotFound {
		t.Errorf("exit code = %d, want %d", code, action.ExitNoteNotFound)
	}

	if !strings.Contains(out.String(), "A sturdy laptop.") {
		t.Errorf("existing note should still be displayed, got %q", out.String())
	}
	if !strings.Contains(errOut.String(), `"no such note"`) {
		t.Errorf("missing name should be reported on stderr, got %q", errOut.String())
	}
}
