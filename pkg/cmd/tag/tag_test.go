package tag

import (
	"bytes"
	"context"
	"errors"
	"io"
	"testing"

	"github.com/notebus/notebus/internal/action"
	"github.com/notebus/notebus/internal/backend"
	"github.com/notebus/notebus/internal/backend/backendtest"
	"github.com/notebus/notebus/internal/config"
	"github.com/notebus/notebus/internal/state"
)

func fakeNotes() *backendtest.FakeRemoteControl {
	return backendtest.New(
		backendtest.FakeNote{URI: "note://tomboy/1", Title: "addressed to me"},
		backendtest.FakeNote{
			URI: "note://tomboy/2", Title: "dell",
			Tags: []string{"system:notebook:Hardware", "old"},
		},
		backendtest.FakeNote{
			URI: "note://tomboy/3", Title: "shopping",
			Tags: []string{"errands"},
		},
	)
}

func testState(rc *backendtest.FakeRemoteControl) (*state.State, *bytes.Buffer) {
	var errOut bytes.Buffer
	s := &state.State{
		Config:  &config.Config{},
		Client:  backend.NewClient(backend.Tomboy, rc),
		Stdout:  io.Discard,
		Stderr:  &errOut,
		Version: "test",
	}
	return s, &errOut
}

func run(t *testing.T, s *state.State, args ...string) error {
	t.Helper()

	d := action.NewDispatcher(action.NewRegistry(), io.Discard)
	d.SetConnect(func(context.Context) (backend.Bus, error) {
		t.Fatal("unexpected bus connection")
		return nil, nil
	})

	cmd := NewCmdTag(s, d)
	cmd.SetArgs(args)
	cmd.SetOut(io.Discard)
	cmd.SetErr(io.Discard)
	cmd.SilenceUsage = true
	cmd.SilenceErrors = true
	return cmd.ExecuteContext(context.Background())
}

func TestTagAdd(t *testing.T) {
	rc := fakeNotes()
	s, _ := testState(rc)

	if err := run(t, s, "urgent", "dell", "shopping"); err != nil {
		t.Fatalf("tag: %v", err)
	}

	want := [][2]string{
		{"note://tomboy/2", "urgent"},
		{"note://tomboy/3", "urgent"},
	}
	if len(rc.AddedTags) != len(want) {
		t.Fatalf("added %v, want %v", rc.AddedTags, want)
	}
	for i := range want {
		if rc.AddedTags[i] != want[i] {
			t.Errorf("add %d = %v, want %v", i, rc.AddedTags[i], want[i])
		}
	}
}

func TestTagAddIsIdempotent(t *testing.T) {
	rc := fakeNotes()
	s, _ := testState(rc)

	if err := run(t, s, "errands", "shopping"); err != nil {
		t.Fatalf("tag: %v", err)
	}
	if len(rc.AddedTags) != 0 {
		t.Errorf("note already carries the tag, got adds %v", rc.AddedTags)
	}
}

func TestTagRemove(t *testing.T) {
	rc := fakeNotes()
	s, _ := testState(rc)

	if err := run(t, s, "--remove", "old", "dell"); err != nil {
		t.Fatalf("tag: %v", err)
	}

	if len(rc.RemovedTags) != 1 || rc.RemovedTags[0] != [2]string{"note://tomboy/2", "old"} {
		t.Errorf("removed %v, want old from dell", rc.RemovedTags)
	}
}

func TestTagRemoveAbsentTagFailsTheNote(t *testing.T) {
	rc := fakeNotes()
	s, errOut := testState(rc)

	err := run(t, s, "--remove", "old", "shopping")

	var batch *action.BatchError
	if !errors.As(err, &batch) {
		t.Fatalf("got %v, want BatchError", err)
	}
	if code := action.ExitCode(err); code != action.ExitModificationFailed {
		t.Errorf("exit code = %d, want %d", code, action.ExitModificationFailed)
	}
	if errOut.Len() == 0 {
		t.Error("failure should be reported on stderr")
	}
}

func TestTagRemoveAll(t *testing.T) {
	rc := fakeNotes()
	s, _ := testState(rc)

	if err := run(t, s, "--remove-all", "dell"); err != nil {
		t.Fatalf("tag: %v", err)
	}

	want := [][2]string{
		{"note://tomboy/2", "system:notebook:Hardware"},
		{"note://tomboy/2", "old"},
	}
	if len(rc.RemovedTags) != len(want) {
		t.Fatalf("removed %v, want %v", rc.RemovedTags, want)
	}
	for i := range want {
		if rc.RemovedTags[i] != want[i] {
			t.Errorf("remove %d = %v, want %v", i, rc.RemovedTags[i], want[i])
		}
	}
}

func TestTagByFilter(t *testing.T) {
	rc := fakeNotes()
	s, _ := testState(rc)

	if err := run(t, s, "reviewed", "-b", "Hardware"); err != nil {
		t.Fatalf("tag: %v", err)
	}
	if len(rc.AddedTags) != 1 || rc.AddedTags[0] != [2]string{"note://tomboy/2", "reviewed"} {
		t.Errorf("added %v, want reviewed on dell", rc.AddedTags)
	}
}

func TestTagRequiresTagName(t *testing.T) {
	s, _ := testState(fakeNotes())

	if err := run(t, s); !errors.Is(err, action.ErrTooFewArguments) {
		t.Fatalf("got %v, want ErrTooFewArguments", err)
	}
}

func TestTagRequiresSelection(t *testing.T) {
	s, _ := testState(fakeNotes())

	err := run(t, s, "urgent")
	if !errors.Is(err, action.ErrTooFewArguments) {
		t.Fatalf("got %v, want ErrTooFewArguments", err)
	}
}

func TestTagMissingNoteName(t *testing.T) {
	rc := fakeNotes()
	s, errOut := testState(rc)

	err := run(t, s, "urgent", "no such note", "dell")
	if code := action.ExitCode(err); code != action.ExitNoteNotFound {
		t.Fatalf("exit code = %d, want %d (err %v)", code, action.ExitNoteNotFound, err)
	}
	if len(rc.AddedTags) != 1 {
		t.Errorf("existing note should still be tagged, got %v", rc.AddedTags)
	}
	if errOut.Len() == 0 {
		t.Error("missing name should be reported on stderr")
	}
}
