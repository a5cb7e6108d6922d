package version

import (
	"bytes"
	"context"
	"io"
	"testing"

	"github.com/notebus/notebus/internal/action"
	"github.com/notebus/notebus/internal/backend"
	"github.com/notebus/notebus/internal/backend/backendtest"
	"github.com/notebus/notebus/internal/config"
	"github.com/notebus/notebus/internal/state"
)

func TestVersionReportsBothVersions(t *testing.T) {
	rc := backendtest.New()
	rc.AppVersion = "1.15.2"

	var out bytes.Buffer
	s := &state.State{
		Config:  &config.Config{},
		Client:  backend.NewClient(backend.Gnote, rc),
		Stdout:  &out,
		Stderr:  io.Discard,
		Version: "0.4.0",
	}

	d := action.NewDispatcher(action.NewRegistry(), io.Discard)
	d.SetConnect(func(context.Context) (backend.Bus, error) {
		t.Fatal("unexpected bus connection")
		return nil, nil
	})

	cmd := NewCmdVersion(s, d)
	cmd.SetArgs(nil)
	cmd.SetOut(io.Discard)
	cmd.SetErr(io.Discard)
	if err := cmd.ExecuteContext(context.Background()); err != nil {
		t.Fatalf("version: %v", err)
	}

	want := "notebus version 0.4.0 using Gnote version 1.15.2\n"
	if out.String() != want {
		t.Errorf("got %q, want %q", out.String(), want)
	}
}
