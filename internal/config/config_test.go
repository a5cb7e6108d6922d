package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/notebus/notebus/internal/config"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write %s: %v", name, err)
	}
	return path
}

func TestLoadMissingFilesYieldsDefaults(t *testing.T) {
	dir := t.TempDir()

	cfg, err := config.Load(
		filepath.Join(dir, "system.yaml"),
		filepath.Join(dir, "user.yaml"),
	)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}

	if cfg.Application != "" || cfg.Display != "" {
		t.Fatalf("expected zero defaults, got %+v", cfg)
	}
}

func TestLoadUserOverridesSystem(t *testing.T) {
	dir := t.TempDir()
	system := writeFile(t, dir, "system.yaml", "application: Tomboy\ndisplay: \":0\"\n")
	user := writeFile(t, dir, "user.yaml", "application: Gnote\n")

	cfg, err := config.Load(system, user)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}

	if cfg.Application != "Gnote" {
		t.Fatalf("expected user file to win, got application %q", cfg.Application)
	}
	if cfg.Display != ":0" {
		t.Fatalf("expected system display to survive the merge, got %q", cfg.Display)
	}
}

func TestLoadIgnoresUnknownKeys(t *testing.T) {
	dir := t.TempDir()
	user := writeFile(t, dir, "user.yaml", "application: Tomboy\neditor: vim\n")

	cfg, err := config.Load(filepath.Join(dir, "system.yaml"), user)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if cfg.Application != "Tomboy" {
		t.Fatalf("expected Tomboy, got %q", cfg.Application)
	}
}

func TestLoadRejectsUnknownApplication(t *testing.T) {
	dir := t.TempDir()
	user := writeFile(t, dir, "user.yaml", "application: KNotes\n")

	_, err := config.Load(filepath.Join(dir, "system.yaml"), user)
	if err == nil {
		t.Fatal("expected an error for an unknown application")
	}
}

func TestSaveRoundTrips(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "sub", "config.yaml")

	in := &config.Config{Application: "Gnote", Display: ":1"}
	if err := in.Save(path); err != nil {
		t.Fatalf("Save() failed: %v", err)
	}

	out, err := config.Load(filepath.Join(dir, "system.yaml"), path)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if *out != *in {
		t.Fatalf("round trip changed the config: %+v != %+v", out, in)
	}
}

func TestSaveRejectsInvalidApplication(t *testing.T) {
	c := &config.Config{Application: "KNotes"}
	if err := c.Save(filepath.Join(t.TempDir(), "config.yaml")); err == nil {
		t.Fatal("expected an error for an unknown application")
	}
}

func TestUserFileHonorsEnvOverride(t *testing.T) {
	t.Setenv("NOTEBUS_CONFIG", "/tmp/custom.yaml")
	if got := config.UserFile(); got != "/tmp/custom.yaml" {
		t.Fatalf("UserFile() = %q, want env override", got)
	}
}
