package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"golang.org/x/term"

	"github.com/notebus/notebus/internal/action"
	"github.com/notebus/notebus/internal/config"
	"github.com/notebus/notebus/internal/state"
)

// Version is stamped at build time.
var Version = "dev"

// Execute runs one notebus invocation and returns its exit status.
func Execute() int {
	ctx, stop := signal.NotifyContext(
		context.Background(), os.Interrupt, syscall.SIGTERM,
	)
	defer stop()

	if !term.IsTerminal(int(os.Stdout.Fd())) {
		lipgloss.SetColorProfile(termenv.Ascii)
	}

	args, userFile := extractConfigFlag(os.Args[1:], config.UserFile())

	cfg, err := config.Load(config.SystemFile, userFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "notebus: error: %v\n", err)
		return action.ExitCode(err)
	}

	s := &state.State{
		Config:  cfg,
		Stdout:  os.Stdout,
		Stderr:  os.Stderr,
		Version: Version,
	}

	reg := action.NewRegistry()
	if err := register(reg); err != nil {
		fmt.Fprintf(os.Stderr, "notebus: error: %v\n", err)
		return action.ExitCode(err)
	}
	d := action.NewDispatcher(reg, os.Stderr)

	if len(args) == 0 {
		printUsage(os.Stderr, reg)
		return action.ExitTooFewArguments
	}

	name, rest := args[0], args[1:]
	switch name {
	case "-h", "--help", "help":
		if len(rest) > 0 && reg.Has(rest[0]) {
			err = d.Dispatch(ctx, s, rest[0], []string{"--help"})
		} else {
			printUsage(os.Stdout, reg)
		}
	case "-v", "--version":
		err = d.Dispatch(ctx, s, "version", nil)
	default:
		err = d.Dispatch(ctx, s, name, rest)
	}

	if err != nil && !suppressMessage(err) {
		fmt.Fprintf(os.Stderr, "notebus: error: %v\n", err)
	}
	return action.ExitCode(err)
}

// extractConfigFlag pulls a top-level --config override out of the
// argument list. It is consumed before any action parses its own flags, so
// the override applies no matter where it appears on the line.
func extractConfigFlag(args []string, fallback string) ([]string, string) {
	for i := 0; i < len(args); i++ {
		if args[i] == "--config" && i+1 < len(args) {
			rest := append(append([]string(nil), args[:i]...), args[i+2:]...)
			return rest, args[i+1]
		}
		if strings.HasPrefix(args[i], "--config=") {
			rest := append(append([]string(nil), args[:i]...), args[i+1:]...)
			return rest, strings.TrimPrefix(args[i], "--config=")
		}
	}
	return args, fallback
}

// suppressMessage reports errors whose story has already been told: no
// search matches stay silent, and the dispatcher has already warned about
// interruptions.
func suppressMessage(err error) bool {
	return errors.Is(err, action.ErrNoMatches) ||
		errors.Is(err, action.ErrInterrupted)
}

func printUsage(w io.Writer, reg *action.Registry) {
	fmt.Fprintln(w, "Usage: notebus [--config <file>] <action> [-h|--help] [options]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Actions:")
	for _, r := range reg.All() {
		fmt.Fprintf(w, "  %-10s %s\n", r.Name, r.Short)
	}
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Use \"notebus help <action>\" for details on one action.")
}
