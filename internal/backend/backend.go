// Package backend locates a running note-taking application on the D-Bus
// session bus and exposes it through a Client bound for the lifetime of a
// single invocation.
//
// The RemoteControl interface published by the applications is documented
// in the Tomboy and Gnote sources:
//
//	https://gitlab.gnome.org/GNOME/tomboy (Tomboy/RemoteControl.cs)
//	https://gitlab.gnome.org/GNOME/gnote (src/dbus/remotecontrol.hpp)
package backend

import (
	"context"
	"errors"
	"fmt"
)

// ServiceName identifies one of the candidate note-taking applications.
type ServiceName string

const (
	Tomboy ServiceName = "Tomboy"
	Gnote  ServiceName = "Gnote"
)

// Candidates lists the applications probed during autodetection, in probe
// order.
var Candidates = []ServiceName{Tomboy, Gnote}

// Valid reports whether the name is one of the two known applications.
func (s ServiceName) Valid() bool {
	return s == Tomboy || s == Gnote
}

// BusName returns the well-known D-Bus name the application claims.
func (s ServiceName) BusName() string {
	return "org.gnome." + string(s)
}

// ObjectPath returns the path of the application's RemoteControl object.
func (s ServiceName) ObjectPath() string {
	return "/org/gnome/" + string(s) + "/RemoteControl"
}

// Interface returns the RemoteControl interface name.
func (s ServiceName) Interface() string {
	return "org.gnome." + string(s) + ".RemoteControl"
}

var (
	// ErrNoBackend means neither Tomboy nor Gnote is present on the bus.
	ErrNoBackend = errors.New(
		"no application found: verify that one of Tomboy or Gnote is running",
	)

	// ErrAmbiguousBackend means both applications are present and the
	// caller must pick one explicitly. Guessing here could make a delete
	// run against the wrong application.
	ErrAmbiguousBackend = errors.New(
		"both Tomboy and Gnote are running: " +
			"specify the one to use with --application or the \"application\" configuration option",
	)
)

// UnavailableError means an explicitly requested application is not
// reachable over the bus.
type UnavailableError struct {
	App ServiceName
	Err error
}

func (e *UnavailableError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("application %s is not reachable over the session bus: %v", e.App, e.Err)
	}
	return fmt.Sprintf(
		"application %s is not publishing a RemoteControl object; it is possibly not running",
		e.App,
	)
}

func (e *UnavailableError) Unwrap() error { return e.Err }

// ConnectionError means the session bus itself could not be reached.
type ConnectionError struct {
	Err error
}

func (e *ConnectionError) Error() string {
	return fmt.Sprintf(
		"could not establish a session bus connection: %v\n"+
			"If you are not in an X session, did you forget to set the DISPLAY environment variable?",
		e.Err,
	)
}

func (e *ConnectionError) Unwrap() error { return e.Err }

// RemoteControl is the note-access capability exposed by both candidate
// applications. The D-Bus transport implements it; tests substitute fakes.
type RemoteControl interface {
	ListAllNotes(ctx context.Context) ([]string, error)
	GetNoteTitle(ctx context.Context, uri string) (string, error)
	GetNoteChangeDate(ctx context.Context, uri string) (int64, error)
	GetTagsForNote(ctx context.Context, uri string) ([]string, error)
	GetNoteContents(ctx context.Context, uri string) (string, error)
	SetNoteContents(ctx context.Context, uri, text string) error
	AddTagToNote(ctx context.Context, uri, tag string) error
	RemoveTagFromNote(ctx context.Context, uri, tag string) error
	DeleteNote(ctx context.Context, uri string) error
	Version(ctx context.Context) (string, error)
}

// Bus abstracts the session bus for the locator. The production
// implementation lives in dbus.go.
type Bus interface {
	// NameHasOwner reports whether a well-known name currently has an
	// owner, without activating anything.
	NameHasOwner(name string) (bool, error)

	// RemoteControl returns the application's RemoteControl object.
	RemoteControl(app ServiceName) RemoteControl

	Close() error
}

// Locate binds to exactly one application and returns the handle owning
// the bus connection. With an explicit choice it binds to that application
// or fails with an UnavailableError. Without one it probes both
// candidates: exactly one present binds to it, none fails with
// ErrNoBackend, both fails with ErrAmbiguousBackend.
//
// On error the bus is left open; the caller that opened it closes it.
func Locate(bus Bus, explicit ServiceName) (*Client, error) {
	if explicit != "" {
		if !explicit.Valid() {
			return nil, &UnavailableError{
				App: explicit,
				Err: fmt.Errorf("unknown application %q, must be one of Tomboy or Gnote", string(explicit)),
			}
		}

		present, err := bus.NameHasOwner(explicit.BusName())
		if err != nil {
			return nil, &UnavailableError{App: explicit, Err: err}
		}
		if !present {
			return nil, &UnavailableError{App: explicit}
		}
		return newClient(explicit, bus), nil
	}

	var found []ServiceName
	for _, app := range Candidates {
		present, err := bus.NameHasOwner(app.BusName())
		if err != nil {
			return nil, &ConnectionError{Err: err}
		}
		if present {
			found = append(found, app)
		}
	}

	switch len(found) {
	case 0:
		return nil, ErrNoBackend
	case 1:
		return newClient(found[0], bus), nil
	default:
		return nil, ErrAmbiguousBackend
	}
}
