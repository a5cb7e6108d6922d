package backend

import (
	"context"

	"github.com/godbus/dbus/v5"
)

// Connect opens a private connection to the D-Bus session bus. The
// connection belongs to the invocation and must be closed on every exit
// path.
func Connect(ctx context.Context) (Bus, error) {
	conn, err := dbus.ConnectSessionBus(dbus.WithContext(ctx))
	if err != nil {
		return nil, &ConnectionError{Err: err}
	}
	return &sessionBus{conn: conn}, nil
}

type sessionBus struct {
	conn *dbus.Conn
}

func (b *sessionBus) NameHasOwner(name string) (bool, error) {
	var has bool
	err := b.conn.BusObject().
		Call("org.freedesktop.DBus.NameHasOwner", 0, name).
		Store(&has)
	return has, err
}

func (b *sessionBus) RemoteControl(app ServiceName) RemoteControl {
	obj := b.conn.Object(app.BusName(), dbus.ObjectPath(app.ObjectPath()))
	return &remoteObject{obj: obj, iface: app.Interface()}
}

func (b *sessionBus) Close() error {
	return b.conn.Close()
}

// remoteObject adapts the application's RemoteControl D-Bus object to the
// RemoteControl interface.
type remoteObject struct {
	obj   dbus.BusObject
	iface string
}

func (r *remoteObject) call(ctx context.Context, method string, args ...interface{}) *dbus.Call {
	return r.obj.CallWithContext(ctx, r.iface+"."+method, 0, args...)
}

func (r *remoteObject) ListAllNotes(ctx context.Context) ([]string, error) {
	var uris []string
	err := r.call(ctx, "ListAllNotes").Store(&uris)
	return uris, err
}

func (r *remoteObject) GetNoteTitle(ctx context.Context, uri string) (string, error) {
	var title string
	err := r.call(ctx, "GetNoteTitle", uri).Store(&title)
	return title, err
}

func (r *remoteObject) GetNoteChangeDate(ctx context.Context, uri string) (int64, error) {
	var unix int64
	err := r.call(ctx, "GetNoteChangeDate", uri).Store(&unix)
	return unix, err
}

func (r *remoteObject) GetTagsForNote(ctx context.Context, uri string) ([]string, error) {
	var tags []string
	err := r.call(ctx, "GetTagsForNote", uri).Store(&tags)
	return tags, err
}

func (r *remoteObject) GetNoteContents(ctx context.Context, uri string) (string, error) {
	var content string
	err := r.call(ctx, "GetNoteContents", uri).Store(&content)
	return content, err
}

func (r *remoteObject) SetNoteContents(ctx context.Context, uri, text string) error {
	var ok bool
	if err := r.call(ctx, "SetNoteContents", uri, text).Store(&ok); err != nil {
		return err
	}
	if !ok {
		return &OperationError{Op: "SetNoteContents", URI: uri}
	}
	return nil
}

func (r *remoteObject) AddTagToNote(ctx context.Context, uri, tag string) error {
	var ok bool
	if err := r.call(ctx, "AddTagToNote", uri, tag).Store(&ok); err != nil {
		return err
	}
	if !ok {
		return &OperationError{Op: "AddTagToNote", URI: uri}
	}
	return nil
}

func (r *remoteObject) RemoveTagFromNote(ctx context.Context, uri, tag string) error {
	var ok bool
	if err := r.call(ctx, "RemoveTagFromNote", uri, tag).Store(&ok); err != nil {
		return err
	}
	if !ok {
		return &OperationError{Op: "RemoveTagFromNote", URI: uri}
	}
	return nil
}

func (r *remoteObject) DeleteNote(ctx context.Context, uri string) error {
	var ok bool
	if err := r.call(ctx, "DeleteNote", uri).Store(&ok); err != nil {
		return err
	}
	if !ok {
		return &OperationError{Op: "DeleteNote", URI: uri}
	}
	return nil
}

func (r *remoteObject) Version(ctx context.Context) (string, error) {
	var version string
	err := r.call(ctx, "Version").Store(&version)
	return version, err
}
