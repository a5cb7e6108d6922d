package backend

import (
	"context"
	"fmt"
	"time"

	"github.com/notebus/notebus/internal/note"
)

// OperationError reports a per-note operation the application refused.
type OperationError struct {
	Op  string
	URI string
}

func (e *OperationError) Error() string {
	return fmt.Sprintf("%s failed for %s", e.Op, e.URI)
}

// Client is the handle to the bound application. Exactly one Client exists
// per invocation and it owns the underlying bus connection; Close releases
// it.
type Client struct {
	app ServiceName
	rc  RemoteControl
	bus Bus
}

func newClient(app ServiceName, bus Bus) *Client {
	return &Client{app: app, rc: bus.RemoteControl(app), bus: bus}
}

// NewClient builds a Client over an arbitrary RemoteControl. Tests use it
// to bind actions to a fake transport.
func NewClient(app ServiceName, rc RemoteControl) *Client {
	return &Client{app: app, rc: rc}
}

// Application returns the name of the bound application.
func (c *Client) Application() ServiceName { return c.app }

// ListNotes fetches a snapshot of every note, in the order the application
// reports them.
func (c *Client) ListNotes(ctx context.Context) ([]note.Note, error) {
	uris, err := c.rc.ListAllNotes(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing notes from %s: %w", c.app, err)
	}

	notes := make([]note.Note, 0, len(uris))
	for _, uri := range uris {
		title, err := c.rc.GetNoteTitle(ctx, uri)
		if err != nil {
			return nil, fmt.Errorf("fetching title of %s: %w", uri, err)
		}
		changed, err := c.rc.GetNoteChangeDate(ctx, uri)
		if err != nil {
			return nil, fmt.Errorf("fetching change date of %s: %w", uri, err)
		}
		tags, err := c.rc.GetTagsForNote(ctx, uri)
		if err != nil {
			return nil, fmt.Errorf("fetching tags of %s: %w", uri, err)
		}

		notes = append(notes, note.Note{
			URI:     uri,
			Title:   title,
			Changed: time.Unix(changed, 0),
			Tags:    tags,
		})
	}

	return notes, nil
}

// Content fetches the full content of one note.
func (c *Client) Content(ctx context.Context, n note.Note) (string, error) {
	return c.rc.GetNoteContents(ctx, n.URI)
}

// SetContent replaces the full content of one note.
func (c *Client) SetContent(ctx context.Context, n note.Note, text string) error {
	return c.rc.SetNoteContents(ctx, n.URI, text)
}

// Delete permanently removes one note.
func (c *Client) Delete(ctx context.Context, n note.Note) error {
	return c.rc.DeleteNote(ctx, n.URI)
}

// AddTag adds a tag to one note.
func (c *Client) AddTag(ctx context.Context, n note.Note, tag string) error {
	return c.rc.AddTagToNote(ctx, n.URI, tag)
}

// RemoveTag removes a tag from one note.
func (c *Client) RemoveTag(ctx context.Context, n note.Note, tag string) error {
	return c.rc.RemoveTagFromNote(ctx, n.URI, tag)
}

// Version returns the application's reported version.
func (c *Client) Version(ctx context.Context) (string, error) {
	return c.rc.Version(ctx)
}

// Close releases the bus connection. Safe to call on a test client that
// has no connection.
func (c *Client) Close() error {
	if c.bus == nil {
		return nil
	}
	return c.bus.Close()
}
