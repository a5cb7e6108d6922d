// Package backendtest provides an in-memory RemoteControl for action and
// client tests.
package backendtest

import (
	"context"
	"fmt"
	"sync"
)

// FakeNote is the transport-level view of a note held by the fake.
type FakeNote struct {
	URI     string
	Title   string
	Changed int64
	Content string
	Tags    []string
}

// FakeRemoteControl implements backend.RemoteControl over a slice of
// FakeNotes and records every mutating call.
type FakeRemoteControl struct {
	mu    sync.Mutex
	Notes []FakeNote

	AppVersion string

	DeleteCalls []string
	AddedTags   [][2]string
	RemovedTags [][2]string
	SetContents map[string]string
	FailDeletes map[string]error
	FailAddTag  map[string]error
}

func New(notes ...FakeNote) *FakeRemoteControl {
	return &FakeRemoteControl{
		Notes:       notes,
		AppVersion:  "1.15.9",
		SetContents: make(map[string]string),
	}
}

func (f *FakeRemoteControl) find(uri string) (*FakeNote, error) {
	for i := range f.Notes {
		if f.Notes[i].URI == uri {
			return &f.Notes[i], nil
		}
	}
	return nil, fmt.Errorf("no note with uri %s", uri)
}

func (f *FakeRemoteControl) ListAllNotes(context.Context) ([]string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	uris := make([]string, 0, len(f.Notes))
	for _, n := range f.Notes {
		uris = append(uris, n.URI)
	}
	return uris, nil
}

func (f *FakeRemoteControl) GetNoteTitle(_ context.Context, uri string) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	n, err := f.find(uri)
	if err != nil {
		return "", err
	}
	return n.Title, nil
}

func (f *FakeRemoteControl) GetNoteChangeDate(_ context.Context, uri string) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	n, err := f.find(uri)
	if err != nil {
		return 0, err
	}
	return n.Changed, nil
}

func (f *FakeRemoteControl) GetTagsForNote(_ context.Context, uri string) ([]string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	n, err := f.find(uri)
	if err != nil {
		return nil, err
	}
	return append([]string(nil), n.Tags...), nil
}

func (f *FakeRemoteControl) GetNoteContents(_ context.Context, uri string) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	n, err := f.find(uri)
	if err != nil {
		return "", err
	}
	return n.Content, nil
}

func (f *FakeRemoteControl) SetNoteContents(_ context.Context, uri, text string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	n, err := f.find(uri)
	if err != nil {
		return err
	}
	n.Content = text
	f.SetContents[uri] = text
	return nil
}

func (f *FakeRemoteControl) AddTagToNote(_ context.Context, uri, tag string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if err, ok := f.FailAddTag[uri]; ok {
		return err
	}

	n, err := f.find(uri)
	if err != nil {
		return err
	}
	n.Tags = append(n.Tags, tag)
	f.AddedTags = append(f.AddedTags, [2]string{uri, tag})
	return nil
}

func (f *FakeRemoteControl) RemoveTagFromNote(_ context.Context, uri, tag string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	n, err := f.find(uri)
	if err != nil {
		return err
	}
	for i, t := range n.Tags {
		if t == tag {
			n.Tags = append(n.Tags[:i], n.Tags[i+1:]...)
			break
		}
	}
	f.RemovedTags = append(f.RemovedTags, [2]string{uri, tag})
	return nil
}

func (f *FakeRemoteControl) DeleteNote(_ context.Context, uri string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.DeleteCalls = append(f.DeleteCalls, uri)
	if err, ok := f.FailDeletes[uri]; ok {
		return err
	}

	for i := range f.Notes {
		if f.Notes[i].URI == uri {
			f.Notes = append(f.Notes[:i], f.Notes[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("no note with uri %s", uri)
}

func (f *FakeRemoteControl) Version(context.Context) (string, error) {
	return f.AppVersion, nil
}
