// Package note provides the note model shared by every action: tag
// conventions, book derivation and the filtering engine.
package note

import (
	"fmt"
	"strings"
	"time"
)

// Reserved tags used by Tomboy and Gnote. A note carrying TagTemplate is a
// reusable skeleton rather than user content. Book membership is derived
// from tags with the BookPrefix naming convention.
const (
	TagTemplate  = "system:template"
	BookPrefix   = "system:notebook:"
	SystemPrefix = "system:"
)

// Note is an immutable snapshot of a single note as reported by the
// backend. Notes are fetched per invocation and never cached.
type Note struct {
	URI     string
	Title   string
	Changed time.Time
	Tags    []string
}

// Book returns the name of the notebook this note belongs to, or the empty
// string. Membership is derived from the note's own tags; a note belongs to
// at most one book.
func (n Note) Book() string {
	for _, t := range n.Tags {
		if strings.HasPrefix(t, BookPrefix) {
			return strings.TrimPrefix(t, BookPrefix)
		}
	}
	return ""
}

// IsTemplate reports whether the note carries the template marker tag.
func (n Note) IsTemplate() bool {
	return n.HasTag(TagTemplate)
}

// HasTag reports whether the note carries the given raw tag.
func (n Note) HasTag(tag string) bool {
	for _, t := range n.Tags {
		if t == tag {
			return true
		}
	}
	return false
}

// UserTags returns the note's tags with the reserved system tags stripped
// out.
func (n Note) UserTags() []string {
	var tags []string
	for _, t := range n.Tags {
		if !strings.HasPrefix(t, SystemPrefix) {
			tags = append(tags, t)
		}
	}
	return tags
}

// Listing renders the one-line listing form of the note:
//
//	2009-11-25 | A note title  (tag, another-tag)
func (n Note) Listing() string {
	title := n.Title
	if title == "" {
		title = "_note doesn't have a name_"
	}

	if len(n.Tags) == 0 {
		return fmt.Sprintf("%s | %s", n.Changed.Format("2006-01-02"), title)
	}
	return fmt.Sprintf(
		"%s | %s  (%s)",
		n.Changed.Format("2006-01-02"),
		title,
		strings.Join(n.Tags, ", "),
	)
}

// ContentWithTags decorates raw note content for display. The first line is
// the note title as rendered by the backend; the note's tags are appended
// to it in parentheses.
func ContentWithTags(n Note, content string) string {
	if len(n.Tags) == 0 {
		return content
	}

	lines := strings.Split(content, "\n")
	lines[0] = fmt.Sprintf("%s  (%s)", lines[0], strings.Join(n.Tags, ", "))
	return strings.Join(lines, "\n")
}

// NotFoundError reports a note that was requested by name but does not
// exist in the backend.
type NotFoundError struct {
	Name string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("note named %q was not found", e.Name)
}
