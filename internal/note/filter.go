package note

// TemplatePolicy controls whether template notes survive filtering.
type TemplatePolicy int

const (
	// TemplateDefault keeps a template only when it was selected through
	// a requested book, a requested name, the literal template tag, or an
	// all-notes selection. A template that only matched a raw tag, the
	// no-tags clause or the no-book clause is dropped. Deleting a book
	// removes the book's template with it; deleting by an arbitrary tag
	// does not silently remove templates that happen to carry it.
	TemplateDefault TemplatePolicy = iota

	// TemplateInclude keeps templates unconditionally (--with-templates).
	TemplateInclude

	// TemplateExclude drops templates unconditionally (--spare-templates).
	TemplateExclude
)

// Criteria selects a subset of a note collection. A note is selected when
// any clause matches it. The zero value selects nothing, so actions that
// mutate notes are no-ops until the user asks for something.
type Criteria struct {
	// Books selects notes belonging to any of the named notebooks.
	Books []string

	// NoBook selects notes that belong to no notebook.
	NoBook bool

	// Tags selects notes carrying any of the raw tags.
	Tags []string

	// NoTags selects notes with no tags at all.
	NoTags bool

	// Names selects notes by exact title.
	Names []string

	// AllNotes selects every note, subject only to the template policy.
	AllNotes bool

	Templates TemplatePolicy
}

// Empty reports whether no selection clause is set. AllNotes counts as a
// clause; the template policy does not select anything on its own.
func (c Criteria) Empty() bool {
	return len(c.Books) == 0 &&
		len(c.Tags) == 0 &&
		len(c.Names) == 0 &&
		!c.NoBook && !c.NoTags && !c.AllNotes
}

// Select returns the notes matching the criteria, preserving input order.
// It is pure: the same notes and criteria always produce the same
// selection. An empty input yields an empty selection, never an error.
func Select(notes []Note, c Criteria) []Note {
	if c.Empty() {
		return nil
	}

	selected := make([]Note, 0, len(notes))
	for _, n := range notes {
		if c.selects(n) {
			selected = append(selected, n)
		}
	}
	return selected
}

// MissingNames returns the requested names that do not match any note
// title, in request order. Callers report these per-name so one bad name
// does not abort the rest of the batch.
func MissingNames(notes []Note, names []string) []string {
	titles := make(map[string]struct{}, len(notes))
	for _, n := range notes {
		titles[n.Title] = struct{}{}
	}

	var missing []string
	for _, name := range names {
		if _, ok := titles[name]; !ok {
			missing = append(missing, name)
		}
	}
	return missing
}

func (c Criteria) selects(n Note) bool {
	var byBook, byName, byTag, weak bool

	if book := n.Book(); book != "" {
		for _, b := range c.Books {
			if b == book {
				byBook = true
				break
			}
		}
	} else if c.NoBook {
		weak = true
	}

	for _, name := range c.Names {
		if name == n.Title {
			byName = true
			break
		}
	}

	for _, t := range c.Tags {
		if n.HasTag(t) {
			byTag = true
			break
		}
	}

	if c.NoTags && len(n.Tags) == 0 {
		weak = true
	}

	if !byBook && !byName && !byTag && !weak && !c.AllNotes {
		return false
	}

	if !n.IsTemplate() {
		return true
	}

	switch c.Templates {
	case TemplateInclude:
		return true
	case TemplateExclude:
		return false
	default:
		// Asking for the template tag itself is an explicit request.
		for _, t := range c.Tags {
			if t == TagTemplate {
				return true
			}
		}
		return byBook || byName || c.AllNotes
	}
}
