// Package core holds the domain model of the keeper: records, collections
// and the pure projection logic that derives what gets displayed.
package core

// Storage keys for the two collections. Display order is never persisted;
// the stored arrays keep insertion order.
const (
	KeyNotes = "notes"
	KeyCards = "flashcards"

	// KeyDarkMode holds a presentation preference (a bare JSON boolean).
	KeyDarkMode = "darkMode"
)

// Record is the contract shared by the two collection variants.
//
// Records are value types replaced immutably on mutation, so setters return
// a copy instead of modifying the receiver. The type parameter ties the
// copies back to the concrete variant (Note or Card).
type Record[R any] interface {
	// Key returns the unique identifier, immutable after creation.
	Key() string

	// WithKey returns a copy of the record with the identifier set.
	WithKey(id string) R

	// Primary is the required text field (title or question). It drives
	// sorting and is the first search target.
	Primary() string

	// Secondary is the optional text field (content or answer).
	Secondary() string

	// TagList returns the record's tags in order.
	TagList() []string

	// WithTags returns a copy of the record with the given tags.
	WithTags(tags []string) R

	// IsPinned reports whether the record is elevated in the display order.
	IsPinned() bool

	// WithPinned returns a copy of the record with the pin flag set.
	WithPinned(pinned bool) R
}

// Note is a free-form text record. Content may contain Markdown-like text
// but is never parsed.
type Note struct {
	ID      string   `json:"id"`
	Title   string   `json:"title"`
	Content string   `json:"content"`
	Tags    []string `json:"tags"`
	Pinned  bool     `json:"pinned"`
}

func (n Note) Key() string { return n.ID }
func (n Note) Primary() string { return n.Title }
func (n Note) Secondary() string { return n.Content }
func (n Note) TagList() []string { return n.Tags }
func (n Note) IsPinned() bool { return n.Pinned }

func (n Note) WithKey(id string) Note {
	n.ID = id
	return n
}

func (n Note) WithTags(tags []string) Note {
	n.Tags = tags
	return n
}

func (n Note) WithPinned(pinned bool) Note {
	n.Pinned = pinned
	return n
}

// Card is a flashcard record: a question with an optional answer.
type Card struct {
	ID       string   `json:"id"`
	Question string   `json:"question"`
	Answer   string   `json:"answer"`
	Tags     []string `json:"tags"`
	Pinned   bool     `json:"pinned"`
}

func (c Card) Key() string { return c.ID }
func (c Card) Primary() string { return c.Question }
func (c Card) Secondary() string { return c.Answer }
func (c Card) TagList() []string { return c.Tags }
func (c Card) IsPinned() bool { return c.Pinned }

func (c Card) WithKey(id string) Card {
	c.ID = id
	return c
}

func (c Card) WithTags(tags []string) Card {
	c.Tags = tags
	return c
}

func (c Card) WithPinned(pinned bool) Card {
	c.Pinned = pinned
	return c
}

var (
	_ Record[Note] = Note{}
	_ Record[Card] = Card{}
)
