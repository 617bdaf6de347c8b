package core

import "fmt"

// EventType represents the type of change in a collection.
type EventType string

const (
	EventCreate  EventType = "CREATE"
	EventModify  EventType = "MODIFY"
	EventDelete  EventType = "DELETE"
	EventReplace EventType = "REPLACE" // wholesale collection replacement (import)
)

// Event represents a change in a collection or in the backing storage.
// Storage-level events carry only the key; collection-level events also
// carry the id of the record that changed.
type Event struct {
	Type      EventType
	Key       string // storage key of the collection ("notes", "flashcards")
	ID        string // record id, empty for storage-level events
	Timestamp int64  // Unix timestamp
}

// String renders the event for logs and event-source bridges.
func (e Event) String() string {
	if e.ID == "" {
		return fmt.Sprintf("%s %s", e.Type, e.Key)
	}
	return fmt.Sprintf("%s %s/%s", e.Type, e.Key, e.ID)
}
