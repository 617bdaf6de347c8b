// Package collection owns the canonical in-memory state of one record
// collection and keeps it synchronized with durable storage after every
// mutation.
package collection

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/aretw0/satchel/pkg/core"
	"github.com/aretw0/satchel/pkg/id"
)

// Store holds the ordered records of one collection (notes or flashcards).
// The stored order is insertion order; display order is derived on demand
// by core.Project and never persisted.
//
// Every mutation writes the whole collection to storage before it commits
// to memory, so storage and memory never disagree when a call returns.
type Store[R core.Record[R]] struct {
	key     string
	storage core.Storage
	logger  *slog.Logger
	newID   func() string

	mu      sync.RWMutex
	records []R

	subMu   sync.Mutex
	subs    map[int]chan core.Event
	nextSub int
}

// Option configures a Store.
type Option[R core.Record[R]] func(*Store[R])

// WithLogger sets the logger for the store.
func WithLogger[R core.Record[R]](logger *slog.Logger) Option[R] {
	return func(s *Store[R]) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithIDFunc overrides the identifier generator (useful in tests).
func WithIDFunc[R core.Record[R]](fn func() string) Option[R] {
	return func(s *Store[R]) {
		if fn != nil {
			s.newID = fn
		}
	}
}

// Open loads the collection stored under key and returns a Store bound to
// it. A missing or corrupt value degrades to an empty collection; loading
// never fails because of bad data, only because of the storage itself
// being unreachable at Initialize time.
func Open[R core.Record[R]](ctx context.Context, storage core.Storage, key string, opts ...Option[R]) (*Store[R], error) {
	s := &Store[R]{
		key:     key,
		storage: storage,
		logger:  slog.Default(),
		newID:   id.New,
		subs:    make(map[int]chan core.Event),
	}
	for _, opt := range opts {
		opt(s)
	}

	data, err := storage.Load(ctx, key)
	if err != nil {
		s.logger.Warn("failed to load collection, starting empty", "key", key, "error", err)
		return s, nil
	}
	s.records = decodeRecords[R](data, key, s.logger)

	return s, nil
}

// Key returns the storage key this store persists under.
func (s *Store[R]) Key() string { return s.key }

// All returns a copy of the collection in insertion order.
func (s *Store[R]) All() []R {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]R, len(s.records))
	copy(out, s.records)
	return out
}

// Len returns the number of records in the collection.
func (s *Store[R]) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.records)
}

// PinnedCount returns the number of pinned records.
func (s *Store[R]) PinnedCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	count := 0
	for _, r := range s.records {
		if r.IsPinned() {
			count++
		}
	}
	return count
}

// Get retrieves a record by id.
func (s *Store[R]) Get(recordID string) (R, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, r := range s.records {
		if r.Key() == recordID {
			return r, nil
		}
	}
	var zero R
	return zero, core.ErrNotFound
}

// Create validates fields, assigns an id and appends the record.
// The primary text field must be non-empty after trimming; otherwise
// core.ErrValidation is returned and neither memory nor storage changes.
// Tags are normalized; the pin flag is kept as given.
func (s *Store[R]) Create(ctx context.Context, fields R) (R, error) {
	if strings.TrimSpace(fields.Primary()) == "" {
		var zero R
		return zero, fmt.Errorf("cannot create record: %w", core.ErrValidation)
	}

	rec := fields.
		WithKey(s.newID()).
		WithTags(core.NormalizeTags(fields.TagList()))

	s.mu.Lock()
	defer s.mu.Unlock()

	next := make([]R, 0, len(s.records)+1)
	next = append(next, s.records...)
	next = append(next, rec)

	if err := s.persist(ctx, next); err != nil {
		var zero R
		return zero, err
	}

	s.publish(core.EventCreate, rec.Key())
	return rec, nil
}

// Update replaces all mutable fields of the record with the given id,
// preserving the id itself. Returns core.ErrNotFound if the id is absent;
// the collection is left unchanged in that case.
func (s *Store[R]) Update(ctx context.Context, recordID string, fields R) error {
	if strings.TrimSpace(fields.Primary()) == "" {
		return fmt.Errorf("cannot update record: %w", core.ErrValidation)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.indexOf(recordID)
	if idx < 0 {
		return core.ErrNotFound
	}

	next := make([]R, len(s.records))
	copy(next, s.records)
	next[idx] = fields.
		WithKey(recordID).
		WithTags(core.NormalizeTags(fields.TagList()))

	if err := s.persist(ctx, next); err != nil {
		return err
	}

	s.publish(core.EventModify, recordID)
	return nil
}

// Delete removes the record with the given id. An absent id is a silent
// no-op. Confirmation is the caller's responsibility.
func (s *Store[R]) Delete(ctx context.Context, recordID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.indexOf(recordID)
	if idx < 0 {
		return nil
	}

	next := make([]R, 0, len(s.records)-1)
	next = append(next, s.records[:idx]...)
	next = append(next, s.records[idx+1:]...)

	if err := s.persist(ctx, next); err != nil {
		return err
	}

	s.publish(core.EventDelete, recordID)
	return nil
}

// TogglePin flips the pin flag of the record with the given id. An absent
// id is a silent no-op.
func (s *Store[R]) TogglePin(ctx context.Context, recordID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.indexOf(recordID)
	if idx < 0 {
		return nil
	}

	next := make([]R, len(s.records))
	copy(next, s.records)
	next[idx] = next[idx].WithPinned(!next[idx].IsPinned())

	if err := s.persist(ctx, next); err != nil {
		return err
	}

	s.publish(core.EventModify, recordID)
	return nil
}

// ReplaceAll swaps the whole collection for records, without per-record
// validation. Imported data is trusted structurally but not content
// validated; records with empty primary fields or odd tags pass through.
func (s *Store[R]) ReplaceAll(ctx context.Context, records []R) error {
	next := make([]R, len(records))
	copy(next, records)

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.persist(ctx, next); err != nil {
		return err
	}

	s.publish(core.EventReplace, "")
	return nil
}

// Project derives the display view for the given search term. Sugar over
// core.Project on a snapshot of the collection.
func (s *Store[R]) Project(term string) []R {
	return core.Project(s.All(), term)
}

// indexOf must be called with the lock held.
func (s *Store[R]) indexOf(recordID string) int {
	for i, r := range s.records {
		if r.Key() == recordID {
			return i
		}
	}
	return -1
}

// persist writes next to storage and, only on success, makes it the
// canonical in-memory state. Must be called with the write lock held.
func (s *Store[R]) persist(ctx context.Context, next []R) error {
	data, err := encodeRecords(next)
	if err != nil {
		return fmt.Errorf("failed to encode collection %s: %w", s.key, err)
	}

	if err := s.storage.Save(ctx, s.key, data); err != nil {
		return fmt.Errorf("failed to persist collection %s: %w", s.key, err)
	}

	s.records = next
	return nil
}

// Subscribe returns a channel receiving an Event after every successful
// mutation, and a cancel function that closes it. Slow consumers that let
// the buffer fill up lose events rather than blocking mutations.
func (s *Store[R]) Subscribe(buffer int) (<-chan core.Event, func()) {
	if buffer <= 0 {
		buffer = 16
	}

	s.subMu.Lock()
	defer s.subMu.Unlock()

	idx := s.nextSub
	s.nextSub++
	ch := make(chan core.Event, buffer)
	s.subs[idx] = ch

	cancel := func() {
		s.subMu.Lock()
		defer s.subMu.Unlock()
		if sub, ok := s.subs[idx]; ok {
			delete(s.subs, idx)
			close(sub)
		}
	}
	return ch, cancel
}

func (s *Store[R]) publish(t core.EventType, recordID string) {
	ev := core.Event{
		Type:      t,
		Key:       s.key,
		ID:        recordID,
		Timestamp: time.Now().Unix(),
	}

	s.subMu.Lock()
	defer s.subMu.Unlock()

	for _, ch := range s.subs {
		select {
		case ch <- ev:
		default:
			s.logger.Warn("dropping event for slow subscriber", "event", ev.String())
		}
	}
}

// encodeRecords serializes the canonical array the way it is persisted:
// compact JSON, matching what the storage layer has always held.
func encodeRecords[R any](records []R) ([]byte, error) {
	if records == nil {
		records = []R{}
	}
	return json.Marshal(records)
}
