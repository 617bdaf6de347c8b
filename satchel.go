package satchel

import (
	"context"
	"log/slog"

	"github.com/aretw0/satchel/internal/platform"
	"github.com/aretw0/satchel/pkg/core"
)

// --- Types ---

// App is the assembled keeper: one store per collection plus the
// preference service, all sharing one storage adapter.
type App = platform.App

// Note is a public alias for the note record.
type Note = core.Note

// Card is a public alias for the flashcard record.
type Card = core.Card

// Event is a public alias for collection change events.
type Event = core.Event

// --- Configuration ---

// Option defines a functional option for configuring the keeper.
type Option = platform.Option

// WithLogger sets the logger for all components.
func WithLogger(logger *slog.Logger) Option {
	return platform.WithLogger(logger)
}

// WithStorage allows injecting a custom storage adapter.
func WithStorage(storage core.Storage) Option {
	return platform.WithStorage(storage)
}

// WithIDFunc overrides the identifier generator for new records.
func WithIDFunc(fn func() string) Option {
	return platform.WithIDFunc(fn)
}

// WithEventBuffer sets the buffer size for change-event subscriptions.
func WithEventBuffer(size int) Option {
	return platform.WithEventBuffer(size)
}

// --- Factory ---

// New opens (or creates) a keeper at dir and loads both collections.
func New(ctx context.Context, dir string, opts ...Option) (*App, error) {
	return platform.New(ctx, dir, opts...)
}

// --- Projection ---

// Project derives the display view of any collection: pinned records
// first, ties broken by primary text, filtered by term.
func Project[R core.Record[R]](records []R, term string) []R {
	return core.Project(records, term)
}
