package platform

import (
	"log/slog"

	"github.com/aretw0/satchel/pkg/core"
)

// options holds the internal configuration for the keeper.
type options struct {
	storage     core.Storage
	logger      *slog.Logger
	idFunc      func() string
	eventBuffer int
}

// Option defines a functional option for configuring the keeper.
type Option func(*options)

// defaultOptions returns the default configuration.
func defaultOptions() *options {
	return &options{
		eventBuffer: 16,
	}
}

// WithLogger sets the logger for all components.
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// WithStorage allows injecting a custom storage adapter (e.g. a fake for
// tests). If provided, the default file-backed adapter is skipped.
func WithStorage(storage core.Storage) Option {
	return func(o *options) {
		o.storage = storage
	}
}

// WithIDFunc overrides the identifier generator for new records.
func WithIDFunc(fn func() string) Option {
	return func(o *options) {
		o.idFunc = fn
	}
}

// WithEventBuffer sets the buffer size for change-event subscriptions.
// Zero means default (16).
func WithEventBuffer(size int) Option {
	return func(o *options) {
		if size > 0 {
			o.eventBuffer = size
		}
	}
}
