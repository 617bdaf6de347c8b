package core

import "context"

// Storage defines the contract for durable key-value persistence.
// Adhering to this interface keeps the core independent of the underlying
// mechanism (local files, an in-memory fake for tests, etc).
//
// Values are whole JSON documents: a collection is always written in full,
// never incrementally.
type Storage interface {
	// Initialize ensures the underlying storage is ready (e.g. create the
	// keeper directory).
	Initialize(ctx context.Context) error

	// Load reads the raw bytes stored under key. A missing key yields
	// (nil, nil); decoding and fail-soft recovery are the caller's concern.
	Load(ctx context.Context, key string) ([]byte, error)

	// Save overwrites the value under key with data. It must complete
	// before the mutation that triggered it is considered durable.
	Save(ctx context.Context, key string, data []byte) error
}

// Watchable defines storage that can report external changes to its keys.
type Watchable interface {
	// Watch emits an Event whenever a key matching pattern changes on
	// disk. The channel closes when ctx is cancelled.
	Watch(ctx context.Context, pattern string) (<-chan Event, error)
}
