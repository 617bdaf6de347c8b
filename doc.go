// Package satchel is the Composition Root for the satchel keeper.
//
// It connects the core domain (records, projection) with the persistence
// adapter (local key-value files) using the Hexagonal Architecture pattern.
//
// Philosophy:
//
// Satchel is a personal note and flashcard keeper. Two collections live as
// JSON arrays under fixed keys in a local key-value store; every mutation
// rewrites its collection in full, so durable state never lags memory. What
// gets displayed is always derived, never stored: a pure projection sorts
// pinned records first and filters by search term.
//
// Features:
//
//   - **Hexagonal Architecture**: Core domain is isolated from persistence details.
//   - **Synchronous Durability**: Every mutation persists before it returns.
//   - **Derived Views**: Sorting and filtering are pure functions over the collection.
//   - **Bulk Transfer**: Wholesale JSON export/import per collection.
//   - **Reactive**: Change events per mutation, plus a storage watcher for external edits.
//   - **Extensible**: Other backends plug in via `core.Storage`.
//
// Usage:
//
//	// Open a keeper with functional options
//	app, err := satchel.New(ctx, dir,
//		satchel.WithLogger(logger),
//	)
//
//	// Create a note
//	note, err := app.Notes.Create(ctx, satchel.Note{Title: "hello", Tags: []string{"Inbox"}})
//
//	// Derive the display view
//	visible := app.Notes.Project("hel")
package satchel
