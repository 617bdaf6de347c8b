package localkv

import (
	"context"
	"testing"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/satchel/pkg/core"
)

func collectEvent(t *testing.T, events <-chan core.Event, timeout time.Duration) (core.Event, bool) {
	t.Helper()
	select {
	case ev, ok := <-events:
		return ev, ok
	case <-time.After(timeout):
		return core.Event{}, false
	}
}

func TestWatch_ReportsExternalSave(t *testing.T) {
	s := newTestStore(t)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	events, err := s.Watch(ctx, "*")
	require.NoError(t, err)

	// A save made through a second adapter instance is "external" from the
	// watcher's point of view.
	other := New(s.Dir, nil)
	require.NoError(t, other.Save(context.Background(), "notes", []byte("[]")))

	ev, ok := collectEvent(t, events, 3*time.Second)
	require.True(t, ok, "expected an event for the external save")
	assert.Equal(t, "notes", ev.Key)
	assert.Empty(t, ev.ID)
}

func TestWatch_PatternFiltersKeys(t *testing.T) {
	s := newTestStore(t)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	events, err := s.Watch(ctx, "flash*")
	require.NoError(t, err)

	other := New(s.Dir, nil)
	require.NoError(t, other.Save(context.Background(), "notes", []byte("[]")))
	require.NoError(t, other.Save(context.Background(), "flashcards", []byte("[]")))

	ev, ok := collectEvent(t, events, 3*time.Second)
	require.True(t, ok, "expected an event for the matching key")
	assert.Equal(t, "flashcards", ev.Key)
}

func TestWatch_ChannelClosesOnCancel(t *testing.T) {
	s := newTestStore(t)
	ctx, cancel := context.WithCancel(context.Background())

	events, err := s.Watch(ctx, "*")
	require.NoError(t, err)

	cancel()

	deadline := time.After(3 * time.Second)
	for {
		select {
		case _, ok := <-events:
			if !ok {
				return // closed as promised
			}
		case <-deadline:
			t.Fatal("events channel did not close after cancel")
		}
	}
}

func TestMapEventType(t *testing.T) {
	assert.Equal(t, core.EventCreate, mapEventType(fsnotify.Event{Op: fsnotify.Create}))
	assert.Equal(t, core.EventModify, mapEventType(fsnotify.Event{Op: fsnotify.Write}))
	assert.Equal(t, core.EventDelete, mapEventType(fsnotify.Event{Op: fsnotify.Remove}))
	assert.Equal(t, core.EventDelete, mapEventType(fsnotify.Event{Op: fsnotify.Rename}))
	assert.Equal(t, core.EventType(""), mapEventType(fsnotify.Event{Op: fsnotify.Chmod}))
}
