package localkv

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/aretw0/lifecycle"
	"github.com/bmatcuk/doublestar/v4"
	"github.com/fsnotify/fsnotify"

	"github.com/aretw0/satchel/pkg/core"
)

// Watch emits an Event whenever a key matching pattern changes on disk.
// It catches writes made by other processes (a second CLI invocation, a
// manual edit of the JSON files); in-process mutations are observed through
// the collection stores instead.
//
// Events are debounced per key because an atomic save surfaces as a
// create+rename burst. The channel closes when ctx is cancelled.
func (s *Store) Watch(ctx context.Context, pattern string) (<-chan core.Event, error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create watcher: %w", err)
	}

	if err := watcher.Add(s.Dir); err != nil {
		_ = watcher.Close()
		return nil, fmt.Errorf("failed to watch %s: %w", s.Dir, err)
	}

	events := make(chan core.Event, 16)
	deb := newDebouncer(50 * time.Millisecond)
	s.setWatcherActive(true)

	lifecycle.Go(ctx, func(ctx context.Context) error {
		defer s.setWatcherActive(false)
		defer watcher.Close()
		defer close(events)
		defer deb.stop()

		for {
			select {
			case <-ctx.Done():
				return nil

			case fe, ok := <-watcher.Events:
				if !ok {
					return nil
				}
				s.handleFsEvent(ctx, fe, pattern, deb, events)

			case werr, ok := <-watcher.Errors:
				if !ok {
					return nil
				}
				s.logger.Warn("watcher error", "error", werr)
			}
		}
	}, lifecycle.WithErrorHandler(func(err error) {
		s.logger.Error("watcher stopped", "error", err)
	}))

	return events, nil
}

func (s *Store) handleFsEvent(ctx context.Context, fe fsnotify.Event, pattern string, deb *debouncer, events chan<- core.Event) {
	key, ok := resolveKey(fe.Name)
	if !ok {
		return
	}

	if match, err := doublestar.Match(pattern, key); err != nil || !match {
		return
	}

	eType := mapEventType(fe)
	if eType == "" {
		return
	}

	s.logger.Debug("storage event", "key", key, "op", fe.Op.String())

	deb.add(key, core.Event{
		Type:      eType,
		Key:       key,
		Timestamp: time.Now().Unix(),
	}, func(e core.Event) {
		// The events channel closes on shutdown while a timer may still
		// be in flight; recover covers that window.
		defer func() { _ = recover() }()
		select {
		case events <- e:
		case <-ctx.Done():
		}
	})
}

// resolveKey maps a watched path back to its storage key. Temp files from
// atomic writes and anything that is not a .json value are ignored.
func resolveKey(path string) (string, bool) {
	base := filepath.Base(path)
	if strings.HasPrefix(base, TempFilePrefix) {
		return "", false
	}
	key, found := strings.CutSuffix(base, ".json")
	if !found || key == "" {
		return "", false
	}
	return key, true
}

func mapEventType(fe fsnotify.Event) core.EventType {
	switch {
	case fe.Has(fsnotify.Create):
		return core.EventCreate
	case fe.Has(fsnotify.Write):
		return core.EventModify
	case fe.Has(fsnotify.Remove), fe.Has(fsnotify.Rename):
		return core.EventDelete
	default:
		return ""
	}
}
