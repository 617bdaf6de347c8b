package platform

import (
	"context"
	"log/slog"
	"sync"

	"github.com/aretw0/satchel/pkg/adapters/localkv"
	"github.com/aretw0/satchel/pkg/collection"
	"github.com/aretw0/satchel/pkg/core"
	"github.com/aretw0/satchel/pkg/prefs"
)

// App is the assembled keeper: one store per collection plus the
// preference service, all sharing one storage adapter.
type App struct {
	Notes   *collection.Store[core.Note]
	Cards   *collection.Store[core.Card]
	Prefs   *prefs.Service
	Storage core.Storage
	Logger  *slog.Logger

	eventBuffer int
}

// New opens (or creates) a keeper at dir and loads both collections.
//
//	app, err := satchel.New("~/.satchel", satchel.WithLogger(logger))
func New(ctx context.Context, dir string, opts ...Option) (*App, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(o)
	}

	logger := o.logger
	if logger == nil {
		logger = slog.Default()
	}

	if cfg, err := LoadConfig(dir); err != nil {
		logger.Warn("ignoring keeper config", "dir", dir, "error", err)
	} else {
		if cfg.Dir != "" {
			dir = cfg.Dir
		}
		if cfg.EventBuffer > 0 && o.eventBuffer == defaultOptions().eventBuffer {
			o.eventBuffer = cfg.EventBuffer
		}
	}

	storage := o.storage
	if storage == nil {
		storage = localkv.New(dir, logger)
	}

	if err := storage.Initialize(ctx); err != nil {
		return nil, err
	}

	notes, err := collection.Open[core.Note](ctx, storage, core.KeyNotes,
		collection.WithLogger[core.Note](logger),
		collection.WithIDFunc[core.Note](o.idFunc),
	)
	if err != nil {
		return nil, err
	}

	cards, err := collection.Open[core.Card](ctx, storage, core.KeyCards,
		collection.WithLogger[core.Card](logger),
		collection.WithIDFunc[core.Card](o.idFunc),
	)
	if err != nil {
		return nil, err
	}

	return &App{
		Notes:       notes,
		Cards:       cards,
		Prefs:       prefs.NewService(storage, logger),
		Storage:     storage,
		Logger:      logger,
		eventBuffer: o.eventBuffer,
	}, nil
}

// SubscribeAll merges change events from both collections into one channel
// using the configured buffer size. The cancel function detaches both
// subscriptions and closes the merged channel, so consumers can range over
// it. Calling cancel more than once is safe.
func (a *App) SubscribeAll() (<-chan core.Event, func()) {
	out := make(chan core.Event, a.eventBuffer)

	notesCh, cancelNotes := a.Notes.Subscribe(a.eventBuffer)
	cardsCh, cancelCards := a.Cards.Subscribe(a.eventBuffer)

	var wg sync.WaitGroup
	done := make(chan struct{})
	forward := func(ch <-chan core.Event) {
		defer wg.Done()
		for ev := range ch {
			select {
			case out <- ev:
			case <-done:
				return
			}
		}
	}
	wg.Add(2)
	go forward(notesCh)
	go forward(cardsCh)

	go func() {
		wg.Wait()
		close(out)
	}()

	var once sync.Once
	cancel := func() {
		once.Do(func() {
			cancelNotes()
			cancelCards()
			close(done)
		})
	}
	return out, cancel
}
