package platform

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/satchel/pkg/core"
)

func TestNew_CreatesKeeperAndLoadsBothCollections(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "keeper")
	ctx := context.Background()

	app, err := New(ctx, dir)
	require.NoError(t, err)

	assert.Zero(t, app.Notes.Len())
	assert.Zero(t, app.Cards.Len())

	_, err = os.Stat(dir)
	require.NoError(t, err, "keeper directory should exist")
}

func TestNew_ReloadsPersistedState(t *testing.T) {
	dir := t.TempDir()
	ctx := context.Background()

	app, err := New(ctx, dir)
	require.NoError(t, err)

	note, err := app.Notes.Create(ctx, core.Note{Title: "persisted"})
	require.NoError(t, err)
	_, err = app.Cards.Create(ctx, core.Card{Question: "persisted?"})
	require.NoError(t, err)

	// A fresh App over the same directory sees the same records.
	reopened, err := New(ctx, dir)
	require.NoError(t, err)
	require.Equal(t, 1, reopened.Notes.Len())
	require.Equal(t, 1, reopened.Cards.Len())

	got, err := reopened.Notes.Get(note.ID)
	require.NoError(t, err)
	assert.Equal(t, "persisted", got.Title)
}

func TestNew_CollectionsAreIndependent(t *testing.T) {
	dir := t.TempDir()
	ctx := context.Background()

	app, err := New(ctx, dir)
	require.NoError(t, err)

	_, err = app.Notes.Create(ctx, core.Note{Title: "only a note"})
	require.NoError(t, err)

	assert.Equal(t, 1, app.Notes.Len())
	assert.Zero(t, app.Cards.Len())
}

func TestNew_SurvivesCorruptCollectionFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.json"), []byte("{broken"), 0644))

	app, err := New(context.Background(), dir)
	require.NoError(t, err, "a corrupt value must not block the keeper from loading")
	assert.Zero(t, app.Notes.Len())
}

func TestLoadConfig(t *testing.T) {
	t.Run("missing file", func(t *testing.T) {
		cfg, err := LoadConfig(t.TempDir())
		require.NoError(t, err)
		assert.Zero(t, cfg)
	})

	t.Run("valid file", func(t *testing.T) {
		dir := t.TempDir()
		require.NoError(t, os.WriteFile(filepath.Join(dir, ConfigName), []byte("event_buffer: 64\n"), 0644))

		cfg, err := LoadConfig(dir)
		require.NoError(t, err)
		assert.Equal(t, 64, cfg.EventBuffer)
	})

	t.Run("unparseable file", func(t *testing.T) {
		dir := t.TempDir()
		require.NoError(t, os.WriteFile(filepath.Join(dir, ConfigName), []byte(":\n bad"), 0644))

		_, err := LoadConfig(dir)
		require.Error(t, err)
	})
}

func TestSubscribeAll_MergesBothCollections(t *testing.T) {
	dir := t.TempDir()
	ctx := context.Background()

	app, err := New(ctx, dir)
	require.NoError(t, err)

	events, cancel := app.SubscribeAll()
	defer cancel()

	_, err = app.Notes.Create(ctx, core.Note{Title: "n"})
	require.NoError(t, err)
	_, err = app.Cards.Create(ctx, core.Card{Question: "c?"})
	require.NoError(t, err)

	seen := map[string]bool{}
	for i := 0; i < 2; i++ {
		select {
		case ev := <-events:
			seen[ev.Key] = true
		case <-time.After(time.Second):
			t.Fatal("timed out waiting for merged events")
		}
	}
	assert.True(t, seen[core.KeyNotes])
	assert.True(t, seen[core.KeyCards])
}

func TestSubscribeAll_CancelClosesMergedChannel(t *testing.T) {
	dir := t.TempDir()
	ctx := context.Background()

	app, err := New(ctx, dir)
	require.NoError(t, err)

	events, cancel := app.SubscribeAll()
	cancel()
	cancel() // idempotent

	// A consumer ranging over the merged channel must terminate.
	closed := make(chan struct{})
	go func() {
		defer close(closed)
		for range events {
		}
	}()

	select {
	case <-closed:
	case <-time.After(time.Second):
		t.Fatal("merged channel did not close after cancel")
	}
}
