package lifecycle_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	bridge "github.com/aretw0/satchel/pkg/adapters/lifecycle"
	"github.com/aretw0/satchel/pkg/core"
)

func TestSource_BridgesEvents(t *testing.T) {
	in := make(chan core.Event, 1)
	src := bridge.NewSource(in)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	require.NoError(t, src.Start(ctx))

	in <- core.Event{Type: core.EventCreate, Key: core.KeyNotes, ID: "a"}

	select {
	case ev := <-src.Events():
		assert.Equal(t, "CREATE notes/a", ev.String())
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for bridged event")
	}
}

func TestSource_ClosesWhenUpstreamCloses(t *testing.T) {
	in := make(chan core.Event)
	src := bridge.NewSource(in)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	require.NoError(t, src.Start(ctx))

	close(in)

	select {
	case _, ok := <-src.Events():
		assert.False(t, ok, "bridge output should close with its upstream")
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for bridge to close")
	}
}
