package transfer_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/satchel/pkg/transfer"
)

func writeTempFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestRunner_ImportFileAppliesOnSuccess(t *testing.T) {
	runner := transfer.NewRunner(nil)
	path := writeTempFile(t, "in.json", `[{"id":"a"}]`)

	var applied []byte
	done := runner.ImportFile(context.Background(), path, func(ctx context.Context, data []byte) error {
		applied = data
		return nil
	})

	require.NoError(t, <-done)
	assert.JSONEq(t, `[{"id":"a"}]`, string(applied))
}

func TestRunner_ImportFileMissingFile(t *testing.T) {
	runner := transfer.NewRunner(nil)

	applyCalled := false
	done := runner.ImportFile(context.Background(), filepath.Join(t.TempDir(), "absent.json"), func(ctx context.Context, data []byte) error {
		applyCalled = true
		return nil
	})

	require.Error(t, <-done)
	assert.False(t, applyCalled, "apply must not run when the read fails")
}

// TestRunner_LastWriterWins documents a known hazard rather than a bug:
// two overlapping imports are not coordinated, so the one whose completion
// callback fires last determines the final collection, regardless of which
// was started first.
func TestRunner_LastWriterWins(t *testing.T) {
	runner := transfer.NewRunner(nil)
	first := writeTempFile(t, "first.json", `["first"]`)
	second := writeTempFile(t, "second.json", `["second"]`)

	var state string
	firstMayFinish := make(chan struct{})
	secondDone := make(chan struct{})

	done1 := runner.ImportFile(context.Background(), first, func(ctx context.Context, data []byte) error {
		// Simulate a slow first import: it completes only after the
		// second one has already replaced the collection.
		<-firstMayFinish
		state = string(data)
		return nil
	})

	done2 := runner.ImportFile(context.Background(), second, func(ctx context.Context, data []byte) error {
		state = string(data)
		close(secondDone)
		return nil
	})

	select {
	case <-secondDone:
	case <-time.After(2 * time.Second):
		t.Fatal("second import did not complete")
	}
	require.NoError(t, <-done2)

	close(firstMayFinish)
	require.NoError(t, <-done1)

	assert.Equal(t, `["first"]`, state, "the later completion overwrites the earlier one")
}
