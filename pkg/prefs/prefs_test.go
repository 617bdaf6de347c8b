package prefs_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/satchel/pkg/core"
	"github.com/aretw0/satchel/pkg/prefs"
)

type fakeStorage struct {
	values map[string][]byte
}

func (f *fakeStorage) Initialize(ctx context.Context) error { return nil }

func (f *fakeStorage) Load(ctx context.Context, key string) ([]byte, error) {
	return f.values[key], nil
}

func (f *fakeStorage) Save(ctx context.Context, key string, data []byte) error {
	f.values[key] = data
	return nil
}

func TestDarkMode_DefaultsToOff(t *testing.T) {
	svc := prefs.NewService(&fakeStorage{values: map[string][]byte{}}, nil)
	assert.False(t, svc.DarkMode(context.Background()))
}

func TestDarkMode_CorruptValueDefaultsToOff(t *testing.T) {
	storage := &fakeStorage{values: map[string][]byte{
		core.KeyDarkMode: []byte("maybe"),
	}}
	svc := prefs.NewService(storage, nil)
	assert.False(t, svc.DarkMode(context.Background()))
}

func TestDarkMode_RoundTrip(t *testing.T) {
	storage := &fakeStorage{values: map[string][]byte{}}
	svc := prefs.NewService(storage, nil)
	ctx := context.Background()

	require.NoError(t, svc.SetDarkMode(ctx, true))
	assert.True(t, svc.DarkMode(ctx))

	// Persisted as a bare JSON boolean.
	assert.Equal(t, "true", string(storage.values[core.KeyDarkMode]))

	require.NoError(t, svc.SetDarkMode(ctx, false))
	assert.False(t, svc.DarkMode(ctx))
}
