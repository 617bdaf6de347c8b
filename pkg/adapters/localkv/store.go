// Package localkv implements core.Storage on top of a local directory:
// one JSON file per key, overwritten in full on every save.
package localkv

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/aretw0/satchel/pkg/core"
)

// Store is a file-backed key-value store. Each key maps to {Dir}/{key}.json
// and every Save replaces the whole value atomically.
type Store struct {
	Dir    string
	logger *slog.Logger

	mu            sync.RWMutex
	watcherActive bool
}

// New creates a store rooted at dir. A nil logger falls back to the default.
func New(dir string, logger *slog.Logger) *Store {
	if logger == nil {
		logger = slog.Default()
	}
	return &Store{Dir: dir, logger: logger}
}

// Initialize ensures the keeper directory exists.
func (s *Store) Initialize(ctx context.Context) error {
	if err := os.MkdirAll(s.Dir, 0755); err != nil {
		return fmt.Errorf("failed to create keeper directory: %w", err)
	}
	return nil
}

// Load reads the raw value stored under key. A missing key is not an
// error: it yields (nil, nil) so callers can treat it as an empty value.
func (s *Store) Load(ctx context.Context, key string) ([]byte, error) {
	path, err := s.path(key)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", key, err)
	}
	return data, nil
}

// Save overwrites the value under key. The write is atomic (temp file +
// rename), so a crash mid-save leaves the previous value intact.
func (s *Store) Save(ctx context.Context, key string, data []byte) error {
	path, err := s.path(key)
	if err != nil {
		return err
	}

	s.logger.Debug("writing key to disk", "key", key, "bytes", len(data))

	if err := writeFileAtomic(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", key, err)
	}
	return nil
}

func (s *Store) path(key string) (string, error) {
	if key == "" || strings.ContainsAny(key, `/\`) {
		return "", fmt.Errorf("invalid storage key: %q", key)
	}
	return filepath.Join(s.Dir, key+".json"), nil
}

func (s *Store) setWatcherActive(active bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.watcherActive = active
}

var _ core.Storage = (*Store)(nil)
var _ core.Watchable = (*Store)(nil)
