package localkv

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/aretw0/introspection"
)

// StoreState exposes internal state for observability.
type StoreState struct {
	Dir           string   `json:"dir"`
	Keys          []string `json:"keys"`
	WatcherActive bool     `json:"watcher_active"`
}

// State implements introspection.Introspectable.
func (s *Store) State() any {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var keys []string
	entries, err := os.ReadDir(s.Dir)
	if err == nil {
		for _, e := range entries {
			if e.IsDir() {
				continue
			}
			name := e.Name()
			if strings.HasPrefix(name, TempFilePrefix) {
				continue
			}
			if filepath.Ext(name) != ".json" {
				continue
			}
			keys = append(keys, strings.TrimSuffix(name, ".json"))
		}
	}

	return StoreState{
		Dir:           s.Dir,
		Keys:          keys,
		WatcherActive: s.watcherActive,
	}
}

// ComponentType implements introspection.Component.
func (s *Store) ComponentType() string {
	return "storage"
}

var _ introspection.Introspectable = (*Store)(nil)
var _ introspection.Component = (*Store)(nil)
