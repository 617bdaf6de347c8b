// Package prefs persists presentation preferences. They live beside the
// collections in the same storage but carry no state-consistency
// requirements.
package prefs

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/aretw0/satchel/pkg/core"
)

// Service reads and writes presentation preferences.
type Service struct {
	storage core.Storage
	logger  *slog.Logger
}

// NewService creates a preference service over storage. A nil logger falls
// back to the default.
func NewService(storage core.Storage, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{storage: storage, logger: logger}
}

// DarkMode reads the dark-mode flag. Absent or corrupt values degrade to
// false; presentation state is never worth an error.
func (s *Service) DarkMode(ctx context.Context) bool {
	data, err := s.storage.Load(ctx, core.KeyDarkMode)
	if err != nil || len(data) == 0 {
		return false
	}

	var enabled bool
	if err := json.Unmarshal(data, &enabled); err != nil {
		s.logger.Warn("corrupt dark-mode value, defaulting to off", "error", err)
		return false
	}
	return enabled
}

// SetDarkMode persists the dark-mode flag as a bare JSON boolean.
func (s *Service) SetDarkMode(ctx context.Context, enabled bool) error {
	data, err := json.Marshal(enabled)
	if err != nil {
		return err
	}
	if err := s.storage.Save(ctx, core.KeyDarkMode, data); err != nil {
		return fmt.Errorf("failed to persist dark-mode preference: %w", err)
	}
	return nil
}
