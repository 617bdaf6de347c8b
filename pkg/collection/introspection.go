package collection

import (
	"github.com/aretw0/introspection"

	"github.com/aretw0/satchel/pkg/core"
)

// StoreState exposes internal state for observability.
type StoreState struct {
	Key         string `json:"key"`
	Records     int    `json:"records"`
	Pinned      int    `json:"pinned"`
	Subscribers int    `json:"subscribers"`
}

// State implements introspection.Introspectable.
func (s *Store[R]) State() any {
	s.subMu.Lock()
	subs := len(s.subs)
	s.subMu.Unlock()

	return StoreState{
		Key:         s.key,
		Records:     s.Len(),
		Pinned:      s.PinnedCount(),
		Subscribers: subs,
	}
}

// ComponentType implements introspection.Component.
func (s *Store[R]) ComponentType() string {
	return "collection"
}

var _ introspection.Introspectable = (*Store[core.Note])(nil)
var _ introspection.Component = (*Store[core.Card])(nil)
