package config

import "sync/atomic"

// Store owns the current Merged snapshot. Reload builds a fresh
// snapshot and installs it with a single pointer swap; in-flight
// resolution calls keep the snapshot they started with.
type Store struct {
	compiled *Document
	current  atomic.Pointer[Merged]
}

// NewStore performs the initial load and returns a store holding the
// resulting snapshot.
func NewStore(compiled, user *Document) (*Store, error) {
	merged, err := Load(compiled, user)
	if err != nil {
		return nil, err
	}
	s := &Store{compiled: compiled}
	s.current.Store(merged)
	return s, nil
}

// Current returns the live snapshot. The returned value is immutable.
func (s *Store) Current() *Merged {
	return s.current.Load()
}

// Reload re-merges with a new user document and installs the result.
// On failure the previous snapshot stays live and is returned alongside
// the error by Current.
func (s *Store) Reload(user *Document) (*Merged, error) {
	merged, err := Load(s.compiled, user)
	if err != nil {
		return nil, err
	}
	s.current.Store(merged)
	return merged, nil
}
