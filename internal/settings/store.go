// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package settings

import (
	"sync"

	"github.com/MKhiriev/go-lms/internal/logger"
)

// Store is the process-wide option store. It is safe for concurrent readers;
// the only writers are [Store.MergeDefaults] and [Store.Reload].
type Store struct {
	mu   sync.RWMutex
	tree Tree

	logger *logger.Logger
}

// NewStore builds a Store from the operator's options and seeds it with
// defaults. operator is copied, so the caller may reuse it.
func NewStore(operator, defaults Tree, log *logger.Logger) *Store {
	if log == nil {
		log = logger.Nop()
	}

	tree := operator.Clone()
	MergeDefaults(tree, defaults)

	return &Store{
		tree:   tree,
		logger: log,
	}
}

// MergeDefaults seeds the store with every default it does not hold yet.
func (s *Store) MergeDefaults(defaults Tree) {
	s.mu.Lock()
	defer s.mu.Unlock()

	MergeDefaults(s.tree, defaults)
}

// Reload replaces the store contents with a fresh operator tree seeded with
// defaults. The new tree is built before the write lock is taken, so readers
// never observe a half-merged state.
func (s *Store) Reload(operator, defaults Tree) {
	tree := operator.Clone()
	MergeDefaults(tree, defaults)

	s.mu.Lock()
	s.tree = tree
	s.mu.Unlock()

	s.logger.Debug().Int("sections", len(tree)).Msg("option store reloaded")
}

// Snapshot returns a deep copy of the current options.
func (s *Store) Snapshot() Tree {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.tree.Clone()
}

// Sections returns the section names currently present, sorted.
func (s *Store) Sections() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.tree.Sections()
}

func (s *Store) lookup(section, key string) (Value, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.tree.Lookup(section, key)
}
