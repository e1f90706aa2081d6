// Package memstore is an in-memory run catalog for tests and
// catalog-less runs.
package memstore

import (
	"context"
	"sort"
	"sync"

	"github.com/cognicore/lexipack/pkg/lexipack/category"
	"github.com/cognicore/lexipack/pkg/lexipack/store"
)

// Store is an in-memory implementation of store.Store.
type Store struct {
	mu   sync.RWMutex
	runs map[string]store.Run
}

// New creates a new in-memory store.
func New() *Store {
	return &Store{runs: make(map[string]store.Run)}
}

// Close implements store.Store.
func (s *Store) Close() error { return nil }

// RecordRun stores a run record, keyed by ID.
func (s *Store) RecordRun(ctx context.Context, r store.Run) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.runs[r.ID] = copyRun(r)
	return nil
}

// GetRun returns a run by ID.
func (s *Store) GetRun(ctx context.Context, id string) (store.Run, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	r, ok := s.runs[id]
	if !ok {
		return store.Run{}, false, nil
	}
	return copyRun(r), true, nil
}

// ListRuns returns up to limit runs, newest first. ULIDs sort
// lexicographically by creation time, so the ID order is the time order.
func (s *Store) ListRuns(ctx context.Context, limit int) ([]store.Run, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	ids := make([]string, 0, len(s.runs))
	for id := range s.runs {
		ids = append(ids, id)
	}
	sort.Sort(sort.Reverse(sort.StringSlice(ids)))

	if limit > 0 && len(ids) > limit {
		ids = ids[:limit]
	}

	runs := make([]store.Run, 0, len(ids))
	for _, id := range ids {
		runs = append(runs, copyRun(s.runs[id]))
	}
	return runs, nil
}

func copyRun(r store.Run) store.Run {
	out := r
	out.CategoryCounts = make(map[category.Category]int, len(r.CategoryCounts))
	for cat, n := range r.CategoryCounts {
		out.CategoryCounts[cat] = n
	}
	out.FileCounts = make(map[string]int, len(r.FileCounts))
	for name, n := range r.FileCounts {
		out.FileCounts[name] = n
	}
	return out
}
