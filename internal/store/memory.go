// internal/store/memory.go
//
// In-memory implementation of the Store interface.
// Used in tests and whenever no database path is configured.
//
// Characteristics:
//   - Stores results keyed by ID in a map.
//   - Concurrency-safe via RWMutex (concurrent reads allowed, writes exclusive).
//   - State is lost when the process restarts.

package store

import (
	"context"
	"sync"
)

// memory is an in-memory map-based Store implementation.
type memory struct {
	mu      sync.RWMutex      // guards results
	results map[string]Result // keyed by Result.ID
}

// NewMemoryStore constructs a new in-memory Store.
func NewMemoryStore() Store {
	return &memory{results: make(map[string]Result)}
}

// Save adds the result if neither its ID nor its daily slot is taken.
func (m *memory) Save(ctx context.Context, r *Result) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.results[r.ID]; ok {
		return ErrAlreadyRecorded
	}
	if r.Mode == ModeDaily && m.playedLocked(r.Player, r.Date) {
		return ErrAlreadyRecorded
	}
	m.results[r.ID] = clone(r)
	return nil
}

// Get looks up a result by ID.
func (m *memory) Get(ctx context.Context, id string) (*Result, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if r, ok := m.results[id]; ok {
		out := clone(&r)
		return &out, nil
	}
	return nil, ErrNotFound
}

func (m *memory) Top(ctx context.Context, limit int) ([]Result, error) {
	return m.filter(limit, func(r Result) bool { return r.Completed }), nil
}

func (m *memory) Daily(ctx context.Context, date string, limit int) ([]Result, error) {
	return m.filter(limit, func(r Result) bool {
		return r.Completed && r.Mode == ModeDaily && r.Date == date
	}), nil
}

func (m *memory) AlreadyPlayed(ctx context.Context, player, date string) (bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.playedLocked(player, date), nil
}

func (m *memory) Delete(ctx context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.results[id]; !ok {
		return ErrNotFound
	}
	delete(m.results, id)
	return nil
}

func (m *memory) Close() error { return nil }

// playedLocked requires m.mu to be held.
func (m *memory) playedLocked(player, date string) bool {
	for _, r := range m.results {
		if r.Mode == ModeDaily && r.Player == player && r.Date == date {
			return true
		}
	}
	return false
}

func (m *memory) filter(limit int, keep func(Result) bool) []Result {
	m.mu.RLock()
	out := make([]Result, 0, len(m.results))
	for _, r := range m.results {
		if keep(r) {
			out = append(out, clone(&r))
		}
	}
	m.mu.RUnlock()

	rank(out)
	if n := normLimit(limit); len(out) > n {
		out = out[:n]
	}
	return out
}

// clone copies r so callers never share the Scores map with the store.
func clone(r *Result) Result {
	out := *r
	out.Scores = make(map[string]int, len(r.Scores))
	for k, v := range r.Scores {
		out.Scores[k] = v
	}
	return out
}
