package store

import (
	"sync"
)

// MemoryStore is an in-memory implementation of [Store].
//
// Results are keyed by station name, with new results replacing previous
// values while keeping the station's original position.
type MemoryStore struct {
	mu      sync.RWMutex
	results map[string]PlanResult
	order   []string
}

// NewMemoryStore creates a new in-memory [Store] implementation.
//
// The store is immediately ready for use. No cleanup is required when done.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		results: make(map[string]PlanResult),
	}
}

// Update stores a [PlanResult].
func (m *MemoryStore) Update(result PlanResult) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, exists := m.results[result.Station]; !exists {
		m.order = append(m.order, result.Station)
	}
	m.results[result.Station] = copyResult(result)
}

// Get returns the stored result for a station.
func (m *MemoryStore) Get(station string) (PlanResult, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	r, ok := m.results[station]
	if !ok {
		return PlanResult{}, false
	}
	return copyResult(r), true
}

// GetAll returns a snapshot of all stored results in first-insertion order.
func (m *MemoryStore) GetAll() []PlanResult {
	m.mu.RLock()
	defer m.mu.RUnlock()

	results := make([]PlanResult, 0, len(m.order))
	for _, station := range m.order {
		results = append(results, copyResult(m.results[station]))
	}
	return results
}

// copyResult detaches the labels map so callers cannot mutate stored state.
func copyResult(r PlanResult) PlanResult {
	if r.Labels != nil {
		labels := make(map[string]string, len(r.Labels))
		for k, v := range r.Labels {
			labels[k] = v
		}
		r.Labels = labels
	}
	return r
}
