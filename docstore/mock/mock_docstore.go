/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

// Package mock provides an in-memory implementation of the DocumentStore
// interface for testing
package mock

import (
	"context"
	"path"
	"sort"
	"sync"

	"github.com/suparena/modelstore/errors"
	"github.com/suparena/modelstore/storagemodels"
)

// DocumentStore is an in-memory mock of docstore.DocumentStore.
//
// It keeps one map per index, so tests can stage documents across several
// index generations and exercise latest-version resolution. Create-only
// writes are atomic per id under the store mutex, which makes the
// concurrency properties of the provider observable in tests.
type DocumentStore struct {
	mu           sync.RWMutex
	indices      map[string]map[string][]byte
	createErr    error
	searchErr    error
	deleteErr    error
	missingIndex bool
}

// New creates a new mock DocumentStore.
func New() *DocumentStore {
	return &DocumentStore{
		indices: make(map[string]map[string][]byte),
	}
}

// WithCreateError makes CreateOnly return an error
func (m *DocumentStore) WithCreateError(err error) *DocumentStore {
	m.createErr = err
	return m
}

// WithSearchError makes SearchLatest return an error
func (m *DocumentStore) WithSearchError(err error) *DocumentStore {
	m.searchErr = err
	return m
}

// WithDeleteError makes DeleteByID return an error
func (m *DocumentStore) WithDeleteError(err error) *DocumentStore {
	m.deleteErr = err
	return m
}

// WithMissingIndex makes SearchLatest and DeleteByID report
// errors.ErrIndexNotFound, simulating a backend whose pattern resolves
// to an index that was never created.
func (m *DocumentStore) WithMissingIndex() *DocumentStore {
	m.missingIndex = true
	return m
}

// CreateOnly writes a new document, failing with ErrConflict if the id is
// already present in the index. The index is created on first write.
func (m *DocumentStore) CreateOnly(ctx context.Context, index, id string, payload []byte) error {
	if m.createErr != nil {
		return m.createErr
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	docs, ok := m.indices[index]
	if !ok {
		docs = make(map[string][]byte)
		m.indices[index] = docs
	}
	if _, exists := docs[id]; exists {
		return errors.ErrConflict
	}

	stored := make([]byte, len(payload))
	copy(stored, payload)
	docs[id] = stored
	return nil
}

// SearchLatest returns hits for params.DocID across indices matching
// params.Pattern. A pattern matching no index yields zero hits, matching
// wildcard search semantics.
func (m *DocumentStore) SearchLatest(ctx context.Context, params *storagemodels.SearchParams) ([]storagemodels.Hit, error) {
	if m.searchErr != nil {
		return nil, m.searchErr
	}
	if m.missingIndex {
		return nil, errors.ErrIndexNotFound
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	matched := m.matchIndices(params.Pattern)
	if params.SortIndexDesc {
		sort.Sort(sort.Reverse(sort.StringSlice(matched)))
	} else {
		sort.Strings(matched)
	}

	var hits []storagemodels.Hit
	for _, index := range matched {
		payload, ok := m.indices[index][params.DocID]
		if !ok {
			continue
		}
		source := make([]byte, len(payload))
		copy(source, payload)
		hits = append(hits, storagemodels.Hit{
			Index:  index,
			DocID:  params.DocID,
			Source: source,
		})
		if params.Size > 0 && len(hits) >= params.Size {
			break
		}
	}
	return hits, nil
}

// DeleteByID removes params.DocID from every index matching
// params.Pattern and returns the number of documents removed.
func (m *DocumentStore) DeleteByID(ctx context.Context, params *storagemodels.DeleteParams) (int64, error) {
	if m.deleteErr != nil {
		return 0, m.deleteErr
	}
	if m.missingIndex {
		return 0, errors.ErrIndexNotFound
	}
	if err := ctx.Err(); err != nil {
		return 0, err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	var deleted int64
	for _, index := range m.matchIndices(params.Pattern) {
		if _, ok := m.indices[index][params.DocID]; ok {
			delete(m.indices[index], params.DocID)
			deleted++
		}
	}
	return deleted, nil
}

// matchIndices returns the names of indices matching the glob pattern.
// Callers must hold the mutex.
func (m *DocumentStore) matchIndices(pattern string) []string {
	var matched []string
	for index := range m.indices {
		if ok, err := path.Match(pattern, index); err == nil && ok {
			matched = append(matched, index)
		}
	}
	return matched
}

// Helper methods for testing

// Seed places a document directly into an index, creating the index if
// needed.
func (m *DocumentStore) Seed(index, id string, payload []byte) {
	m.mu.Lock()
	defer m.mu.Unlock()

	docs, ok := m.indices[index]
	if !ok {
		docs = make(map[string][]byte)
		m.indices[index] = docs
	}
	stored := make([]byte, len(payload))
	copy(stored, payload)
	docs[id] = stored
}

// Count returns the number of documents across all indices.
func (m *DocumentStore) Count() int {
	m.mu.RLock()
	defer m.mu.RUnlock()

	n := 0
	for _, docs := range m.indices {
		n += len(docs)
	}
	return n
}

// Payload returns the stored payload for id in index, if present.
func (m *DocumentStore) Payload(index, id string) ([]byte, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	payload, ok := m.indices[index][id]
	if !ok {
		return nil, false
	}
	out := make([]byte, len(payload))
	copy(out, payload)
	return out, true
}

// Clear removes all indices and documents.
func (m *DocumentStore) Clear() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.indices = make(map[string]map[string][]byte)
}
