/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package registry

import (
	"reflect"
	"sync"

	"github.com/suparena/modelstore/storagemodels"
)

// indexRegistry associates Go entity types with their index descriptors.

var (
	indexRegistry = make(map[reflect.Type]storagemodels.IndexDescriptor)
	mu            sync.RWMutex
)

// RegisterIndexDescriptor associates a Go type T with the write index and
// index pattern its documents live in.
func RegisterIndexDescriptor[T any](desc storagemodels.IndexDescriptor) {
	var zero T
	t := reflect.TypeOf(zero)

	mu.Lock()
	defer mu.Unlock()
	indexRegistry[t] = desc
}

// GetIndexDescriptor retrieves the index descriptor for type T, if any.
func GetIndexDescriptor[T any]() (storagemodels.IndexDescriptor, bool) {
	var zero T
	t := reflect.TypeOf(zero)

	mu.RLock()
	defer mu.RUnlock()
	d, ok := indexRegistry[t]
	return d, ok
}

// ListIndexDescriptors returns a snapshot of all registered descriptors,
// keyed by type name.
func ListIndexDescriptors() map[string]storagemodels.IndexDescriptor {
	mu.RLock()
	defer mu.RUnlock()

	out := make(map[string]storagemodels.IndexDescriptor, len(indexRegistry))
	for t, d := range indexRegistry {
		out[t.String()] = d
	}
	return out
}
