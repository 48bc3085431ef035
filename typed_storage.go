/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package modelstore

import (
	"fmt"
	"reflect"
	"sync"
)

// TypedStorage provides type-safe management of providers for a specific type T
type TypedStorage[T any] struct {
	mu        sync.RWMutex
	providers map[string]*Provider[T]
}

// NewTypedStorage creates a new TypedStorage for type T
func NewTypedStorage[T any]() *TypedStorage[T] {
	return &TypedStorage[T]{
		providers: make(map[string]*Provider[T]),
	}
}

// Register adds a provider with the given key
func (ts *TypedStorage[T]) Register(key string, p *Provider[T]) error {
	ts.mu.Lock()
	defer ts.mu.Unlock()

	if _, exists := ts.providers[key]; exists {
		return fmt.Errorf("provider with key %q already registered", key)
	}

	ts.providers[key] = p
	return nil
}

// Get retrieves a provider by key
func (ts *TypedStorage[T]) Get(key string) (*Provider[T], error) {
	ts.mu.RLock()
	defer ts.mu.RUnlock()

	p, exists := ts.providers[key]
	if !exists {
		return nil, fmt.Errorf("provider with key %q not found", key)
	}

	return p, nil
}

// Remove deletes a provider by key
func (ts *TypedStorage[T]) Remove(key string) error {
	ts.mu.Lock()
	defer ts.mu.Unlock()

	if _, exists := ts.providers[key]; !exists {
		return fmt.Errorf("provider with key %q not found", key)
	}

	delete(ts.providers, key)
	return nil
}

// List returns all registered provider keys
func (ts *TypedStorage[T]) List() []string {
	ts.mu.RLock()
	defer ts.mu.RUnlock()

	keys := make([]string, 0, len(ts.providers))
	for k := range ts.providers {
		keys = append(keys, k)
	}
	return keys
}

// MultiTypeStorage manages TypedStorage instances for different types
type MultiTypeStorage struct {
	mu       sync.RWMutex
	storages map[reflect.Type]interface{}
}

// NewMultiTypeStorage creates a new MultiTypeStorage
func NewMultiTypeStorage() *MultiTypeStorage {
	return &MultiTypeStorage{
		storages: make(map[reflect.Type]interface{}),
	}
}

// GetTypedStorage returns a TypedStorage for the specified type, creating it if necessary
func GetTypedStorage[T any](mts *MultiTypeStorage) *TypedStorage[T] {
	mts.mu.Lock()
	defer mts.mu.Unlock()

	var zero T
	typ := reflect.TypeOf(zero)

	if storage, exists := mts.storages[typ]; exists {
		return storage.(*TypedStorage[T])
	}

	// Create new typed storage
	newStorage := NewTypedStorage[T]()
	mts.storages[typ] = newStorage
	return newStorage
}

// Convenience functions for common operations

// RegisterProvider registers a provider for type T under the given key
func RegisterProvider[T any](mts *MultiTypeStorage, key string, p *Provider[T]) error {
	storage := GetTypedStorage[T](mts)
	return storage.Register(key, p)
}

// GetProvider retrieves the provider for type T registered under the given key
func GetProvider[T any](mts *MultiTypeStorage, key string) (*Provider[T], error) {
	storage := GetTypedStorage[T](mts)
	return storage.Get(key)
}

// RemoveProvider removes the provider for type T registered under the given key
func RemoveProvider[T any](mts *MultiTypeStorage, key string) error {
	storage := GetTypedStorage[T](mts)
	return storage.Remove(key)
}

// ListProviders lists all provider keys registered for type T
func ListProviders[T any](mts *MultiTypeStorage) []string {
	storage := GetTypedStorage[T](mts)
	return storage.List()
}
