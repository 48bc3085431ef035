/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package modelstore

import (
	"fmt"
	"sync"
)

// Storage is a higher-level interface that manages a collection of Provider instances.
// Note that its methods are not generic; they use the empty interface (any) to store and retrieve Providers.
type Storage interface {
	// RegisterProvider registers a Provider under a given key (for example, "model-configs").
	RegisterProvider(key string, p any) error
	// GetProvider retrieves the registered Provider for a given key.
	// The caller must type-assert the returned value to the appropriate Provider type.
	GetProvider(key string) (any, error)
}

// storageManager is a thread-safe implementation of the Storage interface.
type storageManager struct {
	mu        sync.RWMutex
	providers map[string]any
}

// NewStorageManager creates and returns a new Storage implementation.
func NewStorageManager() Storage {
	return &storageManager{
		providers: make(map[string]any),
	}
}

// RegisterProvider stores the provided Provider under the given key.
func (sm *storageManager) RegisterProvider(key string, p any) error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if _, exists := sm.providers[key]; exists {
		return fmt.Errorf("provider with key %q already registered", key)
	}
	sm.providers[key] = p
	return nil
}

// GetProvider retrieves the Provider associated with the given key.
func (sm *storageManager) GetProvider(key string) (any, error) {
	sm.mu.RLock()
	defer sm.mu.RUnlock()

	p, exists := sm.providers[key]
	if !exists {
		return nil, fmt.Errorf("provider with key %q not found", key)
	}
	return p, nil
}
