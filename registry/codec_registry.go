/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package registry

import (
	"fmt"
	"sync"
)

// codecRegistry holds the mapping from a codec name (like "json") to its
// codec value. Values are stored untyped because codecs are generic; the
// typed accessor performs the assertion.
var (
	codecRegistry = make(map[string]any)
	codecMu       sync.RWMutex
)

// RegisterCodec registers a codec under a given name.
// If a codec is already registered under the name, it panics to prevent
// accidental overrides.
func RegisterCodec(name string, c any) {
	codecMu.Lock()
	defer codecMu.Unlock()

	if _, exists := codecRegistry[name]; exists {
		panic(fmt.Sprintf("codec registry: codec with name %q already registered", name))
	}
	codecRegistry[name] = c
}

// GetCodec returns the codec registered under the given name, asserted to
// type C. If no codec is registered, or the registered codec is not a C,
// it returns an error.
func GetCodec[C any](name string) (C, error) {
	codecMu.RLock()
	defer codecMu.RUnlock()

	var zero C
	raw, ok := codecRegistry[name]
	if !ok {
		return zero, fmt.Errorf("codec registry: no codec registered for name %q", name)
	}
	c, ok := raw.(C)
	if !ok {
		return zero, fmt.Errorf("codec registry: codec %q has type %T, not %T", name, raw, zero)
	}
	return c, nil
}
