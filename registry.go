package framer

import (
	"reflect"
	"sync"
)

// registryKey combines type and configuration for cache lookup.
type registryKey struct {
	typ         reflect.Type
	codecType   reflect.Type
	contentType string
	capacity    int
	checksum    ChecksumAlgo
	target      Target
}

var (
	registry   = make(map[registryKey]any)
	registryMu sync.RWMutex
)

// Use returns a cached framer or builds a new one.
// The framer is cached by type, codec type and content type, capacity,
// checksum algorithm and target.
func Use[T any](opts ...Option) (*Framer[T], error) {
	cfg := buildConfig(opts)
	if err := cfg.validate(); err != nil {
		return nil, err
	}

	key := registryKey{
		typ:         reflect.TypeFor[T](),
		codecType:   reflect.TypeOf(cfg.codec),
		contentType: cfg.codec.ContentType(),
		capacity:    cfg.capacity,
		checksum:    cfg.checksum,
		target:      cfg.target,
	}

	// Fast path: read-lock cache check
	registryMu.RLock()
	if cached, ok := registry[key]; ok {
		registryMu.RUnlock()
		return cached.(*Framer[T]), nil
	}
	registryMu.RUnlock()

	// Slow path: build and cache with write-lock
	registryMu.Lock()
	defer registryMu.Unlock()

	// Double-check pattern
	if cached, ok := registry[key]; ok {
		return cached.(*Framer[T]), nil
	}

	f, err := New[T](opts...)
	if err != nil {
		return nil, err
	}

	registry[key] = f
	return f, nil
}

// Reset clears the framer registry.
// This is primarily useful for test isolation.
func Reset() {
	registryMu.Lock()
	defer registryMu.Unlock()
	registry = make(map[registryKey]any)
}
