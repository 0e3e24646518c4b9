// Package syncutil provides concurrency-safe containers.
package syncutil

import "sync"

// RWMap is a map guarded by a [sync.RWMutex], lookups run concurrently.
// The zero value is an empty map ready to use.
type RWMap[K comparable, V any] struct {
	mu sync.RWMutex
	m  map[K]V
}

// Get returns the value stored under key.
func (rm *RWMap[K, V]) Get(key K) (val V, ok bool) {
	if rm == nil {
		return val, false
	}
	rm.mu.RLock()
	val, ok = rm.m[key]
	rm.mu.RUnlock()
	return val, ok
}

// Set stores val under key, replacing the previous value.
func (rm *RWMap[K, V]) Set(key K, val V) {
	rm.mu.Lock()
	if rm.m == nil {
		rm.m = make(map[K]V)
	}
	rm.m[key] = val
	rm.mu.Unlock()
}

// Delete removes key and reports whether it was present.
func (rm *RWMap[K, V]) Delete(key K) bool {
	rm.mu.Lock()
	defer rm.mu.Unlock()
	_, ok := rm.m[key]
	delete(rm.m, key)
	return ok
}
