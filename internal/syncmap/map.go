package syncmap

import "sync"

// Map is a thread-safe generic map structure
type Map[K comparable, T any] struct {
	mux sync.RWMutex
	m   map[K]T
}

// New creates a new instance of Map
func New[K comparable, T any]() *Map[K, T] {
	return &Map[K, T]{
		m: make(map[K]T),
	}
}

// Get retrieves an item by key, zero value when absent
func (r *Map[K, T]) Get(key K) T {
	v, _ := r.Lookup(key)
	return v
}

// Lookup retrieves an item by key and reports its presence
func (r *Map[K, T]) Lookup(key K) (T, bool) {
	r.mux.RLock()
	defer r.mux.RUnlock()
	v, ok := r.m[key]
	return v, ok
}

// Set adds or updates an item by key
func (r *Map[K, T]) Set(key K, value T) {
	r.mux.Lock()
	defer r.mux.Unlock()
	r.m[key] = value
}

// GetOrLoad returns the cached item or stores the one produced by load.
// load runs outside the lock; when two callers race, the first stored value wins.
func (r *Map[K, T]) GetOrLoad(key K, load func() (T, error)) (T, error) {
	if v, ok := r.Lookup(key); ok {
		return v, nil
	}
	v, err := load()
	if err != nil {
		return v, err
	}
	r.mux.Lock()
	defer r.mux.Unlock()
	if prev, ok := r.m[key]; ok {
		return prev, nil
	}
	r.m[key] = v
	return v, nil
}

// Delete removes an item by key
func (r *Map[K, T]) Delete(key K) {
	r.mux.Lock()
	defer r.mux.Unlock()
	delete(r.m, key)
}

// Clear removes all items
func (r *Map[K, T]) Clear() {
	r.mux.Lock()
	defer r.mux.Unlock()
	r.m = make(map[K]T)
}

// Keys returns a slice of all keys
func (r *Map[K, T]) Keys() []K {
	r.mux.RLock()
	defer r.mux.RUnlock()
	ret := make([]K, 0, len(r.m))
	for k := range r.m {
		ret = append(ret, k)
	}
	return ret
}

// List returns a slice of all items
func (r *Map[K, T]) List() []T {
	r.mux.RLock()
	defer r.mux.RUnlock()
	ret := make([]T, 0, len(r.m))
	for _, v := range r.m {
		ret = append(ret, v)
	}
	return ret
}
