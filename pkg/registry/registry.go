// Package registry provides a concurrency-safe name to value registry.
package registry

import (
	"fmt"
	"slices"
	"sync"
)

// ErrNotFound is wrapped by Lookup errors for unregistered names.
var ErrNotFound = fmt.Errorf("not registered")

// Registry maps names to values of type T.
type Registry[T any] struct {
	mu      sync.RWMutex
	what    string
	entries map[string]T
}

// New creates an empty registry. what names the registered values in errors
// (e.g. "node kind").
func New[T any](what string) *Registry[T] {
	return &Registry[T]{
		what:    what,
		entries: make(map[string]T),
	}
}

// Register adds value under name.
// If a value with the same name exists, it is overwritten.
func (r *Registry[T]) Register(name string, value T) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.entries[name] = value
}

// Lookup returns the value registered under name.
// Returns an error wrapping ErrNotFound if the name is not registered.
func (r *Registry[T]) Lookup(name string) (T, error) {
	r.mu.RLock()
	value, ok := r.entries[name]
	r.mu.RUnlock()

	if !ok {
		var zero T
		return zero, fmt.Errorf("%s %q %w", r.what, name, ErrNotFound)
	}
	return value, nil
}

// Has reports whether name is registered.
func (r *Registry[T]) Has(name string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.entries[name]
	return ok
}

// Names returns the registered names, sorted.
func (r *Registry[T]) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, 0, len(r.entries))
	for name := range r.entries {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}
