// Package pref provides persisted user preference slots.
//
// A Pref is a typed key-value slot backed by a pluggable Store. Values are
// JSON-encoded. Reads fall back to the default when the slot is absent or
// undecodable, so a corrupt store never surfaces as an error to UI code.
//
//	mode := pref.New(store, "toast:mode", "light")
//	mode.Set("dark")   // persisted
//	mode.Get()         // "dark", also after restart
package pref

import (
	"encoding/json"
	"fmt"
	"sync"
)

// Store persists raw preference values.
type Store interface {
	// Load returns the stored bytes for key, and whether the key exists.
	Load(key string) ([]byte, bool, error)

	// Save stores bytes under key, replacing any previous value.
	Save(key string, value []byte) error
}

// Pref is a typed preference slot.
type Pref[T any] struct {
	store    Store
	key      string
	defaults T

	mu     sync.RWMutex
	value  T
	loaded bool
}

// New creates a preference slot with the given key and default value.
// The stored value, if any, is loaded lazily on first Get.
func New[T any](store Store, key string, defaultValue T) *Pref[T] {
	return &Pref[T]{
		store:    store,
		key:      key,
		defaults: defaultValue,
		value:    defaultValue,
	}
}

// Key returns the preference key.
func (p *Pref[T]) Key() string {
	return p.key
}

// Get returns the current preference value, loading it from the store on
// first access. Missing or undecodable stored values yield the default.
func (p *Pref[T]) Get() T {
	p.mu.RLock()
	if p.loaded {
		defer p.mu.RUnlock()
		return p.value
	}
	p.mu.RUnlock()

	p.mu.Lock()
	defer p.mu.Unlock()
	if p.loaded {
		return p.value
	}
	p.loaded = true

	if p.store == nil {
		return p.value
	}
	raw, ok, err := p.store.Load(p.key)
	if err != nil || !ok {
		return p.value
	}
	var v T
	if err := json.Unmarshal(raw, &v); err != nil {
		return p.value
	}
	p.value = v
	return p.value
}

// Set updates the preference value and persists it.
func (p *Pref[T]) Set(value T) error {
	p.mu.Lock()
	p.value = value
	p.loaded = true
	p.mu.Unlock()

	if p.store == nil {
		return nil
	}
	raw, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("encode pref %s: %w", p.key, err)
	}
	if err := p.store.Save(p.key, raw); err != nil {
		return fmt.Errorf("save pref %s: %w", p.key, err)
	}
	return nil
}

// Reset restores the default value and persists it.
func (p *Pref[T]) Reset() error {
	return p.Set(p.defaults)
}
