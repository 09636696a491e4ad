// Package memo provides a generic populate-once lookup table.
//
// Unlike an LRU cache, a Table never evicts and never recomputes: the first
// GetOrCreate for a key runs the create function, every later call for the
// same key returns the stored value. This gives deterministic
// populate-once semantics for values that cannot change once observed,
// such as driver capability queries.
package memo

import "sync"

// Table is a generic populate-once table.
//
// Table is safe for concurrent use.
// Table must not be copied after creation (has mutex).
type Table[K comparable, V any] struct {
	mu      sync.Mutex
	entries map[K]V
}

// New creates an empty table.
func New[K comparable, V any]() *Table[K, V] {
	return &Table[K, V]{
		entries: make(map[K]V),
	}
}

// Get retrieves a stored value.
// Returns (value, true) if present, (zero, false) otherwise.
func (t *Table[K, V]) Get(key K) (V, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()

	v, ok := t.entries[key]
	return v, ok
}

// GetOrCreate returns the stored value for key, running create and storing
// its result on first use. create is called under lock so a key is
// populated exactly once.
func (t *Table[K, V]) GetOrCreate(key K, create func() V) V {
	t.mu.Lock()
	defer t.mu.Unlock()

	if v, ok := t.entries[key]; ok {
		return v
	}

	v := create()
	t.entries[key] = v
	return v
}

// Delete removes an entry from the table.
// Returns true if the entry was found and removed.
func (t *Table[K, V]) Delete(key K) bool {
	t.mu.Lock()
	defer t.mu.Unlock()

	if _, ok := t.entries[key]; ok {
		delete(t.entries, key)
		return true
	}
	return false
}

// Clear removes all entries from the table.
func (t *Table[K, V]) Clear() {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.entries = make(map[K]V)
}

// Len returns the number of entries in the table.
func (t *Table[K, V]) Len() int {
	t.mu.Lock()
	defer t.mu.Unlock()

	return len(t.entries)
}
