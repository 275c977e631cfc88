// Package filtercache memoizes synthesized filters by quantized key.
//
// A Table never evicts: it grows with the number of distinct parameter
// combinations in the configuration, not with query volume.
package filtercache

import "sync"

// Stats reports table occupancy and lookup counters.
type Stats struct {
	Entries int
	Hits    int
	Misses  int
}

// Table maps a key to a shared value built on first use.
// The zero value is ready to use and safe for concurrent access.
type Table[K comparable, V any] struct {
	mu      sync.Mutex
	entries map[K]V
	hits    int
	misses  int
}

// Get returns the value stored under key, calling build to create and store
// it on a miss. A hit returns the exact value stored earlier. Errors from
// build are returned and nothing is stored.
//
// Lookup and insert happen under one lock, so concurrent callers never build
// the same key twice.
func (t *Table[K, V]) Get(key K, build func() (V, error)) (V, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if v, ok := t.entries[key]; ok {
		t.hits++
		return v, nil
	}

	t.misses++
	v, err := build()
	if err != nil {
		var zero V
		return zero, err
	}
	if t.entries == nil {
		t.entries = make(map[K]V)
	}
	t.entries[key] = v
	return v, nil
}

// Stats returns a snapshot of the table counters.
func (t *Table[K, V]) Stats() Stats {
	t.mu.Lock()
	defer t.mu.Unlock()
	return Stats{Entries: len(t.entries), Hits: t.hits, Misses: t.misses}
}
