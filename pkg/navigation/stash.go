package navigation

import (
	"sync"

	"github.com/google/uuid"
)

// Stash is a transient store for navigation parameters too rich for the URL.
// Navigate writes an entry keyed by the destination's path+query; the
// component entering that route takes (reads and deletes) the entry before
// merging it with its URL-derived parameters.
//
// A Stash is an explicit dependency injected into controllers, not ambient
// process state. Entries live only until the first Take; rapid repeated
// navigation to an identical key before the earlier entry is consumed
// overwrites it — callers that need stronger guarantees should carry a
// correlation token in the params themselves.
type Stash struct {
	mu      sync.Mutex
	entries map[string]stashEntry
}

type stashEntry struct {
	token  string
	params map[string]any
}

// NewStash creates an empty Stash.
func NewStash() *Stash {
	return &Stash{entries: make(map[string]stashEntry)}
}

// Put stores params under key, replacing any unconsumed entry, and returns a
// correlation token identifying this particular hand-off.
func (s *Stash) Put(key string, params map[string]any) string {
	token := uuid.NewString()
	s.mu.Lock()
	s.entries[key] = stashEntry{token: token, params: params}
	s.mu.Unlock()
	return token
}

// Take removes and returns the entry under key. The second result is false
// when no entry exists; a second Take for the same navigation always misses.
func (s *Stash) Take(key string) (map[string]any, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	entry, ok := s.entries[key]
	if !ok {
		return nil, false
	}
	delete(s.entries, key)
	return entry.params, true
}

// Token returns the correlation token of the unconsumed entry under key.
func (s *Stash) Token(key string) (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	entry, ok := s.entries[key]
	return entry.token, ok
}

// Len returns the number of unconsumed entries.
func (s *Stash) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.entries)
}
