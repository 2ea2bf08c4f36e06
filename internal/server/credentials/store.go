// Package credentials holds the process-wide username → credential-secret
// mapping shared by every request handler.
package credentials

import "sync"

// Store is a concurrency-safe, in-memory credential map. Keys are unique and
// entries are never removed, so the store only grows for the lifetime of the
// process.
//
// Lookups share a read lock and may run in parallel. InsertIfAbsent takes the
// write lock, which excludes every other reader and writer for the duration of
// the single map operation. A pending writer blocks new readers, so a writer
// eventually acquires the lock under sustained read load.
//
// A Store must not be copied after first use; share it by pointer.
type Store struct {
	mu      sync.RWMutex
	secrets map[string]string
}

// NewStore returns an empty store.
func NewStore() *Store {
	return &Store{secrets: make(map[string]string)}
}

// InsertIfAbsent stores secret under username unless the username is already
// present. It reports whether the insert happened. Of two concurrent calls for
// the same username exactly one returns true.
func (s *Store) InsertIfAbsent(username, secret string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.secrets[username]; ok {
		return false
	}
	s.secrets[username] = secret
	return true
}

// Lookup returns the secret stored for username and whether it was found.
func (s *Store) Lookup(username string) (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	secret, ok := s.secrets[username]
	return secret, ok
}

// Len returns the number of stored credentials.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return len(s.secrets)
}
