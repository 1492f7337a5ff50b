// Package dictionary provides the custom word allow-list consulted by the spell checker.
package dictionary

import (
	"sort"
	"strings"
	"sync"

	"github.com/sagr12004/Spell-Checker/internal/types"
)

// Store is a process-wide set of user-added words. Entries are kept lowercase
// and live only as long as the process.
type Store struct {
	mu    sync.RWMutex
	words map[string]struct{}
}

// NewStore creates an empty Store.
func NewStore() *Store {
	return &Store{words: make(map[string]struct{})}
}

// Normalize returns the form a word is stored and looked up under.
func Normalize(word string) string {
	return strings.ToLower(strings.TrimSpace(word))
}

// Add inserts the normalized word and returns it. Adding a word twice is a no-op.
func (s *Store) Add(word string) (string, error) {
	w := Normalize(word)
	if w == "" {
		return "", &types.ValidationError{Field: "word", Message: "Word is required"}
	}

	s.mu.Lock()
	s.words[w] = struct{}{}
	s.mu.Unlock()
	return w, nil
}

// Reset removes every entry.
func (s *Store) Reset() {
	s.mu.Lock()
	s.words = make(map[string]struct{})
	s.mu.Unlock()
}

// Contains reports whether word (compared case-insensitively) is in the store.
func (s *Store) Contains(word string) bool {
	w := Normalize(word)
	s.mu.RLock()
	_, ok := s.words[w]
	s.mu.RUnlock()
	return ok
}

// Len returns the number of stored words.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.words)
}

// Words returns a sorted snapshot of the stored words.
func (s *Store) Words() []string {
	s.mu.RLock()
	out := make([]string, 0, len(s.words))
	for w := range s.words {
		out = append(out, w)
	}
	s.mu.RUnlock()

	sort.Strings(out)
	return out
}
