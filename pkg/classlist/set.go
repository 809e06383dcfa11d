package classlist

import (
	"context"
	"fmt"
	"slices"
	"strings"
	"sync"
)

// Set is an in-memory class list with DOMTokenList semantics:
// insertion ordered, duplicates ignored. Safe for concurrent use.
type Set struct {
	mu     sync.RWMutex
	tokens []string
	index  map[string]struct{}
}

var _ Target = (*Set)(nil)

// NewSet returns a Set holding the given tokens. Invalid tokens are dropped.
func NewSet(tokens ...string) *Set {
	s := &Set{index: make(map[string]struct{}, len(tokens))}
	for _, token := range tokens {
		if validToken(token) {
			s.add(token)
		}
	}
	return s
}

// Add inserts classes that are not yet present. Either every class is valid
// and added, or none are and ErrInvalidToken is returned.
func (s *Set) Add(_ context.Context, classes ...string) error {
	for _, c := range classes {
		if !validToken(c) {
			return fmt.Errorf("%w: %q", ErrInvalidToken, c)
		}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.index == nil {
		s.index = make(map[string]struct{}, len(classes))
	}
	for _, c := range classes {
		s.add(c)
	}
	return nil
}

func (s *Set) add(token string) {
	if _, ok := s.index[token]; ok {
		return
	}
	s.index[token] = struct{}{}
	s.tokens = append(s.tokens, token)
}

// Contains reports whether token is in the set.
func (s *Set) Contains(token string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.index[token]
	return ok
}

// Tokens returns the classes in insertion order.
func (s *Set) Tokens() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.tokens)
}

// Len returns the number of classes.
func (s *Set) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.tokens)
}

// String renders the set as a class attribute value.
func (s *Set) String() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return strings.Join(s.tokens, " ")
}
