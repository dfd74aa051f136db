// Package memory provides an in-memory DefinitionStore, the default backend
// for the simulator and its tests.
package memory

import (
	"context"
	"sync"

	"github.com/frhnkemal/camunda-automation-testing/pkg/domain"
	"github.com/frhnkemal/camunda-automation-testing/pkg/ports"
)

// Store keeps definition documents in process memory. Safe for concurrent
// use; all content crossing the boundary is copied.
type Store struct {
	mu      sync.RWMutex
	entries map[ports.DefinitionKind]map[string][]byte
	// order tracks insertion recency per kind; the newest filename is last.
	order map[ports.DefinitionKind][]string
}

// NewStore creates an empty in-memory definition store.
func NewStore() *Store {
	return &Store{
		entries: make(map[ports.DefinitionKind]map[string][]byte),
		order:   make(map[ports.DefinitionKind][]string),
	}
}

// Put stores or replaces a document. A replaced document becomes the most
// recent of its kind.
func (s *Store) Put(_ context.Context, kind ports.DefinitionKind, filename string, content []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.entries[kind] == nil {
		s.entries[kind] = make(map[string][]byte)
	}
	if _, exists := s.entries[kind][filename]; exists {
		s.order[kind] = remove(s.order[kind], filename)
	}
	s.entries[kind][filename] = append([]byte(nil), content...)
	s.order[kind] = append(s.order[kind], filename)
	return nil
}

// Get retrieves one document.
func (s *Store) Get(_ context.Context, kind ports.DefinitionKind, filename string) ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	content, ok := s.entries[kind][filename]
	if !ok {
		return nil, domain.ErrDefinitionNotFound
	}
	return append([]byte(nil), content...), nil
}

// Latest returns the most recently stored document of the given kind.
func (s *Store) Latest(_ context.Context, kind ports.DefinitionKind) (string, []byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	order := s.order[kind]
	if len(order) == 0 {
		return "", nil, domain.ErrDefinitionNotFound
	}
	filename := order[len(order)-1]
	return filename, append([]byte(nil), s.entries[kind][filename]...), nil
}

// List returns stored filenames, oldest first.
func (s *Store) List(_ context.Context, kind ports.DefinitionKind) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return append([]string(nil), s.order[kind]...), nil
}

// Delete removes one document. Deleting a missing document is not an error.
func (s *Store) Delete(_ context.Context, kind ports.DefinitionKind, filename string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.entries[kind][filename]; !ok {
		return nil
	}
	delete(s.entries[kind], filename)
	s.order[kind] = remove(s.order[kind], filename)
	return nil
}

func remove(list []string, name string) []string {
	out := list[:0]
	for _, entry := range list {
		if entry != name {
			out = append(out, entry)
		}
	}
	return out
}
