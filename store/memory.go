// Package store provides nanotree.Finder implementations: an in-memory map
// keyed by hex object id, a singleflight-deduplicating wrapper around any
// Finder, and a loose-object directory reader.
package store

import (
	"context"
	"fmt"
	"sync"

	"github.com/nanotree/nanotree/hash"
	"github.com/nanotree/nanotree/object"
)

// InMemory is a Finder (it has no write side; trees are added with Put)
// backed by a process-local map
// keyed by hex object id, mirroring the hex-keyed map this ecosystem's own
// in-memory packfile object storage uses internally.
type InMemory struct {
	mu      sync.RWMutex
	objects map[string]*object.Tree
}

// NewInMemory creates an empty InMemory store.
func NewInMemory() *InMemory {
	return &InMemory{objects: make(map[string]*object.Tree)}
}

// Put registers tree under id, making it resolvable by FindTree. Callers
// that already have an id (e.g. from a codec.Writer) use this to seed a
// store without re-deriving the id.
func (s *InMemory) Put(id hash.Hash, tree *object.Tree) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.objects[id.String()] = tree
}

// FindTree implements nanotree.Finder.
func (s *InMemory) FindTree(_ context.Context, id hash.Hash) (*object.Tree, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	tree, ok := s.objects[id.String()]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrTreeNotFound, id)
	}
	return tree, nil
}

// Delete removes id from the store, if present.
func (s *InMemory) Delete(id hash.Hash) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.objects, id.String())
}

// Len reports the number of objects currently held.
func (s *InMemory) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.objects)
}

// Keys returns every object id currently held, in no particular order.
func (s *InMemory) Keys() []hash.Hash {
	s.mu.RLock()
	defer s.mu.RUnlock()
	keys := make([]hash.Hash, 0, len(s.objects))
	for key := range s.objects {
		keys = append(keys, hash.MustFromHex(key))
	}
	return keys
}
