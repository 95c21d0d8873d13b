package codec

import (
	"context"
	"crypto"
	"fmt"
	"sync"

	"github.com/nanotree/nanotree/hash"
	"github.com/nanotree/nanotree/object"
)

// MemoryWriter encodes and hashes trees exactly as Git would, but keeps the
// encoded payloads in a process-local map instead of writing loose objects
// to disk. It implements both nanotree.Writer and nanotree.Finder, so it
// doubles as a self-contained, in-process backing store for tests.
type MemoryWriter struct {
	algo crypto.Hash

	mu      sync.RWMutex
	objects map[string][]byte
}

// NewMemoryWriter creates a MemoryWriter hashing with algo.
func NewMemoryWriter(algo crypto.Hash) *MemoryWriter {
	return &MemoryWriter{algo: algo, objects: make(map[string][]byte)}
}

// WriteTree implements nanotree.Writer.
func (w *MemoryWriter) WriteTree(_ context.Context, tree *object.Tree) (hash.Hash, error) {
	payload := EncodeTree(tree)
	id, err := hash.Object(w.algo, hash.KindTree, payload)
	if err != nil {
		return nil, err
	}

	w.mu.Lock()
	w.objects[id.String()] = payload
	w.mu.Unlock()

	return id, nil
}

// FindTree implements nanotree.Finder by decoding a previously written
// payload. It returns an error if id was never written through this
// MemoryWriter.
func (w *MemoryWriter) FindTree(_ context.Context, id hash.Hash) (*object.Tree, error) {
	w.mu.RLock()
	payload, ok := w.objects[id.String()]
	w.mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("codec: tree %s not found", id)
	}
	return DecodeTree(payload, w.algo.Size())
}

// Len reports how many distinct objects have been written so far. Writing
// the same tree more than once still counts as one object.
func (w *MemoryWriter) Len() int {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return len(w.objects)
}
