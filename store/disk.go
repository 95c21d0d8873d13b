package store

import (
	"context"
	"crypto"
	"errors"
	"fmt"
	"os"

	"github.com/nanotree/nanotree/codec"
	"github.com/nanotree/nanotree/hash"
	"github.com/nanotree/nanotree/object"
)

// Disk resolves trees from a loose-object directory tree on disk, the way
// git itself lays out ".git/objects". It delegates the actual
// inflate-and-decode work to codec.LooseWriter, which also implements the
// write side of the same directory layout.
type Disk struct {
	writer *codec.LooseWriter
}

// NewDisk creates a Disk store rooted at dir (which must already exist),
// hashing with algo.
func NewDisk(dir string, algo crypto.Hash) *Disk {
	return &Disk{writer: codec.NewLooseWriter(dir, algo)}
}

// FindTree implements Finder. It classifies a missing loose-object file as
// ErrTreeNotFound and any other failure (permissions, a corrupt zlib stream)
// as ErrBackend, so callers can tell the two apart with errors.Is.
func (d *Disk) FindTree(ctx context.Context, id hash.Hash) (*object.Tree, error) {
	tree, err := d.writer.FindTree(ctx, id)
	if err == nil {
		return tree, nil
	}
	if errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("%w: %s: %w", ErrTreeNotFound, id, err)
	}
	return nil, fmt.Errorf("%w: %s: %w", ErrBackend, id, err)
}

// WriteTree implements nanotree.Writer, so a Disk can serve as both halves
// of an editor's collaborators when the caller wants everything persisted.
func (d *Disk) WriteTree(ctx context.Context, tree *object.Tree) (hash.Hash, error) {
	return d.writer.WriteTree(ctx, tree)
}

// WriteObject implements commit.ObjectWriter, letting a Disk also persist
// the commit objects built on top of the trees it stores.
func (d *Disk) WriteObject(ctx context.Context, kind hash.Kind, payload []byte) (hash.Hash, error) {
	return d.writer.WriteObject(ctx, kind, payload)
}
