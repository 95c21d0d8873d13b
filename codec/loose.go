package codec

import (
	"bytes"
	"context"
	"crypto"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/klauspost/compress/zlib"

	"github.com/nanotree/nanotree/hash"
	"github.com/nanotree/nanotree/object"
)

// LooseWriter writes trees as zlib-deflated Git loose objects under a
// ".git/objects"-shaped directory tree: the first two hex digits of the id
// name a subdirectory, the remaining digits name the file. It implements
// both nanotree.Writer and nanotree.Finder.
type LooseWriter struct {
	algo    crypto.Hash
	rootDir string
}

// NewLooseWriter creates a LooseWriter rooted at dir, which must already
// exist.
func NewLooseWriter(dir string, algo crypto.Hash) *LooseWriter {
	return &LooseWriter{algo: algo, rootDir: dir}
}

// WriteTree implements nanotree.Writer.
func (w *LooseWriter) WriteTree(ctx context.Context, tree *object.Tree) (hash.Hash, error) {
	return w.WriteObject(ctx, hash.KindTree, EncodeTree(tree))
}

// WriteObject writes an arbitrary loose object (tree, commit, blob, tag)
// given its kind and already-encoded payload, content-addressed the same
// way WriteTree is. Package commit uses this to persist the commit objects
// BuildCommit produces alongside the trees they reference.
func (w *LooseWriter) WriteObject(_ context.Context, kind hash.Kind, payload []byte) (hash.Hash, error) {
	id, err := hash.Object(w.algo, kind, payload)
	if err != nil {
		return nil, err
	}

	path := w.objectPath(id)
	if _, err := os.Stat(path); err == nil {
		// Content-addressed: an existing object with this id is already
		// byte-identical, nothing to do. Mirrors git's own loose-object
		// write-if-absent behavior.
		return id, nil
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("codec: create object directory: %w", err)
	}

	var buf bytes.Buffer
	buf.Write(looseHeader(string(kind.Bytes()), len(payload)))
	buf.Write(payload)

	tmp, err := os.CreateTemp(filepath.Dir(path), "tmp-obj-")
	if err != nil {
		return nil, fmt.Errorf("codec: create temp object file: %w", err)
	}
	defer os.Remove(tmp.Name())

	zw := zlib.NewWriter(tmp)
	if _, err := zw.Write(buf.Bytes()); err != nil {
		tmp.Close()
		return nil, fmt.Errorf("codec: deflate object: %w", err)
	}
	if err := zw.Close(); err != nil {
		tmp.Close()
		return nil, fmt.Errorf("codec: finalize deflate: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return nil, fmt.Errorf("codec: close temp object file: %w", err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return nil, fmt.Errorf("codec: install object file: %w", err)
	}

	return id, nil
}

// FindTree implements nanotree.Finder by inflating a loose object from
// disk and stripping its header.
func (w *LooseWriter) FindTree(_ context.Context, id hash.Hash) (*object.Tree, error) {
	f, err := os.Open(w.objectPath(id))
	if err != nil {
		return nil, fmt.Errorf("codec: open object %s: %w", id, err)
	}
	defer f.Close()

	zr, err := zlib.NewReader(f)
	if err != nil {
		return nil, fmt.Errorf("codec: inflate object %s: %w", id, err)
	}
	defer zr.Close()

	raw, err := io.ReadAll(zr)
	if err != nil {
		return nil, fmt.Errorf("codec: read object %s: %w", id, err)
	}

	nul := bytes.IndexByte(raw, 0)
	if nul < 0 {
		return nil, fmt.Errorf("codec: object %s missing header terminator", id)
	}
	return DecodeTree(raw[nul+1:], w.algo.Size())
}

func (w *LooseWriter) objectPath(id hash.Hash) string {
	hex := id.String()
	return filepath.Join(w.rootDir, hex[:2], hex[2:])
}
