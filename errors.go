// Package nanotree implements an in-memory, content-addressed tree editor
// modeled on Git's tree objects.
//
// An Editor is seeded with a root Tree and a Finder used to resolve subtrees
// lazily. Callers apply a sequence of Upsert calls to insert or replace
// entries at arbitrary paths, then call Write to flush every changed subtree
// through a Writer, bottom-up, yielding the new root object id.
//
// Package store provides Finder implementations and package codec provides
// Writer implementations.
package nanotree

import (
	"errors"
	"fmt"

	"github.com/nanotree/nanotree/hash"
)

var (
	// ErrEmptyPath is returned by Upsert when given a path with zero components.
	ErrEmptyPath = errors.New("nanotree: path must have at least one component")

	// ErrEmptyComponent is returned by Upsert when a path component is empty.
	ErrEmptyComponent = errors.New("nanotree: path component must not be empty")
)

// ResolveError wraps a failure from the store.Finder callback invoked during
// Upsert. It is returned verbatim up the call stack; the editor never
// retries a failed lookup.
type ResolveError struct {
	// Path is the rela-path (from root) whose subtree could not be resolved.
	Path string
	// OID is the object id that Upsert attempted to resolve.
	OID hash.Hash
	// Err is the underlying error returned by the Finder.
	Err error
}

func (e *ResolveError) Error() string {
	return fmt.Sprintf("nanotree: resolve tree %s at %q: %v", e.OID, e.Path, e.Err)
}

func (e *ResolveError) Unwrap() error { return e.Err }

// NewResolveError wraps err as a ResolveError for the given path and object id.
func NewResolveError(path string, oid hash.Hash, err error) *ResolveError {
	return &ResolveError{Path: path, OID: oid, Err: err}
}

// WriterError wraps a failure from the codec.Writer callback invoked during
// Write. The flush aborts immediately; any subtree not yet written stays in
// the editor's in-memory state for a later retry.
type WriterError struct {
	// Path is the rela-path of the subtree that failed to write.
	Path string
	// Err is the underlying error returned by the Writer.
	Err error
}

func (e *WriterError) Error() string {
	return fmt.Sprintf("nanotree: write tree at %q: %v", e.Path, e.Err)
}

func (e *WriterError) Unwrap() error { return e.Err }

// NewWriterError wraps err as a WriterError for the given path.
func NewWriterError(path string, err error) *WriterError {
	return &WriterError{Path: path, Err: err}
}
