package nanotree

import (
	"context"
	"crypto"

	"github.com/nanotree/nanotree/hash"
	"github.com/nanotree/nanotree/log"
	"github.com/nanotree/nanotree/object"
)

// Finder resolves a tree object id to its Tree. It is invoked lazily during
// Upsert, only for subtrees the editor does not already hold in memory, so
// at most once per path until Write resets the in-flight set. Two paths
// pointing at the same tree id each trigger their own lookup. See package
// store for implementations.
type Finder interface {
	FindTree(ctx context.Context, id hash.Hash) (*object.Tree, error)
}

// Writer serializes a Tree and returns its content-addressed object id. See
// package codec for implementations. The editor makes no assumption about
// how the id is computed, only that identical canonical encodings yield
// identical ids.
type Writer interface {
	WriteTree(ctx context.Context, tree *object.Tree) (hash.Hash, error)
}

// Editor holds the set of in-flight trees for one root, keyed by a hash of
// each tree's path from the root, and edits them in place as Upsert calls
// navigate and extend the hierarchy.
//
// An Editor is not safe for concurrent use: all mutation happens
// synchronously on the calling goroutine, and Upsert/Write must not be
// called concurrently on the same Editor. Callers wanting parallelism should
// use one Editor per root and coordinate externally (see store.CachedFinder
// for sharing one backing store across such editors).
type Editor struct {
	find   Finder
	logger log.Logger
	algo   crypto.Hash

	// trees maps a path-hash's hex string to the in-flight Tree at that
	// path. The root always lives under emptyPathHashHex. Map keys are
	// strings (not hash.Hash, a []byte-backed type) because Go map keys
	// must be comparable.
	trees map[string]*object.Tree

	// pathBuf is reusable scratch space for building rela-paths during
	// Upsert, avoiding an allocation per path component.
	pathBuf []byte

	emptyPathHashHex string
}

// Option configures an Editor at construction time.
type Option func(*Editor) error

// WithHashAlgorithm selects the hashing algorithm used to derive PathHashes
// and, by a codec.Writer that shares it, object ids. Defaults to SHA-1.
func WithHashAlgorithm(algo crypto.Hash) Option {
	return func(e *Editor) error {
		e.algo = algo
		return nil
	}
}

// WithLogger injects a log.Logger used for Debug traces of upsert/flush
// activity. Defaults to a no-op logger if unset and none is found on the
// context passed to Upsert/Write.
func WithLogger(logger log.Logger) Option {
	return func(e *Editor) error {
		e.logger = logger
		return nil
	}
}

// New creates an Editor rooted at root, using find to lazily resolve
// subtrees that the editor doesn't already hold in memory. Each subtree is
// looked up at most once; after that, it's edited in place from the cached
// copy until Write flushes it.
func New(root *object.Tree, find Finder, opts ...Option) (*Editor, error) {
	e := &Editor{
		find: find,
		algo: crypto.SHA1,
	}
	for _, opt := range opts {
		if err := opt(e); err != nil {
			return nil, err
		}
	}
	if e.logger == nil {
		e.logger = log.NoOp()
	}

	emptyHash, err := hash.EmptyPathHash(e.algo)
	if err != nil {
		return nil, err
	}
	e.emptyPathHashHex = emptyHash.String()
	e.trees = map[string]*object.Tree{e.emptyPathHashHex: root}
	e.pathBuf = make([]byte, 0, 512)
	return e, nil
}

// SetRoot replaces the root tree, discarding every other in-flight subtree.
// It is useful for reusing one Editor across many independent trees instead
// of constructing a fresh one each time. Returns the Editor for chaining.
func (e *Editor) SetRoot(root *object.Tree) *Editor {
	e.trees = map[string]*object.Tree{e.emptyPathHashHex: root}
	return e
}

// root returns the current in-flight root tree. It panics if absent: the
// root is a class invariant the constructor and Write both preserve, so a
// missing root is a programming error, not a recoverable one.
func (e *Editor) root() *object.Tree {
	t, ok := e.trees[e.emptyPathHashHex]
	if !ok {
		panic("nanotree: root tree missing from in-flight set")
	}
	return t
}

func (e *Editor) pathHash(path []byte) (hash.Hash, error) {
	return hash.PathHash(e.algo, path)
}
