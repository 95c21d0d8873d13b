package store

import (
	"context"
	"sync"

	"golang.org/x/sync/singleflight"

	"github.com/nanotree/nanotree/hash"
	"github.com/nanotree/nanotree/log"
	"github.com/nanotree/nanotree/object"
)

// CachedFinder wraps a Finder shared across multiple Editors, caching
// resolved trees by id and collapsing concurrent duplicate lookups for the
// same id into a single underlying call via singleflight.
//
// This is orthogonal to the editor's own single-threaded design: one Editor
// is never used from more than one goroutine, but many Editors may share one
// CachedFinder, e.g. one per incoming request in a server fronting a single
// backing store.
type CachedFinder struct {
	next   Finder
	logger log.Logger
	group  singleflight.Group

	mu    sync.RWMutex
	cache map[string]*object.Tree
}

// Finder is the subset of nanotree.Finder this package depends on, avoiding
// an import of the root package (which itself may depend on store for its
// default wiring, e.g. in cmd/nanotree).
type Finder interface {
	FindTree(ctx context.Context, id hash.Hash) (*object.Tree, error)
}

// NewCachedFinder wraps next with a cache and request-collapsing layer.
func NewCachedFinder(next Finder, opts ...CachedFinderOption) *CachedFinder {
	c := &CachedFinder{
		next:   next,
		logger: log.NoOp(),
		cache:  make(map[string]*object.Tree),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// CachedFinderOption configures a CachedFinder at construction time.
type CachedFinderOption func(*CachedFinder)

// WithCachedFinderLogger injects a log.Logger for cache hit/miss tracing.
func WithCachedFinderLogger(logger log.Logger) CachedFinderOption {
	return func(c *CachedFinder) { c.logger = logger }
}

// FindTree implements Finder. Concurrent calls for the same id share one
// underlying lookup; its result is cached for subsequent calls regardless
// of whether they arrived concurrently or later.
func (c *CachedFinder) FindTree(ctx context.Context, id hash.Hash) (*object.Tree, error) {
	key := id.String()

	c.mu.RLock()
	tree, ok := c.cache[key]
	c.mu.RUnlock()
	if ok {
		c.logger.Debug("store: cache hit", "oid", key)
		return tree, nil
	}

	result, err, shared := c.group.Do(key, func() (any, error) {
		tree, err := c.next.FindTree(ctx, id)
		if err != nil {
			return nil, err
		}
		c.mu.Lock()
		c.cache[key] = tree
		c.mu.Unlock()
		return tree, nil
	})
	if err != nil {
		return nil, err
	}

	c.logger.Debug("store: resolved", "oid", key, "shared", shared)
	return result.(*object.Tree), nil
}
