package nanotree

import (
	"github.com/nanotree/nanotree/internal/treeutil"
	"github.com/nanotree/nanotree/object"
)

// Stat looks up the entry at path among the editor's currently in-flight
// trees, without resolving any subtree that hasn't already been opened by a
// prior Upsert and without triggering a flush. It's meant for tests and
// callers that want to inspect the edited-but-unflushed hierarchy. An
// invalid path, or the empty path (the root), reports ok=false.
//
// Stat returns ok=false both when the entry genuinely doesn't exist and when
// an intermediate component exists but its subtree hasn't been materialized
// in memory yet; the two cases are indistinguishable without an I/O round
// trip, which Stat deliberately never makes.
func (e *Editor) Stat(path string) (object.Entry, bool) {
	normalized, err := normalizePath(path)
	if err != nil || normalized == "" {
		return object.Entry{}, false
	}
	components := splitPath(normalized)

	cursor := e.root()
	var relaPath []byte

	for i, name := range components {
		idx, _, found := e.locateEntry(cursor, name)
		if !found {
			return object.Entry{}, false
		}
		entry := cursor.Entries[idx]
		if i == len(components)-1 {
			return entry, true
		}
		if !entry.Mode.IsTree() {
			return object.Entry{}, false
		}

		relaPath = treeutil.JoinPath(relaPath, name)
		pathHash, err := e.pathHash(relaPath)
		if err != nil {
			return object.Entry{}, false
		}
		next, ok := e.trees[pathHash.String()]
		if !ok {
			return object.Entry{}, false
		}
		cursor = next
	}

	return object.Entry{}, false
}
