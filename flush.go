package nanotree

import (
	"context"

	"github.com/nanotree/nanotree/hash"
	"github.com/nanotree/nanotree/internal/treeutil"
	"github.com/nanotree/nanotree/object"
)

// flushFrame is one in-flight subtree awaiting a bottom-up write. parent is
// nil for the root frame; name is the frame's leaf filename within parent's
// entries (unused for the root).
type flushFrame struct {
	parent   *flushFrame
	name     []byte
	relaPath []byte
	tree     *object.Tree
}

// Write flushes every changed subtree through out, bottom-up, patching
// parent entries with each child's returned object id as it's written, and
// returns the new root id. On success, the editor's in-flight state is
// reseeded to just the freshly written root, so the Editor remains usable
// for further edits.
//
// On error, the offending subtree (and everything above it) is left
// in-flight for a later retry; siblings already written are not rolled
// back.
func (e *Editor) Write(ctx context.Context, out Writer) (hash.Hash, error) {
	logger := e.contextLogger(ctx)
	root := &flushFrame{tree: e.root()}
	parents := []*flushFrame{root}
	var children []*flushFrame
	// pending holds every frame taken out of e.trees but not yet written,
	// keyed to its path-hash key, so a failed write can put them back.
	pending := map[*flushFrame]string{}
	restore := func() {
		for f, key := range pending {
			e.trees[key] = f.tree
		}
	}

	for len(parents) > 0 || len(children) > 0 {
		var frame *flushFrame
		if n := len(children); n > 0 {
			frame = children[n-1]
			children = children[:n-1]
		} else {
			n := len(parents)
			frame = parents[n-1]
			parents = parents[:n-1]
		}

		hasUnwritten := false
		for _, entry := range frame.tree.Entries {
			if !entry.Mode.IsTree() {
				continue
			}
			childPath := treeutil.JoinPath(frame.relaPath, entry.Name)
			childHash, err := e.pathHash(childPath)
			if err != nil {
				restore()
				return nil, NewWriterError(string(childPath), err)
			}
			key := childHash.String()
			childTree, ok := e.trees[key]
			if !ok {
				continue
			}
			delete(e.trees, key)
			hasUnwritten = true
			child := &flushFrame{
				parent:   frame,
				name:     entry.Name,
				relaPath: childPath,
				tree:     childTree,
			}
			children = append(children, child)
			pending[child] = key
		}

		if hasUnwritten {
			parents = append(parents, frame)
			continue
		}

		purgeNullEntries(frame.tree)

		treeID, err := out.WriteTree(ctx, frame.tree)
		if err != nil {
			restore()
			return nil, NewWriterError(string(frame.relaPath), err)
		}
		delete(pending, frame)
		logger.Debug("nanotree: flushed subtree", "path", string(frame.relaPath), "oid", treeID.String(), "entries", len(frame.tree.Entries))

		if frame.parent == nil {
			e.trees = map[string]*object.Tree{e.emptyPathHashHex: frame.tree}
			return treeID, nil
		}

		idx, found := treeutil.Locate(frame.parent.tree.Entries, frame.name, true)
		if !found {
			panic("nanotree: parent entry missing for flushed subtree " + string(frame.relaPath))
		}
		if len(frame.tree.Entries) == 0 {
			frame.parent.tree.Entries = append(frame.parent.tree.Entries[:idx], frame.parent.tree.Entries[idx+1:]...)
		} else {
			frame.parent.tree.Entries[idx].OID = treeID
		}
	}

	panic("nanotree: flush terminated without writing the root")
}

// purgeNullEntries drops every entry whose object id is the null
// placeholder, in place.
func purgeNullEntries(tree *object.Tree) {
	kept := tree.Entries[:0]
	for _, entry := range tree.Entries {
		if entry.OID.IsZero() {
			continue
		}
		kept = append(kept, entry)
	}
	tree.Entries = kept
}
