package nanotree

import (
	"context"

	"github.com/nanotree/nanotree/hash"
	"github.com/nanotree/nanotree/internal/treeutil"
	"github.com/nanotree/nanotree/log"
	"github.com/nanotree/nanotree/object"
)

// Upsert inserts or replaces the entry at path, descending (and lazily
// materializing) one in-flight tree per path component. Only the final
// component receives mode/id directly; every intermediate component is
// forced to a Tree placeholder, re-fetched from find only if it previously
// pointed at a real (non-null) tree and hasn't been opened yet this editor
// lifetime.
//
// path must be a non-empty sequence of non-empty, '/'-free components.
// Upsert validates both: an empty path returns ErrEmptyPath, an empty
// component returns ErrEmptyComponent.
func (e *Editor) Upsert(ctx context.Context, path [][]byte, mode object.EntryMode, id hash.Hash) (*Editor, error) {
	if len(path) == 0 {
		return nil, ErrEmptyPath
	}

	logger := e.contextLogger(ctx)
	cursor := e.root()
	e.pathBuf = e.pathBuf[:0]

	for i, name := range path {
		if len(name) == 0 {
			return nil, ErrEmptyComponent
		}
		isLast := i == len(path)-1

		targetMode := mode
		if !isLast {
			targetMode = object.ModeTree
		}

		idx, _, found := e.locateEntry(cursor, name)
		var (
			priorMode object.EntryMode
			priorOID  hash.Hash
			hadPrior  bool
		)

		switch {
		case found && isLast:
			cursor.Entries[idx].Mode = mode
			cursor.Entries[idx].OID = id
			return e, nil

		case found:
			priorMode = cursor.Entries[idx].Mode
			priorOID = cursor.Entries[idx].OID
			hadPrior = true
			cursor.Entries[idx].Mode = object.ModeTree
			cursor.Entries[idx].OID = hash.Null(e.algo.Size())

		default:
			insIdx, _ := treeutil.Locate(cursor.Entries, name, targetMode.IsTree())
			entry := object.Entry{Name: append([]byte(nil), name...), Mode: targetMode}
			if isLast {
				entry.OID = id
			} else {
				entry.OID = hash.Null(e.algo.Size())
			}
			cursor.Entries = insertEntry(cursor.Entries, insIdx, entry)
			if isLast {
				return e, nil
			}
		}

		e.pathBuf = treeutil.JoinPath(e.pathBuf, name)
		pathHash, err := e.pathHash(e.pathBuf)
		if err != nil {
			return nil, NewResolveError(string(e.pathBuf), nil, err)
		}
		key := pathHash.String()

		next, ok := e.trees[key]
		if !ok {
			if hadPrior && priorMode.IsTree() && !priorOID.IsZero() {
				logger.Debug("nanotree: lazily resolving subtree", "path", string(e.pathBuf), "oid", priorOID.String())
				loaded, err := e.find.FindTree(ctx, priorOID)
				if err != nil {
					return nil, NewResolveError(string(e.pathBuf), priorOID, err)
				}
				next = loaded.Clone()
			} else {
				next = &object.Tree{}
			}
			e.trees[key] = next
		}
		cursor = next
	}

	return e, nil
}

// UpsertString is Upsert for a '/'-delimited string path, a convenience for
// callers that don't already have path components split out. path is
// normalized first (surrounding and doubled slashes trimmed, ".." rejected).
func (e *Editor) UpsertString(ctx context.Context, path string, mode object.EntryMode, id hash.Hash) (*Editor, error) {
	normalized, err := normalizePath(path)
	if err != nil {
		return nil, err
	}
	return e.Upsert(ctx, splitPath(normalized), mode, id)
}

// locateEntry searches for name first as a non-tree entry, falling back to a
// tree-kind probe, matching Git's tree ordering where a directory name sorts
// as if it carried a trailing slash. It returns the match regardless of
// which probe hit, along with which probe succeeded (matchedTree) so callers
// that only care about presence can ignore it.
func (e *Editor) locateEntry(tree *object.Tree, name []byte) (idx int, matchedTree, found bool) {
	if idx, ok := treeutil.Locate(tree.Entries, name, false); ok {
		return idx, false, true
	}
	if idx, ok := treeutil.Locate(tree.Entries, name, true); ok {
		return idx, true, true
	}
	return 0, false, false
}

func insertEntry(entries []object.Entry, idx int, entry object.Entry) []object.Entry {
	entries = append(entries, object.Entry{})
	copy(entries[idx+1:], entries[idx:])
	entries[idx] = entry
	return entries
}

func (e *Editor) contextLogger(ctx context.Context) log.Logger {
	if logger := log.FromContext(ctx); logger != nil {
		return logger
	}
	return e.logger
}

