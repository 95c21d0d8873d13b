package object

import (
	"bytes"

	"github.com/nanotree/nanotree/hash"
)

// Entry is a single record in a Tree: a filename, its mode, and the object
// id it points at. A Hash of all zero bytes (hash.Null for the configured
// width) is a placeholder the flush engine purges before writing.
type Entry struct {
	Name []byte
	Mode EntryMode
	OID  hash.Hash
}

// Tree is an ordered sequence of Entries. Entries must be sorted ascending
// under CompareEntryName; duplicate names (modulo that rule) are forbidden.
// Tree itself does not enforce the invariant (that's the editor's job, see
// the root package); it is plain data, with navigation logic living
// alongside the callers that walk it.
type Tree struct {
	Entries []Entry
}

// Clone returns a tree with a copy of the entry slice, so entries can be
// replaced or reassigned without touching the original. The entries' Name
// and OID byte slices are shared with the original, not copied.
func (t *Tree) Clone() *Tree {
	entries := make([]Entry, len(t.Entries))
	copy(entries, t.Entries)
	return &Tree{Entries: entries}
}

// CompareEntryName compares an existing entry's filename against a probe
// name, treating tree-kind names as if they had a trailing '/'. This is the
// foundation of Git's tree entry ordering: it lets "foo" (a blob) and "foo"
// (a tree, compared as "foo/") sort as distinct names even though neither
// stores the slash.
//
// isTreeProbe supplies the tree-ness of the probe side; the entry's own
// tree-ness is read from its Mode.
func CompareEntryName(entry Entry, probeName []byte, isTreeProbe bool) int {
	a := entry.Name
	b := probeName
	n := len(a)
	if len(b) < n {
		n = len(b)
	}

	if c := bytes.Compare(a[:n], b[:n]); c != 0 {
		return c
	}

	var aNext, bNext int
	aHasNext := len(a) > n
	bHasNext := len(b) > n

	switch {
	case aHasNext:
		aNext = int(a[n])
	case entry.Mode.IsTree():
		aNext = int('/')
		aHasNext = true
	}

	switch {
	case bHasNext:
		bNext = int(b[n])
	case isTreeProbe:
		bNext = int('/')
		bHasNext = true
	}

	switch {
	case !aHasNext && !bHasNext:
		return 0
	case !aHasNext:
		return -1
	case !bHasNext:
		return 1
	default:
		return aNext - bNext
	}
}
