// Package treeutil holds small ordering helpers shared between the upsert
// and flush engines, split out of the root package so both can depend on it
// without an import cycle back through object.
package treeutil

import (
	"sort"

	"github.com/nanotree/nanotree/object"
)

// Locate finds name within entries using Git's tree entry ordering rule,
// probed as a tree (isTreeProbe=true) or as a non-tree (isTreeProbe=false).
// It always returns a valid insertion index; found reports whether
// entries[idx] is an exact match under that probe.
func Locate(entries []object.Entry, name []byte, isTreeProbe bool) (idx int, found bool) {
	idx = sort.Search(len(entries), func(i int) bool {
		return object.CompareEntryName(entries[i], name, isTreeProbe) >= 0
	})
	if idx < len(entries) && object.CompareEntryName(entries[idx], name, isTreeProbe) == 0 {
		return idx, true
	}
	return idx, false
}

// JoinPath appends name to base, inserting a '/' separator when base is
// non-empty. It returns a freshly allocated slice; callers must not rely on
// base's backing array being reused.
func JoinPath(base, name []byte) []byte {
	if len(base) == 0 {
		out := make([]byte, len(name))
		copy(out, name)
		return out
	}
	out := make([]byte, 0, len(base)+1+len(name))
	out = append(out, base...)
	out = append(out, '/')
	out = append(out, name...)
	return out
}
