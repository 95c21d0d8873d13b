// Package codec implements the canonical wire encoding nanotree.Writer and
// the object store use to turn a Tree into bytes (and back), matching
// Git's loose-object format byte for byte so ids stay Git-compatible.
package codec

import (
	"bytes"
	"fmt"
	"strconv"

	"github.com/nanotree/nanotree/object"
)

// EncodeTree serializes tree's entries in the order they already appear
// (callers are responsible for having sorted them per Git's tree entry
// ordering) as "<octal_mode> SP <filename> NUL <raw_oid_bytes>", concatenated
// with no separator between entries. This is the payload hashed (and, on
// disk, zlib-deflated) inside the "tree" loose-object header.
func EncodeTree(tree *object.Tree) []byte {
	var buf bytes.Buffer
	for _, entry := range tree.Entries {
		buf.WriteString(entry.Mode.Octal())
		buf.WriteByte(' ')
		buf.Write(entry.Name)
		buf.WriteByte(0)
		buf.Write(entry.OID)
	}
	return buf.Bytes()
}

// DecodeTree parses the payload EncodeTree produces back into a Tree.
// oidWidth is the byte width of object ids for the store's hash algorithm
// (20 for SHA-1, 32 for SHA-256); the wire format carries no explicit
// length for the trailing raw id, so the caller must supply it.
func DecodeTree(data []byte, oidWidth int) (*object.Tree, error) {
	tree := &object.Tree{}
	for len(data) > 0 {
		sp := bytes.IndexByte(data, ' ')
		if sp < 0 {
			return nil, fmt.Errorf("codec: malformed tree entry: missing mode separator")
		}
		mode, ok := object.ParseOctalMode(string(data[:sp]))
		if !ok {
			return nil, fmt.Errorf("codec: unrecognized entry mode %q", data[:sp])
		}
		data = data[sp+1:]

		nul := bytes.IndexByte(data, 0)
		if nul < 0 {
			return nil, fmt.Errorf("codec: malformed tree entry: missing filename terminator")
		}
		name := append([]byte(nil), data[:nul]...)
		data = data[nul+1:]

		if len(data) < oidWidth {
			return nil, fmt.Errorf("codec: truncated object id: want %d bytes, have %d", oidWidth, len(data))
		}
		oid := append([]byte(nil), data[:oidWidth]...)
		data = data[oidWidth:]

		tree.Entries = append(tree.Entries, object.Entry{Name: name, Mode: mode, OID: oid})
	}
	return tree, nil
}

// looseHeader returns Git's loose-object header for a payload of the given
// kind and length: "<kind> SP <decimal length> NUL".
func looseHeader(kind string, length int) []byte {
	header := make([]byte, 0, len(kind)+1+20+1)
	header = append(header, kind...)
	header = append(header, ' ')
	header = strconv.AppendInt(header, int64(length), 10)
	header = append(header, 0)
	return header
}
