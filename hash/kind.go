package hash

import "fmt"

// Kind identifies the type of a loose Git object, as it appears in the
// object header ("<kind> <size>\0") that Object and NewHasher prepend before
// hashing the object's content.
type Kind uint8

const (
	KindInvalid Kind = 0
	KindCommit  Kind = 1
	KindTree    Kind = 2
	KindBlob    Kind = 3
	KindTag     Kind = 4
)

// String returns the string representation of the object kind, used for
// debugging and error messages.
func (k Kind) String() string {
	switch k {
	case KindInvalid:
		return "OBJ_INVALID"
	case KindCommit:
		return "OBJ_COMMIT"
	case KindTree:
		return "OBJ_TREE"
	case KindBlob:
		return "OBJ_BLOB"
	case KindTag:
		return "OBJ_TAG"
	default:
		return fmt.Sprintf("hash.Kind(%d)", uint8(k))
	}
}

// Bytes returns the byte representation of the object kind as used in Git's
// loose-object header, e.g. "commit", "tree", "blob", "tag".
func (k Kind) Bytes() []byte {
	switch k {
	case KindCommit:
		return []byte("commit")
	case KindTree:
		return []byte("tree")
	case KindBlob:
		return []byte("blob")
	case KindTag:
		return []byte("tag")
	case KindInvalid:
		fallthrough
	default:
		return []byte("unknown")
	}
}
