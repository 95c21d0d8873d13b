package object

import "fmt"

// EntryMode is the kind of a single Tree entry. Unlike Kind (the type of a
// whole loose object), EntryMode also distinguishes executable blobs and
// symlinks, matching the mode bits Git stores in a tree entry.
type EntryMode uint8

const (
	// ModeTree marks an entry as a subtree (directory).
	ModeTree EntryMode = iota
	// ModeBlob marks an entry as a regular, non-executable file.
	ModeBlob
	// ModeBlobExecutable marks an entry as an executable file.
	ModeBlobExecutable
	// ModeLink marks an entry as a symbolic link.
	ModeLink
	// ModeCommit marks an entry as a gitlink (submodule commit reference).
	ModeCommit
)

// IsTree reports whether the entry mode is a subtree. This drives Git's tree
// entry ordering rule: tree entries sort as if they had a trailing '/'.
func (m EntryMode) IsTree() bool {
	return m == ModeTree
}

// Octal returns the mode's on-disk octal representation, as it appears in
// the tree wire encoding (e.g. "40000", "100644", "100755", "120000", "160000").
func (m EntryMode) Octal() string {
	switch m {
	case ModeTree:
		return "40000"
	case ModeBlob:
		return "100644"
	case ModeBlobExecutable:
		return "100755"
	case ModeLink:
		return "120000"
	case ModeCommit:
		return "160000"
	default:
		return fmt.Sprintf("mode(%d)", uint8(m))
	}
}

// ParseOctalMode maps a tree wire-encoding octal mode string back to an
// EntryMode. It returns false if the string does not match any known mode.
func ParseOctalMode(s string) (EntryMode, bool) {
	switch s {
	case "40000", "040000":
		return ModeTree, true
	case "100644":
		return ModeBlob, true
	case "100755":
		return ModeBlobExecutable, true
	case "120000":
		return ModeLink, true
	case "160000":
		return ModeCommit, true
	default:
		return 0, false
	}
}

// String returns a human-readable name for the mode, used in CLI output and
// error messages.
func (m EntryMode) String() string {
	switch m {
	case ModeTree:
		return "tree"
	case ModeBlob:
		return "blob"
	case ModeBlobExecutable:
		return "exec"
	case ModeLink:
		return "link"
	case ModeCommit:
		return "commit"
	default:
		return fmt.Sprintf("EntryMode(%d)", uint8(m))
	}
}
