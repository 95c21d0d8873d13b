// Package commit builds Git commit objects on top of a tree id produced by
// nanotree.Editor.Write. It is a thin, supplemental layer: nanotree itself
// only ever talks in tree ids, but CLI and test callers want the
// end-to-end experience of turning an edited tree into a commit.
package commit

import (
	"bytes"
	"context"
	"crypto"
	"errors"
	"fmt"
	"time"

	"github.com/nanotree/nanotree/hash"
)

// ObjectWriter persists an already-encoded loose object of the given kind
// and returns its content-addressed id. store.Disk implements this, letting
// Write persist a commit alongside the tree it references.
type ObjectWriter interface {
	WriteObject(ctx context.Context, kind hash.Kind, payload []byte) (hash.Hash, error)
}

// ErrEmptyMessage is returned by BuildCommit when message is empty.
var ErrEmptyMessage = errors.New("commit: message must not be empty")

// AuthorError reports a missing or invalid author/committer identity.
type AuthorError struct {
	Field string
	Want  string
}

func (e *AuthorError) Error() string {
	return fmt.Sprintf("commit: %s: %s", e.Field, e.Want)
}

// Author is the person who authored the changes in a commit.
type Author struct {
	Name  string
	Email string
	Time  time.Time
}

// Committer is the person who created the commit object. Usually the same
// person as Author, but may differ (e.g. applying someone else's patch).
type Committer struct {
	Name  string
	Email string
	Time  time.Time
}

// Commit is a Git commit object: a tree reference, an optional parent, two
// identities, and a message.
type Commit struct {
	Hash      hash.Hash
	Tree      hash.Hash
	Parent    hash.Hash
	Author    Author
	Committer Committer
	Message   string
}

// BuildCommit encodes a commit in Git's canonical text format, hashes it,
// and returns the populated Commit. parent may be nil (or zero-length) for
// a root commit. BuildCommit never persists anything; call Write to also
// hand the encoded commit to an ObjectWriter.
func BuildCommit(algo crypto.Hash, tree hash.Hash, parent hash.Hash, author Author, committer Committer, message string) (*Commit, error) {
	payload, err := validateAndEncode(tree, parent, author, committer, message)
	if err != nil {
		return nil, err
	}
	id, err := hash.Object(algo, hash.KindCommit, payload)
	if err != nil {
		return nil, err
	}
	return &Commit{
		Hash:      id,
		Tree:      tree,
		Parent:    parent,
		Author:    author,
		Committer: committer,
		Message:   message,
	}, nil
}

// Write builds a commit exactly as BuildCommit does, then persists its
// encoded form through out, so the returned Commit's Hash is already a
// resolvable object alongside the tree it references.
func Write(ctx context.Context, out ObjectWriter, algo crypto.Hash, tree hash.Hash, parent hash.Hash, author Author, committer Committer, message string) (*Commit, error) {
	payload, err := validateAndEncode(tree, parent, author, committer, message)
	if err != nil {
		return nil, err
	}
	id, err := out.WriteObject(ctx, hash.KindCommit, payload)
	if err != nil {
		return nil, err
	}
	return &Commit{
		Hash:      id,
		Tree:      tree,
		Parent:    parent,
		Author:    author,
		Committer: committer,
		Message:   message,
	}, nil
}

func validateAndEncode(tree hash.Hash, parent hash.Hash, author Author, committer Committer, message string) ([]byte, error) {
	if message == "" {
		return nil, ErrEmptyMessage
	}
	if author.Name == "" || author.Email == "" {
		return nil, &AuthorError{Field: "author", Want: "non-empty name and email"}
	}
	if committer.Name == "" || committer.Email == "" {
		return nil, &AuthorError{Field: "committer", Want: "non-empty name and email"}
	}

	var buf bytes.Buffer
	fmt.Fprintf(&buf, "tree %s\n", tree.String())
	if !parent.IsZero() {
		fmt.Fprintf(&buf, "parent %s\n", parent.String())
	}
	fmt.Fprintf(&buf, "author %s <%s> %d %s\n", author.Name, author.Email, author.Time.Unix(), author.Time.Format("-0700"))
	fmt.Fprintf(&buf, "committer %s <%s> %d %s\n", committer.Name, committer.Email, committer.Time.Unix(), committer.Time.Format("-0700"))
	buf.WriteByte('\n')
	buf.WriteString(message)
	return buf.Bytes(), nil
}

// Time returns the commit's effective timestamp, the committer's, matching
// what Git itself shows as a commit's date.
func (c *Commit) Time() time.Time {
	return c.Committer.Time
}
