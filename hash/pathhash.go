package hash

import "crypto"

// PathHash derives a content-free hash of a tree's full path from the root,
// used by the editor package to key its in-flight tree cache. It is plain
// content hashing (no Git object header), over the raw path bytes.
//
// Collisions between distinct paths are assumed astronomically unlikely;
// this is a design risk, not a guarantee: two colliding paths would share
// one in-flight tree.
func PathHash(algo crypto.Hash, path []byte) (Hash, error) {
	if !algo.Available() {
		return nil, ErrUnlinkedAlgorithm
	}
	h := algo.New()
	if _, err := h.Write(path); err != nil {
		return nil, err
	}
	return h.Sum(nil), nil
}

// EmptyPathHash is PathHash of the empty path: the key the editor uses for
// the root tree.
func EmptyPathHash(algo crypto.Hash) (Hash, error) {
	return PathHash(algo, nil)
}
