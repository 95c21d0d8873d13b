package hash

import (
	"crypto"
	"errors"
	"strconv"

	// Registers SHA-1 and SHA-256 with the crypto package via their init
	// functions, so algo.Available() and algo.New() work for either. Git
	// itself is mid-transition from the former to the latter:
	// https://git-scm.com/docs/hash-function-transition
	//nolint:gosec
	_ "crypto/sha1"
	_ "crypto/sha256"
)

// ErrUnlinkedAlgorithm is returned when algo has no init-registered
// implementation (e.g. MD5, which this package never imports).
var ErrUnlinkedAlgorithm = errors.New("hash: algorithm is not linked into the binary")

// Object hashes data as a loose Git object of kind t: the header NewHasher
// writes, followed by data itself. Two objects of different kinds holding
// byte-identical content hash to different ids, since the header carries
// the kind.
func Object(algo crypto.Hash, t Kind, data []byte) (Hash, error) {
	h, err := NewHasher(algo, t, int64(len(data)))
	if err != nil {
		return nil, err
	}
	if _, err := h.Write(data); err != nil {
		return nil, err
	}
	return h.Sum(nil), nil
}

// NewHasher primes a Hasher with a loose object header ("<kind> <size>\0")
// for algo, leaving the caller to write only the object's content. size is
// the content length in bytes, not including the header.
func NewHasher(algo crypto.Hash, t Kind, size int64) (Hasher, error) {
	if !algo.Available() {
		return Hasher{}, ErrUnlinkedAlgorithm
	}
	h := Hasher{Hash: algo.New()}

	header := append(t.Bytes(), ' ')
	header = strconv.AppendInt(header, size, 10)
	header = append(header, 0)

	if _, err := h.Write(header); err != nil {
		return Hasher{}, err
	}
	return h, nil
}
