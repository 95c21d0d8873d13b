package main

import (
	"crypto"
	"os"
	"path/filepath"
	"strings"

	"github.com/nanotree/nanotree/codec"
	"github.com/nanotree/nanotree/hash"
	"github.com/nanotree/nanotree/object"
)

// emptyTreeID returns the canonical empty-tree id for algo.
func emptyTreeID(algo crypto.Hash) (hash.Hash, error) {
	return hash.Object(algo, hash.KindTree, codec.EncodeTree(&object.Tree{}))
}

// readRoot returns the current root id from cfg.RefFile, or the canonical
// empty tree id for algo if the ref file doesn't exist yet.
func readRoot(algo crypto.Hash) (hash.Hash, error) {
	data, err := os.ReadFile(cfg.RefFile)
	if os.IsNotExist(err) {
		return emptyTreeID(algo)
	}
	if err != nil {
		return nil, err
	}
	return hash.FromHex(strings.TrimSpace(string(data)))
}

// writeRoot persists id as the current root in cfg.RefFile.
func writeRoot(id hash.Hash) error {
	if err := os.MkdirAll(filepath.Dir(cfg.RefFile), 0o755); err != nil {
		return err
	}
	return os.WriteFile(cfg.RefFile, []byte(id.String()+"\n"), 0o644)
}
