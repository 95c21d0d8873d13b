package store_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nanotree/nanotree/hash"
	"github.com/nanotree/nanotree/object"
	"github.com/nanotree/nanotree/store"
)

func TestInMemoryPutFind(t *testing.T) {
	s := store.NewInMemory()
	id := hash.MustFromHex("bbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbb")
	tree := &object.Tree{Entries: []object.Entry{{Name: []byte("a"), Mode: object.ModeBlob, OID: id}}}

	s.Put(id, tree)
	got, err := s.FindTree(context.Background(), id)
	require.NoError(t, err)
	assert.Same(t, tree, got)
	assert.Equal(t, 1, s.Len())

	s.Delete(id)
	assert.Equal(t, 0, s.Len())
}

func TestInMemoryFindTreeMissing(t *testing.T) {
	s := store.NewInMemory()
	_, err := s.FindTree(context.Background(), hash.MustFromHex("cccccccccccccccccccccccccccccccccccccccc"))
	require.Error(t, err)
	assert.ErrorIs(t, err, store.ErrTreeNotFound)
}
