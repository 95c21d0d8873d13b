package codec_test

import (
	"context"
	"crypto"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nanotree/nanotree/codec"
	"github.com/nanotree/nanotree/hash"
	"github.com/nanotree/nanotree/object"
)

func TestEncodeDecodeTreeRoundTrip(t *testing.T) {
	tree := &object.Tree{Entries: []object.Entry{
		{Name: []byte("a.txt"), Mode: object.ModeBlob, OID: hash.MustFromHex("bbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbb")},
		{Name: []byte("sub"), Mode: object.ModeTree, OID: hash.MustFromHex("4b825dc642cb6eb9a060e54bf8d69288fbee4904")},
	}}

	encoded := codec.EncodeTree(tree)
	decoded, err := codec.DecodeTree(encoded, 20)
	require.NoError(t, err)
	assert.Equal(t, tree.Entries, decoded.Entries)
}

func TestEmptyTreeHashIsCanonical(t *testing.T) {
	w := codec.NewMemoryWriter(crypto.SHA1)
	id, err := w.WriteTree(context.Background(), &object.Tree{})
	require.NoError(t, err)
	assert.Equal(t, "4b825dc642cb6eb9a060e54bf8d69288fbee4904", id.String())
}

func TestMemoryWriterFindTreeRoundTrip(t *testing.T) {
	w := codec.NewMemoryWriter(crypto.SHA1)
	ctx := context.Background()

	tree := &object.Tree{Entries: []object.Entry{
		{Name: []byte("x"), Mode: object.ModeBlob, OID: hash.MustFromHex("bbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbb")},
	}}
	id, err := w.WriteTree(ctx, tree)
	require.NoError(t, err)

	got, err := w.FindTree(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, tree.Entries, got.Entries)

	assert.Equal(t, 1, w.Len())
}

func TestMemoryWriterFindTreeMissing(t *testing.T) {
	w := codec.NewMemoryWriter(crypto.SHA1)
	_, err := w.FindTree(context.Background(), hash.MustFromHex("cccccccccccccccccccccccccccccccccccccccc"))
	assert.Error(t, err)
}
