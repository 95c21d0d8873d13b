package store_test

import (
	"context"
	"crypto"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nanotree/nanotree/hash"
	"github.com/nanotree/nanotree/object"
	"github.com/nanotree/nanotree/store"
)

func TestDiskWriteThenFindRoundTrip(t *testing.T) {
	d := store.NewDisk(t.TempDir(), crypto.SHA1)
	tree := &object.Tree{Entries: []object.Entry{
		{Name: []byte("a"), Mode: object.ModeBlob, OID: hash.MustFromHex("bbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbb")},
	}}

	id, err := d.WriteTree(context.Background(), tree)
	require.NoError(t, err)

	got, err := d.FindTree(context.Background(), id)
	require.NoError(t, err)
	require.Len(t, got.Entries, 1)
	assert.Equal(t, "a", string(got.Entries[0].Name))
}

func TestDiskFindTreeMissingIsClassifiedAsNotFound(t *testing.T) {
	d := store.NewDisk(t.TempDir(), crypto.SHA1)
	_, err := d.FindTree(context.Background(), hash.MustFromHex("cccccccccccccccccccccccccccccccccccccccc"))
	require.Error(t, err)
	assert.ErrorIs(t, err, store.ErrTreeNotFound)
	assert.NotErrorIs(t, err, store.ErrBackend)
}
