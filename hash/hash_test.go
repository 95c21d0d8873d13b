package hash

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromHexEmptyIsZero(t *testing.T) {
	h, err := FromHex("")
	require.NoError(t, err)
	assert.True(t, h.IsZero())
}

func TestFromHexInvalid(t *testing.T) {
	_, err := FromHex("not-hex")
	assert.Error(t, err)
}

func TestMustFromHexPanicsOnInvalid(t *testing.T) {
	assert.Panics(t, func() {
		MustFromHex("not-hex")
	})
}

func TestNullIsZeroWidth(t *testing.T) {
	n := Null(20)
	assert.Len(t, n, 20)
	assert.True(t, n.IsZero())
}

func TestIsZeroFalseForRealHash(t *testing.T) {
	h := MustFromHex("bbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbb")
	assert.False(t, h.IsZero())
}

func TestIs(t *testing.T) {
	a := MustFromHex("bbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbb")
	b := MustFromHex("bbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbb")
	c := MustFromHex("cccccccccccccccccccccccccccccccccccccccc")
	assert.True(t, a.Is(b))
	assert.False(t, a.Is(c))
}

func TestString(t *testing.T) {
	h := MustFromHex("4b825dc642cb6eb9a060e54bf8d69288fbee4904")
	assert.Equal(t, "4b825dc642cb6eb9a060e54bf8d69288fbee4904", h.String())
}
