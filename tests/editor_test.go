package tests_test

import (
	"context"
	"crypto"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/nanotree/nanotree"
	"github.com/nanotree/nanotree/codec"
	"github.com/nanotree/nanotree/hash"
	"github.com/nanotree/nanotree/object"
)

func path(parts ...string) [][]byte {
	out := make([][]byte, len(parts))
	for i, p := range parts {
		out[i] = []byte(p)
	}
	return out
}

var _ = Describe("Editor", func() {
	var (
		ctx    context.Context
		writer *codec.MemoryWriter
		ed     *nanotree.Editor
	)

	BeforeEach(func() {
		ctx = context.Background()
		writer = codec.NewMemoryWriter(crypto.SHA1)

		// The writer doubles as the editor's Finder, so trees written by one
		// Write can be reopened by later upserts. The empty tree is written
		// up front because reopening an entry that points at it resolves it
		// through the Finder.
		_, err := writer.WriteTree(ctx, &object.Tree{})
		Expect(err).NotTo(HaveOccurred())
		ed, err = nanotree.New(&object.Tree{}, writer)
		Expect(err).NotTo(HaveOccurred())
	})

	It("writes the canonical empty tree when untouched", func() {
		id, err := ed.Write(ctx, writer)
		Expect(err).NotTo(HaveOccurred())
		Expect(id.String()).To(Equal("4b825dc642cb6eb9a060e54bf8d69288fbee4904"))
	})

	It("builds a deep hierarchy of genuinely empty subtrees", func() {
		emptyID := hash.MustFromHex("4b825dc642cb6eb9a060e54bf8d69288fbee4904")

		_, err := ed.Upsert(ctx, path("a", "b"), object.ModeTree, emptyID)
		Expect(err).NotTo(HaveOccurred())
		_, err = ed.Upsert(ctx, path("a", "b", "c"), object.ModeTree, emptyID)
		Expect(err).NotTo(HaveOccurred())
		_, err = ed.Upsert(ctx, path("a", "b", "d", "e"), object.ModeTree, emptyID)
		Expect(err).NotTo(HaveOccurred())

		id, err := ed.Write(ctx, writer)
		Expect(err).NotTo(HaveOccurred())
		Expect(id.String()).To(Equal("bf91a94ae659ac8a9da70d26acf42df1a36adb6e"))
	})

	It("replaces a blob with a tree chain and back again across calls", func() {
		emptyID := hash.MustFromHex("4b825dc642cb6eb9a060e54bf8d69288fbee4904")
		blobID := hash.MustFromHex("bbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbb")

		_, err := ed.Upsert(ctx, path("a", "b"), object.ModeTree, emptyID)
		Expect(err).NotTo(HaveOccurred())
		_, err = ed.Upsert(ctx, path("a", "b", "c"), object.ModeTree, emptyID)
		Expect(err).NotTo(HaveOccurred())
		_, err = ed.Upsert(ctx, path("a", "b", "d", "e"), object.ModeTree, emptyID)
		Expect(err).NotTo(HaveOccurred())

		id, err := ed.Write(ctx, writer)
		Expect(err).NotTo(HaveOccurred())
		Expect(id.String()).To(Equal("bf91a94ae659ac8a9da70d26acf42df1a36adb6e"))

		_, err = ed.Upsert(ctx, path("a"), object.ModeBlob, blobID)
		Expect(err).NotTo(HaveOccurred())
		_, err = ed.Upsert(ctx, path("a", "b"), object.ModeBlob, blobID)
		Expect(err).NotTo(HaveOccurred())
		_, err = ed.Upsert(ctx, path("a", "b", "c"), object.ModeBlob, blobID)
		Expect(err).NotTo(HaveOccurred())
		_, err = ed.Upsert(ctx, path("b", "d"), object.ModeBlob, blobID)
		Expect(err).NotTo(HaveOccurred())

		id, err = ed.Write(ctx, writer)
		Expect(err).NotTo(HaveOccurred())
		Expect(id.String()).To(Equal("bf18e0ec42a5a96e16b312e04a7a67a9710a54a3"))

		_, err = ed.Upsert(ctx, path("a", "b", "c"), object.ModeBlob, blobID)
		Expect(err).NotTo(HaveOccurred())
		_, err = ed.Upsert(ctx, path("a"), object.ModeBlob, blobID)
		Expect(err).NotTo(HaveOccurred())

		id, err = ed.Write(ctx, writer)
		Expect(err).NotTo(HaveOccurred())
		Expect(id.String()).To(Equal("835a710bc8a649148c9094f6cad1f309ce33a4fa"))
	})

	It("discards in-flight state on SetRoot", func() {
		blobID := hash.MustFromHex("bbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbb")

		_, err := ed.Upsert(ctx, path("b", "d"), object.ModeBlob, blobID)
		Expect(err).NotTo(HaveOccurred())

		ed.SetRoot(&object.Tree{})
		_, err = ed.Upsert(ctx, path("a", "b", "c"), object.ModeBlob, blobID)
		Expect(err).NotTo(HaveOccurred())
		_, err = ed.Upsert(ctx, path("a"), object.ModeBlob, blobID)
		Expect(err).NotTo(HaveOccurred())

		id, err := ed.Write(ctx, writer)
		Expect(err).NotTo(HaveOccurred())
		Expect(id.String()).To(Equal("077c77c8214a54bdaf8cafcc36c2f7f0e61a2e43"))
	})

	It("rejects an empty path", func() {
		_, err := ed.Upsert(ctx, nil, object.ModeBlob, hash.MustFromHex("bbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbb"))
		Expect(err).To(MatchError(nanotree.ErrEmptyPath))
	})
})
