package imageref

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"techmart-be/pkg/imagestore/filesystem"
	"techmart-be/pkg/imagestore/memory"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		ref  string
		want Kind
	}{
		{ref: "", want: KindNone},
		{ref: "📦", want: KindSymbol},
		{ref: "👟", want: KindSymbol},
		{ref: "https://cdn.example.com/a.png", want: KindURL},
		{ref: "http://example.com/b", want: KindURL},
		{ref: "data:image/png;base64,AAAA", want: KindData},
		{ref: "assets/products/macbook.jpg", want: KindPath},
		{ref: "tv.webp", want: KindPath},
		{ref: "./.env", want: KindNone},
		{ref: ".env", want: KindNone},
		{ref: "logs/x.log", want: KindNone},
		{ref: "../outside.png", want: KindNone},
		{ref: "assets/../../etc/a.png", want: KindNone},
		{ref: "/etc/a.png", want: KindNone},
		{ref: "C:/images/a.png", want: KindNone},
	}

	for _, tt := range tests {
		t.Run(tt.ref, func(t *testing.T) {
			assert.Equal(t, tt.want, Classify(tt.ref))
		})
	}
}

func TestMimeSubtype(t *testing.T) {
	assert.Equal(t, "jpeg", MimeSubtype("a/b.JPG"))
	assert.Equal(t, "jpeg", MimeSubtype("b.jpeg"))
	assert.Equal(t, "png", MimeSubtype("b.png"))
	assert.Equal(t, "webp", MimeSubtype("x.jpg.webp"))
}

func TestResolvePassThrough(t *testing.T) {
	r := NewResolver(memory.NewStore())

	for _, ref := range []string{"📦", "https://x.test/y.png", "data:image/gif;base64,R0lG"} {
		view, err := r.Resolve(context.Background(), ref)
		require.NoError(t, err)
		assert.Equal(t, ref, view.Src)
		assert.Equal(t, Classify(ref), view.Kind)
	}
}

func TestResolveStoredFile(t *testing.T) {
	ctx := context.Background()
	s := memory.NewStore()
	require.NoError(t, s.Save(ctx, "assets/products/p.png", []byte("abc")))
	r := NewResolver(s)

	view, err := r.Resolve(ctx, "assets/products/p.png")
	require.NoError(t, err)
	assert.Equal(t, KindData, view.Kind)
	assert.Equal(t, "data:image/png;base64,YWJj", view.Src)
}

func TestResolveMissingFileDegrades(t *testing.T) {
	r := NewResolver(memory.NewStore())

	view, err := r.Resolve(context.Background(), "assets/products/gone.jpg")
	require.NoError(t, err)
	assert.Equal(t, KindNone, view.Kind)
	assert.Empty(t, view.Src)
}

func TestResolveNeverReadsNonImageFiles(t *testing.T) {
	ctx := context.Background()
	s := memory.NewStore()
	require.NoError(t, s.Save(ctx, ".env", []byte("SESSION_SECRET=topsecret\n")))
	require.NoError(t, s.Save(ctx, "./.env", []byte("SESSION_SECRET=topsecret\n")))
	require.NoError(t, s.Save(ctx, "logs/x.log", []byte(`{"level":"INFO"}`)))
	r := NewResolver(s)

	for _, ref := range []string{"./.env", ".env", "logs/x.log"} {
		view, err := r.Resolve(ctx, ref)
		require.NoError(t, err)
		assert.Equal(t, KindNone, view.Kind, ref)
		assert.Empty(t, view.Src, ref)
	}
}

func TestResolveFilesystemRootSecrets(t *testing.T) {
	ctx := context.Background()
	root := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(root, ".env"), []byte("SESSION_SECRET=topsecret\n"), 0600))
	fs, err := filesystem.NewStore(root)
	require.NoError(t, err)
	r := NewResolver(fs)

	view, err := r.Resolve(ctx, "./.env")
	require.NoError(t, err)
	assert.Equal(t, KindNone, view.Kind)
	assert.NotContains(t, view.Src, "base64")
}

type failingLoader struct{}

func (failingLoader) Load(context.Context, string) ([]byte, error) {
	return nil, errors.New("disk on fire")
}

func TestResolveLoaderError(t *testing.T) {
	r := NewResolver(failingLoader{})
	_, err := r.Resolve(context.Background(), "assets/x.png")
	assert.Error(t, err)
}

func TestInvalidate(t *testing.T) {
	ctx := context.Background()
	s := memory.NewStore()
	key := "assets/products/p.png"
	require.NoError(t, s.Save(ctx, key, []byte("old")))
	r := NewResolver(s)

	_, err := r.Resolve(ctx, key)
	require.NoError(t, err)

	require.NoError(t, s.Save(ctx, key, []byte("new")))
	r.Invalidate(key)

	view, err := r.Resolve(ctx, key)
	require.NoError(t, err)
	assert.Equal(t, DataURL(key, []byte("new")), view.Src)
}
