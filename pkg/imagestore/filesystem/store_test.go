package filesystem

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"techmart-be/internal/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStoreRoundTrip(t *testing.T) {
	ctx := context.Background()
	root := t.TempDir()
	s, err := NewStore(root)
	require.NoError(t, err)

	key := "assets/products/product_images/P009.png"
	require.NoError(t, s.Save(ctx, key, []byte("png-bytes")))

	_, err = os.Stat(filepath.Join(root, "assets", "products", "product_images", "P009.png"))
	require.NoError(t, err)

	data, err := s.Load(ctx, key)
	require.NoError(t, err)
	assert.Equal(t, []byte("png-bytes"), data)

	require.NoError(t, s.Delete(ctx, key))
	_, err = s.Load(ctx, key)
	assert.ErrorIs(t, err, entity.ErrImageNotFound)
}

func TestStoreRejectsEscapingKeys(t *testing.T) {
	ctx := context.Background()
	s, err := NewStore(t.TempDir())
	require.NoError(t, err)

	for _, key := range []string{"", "../secret.png", "a/../../secret.png", "/etc/passwd", ".."} {
		t.Run(key, func(t *testing.T) {
			_, err := s.Load(ctx, key)
			assert.ErrorIs(t, err, ErrInvalidKey)
			assert.ErrorIs(t, s.Save(ctx, key, []byte("x")), ErrInvalidKey)
		})
	}
}

func TestDeleteMissingIsNoop(t *testing.T) {
	s, err := NewStore(t.TempDir())
	require.NoError(t, err)
	assert.NoError(t, s.Delete(context.Background(), "nothing/here.png"))
}
