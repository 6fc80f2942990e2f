// Package imagestore persists product images behind one interface with
// filesystem, S3 and in-memory backends.
package imagestore

import (
	"context"
	"fmt"
	"path"
	"strings"

	"techmart-be/internal/config"
	"techmart-be/internal/entity"
	"techmart-be/pkg/imagestore/filesystem"
	"techmart-be/pkg/imagestore/memory"
	"techmart-be/pkg/imagestore/s3store"

	"github.com/gabriel-vasile/mimetype"
)

// Store keys are slash separated relative paths such as
// "assets/products/product_images/P009.png".
type Store interface {
	Save(ctx context.Context, key string, data []byte) error
	Load(ctx context.Context, key string) ([]byte, error)
	Delete(ctx context.Context, key string) error
}

var allowedTypes = map[string]string{
	"image/png":  ".png",
	"image/jpeg": ".jpg",
	"image/gif":  ".gif",
	"image/webp": ".webp",
}

// DetectImage sniffs data and returns the file extension for supported image types.
func DetectImage(data []byte) (string, error) {
	mtype := mimetype.Detect(data)
	for mime, ext := range allowedTypes {
		if mtype.Is(mime) {
			return ext, nil
		}
	}
	return "", fmt.Errorf("%w: %s", entity.ErrUnsupportedImage, mtype.String())
}

// UploadKey builds the key for a product image upload, e.g. dir/P009.png.
func UploadKey(dir, productId, ext string) string {
	return path.Join(strings.Trim(dir, "/"), productId+ext)
}

// New picks the backend named by cfg.Driver.
func New(ctx context.Context, cfg config.StorageConfig) (Store, error) {
	switch cfg.Driver {
	case "", "filesystem":
		return filesystem.NewStore(cfg.Root)
	case "s3":
		if cfg.S3Bucket == "" {
			return nil, fmt.Errorf("S3_BUCKET_NAME must be set for the s3 image store")
		}
		return s3store.NewStore(ctx, cfg.S3Bucket)
	case "memory":
		return memory.NewStore(), nil
	default:
		return nil, fmt.Errorf("unknown image store %q", cfg.Driver)
	}
}
