// Package imageref classifies product image references and turns them into
// something a browser can display directly.
package imageref

import (
	"context"
	"encoding/base64"
	"errors"
	"path"
	"strings"
	"time"

	"techmart-be/internal/entity"

	"github.com/patrickmn/go-cache"
)

type Kind string

const (
	KindNone   Kind = "none"
	KindSymbol Kind = "symbol"
	KindPath   Kind = "path"
	KindURL    Kind = "url"
	KindData   Kind = "data"
)

var imageExtensions = map[string]bool{
	".jpg": true, ".jpeg": true, ".png": true, ".gif": true, ".webp": true, ".svg": true, ".bmp": true,
}

// Classify inspects ref without touching storage. Only relative references
// with an image extension are stored paths; anything else that looks like a
// file is KindNone and is never read.
func Classify(ref string) Kind {
	ref = strings.TrimSpace(ref)
	switch {
	case ref == "":
		return KindNone
	case strings.HasPrefix(ref, "data:image"):
		return KindData
	case strings.HasPrefix(ref, "http://"), strings.HasPrefix(ref, "https://"):
		return KindURL
	case imageExtensions[strings.ToLower(path.Ext(ref))]:
		if escapesRoot(ref) {
			return KindNone
		}
		return KindPath
	case strings.ContainsAny(ref, "/\\"), path.Ext(ref) != "":
		return KindNone
	default:
		return KindSymbol
	}
}

func escapesRoot(ref string) bool {
	if strings.HasPrefix(ref, "/") || strings.HasPrefix(ref, "\\") || strings.Contains(ref, ":") {
		return true
	}
	for _, seg := range strings.FieldsFunc(ref, func(r rune) bool { return r == '/' || r == '\\' }) {
		if seg == ".." {
			return true
		}
	}
	return false
}

// MimeSubtype maps a file extension to the subtype used in data URLs.
func MimeSubtype(ref string) string {
	ext := strings.TrimPrefix(strings.ToLower(path.Ext(ref)), ".")
	switch ext {
	case "jpg", "jpeg":
		return "jpeg"
	case "svg":
		return "svg+xml"
	case "":
		return "png"
	}
	return ext
}

// DataURL encodes raw image bytes for inline display.
func DataURL(ref string, data []byte) string {
	return "data:image/" + MimeSubtype(ref) + ";base64," + base64.StdEncoding.EncodeToString(data)
}

type View struct {
	Kind Kind   `json:"kind"`
	Src  string `json:"src"`
}

// Loader is the read side of an image store.
type Loader interface {
	Load(ctx context.Context, key string) ([]byte, error)
}

type Resolver struct {
	loader Loader
	cache  *cache.Cache
}

func NewResolver(loader Loader) *Resolver {
	return &Resolver{
		loader: loader,
		cache:  cache.New(10*time.Minute, 20*time.Minute),
	}
}

// Resolve returns a displayable view of ref. Stored files are inlined as data
// URLs; a stored file that cannot be found degrades to KindNone.
func (r *Resolver) Resolve(ctx context.Context, ref string) (View, error) {
	ref = strings.TrimSpace(ref)
	kind := Classify(ref)
	if kind != KindPath {
		return View{Kind: kind, Src: ref}, nil
	}

	if cached, found := r.cache.Get(ref); found {
		return View{Kind: KindData, Src: cached.(string)}, nil
	}

	data, err := r.loader.Load(ctx, ref)
	if err != nil {
		if errors.Is(err, entity.ErrImageNotFound) {
			return View{Kind: KindNone}, nil
		}
		return View{Kind: KindNone}, err
	}

	src := DataURL(ref, data)
	r.cache.Set(ref, src, cache.DefaultExpiration)
	return View{Kind: KindData, Src: src}, nil
}

// Invalidate drops a cached encoding after the file behind ref changed.
func (r *Resolver) Invalidate(ref string) {
	r.cache.Delete(strings.TrimSpace(ref))
}
