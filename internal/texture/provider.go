// Package texture provides lazy composition of full textures from a patch
// catalog, with an identity-keyed cache of the composed result.
package texture

import (
	"errors"
	"log/slog"

	lru "github.com/hashicorp/golang-lru"

	"github.com/wadview/render/texcat"
)

// ErrNotFound is returned when an id is not the absent sentinel but also
// does not resolve to a texture definition in the catalog. Callers should
// treat this as the spec's MissingResource condition: draw nothing for the
// texture but keep any occlusion effects it would otherwise have had.
var ErrNotFound = errors.New("texture: id not found in catalog")

// Provider composes textures from patches on demand and caches the
// composed result, keyed by the opaque 8-byte texture id. It is the only
// renderer component that mutates across frames; its cache is internally
// synchronized by the underlying LRU, but a Provider is still meant to be
// used by one renderer (one frame at a time), not shared across concurrent
// renderers without external synchronization.
type Provider struct {
	catalog texcat.Catalog
	cache   *lru.Cache
	logger  *slog.Logger
}

// NewProvider creates a Provider backed by cat, with a composed-texture
// cache bounded to cacheSize entries.
func NewProvider(cat texcat.Catalog, cacheSize int, logger *slog.Logger) (*Provider, error) {
	c, err := lru.New(cacheSize)
	if err != nil {
		return nil, err
	}
	return &Provider{catalog: cat, cache: c, logger: logger}, nil
}

// HasTexture reports whether id names a texture in the catalog. An absent
// id always reports false: callers must check IsAbsent separately if they
// need to distinguish "absent" from "missing".
func (p *Provider) HasTexture(id texcat.TextureID) bool {
	if id.IsAbsent() {
		return false
	}
	return p.catalog.HasTexture(id)
}

// Texture returns the composed texture for id, composing and caching it on
// first use. Returns ErrNotFound for a non-absent id the catalog doesn't
// recognize; callers must not pass an absent id (check IsAbsent first).
func (p *Provider) Texture(id texcat.TextureID) (*Texture, error) {
	if cached, ok := p.cache.Get(id); ok {
		return cached.(*Texture), nil
	}

	def, ok := p.catalog.TextureDef(id)
	if !ok {
		return nil, ErrNotFound
	}

	tex := compose(def, p.catalog)
	p.cache.Add(id, tex)
	if p.logger != nil {
		p.logger.Debug("composed texture", "id", id.String(), "width", tex.Width, "height", tex.Height)
	}
	return tex, nil
}

// compose blits each placed patch's columns into a texture-sized canvas.
// Patches are composited in the order given by def.Patches; later patches
// paint over earlier ones within any overlapping columns.
func compose(def texcat.TextureDef, cat texcat.Catalog) *Texture {
	columns := make([][]texcat.PixelSpan, def.Width)

	for _, placement := range def.Patches {
		patch, ok := cat.Patch(placement.PatchName)
		if !ok {
			continue
		}
		for px := 0; px < patch.Width; px++ {
			dx := placement.OriginX + px
			if dx < 0 || dx >= def.Width {
				continue
			}
			for _, span := range patch.Columns[px] {
				columns[dx] = append(columns[dx], texcat.PixelSpan{
					Top:    span.Top + placement.OriginY,
					Pixels: span.Pixels,
				})
			}
		}
	}

	return &Texture{Width: def.Width, Height: def.Height, columns: columns}
}
