// Package texcat describes the texture and patch resource catalog the
// renderer draws from. It defines the contract only: decoding a WAD's
// binary patch/flat lumps into the Patch values below is out of scope here,
// the same way WAD parsing is out of scope for the renderer itself.
package texcat

// TextureID is an 8-byte texture or patch identifier, matching the fixed-
// width name fields used throughout the map format. The zero value means
// "absent": callers must treat it as no texture.
type TextureID [8]byte

// IsAbsent reports whether id is the all-zero "no texture" sentinel.
func (id TextureID) IsAbsent() bool {
	return id == TextureID{}
}

// String returns the printable form of the id, trimming trailing NUL padding.
func (id TextureID) String() string {
	n := len(id)
	for n > 0 && id[n-1] == 0 {
		n--
	}
	return string(id[:n])
}

// NewTextureID builds a TextureID from a name, truncating or zero-padding
// to 8 bytes as needed. Intended for tests and demo data, not for decoding
// on-disk lump names.
func NewTextureID(name string) TextureID {
	var id TextureID
	copy(id[:], name)
	return id
}

// PixelSpan is one vertical run of opaque pixels within a texture or patch
// column. Pixels are palette indices. Columns may hold zero or more spans,
// allowing sparse (partially transparent) textures.
type PixelSpan struct {
	Top    int
	Pixels []byte
}

// Patch is a single decoded image, already split into column spans. Patch
// decoding (e.g. from a WAD's picture format) happens upstream of this
// package; a Patch here is plain pixel data.
type Patch struct {
	Width, Height int
	Columns       [][]PixelSpan // len(Columns) == Width
}

// PatchPlacement positions one named patch within a composed texture.
type PatchPlacement struct {
	PatchName        string
	OriginX, OriginY int
}

// TextureDef describes how to compose a named texture from one or more
// patches placed at fixed offsets, in draw order (later entries painted
// over earlier ones, matching the composited wall texture convention).
type TextureDef struct {
	Width, Height int
	Patches       []PatchPlacement
}

// Catalog is the external resource provider the renderer draws textures
// and patches from. Implementations typically wrap a parsed WAD's texture
// directory and patch table; an in-memory implementation is provided here
// for tests and the demo command.
type Catalog interface {
	// HasTexture reports whether id names a texture in the directory.
	// The caller is expected to have already excluded the absent id.
	HasTexture(id TextureID) bool

	// TextureDef resolves a texture id to its composition recipe.
	TextureDef(id TextureID) (TextureDef, bool)

	// Patch resolves a patch by name to its decoded pixel data.
	Patch(name string) (Patch, bool)
}
