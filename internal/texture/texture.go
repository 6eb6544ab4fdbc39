package texture

import "github.com/wadview/render/texcat"

// Texture is a composed, column-addressable texture: immutable once built,
// safe to share across columns and frames.
type Texture struct {
	Width, Height int
	columns       [][]texcat.PixelSpan // len(columns) == Width
}

// New builds a Texture directly from already-composed columns. Exposed for
// tests and callers that assemble texture data outside a texcat.Catalog.
func New(width, height int, columns [][]texcat.PixelSpan) *Texture {
	return &Texture{Width: width, Height: height, columns: columns}
}

// Column returns the spans for column x, wrapping x into [0, Width) with
// Euclidean remainder so negative values (and values past the last column)
// wrap to a valid column rather than panicking or clamping.
func (t *Texture) Column(x int32) []texcat.PixelSpan {
	w := int32(t.Width)
	if w == 0 {
		return nil
	}
	m := x % w
	if m < 0 {
		m += w
	}
	return t.columns[m]
}
