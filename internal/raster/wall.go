package raster

import (
	"github.com/wadview/render/internal/geom"
	"github.com/wadview/render/internal/texture"
)

// Wall paints a solid, occluding wall quad. floor and ceil are
// camera-relative world heights; a and b are the quad's near/far-agnostic
// left/right edges in camera space. tex may be nil (absent or
// MissingResource texture id): the wall still occludes, but no pixels are
// drawn for it (whatever was already in the framebuffer shows through).
func (s *State) Wall(floor, ceil float32, a, b geom.CamPoint, tex *texture.Texture) {
	q, ok := clipAndProject(floor, ceil, a, b)
	if !ok {
		return
	}

	frags := s.applyHorizontalClipping(geom.Range{Start: q.xStart, End: q.xEnd})
	for _, frag := range frags {
		for x := frag.Start; x < frag.End; x++ {
			g := q.columnAt(x)
			s.drawTextureCol(x, g.top, g.bottom, g.scale, g.u, tex)
			s.vOpen[x] = geom.Range{}
		}
	}
}
