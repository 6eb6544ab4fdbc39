package raster

import (
	"github.com/wadview/render/internal/geom"
	"github.com/wadview/render/internal/texture"
)

// columnGeometry is the per-column screen-space data shared by wall and
// portal painting: the projected top/bottom of the quad's aperture at this
// column, the perspective scale (screen pixels per world unit at this
// depth), and the perspective-correct texture u.
type columnGeometry struct {
	top, bottom, scale, u float32
}

func (q *projectedQuad) columnAt(x int32) columnGeometry {
	dFloorX := q.fb.X - q.fa.X
	t := (float32(x) - q.fa.X) / dFloorX

	top := q.ca.Y + (q.cb.Y-q.ca.Y)*t
	bottom := q.fa.Y + (q.fb.Y-q.fa.Y)*t
	scale := projD/q.za + (projD/q.zb-projD/q.za)*t
	u := perspectiveU(q.ua, q.ub, q.za, q.zb, t)

	return columnGeometry{top: top, bottom: bottom, scale: scale, u: u}
}

// drawTextureCol paints one column of tex into the framebuffer at x,
// placing texture row 0 at screen y=top and scaling rows by scale (screen
// pixels per texture row / world unit, since wall textures are authored at
// one texel per world unit tall). The painted range is clamped to
// [top, bottom) and to the column's current vertical openness, and wraps
// vertically (tiling the texture downward) if bottom extends past one
// texture height. A nil tex is a no-op: callers still get their openness
// updates (MissingResource: occlude, draw nothing).
func (s *State) drawTextureCol(x int32, top, bottom, scale, u float32, tex *texture.Texture) {
	if tex == nil || tex.Height <= 0 {
		return
	}
	s.paintTiled(x, top, bottom, scale, u, tex)
}

func (s *State) paintTiled(x int32, top, bottom, scale, u float32, tex *texture.Texture) {
	ui := roundToInt32(u)
	open := s.vOpen[x]
	bottomI := roundToInt32(bottom)

	for _, span := range tex.Column(ui) {
		n := int32(len(span.Pixels))
		if n == 0 {
			continue
		}
		y0 := top + float32(span.Top)*scale
		y1 := top + float32(int32(span.Top)+n)*scale

		yEnd := roundToInt32(y1)
		if yEnd > bottomI {
			yEnd = bottomI
		}
		r := geom.Intersect(geom.Range{Start: roundToInt32(y0), End: yEnd}, open)

		dy := y1 - y0
		if dy == 0 {
			continue
		}
		for y := r.Start; y < r.End; y++ {
			frac := (float32(y) - y0) / dy * float32(n)
			idx := int32(frac)
			if idx < 0 {
				idx = 0
			} else if idx >= n {
				idx = n - 1
			}
			row := int(y)*ScreenWidth + int(x)
			s.fb[row] = span.Pixels[idx]
		}
	}

	texHeightScaled := float32(tex.Height) * scale
	if texHeightScaled > 0 && bottom > top+texHeightScaled {
		s.paintTiled(x, top+texHeightScaled, bottom, scale, u, tex)
	}
}
