package raster

import "github.com/wadview/render/internal/geom"

// Portal paints the upper and lower "step" textures of a two-sided
// opening and shrinks per-column vertical openness to the opening's
// aperture. upper/lower are nil when the corresponding step is absent
// (front ceiling/floor level with the back sector); their Tex fields may
// also independently be nil (absent or MissingResource), in which case the
// band still confines vertical openness but draws nothing.
//
// Unlike Wall, Portal never removes columns from horizontal openness: the
// opening is, by definition, not fully occluding.
func (s *State) Portal(floor, ceil float32, a, b geom.CamPoint, upper, lower *Band) {
	q, ok := clipAndProject(floor, ceil, a, b)
	if !ok {
		return
	}

	frags := s.horizontallyClip(geom.Range{Start: q.xStart, End: q.xEnd})
	for _, frag := range frags {
		for x := frag.Start; x < frag.End; x++ {
			g := q.columnAt(x)

			if upper != nil {
				bandTop := 100 - upper.Top*g.scale
				bandBottom := 100 - upper.Bottom*g.scale
				s.drawTextureCol(x, bandTop, bandBottom, g.scale, g.u, upper.Tex)
			}
			if lower != nil {
				bandTop := 100 - lower.Top*g.scale
				bandBottom := 100 - lower.Bottom*g.scale
				s.drawTextureCol(x, bandTop, bandBottom, g.scale, g.u, lower.Tex)
			}

			aperture := geom.Range{Start: roundToInt32(g.top), End: roundToInt32(g.bottom)}
			s.vOpen[x] = geom.Intersect(s.vOpen[x], aperture)
		}
	}
}
