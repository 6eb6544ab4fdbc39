// Package raster implements the rendering state: the framebuffer-bound
// horizontal/vertical openness buffers and the wall/portal rasterizer that
// paints into them. This is the core of the renderer: near-plane clipping,
// perspective projection, perspective-correct texture mapping, and the
// "solid-segment" occlusion bookkeeping that lets a frame stop once the
// screen is fully painted.
package raster

import (
	"github.com/chewxy/math32"

	"github.com/wadview/render/internal/geom"
	"github.com/wadview/render/internal/texture"
)

// Screen dimensions and fixed projection constants.
const (
	ScreenWidth  = 320
	ScreenHeight = 200

	// fov is 90 degrees; D = (ScreenWidth/2) / tan(fov/2) = 160.
	projD = 160

	// ClipNear is the near-plane depth threshold, in camera-space units.
	ClipNear float32 = 10
)

// Band describes one "step" texture of a two-sided portal: a vertical span
// [Bottom, Top] in camera-relative world units, and the texture drawn into
// it. Tex may be nil (absent or MissingResource texture id): the band's
// vertical-openness shrink still applies even when nothing gets drawn.
type Band struct {
	Top, Bottom float32
	Tex         *texture.Texture
}

// State holds one frame's occlusion bookkeeping and borrows the caller's
// framebuffer for the duration of the frame. It must not outlive the
// render call that created it.
type State struct {
	fb    []byte // len == ScreenWidth*ScreenHeight, row-major
	hOpen []geom.Range
	vOpen [ScreenWidth]geom.Range
}

// New creates a State over fb (which must be ScreenWidth*ScreenHeight
// bytes), with fully open horizontal and vertical buffers.
func New(fb []byte) *State {
	s := &State{
		fb:    fb,
		hOpen: []geom.Range{{Start: 0, End: ScreenWidth}},
	}
	for i := range s.vOpen {
		s.vOpen[i] = geom.Range{Start: 0, End: ScreenHeight}
	}
	return s
}

// IsComplete reports whether every column has been occluded by a solid
// wall. Once true, further Wall calls write nothing: callers should check
// this after each subsector to exit the BSP walk early.
func (s *State) IsComplete() bool {
	return len(s.hOpen) == 0
}

// applyHorizontalClipping intersects r against every open column range,
// returning the overlapping fragments to paint and retaining the
// non-overlapping (and post-boundary) fragments as still open. Used by
// Wall, which consumes the columns it paints.
func (s *State) applyHorizontalClipping(r geom.Range) []geom.Range {
	var toRender, retained []geom.Range
	for _, c := range s.hOpen {
		i := geom.Intersect(c, r)
		if i.Empty() {
			retained = append(retained, c)
			continue
		}
		if c.Start < i.Start {
			retained = append(retained, geom.Range{Start: c.Start, End: i.Start})
		}
		if i.End < c.End {
			retained = append(retained, geom.Range{Start: i.End, End: c.End})
		}
		toRender = append(toRender, i)
	}
	s.hOpen = retained
	return toRender
}

// horizontallyClip returns the fragments of r that overlap open columns,
// without modifying horizontal openness. Used by Portal, whose middle
// texture is transparent and so never occludes on its own.
func (s *State) horizontallyClip(r geom.Range) []geom.Range {
	var toRender []geom.Range
	for _, c := range s.hOpen {
		i := geom.Intersect(c, r)
		if !i.Empty() {
			toRender = append(toRender, i)
		}
	}
	return toRender
}

func project(px, py, pz float32) (x, y float32) {
	w := float32(1) / pz
	return 160 + projD*px*w, 100 - projD*py*w
}

func roundToInt32(f float32) int32 {
	return int32(math32.Round(f))
}
