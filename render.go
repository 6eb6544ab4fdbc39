package render

import (
	"log/slog"

	"github.com/chewxy/math32"

	"github.com/wadview/render/internal/bsp"
	"github.com/wadview/render/internal/geom"
	"github.com/wadview/render/internal/raster"
	"github.com/wadview/render/internal/texture"
	"github.com/wadview/render/mapdata"
	"github.com/wadview/render/texcat"
)

// eyeHeight is the camera's height above a subsector's floor, in world
// units.
const eyeHeight = 40

// Renderer draws frames of one map into caller-supplied buffers. A Renderer
// is safe to reuse across many Render calls (its only mutable state is the
// texture provider's bounded LRU cache), but Render calls must not
// overlap: a frame runs to completion on one goroutine, and concurrent
// calls into the same Renderer are not supported.
type Renderer struct {
	m        *mapdata.Map
	provider *texture.Provider
	logger   *slog.Logger
}

// NewRenderer builds a Renderer over m and cat. The map's BSP tree is
// validated up front: a node referencing an out-of-range child is reported
// as a *MalformedNodeError here rather than panicking mid-frame later.
func NewRenderer(m *mapdata.Map, cat texcat.Catalog, opts ...Option) (*Renderer, error) {
	o := defaultRendererOptions()
	for _, opt := range opts {
		opt(&o)
	}
	logger := o.logger
	if logger == nil {
		logger = Logger()
	}

	if err := validateNodes(m); err != nil {
		return nil, err
	}

	p, err := texture.NewProvider(cat, o.textureCacheSize, logger)
	if err != nil {
		return nil, err
	}
	return &Renderer{m: m, provider: p, logger: logger}, nil
}

func validateNodes(m *mapdata.Map) error {
	for i, n := range m.Nodes {
		for _, c := range [2]mapdata.NodeChild{n.Left, n.Right} {
			if c.IsSubsector {
				if c.Index < 0 || c.Index >= len(m.Subsectors) {
					return &MalformedNodeError{NodeIndex: i, ChildIndex: c.Index}
				}
				continue
			}
			if c.Index < 0 || c.Index >= len(m.Nodes) {
				return &MalformedNodeError{NodeIndex: i, ChildIndex: c.Index}
			}
		}
	}
	return nil
}

// deferredWall is a transparent middle texture whose paint is postponed
// until after the main BSP walk, so the screen's solid geometry is always
// drawn first.
type deferredWall struct {
	floor, ceil float32
	a, b        geom.CamPoint
	tex         texcat.TextureID
	clip        raster.ClipState
}

// Render draws one frame: palette copy, framebuffer clear, BSP walk with
// portal/wall rasterization, then the deferred transparent-middle replay.
// fb must be exactly 320*200 bytes and palette exactly 768 bytes; both are
// borrowed for the duration of the call only.
func (r *Renderer) Render(fb, palette []byte, cx, cy, dx, dy float32) error {
	if len(fb) != raster.ScreenWidth*raster.ScreenHeight {
		return ErrBadFramebuffer
	}
	if len(palette) != len(r.m.Palette) {
		return ErrBadPalette
	}

	copy(palette, r.m.Palette[:])
	for i := range fb {
		fb[i] = 0
	}

	pos := geom.Vec2{X: -cx, Y: cy}
	dir := geom.Vec2{X: dy, Y: -dx}
	vt := newViewTransform(pos, dir)

	cameraY, err := r.resolveCameraY(pos)
	if err != nil {
		return err
	}

	state := raster.New(fb)
	var deferred []deferredWall

	trav := bsp.New(r.m.Nodes, pos)
	for {
		idx, ok := trav.Next()
		if !ok {
			break
		}

		ss := r.m.Subsectors[idx]
		for i := 0; i < ss.SegCount; i++ {
			seg := r.m.Segs[ss.FirstSeg+i]
			r.walkSeg(state, vt, pos, cameraY, seg, &deferred)
		}

		if state.IsComplete() {
			break
		}
	}

	for i := len(deferred) - 1; i >= 0; i-- {
		d := deferred[i]
		state.SetClipState(d.clip)
		tex := r.resolveTexture(d.tex)
		state.Wall(d.floor, d.ceil, d.a, d.b, tex)
	}

	return nil
}

func (r *Renderer) walkSeg(state *raster.State, vt viewTransform, pos geom.Vec2, cameraY float32, seg mapdata.Seg, deferred *[]deferredWall) {
	l := r.m.Linedefs[seg.Linedef]
	a := r.worldVertex(l.Start)
	b := r.worldVertex(l.End)

	frontIdx, frontHas, backIdx, backHas := frontBackSidedefs(l, rightSide(pos, a, b, seg.Direction))
	if !frontHas {
		return
	}

	aCam := vt.ToCamera(a)
	bCam := vt.ToCamera(b)
	frontSD := r.m.Sidedefs[frontIdx]
	frontSector := r.m.Sectors[frontSD.Sector]

	if !backHas {
		floor := float32(frontSector.FloorHeight) - cameraY
		ceil := float32(frontSector.CeilHeight) - cameraY
		state.Wall(floor, ceil, aCam, bCam, r.resolveTexture(frontSD.Middle))
		return
	}

	backSD := r.m.Sidedefs[backIdx]
	backSector := r.m.Sectors[backSD.Sector]

	floor := maxF32(float32(frontSector.FloorHeight), float32(backSector.FloorHeight)) - cameraY
	ceil := minF32(float32(frontSector.CeilHeight), float32(backSector.CeilHeight)) - cameraY

	var upper, lower *raster.Band
	if frontSector.CeilHeight > backSector.CeilHeight {
		top := float32(frontSector.CeilHeight) - cameraY
		bottom := maxF32(float32(backSector.CeilHeight), float32(frontSector.FloorHeight)) - cameraY
		upper = &raster.Band{Top: top, Bottom: bottom, Tex: r.resolveTexture(frontSD.Upper)}
	}
	if frontSector.FloorHeight < backSector.FloorHeight {
		top := minF32(float32(backSector.FloorHeight), float32(frontSector.CeilHeight)) - cameraY
		bottom := float32(frontSector.FloorHeight) - cameraY
		lower = &raster.Band{Top: top, Bottom: bottom, Tex: r.resolveTexture(frontSD.Lower)}
	}

	state.Portal(floor, ceil, aCam, bCam, upper, lower)

	if !frontSD.Middle.IsAbsent() {
		*deferred = append(*deferred, deferredWall{
			floor: floor, ceil: ceil,
			a: aCam, b: bCam,
			tex:  frontSD.Middle,
			clip: state.GetClipState(),
		})
	}
}

// resolveCameraY walks to the first subsector from pos, scans its segs in
// order, and returns the floor height of the first seg with a resolvable
// front sidedef, plus eyeHeight. This is how the eye's world-space height
// is derived from a flat (cx, cy) position without the caller ever naming
// a sector directly.
func (r *Renderer) resolveCameraY(pos geom.Vec2) (float32, error) {
	trav := bsp.New(r.m.Nodes, pos)
	idx, ok := trav.Next()
	if !ok {
		return 0, ErrPointLocationFailed
	}

	ss := r.m.Subsectors[idx]
	for i := 0; i < ss.SegCount; i++ {
		seg := r.m.Segs[ss.FirstSeg+i]
		l := r.m.Linedefs[seg.Linedef]
		a := r.worldVertex(l.Start)
		b := r.worldVertex(l.End)

		frontIdx, frontHas, _, _ := frontBackSidedefs(l, rightSide(pos, a, b, seg.Direction))
		if !frontHas {
			continue
		}
		sd := r.m.Sidedefs[frontIdx]
		sector := r.m.Sectors[sd.Sector]
		return float32(sector.FloorHeight) + eyeHeight, nil
	}
	return 0, ErrPointLocationFailed
}

// resolveTexture resolves id to a composed texture, treating an absent id
// or a catalog miss as "draw nothing": the caller still gets occlusion
// effects from the wall/portal call, just no pixels.
func (r *Renderer) resolveTexture(id texcat.TextureID) *texture.Texture {
	if id.IsAbsent() {
		return nil
	}
	if !r.provider.HasTexture(id) {
		r.logger.Warn("texture id not found in catalog", "id", id.String())
		return nil
	}
	tex, err := r.provider.Texture(id)
	if err != nil {
		r.logger.Warn("texture composition failed", "id", id.String(), "error", err)
		return nil
	}
	return tex
}

// SpawnCamera derives the four camera scalars Render expects from m's
// spawn thing (type id 1), converting its world position and facing angle
// through the same boundary-glue convention Render itself inverts
// (pos = (-cx, cy), dir = (dy, -dx)). It returns ErrNoSpawnThing if m has
// no spawn thing.
func SpawnCamera(m *mapdata.Map) (cx, cy, dx, dy float32, err error) {
	x, y, angleDeg, ok := m.SpawnPoint()
	if !ok {
		return 0, 0, 0, 0, ErrNoSpawnThing
	}

	rad := angleDeg * math32.Pi / 180
	worldDirX, worldDirY := math32.Cos(rad), math32.Sin(rad)

	cx, cy = -x, y
	dy, dx = worldDirX, -worldDirY
	return cx, cy, dx, dy, nil
}

func (r *Renderer) worldVertex(idx int) geom.Vec2 {
	v := r.m.Vertexes[idx]
	return geom.Vec2{X: float32(v.X), Y: float32(v.Y)}
}

// rightSide reports whether pos is on the linedef's right (front) side,
// as seen from A toward B, XORed with the seg's own direction flag (a seg
// reversed from its linedef's A->B order flips which side is "front").
func rightSide(pos, a, b geom.Vec2, direction uint16) bool {
	pd := pos.Sub(a).PerpDot(b.Sub(a))
	return (pd > 0) != (direction != 0)
}

// frontBackSidedefs chooses (front, back) as (right, left) of the linedef
// if right is true, else (left, right). Linedef.Front is the "right" side
// by convention (see mapdata.Linedef).
func frontBackSidedefs(l mapdata.Linedef, right bool) (frontIdx int, frontHas bool, backIdx int, backHas bool) {
	if right {
		return l.Front, l.HasFront, l.Back, l.HasBack
	}
	return l.Back, l.HasBack, l.Front, l.HasFront
}

func maxF32(a, b float32) float32 {
	if a > b {
		return a
	}
	return b
}

func minF32(a, b float32) float32 {
	if a < b {
		return a
	}
	return b
}
