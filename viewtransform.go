package render

import "github.com/wadview/render/internal/geom"

// viewTransform carries a frame's camera pose (world position and facing)
// and projects world-plane points into camera space.
//
// The matrix form is M = [[dy, dx], [-dx, dy]] (column-major), so that
// v_cam = M * (v_world - pos). This intentionally routes the world axis
// conventionally called "y" onto the camera-space depth axis: a camera
// facing straight down +Y sees depth increase as Y increases.
type viewTransform struct {
	pos        geom.Vec2
	dirX, dirY float32
}

// newViewTransform builds a viewTransform for a camera at pos facing dir.
// dir need not be normalized; an unnormalized dir only rescales the
// projected camera-space coordinates uniformly. Callers should still pass
// a unit-length facing vector so screen-space output matches the fixed
// projection constants.
func newViewTransform(pos, dir geom.Vec2) viewTransform {
	return viewTransform{pos: pos, dirX: dir.X, dirY: dir.Y}
}

// ToCamera transforms a world-plane point into camera space.
func (vt viewTransform) ToCamera(p geom.Vec2) geom.CamPoint {
	rel := p.Sub(vt.pos)
	return geom.CamPoint{
		X: vt.dirY*rel.X - vt.dirX*rel.Y,
		Z: vt.dirX*rel.X + vt.dirY*rel.Y,
	}
}
