package raster

import "github.com/wadview/render/internal/geom"

// projectedQuad holds the screen-space projection of a wall/portal quad
// plus the data needed for perspective-correct interpolation across its
// columns.
type projectedQuad struct {
	fa, ca, fb, cb screenPt // floor/ceil corners at a and b, projected
	za, zb         float32  // post-clip camera-space depths
	ua, ub         float32  // texture-u at a and b, after near-clip transport
	xStart, xEnd   int32    // rounded screen-column span [xStart, xEnd)
}

type screenPt struct {
	X, Y float32
}

// clipAndProject clips a and b against the near plane, then projects the
// resulting quad's four corners to screen space. An endpoint at or behind
// ClipNear is pulled up to it by linear interpolation along b-a, with its
// texture-u transported proportionally so the texture doesn't jump at the
// clip boundary. It returns ok=false when both endpoints are at or behind
// the near plane, meaning the wall is entirely invisible.
func clipAndProject(floor, ceil float32, a, b geom.CamPoint) (projectedQuad, bool) {
	if a.Z <= ClipNear && b.Z <= ClipNear {
		return projectedQuad{}, false
	}

	ua := float32(0)
	ub := ua + geom.Distance(a, b)

	if a.Z < ClipNear {
		dx := b.X - a.X
		dz := b.Z - a.Z
		u := (ClipNear - a.Z) / dz
		a.X += u * dx
		a.Z = ClipNear
		ua = ua + (ub-ua)*u
	}

	if b.Z < ClipNear {
		dx := a.X - b.X
		dz := a.Z - b.Z
		u := (ClipNear - b.Z) / dz
		b.X += u * dx
		b.Z = ClipNear
		ub = ub + (ua-ub)*u
	}

	za, zb := a.Z, b.Z

	faX, faY := project(a.X, floor, a.Z)
	caX, caY := project(a.X, ceil, a.Z)
	fbX, fbY := project(b.X, floor, b.Z)
	cbX, cbY := project(b.X, ceil, b.Z)

	q := projectedQuad{
		fa: screenPt{faX, faY}, ca: screenPt{caX, caY},
		fb: screenPt{fbX, fbY}, cb: screenPt{cbX, cbY},
		za: za, zb: zb, ua: ua, ub: ub,
		xStart: roundToInt32(faX), xEnd: roundToInt32(fbX),
	}
	return q, true
}

// perspectiveU computes the perspective-correct texture abscissa at
// parameter t along a column span. Interpolating 1/z rather than u
// directly is what keeps texture mapping perspective-correct instead of
// affine: a naive lerp of u would warp textures on walls seen at an angle.
func perspectiveU(ua, ub, za, zb, t float32) float32 {
	num := (1-t)*ua/za + t*ub/zb
	den := (1-t)/za + t/zb
	return num / den
}
