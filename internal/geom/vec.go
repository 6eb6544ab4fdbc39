// Package geom provides the integer range and vector primitives the BSP
// traverser and rasterizer share. Vectors use float32 throughout: the
// renderer projects at most 320x200 pixels per frame, and float32 trig and
// sqrt (via chewxy/math32) avoid the repeated float64<->float32 round-trips
// the standard math package would otherwise force on every column.
package geom

import "github.com/chewxy/math32"

// Vec2 is a 2-D displacement or position in the map plane (world space) or
// in a generic 2-D direction (e.g. camera facing).
type Vec2 struct {
	X, Y float32
}

// Add returns the sum of two vectors.
func (v Vec2) Add(w Vec2) Vec2 {
	return Vec2{X: v.X + w.X, Y: v.Y + w.Y}
}

// Sub returns the difference of two vectors.
func (v Vec2) Sub(w Vec2) Vec2 {
	return Vec2{X: v.X - w.X, Y: v.Y - w.Y}
}

// Dot returns the dot product of two vectors.
func (v Vec2) Dot(w Vec2) float32 {
	return v.X*w.X + v.Y*w.Y
}

// PerpDot returns the 2-D perpendicular dot product
// perp_dot(v, w) = v.X*w.Y - v.Y*w.X, the z-component of the 3-D cross
// product with z=0. Its sign tells which side of v the vector w falls on.
func (v Vec2) PerpDot(w Vec2) float32 {
	return v.X*w.Y - v.Y*w.X
}

// Length returns the magnitude of the vector.
func (v Vec2) Length() float32 {
	return math32.Sqrt(v.Dot(v))
}

// CamPoint is a point in 2-D camera space: X is the horizontal axis, Z is
// depth (distance along the camera's forward axis). Kept distinct from
// Vec2 so wall/portal code never confuses a world-plane point with an
// already-transformed camera-space one.
type CamPoint struct {
	X, Z float32
}

// Distance returns the magnitude of the displacement between two camera
// space points.
func Distance(a, b CamPoint) float32 {
	dx := b.X - a.X
	dz := b.Z - a.Z
	return math32.Sqrt(dx*dx + dz*dz)
}
