// Package mapdata defines the parsed-map contract the renderer consumes.
// Building these values from a WAD's binary lumps (vertexes, linedefs,
// sidedefs, sectors, segs, subsectors, nodes, things) is out of scope here;
// this package only names the shapes the renderer's BSP walk and rasterizer
// operate on.
package mapdata

import "github.com/wadview/render/texcat"

// SpawnThingType is the Thing.Type value marking a map's player start.
const SpawnThingType = 1

// Vertex is an integer 2-D point in the map plane.
type Vertex struct {
	X, Y int32
}

// Linedef is a two-vertex line with up to two sidedefs: Front is the side
// in the direction of travel from Start to End (the "right" side), Back is
// the opposite ("left") side. Either may be absent for a one-sided wall.
type Linedef struct {
	Start, End         int
	Front, Back        int
	HasFront, HasBack bool
}

// Sidedef names up to three textures for one side of a linedef and the
// sector it faces into. An all-zero TextureID means the texture is absent.
type Sidedef struct {
	Upper, Middle, Lower texcat.TextureID
	Sector               int
}

// Sector is a flat-bottomed, flat-topped region with integer floor and
// ceiling heights, in world units.
type Sector struct {
	FloorHeight, CeilHeight int32
}

// Seg is one straight sub-segment of a linedef, as produced by the BSP
// build step. Direction is 0 if the seg runs the same way as its linedef
// (Start->End matches the linedef's Start->End), nonzero if reversed.
type Seg struct {
	Linedef      int
	Start, End   int
	Direction    uint16
}

// Subsector is a convex region of the map plane: a contiguous slice
// [FirstSeg, FirstSeg+SegCount) over the map's Segs.
type Subsector struct {
	FirstSeg, SegCount int
}

// NodeChild is a tagged union over a BSP node's children: either another
// node (Subnode) or a leaf subsector.
type NodeChild struct {
	IsSubsector bool
	Index       int
}

// Node is a BSP internal node: a splitter line through (X, Y) with
// direction (DX, DY), and two children. Right is the child on the side the
// splitter's perpendicular test calls "right"; Left is the other side. The
// root of the tree is the last node in a map's Nodes slice.
type Node struct {
	X, Y, DX, DY int32
	Right, Left  NodeChild
}

// Thing is a placed map object: position, facing angle in whole degrees
// (0..360), and a type id. The player start is the Thing with Type ==
// SpawnThingType.
type Thing struct {
	X, Y  int32
	Angle int
	Type  int
}

// Palette is 256 RGB triplets, used as-is without gamma correction or
// remapping.
type Palette [768]byte

// Map is the full parsed level: immutable for the lifetime of a Renderer.
type Map struct {
	Vertexes   []Vertex
	Linedefs   []Linedef
	Sidedefs   []Sidedef
	Sectors    []Sector
	Segs       []Seg
	Subsectors []Subsector
	Nodes      []Node
	Things     []Thing
	Palette    Palette
}

// SpawnPoint returns the position and facing of the map's player-start
// Thing, if any. This is a convenience for callers seeding an initial
// camera pose; it has no bearing on the render path itself.
func (m *Map) SpawnPoint() (x, y float32, angleDeg float32, ok bool) {
	for _, t := range m.Things {
		if t.Type == SpawnThingType {
			return float32(t.X), float32(t.Y), float32(t.Angle), true
		}
	}
	return 0, 0, 0, false
}
