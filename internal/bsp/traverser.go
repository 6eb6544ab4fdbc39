// Package bsp implements the front-to-back BSP traversal that yields
// subsectors nearest-first from a camera position.
package bsp

import (
	"github.com/wadview/render/internal/geom"
	"github.com/wadview/render/mapdata"
)

// Traverser is a lazy, pull-based, front-to-back walk of a BSP tree from a
// fixed 2-D point. It is not restartable: create a new one per frame.
type Traverser struct {
	nodes []mapdata.Node
	pos   geom.Vec2
	stack []mapdata.NodeChild
}

// New creates a Traverser rooted at the last node in nodes (the BSP
// convention: the root is always the final entry), querying from pos. An
// empty nodes slice yields a Traverser whose Next always reports done.
func New(nodes []mapdata.Node, pos geom.Vec2) *Traverser {
	t := &Traverser{nodes: nodes, pos: pos}
	if len(nodes) > 0 {
		t.stack = append(t.stack, mapdata.NodeChild{IsSubsector: false, Index: len(nodes) - 1})
	}
	return t
}

// Next pops the next subsector index in front-to-back order, descending
// through internal nodes as needed. It returns (0, false) once every
// reachable subsector has been yielded.
func (t *Traverser) Next() (int, bool) {
	for len(t.stack) > 0 {
		c := t.stack[len(t.stack)-1]
		t.stack = t.stack[:len(t.stack)-1]

		if c.IsSubsector {
			return c.Index, true
		}

		n := t.nodes[c.Index]
		view := t.pos.Sub(geom.Vec2{X: float32(n.X), Y: float32(n.Y)})
		left := float32(n.DY) * view.X
		right := view.Y * float32(n.DX)

		if right < left {
			// Query point is on the node's right side: right child is
			// near. Push far (left) first so near (right) pops first.
			t.stack = append(t.stack, n.Left, n.Right)
		} else {
			// Left side (ties count as left): left child is near.
			t.stack = append(t.stack, n.Right, n.Left)
		}
	}
	return 0, false
}
