package bsp

import (
	"testing"

	"github.com/wadview/render/internal/geom"
	"github.com/wadview/render/mapdata"
)

func TestTraverserOneNodeRightSide(t *testing.T) {
	// Root splitter x=0,y=0,dx=1,dy=0; pos=(5,-3): view=(5,-3),
	// left = dy*view.x = 0, right = view.y*dx = -3; right<left, so the
	// right child (here tagged subsector 1) pops before the left (0).
	nodes := []mapdata.Node{
		{
			X: 0, Y: 0, DX: 1, DY: 0,
			Right: mapdata.NodeChild{IsSubsector: true, Index: 1},
			Left:  mapdata.NodeChild{IsSubsector: true, Index: 0},
		},
	}
	tr := New(nodes, geom.Vec2{X: 5, Y: -3})

	first, ok := tr.Next()
	if !ok || first != 1 {
		t.Fatalf("first = (%d, %v), want (1, true)", first, ok)
	}
	second, ok := tr.Next()
	if !ok || second != 0 {
		t.Fatalf("second = (%d, %v), want (0, true)", second, ok)
	}
	if _, ok := tr.Next(); ok {
		t.Fatalf("expected traversal to be exhausted")
	}
}

func TestTraverserLeftSideTieCountsAsLeft(t *testing.T) {
	// pos on the splitter line itself: right == left, which must count
	// as "left" (the near child is the left child).
	nodes := []mapdata.Node{
		{
			X: 0, Y: 0, DX: 1, DY: 0,
			Right: mapdata.NodeChild{IsSubsector: true, Index: 1},
			Left:  mapdata.NodeChild{IsSubsector: true, Index: 0},
		},
	}
	tr := New(nodes, geom.Vec2{X: 0, Y: 0})

	first, _ := tr.Next()
	if first != 0 {
		t.Fatalf("first = %d, want 0 (left, near on tie)", first)
	}
}

func TestTraverserVisitsEverySubsectorOnce(t *testing.T) {
	// Two-level tree: root splits into a subnode and a subsector; the
	// subnode splits into two more subsectors.
	nodes := []mapdata.Node{
		{ // index 0: child node
			X: 100, Y: 0, DX: 0, DY: 1,
			Right: mapdata.NodeChild{IsSubsector: true, Index: 10},
			Left:  mapdata.NodeChild{IsSubsector: true, Index: 20},
		},
		{ // index 1 (root): references node 0 and a leaf
			X: 0, Y: 0, DX: 1, DY: 0,
			Right: mapdata.NodeChild{IsSubsector: false, Index: 0},
			Left:  mapdata.NodeChild{IsSubsector: true, Index: 30},
		},
	}
	tr := New(nodes, geom.Vec2{X: 5, Y: 5})

	seen := map[int]bool{}
	for {
		idx, ok := tr.Next()
		if !ok {
			break
		}
		if seen[idx] {
			t.Fatalf("subsector %d visited twice", idx)
		}
		seen[idx] = true
	}
	for _, want := range []int{10, 20, 30} {
		if !seen[want] {
			t.Fatalf("subsector %d never visited", want)
		}
	}
}

func TestTraverserEmptyNodes(t *testing.T) {
	tr := New(nil, geom.Vec2{})
	if _, ok := tr.Next(); ok {
		t.Fatalf("expected empty traversal over no nodes")
	}
}
