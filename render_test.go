package render

import (
	"testing"

	"github.com/wadview/render/internal/raster"
	"github.com/wadview/render/mapdata"
	"github.com/wadview/render/texcat"
)

// squareRoom builds a minimal 200x200 convex room centered on the origin,
// with one solid-wall sidedef per edge, wound clockwise so each edge's
// Front sidedef is the interior-facing one.
func squareRoom(wallTex texcat.TextureID) *mapdata.Map {
	verts := []mapdata.Vertex{
		{X: 100, Y: 100},   // 0: NE
		{X: 100, Y: -100},  // 1: SE
		{X: -100, Y: -100}, // 2: SW
		{X: -100, Y: 100},  // 3: NW
	}
	mkSide := func(n int) mapdata.Sidedef {
		return mapdata.Sidedef{Middle: wallTex, Sector: 0}
	}
	lines := []mapdata.Linedef{
		{Start: 0, End: 1, Front: 0, HasFront: true},
		{Start: 1, End: 2, Front: 1, HasFront: true},
		{Start: 2, End: 3, Front: 2, HasFront: true},
		{Start: 3, End: 0, Front: 3, HasFront: true},
	}
	sides := []mapdata.Sidedef{mkSide(0), mkSide(1), mkSide(2), mkSide(3)}
	segs := []mapdata.Seg{
		{Linedef: 0, Start: 0, End: 1},
		{Linedef: 1, Start: 1, End: 2},
		{Linedef: 2, Start: 2, End: 3},
		{Linedef: 3, Start: 3, End: 0},
	}
	return &mapdata.Map{
		Vertexes:   verts,
		Linedefs:   lines,
		Sidedefs:   sides,
		Sectors:    []mapdata.Sector{{FloorHeight: 0, CeilHeight: 80}},
		Segs:       segs,
		Subsectors: []mapdata.Subsector{{FirstSeg: 0, SegCount: 4}},
		Nodes: []mapdata.Node{
			{X: 0, Y: 0, DX: 1, DY: 0,
				Left:  mapdata.NodeChild{IsSubsector: true, Index: 0},
				Right: mapdata.NodeChild{IsSubsector: true, Index: 0}},
		},
		Things:  []mapdata.Thing{{X: 0, Y: 0, Angle: 90, Type: mapdata.SpawnThingType}},
		Palette: mapdata.Palette{1: 0xAA},
	}
}

func TestRenderFillsFramebufferAndPalette(t *testing.T) {
	wallTex := texcat.NewTextureID("WALL1")
	m := squareRoom(wallTex)

	cat := texcat.NewInMemoryCatalog()
	cat.AddPatch("P1", texcat.Patch{
		Width: 1, Height: 80,
		Columns: [][]texcat.PixelSpan{
			{{Top: 0, Pixels: repeatByte(5, 80)}},
		},
	})
	cat.AddTexture(wallTex, texcat.TextureDef{
		Width: 64, Height: 80,
		Patches: []texcat.PatchPlacement{{PatchName: "P1", OriginX: 0, OriginY: 0}},
	})

	r, err := NewRenderer(m, cat)
	if err != nil {
		t.Fatalf("NewRenderer: %v", err)
	}

	fb := make([]byte, raster.ScreenWidth*raster.ScreenHeight)
	pal := make([]byte, 768)

	// cx=0, cy=0 -> pos=(0,0); dx=-1, dy=0 -> dir=(0,1), facing the north wall.
	if err := r.Render(fb, pal, 0, 0, -1, 0); err != nil {
		t.Fatalf("Render: %v", err)
	}

	if pal[1] != 0xAA {
		t.Errorf("palette not copied: pal[1] = %#x, want 0xAA", pal[1])
	}

	sawWallColor := false
	for _, v := range fb {
		if v == 5 {
			sawWallColor = true
			break
		}
	}
	if !sawWallColor {
		t.Errorf("expected the north wall's texture color (5) to appear in the framebuffer")
	}
}

func TestRenderRejectsBadBufferSizes(t *testing.T) {
	wallTex := texcat.NewTextureID("WALL1")
	m := squareRoom(wallTex)
	cat := texcat.NewInMemoryCatalog()

	r, err := NewRenderer(m, cat)
	if err != nil {
		t.Fatalf("NewRenderer: %v", err)
	}

	goodFB := make([]byte, raster.ScreenWidth*raster.ScreenHeight)
	goodPal := make([]byte, 768)

	if err := r.Render(make([]byte, 10), goodPal, 0, 0, -1, 0); err != ErrBadFramebuffer {
		t.Errorf("bad fb: err = %v, want ErrBadFramebuffer", err)
	}
	if err := r.Render(goodFB, make([]byte, 10), 0, 0, -1, 0); err != ErrBadPalette {
		t.Errorf("bad palette: err = %v, want ErrBadPalette", err)
	}
}

func TestNewRendererRejectsMalformedNode(t *testing.T) {
	wallTex := texcat.NewTextureID("WALL1")
	m := squareRoom(wallTex)
	m.Nodes[0].Right.Index = 99 // out of range: only 1 subsector exists

	cat := texcat.NewInMemoryCatalog()
	_, err := NewRenderer(m, cat)
	if err == nil {
		t.Fatalf("expected an error for an out-of-range node child")
	}
	if _, ok := err.(*MalformedNodeError); !ok {
		t.Errorf("err = %T, want *MalformedNodeError", err)
	}
}

func TestSpawnPointResolvesFromThings(t *testing.T) {
	wallTex := texcat.NewTextureID("WALL1")
	m := squareRoom(wallTex)

	x, y, angle, ok := m.SpawnPoint()
	if !ok {
		t.Fatalf("expected a spawn point")
	}
	if x != 0 || y != 0 || angle != 90 {
		t.Errorf("SpawnPoint() = (%v, %v, %v), want (0, 0, 90)", x, y, angle)
	}
}

func TestSpawnCameraFacesSpawnAngle(t *testing.T) {
	wallTex := texcat.NewTextureID("WALL1")
	m := squareRoom(wallTex)
	m.Things[0] = mapdata.Thing{X: 10, Y: 20, Angle: 90, Type: mapdata.SpawnThingType}

	cx, cy, dx, dy, err := SpawnCamera(m)
	if err != nil {
		t.Fatalf("SpawnCamera: %v", err)
	}

	// An angle of 90 degrees faces world +Y. Render maps dir = (dy, -dx), so
	// a camera at (-10, 20) facing straight down +Y is dx=-1, dy=0.
	if cx != -10 || cy != 20 {
		t.Errorf("cx, cy = %v, %v, want -10, 20", cx, cy)
	}
	if dx < -1.001 || dx > -0.999 || dy < -0.001 || dy > 0.001 {
		t.Errorf("dx, dy = %v, %v, want ~-1, ~0", dx, dy)
	}
}

func TestSpawnCameraNoSpawnThing(t *testing.T) {
	wallTex := texcat.NewTextureID("WALL1")
	m := squareRoom(wallTex)
	m.Things = nil

	if _, _, _, _, err := SpawnCamera(m); err != ErrNoSpawnThing {
		t.Errorf("err = %v, want ErrNoSpawnThing", err)
	}
}

func repeatByte(v byte, n int) []byte {
	b := make([]byte, n)
	for i := range b {
		b[i] = v
	}
	return b
}
