// Command wadrenderdemo renders one frame of a small synthetic map through
// the render package and writes it out as a PNG.
package main

import (
	"flag"
	"image"
	"image/color"
	"image/png"
	"log"
	"os"

	"golang.org/x/image/draw"

	"github.com/wadview/render"
	"github.com/wadview/render/internal/raster"
	"github.com/wadview/render/mapdata"
	"github.com/wadview/render/texcat"
)

func main() {
	m, cat := buildDemoScene()
	spawnCX, spawnCY, spawnDX, spawnDY, err := render.SpawnCamera(m)
	if err != nil {
		log.Fatalf("SpawnCamera: %v", err)
	}

	var (
		output     = flag.String("output", "demo.png", "output PNG path")
		scale      = flag.Int("scale", 2, "integer upscale factor (nearest-neighbor)")
		configPath = flag.String("config", "", "optional TOML camera-preset file")
		cx         = flag.Float64("cx", float64(spawnCX), "camera X")
		cy         = flag.Float64("cy", float64(spawnCY), "camera Y")
		dx         = flag.Float64("dx", float64(spawnDX), "camera facing X")
		dy         = flag.Float64("dy", float64(spawnDY), "camera facing Y")
	)
	flag.Parse()

	if preset := readCameraPreset(*configPath); preset != nil {
		*cx, *cy, *dx, *dy = preset.CX, preset.CY, preset.DX, preset.DY
	}

	r, err := render.NewRenderer(m, cat)
	if err != nil {
		log.Fatalf("NewRenderer: %v", err)
	}

	fb := make([]byte, raster.ScreenWidth*raster.ScreenHeight)
	pal := make([]byte, 768)
	if err := r.Render(fb, pal, float32(*cx), float32(*cy), float32(*dx), float32(*dy)); err != nil {
		log.Fatalf("Render: %v", err)
	}

	img := expandIndexed(fb, pal)
	if *scale > 1 {
		img = upscale(img, *scale)
	}

	f, err := os.Create(*output)
	if err != nil {
		log.Fatalf("creating %q: %v", *output, err)
	}
	defer f.Close()

	if err := png.Encode(f, img); err != nil {
		log.Fatalf("encoding PNG: %v", err)
	}
	log.Printf("wrote %s (%dx%d)", *output, img.Bounds().Dx(), img.Bounds().Dy())
}

// expandIndexed turns the renderer's paletted framebuffer into an RGBA
// image: each framebuffer byte is a palette index, looked up as 3 RGB
// bytes and given an opaque alpha. The renderer itself never does this
// expansion; it only ever writes indices.
func expandIndexed(fb, pal []byte) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, raster.ScreenWidth, raster.ScreenHeight))
	for y := 0; y < raster.ScreenHeight; y++ {
		for x := 0; x < raster.ScreenWidth; x++ {
			idx := fb[y*raster.ScreenWidth+x]
			p := int(idx) * 3
			img.SetRGBA(x, y, color.RGBA{R: pal[p], G: pal[p+1], B: pal[p+2], A: 0xFF})
		}
	}
	return img
}

// upscale nearest-neighbor scales img by factor, keeping the renderer's
// blocky palette look intact rather than blurring it.
func upscale(img *image.RGBA, factor int) *image.RGBA {
	b := img.Bounds()
	dst := image.NewRGBA(image.Rect(0, 0, b.Dx()*factor, b.Dy()*factor))
	draw.NearestNeighbor.Scale(dst, dst.Bounds(), img, b, draw.Over, nil)
	return dst
}

// buildDemoScene synthesizes a tiny single-room map and a matching texture
// catalog, standing in for a parsed WAD (out of scope for this module).
func buildDemoScene() (*mapdata.Map, texcat.Catalog) {
	wallTex := texcat.NewTextureID("STARTAN3")

	verts := []mapdata.Vertex{
		{X: 200, Y: 200},
		{X: 200, Y: -200},
		{X: -200, Y: -200},
		{X: -200, Y: 200},
	}
	side := func() mapdata.Sidedef { return mapdata.Sidedef{Middle: wallTex, Sector: 0} }
	m := &mapdata.Map{
		Vertexes: verts,
		Linedefs: []mapdata.Linedef{
			{Start: 0, End: 1, Front: 0, HasFront: true},
			{Start: 1, End: 2, Front: 1, HasFront: true},
			{Start: 2, End: 3, Front: 2, HasFront: true},
			{Start: 3, End: 0, Front: 3, HasFront: true},
		},
		Sidedefs: []mapdata.Sidedef{side(), side(), side(), side()},
		Sectors:  []mapdata.Sector{{FloorHeight: 0, CeilHeight: 96}},
		Segs: []mapdata.Seg{
			{Linedef: 0, Start: 0, End: 1},
			{Linedef: 1, Start: 1, End: 2},
			{Linedef: 2, Start: 2, End: 3},
			{Linedef: 3, Start: 3, End: 0},
		},
		Subsectors: []mapdata.Subsector{{FirstSeg: 0, SegCount: 4}},
		Nodes: []mapdata.Node{
			{X: 0, Y: 0, DX: 1, DY: 0,
				Left:  mapdata.NodeChild{IsSubsector: true, Index: 0},
				Right: mapdata.NodeChild{IsSubsector: true, Index: 0}},
		},
		Things: []mapdata.Thing{{X: 0, Y: 0, Angle: 90, Type: mapdata.SpawnThingType}},
	}
	for i := range m.Palette {
		m.Palette[i] = byte(i % 256)
	}

	cat := texcat.NewInMemoryCatalog()
	cat.AddPatch("BRICKPAT", texcat.Patch{
		Width: 8, Height: 96,
		Columns: stripedColumns(8, 96),
	})
	cat.AddTexture(wallTex, texcat.TextureDef{
		Width: 128, Height: 96,
		Patches: []texcat.PatchPlacement{
			{PatchName: "BRICKPAT", OriginX: 0, OriginY: 0},
			{PatchName: "BRICKPAT", OriginX: 64, OriginY: 0},
		},
	})
	return m, cat
}

// stripedColumns builds a simple vertically-striped patch, alternating two
// palette indices every other column so the demo's wall texture isn't a
// flat, undifferentiated block.
func stripedColumns(width, height int) [][]texcat.PixelSpan {
	cols := make([][]texcat.PixelSpan, width)
	for x := 0; x < width; x++ {
		v := byte(40)
		if x%2 == 0 {
			v = byte(48)
		}
		pixels := make([]byte, height)
		for i := range pixels {
			pixels[i] = v
		}
		cols[x] = []texcat.PixelSpan{{Top: 0, Pixels: pixels}}
	}
	return cols
}
