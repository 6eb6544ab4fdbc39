// Package render implements a CPU software renderer for BSP-based 2.5-D
// level maps, producing a single 320x200 paletted frame per call.
//
// # Overview
//
// The renderer walks a pre-built binary space partition front-to-back from
// the camera, projects wall and portal quads with perspective-correct
// texture mapping, and maintains horizontal (column) and vertical
// (per-column) openness buffers to stop work once the screen is fully
// painted. It draws no floors, ceilings, sprites, or lighting: callers get
// an indexed framebuffer and a palette, nothing else.
//
// # Quick Start
//
//	r, err := render.NewRenderer(m, catalog)
//	if err != nil {
//		log.Fatal(err)
//	}
//	fb := make([]byte, 320*200)
//	pal := make([]byte, 768)
//	err = r.Render(fb, pal, cx, cy, dx, dy)
//
// # Architecture
//
// The library is organized into:
//   - Public API: Renderer, Option (this package)
//   - External contracts: mapdata (parsed map), texcat (texture/patch catalog)
//   - Internal: geom (vectors and ranges), bsp (traversal), texture
//     (composition and caching), raster (the wall/portal rasterizer)
//
// # Coordinate System
//
// World space uses standard map-plane coordinates. Camera space places the
// forward axis along depth (the second coordinate); screen space has origin
// (0,0) at the top-left with 320x200 resolution and a fixed 90 degree field
// of view.
//
// # Performance
//
// A frame is O(columns) once the screen is covered: solid walls remove
// columns from further consideration, and the BSP walk exits early once
// [Renderer.Render] has nothing left to paint.
package render
