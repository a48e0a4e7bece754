// Package gridwarp renders how a 2x2 matrix distorts a regular grid.
//
// A grid of CellSize-spaced sample points covers the canvas. Every sample
// point (x, y) contributes two segments, from M·(x, y−cell) and from
// M·(x−cell, y) to M·(x, y), so the picture shows the image of the grid
// under the linear map M. Identity draws the plain grid; a shear leans it;
// a singular matrix collapses it onto a line or a point.
//
// ⚙️ Pipeline:
//
//	cfg, _ := gridwarp.LoadFile("shear.yaml") // or gridwarp.DefaultConfig()
//	img, _ := gridwarp.Render(cfg)            // Segments → rasterise
//	_ = gridwarp.Encode(w, img, gridwarp.FormatPNG)
//
// Segments entirely off-canvas are culled with bounds.Box2A. Segments with
// non-finite endpoints are skipped while rasterising and reported through
// the package logger (silent by default, see SetLogger).
package gridwarp
