// SPDX-License-Identifier: MIT

package gridwarp

import (
	"image"
	"image/color"
	"image/draw"

	"github.com/katalvlaran/vecmath/bounds"
	"github.com/katalvlaran/vecmath/linalg"
	"go.uber.org/zap"
	"golang.org/x/image/vector"
)

// RasterStats summarises one Rasterize call.
type RasterStats struct {
	Drawn      int // segments added to the path
	Degenerate int // zero-length segments, nothing to draw
	Skipped    int // segments with non-finite endpoints
	Clipped    int // segments entirely outside the image
}

// Render validates cfg, computes its Segments and draws them over the
// background. The returned image is cfg.Width x cfg.Height.
func Render(cfg Config) (*image.RGBA, error) {
	segs, err := Segments(cfg)
	if err != nil {
		return nil, err
	}
	bg, _ := ParseColor(cfg.Background)
	fg, _ := ParseColor(cfg.Stroke)

	img := image.NewRGBA(image.Rect(0, 0, cfg.Width, cfg.Height))
	draw.Draw(img, img.Bounds(), image.NewUniform(bg), image.Point{}, draw.Src)
	stats := Rasterize(img, segs, fg, cfg.StrokeWidth)

	log := Logger()
	log.Debug("gridwarp: rendered",
		zap.Int("width", cfg.Width),
		zap.Int("height", cfg.Height),
		zap.Int("segments", len(segs)),
		zap.Int("drawn", stats.Drawn),
		zap.Int("degenerate", stats.Degenerate),
		zap.Int("skipped", stats.Skipped),
		zap.Int("clipped", stats.Clipped),
	)
	if stats.Skipped > 0 {
		log.Warn("gridwarp: skipped non-finite segments", zap.Int("skipped", stats.Skipped))
	}

	return img, nil
}

// Rasterize strokes every segment onto dst as a quad of the given width,
// composited over the existing pixels in colour c.
//
// dst is expected to have its origin at (0, 0).
//
// Implementation:
//   - Stage 1: clip each finite, non-zero segment to dst grown by width, so
//     the rasteriser never walks rows far outside the image.
//   - Stage 2: offset both endpoints by ±width/2 along the left normal of
//     From→To and add the quad to one path.
//   - Stage 3: draw the accumulated path once with draw.Over.
//
// All quads share the same orientation, so overlaps saturate rather than
// cancel under the rasteriser's winding accumulation.
func Rasterize(dst *image.RGBA, segs []Segment, c color.Color, width float64) RasterStats {
	var stats RasterStats
	b := dst.Bounds()
	clip := bounds.Box2AFromEdges(-width, -width, float64(b.Dy())+width, float64(b.Dx())+width)
	z := vector.NewRasterizer(b.Dx(), b.Dy())
	z.DrawOp = draw.Over

	half := width / 2
	for _, s := range segs {
		if !s.IsFinite() {
			stats.Skipped++
			continue
		}
		d := s.To.Subtract(s.From)
		if d.IsZero() {
			stats.Degenerate++
			continue
		}
		in, ok := s.Clip(clip)
		if !ok {
			stats.Clipped++
			continue
		}
		n := linalg.Vec2{X: -d.Y, Y: d.X}.Unit().Scale(half)

		a := in.From.Add(n)
		z.MoveTo(float32(a.X), float32(a.Y))
		a = in.To.Add(n)
		z.LineTo(float32(a.X), float32(a.Y))
		a = in.To.Subtract(n)
		z.LineTo(float32(a.X), float32(a.Y))
		a = in.From.Subtract(n)
		z.LineTo(float32(a.X), float32(a.Y))
		z.ClosePath()
		stats.Drawn++
	}
	if stats.Drawn > 0 {
		z.Draw(dst, b, image.NewUniform(c), image.Point{})
	}

	return stats
}
