// SPDX-License-Identifier: MIT

package gridwarp

import (
	"math"

	"github.com/katalvlaran/vecmath/bounds"
	"github.com/katalvlaran/vecmath/linalg"
)

// Segment is one transformed grid edge.
type Segment struct {
	From, To linalg.Vec2
}

// IsFinite reports whether both endpoints have finite coordinates.
func (s Segment) IsFinite() bool {
	for _, c := range [...]float64{s.From.X, s.From.Y, s.To.X, s.To.Y} {
		if math.IsNaN(c) || math.IsInf(c, 0) {
			return false
		}
	}

	return true
}

// Length is the Euclidean length of the segment.
func (s Segment) Length() float64 { return s.To.Subtract(s.From).Magnitude() }

// Bounds returns the axis-aligned box around the segment grown by pad on
// every side.
func (s Segment) Bounds(pad float64) bounds.Box2A {
	return bounds.Box2AFromEdges(
		math.Min(s.From.Y, s.To.Y)-pad,
		math.Min(s.From.X, s.To.X)-pad,
		math.Max(s.From.Y, s.To.Y)+pad,
		math.Max(s.From.X, s.To.X)+pad,
	)
}

// Clip trims s to the part inside box (Liang–Barsky). ok is false when no
// part of s lies inside. The direction of s is preserved.
func (s Segment) Clip(box bounds.Box2A) (clipped Segment, ok bool) {
	d := s.To.Subtract(s.From)
	t0, t1 := 0.0, 1.0
	edges := [...]struct{ p, q float64 }{
		{-d.X, s.From.X - box.Left()},
		{d.X, box.Right() - s.From.X},
		{-d.Y, s.From.Y - box.Top()},
		{d.Y, box.Bottom() - s.From.Y},
	}
	for _, e := range edges {
		if e.p == 0 {
			if e.q < 0 {
				return Segment{}, false
			}
			continue
		}
		r := e.q / e.p
		if e.p < 0 {
			if r > t1 {
				return Segment{}, false
			}
			t0 = math.Max(t0, r)
		} else {
			if r < t0 {
				return Segment{}, false
			}
			t1 = math.Min(t1, r)
		}
	}

	return Segment{From: s.From.Add(d.Scale(t0)), To: s.From.Add(d.Scale(t1))}, true
}

// Segments validates cfg and returns the image of the grid under
// cfg.Transform().
//
// Implementation:
//   - Stage 1: validate, build M and the canvas box (top-left at the origin).
//   - Stage 2: rows then columns, stepping by CellSize over [0, Height) and
//     [0, Width); for each sample point map (x, y), (x, y−cell) and
//     (x−cell, y) in place with Vec2.MultiplyMut.
//   - Stage 3: keep the vertical then the horizontal segment unless its
//     bounds, padded by half the stroke, miss the canvas.
//
// Complexity:
//   - Time O(W·H / cell²), Space O(W·H / cell²).
func Segments(cfg Config) ([]Segment, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	m, err := cfg.Transform()
	if err != nil {
		return nil, err
	}

	canvas := bounds.Box2AFromTopLeftOrigin(float64(cfg.Width), float64(cfg.Height))
	pad := cfg.StrokeWidth / 2
	cell := float64(cfg.CellSize)

	cols := (cfg.Width + cfg.CellSize - 1) / cfg.CellSize
	rows := (cfg.Height + cfg.CellSize - 1) / cfg.CellSize
	out := make([]Segment, 0, 2*rows*cols)

	var above, left, v linalg.Vec2
	for y := 0; y < cfg.Height; y += cfg.CellSize {
		for x := 0; x < cfg.Width; x += cfg.CellSize {
			fx, fy := float64(x), float64(y)
			above.Set(fx, fy-cell).MultiplyMut(m)
			left.Set(fx-cell, fy).MultiplyMut(m)
			v.Set(fx, fy).MultiplyMut(m)

			for _, s := range [...]Segment{{From: above, To: v}, {From: left, To: v}} {
				if s.Bounds(pad).Intersects(canvas) {
					out = append(out, s)
				}
			}
		}
	}

	return out, nil
}
