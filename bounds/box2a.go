// SPDX-License-Identifier: MIT

package bounds

import (
	"math"

	"github.com/katalvlaran/vecmath/linalg"
)

// Box2A is an axis-aligned 2D box anchored at Center, with the origin of the
// coordinate system in the top left (y grows downward).
//
// The zero value is a degenerate box at the origin.
type Box2A struct {
	Center linalg.Point2
	Width  float64
	Height float64
}

// NewBox2A builds a box from its center and dimensions.
func NewBox2A(center linalg.Point2, width, height float64) Box2A {
	return Box2A{Center: center, Width: width, Height: height}
}

// Box2AFromTopLeft builds a box whose top-left corner is topLeft.
func Box2AFromTopLeft(topLeft linalg.Point2, width, height float64) Box2A {
	return NewBox2A(
		linalg.Point2{X: topLeft.X + width/2, Y: topLeft.Y + height/2},
		width,
		height,
	)
}

// Box2AFromCenterOrigin builds a box centered on the origin.
func Box2AFromCenterOrigin(width, height float64) Box2A {
	return NewBox2A(linalg.Point2{}, width, height)
}

// Box2AFromTopLeftOrigin builds a box whose top-left corner is the origin.
func Box2AFromTopLeftOrigin(width, height float64) Box2A {
	return Box2AFromTopLeft(linalg.Point2{}, width, height)
}

// Box2AFromEdges builds a box from its four edge coordinates.
// Width is right − left and Height is bottom − top; inverted edges give
// negative dimensions and are not normalised.
func Box2AFromEdges(top, left, bottom, right float64) Box2A {
	return Box2AFromTopLeft(linalg.Point2{X: left, Y: top}, right-left, bottom-top)
}

// AspectRatio is Width / Height.
func (b Box2A) AspectRatio() float64 { return b.Width / b.Height }

// Left is the smallest x of the box.
func (b Box2A) Left() float64 { return b.Center.X - b.Width/2 }

// Right is the largest x of the box.
func (b Box2A) Right() float64 { return b.Center.X + b.Width/2 }

// Top is the smallest y of the box.
func (b Box2A) Top() float64 { return b.Center.Y - b.Height/2 }

// Bottom is the largest y of the box.
func (b Box2A) Bottom() float64 { return b.Center.Y + b.Height/2 }

// TopLeft is the corner at (Left, Top).
func (b Box2A) TopLeft() linalg.Point2 { return linalg.Point2{X: b.Left(), Y: b.Top()} }

// TopRight is the corner at (Right, Top).
func (b Box2A) TopRight() linalg.Point2 { return linalg.Point2{X: b.Right(), Y: b.Top()} }

// BottomLeft is the corner at (Left, Bottom).
func (b Box2A) BottomLeft() linalg.Point2 { return linalg.Point2{X: b.Left(), Y: b.Bottom()} }

// BottomRight is the corner at (Right, Bottom).
func (b Box2A) BottomRight() linalg.Point2 { return linalg.Point2{X: b.Right(), Y: b.Bottom()} }

// Components returns [center.x, center.y, width, height].
func (b Box2A) Components() []float64 {
	return []float64{b.Center.X, b.Center.Y, b.Width, b.Height}
}

// Contains reports whether p lies inside b or on its edges.
func (b Box2A) Contains(p linalg.Point2) bool {
	return p.X >= b.Left() && p.X <= b.Right() && p.Y >= b.Top() && p.Y <= b.Bottom()
}

// IsFullyLeftOf reports whether b ends at or before other begins on x.
func (b Box2A) IsFullyLeftOf(other Box2A) bool { return b.Right() <= other.Left() }

// IsFullyRightOf reports whether b begins at or after other ends on x.
func (b Box2A) IsFullyRightOf(other Box2A) bool { return b.Left() >= other.Right() }

// IsFullyAbove reports whether b ends at or before other begins on y.
func (b Box2A) IsFullyAbove(other Box2A) bool { return b.Bottom() <= other.Top() }

// IsFullyBelow reports whether b begins at or after other ends on y.
func (b Box2A) IsFullyBelow(other Box2A) bool { return b.Top() >= other.Bottom() }

// Intersects reports whether b and other overlap with a non-zero area.
// Boxes sharing only an edge or a corner are separated.
func (b Box2A) Intersects(other Box2A) bool {
	return !(b.IsFullyLeftOf(other) || b.IsFullyRightOf(other) ||
		b.IsFullyAbove(other) || b.IsFullyBelow(other))
}

// Intersection returns the overlap of b and other.
// ok is false when the boxes do not intersect; the returned box is then the
// zero value.
func (b Box2A) Intersection(other Box2A) (overlap Box2A, ok bool) {
	if !b.Intersects(other) {
		return Box2A{}, false
	}

	return Box2AFromEdges(
		math.Max(b.Top(), other.Top()),
		math.Max(b.Left(), other.Left()),
		math.Min(b.Bottom(), other.Bottom()),
		math.Min(b.Right(), other.Right()),
	), true
}

// Translate returns b moved by delta.
func (b Box2A) Translate(delta linalg.Vec2) Box2A {
	return NewBox2A(b.Center.Add(delta), b.Width, b.Height)
}

// TranslateMut moves b by delta in place and returns b.
func (b *Box2A) TranslateMut(delta linalg.Vec2) *Box2A {
	b.Center.AddMut(delta)

	return b
}

// ScaleIndependent returns b with Width scaled by xScale and Height by
// yScale, keeping the center.
func (b Box2A) ScaleIndependent(xScale, yScale float64) Box2A {
	return NewBox2A(b.Center, b.Width*xScale, b.Height*yScale)
}

// ScaleIndependentMut is the in-place ScaleIndependent.
func (b *Box2A) ScaleIndependentMut(xScale, yScale float64) *Box2A {
	b.Width *= xScale
	b.Height *= yScale

	return b
}

// ScaleUniform scales both dimensions by scale around the center.
func (b Box2A) ScaleUniform(scale float64) Box2A { return b.ScaleIndependent(scale, scale) }

// ScaleUniformMut is the in-place ScaleUniform.
func (b *Box2A) ScaleUniformMut(scale float64) *Box2A { return b.ScaleIndependentMut(scale, scale) }

// Project maps p from b's frame into target's frame, linearly per axis:
//
//	x' = target.Left + (p.X − b.Left)·(target.Width / b.Width)
//	y' = target.Top  + (p.Y − b.Top)·(target.Height / b.Height)
//
// A zero Width or Height on b yields non-finite coordinates.
func (b Box2A) Project(p linalg.Point2, target Box2A) linalg.Point2 {
	return linalg.Point2{
		X: target.Left() + (p.X-b.Left())*(target.Width/b.Width),
		Y: target.Top() + (p.Y-b.Top())*(target.Height/b.Height),
	}
}

// ProjectBox maps inner from b's frame into target's frame: its center goes
// through Project and its dimensions are scaled by the same per-axis ratios.
func (b Box2A) ProjectBox(inner, target Box2A) Box2A {
	return NewBox2A(
		b.Project(inner.Center, target),
		inner.Width*(target.Width/b.Width),
		inner.Height*(target.Height/b.Height),
	)
}
