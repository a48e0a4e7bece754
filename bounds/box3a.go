// SPDX-License-Identifier: MIT

package bounds

import "github.com/katalvlaran/vecmath/linalg"

// Box3A is an axis-aligned 3D box anchored at Center, in a y-up,
// z-toward-the-viewer frame.
type Box3A struct {
	Center linalg.Point3
	Width  float64
	Height float64
	Depth  float64
}

// NewBox3A builds a box from its center and dimensions.
func NewBox3A(center linalg.Point3, width, height, depth float64) Box3A {
	return Box3A{Center: center, Width: width, Height: height, Depth: depth}
}

// Left is the smallest x of the box.
func (b Box3A) Left() float64 { return b.Center.X - b.Width/2 }

// Right is the largest x of the box.
func (b Box3A) Right() float64 { return b.Center.X + b.Width/2 }

// Top is the largest y of the box (y grows upward).
func (b Box3A) Top() float64 { return b.Center.Y + b.Height/2 }

// Bottom is the smallest y of the box.
func (b Box3A) Bottom() float64 { return b.Center.Y - b.Height/2 }

// Front is the largest z of the box.
func (b Box3A) Front() float64 { return b.Center.Z + b.Depth/2 }

// Back is the smallest z of the box.
func (b Box3A) Back() float64 { return b.Center.Z - b.Depth/2 }

// Components returns [center.x, center.y, center.z, width, height, depth].
func (b Box3A) Components() []float64 {
	return []float64{b.Center.X, b.Center.Y, b.Center.Z, b.Width, b.Height, b.Depth}
}

// IsFullyRightOf reports a strictly positive gap between other's right and b's left.
func (b Box3A) IsFullyRightOf(other Box3A) bool { return b.Left() > other.Right() }

// IsFullyAbove reports a strictly positive gap between other's top and b's bottom.
func (b Box3A) IsFullyAbove(other Box3A) bool { return b.Bottom() > other.Top() }

// IsFullyInFrontOf reports a strictly positive gap between other's front and b's back.
func (b Box3A) IsFullyInFrontOf(other Box3A) bool { return b.Back() > other.Front() }

// Intersects is a separating-axis test over x, y and z. Boxes touching on a
// face, edge or corner intersect.
func (b Box3A) Intersects(other Box3A) bool {
	return !(b.IsFullyRightOf(other) || other.IsFullyRightOf(b) ||
		b.IsFullyAbove(other) || other.IsFullyAbove(b) ||
		b.IsFullyInFrontOf(other) || other.IsFullyInFrontOf(b))
}
