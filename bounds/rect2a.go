package bounds

import "github.com/katalvlaran/vecmath/linalg"

// Rect2A is an axis-aligned rectangle anchored at its top-left corner.
// Unlike Box2A it offers no intersection or projection.
type Rect2A struct {
	TopLeft linalg.Vec2
	Width   float64
	Height  float64
}

// NewRect2A builds a rectangle from its top-left corner and dimensions.
func NewRect2A(topLeft linalg.Vec2, width, height float64) Rect2A {
	return Rect2A{TopLeft: topLeft, Width: width, Height: height}
}

// Top is the y of TopLeft.
func (r Rect2A) Top() float64 { return r.TopLeft.Y }

// Left is the x of TopLeft.
func (r Rect2A) Left() float64 { return r.TopLeft.X }

// Bottom is Top + Height.
func (r Rect2A) Bottom() float64 { return r.TopLeft.Y + r.Height }

// Right is Left + Width.
func (r Rect2A) Right() float64 { return r.TopLeft.X + r.Width }

// Center returns the midpoint of the rectangle.
func (r Rect2A) Center() linalg.Vec2 {
	return linalg.Vec2{X: r.Left() + r.Width/2, Y: r.Top() + r.Height/2}
}
