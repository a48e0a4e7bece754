package bounds_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/vecmath/bounds"
	"github.com/katalvlaran/vecmath/linalg"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// edges collects the four edges for one-shot comparisons.
type edges struct{ top, left, bottom, right float64 }

func edgesOf(b bounds.Box2A) edges {
	return edges{b.Top(), b.Left(), b.Bottom(), b.Right()}
}

func TestBox2A_Constructors(t *testing.T) {
	tests := []struct {
		name string
		box  bounds.Box2A
		want edges
	}{
		{"center", bounds.NewBox2A(linalg.Point2{X: 10, Y: 10}, 2, 3), edges{8.5, 9, 11.5, 11}},
		{"top-left origin", bounds.Box2AFromTopLeftOrigin(2, 3), edges{0, 0, 3, 2}},
		{"center origin", bounds.Box2AFromCenterOrigin(2, 3), edges{-1.5, -1, 1.5, 1}},
		{"top-left", bounds.Box2AFromTopLeft(linalg.Point2{X: 5, Y: 7}, 4, 2), edges{7, 5, 9, 9}},
		{"edges", bounds.Box2AFromEdges(1, 2, 6, 12), edges{1, 2, 6, 12}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, edgesOf(tt.box))
		})
	}

	assert.Equal(t, bounds.NewBox2A(linalg.Point2{X: 3, Y: 2}, 2, 2), bounds.Box2AFromEdges(1, 2, 3, 4))
}

func TestBox2A_Fields(t *testing.T) {
	b := bounds.Box2AFromEdges(1, 2, 6, 12)

	assert.Equal(t, linalg.Point2{X: 7, Y: 3.5}, b.Center)
	assert.Equal(t, 10.0, b.Width)
	assert.Equal(t, 5.0, b.Height)
	assert.Equal(t, 2.0, b.AspectRatio())
	assert.Equal(t, linalg.Point2{X: 2, Y: 1}, b.TopLeft())
	assert.Equal(t, linalg.Point2{X: 12, Y: 1}, b.TopRight())
	assert.Equal(t, linalg.Point2{X: 2, Y: 6}, b.BottomLeft())
	assert.Equal(t, linalg.Point2{X: 12, Y: 6}, b.BottomRight())
	assert.Equal(t, []float64{7, 3.5, 10, 5}, b.Components())
}

func TestBox2A_Contains(t *testing.T) {
	b := bounds.Box2AFromEdges(0, 0, 10, 20)

	assert.True(t, b.Contains(linalg.Point2{X: 5, Y: 5}))
	assert.True(t, b.Contains(linalg.Point2{}), "corners are inside")
	assert.True(t, b.Contains(linalg.Point2{X: 20, Y: 10}))
	assert.False(t, b.Contains(linalg.Point2{X: 20.5, Y: 5}))
	assert.False(t, b.Contains(linalg.Point2{X: 5, Y: -0.1}))
	assert.False(t, b.Contains(linalg.Point2{X: math.NaN(), Y: 5}))
}

func TestBox2A_Separation(t *testing.T) {
	a := bounds.Box2AFromEdges(0, 0, 10, 10)

	tests := []struct {
		name                          string
		other                         bounds.Box2A
		leftOf, rightOf, above, below bool
	}{
		{"overlapping", bounds.Box2AFromEdges(5, 5, 15, 15), false, false, false, false},
		{"touching on the right", bounds.Box2AFromEdges(0, 10, 10, 20), true, false, false, false},
		{"far left", bounds.Box2AFromEdges(0, -30, 10, -20), false, true, false, false},
		{"touching below", bounds.Box2AFromEdges(10, 0, 20, 10), false, false, true, false},
		{"far above", bounds.Box2AFromEdges(-30, 0, -20, 10), false, false, false, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.leftOf, a.IsFullyLeftOf(tt.other), "left of")
			assert.Equal(t, tt.rightOf, a.IsFullyRightOf(tt.other), "right of")
			assert.Equal(t, tt.above, a.IsFullyAbove(tt.other), "above")
			assert.Equal(t, tt.below, a.IsFullyBelow(tt.other), "below")
		})
	}
}

func TestBox2A_Intersects(t *testing.T) {
	a := bounds.Box2AFromEdges(1, 2, 3, 4)

	assert.True(t, a.Intersects(a))
	assert.True(t, a.Intersects(bounds.Box2AFromEdges(2, 3, 4, 5)))
	assert.False(t, a.Intersects(bounds.Box2AFromEdges(11, 12, 13, 14)))

	// shared edges and corners do not count
	assert.False(t, a.Intersects(bounds.Box2AFromEdges(1, 4, 3, 6)))
	assert.False(t, a.Intersects(bounds.Box2AFromEdges(3, 2, 5, 4)))
	assert.False(t, a.Intersects(bounds.Box2AFromEdges(3, 4, 5, 6)))

	// separation to the right of or below the receiver is detected from
	// either side
	right := bounds.Box2AFromEdges(1, 10, 3, 12)
	below := bounds.Box2AFromEdges(10, 2, 12, 4)
	for _, other := range []bounds.Box2A{right, below} {
		assert.False(t, a.Intersects(other))
		assert.False(t, other.Intersects(a))
	}
}

func TestBox2A_Intersection(t *testing.T) {
	a := bounds.Box2AFromEdges(1, 2, 3, 4)

	got, ok := a.Intersection(bounds.Box2AFromEdges(2, 3, 4, 5))
	require.True(t, ok)
	assert.Equal(t, bounds.Box2AFromEdges(2, 3, 3, 4), got)

	got, ok = a.Intersection(bounds.Box2AFromEdges(12, 13, 14, 15))
	assert.False(t, ok)
	assert.Equal(t, bounds.Box2A{}, got)

	inner := bounds.Box2AFromEdges(1.5, 2.5, 2.5, 3.5)
	got, ok = a.Intersection(inner)
	require.True(t, ok)
	assert.Equal(t, inner, got, "a contained box is its own overlap")
}

func TestBox2A_Translate(t *testing.T) {
	box := bounds.Box2AFromEdges(1, 2, 3, 4)
	delta := linalg.Vec2{X: 1, Y: 2}

	moved := box.Translate(delta)
	assert.Equal(t, bounds.Box2AFromEdges(3, 3, 5, 5), moved)
	assert.Equal(t, bounds.Box2AFromEdges(1, 2, 3, 4), box, "receiver unchanged")

	require.Same(t, &box, box.TranslateMut(delta))
	assert.Equal(t, moved, box)
}

func TestBox2A_Scale(t *testing.T) {
	center := linalg.Point2{X: 1, Y: 2}
	box := bounds.NewBox2A(center, 3, 4)

	assert.Equal(t, bounds.NewBox2A(center, 9, 12), box.ScaleUniform(3))
	assert.Equal(t, bounds.NewBox2A(center, 6, 2), box.ScaleIndependent(2, 0.5))
	assert.Equal(t, bounds.NewBox2A(center, 3, 4), box, "receiver unchanged")

	b := box
	require.Same(t, &b, b.ScaleUniformMut(3))
	assert.Equal(t, bounds.NewBox2A(center, 9, 12), b)

	b = box
	b.ScaleIndependentMut(2, 0.5)
	assert.Equal(t, bounds.NewBox2A(center, 6, 2), b)
}

func TestBox2A_Project(t *testing.T) {
	from := bounds.Box2AFromEdges(1, 2, 11, 24)
	to := bounds.Box2AFromEdges(100, 200, 1100, 2400)

	assert.Equal(t, linalg.Point2{X: 600, Y: 500}, from.Project(linalg.Point2{X: 6, Y: 5}, to))
	assert.Equal(t, to.TopLeft(), from.Project(from.TopLeft(), to))
	assert.Equal(t, to.BottomRight(), from.Project(from.BottomRight(), to))
	assert.Equal(t, bounds.Box2AFromEdges(600, 700, 800, 900), from.ProjectBox(bounds.Box2AFromEdges(6, 7, 8, 9), to))
	assert.Equal(t, to, from.ProjectBox(from, to))
}

func TestBox2A_ProjectDegenerate(t *testing.T) {
	flat := bounds.Box2AFromEdges(0, 0, 0, 10)
	p := flat.Project(linalg.Point2{X: 5, Y: 1}, bounds.Box2AFromTopLeftOrigin(100, 100))

	assert.Equal(t, 50.0, p.X)
	assert.True(t, math.IsInf(p.Y, 1), "zero height divides by zero")
}
