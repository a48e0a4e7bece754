package bounds_test

import (
	"testing"

	"github.com/katalvlaran/vecmath/bounds"
	"github.com/katalvlaran/vecmath/linalg"
	"github.com/stretchr/testify/assert"
)

func TestBox3A_Edges(t *testing.T) {
	b := bounds.NewBox3A(linalg.Point3{X: 1, Y: 2, Z: 3}, 8, 10, 12)

	assert.Equal(t, -3.0, b.Left())
	assert.Equal(t, 5.0, b.Right())
	assert.Equal(t, 7.0, b.Top(), "y grows upward")
	assert.Equal(t, -3.0, b.Bottom())
	assert.Equal(t, 9.0, b.Front())
	assert.Equal(t, -3.0, b.Back())
	assert.Equal(t, []float64{1, 2, 3, 8, 10, 12}, b.Components())
}

func TestBox3A_Intersects(t *testing.T) {
	var origin linalg.Point3

	tests := []struct {
		name string
		a, b bounds.Box3A
		want bool
	}{
		{
			"disjoint",
			bounds.NewBox3A(origin, 4, 6, 8),
			bounds.NewBox3A(linalg.Point3{X: -3.1, Y: -3.1, Z: -3.1}, 2, 2, 2),
			false,
		},
		{"nested", bounds.NewBox3A(origin, 4, 6, 8), bounds.NewBox3A(origin, 2, 2, 2), true},
		{
			"flat box touching from below",
			bounds.NewBox3A(origin, 1, 0, 1),
			bounds.NewBox3A(linalg.Point3{Y: 1}, 2, 2, 2),
			true,
		},
		{"point inside", bounds.NewBox3A(origin, 0, 0, 0), bounds.NewBox3A(origin, 2, 2, 2), true},
		{
			"touching faces on x",
			bounds.NewBox3A(origin, 2, 2, 2),
			bounds.NewBox3A(linalg.Point3{X: 2}, 2, 2, 2),
			true,
		},
		{
			"gap on z",
			bounds.NewBox3A(origin, 2, 2, 2),
			bounds.NewBox3A(linalg.Point3{Z: 2.5}, 2, 2, 2),
			false,
		},
		{
			"overlap on two axes only",
			bounds.NewBox3A(origin, 2, 2, 2),
			bounds.NewBox3A(linalg.Point3{X: 0.5, Y: 0.5, Z: 5}, 2, 2, 2),
			false,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.a.Intersects(tt.b))
			assert.Equal(t, tt.want, tt.b.Intersects(tt.a), "symmetric")
		})
	}
}

func TestBox3A_SeparationPredicates(t *testing.T) {
	a := bounds.NewBox3A(linalg.Point3{}, 2, 2, 2)
	right := bounds.NewBox3A(linalg.Point3{X: 3}, 2, 2, 2)
	above := bounds.NewBox3A(linalg.Point3{Y: 3}, 2, 2, 2)
	front := bounds.NewBox3A(linalg.Point3{Z: 3}, 2, 2, 2)

	assert.True(t, right.IsFullyRightOf(a))
	assert.False(t, a.IsFullyRightOf(right))
	assert.True(t, above.IsFullyAbove(a))
	assert.False(t, a.IsFullyAbove(above))
	assert.True(t, front.IsFullyInFrontOf(a))
	assert.False(t, a.IsFullyInFrontOf(front))
}
