package linalg_test

import (
	"testing"

	"github.com/katalvlaran/vecmath/approx"
	"github.com/katalvlaran/vecmath/linalg"
	"github.com/stretchr/testify/assert"
)

// checkVectorCapability exercises the shared capability set through the
// generic interface, for vectors and points alike.
func checkVectorCapability[V any, R linalg.Vector[V, R]](t *testing.T, r R, operand V) {
	t.Helper()

	assert.Equal(t, r.Size(), len(r.Components()))
	approx.AssertEqual(t, r.Magnitude()*r.Magnitude(), r.MagnitudeSquared())
	approx.AssertEqual(t, 1, r.Unit().Magnitude())
	approx.AssertEqual(t, 2*r.Magnitude(), r.Scale(2).Magnitude())
	approx.AssertClose(t, r, r.Add(operand).Subtract(operand))
	assert.False(t, r.IsZero())
	assert.False(t, r.IsOrthogonalTo(operand))

	along, across := r.ProjectOnto(operand), r.RejectFrom(operand)
	recombined := along.Components()
	for i, c := range across.Components() {
		recombined[i] += c
	}
	assert.True(t, approx.EqualSlices(r.Components(), recombined), "projection + rejection = receiver")
	approx.AssertEqual(t, 0, across.Dot(operand))

	approx.AssertEqual(t, r.Magnitude()/2, r.ClampMagnitude(r.Magnitude()/2).Magnitude())
	assert.Equal(t, r.Components(), r.ClampMagnitude(2*r.Magnitude()).Components())
}

func TestVector_Capability(t *testing.T) {
	checkVectorCapability[linalg.Vec2, linalg.Vec2](t, linalg.Vec2{X: 3, Y: -4}, linalg.Vec2{X: 0.5, Y: 2})
	checkVectorCapability[linalg.Vec3, linalg.Vec3](t, linalg.Vec3{X: 1, Y: 2, Z: 2}, linalg.Vec3{X: -1, Y: 0, Z: 7})
	checkVectorCapability[linalg.Vec2, linalg.Point2](t, linalg.Point2{X: 3, Y: -4}, linalg.Vec2{X: 0.5, Y: 2})
	checkVectorCapability[linalg.Vec3, linalg.Point3](t, linalg.Point3{X: 1, Y: 2, Z: 2}, linalg.Vec3{X: -1, Y: 0, Z: 7})
}

// checkMatrixCapability verifies algebraic identities shared by both sizes.
func checkMatrixCapability[M linalg.Matrix[M]](t *testing.T, m, identity M) {
	t.Helper()

	assert.True(t, m.IsSquare())
	assert.Equal(t, m.RowCount()*m.ColumnCount(), len(m.Components()))
	assert.True(t, m.Transpose().Transpose().Equals(m))
	assert.True(t, identity.Multiply(m).Equals(m))
	assert.True(t, m.Multiply(identity).Equals(m))
	approx.AssertClose(t, identity, m.Multiply(m.Inverse()))
	approx.AssertClose(t, identity, m.Inverse().Multiply(m))
	approx.AssertEqual(t, 1, m.Determinant()*m.Inverse().Determinant())
	assert.True(t, m.Add(m).Subtract(m).Equals(m))
	assert.True(t, m.Scale(2).Equals(m.Add(m)))
}

func TestMatrix_Capability(t *testing.T) {
	checkMatrixCapability(t, linalg.NewMatrix2(4, 7, 2, 6), linalg.IdentityMatrix2())
	checkMatrixCapability(t, linalg.NewMatrix3(4, -3, 5, 1, 0, 3, -1, 5, 2), linalg.IdentityMatrix3())
}
