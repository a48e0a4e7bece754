// SPDX-License-Identifier: MIT

package linalg

// Vector is the capability set shared by vectors and points.
//
// V is the operand type accepted by Add/Subtract/Dot and R is the result type
// of creating operations. For Vec2 both are Vec2; for Point2 the operand is a
// Vec2 displacement and the result is a Point2, which encodes
// "point ± vector → point" in the type system instead of by overriding.
type Vector[V, R any] interface {
	// Size is the number of components.
	Size() int
	// Components returns the components in x, y(, z) order.
	Components() []float64
	MagnitudeSquared() float64
	Magnitude() float64
	// Unit has the same direction and magnitude 1 (NaN for the zero vector).
	Unit() R
	IsZero() bool
	Dot(other V) float64
	IsOrthogonalTo(other V) bool
	Scale(scalar float64) R
	Add(other V) R
	Subtract(other V) R
	// ProjectOnto and RejectFrom split the receiver into the parts parallel
	// and perpendicular to other; they sum back to the receiver.
	ProjectOnto(other V) R
	RejectFrom(other V) R
	// ClampMagnitude shortens the receiver to at most limit.
	ClampMagnitude(limit float64) R
}

// Matrix is the capability set shared by Matrix2 and Matrix3.
type Matrix[M any] interface {
	RowCount() int
	ColumnCount() int
	IsSquare() bool
	// IsDiagonal reports whether every off-diagonal entry is exactly 0.
	IsDiagonal() bool
	// IsSymmetric is IsDiagonal, see the method docs.
	IsSymmetric() bool
	// IsAntiSymmetric reports whether the transpose equals the negation.
	IsAntiSymmetric() bool
	Transpose() M
	Inverse() M
	Determinant() float64
	Equals(other M) bool
	// Components returns the entries in row-major order.
	Components() []float64
	Scale(scalar float64) M
	Add(other M) M
	Subtract(other M) M
	Multiply(other M) M
}

// Compile-time capability checks.
var (
	_ Vector[Vec2, Vec2]   = Vec2{}
	_ Vector[Vec3, Vec3]   = Vec3{}
	_ Vector[Vec2, Point2] = Point2{}
	_ Vector[Vec3, Point3] = Point3{}
	_ Matrix[Matrix2]      = Matrix2{}
	_ Matrix[Matrix3]      = Matrix3{}
)
