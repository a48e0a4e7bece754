// SPDX-License-Identifier: MIT

package linalg

import "math"

// Matrix3 is a 3x3 matrix stored row-major:
//
//	| R0C0  R0C1  R0C2 |
//	| R1C0  R1C1  R1C2 |
//	| R2C0  R2C1  R2C2 |
//
// The zero value is the zero matrix.
type Matrix3 struct {
	R0C0, R0C1, R0C2 float64
	R1C0, R1C1, R1C2 float64
	R2C0, R2C1, R2C2 float64
}

// NewMatrix3 builds a matrix from its nine entries in row-major order.
func NewMatrix3(
	r0c0, r0c1, r0c2,
	r1c0, r1c1, r1c2,
	r2c0, r2c1, r2c2 float64,
) Matrix3 {
	return Matrix3{
		R0C0: r0c0, R0C1: r0c1, R0C2: r0c2,
		R1C0: r1c0, R1C1: r1c1, R1C2: r1c2,
		R2C0: r2c0, R2C1: r2c1, R2C2: r2c2,
	}
}

// ZeroMatrix3 returns the matrix with all entries 0.
func ZeroMatrix3() Matrix3 { return Matrix3{} }

// IdentityMatrix3 returns the 3x3 identity.
func IdentityMatrix3() Matrix3 { return ScaleMatrix3(1) }

// Matrix3FromRows builds a matrix whose rows are r0, r1 and r2.
func Matrix3FromRows(r0, r1, r2 Vec3) Matrix3 {
	return NewMatrix3(
		r0.X, r0.Y, r0.Z,
		r1.X, r1.Y, r1.Z,
		r2.X, r2.Y, r2.Z,
	)
}

// Matrix3FromColumns builds a matrix whose columns are c0, c1 and c2.
// Matrix3FromColumns(a, b, c) == Matrix3FromRows(a, b, c).Transpose().
func Matrix3FromColumns(c0, c1, c2 Vec3) Matrix3 {
	return NewMatrix3(
		c0.X, c1.X, c2.X,
		c0.Y, c1.Y, c2.Y,
		c0.Z, c1.Z, c2.Z,
	)
}

// Matrix3FromEntries builds a matrix from exactly nine row-major entries.
// Returns ErrEntryCount (wrapped) for any other count.
func Matrix3FromEntries(entries ...float64) (Matrix3, error) {
	if len(entries) != 9 {
		return Matrix3{}, linalgErrorf(opMatrix3FromEntries, ErrEntryCount)
	}

	return NewMatrix3(
		entries[0], entries[1], entries[2],
		entries[3], entries[4], entries[5],
		entries[6], entries[7], entries[8],
	), nil
}

// ScaleMatrix3 returns the uniform scale s·I.
func ScaleMatrix3(s float64) Matrix3 {
	return NewMatrix3(
		s, 0, 0,
		0, s, 0,
		0, 0, s,
	)
}

// ReflectionMatrix3 returns the Householder reflection I − 2·n·nᵀ across the
// plane through the origin with normal n.
//
// Notes:
//   - n is NOT normalised here. Passing a non-unit normal yields a matrix that
//     is not a reflection; callers normalise first (n.Unit()).
func ReflectionMatrix3(n Vec3) Matrix3 {
	x2, y2, z2 := -2*n.X, -2*n.Y, -2*n.Z
	xy, xz, yz := x2*n.Y, x2*n.Z, y2*n.Z

	return NewMatrix3(
		1+x2*n.X, xy, xz,
		xy, 1+y2*n.Y, yz,
		xz, yz, 1+z2*n.Z,
	)
}

// RotationMatrix3 returns the rotation by radians about axis (Rodrigues):
//
//	R = cos·I + sin·[a]× + (1 − cos)·a·aᵀ
//
// Implementation:
//   - Stage 1: precompute cos, sin and the (1 − cos)-weighted outer products.
//   - Stage 2: assemble the nine entries directly (no intermediate matrices).
//
// Notes:
//   - axis is assumed to be unit length; it is not normalised here.
//   - Positive angles rotate counter-clockwise when looking down the axis
//     towards the origin (right-handed).
func RotationMatrix3(radians float64, axis Vec3) Matrix3 {
	c, s := math.Cos(radians), math.Sin(radians)
	d := 1 - c
	x, y, z := axis.X, axis.Y, axis.Z
	dxy, dxz, dyz := d*x*y, d*x*z, d*y*z

	return NewMatrix3(
		c+d*x*x, dxy-s*z, dxz+s*y,
		dxy+s*z, c+d*y*y, dyz-s*x,
		dxz-s*y, dyz+s*x, c+d*z*z,
	)
}

// XRotationMatrix3 returns the right-handed rotation by radians about +X.
func XRotationMatrix3(radians float64) Matrix3 {
	c, s := math.Cos(radians), math.Sin(radians)

	return NewMatrix3(
		1, 0, 0,
		0, c, -s,
		0, s, c,
	)
}

// YRotationMatrix3 returns the right-handed rotation by radians about +Y.
func YRotationMatrix3(radians float64) Matrix3 {
	c, s := math.Cos(radians), math.Sin(radians)

	return NewMatrix3(
		c, 0, s,
		0, 1, 0,
		-s, 0, c,
	)
}

// ZRotationMatrix3 returns the right-handed rotation by radians about +Z.
func ZRotationMatrix3(radians float64) Matrix3 {
	c, s := math.Cos(radians), math.Sin(radians)

	return NewMatrix3(
		c, -s, 0,
		s, c, 0,
		0, 0, 1,
	)
}

// RowCount is 3.
func (m Matrix3) RowCount() int { return 3 }

// ColumnCount is 3.
func (m Matrix3) ColumnCount() int { return 3 }

// IsSquare is always true.
func (m Matrix3) IsSquare() bool { return true }

// R0 returns the first row.
func (m Matrix3) R0() Vec3 { return Vec3{X: m.R0C0, Y: m.R0C1, Z: m.R0C2} }

// R1 returns the second row.
func (m Matrix3) R1() Vec3 { return Vec3{X: m.R1C0, Y: m.R1C1, Z: m.R1C2} }

// R2 returns the third row.
func (m Matrix3) R2() Vec3 { return Vec3{X: m.R2C0, Y: m.R2C1, Z: m.R2C2} }

// C0 returns the first column.
func (m Matrix3) C0() Vec3 { return Vec3{X: m.R0C0, Y: m.R1C0, Z: m.R2C0} }

// C1 returns the second column.
func (m Matrix3) C1() Vec3 { return Vec3{X: m.R0C1, Y: m.R1C1, Z: m.R2C1} }

// C2 returns the third column.
func (m Matrix3) C2() Vec3 { return Vec3{X: m.R0C2, Y: m.R1C2, Z: m.R2C2} }

// Components returns the entries in row-major order.
func (m Matrix3) Components() []float64 {
	return []float64{
		m.R0C0, m.R0C1, m.R0C2,
		m.R1C0, m.R1C1, m.R1C2,
		m.R2C0, m.R2C1, m.R2C2,
	}
}

// IsDiagonal reports whether every off-diagonal entry is exactly 0.
func (m Matrix3) IsDiagonal() bool {
	return m.R0C1 == 0 && m.R0C2 == 0 &&
		m.R1C0 == 0 && m.R1C2 == 0 &&
		m.R2C0 == 0 && m.R2C1 == 0
}

// IsSymmetric is defined as IsDiagonal in this library; see Matrix2.IsSymmetric.
func (m Matrix3) IsSymmetric() bool { return m.IsDiagonal() }

// IsAntiSymmetric reports whether the transpose equals m scaled by -1, exactly.
func (m Matrix3) IsAntiSymmetric() bool { return m.Transpose().Equals(m.Scale(-1)) }

// Transpose swaps rows and columns.
func (m Matrix3) Transpose() Matrix3 { return Matrix3FromColumns(m.R0(), m.R1(), m.R2()) }

// Determinant by cofactor expansion along the first row.
func (m Matrix3) Determinant() float64 {
	return m.R0C0*(m.R1C1*m.R2C2-m.R1C2*m.R2C1) +
		m.R0C1*(m.R1C2*m.R2C0-m.R1C0*m.R2C2) +
		m.R0C2*(m.R1C0*m.R2C1-m.R1C1*m.R2C0)
}

// Inverse returns m⁻¹ using the vector triple-product form of the adjugate.
//
// Implementation:
//   - Stage 1: take the columns a, b, c.
//   - Stage 2: rows of the adjugate are r0 = b×c, r1 = c×a, r2 = a×b.
//   - Stage 3: scale every row by 1/(r2·c), where r2·c = det(m).
//
// Notes:
//   - A singular matrix divides by zero and yields ±Inf/NaN entries.
//     Callers that need a guard check Determinant first.
//
// Complexity:
//   - Time O(1): three cross products, one dot product, nine multiplications.
func (m Matrix3) Inverse() Matrix3 {
	a, b, c := m.C0(), m.C1(), m.C2()
	r0 := b.Cross(c)
	r1 := c.Cross(a)
	r2 := a.Cross(b)
	invDet := 1 / r2.Dot(c)

	return Matrix3FromRows(r0.Scale(invDet), r1.Scale(invDet), r2.Scale(invDet))
}

// Equals reports exact entrywise equality.
func (m Matrix3) Equals(other Matrix3) bool { return m == other }

// Scale multiplies every entry by scalar.
func (m Matrix3) Scale(scalar float64) Matrix3 {
	return Matrix3FromRows(m.R0().Scale(scalar), m.R1().Scale(scalar), m.R2().Scale(scalar))
}

// Add returns the entrywise sum.
func (m Matrix3) Add(other Matrix3) Matrix3 {
	return Matrix3FromRows(m.R0().Add(other.R0()), m.R1().Add(other.R1()), m.R2().Add(other.R2()))
}

// Subtract returns the entrywise difference.
func (m Matrix3) Subtract(other Matrix3) Matrix3 {
	return Matrix3FromRows(
		m.R0().Subtract(other.R0()),
		m.R1().Subtract(other.R1()),
		m.R2().Subtract(other.R2()),
	)
}

// Multiply returns the product m·other: entry (i, j) is row i of m dotted
// with column j of other. Not commutative.
func (m Matrix3) Multiply(other Matrix3) Matrix3 {
	r0, r1, r2 := m.R0(), m.R1(), m.R2()
	c0, c1, c2 := other.C0(), other.C1(), other.C2()

	return NewMatrix3(
		r0.Dot(c0), r0.Dot(c1), r0.Dot(c2),
		r1.Dot(c0), r1.Dot(c1), r1.Dot(c2),
		r2.Dot(c0), r2.Dot(c1), r2.Dot(c2),
	)
}

// Set overwrites all entries (row-major) and returns m.
func (m *Matrix3) Set(
	r0c0, r0c1, r0c2,
	r1c0, r1c1, r1c2,
	r2c0, r2c1, r2c2 float64,
) *Matrix3 {
	*m = NewMatrix3(r0c0, r0c1, r0c2, r1c0, r1c1, r1c2, r2c0, r2c1, r2c2)

	return m
}

// SetFrom copies other into m and returns m.
func (m *Matrix3) SetFrom(other Matrix3) *Matrix3 {
	*m = other

	return m
}

// ScaleMut multiplies every entry by scalar in place.
func (m *Matrix3) ScaleMut(scalar float64) *Matrix3 { return m.SetFrom(m.Scale(scalar)) }

// AddMut adds other to m in place.
func (m *Matrix3) AddMut(other Matrix3) *Matrix3 { return m.SetFrom(m.Add(other)) }

// SubtractMut subtracts other from m in place.
func (m *Matrix3) SubtractMut(other Matrix3) *Matrix3 { return m.SetFrom(m.Subtract(other)) }

// MultiplyMut replaces m with m·other.
func (m *Matrix3) MultiplyMut(other Matrix3) *Matrix3 { return m.SetFrom(m.Multiply(other)) }
