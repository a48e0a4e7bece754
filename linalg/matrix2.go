// SPDX-License-Identifier: MIT

package linalg

import "math"

// Matrix2 is a 2x2 matrix stored row-major:
//
//	| R0C0  R0C1 |
//	| R1C0  R1C1 |
//
// The zero value is the zero matrix.
type Matrix2 struct {
	R0C0, R0C1 float64
	R1C0, R1C1 float64
}

// NewMatrix2 builds a matrix from its four entries in row-major order.
func NewMatrix2(r0c0, r0c1, r1c0, r1c1 float64) Matrix2 {
	return Matrix2{R0C0: r0c0, R0C1: r0c1, R1C0: r1c0, R1C1: r1c1}
}

// ZeroMatrix2 returns the matrix with all entries 0.
func ZeroMatrix2() Matrix2 { return Matrix2{} }

// IdentityMatrix2 returns the 2x2 identity.
func IdentityMatrix2() Matrix2 { return NewMatrix2(1, 0, 0, 1) }

// Matrix2FromRows builds a matrix whose rows are r0 and r1.
func Matrix2FromRows(r0, r1 Vec2) Matrix2 { return NewMatrix2(r0.X, r0.Y, r1.X, r1.Y) }

// Matrix2FromColumns builds a matrix whose columns are c0 and c1.
// Matrix2FromColumns(a, b) == Matrix2FromRows(a, b).Transpose().
func Matrix2FromColumns(c0, c1 Vec2) Matrix2 { return NewMatrix2(c0.X, c1.X, c0.Y, c1.Y) }

// Matrix2FromEntries builds a matrix from exactly four row-major entries.
// Returns ErrEntryCount (wrapped) for any other count.
func Matrix2FromEntries(entries ...float64) (Matrix2, error) {
	if len(entries) != 4 {
		return Matrix2{}, linalgErrorf(opMatrix2FromEntries, ErrEntryCount)
	}

	return NewMatrix2(entries[0], entries[1], entries[2], entries[3]), nil
}

// ScaleMatrix2 returns the uniform scale s·I.
func ScaleMatrix2(s float64) Matrix2 { return NewMatrix2(s, 0, 0, s) }

// RotationMatrix2 returns the counter-clockwise rotation by radians.
func RotationMatrix2(radians float64) Matrix2 {
	c, s := math.Cos(radians), math.Sin(radians)

	return NewMatrix2(c, -s, s, c)
}

// RowCount is 2.
func (m Matrix2) RowCount() int { return 2 }

// ColumnCount is 2.
func (m Matrix2) ColumnCount() int { return 2 }

// IsSquare is always true.
func (m Matrix2) IsSquare() bool { return true }

// R0 returns the first row.
func (m Matrix2) R0() Vec2 { return Vec2{X: m.R0C0, Y: m.R0C1} }

// R1 returns the second row.
func (m Matrix2) R1() Vec2 { return Vec2{X: m.R1C0, Y: m.R1C1} }

// C0 returns the first column.
func (m Matrix2) C0() Vec2 { return Vec2{X: m.R0C0, Y: m.R1C0} }

// C1 returns the second column.
func (m Matrix2) C1() Vec2 { return Vec2{X: m.R0C1, Y: m.R1C1} }

// Components returns the entries in row-major order.
func (m Matrix2) Components() []float64 { return []float64{m.R0C0, m.R0C1, m.R1C0, m.R1C1} }

// IsDiagonal reports whether both off-diagonal entries are exactly 0.
func (m Matrix2) IsDiagonal() bool { return m.R0C1 == 0 && m.R1C0 == 0 }

// IsSymmetric is defined as IsDiagonal in this library.
// It is deliberately narrower than transpose equality: a matrix such as
// [[1 2] [2 1]] equals its transpose but is not reported as symmetric.
func (m Matrix2) IsSymmetric() bool { return m.IsDiagonal() }

// IsAntiSymmetric reports whether the transpose equals m scaled by -1, exactly.
func (m Matrix2) IsAntiSymmetric() bool { return m.Transpose().Equals(m.Scale(-1)) }

// Transpose swaps rows and columns.
func (m Matrix2) Transpose() Matrix2 { return NewMatrix2(m.R0C0, m.R1C0, m.R0C1, m.R1C1) }

// Determinant is ad − bc.
func (m Matrix2) Determinant() float64 { return m.R0C0*m.R1C1 - m.R0C1*m.R1C0 }

// Inverse returns the adjugate divided by the determinant.
// A singular matrix yields ±Inf/NaN entries; no check is made.
func (m Matrix2) Inverse() Matrix2 {
	invDet := 1 / m.Determinant()

	return NewMatrix2(
		m.R1C1*invDet, -m.R0C1*invDet,
		-m.R1C0*invDet, m.R0C0*invDet,
	)
}

// Equals reports exact entrywise equality.
func (m Matrix2) Equals(other Matrix2) bool { return m == other }

// Scale multiplies every entry by scalar.
func (m Matrix2) Scale(scalar float64) Matrix2 {
	return NewMatrix2(m.R0C0*scalar, m.R0C1*scalar, m.R1C0*scalar, m.R1C1*scalar)
}

// Add returns the entrywise sum.
func (m Matrix2) Add(other Matrix2) Matrix2 {
	return NewMatrix2(
		m.R0C0+other.R0C0, m.R0C1+other.R0C1,
		m.R1C0+other.R1C0, m.R1C1+other.R1C1,
	)
}

// Subtract returns the entrywise difference.
func (m Matrix2) Subtract(other Matrix2) Matrix2 {
	return NewMatrix2(
		m.R0C0-other.R0C0, m.R0C1-other.R0C1,
		m.R1C0-other.R1C0, m.R1C1-other.R1C1,
	)
}

// Multiply returns the product m·other. Not commutative.
func (m Matrix2) Multiply(other Matrix2) Matrix2 {
	return NewMatrix2(
		m.R0C0*other.R0C0+m.R0C1*other.R1C0,
		m.R0C0*other.R0C1+m.R0C1*other.R1C1,
		m.R1C0*other.R0C0+m.R1C1*other.R1C0,
		m.R1C0*other.R0C1+m.R1C1*other.R1C1,
	)
}

// Set overwrites all entries (row-major) and returns m.
func (m *Matrix2) Set(r0c0, r0c1, r1c0, r1c1 float64) *Matrix2 {
	*m = NewMatrix2(r0c0, r0c1, r1c0, r1c1)

	return m
}

// SetFrom copies other into m and returns m.
func (m *Matrix2) SetFrom(other Matrix2) *Matrix2 {
	*m = other

	return m
}

// ScaleMut multiplies every entry by scalar in place.
func (m *Matrix2) ScaleMut(scalar float64) *Matrix2 { return m.SetFrom(m.Scale(scalar)) }

// AddMut adds other to m in place.
func (m *Matrix2) AddMut(other Matrix2) *Matrix2 { return m.SetFrom(m.Add(other)) }

// SubtractMut subtracts other from m in place.
func (m *Matrix2) SubtractMut(other Matrix2) *Matrix2 { return m.SetFrom(m.Subtract(other)) }

// MultiplyMut replaces m with m·other.
func (m *Matrix2) MultiplyMut(other Matrix2) *Matrix2 { return m.SetFrom(m.Multiply(other)) }
