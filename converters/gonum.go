// SPDX-License-Identifier: MIT

package converters

import (
	"github.com/katalvlaran/vecmath/linalg"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/spatial/r2"
	"gonum.org/v1/gonum/spatial/r3"
)

// ToR2 converts v to a gonum r2.Vec.
func ToR2(v linalg.Vec2) r2.Vec { return r2.Vec{X: v.X, Y: v.Y} }

// FromR2 converts a gonum r2.Vec to a Vec2.
func FromR2(v r2.Vec) linalg.Vec2 { return linalg.Vec2{X: v.X, Y: v.Y} }

// ToR3 converts v to a gonum r3.Vec.
func ToR3(v linalg.Vec3) r3.Vec { return r3.Vec{X: v.X, Y: v.Y, Z: v.Z} }

// FromR3 converts a gonum r3.Vec to a Vec3.
func FromR3(v r3.Vec) linalg.Vec3 { return linalg.Vec3{X: v.X, Y: v.Y, Z: v.Z} }

// Matrix2ToDense copies m into a new 2x2 *mat.Dense.
func Matrix2ToDense(m linalg.Matrix2) *mat.Dense {
	return mat.NewDense(2, 2, m.Components())
}

// Matrix3ToDense copies m into a new 3x3 *mat.Dense.
func Matrix3ToDense(m linalg.Matrix3) *mat.Dense {
	return mat.NewDense(3, 3, m.Components())
}

// Matrix2FromMat reads a 2x2 gonum matrix. Any other shape returns ErrShape.
func Matrix2FromMat(a mat.Matrix) (linalg.Matrix2, error) {
	r, c := a.Dims()
	if r != 2 || c != 2 {
		return linalg.Matrix2{}, shapeErrorf(opMatrix2FromMat, r, c, 2, 2)
	}

	return linalg.NewMatrix2(
		a.At(0, 0), a.At(0, 1),
		a.At(1, 0), a.At(1, 1),
	), nil
}

// Matrix3FromMat reads a 3x3 gonum matrix. Any other shape returns ErrShape.
//
// Implementation:
//   - Stage 1: validate Dims.
//   - Stage 2: flatten row-major through mat.Dense.RawMatrix when a is dense
//     and contiguous, otherwise through At.
//   - Stage 3: build via linalg.Matrix3FromEntries.
func Matrix3FromMat(a mat.Matrix) (linalg.Matrix3, error) {
	r, c := a.Dims()
	if r != 3 || c != 3 {
		return linalg.Matrix3{}, shapeErrorf(opMatrix3FromMat, r, c, 3, 3)
	}

	entries := make([]float64, 0, 9)
	if d, ok := a.(*mat.Dense); ok && d.RawMatrix().Stride == 3 {
		entries = append(entries, d.RawMatrix().Data[:9]...)
	} else {
		for i := 0; i < 3; i++ {
			for j := 0; j < 3; j++ {
				entries = append(entries, a.At(i, j))
			}
		}
	}

	return linalg.Matrix3FromEntries(entries...)
}
