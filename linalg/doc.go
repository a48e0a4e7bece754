// Package linalg provides fixed-size linear-algebra value types:
// 2D/3D vectors, 2x2/3x3 matrices and 2D/3D points.
//
// 🚀 What is in the box?
//
//   - Vec2, Vec3: displacements/directions with arithmetic, dot/cross,
//     projection, rejection, clamping and (Vec3) spherical coordinates.
//   - Matrix2, Matrix3: row-major square matrices with transpose, determinant,
//     inverse, products and (Matrix3) scale/rotation/reflection constructors.
//   - Point2, Point3: absolute positions with point ± vector → point, distances.
//
// ✨ Conventions:
//
//   - Value receivers never mutate: v.Add(w) returns a new vector.
//   - Every creating operation has a *Mut sibling on a pointer receiver that
//     mutates in place and returns the receiver for chaining.
//   - Equality (Equals, IsZero, IsDiagonal, ...) is exact float comparison.
//     Use package approx for tolerance-based comparisons.
//   - Degenerate inputs are not rejected: the unit of a zero vector, the
//     inverse of a singular matrix or a projection onto the zero vector yield
//     NaN/±Inf components that propagate to the caller.
//   - Matrix·vector products follow M·v: result.X = m.R0C0*v.X + m.R0C1*v.Y.
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/vecmath/linalg"
//
//	m := linalg.XRotationMatrix3(math.Pi / 2)
//	v := linalg.Vec3{X: 1, Y: 1, Z: 1}.Multiply(m) // ≈ (1, -1, 1)
//
//	w := linalg.Vec2{X: 1, Y: 2}
//	w.AddMut(linalg.Vec2{X: 1, Y: 1}).ScaleMut(2) // w == (4, 6)
//
// Concurrency: all types are plain data with no shared state. Concurrent reads
// are safe; a *Mut call on a value shared across goroutines needs external
// synchronisation like any other write.
package linalg
