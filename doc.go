// Package vecmath is a small library of fixed-size linear-algebra value
// types for 2D and 3D geometry: vectors, points, square matrices and
// axis-aligned boxes.
//
// 🚀 What is in vecmath?
//
//	Plain float64 value types with no hidden state:
//		• Vectors: Vec2, Vec3 (dot, cross, projection, spherical coordinates)
//		• Points: Point2, Point3 (point ± vector → point, distances)
//		• Matrices: Matrix2, Matrix3 (inverse, determinant, rotations, reflection)
//		• Boxes: Box2A, Box3A, Rect2A (intersection, frame-to-frame projection)
//
// ✨ Why vecmath?
//
//   - Values, not pointers: every operation returns a new value, and a *Mut
//     sibling mutates in place and returns the receiver for chaining
//   - Exact equality in the types, tolerance comparisons in one helper package
//   - Degenerate input never panics: NaN and ±Inf propagate to the caller
//   - Adapters to gonum and x/image/math/f32 when a bigger toolbox is needed
//
// Everything is organized under these subpackages:
//
//	linalg/     - Vec2/Vec3, Point2/Point3, Matrix2/Matrix3, capability interfaces
//	bounds/     - Box2A, Box3A, Rect2A
//	approx/     - epsilon comparisons for scalars, slices and composite values
//	converters/ - gonum r2/r3/mat and x/image/math/f32 adapters
//	gridwarp/   - renders the image of a grid under a 2x2 matrix
//	cmd/gridwarp/ - command-line front end for gridwarp
//
// Quick start:
//
//	import "github.com/katalvlaran/vecmath/linalg"
//
//	m := linalg.RotationMatrix2(math.Pi / 2)
//	v := linalg.Vec2{X: 1}.Multiply(m) // ≈ (0, 1)
//
// See examples/ for scenario programs and the example_test.go files in each
// package for runnable snippets.
package vecmath
