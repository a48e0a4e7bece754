// Package bounds provides axis-aligned boxes on top of package linalg.
//
// 🚀 Types:
//
//   - Box2A: a 2D box anchored at its center. Edges, corners, containment,
//     separation tests, intersection, translation, scaling and frame-to-frame
//     projection. y grows downward: Top is the numerically smaller edge.
//   - Box3A: a 3D box anchored at its center with a separating-axis Intersects.
//     y grows upward here: Top = Center.Y + Height/2, Front = Center.Z + Depth/2.
//   - Rect2A: a 2D rectangle anchored at its top-left corner with edge and
//     center getters only.
//
// ✨ Boundaries:
//
//   - Box2A treats touching edges as separated: two boxes that share only an
//     edge do not intersect.
//   - Box3A treats touching faces as overlapping: boxes are separated only by
//     a strictly positive gap.
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/vecmath/bounds"
//
//	screen := bounds.Box2AFromTopLeftOrigin(800, 600)
//	world := bounds.Box2AFromCenterOrigin(2, 1.5)
//	px := world.Project(linalg.Point2{X: 0.5, Y: -0.25}, screen) // (600, 200)
//
// Zero-extent boxes are not rejected. Projecting out of a box with zero width
// or height divides by zero and yields ±Inf/NaN coordinates.
package bounds
