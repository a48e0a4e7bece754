// SPDX-License-Identifier: MIT

package linalg

import "math"

// Vec2 is a displacement or direction in 2 dimensions.
// The zero value is the zero vector.
type Vec2 struct {
	X, Y float64
}

// Size is the number of components (2).
func (v Vec2) Size() int { return 2 }

// Array returns the components as [x, y].
func (v Vec2) Array() [2]float64 { return [2]float64{v.X, v.Y} }

// Components returns the components as a fresh slice.
func (v Vec2) Components() []float64 { return []float64{v.X, v.Y} }

// MagnitudeSquared is v·v.
func (v Vec2) MagnitudeSquared() float64 { return v.Dot(v) }

// Magnitude is the length of the vector.
func (v Vec2) Magnitude() float64 { return math.Sqrt(v.MagnitudeSquared()) }

// Unit returns v scaled to magnitude 1.
// The unit of the zero vector has NaN components.
func (v Vec2) Unit() Vec2 { return v.Scale(1 / v.Magnitude()) }

// IsZero reports whether both components are exactly 0.
func (v Vec2) IsZero() bool { return v.X == 0 && v.Y == 0 }

// Equals reports exact componentwise equality.
func (v Vec2) Equals(other Vec2) bool { return v.X == other.X && v.Y == other.Y }

// Dot returns the sum of the componentwise products.
func (v Vec2) Dot(other Vec2) float64 { return v.X*other.X + v.Y*other.Y }

// Cross is the z component of the 3D cross product of (v, 0) and (other, 0):
// v.X·other.Y − v.Y·other.X. Positive when other is counter-clockwise of v.
func (v Vec2) Cross(other Vec2) float64 { return v.X*other.Y - v.Y*other.X }

// IsOrthogonalTo reports whether v·other is exactly 0.
func (v Vec2) IsOrthogonalTo(other Vec2) bool { return v.Dot(other) == 0 }

// Scale returns v with each component multiplied by scalar.
func (v Vec2) Scale(scalar float64) Vec2 { return Vec2{X: v.X * scalar, Y: v.Y * scalar} }

// Add returns v + other.
func (v Vec2) Add(other Vec2) Vec2 { return Vec2{X: v.X + other.X, Y: v.Y + other.Y} }

// Subtract returns v - other.
func (v Vec2) Subtract(other Vec2) Vec2 { return Vec2{X: v.X - other.X, Y: v.Y - other.Y} }

// Multiply returns M·v, the linear combination of m's columns weighted by v.
func (v Vec2) Multiply(m Matrix2) Vec2 {
	return Vec2{
		X: m.R0C0*v.X + m.R0C1*v.Y,
		Y: m.R1C0*v.X + m.R1C1*v.Y,
	}
}

// ProjectOnto returns the component of v along other:
// other scaled by (v·other)/(other·other). NaN when other is the zero vector.
func (v Vec2) ProjectOnto(other Vec2) Vec2 {
	return other.Scale(v.Dot(other) / other.Dot(other))
}

// RejectFrom returns the component of v perpendicular to other.
func (v Vec2) RejectFrom(other Vec2) Vec2 { return v.Subtract(v.ProjectOnto(other)) }

// ClampMagnitude returns v shortened to limit when it is longer than limit,
// otherwise an unchanged copy.
func (v Vec2) ClampMagnitude(limit float64) Vec2 {
	if v.MagnitudeSquared() > limit*limit {
		return v.Unit().Scale(limit)
	}

	return v
}

// Set overwrites both components and returns v.
func (v *Vec2) Set(x, y float64) *Vec2 {
	v.X, v.Y = x, y

	return v
}

// SetFrom copies other into v and returns v.
func (v *Vec2) SetFrom(other Vec2) *Vec2 { return v.Set(other.X, other.Y) }

// ScaleMut multiplies v by scalar in place.
func (v *Vec2) ScaleMut(scalar float64) *Vec2 { return v.Set(v.X*scalar, v.Y*scalar) }

// AddMut adds other to v in place.
func (v *Vec2) AddMut(other Vec2) *Vec2 { return v.Set(v.X+other.X, v.Y+other.Y) }

// SubtractMut subtracts other from v in place.
func (v *Vec2) SubtractMut(other Vec2) *Vec2 { return v.Set(v.X-other.X, v.Y-other.Y) }

// MultiplyMut replaces v with M·v.
// Both components are computed from the old v before assignment.
func (v *Vec2) MultiplyMut(m Matrix2) *Vec2 { return v.SetFrom(v.Multiply(m)) }

// ProjectOntoMut replaces v with its projection onto other.
func (v *Vec2) ProjectOntoMut(other Vec2) *Vec2 { return v.SetFrom(v.ProjectOnto(other)) }

// RejectFromMut replaces v with its rejection from other.
func (v *Vec2) RejectFromMut(other Vec2) *Vec2 { return v.SubtractMut(v.ProjectOnto(other)) }

// ClampMagnitudeMut shortens v to limit in place when it is longer than limit.
func (v *Vec2) ClampMagnitudeMut(limit float64) *Vec2 { return v.SetFrom(v.ClampMagnitude(limit)) }
