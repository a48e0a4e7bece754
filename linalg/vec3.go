// SPDX-License-Identifier: MIT

package linalg

import "math"

// Vec3 is a displacement or direction in 3 dimensions.
// The zero value is the zero vector.
type Vec3 struct {
	X, Y, Z float64
}

// Vec3FromSpherical builds a vector from spherical coordinates.
//
// Implementation:
//   - Inclination is measured from the +Y axis (colatitude), azimuth around Y
//     starting at +X towards +Z:
//     x = r·cos(az)·sin(incl), y = r·cos(incl), z = r·sin(az)·sin(incl).
//
// Notes:
//   - Azimuth and Inclination invert this mapping for az in [0, 2π) and
//     incl in (0, π). At the poles (incl = 0 or π) the azimuth is lost.
func Vec3FromSpherical(radius, azimuth, inclination float64) Vec3 {
	sinIncl := math.Sin(inclination)

	return Vec3{
		X: radius * math.Cos(azimuth) * sinIncl,
		Y: radius * math.Cos(inclination),
		Z: radius * math.Sin(azimuth) * sinIncl,
	}
}

// Size is the number of components (3).
func (v Vec3) Size() int { return 3 }

// Array returns the components as [x, y, z].
func (v Vec3) Array() [3]float64 { return [3]float64{v.X, v.Y, v.Z} }

// Components returns the components as a fresh slice.
func (v Vec3) Components() []float64 { return []float64{v.X, v.Y, v.Z} }

// MagnitudeSquared is v·v.
func (v Vec3) MagnitudeSquared() float64 { return v.Dot(v) }

// Magnitude is the length of the vector.
func (v Vec3) Magnitude() float64 { return math.Sqrt(v.MagnitudeSquared()) }

// Radius is the spherical radius, identical to Magnitude.
func (v Vec3) Radius() float64 { return v.Magnitude() }

// Azimuth is the angle around the Y axis from +X towards +Z, in [0, 2π).
func (v Vec3) Azimuth() float64 {
	az := math.Atan2(v.Z, v.X)
	if az < 0 {
		az += 2 * math.Pi
	}

	return az
}

// Inclination is the angle from the +Y axis, in [0, π].
// NaN for the zero vector.
func (v Vec3) Inclination() float64 {
	// rounding can push |y/r| just past 1
	ratio := math.Max(-1, math.Min(1, v.Y/v.Magnitude()))

	return math.Acos(ratio)
}

// Unit returns v scaled to magnitude 1.
// The unit of the zero vector has NaN components.
func (v Vec3) Unit() Vec3 { return v.Scale(1 / v.Magnitude()) }

// IsZero reports whether all components are exactly 0.
func (v Vec3) IsZero() bool { return v.X == 0 && v.Y == 0 && v.Z == 0 }

// Equals reports exact componentwise equality.
func (v Vec3) Equals(other Vec3) bool {
	return v.X == other.X && v.Y == other.Y && v.Z == other.Z
}

// Dot returns the sum of the componentwise products.
func (v Vec3) Dot(other Vec3) float64 { return v.X*other.X + v.Y*other.Y + v.Z*other.Z }

// Cross returns the right-handed cross product v × other.
func (v Vec3) Cross(other Vec3) Vec3 {
	return Vec3{
		X: v.Y*other.Z - v.Z*other.Y,
		Y: v.Z*other.X - v.X*other.Z,
		Z: v.X*other.Y - v.Y*other.X,
	}
}

// IsOrthogonalTo reports whether v·other is exactly 0.
func (v Vec3) IsOrthogonalTo(other Vec3) bool { return v.Dot(other) == 0 }

// IsParallelTo reports whether v × other is exactly the zero vector.
func (v Vec3) IsParallelTo(other Vec3) bool { return v.Cross(other).IsZero() }

// Scale returns v with each component multiplied by scalar.
func (v Vec3) Scale(scalar float64) Vec3 {
	return Vec3{X: v.X * scalar, Y: v.Y * scalar, Z: v.Z * scalar}
}

// Add returns v + other.
func (v Vec3) Add(other Vec3) Vec3 {
	return Vec3{X: v.X + other.X, Y: v.Y + other.Y, Z: v.Z + other.Z}
}

// Subtract returns v - other.
func (v Vec3) Subtract(other Vec3) Vec3 {
	return Vec3{X: v.X - other.X, Y: v.Y - other.Y, Z: v.Z - other.Z}
}

// Multiply returns M·v.
func (v Vec3) Multiply(m Matrix3) Vec3 {
	return Vec3{
		X: m.R0C0*v.X + m.R0C1*v.Y + m.R0C2*v.Z,
		Y: m.R1C0*v.X + m.R1C1*v.Y + m.R1C2*v.Z,
		Z: m.R2C0*v.X + m.R2C1*v.Y + m.R2C2*v.Z,
	}
}

// ProjectOnto returns the component of v along other.
// NaN when other is the zero vector.
func (v Vec3) ProjectOnto(other Vec3) Vec3 {
	return other.Scale(v.Dot(other) / other.Dot(other))
}

// RejectFrom returns the component of v perpendicular to other.
func (v Vec3) RejectFrom(other Vec3) Vec3 { return v.Subtract(v.ProjectOnto(other)) }

// ClampMagnitude returns v shortened to limit when it is longer than limit,
// otherwise an unchanged copy.
func (v Vec3) ClampMagnitude(limit float64) Vec3 {
	if v.MagnitudeSquared() > limit*limit {
		return v.Unit().Scale(limit)
	}

	return v
}

// Set overwrites all components and returns v.
func (v *Vec3) Set(x, y, z float64) *Vec3 {
	v.X, v.Y, v.Z = x, y, z

	return v
}

// SetFrom copies other into v and returns v.
func (v *Vec3) SetFrom(other Vec3) *Vec3 { return v.Set(other.X, other.Y, other.Z) }

// ScaleMut multiplies v by scalar in place.
func (v *Vec3) ScaleMut(scalar float64) *Vec3 {
	return v.Set(v.X*scalar, v.Y*scalar, v.Z*scalar)
}

// AddMut adds other to v in place.
func (v *Vec3) AddMut(other Vec3) *Vec3 {
	return v.Set(v.X+other.X, v.Y+other.Y, v.Z+other.Z)
}

// SubtractMut subtracts other from v in place.
func (v *Vec3) SubtractMut(other Vec3) *Vec3 {
	return v.Set(v.X-other.X, v.Y-other.Y, v.Z-other.Z)
}

// CrossMut replaces v with v × other.
func (v *Vec3) CrossMut(other Vec3) *Vec3 { return v.SetFrom(v.Cross(other)) }

// MultiplyMut replaces v with M·v.
func (v *Vec3) MultiplyMut(m Matrix3) *Vec3 { return v.SetFrom(v.Multiply(m)) }

// ProjectOntoMut replaces v with its projection onto other.
func (v *Vec3) ProjectOntoMut(other Vec3) *Vec3 { return v.SetFrom(v.ProjectOnto(other)) }

// RejectFromMut replaces v with its rejection from other.
func (v *Vec3) RejectFromMut(other Vec3) *Vec3 { return v.SubtractMut(v.ProjectOnto(other)) }

// ClampMagnitudeMut shortens v to limit in place when it is longer than limit.
func (v *Vec3) ClampMagnitudeMut(limit float64) *Vec3 { return v.SetFrom(v.ClampMagnitude(limit)) }
