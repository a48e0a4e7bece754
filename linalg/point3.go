// SPDX-License-Identifier: MIT

package linalg

// Point3 is an absolute position in 3 dimensions.
// The zero value is the origin. See Point2 for the point/vector contract.
type Point3 struct {
	X, Y, Z float64
}

// Clone returns a copy of p.
func (p Point3) Clone() Point3 { return p }

// Vec returns the displacement of p from the origin.
func (p Point3) Vec() Vec3 { return Vec3{X: p.X, Y: p.Y, Z: p.Z} }

// Size is the number of components (3).
func (p Point3) Size() int { return 3 }

// Array returns the coordinates as [x, y, z].
func (p Point3) Array() [3]float64 { return p.Vec().Array() }

// Components returns the coordinates as a fresh slice.
func (p Point3) Components() []float64 { return p.Vec().Components() }

// MagnitudeSquared is the squared distance from the origin.
func (p Point3) MagnitudeSquared() float64 { return p.Vec().MagnitudeSquared() }

// Magnitude is the distance from the origin.
func (p Point3) Magnitude() float64 { return p.Vec().Magnitude() }

// Unit returns the point at distance 1 from the origin in p's direction.
func (p Point3) Unit() Point3 { return p.Scale(1 / p.Magnitude()) }

// IsZero reports whether p is exactly the origin.
func (p Point3) IsZero() bool { return p.X == 0 && p.Y == 0 && p.Z == 0 }

// Equals reports exact coordinate equality.
func (p Point3) Equals(other Point3) bool {
	return p.X == other.X && p.Y == other.Y && p.Z == other.Z
}

// Dot treats p as a vector from the origin and returns p·v.
func (p Point3) Dot(v Vec3) float64 { return p.Vec().Dot(v) }

// Scale scales p about the origin.
func (p Point3) Scale(scalar float64) Point3 {
	return Point3{X: p.X * scalar, Y: p.Y * scalar, Z: p.Z * scalar}
}

// Add returns p moved by v.
func (p Point3) Add(v Vec3) Point3 { return Point3{X: p.X + v.X, Y: p.Y + v.Y, Z: p.Z + v.Z} }

// Subtract returns p moved by -v.
func (p Point3) Subtract(v Vec3) Point3 { return Point3{X: p.X - v.X, Y: p.Y - v.Y, Z: p.Z - v.Z} }

// Multiply applies m as a linear map to p (no translation).
func (p Point3) Multiply(m Matrix3) Point3 {
	v := p.Vec().Multiply(m)

	return Point3{X: v.X, Y: v.Y, Z: v.Z}
}

// DistanceToSquared is the squared length of the displacement from p to other.
func (p Point3) DistanceToSquared(other Point3) float64 {
	return other.Vec().Subtract(p.Vec()).MagnitudeSquared()
}

// DistanceTo is the length of the displacement from p to other.
func (p Point3) DistanceTo(other Point3) float64 {
	return other.Vec().Subtract(p.Vec()).Magnitude()
}

// IsNearWithin reports whether other lies within distance of p, boundary included.
func (p Point3) IsNearWithin(other Point3, distance float64) bool {
	return p.DistanceToSquared(other) <= distance*distance
}

// Set overwrites all coordinates and returns p.
func (p *Point3) Set(x, y, z float64) *Point3 {
	p.X, p.Y, p.Z = x, y, z

	return p
}

// ScaleMut scales p about the origin in place.
func (p *Point3) ScaleMut(scalar float64) *Point3 {
	return p.Set(p.X*scalar, p.Y*scalar, p.Z*scalar)
}

// AddMut moves p by v in place.
func (p *Point3) AddMut(v Vec3) *Point3 { return p.Set(p.X+v.X, p.Y+v.Y, p.Z+v.Z) }

// SubtractMut moves p by -v in place.
func (p *Point3) SubtractMut(v Vec3) *Point3 { return p.Set(p.X-v.X, p.Y-v.Y, p.Z-v.Z) }

// MultiplyMut applies m to p in place.
func (p *Point3) MultiplyMut(m Matrix3) *Point3 {
	*p = p.Multiply(m)

	return p
}

// SetFrom copies other into p and returns p.
func (p *Point3) SetFrom(other Point3) *Point3 { return p.Set(other.X, other.Y, other.Z) }

// Radius is Magnitude, named for spherical readback.
func (p Point3) Radius() float64 { return p.Magnitude() }

// Azimuth of p's position vector, see Vec3.Azimuth.
func (p Point3) Azimuth() float64 { return p.Vec().Azimuth() }

// Inclination of p's position vector, see Vec3.Inclination.
func (p Point3) Inclination() float64 { return p.Vec().Inclination() }

// Cross returns the point whose position vector is p × v.
func (p Point3) Cross(v Vec3) Point3 { return Point3(p.Vec().Cross(v)) }

// IsOrthogonalTo reports whether p, as a vector from the origin, is
// orthogonal to v.
func (p Point3) IsOrthogonalTo(v Vec3) bool { return p.Vec().IsOrthogonalTo(v) }

// IsParallelTo reports whether p, as a vector from the origin, is parallel
// to v.
func (p Point3) IsParallelTo(v Vec3) bool { return p.Vec().IsParallelTo(v) }

// ProjectOnto returns the point whose position vector is the projection of
// p's position vector onto v.
func (p Point3) ProjectOnto(v Vec3) Point3 { return Point3(p.Vec().ProjectOnto(v)) }

// RejectFrom returns the point whose position vector is the rejection of
// p's position vector from v.
func (p Point3) RejectFrom(v Vec3) Point3 { return Point3(p.Vec().RejectFrom(v)) }

// ClampMagnitude pulls p towards the origin until it is at most limit away.
func (p Point3) ClampMagnitude(limit float64) Point3 {
	return Point3(p.Vec().ClampMagnitude(limit))
}

// CrossMut replaces p with p.Cross(v).
func (p *Point3) CrossMut(v Vec3) *Point3 { return p.SetFrom(p.Cross(v)) }

// ProjectOntoMut replaces p with p.ProjectOnto(v).
func (p *Point3) ProjectOntoMut(v Vec3) *Point3 { return p.SetFrom(p.ProjectOnto(v)) }

// RejectFromMut replaces p with p.RejectFrom(v).
func (p *Point3) RejectFromMut(v Vec3) *Point3 { return p.SetFrom(p.RejectFrom(v)) }

// ClampMagnitudeMut replaces p with p.ClampMagnitude(limit).
func (p *Point3) ClampMagnitudeMut(limit float64) *Point3 {
	return p.SetFrom(p.ClampMagnitude(limit))
}
