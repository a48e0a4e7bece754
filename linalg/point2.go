// SPDX-License-Identifier: MIT

package linalg

// Point2 is an absolute position in 2 dimensions.
// The zero value is the origin.
//
// A point offers the vector capability set (see Vector) with Vec2 operands:
// point ± vector → point. There is no point − point; use DistanceTo, or
// Vec() when a displacement from the origin is needed.
type Point2 struct {
	X, Y float64
}

// Clone returns a copy of p.
func (p Point2) Clone() Point2 { return p }

// Vec returns the displacement of p from the origin.
func (p Point2) Vec() Vec2 { return Vec2{X: p.X, Y: p.Y} }

// Size is the number of components (2).
func (p Point2) Size() int { return 2 }

// Array returns the coordinates as [x, y].
func (p Point2) Array() [2]float64 { return p.Vec().Array() }

// Components returns the coordinates as a fresh slice.
func (p Point2) Components() []float64 { return p.Vec().Components() }

// MagnitudeSquared is the squared distance from the origin.
func (p Point2) MagnitudeSquared() float64 { return p.Vec().MagnitudeSquared() }

// Magnitude is the distance from the origin.
func (p Point2) Magnitude() float64 { return p.Vec().Magnitude() }

// Unit returns the point at distance 1 from the origin in p's direction.
func (p Point2) Unit() Point2 { return p.Scale(1 / p.Magnitude()) }

// IsZero reports whether p is exactly the origin.
func (p Point2) IsZero() bool { return p.X == 0 && p.Y == 0 }

// Equals reports exact coordinate equality.
func (p Point2) Equals(other Point2) bool { return p.X == other.X && p.Y == other.Y }

// Dot treats p as a vector from the origin and returns p·v.
func (p Point2) Dot(v Vec2) float64 { return p.Vec().Dot(v) }

// Scale scales p about the origin.
func (p Point2) Scale(scalar float64) Point2 { return Point2{X: p.X * scalar, Y: p.Y * scalar} }

// Add returns p moved by v.
func (p Point2) Add(v Vec2) Point2 { return Point2{X: p.X + v.X, Y: p.Y + v.Y} }

// Subtract returns p moved by -v.
func (p Point2) Subtract(v Vec2) Point2 { return Point2{X: p.X - v.X, Y: p.Y - v.Y} }

// Multiply applies m as a linear map to p (no translation).
func (p Point2) Multiply(m Matrix2) Point2 {
	v := p.Vec().Multiply(m)

	return Point2{X: v.X, Y: v.Y}
}

// DistanceToSquared is the squared length of the displacement from p to other.
func (p Point2) DistanceToSquared(other Point2) float64 {
	return other.Vec().Subtract(p.Vec()).MagnitudeSquared()
}

// DistanceTo is the length of the displacement from p to other.
func (p Point2) DistanceTo(other Point2) float64 {
	return other.Vec().Subtract(p.Vec()).Magnitude()
}

// IsNearWithin reports whether other lies within distance of p, boundary included.
func (p Point2) IsNearWithin(other Point2, distance float64) bool {
	return p.DistanceToSquared(other) <= distance*distance
}

// Set overwrites both coordinates and returns p.
func (p *Point2) Set(x, y float64) *Point2 {
	p.X, p.Y = x, y

	return p
}

// ScaleMut scales p about the origin in place.
func (p *Point2) ScaleMut(scalar float64) *Point2 { return p.Set(p.X*scalar, p.Y*scalar) }

// AddMut moves p by v in place.
func (p *Point2) AddMut(v Vec2) *Point2 { return p.Set(p.X+v.X, p.Y+v.Y) }

// SubtractMut moves p by -v in place.
func (p *Point2) SubtractMut(v Vec2) *Point2 { return p.Set(p.X-v.X, p.Y-v.Y) }

// MultiplyMut applies m to p in place.
func (p *Point2) MultiplyMut(m Matrix2) *Point2 {
	*p = p.Multiply(m)

	return p
}

// SetFrom copies other into p and returns p.
func (p *Point2) SetFrom(other Point2) *Point2 { return p.Set(other.X, other.Y) }

// Cross treats p as a vector from the origin and returns the scalar p × v.
func (p Point2) Cross(v Vec2) float64 { return p.Vec().Cross(v) }

// IsOrthogonalTo reports whether p, as a vector from the origin, is
// orthogonal to v.
func (p Point2) IsOrthogonalTo(v Vec2) bool { return p.Vec().IsOrthogonalTo(v) }

// ProjectOnto returns the point whose position vector is the projection of
// p's position vector onto v.
func (p Point2) ProjectOnto(v Vec2) Point2 { return Point2(p.Vec().ProjectOnto(v)) }

// RejectFrom returns the point whose position vector is the rejection of
// p's position vector from v.
func (p Point2) RejectFrom(v Vec2) Point2 { return Point2(p.Vec().RejectFrom(v)) }

// ClampMagnitude pulls p towards the origin until it is at most limit away.
func (p Point2) ClampMagnitude(limit float64) Point2 {
	return Point2(p.Vec().ClampMagnitude(limit))
}

// ProjectOntoMut replaces p with p.ProjectOnto(v).
func (p *Point2) ProjectOntoMut(v Vec2) *Point2 { return p.SetFrom(p.ProjectOnto(v)) }

// RejectFromMut replaces p with p.RejectFrom(v).
func (p *Point2) RejectFromMut(v Vec2) *Point2 { return p.SetFrom(p.RejectFrom(v)) }

// ClampMagnitudeMut replaces p with p.ClampMagnitude(limit).
func (p *Point2) ClampMagnitudeMut(limit float64) *Point2 {
	return p.SetFrom(p.ClampMagnitude(limit))
}
