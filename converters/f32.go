// SPDX-License-Identifier: MIT

package converters

import (
	"github.com/katalvlaran/vecmath/linalg"
	"golang.org/x/image/math/f32"
)

// ToF32Vec2 narrows v to float32.
func ToF32Vec2(v linalg.Vec2) f32.Vec2 { return f32.Vec2{float32(v.X), float32(v.Y)} }

// FromF32Vec2 widens v to float64.
func FromF32Vec2(v f32.Vec2) linalg.Vec2 {
	return linalg.Vec2{X: float64(v[0]), Y: float64(v[1])}
}

// ToF32Vec3 narrows v to float32.
func ToF32Vec3(v linalg.Vec3) f32.Vec3 {
	return f32.Vec3{float32(v.X), float32(v.Y), float32(v.Z)}
}

// FromF32Vec3 widens v to float64.
func FromF32Vec3(v f32.Vec3) linalg.Vec3 {
	return linalg.Vec3{X: float64(v[0]), Y: float64(v[1]), Z: float64(v[2])}
}

// ToF32Mat3 narrows m to a row-major f32.Mat3 (m[3*r + c] is row r, column c).
func ToF32Mat3(m linalg.Matrix3) f32.Mat3 {
	var out f32.Mat3
	for i, e := range m.Components() {
		out[i] = float32(e)
	}

	return out
}

// FromF32Mat3 widens a row-major f32.Mat3.
func FromF32Mat3(m f32.Mat3) linalg.Matrix3 {
	return linalg.NewMatrix3(
		float64(m[0]), float64(m[1]), float64(m[2]),
		float64(m[3]), float64(m[4]), float64(m[5]),
		float64(m[6]), float64(m[7]), float64(m[8]),
	)
}
