// SPDX-License-Identifier: MIT

package linalg

import "math"

// RadiansToDegrees converts radians (0..2π) to degrees (0..360).
func RadiansToDegrees(radians float64) float64 { return radians * (180 / math.Pi) }

// DegreesToRadians converts degrees (0..360) to radians (0..2π).
func DegreesToRadians(degrees float64) float64 { return degrees / (180 / math.Pi) }
