// SPDX-License-Identifier: MIT
// Package approx provides tolerance-based equality for floats and for any
// value that exposes its numeric components.
//
// Purpose:
//   - Keep exact equality (Equals, IsZero) in the value types and put the
//     "close enough" comparison in one place, used mostly by tests.
//   - Offer a testify-compatible assertion that reports a readable diff.
//
// Numeric policy:
//   - |a − b| <= eps counts as equal (inclusive).
//   - Identical infinities are equal; NaN is never equal to anything.
package approx

import (
	"math"

	"github.com/stretchr/testify/assert"
	"golang.org/x/exp/constraints"
)

// Componentwise is implemented by vectors, points, matrices and boxes:
// Components returns a flat, stable-ordered view of the numeric fields.
type Componentwise interface {
	Components() []float64
}

// Equal reports whether a and b differ by at most eps.
func Equal[T constraints.Float](a, b T, opts ...Option) bool {
	o := gatherOptions(opts...)

	return withinEps(float64(a), float64(b), o.eps)
}

// EqualSlices reports whether a and b have the same length and are Equal
// entry by entry.
//
// Complexity:
//   - Time O(n), Space O(1).
func EqualSlices[T constraints.Float](a, b []T, opts ...Option) bool {
	if len(a) != len(b) {
		return false
	}
	o := gatherOptions(opts...)
	for i := range a {
		if !withinEps(float64(a[i]), float64(b[i]), o.eps) {
			return false
		}
	}

	return true
}

// Close reports whether two Componentwise values are EqualSlices.
func Close(a, b Componentwise, opts ...Option) bool {
	return EqualSlices(a.Components(), b.Components(), opts...)
}

// tHelper mirrors testify's helper detection.
type tHelper interface {
	Helper()
}

// AssertClose asserts that actual is Close to expected. On failure it falls
// back to assert.Equal so the report carries testify's field-by-field diff.
func AssertClose(t assert.TestingT, expected, actual Componentwise, opts ...Option) bool {
	if h, ok := t.(tHelper); ok {
		h.Helper()
	}
	if Close(expected, actual, opts...) {
		return true
	}

	return assert.Equal(t, expected, actual, "values differ beyond tolerance")
}

// AssertEqual is AssertClose for scalars.
func AssertEqual(t assert.TestingT, expected, actual float64, opts ...Option) bool {
	if h, ok := t.(tHelper); ok {
		h.Helper()
	}
	if Equal(expected, actual, opts...) {
		return true
	}

	return assert.Equal(t, expected, actual, "values differ beyond tolerance")
}

func withinEps(a, b, eps float64) bool {
	if a == b {
		return true // covers matching infinities
	}

	return math.Abs(a-b) <= eps
}
