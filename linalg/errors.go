// SPDX-License-Identifier: MIT
// Package linalg: sentinel error set.
// Numeric kernels never return errors: degenerate input propagates as NaN/Inf.
// Errors exist only for slice-shaped construction paths, where the caller can
// hand us the wrong number of entries.

package linalg

import (
	"errors"
	"fmt"
)

var (
	// ErrEntryCount is returned when a variadic/slice constructor receives a
	// number of entries different from the matrix or vector size.
	ErrEntryCount = errors.New("linalg: wrong number of entries")
)

// Operation tags for uniform error wrapping.
const (
	opMatrix2FromEntries = "Matrix2FromEntries"
	opMatrix3FromEntries = "Matrix3FromEntries"
)

// linalgErrorf wraps err with an operation tag, preserving it for errors.Is.
func linalgErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
