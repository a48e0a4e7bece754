// SPDX-License-Identifier: MIT

package converters

import (
	"errors"
	"fmt"
)

// ErrShape is returned when a gonum matrix does not have the dimensions of
// the requested linalg matrix.
var ErrShape = errors.New("converters: matrix shape mismatch")

const (
	opMatrix2FromMat = "Matrix2FromMat"
	opMatrix3FromMat = "Matrix3FromMat"
)

// shapeErrorf reports the offending dimensions alongside ErrShape.
func shapeErrorf(tag string, rows, cols, wantRows, wantCols int) error {
	return fmt.Errorf("%s: %dx%d, want %dx%d: %w", tag, rows, cols, wantRows, wantCols, ErrShape)
}
