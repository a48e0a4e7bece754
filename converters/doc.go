// Package converters provides two-way adapters between linalg value types
// and popular Go numeric libraries:
//   - gonum.org/v1/gonum/spatial/r2 and r3 (float64 vectors)
//   - gonum.org/v1/gonum/mat (dense matrices)
//   - golang.org/x/image/math/f32 (float32 vectors and row-major matrices)
//
// Use converters to hand vectors and matrices to gonum solvers or to
// float32 graphics code and to bring the results back.
//
// Conversions to float32 round each component to the nearest float32.
// Conversions from gonum matrices check the shape and return ErrShape.
package converters
