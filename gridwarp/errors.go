// SPDX-License-Identifier: MIT

package gridwarp

import (
	"errors"
	"fmt"
)

var (
	// ErrBadConfig is returned when a Config field is out of range.
	ErrBadConfig = errors.New("gridwarp: invalid configuration")

	// ErrUnknownFormat is returned for an output format that has no encoder.
	ErrUnknownFormat = errors.New("gridwarp: unknown image format")
)

// Operation tags for uniform error wrapping.
const (
	opValidate = "Validate"
	opLoadYAML = "LoadYAML"
	opLoadFile = "LoadFile"
	opEncode   = "Encode"
	opFormat   = "FormatFromPath"
)

// gridwarpErrorf wraps err with an operation tag, preserving it for errors.Is.
func gridwarpErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// badField reports which field failed validation.
func badField(field, format string, args ...any) error {
	return fmt.Errorf("%s: %s %s: %w", opValidate, field, fmt.Sprintf(format, args...), ErrBadConfig)
}
