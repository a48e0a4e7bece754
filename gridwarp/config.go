// SPDX-License-Identifier: MIT

package gridwarp

import (
	"errors"
	"image/color"
	"io"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/katalvlaran/vecmath/linalg"
	"golang.org/x/image/colornames"
	"gopkg.in/yaml.v3"
)

// Config describes one render. Zero values are invalid; start from
// DefaultConfig and override.
type Config struct {
	Width    int `yaml:"width"`
	Height   int `yaml:"height"`
	CellSize int `yaml:"cell_size"`

	// Matrix holds the four row-major entries r0c0, r0c1, r1c0, r1c1.
	Matrix []float64 `yaml:"matrix"`

	// Background and Stroke are "#rrggbb", "#rgb" or an SVG colour name.
	Background  string  `yaml:"background"`
	Stroke      string  `yaml:"stroke"`
	StrokeWidth float64 `yaml:"stroke_width"`
}

// Defaults.
const (
	DefaultWidth       = 800
	DefaultHeight      = 600
	DefaultCellSize    = 10
	DefaultBackground  = "#000000"
	DefaultStroke      = "#ffffff"
	DefaultStrokeWidth = 1.0
)

// Limits enforced by Validate.
const (
	// MaxDimension bounds Width and Height.
	MaxDimension = 1 << 15
	// MaxCells bounds the number of grid sample points, two segments each.
	MaxCells = 1 << 21
)

// DefaultConfig returns an 800x600 identity grid, white on black.
func DefaultConfig() Config {
	return Config{
		Width:       DefaultWidth,
		Height:      DefaultHeight,
		CellSize:    DefaultCellSize,
		Matrix:      []float64{1, 0, 0, 1},
		Background:  DefaultBackground,
		Stroke:      DefaultStroke,
		StrokeWidth: DefaultStrokeWidth,
	}
}

// LoadYAML decodes a Config from r on top of DefaultConfig, so omitted keys
// keep their defaults. Unknown keys are rejected. An empty document yields
// DefaultConfig. The result is validated.
func LoadYAML(r io.Reader) (Config, error) {
	c := DefaultConfig()
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&c); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, gridwarpErrorf(opLoadYAML, err)
	}
	if err := c.Validate(); err != nil {
		return Config{}, err
	}

	return c, nil
}

// LoadFile opens path and calls LoadYAML.
func LoadFile(path string) (Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return Config{}, gridwarpErrorf(opLoadFile, err)
	}
	defer f.Close()

	return LoadYAML(f)
}

// Transform builds the grid matrix. A Matrix without exactly four entries
// returns linalg.ErrEntryCount.
func (c Config) Transform() (linalg.Matrix2, error) {
	return linalg.Matrix2FromEntries(c.Matrix...)
}

// Validate checks every field and returns ErrBadConfig naming the first
// offending one.
func (c Config) Validate() error {
	switch {
	case c.Width <= 0 || c.Width > MaxDimension:
		return badField("width", "must be in [1, %d], got %d", MaxDimension, c.Width)
	case c.Height <= 0 || c.Height > MaxDimension:
		return badField("height", "must be in [1, %d], got %d", MaxDimension, c.Height)
	case c.CellSize <= 0:
		return badField("cell_size", "must be positive, got %d", c.CellSize)
	case int64(c.Width/c.CellSize+1)*int64(c.Height/c.CellSize+1) > MaxCells:
		return badField("cell_size", "%d gives more than %d cells on a %dx%d canvas",
			c.CellSize, MaxCells, c.Width, c.Height)
	case !(c.StrokeWidth > 0) || math.IsInf(c.StrokeWidth, 0):
		return badField("stroke_width", "must be positive and finite, got %v", c.StrokeWidth)
	}

	if _, err := c.Transform(); err != nil {
		return badField("matrix", "needs 4 entries, got %d", len(c.Matrix))
	}
	for i, e := range c.Matrix {
		if math.IsNaN(e) || math.IsInf(e, 0) {
			return badField("matrix", "entry %d is not finite", i)
		}
	}

	if _, err := ParseColor(c.Background); err != nil {
		return badField("background", "%q", c.Background)
	}
	if _, err := ParseColor(c.Stroke); err != nil {
		return badField("stroke", "%q", c.Stroke)
	}

	return nil
}

// ParseColor accepts "#rrggbb", "#rgb" or a lower-case SVG 1.1 colour name
// ("black", "cornflowerblue"). The result is opaque.
func ParseColor(s string) (color.RGBA, error) {
	if named, ok := colornames.Map[strings.ToLower(s)]; ok {
		return named, nil
	}
	hex, ok := strings.CutPrefix(s, "#")
	if !ok {
		return color.RGBA{}, ErrBadConfig
	}
	if len(hex) == 3 {
		hex = string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]})
	}
	if len(hex) != 6 {
		return color.RGBA{}, ErrBadConfig
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return color.RGBA{}, ErrBadConfig
	}

	return color.RGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 0xff}, nil
}
