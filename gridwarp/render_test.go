package gridwarp_test

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"testing"

	"github.com/katalvlaran/vecmath/gridwarp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
	"golang.org/x/image/bmp"
	"golang.org/x/image/colornames"
	"golang.org/x/image/tiff"
)

// gridConfig is a 40x30 identity grid with a 2px stroke, so every line
// covers two whole pixel columns or rows.
func gridConfig() gridwarp.Config {
	cfg := smallConfig(1, 0, 0, 1)
	cfg.Width, cfg.Height = 40, 30
	cfg.StrokeWidth = 2

	return cfg
}

func TestRender_Identity(t *testing.T) {
	img, err := gridwarp.Render(gridConfig())
	require.NoError(t, err)
	assert.Equal(t, image.Rect(0, 0, 40, 30), img.Bounds())

	black := color.RGBA{A: 0xff}
	assert.Equal(t, black, img.RGBAAt(15, 15), "cell interior is background")
	assert.Equal(t, black, img.RGBAAt(35, 25))

	for _, p := range []image.Point{{10, 15}, {9, 15}, {15, 10}, {30, 5}} {
		c := img.RGBAAt(p.X, p.Y)
		assert.Greater(t, c.R, uint8(200), "grid line at %v", p)
		assert.Equal(t, uint8(0xff), c.A)
	}
}

func TestRender_Colours(t *testing.T) {
	cfg := gridConfig()
	cfg.Background = "navy"
	cfg.Stroke = "#ff0000"

	img, err := gridwarp.Render(cfg)
	require.NoError(t, err)
	assert.Equal(t, colornames.Navy, img.RGBAAt(15, 15))

	line := img.RGBAAt(10, 15)
	assert.Greater(t, line.R, uint8(200))
	assert.Less(t, line.B, uint8(50))
}

func TestRender_InvalidConfig(t *testing.T) {
	cfg := gridConfig()
	cfg.Stroke = "chartreuse-ish"
	img, err := gridwarp.Render(cfg)
	assert.ErrorIs(t, err, gridwarp.ErrBadConfig)
	assert.Nil(t, img)
}

func TestRasterize_Stats(t *testing.T) {
	dst := image.NewRGBA(image.Rect(0, 0, 20, 20))
	segs := []gridwarp.Segment{
		seg(nan(), 0, 5, 5),
		seg(5, 5, 5, 5),
		seg(100, 100, 120, 100),
		seg(2, 10, 18, 10),
	}

	stats := gridwarp.Rasterize(dst, segs, color.White, 1)
	assert.Equal(t, gridwarp.RasterStats{Drawn: 1, Degenerate: 1, Skipped: 1, Clipped: 1}, stats)
	assert.NotZero(t, dst.RGBAAt(10, 10).A, "the horizontal line is drawn")
	assert.Zero(t, dst.RGBAAt(10, 15).A, "nothing else is")
}

func TestRasterize_NothingToDraw(t *testing.T) {
	dst := image.NewRGBA(image.Rect(0, 0, 4, 4))
	stats := gridwarp.Rasterize(dst, nil, color.White, 1)
	assert.Equal(t, gridwarp.RasterStats{}, stats)
	assert.Equal(t, make([]uint8, 4*4*4), dst.Pix)
}

func TestRender_LogsSkippedSegments(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	gridwarp.SetLogger(zap.New(core))
	t.Cleanup(func() { gridwarp.SetLogger(nil) })

	// entries this large overflow to ±Inf once multiplied by a coordinate
	cfg := smallConfig(1e308, 0, 0, 1e308)
	_, err := gridwarp.Render(cfg)
	require.NoError(t, err)

	rendered := logs.FilterMessage("gridwarp: rendered").All()
	require.Len(t, rendered, 1)
	assert.Equal(t, zapcore.DebugLevel, rendered[0].Level)
	fields := rendered[0].ContextMap()
	assert.Equal(t, int64(30), fields["width"])
	assert.Greater(t, fields["skipped"], int64(0))

	assert.Equal(t, 1, logs.FilterMessage("gridwarp: skipped non-finite segments").FilterLevelExact(zapcore.WarnLevel).Len())
}

func TestSetLogger_NilRestoresNop(t *testing.T) {
	gridwarp.SetLogger(nil)
	require.NotNil(t, gridwarp.Logger())
	assert.False(t, gridwarp.Logger().Core().Enabled(zapcore.ErrorLevel))
}

func TestEncode_RoundTrip(t *testing.T) {
	img, err := gridwarp.Render(gridConfig())
	require.NoError(t, err)

	decoders := map[gridwarp.Format]func(*bytes.Buffer) (image.Image, error){
		gridwarp.FormatPNG:  func(b *bytes.Buffer) (image.Image, error) { return png.Decode(b) },
		gridwarp.FormatBMP:  func(b *bytes.Buffer) (image.Image, error) { return bmp.Decode(b) },
		gridwarp.FormatTIFF: func(b *bytes.Buffer) (image.Image, error) { return tiff.Decode(bytes.NewReader(b.Bytes())) },
	}
	for format, decode := range decoders {
		t.Run(string(format), func(t *testing.T) {
			var buf bytes.Buffer
			require.NoError(t, gridwarp.Encode(&buf, img, format))

			got, err := decode(&buf)
			require.NoError(t, err)
			assert.Equal(t, img.Bounds(), got.Bounds())
			for _, p := range []image.Point{{15, 15}, {10, 15}} {
				assert.Equal(t, img.RGBAAt(p.X, p.Y), color.RGBAModel.Convert(got.At(p.X, p.Y)))
			}
		})
	}
}

func TestEncode_UnknownFormat(t *testing.T) {
	err := gridwarp.Encode(&bytes.Buffer{}, image.NewRGBA(image.Rect(0, 0, 1, 1)), "gif")
	assert.ErrorIs(t, err, gridwarp.ErrUnknownFormat)
}

func TestFormatFromPath(t *testing.T) {
	tests := []struct {
		path string
		want gridwarp.Format
		ok   bool
	}{
		{"out.png", gridwarp.FormatPNG, true},
		{"/tmp/OUT.PNG", gridwarp.FormatPNG, true},
		{"grid.bmp", gridwarp.FormatBMP, true},
		{"grid.tif", gridwarp.FormatTIFF, true},
		{"grid.tiff", gridwarp.FormatTIFF, true},
		{"grid.jpg", "", false},
		{"grid", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			got, err := gridwarp.FormatFromPath(tt.path)
			if !tt.ok {
				assert.ErrorIs(t, err, gridwarp.ErrUnknownFormat)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
