package imageutil_test

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"testing"

	"cdn-manager/core/imageutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// pngImage encodes a generated PNG of the given size. Alpha controls whether
// the image contains transparent pixels.
func pngImage(t *testing.T, width, height int, alpha bool) *bytes.Reader {
	t.Helper()

	img := image.NewNRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			a := uint8(255)
			if alpha && x%2 == 0 {
				a = 128
			}
			img.SetNRGBA(x, y, color.NRGBA{R: uint8(x % 256), G: uint8(y % 256), B: 100, A: a})
		}
	}

	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return bytes.NewReader(buf.Bytes())
}

func TestCompress_DefaultsToWebP(t *testing.T) {
	res, err := imageutil.Compress(pngImage(t, 64, 48, false), imageutil.Options{})

	require.NoError(t, err)
	assert.Equal(t, "image/webp", res.ContentType)
	assert.Equal(t, ".webp", res.Extension)
	assert.Equal(t, 64, res.Width)
	assert.Equal(t, 48, res.Height)
	assert.Equal(t, "png", res.SourceFormat)
	assert.NotEmpty(t, res.Data)
}

func TestCompress_ResizesToMaxWidth(t *testing.T) {
	res, err := imageutil.Compress(pngImage(t, 200, 100, false), imageutil.Options{MaxWidth: 50})

	require.NoError(t, err)
	assert.Equal(t, 50, res.Width)
	assert.Equal(t, 25, res.Height)
}

func TestCompress_KeepsSmallerImages(t *testing.T) {
	res, err := imageutil.Compress(pngImage(t, 40, 30, false), imageutil.Options{MaxWidth: 800})

	require.NoError(t, err)
	assert.Equal(t, 40, res.Width)
	assert.Equal(t, 30, res.Height)
}

func TestCompress_JPEGOutput(t *testing.T) {
	res, err := imageutil.Compress(pngImage(t, 32, 32, false), imageutil.Options{Format: imageutil.FormatJPEG})

	require.NoError(t, err)
	assert.Equal(t, "image/jpeg", res.ContentType)
	assert.Equal(t, ".jpg", res.Extension)
}

func TestCompress_JPEGWithAlphaFallsBackToWebP(t *testing.T) {
	res, err := imageutil.Compress(pngImage(t, 32, 32, true), imageutil.Options{Format: imageutil.FormatJPEG})

	require.NoError(t, err)
	assert.Equal(t, "image/webp", res.ContentType)
	assert.Equal(t, ".webp", res.Extension)
}

func TestCompress_UnknownFormatFallsBackToWebP(t *testing.T) {
	res, err := imageutil.Compress(pngImage(t, 32, 32, false), imageutil.Options{Format: "TIFF"})

	require.NoError(t, err)
	assert.Equal(t, "image/webp", res.ContentType)
}

func TestCompress_Validation(t *testing.T) {
	tests := []struct {
		name string
		opts imageutil.Options
	}{
		{"QualityTooHigh", imageutil.Options{Quality: 101}},
		{"QualityNegative", imageutil.Options{Quality: -5}},
		{"NegativeMaxWidth", imageutil.Options{MaxWidth: -1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := imageutil.Compress(pngImage(t, 8, 8, false), tt.opts)
			assert.Error(t, err)
		})
	}
}

func TestCompress_UndecodableInput(t *testing.T) {
	_, err := imageutil.Compress(bytes.NewReader([]byte("not an image")), imageutil.Options{})
	assert.ErrorIs(t, err, imageutil.ErrDecode)
}
