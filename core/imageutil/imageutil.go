package imageutil

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"io"
	"strings"

	"github.com/chai2010/webp"
	"github.com/disintegration/imaging"
)

// ErrDecode is returned when the input cannot be opened as an image.
var ErrDecode = errors.New("imageutil: cannot decode image")

// Format is the requested output encoding.
type Format string

const (
	FormatWebP Format = "WEBP"
	FormatJPEG Format = "JPEG"
)

// DefaultQuality is used when Options.Quality is zero.
// 70-80 is a good balance between size and fidelity.
const DefaultQuality = 75

// Options controls compression.
type Options struct {
	// MaxWidth downscales wider images to this width, keeping aspect ratio.
	// 0 keeps the original dimensions.
	MaxWidth int
	// Quality is the encoder quality, 1..100. 0 means DefaultQuality.
	Quality int
	// Format is the desired output format. Unknown formats and JPEG requests
	// for images with transparency fall back to WebP.
	Format Format
}

// Result is a compressed image ready for upload.
type Result struct {
	Data         []byte
	ContentType  string
	Extension    string
	Width        int
	Height       int
	SourceFormat string
}

// chooseFormat resolves the effective output format. JPEG cannot carry an
// alpha channel, and anything besides WEBP/JPEG is unsupported as output.
func chooseFormat(want Format, hasAlpha bool) (Format, string) {
	switch Format(strings.ToUpper(string(want))) {
	case FormatJPEG:
		if hasAlpha {
			return FormatWebP, ".webp"
		}
		return FormatJPEG, ".jpg"
	default:
		return FormatWebP, ".webp"
	}
}

func hasAlpha(img image.Image) bool {
	if o, ok := img.(interface{ Opaque() bool }); ok {
		return !o.Opaque()
	}
	return false
}

// Compress re-encodes an image for CDN delivery: EXIF orientation is applied,
// the image is optionally downscaled, and the output is WebP or JPEG.
// Re-encoding drops EXIF and ICC metadata from the source.
func Compress(r io.Reader, opts Options) (Result, error) {
	quality := opts.Quality
	if quality == 0 {
		quality = DefaultQuality
	}
	if quality < 1 || quality > 100 {
		return Result{}, fmt.Errorf("imageutil: quality must be between 1 and 100, got %d", quality)
	}
	if opts.MaxWidth < 0 {
		return Result{}, fmt.Errorf("imageutil: max width must be positive, got %d", opts.MaxWidth)
	}

	src, err := io.ReadAll(r)
	if err != nil {
		return Result{}, fmt.Errorf("%w: %v", ErrDecode, err)
	}

	_, srcFormat, err := image.DecodeConfig(bytes.NewReader(src))
	if err != nil {
		return Result{}, fmt.Errorf("%w: %v", ErrDecode, err)
	}

	img, err := imaging.Decode(bytes.NewReader(src), imaging.AutoOrientation(true))
	if err != nil {
		return Result{}, fmt.Errorf("%w: %v", ErrDecode, err)
	}

	if opts.MaxWidth > 0 && img.Bounds().Dx() > opts.MaxWidth {
		img = imaging.Resize(img, opts.MaxWidth, 0, imaging.Lanczos)
	}

	format, ext := chooseFormat(opts.Format, hasAlpha(img))

	var out bytes.Buffer
	switch format {
	case FormatJPEG:
		if err := imaging.Encode(&out, img, imaging.JPEG, imaging.JPEGQuality(quality)); err != nil {
			return Result{}, fmt.Errorf("imageutil: jpeg encode: %w", err)
		}
	default:
		if err := webp.Encode(&out, img, &webp.Options{Quality: float32(quality)}); err != nil {
			return Result{}, fmt.Errorf("imageutil: webp encode: %w", err)
		}
	}

	contentType := "image/webp"
	if format == FormatJPEG {
		contentType = "image/jpeg"
	}

	return Result{
		Data:         out.Bytes(),
		ContentType:  contentType,
		Extension:    ext,
		Width:        img.Bounds().Dx(),
		Height:       img.Bounds().Dy(),
		SourceFormat: srcFormat,
	}, nil
}
