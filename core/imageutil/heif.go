package imageutil

import (
	"image"

	"github.com/jdeng/goheif"
)

// HEIC/HEIF sources (typical for iOS uploads) are decodable like any other
// registered format; output is still WebP or JPEG.
func init() {
	image.RegisterFormat("heic", "????ftypheic", goheif.Decode, goheif.DecodeConfig)
	image.RegisterFormat("heif", "????ftypmif1", goheif.Decode, goheif.DecodeConfig)
}
