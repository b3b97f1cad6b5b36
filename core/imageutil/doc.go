// Package imageutil compresses uploaded images before they are pushed to the CDN.
//
// Compress decodes any registered image format (PNG, JPEG, GIF, WebP, and
// HEIC/HEIF via the goheif plugin), applies EXIF auto-orientation, downscales
// to a maximum width with Lanczos resampling, and re-encodes to WebP or JPEG.
// WebP usually gives the best size without resizing.
//
// JPEG output is only produced for fully opaque images; sources with
// transparency fall back to WebP so the alpha channel survives.
package imageutil
