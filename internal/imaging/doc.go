// Package imaging loads input images for text extraction.
//
// This package checks that an input path names a regular file and decodes it
// into a standard Go image.Image. Decoding goes through
// github.com/disintegration/imaging, which registers PNG, JPEG, GIF, BMP and
// TIFF; WebP support comes from golang.org/x/image/webp.
//
// # Coordinate System
//
// Decoded images keep their native bounds. For every supported format the
// origin (0,0) is the top-left corner, X increases rightward, and Y
// increases downward. Detections produced from these images use the same
// coordinates.
//
// # No Preprocessing
//
// Images are returned exactly as decoded: no EXIF auto-orientation, scaling,
// thresholding or color conversion is applied.
//
// # Error Handling
//
// A missing path, or one naming a directory, wraps ErrNotFound. Use
// errors.Is to distinguish it from decode failures, which mean the file
// exists but is not a supported image.
package imaging
