package imaging

import (
	"errors"
	"fmt"
	"image"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/disintegration/imaging"
	_ "golang.org/x/image/webp" // Register WebP format decoder
)

// ErrNotFound is returned when the image path does not exist or does not
// name a regular file.
var ErrNotFound = errors.New("image file does not exist")

// ImageInfo contains metadata about a loaded image file.
type ImageInfo struct {
	// Width is the image width in pixels.
	Width int `json:"width"`

	// Height is the image height in pixels.
	Height int `json:"height"`

	// Format is the format implied by the file extension: "png", "jpeg",
	// "gif", "bmp", "tiff", "webp", or "unknown".
	Format string `json:"format"`

	// FileSizeBytes is the size of the image file on disk in bytes.
	FileSizeBytes int64 `json:"file_size_bytes"`
}

// CheckFile verifies that path names an existing regular file.
//
// Returns:
//   - fs.FileInfo: The file's metadata.
//   - error: Wraps ErrNotFound if the path is missing or is a directory or
//     other non-regular file. Other stat failures (e.g. permissions) are
//     returned as-is.
func CheckFile(path string) (fs.FileInfo, error) {
	stat, err := os.Stat(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, path)
		}
		return nil, fmt.Errorf("failed to stat image: %w", err)
	}
	if !stat.Mode().IsRegular() {
		return nil, fmt.Errorf("%w: %s (not a regular file)", ErrNotFound, path)
	}
	return stat, nil
}

// Load checks and decodes an image file.
//
// Parameters:
//   - path: Path to the image file. Supported formats are PNG, JPEG, GIF,
//     BMP, TIFF and WebP.
//
// Returns:
//   - image.Image: The decoded image, unmodified.
//   - *ImageInfo: Dimensions, format and file size.
//   - error: Wraps ErrNotFound (see CheckFile), or a decode error if the file
//     is not a supported image.
func Load(path string) (image.Image, *ImageInfo, error) {
	stat, err := CheckFile(path)
	if err != nil {
		return nil, nil, err
	}

	img, err := imaging.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to decode image: %w", err)
	}

	bounds := img.Bounds()
	return img, &ImageInfo{
		Width:         bounds.Dx(),
		Height:        bounds.Dy(),
		Format:        formatFromExt(path),
		FileSizeBytes: stat.Size(),
	}, nil
}

// formatFromExt maps a file extension to a format name.
func formatFromExt(path string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".png":
		return "png"
	case ".jpg", ".jpeg":
		return "jpeg"
	case ".gif":
		return "gif"
	case ".bmp":
		return "bmp"
	case ".tif", ".tiff":
		return "tiff"
	case ".webp":
		return "webp"
	}
	return "unknown"
}
