package ocr

import (
	"context"
	"errors"
	"fmt"
	"image"
	"io"
	"strings"

	"github.com/sirupsen/logrus"
)

var (
	// ErrEngineUnavailable is returned when the OCR engine or its model data
	// cannot be loaded.
	ErrEngineUnavailable = errors.New("OCR engine unavailable")

	// ErrRecognitionFailed is returned for any other failure during inference.
	ErrRecognitionFailed = errors.New("text extraction failed")
)

// Engine detects and recognizes words in an image.
//
// Detect returns detections in no particular order. An empty slice with a
// nil error means the engine ran successfully but found no text.
type Engine interface {
	Name() string
	Detect(ctx context.Context, img image.Image) ([]Detection, error)
}

// Config holds the compiled-in engine settings.
type Config struct {
	// Languages is the ordered list of Tesseract language codes, primary first.
	Languages []string

	// UseGPU requests hardware-accelerated inference. The Tesseract backend is
	// CPU-only and refuses to start when this is set.
	UseGPU bool
}

// DefaultConfig returns English plus Traditional Chinese, CPU-only.
func DefaultConfig() Config {
	return Config{
		Languages: []string{"eng", "chi_tra"},
		UseGPU:    false,
	}
}

func nopLogger() logrus.FieldLogger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}

// missingLanguages returns the entries of want that are not in have,
// preserving want's order.
func missingLanguages(want, have []string) []string {
	installed := make(map[string]bool, len(have))
	for _, lang := range have {
		installed[lang] = true
	}

	var missing []string
	for _, lang := range want {
		if !installed[lang] {
			missing = append(missing, lang)
		}
	}
	return missing
}

// classifyClientError separates API initialization failures, which mean the
// engine could not be loaded, from recognition failures.
func classifyClientError(err error) error {
	if strings.Contains(err.Error(), "failed to initialize") {
		return fmt.Errorf("%w: %w", ErrEngineUnavailable, err)
	}
	return fmt.Errorf("%w: %w", ErrRecognitionFailed, err)
}
