//go:build cgo

package ocr

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"strings"

	"github.com/disintegration/imaging"
	"github.com/otiai10/gosseract/v2"
	"github.com/sirupsen/logrus"
)

// Tesseract is an Engine backed by the native Tesseract library.
type Tesseract struct {
	cfg Config
	log logrus.FieldLogger
}

// NewTesseract validates the configuration against the local Tesseract
// installation and returns a ready engine.
//
// Parameters:
//   - cfg: Engine configuration. Languages must be non-empty and UseGPU false.
//   - log: Logger for debug output. Nil discards logs.
//
// Returns:
//   - *Tesseract: The engine.
//   - error: Wraps ErrEngineUnavailable if the tessdata directory cannot be
//     read or trained data for any configured language is missing.
func NewTesseract(cfg Config, log logrus.FieldLogger) (*Tesseract, error) {
	if log == nil {
		log = nopLogger()
	}
	if cfg.UseGPU {
		return nil, fmt.Errorf("%w: GPU inference is not supported by the tesseract backend", ErrEngineUnavailable)
	}
	if len(cfg.Languages) == 0 {
		return nil, fmt.Errorf("%w: no recognition languages configured", ErrEngineUnavailable)
	}

	available, err := gosseract.GetAvailableLanguages()
	if err != nil {
		return nil, fmt.Errorf("%w: failed to list installed languages: %w", ErrEngineUnavailable, err)
	}
	if missing := missingLanguages(cfg.Languages, available); len(missing) > 0 {
		return nil, fmt.Errorf("%w: missing trained data for %s", ErrEngineUnavailable, strings.Join(missing, ", "))
	}

	log.WithFields(logrus.Fields{
		"version":   Version(),
		"languages": strings.Join(cfg.Languages, "+"),
	}).Debug("tesseract engine ready")

	return &Tesseract{cfg: cfg, log: log}, nil
}

// Name returns "tesseract".
func (t *Tesseract) Name() string {
	return "tesseract"
}

// Detect runs word-level recognition on img.
//
// The image is re-encoded to PNG in memory and handed to Tesseract, so any
// format the caller could decode is accepted. Each non-empty word becomes a
// Detection with an axis-aligned Quad in img's coordinate space and a
// confidence scaled to 0..1.
func (t *Tesseract) Detect(ctx context.Context, img image.Image) ([]Detection, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrRecognitionFailed, err)
	}

	var buf bytes.Buffer
	if err := imaging.Encode(&buf, img, imaging.PNG); err != nil {
		return nil, fmt.Errorf("%w: failed to encode image: %w", ErrRecognitionFailed, err)
	}

	client := gosseract.NewClient()
	defer client.Close()

	if err := client.SetLanguage(t.cfg.Languages...); err != nil {
		return nil, fmt.Errorf("%w: failed to set language: %w", ErrEngineUnavailable, err)
	}

	if err := client.SetImageFromBytes(buf.Bytes()); err != nil {
		return nil, fmt.Errorf("%w: failed to set image: %w", ErrRecognitionFailed, err)
	}

	boxes, err := client.GetBoundingBoxes(gosseract.RIL_WORD)
	if err != nil {
		return nil, classifyClientError(err)
	}

	// Tesseract reports boxes relative to the encoded image, which always
	// starts at the origin.
	offset := img.Bounds().Min

	detections := make([]Detection, 0, len(boxes))
	for _, box := range boxes {
		if strings.TrimSpace(box.Word) == "" {
			continue
		}
		detections = append(detections, Detection{
			Quad:       QuadFromRect(box.Box.Add(offset)),
			Text:       box.Word,
			Confidence: float64(box.Confidence) / 100.0,
		})
	}

	t.log.WithFields(logrus.Fields{
		"boxes":      len(boxes),
		"detections": len(detections),
	}).Debug("tesseract recognition finished")

	return detections, nil
}

// Version returns the linked Tesseract version.
func Version() string {
	client := gosseract.NewClient()
	defer client.Close()
	return client.Version()
}
