//go:build !cgo

package ocr

import (
	"context"
	"fmt"
	"image"

	"github.com/sirupsen/logrus"
)

// errNoBindings explains why the stub engine cannot start.
const errNoBindings = "built without cgo; Tesseract bindings are not compiled in (rebuild with CGO_ENABLED=1)"

// Tesseract is a stub engine used when cgo is disabled.
type Tesseract struct{}

// NewTesseract always fails with ErrEngineUnavailable.
func NewTesseract(cfg Config, log logrus.FieldLogger) (*Tesseract, error) {
	return nil, fmt.Errorf("%w: %s", ErrEngineUnavailable, errNoBindings)
}

// Name returns "tesseract".
func (t *Tesseract) Name() string {
	return "tesseract"
}

// Detect always fails with ErrEngineUnavailable.
func (t *Tesseract) Detect(ctx context.Context, img image.Image) ([]Detection, error) {
	return nil, fmt.Errorf("%w: %s", ErrEngineUnavailable, errNoBindings)
}

// Version returns an empty string; no Tesseract library is linked.
func Version() string {
	return ""
}
