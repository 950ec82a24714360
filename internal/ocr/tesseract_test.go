//go:build cgo

package ocr

import (
	"context"
	"errors"
	"image"
	"image/color"
	"image/draw"
	"strings"
	"testing"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// newTestEngine returns an English-only engine, skipping the test when
// Tesseract or its English data is not installed.
func newTestEngine(t *testing.T) *Tesseract {
	t.Helper()

	engine, err := NewTesseract(Config{Languages: []string{"eng"}}, nil)
	if err != nil {
		if errors.Is(err, ErrEngineUnavailable) {
			t.Skipf("Tesseract not available: %v", err)
		}
		t.Fatalf("NewTesseract failed: %v", err)
	}
	return engine
}

// drawText draws text on an image using basicfont
func drawText(img *image.RGBA, x, y int, text string, col color.Color) {
	point := fixed.Point26_6{X: fixed.I(x), Y: fixed.I(y)}
	d := &font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(col),
		Face: basicfont.Face7x13,
		Dot:  point,
	}
	d.DrawString(text)
}

// createMultiLineTextImage renders lines of text and scales the result up so
// Tesseract has enough pixels per glyph.
func createMultiLineTextImage(lines []string, scale int) *image.RGBA {
	maxLen := 0
	for _, line := range lines {
		if len(line) > maxLen {
			maxLen = len(line)
		}
	}

	w := maxLen*7 + 40
	h := len(lines)*24 + 30

	small := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.Draw(small, small.Bounds(), image.White, image.Point{}, draw.Src)
	for i, line := range lines {
		drawText(small, 20, 25+i*24, line, color.Black)
	}

	img := image.NewRGBA(image.Rect(0, 0, w*scale, h*scale))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			c := small.At(x, y)
			for dy := 0; dy < scale; dy++ {
				for dx := 0; dx < scale; dx++ {
					img.Set(x*scale+dx, y*scale+dy, c)
				}
			}
		}
	}
	return img
}

func TestNewTesseract_GPURejected(t *testing.T) {
	_, err := NewTesseract(Config{Languages: []string{"eng"}, UseGPU: true}, nil)
	if !errors.Is(err, ErrEngineUnavailable) {
		t.Fatalf("expected ErrEngineUnavailable, got %v", err)
	}
	if !strings.Contains(err.Error(), "GPU") {
		t.Errorf("error should mention GPU: %v", err)
	}
}

func TestNewTesseract_NoLanguages(t *testing.T) {
	_, err := NewTesseract(Config{}, nil)
	if !errors.Is(err, ErrEngineUnavailable) {
		t.Fatalf("expected ErrEngineUnavailable, got %v", err)
	}
}

func TestNewTesseract_MissingLanguage(t *testing.T) {
	_, err := NewTesseract(Config{Languages: []string{"invalid_language_code_xyz"}}, nil)
	if !errors.Is(err, ErrEngineUnavailable) {
		t.Fatalf("expected ErrEngineUnavailable, got %v", err)
	}
}

func TestTesseract_Name(t *testing.T) {
	engine := newTestEngine(t)
	if engine.Name() != "tesseract" {
		t.Errorf("Name() = %q, want tesseract", engine.Name())
	}
}

func TestTesseract_Detect(t *testing.T) {
	engine := newTestEngine(t)

	img := createMultiLineTextImage([]string{"HELLO WORLD", "GOODBYE MOON"}, 4)
	detections, err := engine.Detect(context.Background(), img)
	if err != nil {
		t.Fatalf("Detect failed: %v", err)
	}

	bounds := img.Bounds()
	var words []string
	for _, d := range detections {
		if strings.TrimSpace(d.Text) == "" {
			t.Error("Detect returned an empty word")
		}
		if d.Confidence < 0 || d.Confidence > 1 {
			t.Errorf("confidence %v for %q out of range [0,1]", d.Confidence, d.Text)
		}
		for _, p := range d.Quad {
			if p.X < float64(bounds.Min.X) || p.X > float64(bounds.Max.X) ||
				p.Y < float64(bounds.Min.Y) || p.Y > float64(bounds.Max.Y) {
				t.Errorf("point %v of %q outside image bounds %v", p, d.Text, bounds)
			}
		}
		words = append(words, d.Text)
	}

	// Recognition quality depends on the installed model; only log the text.
	t.Logf("recognized %d words: %s", len(detections), strings.Join(words, " "))
	if len(detections) == 0 {
		t.Log("no words recognized - may be Tesseract model quality")
	}
}

func TestTesseract_Detect_BlankImage(t *testing.T) {
	engine := newTestEngine(t)

	img := image.NewRGBA(image.Rect(0, 0, 200, 100))
	draw.Draw(img, img.Bounds(), image.White, image.Point{}, draw.Src)

	detections, err := engine.Detect(context.Background(), img)
	if err != nil {
		t.Fatalf("Detect failed: %v", err)
	}
	if len(detections) != 0 {
		t.Logf("blank image produced %d detections", len(detections))
	}
}

func TestTesseract_Detect_NonZeroOrigin(t *testing.T) {
	engine := newTestEngine(t)

	full := createMultiLineTextImage([]string{"OFFSET TEXT"}, 4)
	sub := full.SubImage(image.Rect(40, 40, full.Bounds().Dx(), full.Bounds().Dy()))

	detections, err := engine.Detect(context.Background(), sub)
	if err != nil {
		t.Fatalf("Detect failed: %v", err)
	}

	// Boxes are reported in the sub-image's own coordinate space.
	for _, d := range detections {
		if d.XMin() < 40 || d.Quad[0].Y < 40 {
			t.Errorf("detection %q at %v should be offset by the sub-image origin", d.Text, d.Quad)
		}
	}
}

func TestTesseract_Detect_CanceledContext(t *testing.T) {
	engine := newTestEngine(t)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := engine.Detect(ctx, image.NewRGBA(image.Rect(0, 0, 10, 10)))
	if !errors.Is(err, ErrRecognitionFailed) {
		t.Fatalf("expected ErrRecognitionFailed, got %v", err)
	}
	if !errors.Is(err, context.Canceled) {
		t.Errorf("expected wrapped context.Canceled, got %v", err)
	}
}

func TestVersion(t *testing.T) {
	newTestEngine(t)

	if v := Version(); v == "" {
		t.Error("Version() returned an empty string")
	}
}
