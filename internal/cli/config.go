package cli

import (
	"github.com/ironsheep/image-text-extract/internal/layout"
	"github.com/ironsheep/image-text-extract/internal/ocr"
)

// Config holds the compiled-in settings. None of these are exposed as flags.
type Config struct {
	// OCR selects recognition languages and hardware acceleration.
	OCR ocr.Config

	// YTolerance is the vertical clustering distance for line grouping.
	YTolerance float64
}

// DefaultConfig returns the settings the shipped binary runs with.
func DefaultConfig() Config {
	return Config{
		OCR:        ocr.DefaultConfig(),
		YTolerance: layout.DefaultYTolerance,
	}
}

// BuildInfo identifies the binary. Fields are set by ldflags in main.
type BuildInfo struct {
	Version   string
	BuildTime string
	GitCommit string
}

// Option customizes a command run.
type Option func(*runner)

// WithConfig replaces the default configuration.
func WithConfig(cfg Config) Option {
	return func(r *runner) { r.cfg = cfg }
}

// WithEngine uses engine instead of constructing the Tesseract engine.
func WithEngine(engine ocr.Engine) Option {
	return func(r *runner) { r.engine = engine }
}

// WithBuildInfo sets the version details reported by --version.
func WithBuildInfo(info BuildInfo) Option {
	return func(r *runner) { r.build = info }
}
