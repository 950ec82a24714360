package cli

import (
	"context"
	"errors"
	"fmt"
	"image"
	"io"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/ironsheep/image-text-extract/internal/imaging"
	"github.com/ironsheep/image-text-extract/internal/layout"
	"github.com/ironsheep/image-text-extract/internal/ocr"
)

var (
	// ErrUsage is returned when the command line does not name exactly one
	// image path, or carries an unknown flag.
	ErrUsage = errors.New("invalid usage")

	// ErrEmptyResult is returned when recognition succeeds but yields no
	// usable text. It is reported silently.
	ErrEmptyResult = errors.New("no text found")
)

const (
	usageLine = "Usage: extract-text <image_path>"

	installHint = "Install Tesseract and its language data, e.g. " +
		"apt-get install tesseract-ocr tesseract-ocr-eng tesseract-ocr-chi-tra (Debian/Ubuntu) " +
		"or brew install tesseract tesseract-lang (macOS)."
)

type runner struct {
	cfg    Config
	engine ocr.Engine
	build  BuildInfo

	stdout io.Writer
	stderr io.Writer
	debug  bool
}

// Execute runs the command with args (excluding the program name) and
// returns the process exit code.
func Execute(ctx context.Context, args []string, stdout, stderr io.Writer, opts ...Option) int {
	r := &runner{
		cfg:    DefaultConfig(),
		build:  BuildInfo{Version: "dev", BuildTime: "unknown", GitCommit: "unknown"},
		stdout: stdout,
		stderr: stderr,
	}
	for _, opt := range opts {
		opt(r)
	}

	// cobra falls back to os.Args when given nil.
	if args == nil {
		args = []string{}
	}

	cmd := r.command()
	cmd.SetArgs(args)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	return r.report(cmd.ExecuteContext(ctx))
}

func (r *runner) command() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "extract-text <image_path>",
		Short: "Extract text from an image, preserving line breaks",
		Long: `extract-text runs OCR on a single image and prints the recognized text.

Words are ordered top to bottom and left to right, and words whose vertical
centers are close together are joined into one line.

Exit status is 0 when text was printed and 1 otherwise. When the image
contains no text, nothing is printed.`,
		Version: fmt.Sprintf("%s (built %s, commit %s)", r.build.Version, r.build.BuildTime, r.build.GitCommit),
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return fmt.Errorf("%w: expected 1 image path, got %d arguments", ErrUsage, len(args))
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return r.run(cmd.Context(), args[0])
		},
		SilenceErrors: true,
		SilenceUsage:  true,
	}

	cmd.SetVersionTemplate("extract-text {{.Version}}\n")
	cmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return fmt.Errorf("%w: %w", ErrUsage, err)
	})
	cmd.Flags().BoolVar(&r.debug, "debug", false, "log debug output to stderr")

	return cmd
}

func (r *runner) newLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(r.stderr)
	log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	log.SetLevel(logrus.WarnLevel)
	if r.debug {
		log.SetLevel(logrus.DebugLevel)
		log.SetReportCaller(true)
	}
	return log
}

// run extracts text from the image at path and writes it to stdout.
func (r *runner) run(ctx context.Context, path string) error {
	log := r.newLogger()
	log.WithFields(logrus.Fields{
		"version": r.build.Version,
		"commit":  r.build.GitCommit,
	}).Debug("extract-text starting")

	if _, err := imaging.CheckFile(path); err != nil {
		return err
	}

	engine := r.engine
	if engine == nil {
		tess, err := ocr.NewTesseract(r.cfg.OCR, log)
		if err != nil {
			return err
		}
		engine = tess
	}

	img, info, err := imaging.Load(path)
	if err != nil {
		if errors.Is(err, imaging.ErrNotFound) {
			return err
		}
		return fmt.Errorf("%w: %w", ocr.ErrRecognitionFailed, err)
	}
	log.WithFields(logrus.Fields{
		"path":   path,
		"width":  info.Width,
		"height": info.Height,
		"format": info.Format,
		"bytes":  info.FileSizeBytes,
	}).Debug("image loaded")

	detections, err := detect(ctx, engine, img)
	if err != nil {
		return err
	}

	doc := layout.Reconstruct(detections, r.cfg.YTolerance)
	log.WithFields(logrus.Fields{
		"engine":     engine.Name(),
		"detections": len(detections),
		"lines":      len(doc.Lines),
	}).Debug("text reconstructed")

	if doc.IsEmpty() {
		return ErrEmptyResult
	}

	_, err = fmt.Fprintln(r.stdout, doc.String())
	return err
}

// detect runs the engine on its own goroutine so that cancellation of ctx
// (e.g. by SIGINT) ends the wait even while Tesseract is still busy.
func detect(ctx context.Context, engine ocr.Engine, img image.Image) ([]ocr.Detection, error) {
	type result struct {
		detections []ocr.Detection
		err        error
	}

	done := make(chan result, 1)
	go func() {
		detections, err := engine.Detect(ctx, img)
		done <- result{detections, err}
	}()

	select {
	case res := <-done:
		if res.err != nil && !errors.Is(res.err, ocr.ErrEngineUnavailable) && !errors.Is(res.err, ocr.ErrRecognitionFailed) {
			return nil, fmt.Errorf("%w: %w", ocr.ErrRecognitionFailed, res.err)
		}
		return res.detections, res.err
	case <-ctx.Done():
		return nil, fmt.Errorf("%w: %w", ocr.ErrRecognitionFailed, ctx.Err())
	}
}

// report writes the user-facing message for err and returns the exit code.
func (r *runner) report(err error) int {
	switch {
	case err == nil:
		return 0
	case errors.Is(err, ErrEmptyResult):
		// Silent by contract.
	case errors.Is(err, ErrUsage):
		fmt.Fprintln(r.stderr, usageLine)
	case errors.Is(err, ocr.ErrEngineUnavailable):
		fmt.Fprintf(r.stderr, "Error: %v\n", err)
		fmt.Fprintln(r.stderr, installHint)
	case errors.Is(err, imaging.ErrNotFound), errors.Is(err, ocr.ErrRecognitionFailed):
		fmt.Fprintf(r.stderr, "Error: %v\n", err)
	default:
		fmt.Fprintf(r.stderr, "Error: %v: %v\n", ocr.ErrRecognitionFailed, err)
	}
	return 1
}
