// Package ocr provides word-level text detection using Tesseract.
//
// This package wraps the Tesseract OCR engine (via gosseract/v2) behind the
// narrow Engine interface. An engine takes a decoded image and returns an
// unordered list of Detections: a quadrilateral bounding box, the recognized
// text, and a confidence score. Reading order is not this package's concern;
// see the layout package for line reconstruction.
//
// # Prerequisites
//
// Tesseract must be installed on the system:
//   - Ubuntu/Debian: apt-get install tesseract-ocr
//   - macOS: brew install tesseract
//   - Windows: Download from https://github.com/UB-Mannheim/tesseract/wiki
//
// Language data files are required for each configured language:
//   - Ubuntu/Debian: apt-get install tesseract-ocr-eng tesseract-ocr-chi-tra
//   - Other languages: tesseract-ocr-<lang> packages
//
// Binaries built with CGO_ENABLED=0 carry a stub engine whose constructor
// always fails with ErrEngineUnavailable.
//
// # Languages
//
// The default configuration recognizes English ("eng") as the primary
// language and Traditional Chinese ("chi_tra") as the secondary one. Other
// languages can be configured using their Tesseract language codes:
//   - "eng" - English
//   - "deu" - German
//   - "fra" - French
//   - "chi_sim" - Chinese (Simplified)
//   - See Tesseract documentation for full list
//
// # Error Handling
//
// Engine failures fall into two classes, both fatal for the invocation:
//
//   - ErrEngineUnavailable: the engine cannot be loaded (no cgo bindings,
//     missing tessdata, missing trained data for a language, GPU requested,
//     or Tesseract API initialization failure).
//   - ErrRecognitionFailed: anything else that goes wrong during inference.
//
// Use errors.Is to tell them apart. Neither is retried.
//
// # Performance Considerations
//
// OCR is CPU-intensive and Detect blocks until Tesseract finishes. A context
// is checked before recognition starts, but inference itself cannot be
// interrupted once it is running.
package ocr
