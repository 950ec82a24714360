// Package cli implements the extract-text command.
//
// The command takes exactly one image path, runs OCR on it, rebuilds line
// breaks from the word boxes and prints the text to stdout. Each run
// handles one image and exits.
//
// # Exit Codes
//
// Execute returns 0 when text was printed and 1 otherwise. Failures are
// reported on stderr; stdout only ever carries extracted text (or help and
// version output when asked for).
//
//	Condition                 stderr
//	wrong argument count      Usage: extract-text <image_path>
//	missing file              Error: image file does not exist: <path>
//	engine unavailable        Error: OCR engine unavailable: ... plus install hint
//	no text found             (nothing)
//	any other failure         Error: text extraction failed: ...
//
// "No text found" exits 1 without a message so that calling scripts can
// treat it as a normal outcome.
//
// # Logging
//
// Diagnostic logging goes to stderr through logrus. Only warnings and above
// are shown by default; --debug enables debug output with caller locations.
package cli
