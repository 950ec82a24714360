// Package layout reconstructs reading order from unordered OCR detections.
//
// OCR engines report words as independent boxes with no guaranteed order.
// This package sorts them top-to-bottom, left-to-right and groups vertically
// adjacent words into lines, producing a Document that prints as
// newline-separated text.
//
// # Line Grouping
//
// Detections are sorted by (vertical center, left edge). Walking that order,
// a new line starts whenever a detection's vertical center differs from the
// previous detection's by more than the tolerance. Each detection is compared
// only to its immediate predecessor, not to the first member of its line, so
// a tall or gently skewed block whose consecutive centers stay within the
// tolerance collapses into a single line ("drift").
//
// Columns, tables and rotated text are not modeled.
//
// # Coordinates
//
// Tolerances use the same units as the detections' coordinates, normally
// image pixels.
//
// All functions are pure and safe for concurrent use. Input slices are never
// modified.
package layout
