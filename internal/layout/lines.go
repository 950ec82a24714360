package layout

import (
	"math"
	"sort"
	"strings"

	"github.com/ironsheep/image-text-extract/internal/ocr"
)

// DefaultYTolerance is the maximum vertical-center distance, in pixels,
// between consecutive detections on the same line.
const DefaultYTolerance = 10.0

// Line is a group of detections judged to share one visual text line,
// ordered left to right.
type Line struct {
	Detections []ocr.Detection `json:"detections"`
}

// Text joins the member texts with a single space.
func (l Line) Text() string {
	parts := make([]string, len(l.Detections))
	for i, d := range l.Detections {
		parts[i] = d.Text
	}
	return strings.Join(parts, " ")
}

// Document is the reconstructed text of one image: lines in reading order.
type Document struct {
	Lines []Line `json:"lines"`
}

// String joins the line texts with a single newline.
func (d Document) String() string {
	lines := make([]string, len(d.Lines))
	for i, l := range d.Lines {
		lines[i] = l.Text()
	}
	return strings.Join(lines, "\n")
}

// IsEmpty reports whether the document has no usable text: no lines, or
// nothing but whitespace once assembled.
func (d Document) IsEmpty() bool {
	return strings.TrimSpace(d.String()) == ""
}

// WordCount returns the total number of detections across all lines.
func (d Document) WordCount() int {
	n := 0
	for _, l := range d.Lines {
		n += len(l.Detections)
	}
	return n
}

// Reconstruct orders detections and merges same-line text into a Document.
//
// Parameters:
//   - detections: Engine output in any order. Not modified.
//   - yTolerance: Maximum vertical-center distance between consecutive
//     sorted detections that keeps them on the same line. Larger values merge
//     more vertically offset text. Use DefaultYTolerance when in doubt.
//
// Returns:
//   - Document: Lines in top-to-bottom order. Empty when detections is empty.
//
// The result is deterministic: the same detections always produce the same
// document.
func Reconstruct(detections []ocr.Detection, yTolerance float64) Document {
	return Document{Lines: GroupLines(detections, yTolerance)}
}

// GroupLines sorts detections into reading order and splits them into lines.
//
// Every input detection appears in exactly one returned Line. The comparison
// that opens a new line is against the previously placed detection, so line
// membership can drift down a block of closely spaced text.
func GroupLines(detections []ocr.Detection, yTolerance float64) []Line {
	if len(detections) == 0 {
		return nil
	}

	sorted := sortReadingOrder(detections)

	var lines []Line
	var current []ocr.Detection
	lastY := 0.0

	for i, d := range sorted {
		y := d.YCenter()
		if i > 0 && math.Abs(y-lastY) > yTolerance {
			if len(current) > 0 {
				lines = append(lines, Line{Detections: current})
			}
			current = nil
		}
		current = append(current, d)
		lastY = y
	}

	if len(current) > 0 {
		lines = append(lines, Line{Detections: current})
	}

	return lines
}

// sortReadingOrder returns a copy of detections sorted by vertical center,
// then left edge. Exact ties keep their input order.
func sortReadingOrder(detections []ocr.Detection) []ocr.Detection {
	type keyed struct {
		det  ocr.Detection
		y, x float64
	}

	items := make([]keyed, len(detections))
	for i, d := range detections {
		items[i] = keyed{det: d, y: d.YCenter(), x: d.XMin()}
	}

	sort.SliceStable(items, func(i, j int) bool {
		if items[i].y != items[j].y {
			return items[i].y < items[j].y
		}
		return items[i].x < items[j].x
	})

	sorted := make([]ocr.Detection, len(items))
	for i, it := range items {
		sorted[i] = it.det
	}
	return sorted
}
