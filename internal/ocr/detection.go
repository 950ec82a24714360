package ocr

import (
	"image"
	"math"
)

// Point is a position in image pixel coordinates.
// The origin is the top-left corner, X increases rightward and Y downward.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Quad is a four-point bounding polygon around a piece of text.
//
// For axis-aligned boxes the points are ordered top-left, top-right,
// bottom-right, bottom-left. Engines that report rotated boxes may use any
// consistent winding; consumers only rely on the coordinate aggregates.
type Quad [4]Point

// QuadFromRect converts an axis-aligned rectangle into a Quad.
func QuadFromRect(r image.Rectangle) Quad {
	return Quad{
		{X: float64(r.Min.X), Y: float64(r.Min.Y)},
		{X: float64(r.Max.X), Y: float64(r.Min.Y)},
		{X: float64(r.Max.X), Y: float64(r.Max.Y)},
		{X: float64(r.Min.X), Y: float64(r.Max.Y)},
	}
}

// YCenter returns the arithmetic mean of the four y-coordinates.
func (q Quad) YCenter() float64 {
	sum := 0.0
	for _, p := range q {
		sum += p.Y
	}
	return sum / float64(len(q))
}

// XMin returns the smallest x-coordinate of the four points.
func (q Quad) XMin() float64 {
	xMin := math.Inf(1)
	for _, p := range q {
		if p.X < xMin {
			xMin = p.X
		}
	}
	return xMin
}

// Detection is one unit of engine output: a located piece of recognized text.
type Detection struct {
	// Quad is the bounding polygon in the source image.
	Quad Quad `json:"quad"`

	// Text is the recognized text content.
	Text string `json:"text"`

	// Confidence is the engine's confidence score (0.0 to 1.0).
	Confidence float64 `json:"confidence"`
}

// YCenter returns the vertical center of the detection's bounding polygon.
func (d Detection) YCenter() float64 {
	return d.Quad.YCenter()
}

// XMin returns the left-most x-coordinate of the detection's bounding polygon.
func (d Detection) XMin() float64 {
	return d.Quad.XMin()
}
