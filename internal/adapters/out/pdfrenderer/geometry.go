package pdfrenderer

import (
	"math"

	"seehuhn.de/go/geom/matrix"
)

const (
	// ptPerMM converts millimetres to PDF points.
	ptPerMM = 72 / 25.4

	// cellHeightRatio is the line height as a multiple of the font size.
	cellHeightRatio = 1.25

	// cellPadding is the horizontal inner padding of text cells in millimetres.
	cellPadding = 1.0
)

// page maps the top-left millimetre coordinates of a sheet to PDF points with
// the origin in the bottom-left corner.
type page struct {
	heightMM float64
}

func mm(v float64) float64 {
	return v * ptPerMM
}

func (p page) x(xMM float64) float64 {
	return mm(xMM)
}

func (p page) y(yMM float64) float64 {
	return mm(p.heightMM - yMM)
}

// lineHeight is the height of one text line in millimetres.
func lineHeight(fontSize float64) float64 {
	return fontSize * cellHeightRatio / ptPerMM
}

// baselineOffset is the distance in millimetres from the top of a line to its
// baseline. The glyph box is centred vertically in the line. Ascent and descent
// are positive font units already scaled to points.
func baselineOffset(fontSize, ascent, descent float64) float64 {
	return (fontSize*cellHeightRatio + ascent - descent) / 2 / ptPerMM
}

// rotateAbout returns the matrix turning the page counter-clockwise by degrees
// around (px, py) given in PDF points.
func rotateAbout(degrees, px, py float64) matrix.Matrix {
	rad := degrees * math.Pi / 180
	cos, sin := math.Cos(rad), math.Sin(rad)
	return matrix.Matrix{
		cos, sin,
		-sin, cos,
		px - (px*cos - py*sin),
		py - (px*sin + py*cos),
	}
}
