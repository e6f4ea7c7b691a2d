package pdfrenderer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"seehuhn.de/go/geom/matrix"
)

func apply(m matrix.Matrix, x, y float64) (float64, float64) {
	return m[0]*x + m[2]*y + m[4], m[1]*x + m[3]*y + m[5]
}

func TestMM(t *testing.T) {
	assert.InDelta(t, 72.0, mm(25.4), 1e-9)
	assert.InDelta(t, 0.0, mm(0), 1e-9)
}

func TestPage_FlipsVerticalAxis(t *testing.T) {
	p := page{heightMM: 210}

	assert.InDelta(t, mm(210), p.y(0), 1e-9)
	assert.InDelta(t, 0.0, p.y(210), 1e-9)
	assert.InDelta(t, mm(10), p.x(10), 1e-9)
}

func TestLineHeight(t *testing.T) {
	assert.InDelta(t, 12.5/ptPerMM, lineHeight(10), 1e-9)
}

func TestBaselineOffset(t *testing.T) {
	got := baselineOffset(10, 9, 2)

	assert.InDelta(t, 9.75/ptPerMM, got, 1e-9)
	assert.Less(t, got, lineHeight(10))
}

func TestRotateAbout(t *testing.T) {
	tests := []struct {
		name         string
		degrees      float64
		x, y         float64
		wantX, wantY float64
	}{
		{name: "pivot is fixed", degrees: 90, x: 10, y: 20, wantX: 10, wantY: 20},
		{name: "quarter turn", degrees: 90, x: 11, y: 20, wantX: 10, wantY: 21},
		{name: "three quarter turn", degrees: 270, x: 11, y: 20, wantX: 10, wantY: 19},
		{name: "half turn", degrees: 180, x: 11, y: 20, wantX: 9, wantY: 20},
		{name: "identity", degrees: 0, x: 11, y: 25, wantX: 11, wantY: 25},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			x, y := apply(rotateAbout(tt.degrees, 10, 20), tt.x, tt.y)

			assert.InDelta(t, tt.wantX, x, 1e-9)
			assert.InDelta(t, tt.wantY, y, 1e-9)
		})
	}
}
