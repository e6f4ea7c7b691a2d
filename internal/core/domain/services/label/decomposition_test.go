package label_test

import (
	"testing"

	"carrierlabel/internal/core/domain/services/label"
	"carrierlabel/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDecomposition(t *testing.T) {
	tests := []struct {
		in   string
		want label.Decomposition
	}{
		{in: "full", want: label.Full},
		{in: " QUARTER ", want: label.Quarter},
		{in: "1", want: label.Full},
		{in: "2", want: label.Quarter},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := label.ParseDecomposition(tt.in)

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	for _, in := range []string{"99", "half", ""} {
		_, err := label.ParseDecomposition(in)

		require.ErrorIs(t, err, label.ErrUnknownDecomposition, in)
		require.ErrorIs(t, err, errs.ErrValueIsNotAllowed, in)
	}
}

func TestDecomposition_LabelsPerPage(t *testing.T) {
	assert.Equal(t, 1, label.Full.LabelsPerPage())
	assert.Equal(t, 4, label.Quarter.LabelsPerPage())
	assert.Equal(t, "unknown(7)", label.Decomposition(7).String())
}

func TestPosition_Offset(t *testing.T) {
	tests := []struct {
		position label.Position
		x, y     float64
	}{
		{position: label.TopLeft, x: 0, y: 0},
		{position: label.TopRight, x: 150, y: 0},
		{position: label.BottomLeft, x: 0, y: 98},
		{position: label.BottomRight, x: 150, y: 98},
	}

	for _, tt := range tests {
		t.Run(tt.position.String(), func(t *testing.T) {
			x, y, err := tt.position.Offset()

			require.NoError(t, err)
			assert.InDelta(t, tt.x, x, 0)
			assert.InDelta(t, tt.y, y, 0)
		})
	}

	t.Run("positions outside the page quadrants fail", func(t *testing.T) {
		for _, p := range []label.Position{0, 5} {
			_, _, err := p.Offset()

			require.ErrorIs(t, err, label.ErrUnknownQuadrant)
			require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
		}
	})
}

func TestDecomposition_PageCount(t *testing.T) {
	assert.Equal(t, 0, label.Full.PageCount(0))
	assert.Equal(t, 3, label.Full.PageCount(3))
	assert.Equal(t, 1, label.Quarter.PageCount(4))
	assert.Equal(t, 2, label.Quarter.PageCount(5))
}
