package pdfrenderer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInterleaved2of5(t *testing.T) {
	bars, modules, err := interleaved2of5("409900193520")
	require.NoError(t, err)

	require.NotEmpty(t, bars)
	assert.Equal(t, 0, bars[0].start, "symbol starts with a bar")
	last := bars[len(bars)-1]
	assert.Equal(t, modules, last.start+last.width, "symbol ends with a bar")

	for i := 1; i < len(bars); i++ {
		assert.Greater(t, bars[i].start, bars[i-1].start+bars[i-1].width-1, "bars must not overlap")
	}
}

func TestInterleaved2of5_PadsOddLength(t *testing.T) {
	oddBars, oddModules, err := interleaved2of5("123")
	require.NoError(t, err)
	evenBars, evenModules, err := interleaved2of5("0123")
	require.NoError(t, err)

	assert.Equal(t, evenModules, oddModules)
	assert.Equal(t, evenBars, oddBars)
}

func TestInterleaved2of5_LongerContentIsWider(t *testing.T) {
	_, short, err := interleaved2of5("12")
	require.NoError(t, err)
	_, long, err := interleaved2of5("1234")
	require.NoError(t, err)

	assert.Greater(t, long, short)
}

func TestInterleaved2of5_Errors(t *testing.T) {
	for _, digits := range []string{"", "12a4"} {
		_, _, err := interleaved2of5(digits)
		assert.Error(t, err, digits)
	}
}
