package pdfrenderer

import (
	"fmt"

	"github.com/boombuler/barcode/twooffive"
)

// bar is a dark run of an interleaved 2 of 5 symbol, measured in modules.
type bar struct {
	start int
	width int
}

// interleaved2of5 encodes digits and returns the dark bars together with the
// total symbol width in modules, including start and stop patterns. An odd
// number of digits gets a leading zero.
func interleaved2of5(digits string) ([]bar, int, error) {
	if digits == "" {
		return nil, 0, fmt.Errorf("encode interleaved 2 of 5: no digits")
	}
	if len(digits)%2 != 0 {
		digits = "0" + digits
	}

	code, err := twooffive.Encode(digits, true)
	if err != nil {
		return nil, 0, fmt.Errorf("encode interleaved 2 of 5 %q: %w", digits, err)
	}

	bounds := code.Bounds()
	var (
		bars []bar
		run  *bar
	)
	for x := bounds.Min.X; x < bounds.Max.X; x++ {
		r, g, b, _ := code.At(x, bounds.Min.Y).RGBA()
		dark := r == 0 && g == 0 && b == 0
		switch {
		case dark && run == nil:
			bars = append(bars, bar{start: x - bounds.Min.X, width: 1})
			run = &bars[len(bars)-1]
		case dark:
			run.width++
		default:
			run = nil
		}
	}

	return bars, bounds.Dx(), nil
}
