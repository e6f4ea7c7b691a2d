package pdfrenderer

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
)

// The label fonts are the Go fonts, so widths measured here match the glyphs
// embedded into the PDF.
type fontSet struct {
	regular *opentype.Font
	bold    *opentype.Font
}

func parseFonts() (fontSet, error) {
	regular, err := opentype.Parse(goregular.TTF)
	if err != nil {
		return fontSet{}, fmt.Errorf("parse regular font: %w", err)
	}
	bold, err := opentype.Parse(gobold.TTF)
	if err != nil {
		return fontSet{}, fmt.Errorf("parse bold font: %w", err)
	}
	return fontSet{regular: regular, bold: bold}, nil
}

type faceKey struct {
	bold bool
	size float64
}

// measurer caches faces for one rendering run. It is not safe for concurrent use.
type measurer struct {
	fonts fontSet
	faces map[faceKey]font.Face
}

func newMeasurer(fonts fontSet) *measurer {
	return &measurer{
		fonts: fonts,
		faces: make(map[faceKey]font.Face),
	}
}

func (m *measurer) face(bold bool, size float64) (font.Face, error) {
	key := faceKey{bold: bold, size: size}
	if f, ok := m.faces[key]; ok {
		return f, nil
	}

	src := m.fonts.regular
	if bold {
		src = m.fonts.bold
	}
	// At 72 DPI one pixel is one point.
	f, err := opentype.NewFace(src, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingNone,
	})
	if err != nil {
		return nil, err
	}
	m.faces[key] = f
	return f, nil
}

// width returns the advance of s in millimetres.
func (m *measurer) width(s string, bold bool, size float64) (float64, error) {
	f, err := m.face(bold, size)
	if err != nil {
		return 0, err
	}
	return points(font.MeasureString(f, s)) / ptPerMM, nil
}

// extents returns ascent and descent in points, both positive.
func (m *measurer) extents(bold bool, size float64) (ascent, descent float64, err error) {
	f, err := m.face(bold, size)
	if err != nil {
		return 0, 0, err
	}
	metrics := f.Metrics()
	return points(metrics.Ascent), points(metrics.Descent), nil
}

// wrap breaks s into lines no wider than maxWidth millimetres. Explicit line
// breaks are kept; words longer than a line are split between runes.
func (m *measurer) wrap(s string, bold bool, size, maxWidth float64) ([]string, error) {
	var lines []string
	for _, paragraph := range strings.Split(s, "\n") {
		wrapped, err := m.wrapParagraph(paragraph, bold, size, maxWidth)
		if err != nil {
			return nil, err
		}
		lines = append(lines, wrapped...)
	}
	return lines, nil
}

func (m *measurer) wrapParagraph(s string, bold bool, size, maxWidth float64) ([]string, error) {
	words := strings.Fields(s)
	if len(words) == 0 {
		return []string{""}, nil
	}

	var (
		lines   []string
		current string
	)
	for _, word := range words {
		candidate := word
		if current != "" {
			candidate = current + " " + word
		}
		w, err := m.width(candidate, bold, size)
		if err != nil {
			return nil, err
		}
		if w <= maxWidth {
			current = candidate
			continue
		}
		if current != "" {
			lines = append(lines, current)
		}

		pieces, err := m.splitWord(word, bold, size, maxWidth)
		if err != nil {
			return nil, err
		}
		lines = append(lines, pieces[:len(pieces)-1]...)
		current = pieces[len(pieces)-1]
	}
	return append(lines, current), nil
}

func (m *measurer) splitWord(word string, bold bool, size, maxWidth float64) ([]string, error) {
	var pieces []string
	start := 0
	for i := 0; i < len(word); {
		_, n := utf8.DecodeRuneInString(word[i:])
		w, err := m.width(word[start:i+n], bold, size)
		if err != nil {
			return nil, err
		}
		if w > maxWidth && i > start {
			pieces = append(pieces, word[start:i])
			start = i
		}
		i += n
	}
	return append(pieces, word[start:]), nil
}

func points(v fixed.Int26_6) float64 {
	return float64(v) / 64
}
