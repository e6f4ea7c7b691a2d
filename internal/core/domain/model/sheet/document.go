package sheet

import "strings"

// A4 landscape in millimetres.
const (
	A4LandscapeWidth  = 297.0
	A4LandscapeHeight = 210.0
)

// Metadata ends up in the document information dictionary.
type Metadata struct {
	Title    string
	Subject  string
	Keywords string
	Author   string
	Creator  string
}

type Document struct {
	Metadata Metadata
	Width    float64
	Height   float64
	Pages    []*Page
}

// NewDocument returns an empty A4 landscape document.
func NewDocument(meta Metadata) *Document {
	return &Document{
		Metadata: meta,
		Width:    A4LandscapeWidth,
		Height:   A4LandscapeHeight,
	}
}

// AddPage appends a blank page and returns it.
func (d *Document) AddPage() *Page {
	p := &Page{}
	d.Pages = append(d.Pages, p)
	return p
}

// LastPage returns the page elements are currently added to, or nil for an empty document.
func (d *Document) LastPage() *Page {
	if len(d.Pages) == 0 {
		return nil
	}
	return d.Pages[len(d.Pages)-1]
}

type Page struct {
	Elements []Element
}

func (p *Page) Add(e Element) {
	p.Elements = append(p.Elements, e)
}

// Texts returns the visible strings of the page in drawing order. Frames and images
// contribute nothing, barcodes contribute their payload.
func (p *Page) Texts() []string {
	var out []string
	for _, e := range p.Elements {
		switch el := e.(type) {
		case Text:
			out = append(out, el.Content)
		case Cell:
			if el.Content != "" {
				out = append(out, el.Content)
			}
		case Barcode:
			out = append(out, el.Content)
		}
	}
	return out
}

// Contains reports whether any text or cell of the page contains s.
func (p *Page) Contains(s string) bool {
	for _, t := range p.Texts() {
		if strings.Contains(t, s) {
			return true
		}
	}
	return false
}
