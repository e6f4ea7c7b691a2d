package pdfrenderer

import (
	"fmt"
	"math"

	"carrierlabel/internal/core/domain/model/sheet"

	"golang.org/x/text/unicode/norm"
	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/pdf/graphics/color"
	"seehuhn.de/go/pdf/graphics/content/builder"
	pdfimage "seehuhn.de/go/pdf/graphics/image"
)

var (
	black = color.DeviceGray(0)
	white = color.DeviceGray(1)
)

// drawer turns the elements of one sheet page into a content stream.
type drawer struct {
	b      *builder.Builder
	page   page
	fonts  pdfFonts
	m      *measurer
	images *imageCache
}

func (d *drawer) drawPage(p *sheet.Page) error {
	for _, e := range p.Elements {
		var err error
		switch el := e.(type) {
		case sheet.Text:
			err = d.drawText(el)
		case sheet.Cell:
			err = d.drawCell(el)
		case sheet.Barcode:
			err = d.drawBarcode(el)
		case sheet.Image:
			err = d.drawImage(el)
		default:
			err = fmt.Errorf("unsupported element %T", e)
		}
		if err != nil {
			return err
		}
	}
	return nil
}

func (d *drawer) drawText(t sheet.Text) error {
	rotated := t.Rotation != 0
	if rotated {
		d.b.PushGraphicsState()
		d.b.Transform(rotateAbout(t.Rotation, d.page.x(t.X), d.page.y(t.Y)))
	}

	if err := d.showLine(t.X+cellPadding, t.Y, t.Content, t.Font); err != nil {
		return fmt.Errorf("text %q: %w", t.Content, err)
	}

	if rotated {
		d.b.PopGraphicsState()
	}
	return nil
}

func (d *drawer) drawCell(c sheet.Cell) error {
	inner := c.Width - 2*cellPadding
	if inner <= 0 {
		inner = c.Width
	}
	lines, err := d.m.wrap(norm.NFC.String(c.Content), c.Font.Bold, c.Font.Size, inner)
	if err != nil {
		return fmt.Errorf("cell %q: %w", c.Content, err)
	}

	lh := lineHeight(c.Font.Size)
	height := math.Max(c.Height, float64(len(lines))*lh)

	d.b.PushGraphicsState()
	defer d.b.PopGraphicsState()

	if c.Inverted {
		d.b.SetFillColor(black)
		d.rect(c.X, c.Y, c.Width, height)
		d.b.Fill()
		d.b.SetFillColor(white)
	}
	if c.Border > 0 {
		d.b.SetLineWidth(mm(c.Border))
		d.b.SetStrokeColor(black)
		d.rect(c.X, c.Y, c.Width, height)
		d.b.Stroke()
	}

	for i, line := range lines {
		if line == "" {
			continue
		}
		w, err := d.m.width(line, c.Font.Bold, c.Font.Size)
		if err != nil {
			return fmt.Errorf("cell %q: %w", c.Content, err)
		}

		x := c.X + cellPadding
		switch c.Align {
		case sheet.AlignCenter:
			x = c.X + (c.Width-w)/2
		case sheet.AlignRight:
			x = c.X + c.Width - cellPadding - w
		}
		if err = d.showLine(x, c.Y+float64(i)*lh, line, c.Font); err != nil {
			return fmt.Errorf("cell %q: %w", c.Content, err)
		}
	}
	return nil
}

// showLine sets one line of text whose line box starts at (x, top) in millimetres.
func (d *drawer) showLine(x, top float64, s string, f sheet.Font) error {
	ascent, descent, err := d.m.extents(f.Bold, f.Size)
	if err != nil {
		return err
	}

	d.b.TextBegin()
	d.b.TextSetFont(d.fonts.pick(f.Bold), f.Size)
	d.b.TextFirstLine(d.page.x(x), d.page.y(top+baselineOffset(f.Size, ascent, descent)))
	d.b.TextShow(norm.NFC.String(s))
	d.b.TextEnd()
	return nil
}

func (d *drawer) drawBarcode(bc sheet.Barcode) error {
	bars, modules, err := interleaved2of5(bc.Content)
	if err != nil {
		return err
	}
	unit := bc.Width / float64(modules)

	d.b.PushGraphicsState()
	defer d.b.PopGraphicsState()

	if bc.Rotation != 0 {
		d.b.Transform(rotateAbout(bc.Rotation, d.page.x(bc.X), d.page.y(bc.Y)))
	}
	d.b.SetFillColor(black)
	for _, b := range bars {
		d.rect(bc.X+float64(b.start)*unit, bc.Y, float64(b.width)*unit, bc.Height)
	}
	d.b.Fill()
	return nil
}

func (d *drawer) drawImage(im sheet.Image) error {
	img, err := d.images.load(im.Path)
	if err != nil {
		return err
	}
	bounds := img.Bounds()
	height := im.Width * float64(bounds.Dy()) / float64(bounds.Dx())

	d.b.PushGraphicsState()
	defer d.b.PopGraphicsState()

	// The image XObject occupies the unit square.
	d.b.Transform(matrix.Matrix{
		mm(im.Width), 0,
		0, mm(height),
		d.page.x(im.X), d.page.y(im.Y + height),
	})
	d.b.DrawXObject(pdfimage.FromImage(img, color.SpaceDeviceRGB, 8))
	return nil
}

// rect adds a rectangle given by its top-left corner in millimetres to the path.
func (d *drawer) rect(x, y, w, h float64) {
	d.b.Rectangle(d.page.x(x), d.page.y(y+h), mm(w), mm(h))
}
