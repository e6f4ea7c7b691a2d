// Package pdfrenderer renders composed label sheets to PDF.
package pdfrenderer

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"time"

	"carrierlabel/internal/core/domain/model/sheet"

	"seehuhn.de/go/pdf"
	"seehuhn.de/go/pdf/font/gofont"
	"seehuhn.de/go/pdf/font/truetype"
	"seehuhn.de/go/pdf/graphics/content"
	"seehuhn.de/go/pdf/graphics/content/builder"
	pdfpage "seehuhn.de/go/pdf/page"
	"seehuhn.de/go/pdf/pagetree"
)

const (
	contentType = "application/pdf"
	producer    = "carrierlabel"
)

// Renderer implements ports.LabelRenderer. A Renderer is safe for concurrent use;
// every Render call builds its own writer and fonts.
type Renderer struct {
	fonts  fontSet
	images *imageCache
	logger *slog.Logger
}

func NewRenderer(logger *slog.Logger) (*Renderer, error) {
	if logger == nil {
		logger = slog.Default()
	}

	fonts, err := parseFonts()
	if err != nil {
		return nil, err
	}

	return &Renderer{
		fonts:  fonts,
		images: newImageCache(),
		logger: logger.With("component", "pdf_renderer"),
	}, nil
}

func (r *Renderer) ContentType() string {
	return contentType
}

// Render writes doc as a PDF 1.7 file with one PDF page per sheet page.
func (r *Renderer) Render(ctx context.Context, doc *sheet.Document) ([]byte, error) {
	if doc == nil {
		return nil, fmt.Errorf("render: document is nil")
	}
	start := time.Now()

	var buf bytes.Buffer
	w, err := pdf.NewWriter(&buf, pdf.V1_7, nil)
	if err != nil {
		return nil, err
	}
	rm := pdf.NewResourceManager(w)
	tree := pagetree.NewWriter(w, rm)

	fonts, err := newPDFFonts()
	if err != nil {
		return nil, err
	}
	m := newMeasurer(r.fonts)
	mediaBox := &pdf.Rectangle{URx: mm(doc.Width), URy: mm(doc.Height)}

	for i, sheetPage := range doc.Pages {
		if err = ctx.Err(); err != nil {
			return nil, err
		}

		res := &content.Resources{}
		d := &drawer{
			b:      builder.New(content.Page, res),
			page:   page{heightMM: doc.Height},
			fonts:  fonts,
			m:      m,
			images: r.images,
		}
		if err = d.drawPage(sheetPage); err != nil {
			return nil, fmt.Errorf("page %d: %w", i+1, err)
		}
		if d.b.Err != nil {
			return nil, fmt.Errorf("page %d: %w", i+1, d.b.Err)
		}

		p := &pdfpage.Page{
			MediaBox:  mediaBox,
			Resources: res,
			Contents:  []*pdfpage.Content{{Operators: d.b.Stream}},
		}
		if err = tree.AppendPageRef(w.Alloc(), p); err != nil {
			return nil, fmt.Errorf("page %d: %w", i+1, err)
		}
	}

	treeRef, err := tree.Close()
	if err != nil {
		return nil, err
	}
	meta := w.GetMeta()
	meta.Catalog.Pages = treeRef
	meta.Info = &pdf.Info{
		Title:    pdf.TextString(doc.Metadata.Title),
		Subject:  pdf.TextString(doc.Metadata.Subject),
		Keywords: pdf.TextString(doc.Metadata.Keywords),
		Author:   pdf.TextString(doc.Metadata.Author),
		Creator:  pdf.TextString(doc.Metadata.Creator),
		Producer: pdf.TextString(producer),
	}

	if err = rm.Close(); err != nil {
		return nil, err
	}
	if err = w.Close(); err != nil {
		return nil, err
	}

	r.logger.DebugContext(ctx, "document rendered",
		"pages", len(doc.Pages),
		"bytes", buf.Len(),
		"duration", time.Since(start))
	return buf.Bytes(), nil
}

// pdfFonts are the embedded counterparts of the measuring fonts. Embedded fonts
// record the glyphs they used, so a set must not be shared between documents.
type pdfFonts struct {
	regular *truetype.Simple
	bold    *truetype.Simple
}

func newPDFFonts() (pdfFonts, error) {
	regular, err := gofont.Regular.NewSimple(nil)
	if err != nil {
		return pdfFonts{}, fmt.Errorf("load regular font: %w", err)
	}
	bold, err := gofont.Bold.NewSimple(nil)
	if err != nil {
		return pdfFonts{}, fmt.Errorf("load bold font: %w", err)
	}
	return pdfFonts{regular: regular, bold: bold}, nil
}

func (f pdfFonts) pick(bold bool) *truetype.Simple {
	if bold {
		return f.bold
	}
	return f.regular
}
