package label

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"carrierlabel/internal/core/domain/model/carrier"
	"carrierlabel/internal/core/domain/model/parcel"
	"carrierlabel/internal/core/domain/model/sheet"
	"carrierlabel/internal/core/ports"
	"carrierlabel/internal/pkg/errs"
)

// Engine renders shipping labels. It turns packages into a sheet.Document using the
// slot table of the requested decomposition and hands the document to a
// ports.LabelRenderer.
//
// Engine follows these invariants:
//   - Every package is validated before anything is laid out or rendered
//   - FULL puts one label on each page
//   - QUARTER fills the quadrants of a page top-left, top-right, bottom-left,
//     bottom-right before starting the next page
//   - Output is all or nothing: a failed call returns no bytes
//
// It is immutable after NewEngine and safe for concurrent use as long as the
// renderer is.
type Engine struct {
	renderer ports.LabelRenderer
	cfg      config
	logger   *slog.Logger
}

// NewEngine creates an Engine drawing through renderer.
//
// Parameters:
//   - renderer: turns composed documents into bytes (required)
//   - opts: functional options; defaults are the carrier contact block, Czech
//     captions, the day/night badge turned on and slog.Default as logger
//
// Returns:
//   - *Engine: the configured engine
//   - error: ValueIsRequiredError when renderer is nil
//
// Example:
//
//	renderer, _ := pdfrenderer.NewRenderer(logger)
//	engine, err := label.NewEngine(renderer,
//	    label.WithDayNightBadge(false),
//	    label.WithAuthor("Warehouse 3"),
//	)
//	if err != nil {
//	    return err
//	}
//	pdf, err := engine.GenerateLabels(ctx, packages, label.Quarter)
func NewEngine(renderer ports.LabelRenderer, opts ...Option) (*Engine, error) {
	if renderer == nil {
		return nil, errs.NewValueIsRequiredError("renderer")
	}

	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	return &Engine{
		renderer: renderer,
		cfg:      cfg,
		logger:   cfg.logger.With("component", "label_engine"),
	}, nil
}

// ContentType reports the media type GenerateLabels produces.
func (e *Engine) ContentType() string {
	return e.renderer.ContentType()
}

// GenerateLabels renders one document holding a label for every package.
//
// The decomposition is checked before the packages are looked at, and every
// package is checked before anything is rendered, so the call either returns
// the complete document or an error and no bytes.
func (e *Engine) GenerateLabels(ctx context.Context, packages []*parcel.Package, d Decomposition) ([]byte, error) {
	start := time.Now()

	doc, err := e.Compose(packages, d)
	if err != nil {
		return nil, err
	}
	if err = ctx.Err(); err != nil {
		return nil, err
	}

	out, err := e.renderer.Render(ctx, doc)
	if err != nil {
		e.logger.ErrorContext(ctx, "label rendering failed",
			"decomposition", d.String(), "packages", len(packages), "error", err)
		return nil, fmt.Errorf("render labels: %w", err)
	}

	e.logger.InfoContext(ctx, "labels generated",
		"decomposition", d.String(),
		"packages", len(packages),
		"pages", len(doc.Pages),
		"bytes", len(out),
		"duration", time.Since(start))
	return out, nil
}

// Compose lays out the packages without rendering them. It fails for an unknown
// decomposition, an unconstructed package or a package without a number, and
// reports every offending package by its 1-based index.
func (e *Engine) Compose(packages []*parcel.Package, d Decomposition) (*sheet.Document, error) {
	layout, err := LayoutFor(d)
	if err != nil {
		return nil, err
	}
	if err = validatePackages(packages); err != nil {
		return nil, err
	}

	doc := sheet.NewDocument(e.metadata(packages))
	position := TopLeft
	for _, p := range packages {
		var dx, dy float64
		switch d {
		case Full:
			doc.AddPage()
		case Quarter:
			if position > BottomRight {
				position = TopLeft
			}
			if position == TopLeft {
				doc.AddPage()
			}
			if dx, dy, err = position.Offset(); err != nil {
				return nil, err
			}
			position++
		}

		if err = e.place(doc.LastPage(), layout, p, dx, dy); err != nil {
			return nil, fmt.Errorf("package %s: %w", p.PackageNumber(), err)
		}
	}

	e.logger.Debug("labels composed", "decomposition", d.String(), "pages", len(doc.Pages))
	return doc, nil
}

// validatePackages collects the problems of every package, not just the first.
func validatePackages(packages []*parcel.Package) error {
	var errList []error
	for i, p := range packages {
		if err := p.Validate(); err != nil {
			errList = append(errList, fmt.Errorf("package #%d: %w", i+1, err))
			continue
		}
		if err := parcel.ValidatePackageNumber(p.PackageNumber()); err != nil {
			errList = append(errList, fmt.Errorf("package #%d: %w", i+1, err))
		}
	}
	return errors.Join(errList...)
}

// metadata titles the document after the package numbers it holds.
func (e *Engine) metadata(packages []*parcel.Package) sheet.Metadata {
	numbers := make([]string, 0, len(packages))
	for _, p := range packages {
		numbers = append(numbers, p.PackageNumber())
	}
	title := strings.TrimSpace(documentSubject + " " + strings.Join(numbers, ", "))

	return sheet.Metadata{
		Title:    title,
		Subject:  title,
		Keywords: documentKeywords,
		Author:   e.cfg.author,
		Creator:  e.cfg.creator,
	}
}

// place draws the slots of one label shifted by the quadrant offset.
func (e *Engine) place(page *sheet.Page, layout Layout, p *parcel.Package, dx, dy float64) error {
	for _, slot := range layout {
		content, ok, err := e.resolve(slot.Field, p)
		if err != nil {
			return err
		}
		if !ok {
			continue
		}

		x, y := slot.X+dx, slot.Y+dy
		switch slot.Kind {
		case KindText:
			if content == "" {
				continue
			}
			page.Add(sheet.Text{X: x, Y: y, Font: slot.Font, Content: content, Rotation: slot.Rotation})
		case KindCell:
			page.Add(sheet.Cell{
				X:        x,
				Y:        y,
				Width:    slot.Width,
				Height:   slot.Height,
				Font:     slot.Font,
				Content:  content,
				Border:   slot.Border,
				Align:    slot.Align,
				Inverted: slot.Inverted,
			})
		case KindBarcode:
			page.Add(sheet.Barcode{
				X:        x,
				Y:        y,
				Width:    slot.Width,
				Height:   slot.Height,
				Module:   slot.Module,
				Content:  content,
				Rotation: slot.Rotation,
			})
		case KindImage:
			page.Add(sheet.Image{X: x, Y: y, Width: slot.Width, Path: content})
		default:
			return fmt.Errorf("slot for field %d has unknown kind %d", slot.Field, slot.Kind)
		}
	}
	return nil
}

// resolve returns the text of field for p. ok is false when the slot is left out.
func (e *Engine) resolve(field Field, p *parcel.Package) (content string, ok bool, err error) {
	contact, texts := e.cfg.contact, e.cfg.texts
	recipient := p.Recipient()
	sender := p.Sender()
	if sender == nil {
		sender = e.cfg.defaultSender
	}

	switch field {
	case FieldLogo:
		return contact.LogoPath, contact.LogoPath != "", nil
	case FieldContactPhone:
		return contact.Phone, true, nil
	case FieldContactEmail:
		return contact.Email, true, nil
	case FieldContactWeb:
		return contact.Web, true, nil
	case FieldBarcode:
		payload, checksumErr := parcel.PackageNumberWithChecksum(p.PackageNumber())
		return payload, checksumErr == nil, checksumErr
	case FieldBarcodeNumber:
		return p.PackageNumber(), true, nil
	case FieldPackagePosition:
		return fmt.Sprintf("%d/%d", p.PackagePosition(), p.PackageCount()), true, nil
	case FieldCODLabel:
		return texts.CODLabel, p.IsCashOnDelivery(), nil
	case FieldCODAmount:
		if !p.IsCashOnDelivery() || p.PaymentInfo() == nil {
			return "", false, nil
		}
		return p.PaymentInfo().CashOnDeliveryPrice().String(), true, nil
	case FieldRecipientHeading:
		return texts.RecipientHeading, true, nil
	case FieldRecipientName:
		return recipient.Name(), recipient.Name() != "", nil
	case FieldRecipientContact:
		return recipient.Contact(), true, nil
	case FieldRecipientStreet:
		return recipient.Street(), true, nil
	case FieldRecipientCity:
		return fmt.Sprintf("%s, %s", recipient.City(), recipient.Country()), true, nil
	case FieldRecipientZipCode:
		return recipient.ZipCode(), true, nil
	case FieldRecipientPhone:
		return fmt.Sprintf(texts.PhoneFormat, recipient.Phone()), true, nil
	case FieldRecipientFrame, FieldSenderFrame:
		return "", true, nil
	case FieldDayNight:
		if !e.cfg.dayNightBadge {
			return "", false, nil
		}
		if p.HasService(carrier.ServiceEveningDelivery) {
			return texts.Evening, true, nil
		}
		return texts.Day, true, nil
	case FieldSenderHeading:
		return texts.SenderHeading, true, nil
	case FieldSenderName:
		return senderLine(sender, parcel.Party.Name)
	case FieldSenderName2:
		return senderLine(sender, parcel.Party.Name2)
	case FieldSenderStreet:
		return senderLine(sender, parcel.Party.Street)
	case FieldSenderCity:
		return senderLine(sender, func(s parcel.Party) string {
			return fmt.Sprintf("%s %s %s", s.ZipCode(), s.City(), s.Country())
		})
	case FieldNote:
		if p.Note() == "" {
			return "", false, nil
		}
		return texts.NotePrefix + p.Note(), true, nil
	default:
		return "", false, fmt.Errorf("unknown label field %d", field)
	}
}

func senderLine(sender parcel.Sender, line func(parcel.Party) string) (string, bool, error) {
	if sender == nil {
		return "", false, nil
	}
	return line(sender), true, nil
}
