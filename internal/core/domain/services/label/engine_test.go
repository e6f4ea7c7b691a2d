package label_test

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"carrierlabel/internal/core/domain/model/carrier"
	"carrierlabel/internal/core/domain/model/kernel"
	"carrierlabel/internal/core/domain/model/parcel"
	"carrierlabel/internal/core/domain/model/sheet"
	"carrierlabel/internal/core/domain/services/label"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockRenderer struct{ mock.Mock }

func (m *MockRenderer) Render(ctx context.Context, doc *sheet.Document) ([]byte, error) {
	args := m.Called(ctx, doc)
	if b, ok := args.Get(0).([]byte); ok {
		return b, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockRenderer) ContentType() string { return "application/pdf" }

type packageOption func(*parcel.PackageParams)

func withCOD(t *testing.T, amount float64) packageOption {
	return func(p *parcel.PackageParams) {
		price, err := kernel.NewMoney(amount, "CZK")
		require.NoError(t, err)
		payment, err := parcel.NewPayment(parcel.PaymentParams{CashOnDeliveryPrice: price})
		require.NoError(t, err)
		p.ProductType = carrier.ProductParcelBusinessCOD
		p.PaymentInfo = payment
	}
}

func withSender(t *testing.T, name string) packageOption {
	return func(p *parcel.PackageParams) {
		p.Sender = newSender(t, name)
	}
}

func withService(t *testing.T, code carrier.ServiceCode) packageOption {
	return func(p *parcel.PackageParams) {
		svc, err := parcel.NewService(code)
		require.NoError(t, err)
		p.Services = append(p.Services, svc)
	}
}

func newSender(t *testing.T, name string) *parcel.Address {
	t.Helper()
	s, err := parcel.NewSender(parcel.AddressParams{
		Name:    name,
		Name2:   "Expedice",
		Street:  "Skladová 1",
		City:    "Kolín",
		ZipCode: "28002",
		Country: "CZ",
	})
	require.NoError(t, err)
	return s
}

func newPackage(t *testing.T, number string, opts ...packageOption) *parcel.Package {
	t.Helper()
	recipient, err := parcel.NewRecipient(parcel.AddressParams{
		Name:    "Jan Novák",
		Contact: "Jan Novák",
		Street:  "Vinohradská 12",
		City:    "Praha",
		ZipCode: "12000",
		Country: "CZ",
		Phone:   "777123456",
	})
	require.NoError(t, err)

	params := parcel.PackageParams{
		PackageNumber: number,
		ProductType:   carrier.ProductParcelBusiness,
		DepoCode:      carrier.DepoPrahaJinocany,
		Recipient:     recipient,
	}
	for _, opt := range opts {
		opt(&params)
	}

	p, err := parcel.NewPackage(params)
	require.NoError(t, err)
	return p
}

func newEngine(t *testing.T, opts ...label.Option) (*label.Engine, *MockRenderer) {
	t.Helper()
	renderer := new(MockRenderer)
	engine, err := label.NewEngine(renderer, opts...)
	require.NoError(t, err)
	return engine, renderer
}

func barcodes(page *sheet.Page) []sheet.Barcode {
	var out []sheet.Barcode
	for _, e := range page.Elements {
		if b, ok := e.(sheet.Barcode); ok {
			out = append(out, b)
		}
	}
	return out
}

func TestNewEngine(t *testing.T) {
	_, err := label.NewEngine(nil)

	require.Error(t, err)
}

func TestEngine_GenerateLabels(t *testing.T) {
	t.Run("empty input renders a document without pages", func(t *testing.T) {
		ctx := t.Context()
		engine, renderer := newEngine(t)
		renderer.On("Render", ctx, mock.MatchedBy(func(doc *sheet.Document) bool {
			return len(doc.Pages) == 0
		})).Return([]byte("%PDF-1.7"), nil).Once()

		out, err := engine.GenerateLabels(ctx, nil, label.Full)

		require.NoError(t, err)
		assert.Equal(t, []byte("%PDF-1.7"), out)
		renderer.AssertExpectations(t)
	})

	t.Run("unknown decomposition fails before packages are read", func(t *testing.T) {
		engine, renderer := newEngine(t)
		packages := []*parcel.Package{nil, {}}

		_, err := engine.GenerateLabels(t.Context(), packages, label.Decomposition(99))

		require.ErrorIs(t, err, label.ErrUnknownDecomposition)
		renderer.AssertNotCalled(t, "Render", mock.Anything, mock.Anything)
	})

	t.Run("invalid package stops rendering", func(t *testing.T) {
		engine, renderer := newEngine(t)
		packages := []*parcel.Package{newPackage(t, "40990019352"), newPackage(t, "")}

		_, err := engine.GenerateLabels(t.Context(), packages, label.Full)

		require.ErrorIs(t, err, parcel.ErrInvalidPackageNumber)
		assert.Contains(t, err.Error(), "package #2")
		renderer.AssertNotCalled(t, "Render", mock.Anything, mock.Anything)
	})

	t.Run("renderer failure is returned without output", func(t *testing.T) {
		ctx := t.Context()
		engine, renderer := newEngine(t)
		renderer.On("Render", ctx, mock.Anything).Return(nil, errors.New("font missing")).Once()

		out, err := engine.GenerateLabels(ctx, []*parcel.Package{newPackage(t, "1")}, label.Quarter)

		require.ErrorContains(t, err, "font missing")
		assert.Nil(t, out)
	})

	t.Run("cancelled context is not rendered", func(t *testing.T) {
		ctx, cancel := context.WithCancel(t.Context())
		cancel()
		engine, renderer := newEngine(t)

		_, err := engine.GenerateLabels(ctx, []*parcel.Package{newPackage(t, "1")}, label.Full)

		require.ErrorIs(t, err, context.Canceled)
		renderer.AssertNotCalled(t, "Render", mock.Anything, mock.Anything)
	})
}

func TestEngine_Compose(t *testing.T) {
	t.Run("full decomposition uses one page per package", func(t *testing.T) {
		engine, _ := newEngine(t)
		packages := []*parcel.Package{newPackage(t, "40990019352"), newPackage(t, "40990019353")}

		doc, err := engine.Compose(packages, label.Full)

		require.NoError(t, err)
		require.Len(t, doc.Pages, 2)
		assert.True(t, doc.Pages[1].Contains("40990019353"))
		assert.InDelta(t, sheet.A4LandscapeWidth, doc.Width, 0)
	})

	t.Run("quarter decomposition wraps after four labels", func(t *testing.T) {
		engine, _ := newEngine(t)
		var packages []*parcel.Package
		for i := 1; i <= 5; i++ {
			packages = append(packages, newPackage(t, fmt.Sprintf("4099001935%d", i)))
		}

		doc, err := engine.Compose(packages, label.Quarter)

		require.NoError(t, err)
		require.Len(t, doc.Pages, 2)

		first := barcodes(doc.Pages[0])
		require.Len(t, first, 4)
		assert.InDelta(t, 34.0, first[0].X, 0)
		assert.InDelta(t, 40.0, first[0].Y, 0)
		assert.InDelta(t, 184.0, first[1].X, 0)
		assert.InDelta(t, 40.0, first[1].Y, 0)
		assert.InDelta(t, 34.0, first[2].X, 0)
		assert.InDelta(t, 138.0, first[2].Y, 0)
		assert.InDelta(t, 184.0, first[3].X, 0)
		assert.InDelta(t, 138.0, first[3].Y, 0)

		second := barcodes(doc.Pages[1])
		require.Len(t, second, 1)
		assert.InDelta(t, 34.0, second[0].X, 0)
		assert.InDelta(t, 40.0, second[0].Y, 0)
		assert.True(t, doc.Pages[1].Contains("40990019355"))
		assert.False(t, doc.Pages[1].Contains("40990019351"))
	})

	t.Run("barcode carries the check digit", func(t *testing.T) {
		engine, _ := newEngine(t)

		doc, err := engine.Compose([]*parcel.Package{newPackage(t, "40990019352")}, label.Full)

		require.NoError(t, err)
		bars := barcodes(doc.Pages[0])
		require.Len(t, bars, 1)
		assert.Equal(t, "409900193520", bars[0].Content)
		assert.InDelta(t, 270.0, bars[0].Rotation, 0)
	})

	t.Run("cash on delivery badge shows the shortest amount", func(t *testing.T) {
		engine, _ := newEngine(t)

		doc, err := engine.Compose([]*parcel.Package{newPackage(t, "1", withCOD(t, 250.50))}, label.Full)

		require.NoError(t, err)
		page := doc.Pages[0]
		assert.Contains(t, page.Texts(), "250.5 CZK")
		assert.Contains(t, page.Texts(), "DOB.:")

		var amount sheet.Cell
		for _, e := range page.Elements {
			if c, ok := e.(sheet.Cell); ok && c.Content == "250.5 CZK" {
				amount = c
			}
		}
		assert.True(t, amount.Inverted)
		assert.Equal(t, sheet.AlignRight, amount.Align)
	})

	t.Run("non cash on delivery package has no badge", func(t *testing.T) {
		engine, _ := newEngine(t)

		doc, err := engine.Compose([]*parcel.Package{newPackage(t, "1")}, label.Full)

		require.NoError(t, err)
		assert.NotContains(t, doc.Pages[0].Texts(), "DOB.:")
	})

	t.Run("evening delivery switches the day badge", func(t *testing.T) {
		engine, _ := newEngine(t)
		packages := []*parcel.Package{
			newPackage(t, "1", withService(t, carrier.ServiceEveningDelivery)),
			newPackage(t, "2", withService(t, carrier.ServiceSaturdayDelivery)),
		}

		doc, err := engine.Compose(packages, label.Full)

		require.NoError(t, err)
		assert.Contains(t, doc.Pages[0].Texts(), "Večer")
		assert.NotContains(t, doc.Pages[0].Texts(), "Den")
		assert.Contains(t, doc.Pages[1].Texts(), "Den")
	})

	t.Run("day badge can be switched off", func(t *testing.T) {
		engine, _ := newEngine(t, label.WithDayNightBadge(false))

		doc, err := engine.Compose([]*parcel.Package{newPackage(t, "1")}, label.Quarter)

		require.NoError(t, err)
		assert.NotContains(t, doc.Pages[0].Texts(), "Den")
	})

	t.Run("missing sender keeps heading and frame only", func(t *testing.T) {
		engine, _ := newEngine(t)

		doc, err := engine.Compose([]*parcel.Package{newPackage(t, "1")}, label.Full)

		require.NoError(t, err)
		texts := doc.Pages[0].Texts()
		assert.Contains(t, texts, "Odesílatel:")
		assert.NotContains(t, texts, "Expedice")
	})

	t.Run("default sender fills in for packages without one", func(t *testing.T) {
		engine, _ := newEngine(t, label.WithDefaultSender(newSender(t, "Výchozí odesílatel")))
		packages := []*parcel.Package{
			newPackage(t, "1"),
			newPackage(t, "2", withSender(t, "Vlastní odesílatel")),
		}

		doc, err := engine.Compose(packages, label.Full)

		require.NoError(t, err)
		assert.Contains(t, doc.Pages[0].Texts(), "Výchozí odesílatel")
		assert.Contains(t, doc.Pages[1].Texts(), "Vlastní odesílatel")
		assert.Contains(t, doc.Pages[1].Texts(), "28002 Kolín CZ")
	})

	t.Run("recipient lines and position badge", func(t *testing.T) {
		engine, _ := newEngine(t)
		p := newPackage(t, "1", func(params *parcel.PackageParams) {
			params.PackageCount = 3
			params.PackagePosition = 2
			params.Note = "Křehké"
		})

		doc, err := engine.Compose([]*parcel.Package{p}, label.Full)

		require.NoError(t, err)
		texts := doc.Pages[0].Texts()
		assert.Contains(t, texts, "Příjemce:")
		assert.Contains(t, texts, "Praha, CZ")
		assert.Contains(t, texts, "12000")
		assert.Contains(t, texts, "Tel.: 777123456")
		assert.Contains(t, texts, "2/3")
		assert.Contains(t, texts, "Pozn.: Křehké")
	})

	t.Run("logo is only placed when configured", func(t *testing.T) {
		contact := label.DefaultContact()
		contact.LogoPath = "/srv/assets/logo.png"
		withLogo, _ := newEngine(t, label.WithContact(contact))
		withoutLogo, _ := newEngine(t)

		doc, err := withLogo.Compose([]*parcel.Package{newPackage(t, "1")}, label.Full)
		require.NoError(t, err)
		assert.Contains(t, doc.Pages[0].Elements, sheet.Image{X: 17, Y: 10, Width: 66, Path: "/srv/assets/logo.png"})

		doc, err = withoutLogo.Compose([]*parcel.Package{newPackage(t, "1")}, label.Full)
		require.NoError(t, err)
		for _, e := range doc.Pages[0].Elements {
			assert.IsNotType(t, sheet.Image{}, e)
		}
	})

	t.Run("metadata lists the package numbers", func(t *testing.T) {
		engine, _ := newEngine(t, label.WithAuthor("Sklad Kolín"))

		doc, err := engine.Compose([]*parcel.Package{newPackage(t, "11"), newPackage(t, "22")}, label.Full)

		require.NoError(t, err)
		assert.Equal(t, "Professional Parcel Logistic Label 11, 22", doc.Metadata.Title)
		assert.Equal(t, doc.Metadata.Title, doc.Metadata.Subject)
		assert.Equal(t, "Professional Parcel Logistic", doc.Metadata.Keywords)
		assert.Equal(t, "Sklad Kolín", doc.Metadata.Author)
	})

	t.Run("localised captions", func(t *testing.T) {
		texts := label.CzechTexts()
		texts.RecipientHeading = "Recipient:"
		engine, _ := newEngine(t, label.WithTexts(texts))

		doc, err := engine.Compose([]*parcel.Package{newPackage(t, "1")}, label.Full)

		require.NoError(t, err)
		assert.Contains(t, doc.Pages[0].Texts(), "Recipient:")
	})
}
