package label

import "carrierlabel/internal/core/domain/model/sheet"

// Field names the piece of package or carrier data a slot prints.
type Field int

const (
	// FieldLogo is the carrier logo image.
	FieldLogo Field = iota + 1
	// FieldContactPhone, FieldContactEmail and FieldContactWeb form the carrier
	// contact block under the logo.
	FieldContactPhone
	FieldContactEmail
	FieldContactWeb
	// FieldBarcode is the interleaved 2 of 5 symbol of the package number plus
	// check digit.
	FieldBarcode
	// FieldBarcodeNumber is the human-readable package number next to the barcode.
	FieldBarcodeNumber
	// FieldPackagePosition prints "position/count".
	FieldPackagePosition
	// FieldCODLabel and FieldCODAmount form the inverted cash on delivery badge.
	// Both are left out for other products.
	FieldCODLabel
	FieldCODAmount
	FieldRecipientHeading
	// FieldRecipientName is left out when the recipient has no name.
	FieldRecipientName
	FieldRecipientContact
	FieldRecipientStreet
	// FieldRecipientCity prints "city, country".
	FieldRecipientCity
	FieldRecipientZipCode
	FieldRecipientPhone
	// FieldRecipientFrame is the empty bordered box around the recipient block.
	FieldRecipientFrame
	// FieldDayNight is the day or evening delivery badge, when enabled.
	FieldDayNight
	FieldSenderHeading
	FieldSenderName
	FieldSenderName2
	FieldSenderStreet
	// FieldSenderCity prints "zip city country".
	FieldSenderCity
	// FieldSenderFrame is the empty bordered box around the sender block.
	FieldSenderFrame
	// FieldNote is the wrapped note cell, left out when the note is empty.
	FieldNote
)

// Kind selects the sheet element a slot produces.
type Kind int

const (
	// KindText is a single unwrapped line anchored at X, Y.
	KindText Kind = iota + 1
	// KindCell is a wrapped, optionally bordered or inverted box of Width.
	// A zero Height grows with the content.
	KindCell
	// KindBarcode is stretched to Width by Height.
	KindBarcode
	// KindImage is scaled to Width keeping its aspect ratio.
	KindImage
)

// Slot is one row of a layout table. Coordinates and sizes are millimetres
// relative to the label origin, Font sizes are points.
type Slot struct {
	Field Field
	Kind  Kind
	X, Y  float64
	Width float64
	// Height is zero for cells that size themselves.
	Height float64
	Font   sheet.Font
	// Border is the frame line width; zero draws no frame.
	Border float64
	Align  sheet.Align
	// Inverted prints white text on a black fill.
	Inverted bool
	// Rotation is in degrees, counter-clockwise about X, Y.
	Rotation float64
	// Module is the narrow bar width of a barcode before stretching.
	Module float64
}

// Layout is an ordered slot table. Slots are drawn in order, so later slots
// paint over earlier ones.
type Layout []Slot

func regular(size float64) sheet.Font { return sheet.Font{Size: size} }
func bold(size float64) sheet.Font    { return sheet.Font{Size: size, Bold: true} }

// FullLayout is the one label per page layout on landscape A4. It returns a fresh
// copy, so callers may modify it.
func FullLayout() Layout {
	return Layout{
		{Field: FieldLogo, Kind: KindImage, X: 17, Y: 10, Width: 66},
		{Field: FieldContactPhone, Kind: KindText, X: 17, Y: 45, Font: regular(20)},
		{Field: FieldContactEmail, Kind: KindText, X: 17, Y: 55, Font: regular(20)},
		{Field: FieldContactWeb, Kind: KindText, X: 17, Y: 65, Font: regular(20)},
		{Field: FieldBarcode, Kind: KindBarcode, X: 78, Y: 85, Width: 80, Height: 60, Module: 0.3, Rotation: 270},
		{Field: FieldBarcodeNumber, Kind: KindText, X: 90, Y: 84, Font: regular(23), Rotation: 270},
		{Field: FieldPackagePosition, Kind: KindCell, X: 244, Y: 175, Width: 40, Font: bold(27), Border: 1, Align: sheet.AlignCenter},
		{Field: FieldCODLabel, Kind: KindCell, X: 19, Y: 175, Width: 30, Font: bold(27), Border: 0.7, Align: sheet.AlignLeft, Inverted: true},
		{Field: FieldCODAmount, Kind: KindCell, X: 45, Y: 175, Width: 60, Font: bold(27), Border: 0.7, Align: sheet.AlignRight, Inverted: true},
		{Field: FieldRecipientHeading, Kind: KindText, X: 110, Y: 9, Font: regular(25)},
		{Field: FieldRecipientName, Kind: KindText, X: 120, Y: 25, Font: regular(25)},
		{Field: FieldRecipientContact, Kind: KindText, X: 120, Y: 35, Font: regular(25)},
		{Field: FieldRecipientStreet, Kind: KindText, X: 120, Y: 45, Font: regular(25)},
		{Field: FieldRecipientCity, Kind: KindText, X: 120, Y: 55, Font: regular(25)},
		{Field: FieldRecipientZipCode, Kind: KindText, X: 120, Y: 65, Font: bold(55)},
		{Field: FieldRecipientPhone, Kind: KindText, X: 120, Y: 88, Font: regular(25)},
		{Field: FieldRecipientFrame, Kind: KindCell, X: 112, Y: 21, Width: 173, Height: 80, Font: regular(25), Border: 1},
		{Field: FieldDayNight, Kind: KindCell, X: 224, Y: 73, Width: 60, Height: 15, Font: bold(60), Border: 1, Align: sheet.AlignCenter, Inverted: true},
		{Field: FieldSenderHeading, Kind: KindText, X: 112, Y: 105, Font: regular(25)},
		{Field: FieldSenderName, Kind: KindText, X: 120, Y: 120, Font: regular(25)},
		{Field: FieldSenderName2, Kind: KindText, X: 120, Y: 130, Font: regular(25)},
		{Field: FieldSenderStreet, Kind: KindText, X: 120, Y: 140, Font: regular(25)},
		{Field: FieldSenderCity, Kind: KindText, X: 120, Y: 150, Font: regular(25)},
		{Field: FieldSenderFrame, Kind: KindCell, X: 112, Y: 117, Width: 173, Height: 48, Font: regular(25), Border: 1},
		{Field: FieldNote, Kind: KindCell, X: 120, Y: 175, Width: 120, Height: 12, Font: regular(12)},
	}
}

// QuarterLayout is the four labels per page layout, relative to the quadrant origin.
// Quadrants are 150 by 98 millimetres; see Position.Offset. It returns a fresh copy.
func QuarterLayout() Layout {
	return Layout{
		{Field: FieldLogo, Kind: KindImage, X: 3, Y: 3, Width: 34},
		{Field: FieldContactPhone, Kind: KindText, X: 3, Y: 20, Font: regular(9)},
		{Field: FieldContactEmail, Kind: KindText, X: 3, Y: 25, Font: regular(9)},
		{Field: FieldContactWeb, Kind: KindText, X: 3, Y: 30, Font: regular(9)},
		{Field: FieldBarcode, Kind: KindBarcode, X: 34, Y: 40, Width: 40, Height: 30, Module: 0.3, Rotation: 270},
		{Field: FieldBarcodeNumber, Kind: KindText, X: 40, Y: 39, Font: regular(13), Rotation: 270},
		{Field: FieldPackagePosition, Kind: KindCell, X: 116, Y: 85, Width: 20, Font: bold(13), Border: 0.7, Align: sheet.AlignCenter},
		{Field: FieldCODLabel, Kind: KindCell, X: 4, Y: 85, Width: 15, Font: bold(13), Border: 0.7, Align: sheet.AlignLeft, Inverted: true},
		{Field: FieldCODAmount, Kind: KindCell, X: 19, Y: 85, Width: 28, Font: bold(13), Border: 0.7, Align: sheet.AlignRight, Inverted: true},
		{Field: FieldRecipientHeading, Kind: KindText, X: 50, Y: 3, Font: regular(12)},
		{Field: FieldRecipientName, Kind: KindText, X: 53, Y: 10, Font: regular(12)},
		{Field: FieldRecipientContact, Kind: KindText, X: 53, Y: 15, Font: regular(12)},
		{Field: FieldRecipientStreet, Kind: KindText, X: 53, Y: 20, Font: regular(12)},
		{Field: FieldRecipientCity, Kind: KindText, X: 53, Y: 25, Font: regular(12)},
		{Field: FieldRecipientZipCode, Kind: KindText, X: 53, Y: 30, Font: bold(27)},
		{Field: FieldRecipientPhone, Kind: KindText, X: 53, Y: 43, Font: regular(10)},
		{Field: FieldRecipientFrame, Kind: KindCell, X: 51, Y: 9, Width: 85, Height: 40, Font: regular(10), Border: 0.7},
		{Field: FieldDayNight, Kind: KindCell, X: 106, Y: 34, Width: 30, Height: 15, Font: bold(30), Border: 0.7, Align: sheet.AlignCenter, Inverted: true},
		{Field: FieldSenderHeading, Kind: KindText, X: 50, Y: 51, Font: regular(12)},
		{Field: FieldSenderName, Kind: KindText, X: 53, Y: 58, Font: regular(10)},
		{Field: FieldSenderName2, Kind: KindText, X: 53, Y: 63, Font: regular(10)},
		{Field: FieldSenderStreet, Kind: KindText, X: 53, Y: 68, Font: regular(10)},
		{Field: FieldSenderCity, Kind: KindText, X: 53, Y: 73, Font: regular(10)},
		{Field: FieldSenderFrame, Kind: KindCell, X: 51, Y: 57, Width: 85, Height: 23, Font: bold(13), Border: 0.7},
		{Field: FieldNote, Kind: KindCell, X: 53, Y: 84, Width: 60, Height: 4, Font: regular(9)},
	}
}

// LayoutFor returns the slot table of a decomposition.
func LayoutFor(d Decomposition) (Layout, error) {
	switch d {
	case Full:
		return FullLayout(), nil
	case Quarter:
		return QuarterLayout(), nil
	default:
		return nil, d.Validate()
	}
}

// Slot returns the first slot printing field.
func (l Layout) Slot(field Field) (Slot, bool) {
	for _, s := range l {
		if s.Field == field {
			return s, true
		}
	}
	return Slot{}, false
}
