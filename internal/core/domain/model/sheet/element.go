package sheet

// Align is the horizontal alignment of text inside a cell.
type Align int

const (
	AlignLeft Align = iota
	AlignCenter
	AlignRight
)

func (a Align) String() string {
	switch a {
	case AlignCenter:
		return "center"
	case AlignRight:
		return "right"
	default:
		return "left"
	}
}

type Font struct {
	Size float64
	Bold bool
}

// Element is one of Text, Cell, Barcode or Image.
type Element interface {
	isElement()
}

// Text is a single line whose cell starts at (X, Y) and is rotated around that point.
type Text struct {
	X, Y     float64
	Font     Font
	Content  string
	Rotation float64
}

// Cell is a box with optional border and wrapped text. A zero Height grows the box
// to fit the text. Inverted cells are filled black with white text.
type Cell struct {
	X, Y          float64
	Width, Height float64
	Font          Font
	Content       string
	Border        float64
	Align         Align
	Inverted      bool
}

// Barcode is an interleaved 2 of 5 symbol stretched over Width by Height with its
// top-left corner at (X, Y), rotated around that corner. Content already carries
// the check digit.
type Barcode struct {
	X, Y          float64
	Width, Height float64
	Module        float64
	Content       string
	Rotation      float64
}

// Image places a raster file scaled to Width, keeping its aspect ratio.
type Image struct {
	X, Y  float64
	Width float64
	Path  string
}

func (Text) isElement()    {}
func (Cell) isElement()    {}
func (Barcode) isElement() {}
func (Image) isElement()   {}
