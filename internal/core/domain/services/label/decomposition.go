package label

import (
	"errors"
	"strconv"
	"strings"

	"carrierlabel/internal/pkg/errs"
)

var (
	// ErrUnknownDecomposition is the cause of every rejected decomposition value.
	ErrUnknownDecomposition = errors.New("unknown label decomposition")
	ErrUnknownQuadrant      = errors.New("unknown label quadrant")
)

// Decomposition selects how many labels share a page.
type Decomposition int

const (
	// Full prints one label per page.
	Full Decomposition = 1
	// Quarter prints four labels per page, filling TopLeft to BottomRight.
	Quarter Decomposition = 2
)

func getDecompositionStrings() map[Decomposition]string {
	return map[Decomposition]string{
		Full:    "full",
		Quarter: "quarter",
	}
}

// ParseDecomposition accepts the names "full" and "quarter" as well as the numeric codes.
func ParseDecomposition(s string) (Decomposition, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for d, name := range getDecompositionStrings() {
		if s == name {
			return d, nil
		}
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, errs.NewValueIsNotAllowedErrorWithCause("decomposition", s, decompositionNames(), ErrUnknownDecomposition)
	}
	d := Decomposition(n)
	if err := d.Validate(); err != nil {
		return 0, err
	}
	return d, nil
}

// Validate fails with ErrUnknownDecomposition for anything but Full and Quarter.
func (d Decomposition) Validate() error {
	if _, ok := getDecompositionStrings()[d]; !ok {
		return errs.NewValueIsNotAllowedErrorWithCause("decomposition", int(d), decompositionNames(), ErrUnknownDecomposition)
	}
	return nil
}

// LabelsPerPage is 1 for Full and 4 for Quarter.
func (d Decomposition) LabelsPerPage() int {
	if d == Quarter {
		return int(BottomRight)
	}
	return 1
}

// PageCount is the number of pages needed for labels labels.
func (d Decomposition) PageCount(labels int) int {
	if labels <= 0 {
		return 0
	}
	perPage := d.LabelsPerPage()
	return (labels + perPage - 1) / perPage
}

// String returns "full", "quarter" or "unknown(n)".
func (d Decomposition) String() string {
	if s, ok := getDecompositionStrings()[d]; ok {
		return s
	}
	return "unknown(" + strconv.Itoa(int(d)) + ")"
}

func decompositionNames() []string {
	return []string{"1 (full)", "2 (quarter)"}
}

// Position is a quadrant of a Quarter page.
type Position int

// Quadrants in fill order.
const (
	TopLeft Position = iota + 1
	TopRight
	BottomLeft
	BottomRight
)

// Quadrant offsets in millimetres.
const (
	quarterOffsetX = 150.0
	quarterOffsetY = 98.0
)

// Offset returns the shift of the quadrant from the top-left page corner.
func (p Position) Offset() (x, y float64, err error) {
	switch p {
	case TopLeft:
		return 0, 0, nil
	case TopRight:
		return quarterOffsetX, 0, nil
	case BottomLeft:
		return 0, quarterOffsetY, nil
	case BottomRight:
		return quarterOffsetX, quarterOffsetY, nil
	default:
		return 0, 0, errs.NewValueIsOutOfRangeErrorWithCause("position", int(p), int(TopLeft), int(BottomRight), ErrUnknownQuadrant)
	}
}

func (p Position) String() string {
	switch p {
	case TopLeft:
		return "top-left"
	case TopRight:
		return "top-right"
	case BottomLeft:
		return "bottom-left"
	case BottomRight:
		return "bottom-right"
	default:
		return "unknown(" + strconv.Itoa(int(p)) + ")"
	}
}
