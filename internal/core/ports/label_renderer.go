package ports

import (
	"context"

	"carrierlabel/internal/core/domain/model/sheet"
)

// LabelRenderer turns a composed label document into printable bytes.
// Implementations must not keep references to doc after returning.
type LabelRenderer interface {
	// Render returns the encoded document, PDF for the production renderer.
	Render(ctx context.Context, doc *sheet.Document) ([]byte, error)

	// ContentType is the media type of the rendered bytes.
	ContentType() string
}
