package render

import (
	"context"

	"github.com/goliatone/go-devme/pkg/preview"
)

// Renderer converts a composed preview into a byte representation (HTML,
// plain text, etc.).
type Renderer interface {
	Name() string
	ContentType() string
	Render(ctx context.Context, p preview.Preview, options RenderOptions) ([]byte, error)
}
