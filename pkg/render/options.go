package render

import theme "github.com/goliatone/go-theme"

// RenderOptions describe per-request data that renderers can use to customise
// their output without changing the composed preview.
type RenderOptions struct {
	// Theme carries the resolved palette tokens, CSS variables and layout
	// partial for the selected theme and template.
	Theme *theme.RendererConfig
	// Title overrides the document title. Renderers fall back to the header
	// name when empty.
	Title string
	// Fragment asks markup renderers to omit the surrounding page so the output
	// can be embedded.
	Fragment bool
}
