package devme

import (
	"io/fs"

	"github.com/goliatone/go-devme/pkg/catalog"
	htmlrenderer "github.com/goliatone/go-devme/pkg/renderers/html"
)

// EmbeddedTemplates exposes the built-in HTML layouts and partials so callers
// can copy and customise them for WithTemplatesDir.
func EmbeddedTemplates() fs.FS {
	return htmlrenderer.TemplatesFS()
}

// EmbeddedCatalog exposes the YAML catalog files compiled into the binary.
func EmbeddedCatalog() fs.FS {
	return catalog.EmbeddedFS()
}
