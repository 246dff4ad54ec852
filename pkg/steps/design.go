package steps

import (
	"fmt"

	"github.com/goliatone/go-devme/pkg/catalog"
	"github.com/goliatone/go-devme/pkg/document"
)

// Design is step 5: template and theme selection.
type Design struct {
	catalog *catalog.Catalog
}

// Templates lists the available templates.
func (s Design) Templates() []catalog.Template {
	return append([]catalog.Template(nil), s.catalog.Templates...)
}

// Themes lists the available themes.
func (s Design) Themes() []catalog.Theme {
	return append([]catalog.Theme(nil), s.catalog.Themes...)
}

// SelectTemplate records a template id from the catalog.
func (s Design) SelectTemplate(doc document.Document, id string) (document.Document, error) {
	if _, ok := s.catalog.Template(id); !ok {
		return doc, fmt.Errorf("%w: %q", ErrUnknownTemplate, id)
	}
	return doc.WithTemplate(id), nil
}

// SelectTheme records a theme id from the catalog.
func (s Design) SelectTheme(doc document.Document, id string) (document.Document, error) {
	if _, ok := s.catalog.Theme(id); !ok {
		return doc, fmt.Errorf("%w: %q", ErrUnknownTheme, id)
	}
	return doc.WithTheme(id), nil
}
