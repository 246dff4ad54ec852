// Package style resolves template and theme choices against the catalog and
// exposes each theme as a go-theme manifest so renderers receive tokens and
// CSS variables the same way for every palette.
package style

import (
	"errors"
	"fmt"

	theme "github.com/goliatone/go-theme"

	"github.com/goliatone/go-devme/pkg/catalog"
)

// ErrEmptyCatalog is returned when the catalog has no templates or themes.
var ErrEmptyCatalog = errors.New("style: catalog has no templates or themes")

// PartialLayout is the manifest template key that carries the layout name.
const PartialLayout = "resume.layout"

const manifestVersion = "1.0.0"

// Selector resolves template and theme ids. Unknown ids fall back to the first
// catalog entry so a stale persisted choice still renders.
type Selector struct {
	catalog  *catalog.Catalog
	registry *theme.MemoryRegistry
	themes   theme.Selector
}

var _ theme.ThemeSelector = (*Selector)(nil)

// New registers a manifest per catalog theme. Every template becomes a
// variant of each manifest so a selection pairs one palette with one layout.
func New(c *catalog.Catalog) (*Selector, error) {
	if c == nil || len(c.Templates) == 0 || len(c.Themes) == 0 {
		return nil, ErrEmptyCatalog
	}
	registry := theme.NewRegistry()
	for _, t := range c.Themes {
		if err := registry.Register(Manifest(t, c.Templates)); err != nil {
			return nil, fmt.Errorf("style: register theme %q: %w", t.ID, err)
		}
	}
	return &Selector{
		catalog:  c,
		registry: registry,
		themes: theme.Selector{
			Registry:       registry,
			DefaultTheme:   c.Themes[0].ID,
			DefaultVariant: c.Templates[0].ID,
		},
	}, nil
}

// MustNew panics when New fails.
func MustNew(c *catalog.Catalog) *Selector {
	s, err := New(c)
	if err != nil {
		panic(err)
	}
	return s
}

// Manifest converts a catalog theme to a go-theme manifest.
func Manifest(t catalog.Theme, templates []catalog.Template) *theme.Manifest {
	variants := make(map[string]theme.Variant, len(templates))
	for _, tpl := range templates {
		variants[tpl.ID] = theme.Variant{
			Templates: map[string]string{PartialLayout: tpl.Layout},
		}
	}
	return &theme.Manifest{
		Name:     t.ID,
		Version:  manifestVersion,
		Tokens:   Tokens(t.Colors),
		Variants: variants,
	}
}

// Tokens flattens a palette into token names.
func Tokens(p catalog.Palette) map[string]string {
	return map[string]string{
		"primary":        p.Primary,
		"secondary":      p.Secondary,
		"accent":         p.Accent,
		"background":     p.Background,
		"card":           p.Card,
		"text":           p.Text,
		"text-secondary": p.TextSecondary,
	}
}

// Provider exposes the underlying registry.
func (s *Selector) Provider() theme.ThemeProvider {
	if s == nil {
		return nil
	}
	return s.registry
}

// Templates lists the templates in catalog order.
func (s *Selector) Templates() []catalog.Template {
	return append([]catalog.Template(nil), s.catalog.Templates...)
}

// Themes lists the themes in catalog order.
func (s *Selector) Themes() []catalog.Theme {
	return append([]catalog.Theme(nil), s.catalog.Themes...)
}

// ResolveTemplate returns the template with id or the first template.
func (s *Selector) ResolveTemplate(id string) catalog.Template {
	if t, ok := s.catalog.Template(id); ok {
		return t
	}
	return s.catalog.Templates[0]
}

// ResolveTheme returns the theme with id or the first theme.
func (s *Selector) ResolveTheme(id string) catalog.Theme {
	if t, ok := s.catalog.Theme(id); ok {
		return t
	}
	return s.catalog.Themes[0]
}

// Select implements theme.ThemeSelector. name is a theme id and variant a
// template id; both resolve with fallback before the registry lookup.
func (s *Selector) Select(name, variant string, opts ...theme.QueryOption) (*theme.Selection, error) {
	if s == nil {
		return nil, ErrEmptyCatalog
	}
	th := s.ResolveTheme(name)
	tpl := s.ResolveTemplate(variant)
	selection, err := s.themes.Select(th.ID, tpl.ID, opts...)
	if err != nil {
		return nil, fmt.Errorf("style: %w", err)
	}
	return selection, nil
}

// RendererConfig resolves a theme and template pair into renderer input.
func (s *Selector) RendererConfig(themeID, templateID string) (*theme.RendererConfig, error) {
	selection, err := s.Select(themeID, templateID)
	if err != nil {
		return nil, err
	}
	cfg := selection.RendererTheme(layoutFallback(s.ResolveTemplate(templateID)))
	return &cfg, nil
}

// RendererConfigFor builds renderer input for a palette and template without a
// registry, for callers that only hold a composed preview.
func RendererConfigFor(t catalog.Theme, tpl catalog.Template) *theme.RendererConfig {
	selection := theme.Selection{
		Theme:    t.ID,
		Variant:  tpl.ID,
		Manifest: Manifest(t, []catalog.Template{tpl}),
	}
	cfg := selection.RendererTheme(layoutFallback(tpl))
	return &cfg
}

func layoutFallback(tpl catalog.Template) map[string]string {
	return map[string]string{PartialLayout: tpl.Layout}
}
