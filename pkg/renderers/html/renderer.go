// Package html renders a composed preview as a standalone HTML page. Each
// template layout has its own pongo2 template; the selected theme reaches the
// page as CSS custom properties. User text is stripped of markup, links are
// limited to http(s) and images to data URIs.
package html

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"sort"
	"strings"

	theme "github.com/goliatone/go-theme"

	"github.com/goliatone/go-devme/pkg/preview"
	"github.com/goliatone/go-devme/pkg/render"
	rendertemplate "github.com/goliatone/go-devme/pkg/render/template"
	"github.com/goliatone/go-devme/pkg/render/template/gotemplate"
	"github.com/goliatone/go-devme/pkg/style"
)

// Name is the registry name of this renderer.
const Name = "html"

// DefaultLayout is used when neither the theme config nor the preview names a
// layout with a bundled template.
const DefaultLayout = "grid"

// Option configures the renderer.
type Option func(*config)

type config struct {
	templateFS       fs.FS
	templateRenderer rendertemplate.TemplateRenderer
}

// WithTemplatesFS supplies an alternate template bundle.
func WithTemplatesFS(files fs.FS) Option {
	return func(cfg *config) {
		cfg.templateFS = files
	}
}

// WithTemplatesDir loads templates from a directory on disk.
func WithTemplatesDir(path string) Option {
	return func(cfg *config) {
		if path == "" {
			return
		}
		cfg.templateFS = os.DirFS(path)
	}
}

// WithTemplateRenderer injects a custom template engine.
func WithTemplateRenderer(renderer rendertemplate.TemplateRenderer) Option {
	return func(cfg *config) {
		if renderer != nil {
			cfg.templateRenderer = renderer
		}
	}
}

// Renderer is the HTML renderer.
type Renderer struct {
	templates rendertemplate.TemplateRenderer
	layouts   map[string]bool
}

var _ render.Renderer = (*Renderer)(nil)

// New constructs the renderer applying any provided options.
func New(options ...Option) (*Renderer, error) {
	cfg := config{}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(&cfg)
	}
	if cfg.templateFS == nil {
		cfg.templateFS = TemplatesFS()
	}

	engine := cfg.templateRenderer
	if engine == nil {
		e, err := gotemplate.New(
			gotemplate.WithName("devme-html"),
			gotemplate.WithFS(cfg.templateFS),
			gotemplate.WithFilters(filters()),
		)
		if err != nil {
			return nil, fmt.Errorf("html renderer: configure template renderer: %w", err)
		}
		engine = e
	}

	layouts := map[string]bool{}
	entries, err := fs.ReadDir(cfg.templateFS, ".")
	if err != nil {
		return nil, fmt.Errorf("html renderer: list layouts: %w", err)
	}
	for _, entry := range entries {
		if name, ok := strings.CutSuffix(entry.Name(), ".tpl"); ok && !entry.IsDir() {
			layouts[name] = true
		}
	}
	if !layouts[DefaultLayout] {
		return nil, fmt.Errorf("html renderer: template bundle has no %q layout", DefaultLayout)
	}

	return &Renderer{templates: engine, layouts: layouts}, nil
}

func (r *Renderer) Name() string {
	return Name
}

func (r *Renderer) ContentType() string {
	return "text/html; charset=utf-8"
}

// Render executes the layout template for p.
func (r *Renderer) Render(_ context.Context, p preview.Preview, options render.RenderOptions) ([]byte, error) {
	if r == nil || r.templates == nil {
		return nil, fmt.Errorf("html renderer: template renderer is nil")
	}

	layout := r.layout(p, options.Theme)
	result, err := r.templates.RenderTemplate(layout, buildView(p, options, layout))
	if err != nil {
		return nil, fmt.Errorf("html renderer: render %s: %w", layout, err)
	}
	return []byte(result), nil
}

// Layouts lists the bundled layout names.
func (r *Renderer) Layouts() []string {
	out := make([]string, 0, len(r.layouts))
	for name := range r.layouts {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}

func (r *Renderer) layout(p preview.Preview, cfg *theme.RendererConfig) string {
	if cfg != nil {
		if name := cfg.Partials[style.PartialLayout]; r.layouts[name] {
			return name
		}
	}
	if r.layouts[p.Template.Layout] {
		return p.Template.Layout
	}
	return DefaultLayout
}
