// Package devme assembles the resume wizard: catalog, style selector,
// preview composer, renderers, persistence and the wizard controller.
package devme

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/goliatone/go-devme/pkg/catalog"
	"github.com/goliatone/go-devme/pkg/document"
	"github.com/goliatone/go-devme/pkg/preview"
	"github.com/goliatone/go-devme/pkg/render"
	htmlrenderer "github.com/goliatone/go-devme/pkg/renderers/html"
	textrenderer "github.com/goliatone/go-devme/pkg/renderers/text"
	"github.com/goliatone/go-devme/pkg/storage"
	"github.com/goliatone/go-devme/pkg/style"
	"github.com/goliatone/go-devme/pkg/wizard"
)

// Document aliases the resume snapshot for callers using the root package.
type Document = document.Document

// RenderOptions aliases render.RenderOptions.
type RenderOptions = render.RenderOptions

// Option configures New.
type Option func(*settings)

type settings struct {
	catalog      *catalog.Catalog
	store        storage.Store
	key          string
	templatesDir string
	logger       *slog.Logger
	renderers    []render.Renderer
}

// WithCatalog replaces the embedded catalog.
func WithCatalog(c *catalog.Catalog) Option {
	return func(s *settings) {
		if c != nil {
			s.catalog = c
		}
	}
}

// WithStore persists the document in store. Defaults to an in-memory store.
func WithStore(store storage.Store) Option {
	return func(s *settings) {
		if store != nil {
			s.store = store
		}
	}
}

// WithStorageKey overrides storage.DefaultKey.
func WithStorageKey(key string) Option {
	return func(s *settings) {
		if key != "" {
			s.key = key
		}
	}
}

// WithTemplatesDir loads HTML templates from disk instead of the embedded set.
func WithTemplatesDir(dir string) Option {
	return func(s *settings) {
		s.templatesDir = dir
	}
}

// WithLogger attaches a structured logger to every component.
func WithLogger(logger *slog.Logger) Option {
	return func(s *settings) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithRenderer registers an additional renderer next to html and text.
func WithRenderer(r render.Renderer) Option {
	return func(s *settings) {
		if r != nil {
			s.renderers = append(s.renderers, r)
		}
	}
}

// App is a wired wizard session.
type App struct {
	Catalog    *catalog.Catalog
	Selector   *style.Selector
	Composer   *preview.Composer
	Renderers  *render.Registry
	Repository *storage.Repository
	Controller *wizard.Controller
	Logger     *slog.Logger
}

// New loads the persisted document and wires a controller that saves every
// edit back to the store. ctx is kept by the controller for those saves.
func New(ctx context.Context, options ...Option) (*App, error) {
	cfg := settings{
		key:    storage.DefaultKey,
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(&cfg)
	}

	if cfg.catalog == nil {
		c, err := catalog.Default()
		if err != nil {
			return nil, fmt.Errorf("devme: load catalog: %w", err)
		}
		cfg.catalog = c
	}
	if cfg.store == nil {
		cfg.store = storage.NewMemoryStore()
	}

	selector, err := style.New(cfg.catalog)
	if err != nil {
		return nil, fmt.Errorf("devme: build selector: %w", err)
	}

	var htmlOptions []htmlrenderer.Option
	if cfg.templatesDir != "" {
		htmlOptions = append(htmlOptions, htmlrenderer.WithTemplatesDir(cfg.templatesDir))
	}
	html, err := htmlrenderer.New(htmlOptions...)
	if err != nil {
		return nil, fmt.Errorf("devme: html renderer: %w", err)
	}
	registry := render.NewRegistry()
	for _, r := range append([]render.Renderer{html, textrenderer.New()}, cfg.renderers...) {
		if err := registry.Register(r); err != nil {
			return nil, fmt.Errorf("devme: %w", err)
		}
	}

	repo := storage.NewRepository(cfg.store,
		storage.WithKey(cfg.key),
		storage.WithLogger(cfg.logger),
	)
	doc, err := repo.Load(ctx)
	if err != nil {
		cfg.logger.Warn("load document failed, starting from defaults", "error", err)
	}

	ctrl := wizard.NewController(cfg.catalog,
		wizard.WithDocument(doc),
		wizard.WithSink(repo),
		wizard.WithLogger(cfg.logger),
		wizard.WithContext(ctx),
	)

	return &App{
		Catalog:    cfg.catalog,
		Selector:   selector,
		Composer:   preview.New(cfg.catalog, selector),
		Renderers:  registry,
		Repository: repo,
		Controller: ctrl,
		Logger:     cfg.logger,
	}, nil
}

// Preview composes the controller's current document.
func (a *App) Preview() preview.Preview {
	return a.Composer.Compose(a.Controller.Document())
}

// Render renders the current document with the named renderer, resolving the
// selected template and theme through go-theme.
func (a *App) Render(ctx context.Context, format string) ([]byte, error) {
	p := a.Preview()
	cfg, err := a.Selector.RendererConfig(p.Theme.ID, p.Template.ID)
	if err != nil {
		return nil, fmt.Errorf("devme: resolve theme: %w", err)
	}
	title := "Resume"
	if name := strings.TrimSpace(p.Header().Name); name != "" {
		title = name + " - Resume"
	}
	return a.Renderers.Render(ctx, format, p, RenderOptions{Theme: cfg, Title: title})
}
