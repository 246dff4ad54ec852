package main

import (
	"context"
	"fmt"
	"os"

	devme "github.com/goliatone/go-devme"
	"github.com/goliatone/go-devme/internal/config"
	"github.com/goliatone/go-devme/pkg/catalog"
	"github.com/goliatone/go-devme/pkg/logging"
	"github.com/goliatone/go-devme/pkg/storage"
)

// loadApp reads configuration and wires the application against the file
// store it names.
func loadApp(ctx context.Context) (*devme.App, *config.Config, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, nil, err
	}
	if err := cfg.Finalize(); err != nil {
		return nil, nil, err
	}

	logger := logging.New(&cfg.Logging)
	options := []devme.Option{
		devme.WithLogger(logger),
		devme.WithStore(storage.NewFileStore(cfg.Storage.Path)),
		devme.WithStorageKey(cfg.Storage.Key),
		devme.WithTemplatesDir(cfg.Render.TemplatesDir),
	}
	c, err := loadCatalog(cfg.Catalog.Dir)
	if err != nil {
		return nil, nil, err
	}
	options = append(options, devme.WithCatalog(c))

	app, err := devme.New(ctx, options...)
	if err != nil {
		return nil, nil, err
	}
	logger.Debug("devme ready", "storage", cfg.Storage.Path, "key", cfg.Storage.Key)
	return app, cfg, nil
}

// loadCatalog reads dir when set and falls back to the embedded catalog.
func loadCatalog(dir string) (*catalog.Catalog, error) {
	if dir == "" {
		return catalog.Default()
	}
	c, err := catalog.LoadFS(os.DirFS(dir))
	if err != nil {
		return nil, fmt.Errorf("load catalog %s: %w", dir, err)
	}
	return c, nil
}
