// Package config loads devme settings from TOML files with environment
// variable overrides and per-environment overlays.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"

	"github.com/goliatone/go-devme/pkg/logging"
	"github.com/goliatone/go-devme/pkg/storage"
)

const (
	// BaseConfigFile is the default configuration file name.
	BaseConfigFile = "devme.toml"

	// OverlayConfigPattern is the file name pattern for environment overlays,
	// resolved next to the base file.
	OverlayConfigPattern = "devme.%s.toml"

	// EnvDevmeEnv selects the overlay.
	EnvDevmeEnv = "DEVME_ENV"

	EnvStoragePath  = "DEVME_STORAGE_PATH"
	EnvStorageKey   = "DEVME_STORAGE_KEY"
	EnvLogLevel     = "DEVME_LOG_LEVEL"
	EnvLogFormat    = "DEVME_LOG_FORMAT"
	EnvRenderFormat = "DEVME_RENDER_FORMAT"
	EnvCatalogDir   = "DEVME_CATALOG_DIR"
)

// Render formats.
const (
	FormatText = "text"
	FormatHTML = "html"
)

// Config is the root configuration.
type Config struct {
	Storage StorageConfig  `toml:"storage"`
	Logging logging.Config `toml:"logging"`
	Render  RenderConfig   `toml:"render"`
	Catalog CatalogConfig  `toml:"catalog"`
}

// StorageConfig selects where the snapshot lives.
type StorageConfig struct {
	Path string `toml:"path"`
	Key  string `toml:"key"`
}

// RenderConfig controls preview output.
type RenderConfig struct {
	Format       string `toml:"format"`
	TemplatesDir string `toml:"templates_dir"`
}

// CatalogConfig optionally points at a directory of catalog files that
// replaces the bundled catalog.
type CatalogConfig struct {
	Dir string `toml:"dir"`
}

// Load reads path (BaseConfigFile when empty) and applies the DEVME_ENV
// overlay found next to it. A missing base file yields an empty config.
func Load(path string) (*Config, error) {
	if strings.TrimSpace(path) == "" {
		path = BaseConfigFile
	}
	cfg, err := load(path)
	if errors.Is(err, fs.ErrNotExist) {
		cfg = &Config{}
	} else if err != nil {
		return nil, err
	}

	if overlay := overlayPath(path); overlay != "" {
		over, err := load(overlay)
		if err != nil {
			return nil, fmt.Errorf("load overlay %s: %w", overlay, err)
		}
		cfg.Merge(over)
	}
	return cfg, nil
}

// Finalize applies defaults, environment overrides and validation.
func (c *Config) Finalize() error {
	c.loadDefaults()
	c.loadEnv()

	if err := c.validate(); err != nil {
		return err
	}
	if err := c.Logging.Finalize(&logging.Env{Level: EnvLogLevel, Format: EnvLogFormat}); err != nil {
		return fmt.Errorf("logging: %w", err)
	}
	return nil
}

// Merge applies non-zero values from overlay.
func (c *Config) Merge(overlay *Config) {
	if overlay.Storage.Path != "" {
		c.Storage.Path = overlay.Storage.Path
	}
	if overlay.Storage.Key != "" {
		c.Storage.Key = overlay.Storage.Key
	}
	if overlay.Render.Format != "" {
		c.Render.Format = overlay.Render.Format
	}
	if overlay.Render.TemplatesDir != "" {
		c.Render.TemplatesDir = overlay.Render.TemplatesDir
	}
	if overlay.Catalog.Dir != "" {
		c.Catalog.Dir = overlay.Catalog.Dir
	}
	c.Logging.Merge(&overlay.Logging)
}

// DefaultStoragePath is the snapshot file used when none is configured.
func DefaultStoragePath() string {
	if dir, err := os.UserConfigDir(); err == nil && dir != "" {
		return filepath.Join(dir, "devme", "resume.json")
	}
	return filepath.Join(".devme", "resume.json")
}

func (c *Config) loadDefaults() {
	if c.Storage.Path == "" {
		c.Storage.Path = DefaultStoragePath()
	}
	if c.Storage.Key == "" {
		c.Storage.Key = storage.DefaultKey
	}
	if c.Render.Format == "" {
		c.Render.Format = FormatText
	}
}

func (c *Config) loadEnv() {
	if v := os.Getenv(EnvStoragePath); v != "" {
		c.Storage.Path = v
	}
	if v := os.Getenv(EnvStorageKey); v != "" {
		c.Storage.Key = v
	}
	if v := os.Getenv(EnvRenderFormat); v != "" {
		c.Render.Format = v
	}
	if v := os.Getenv(EnvCatalogDir); v != "" {
		c.Catalog.Dir = v
	}
}

func (c *Config) validate() error {
	switch c.Render.Format {
	case FormatText, FormatHTML:
	default:
		return fmt.Errorf("invalid render format: %s (must be text or html)", c.Render.Format)
	}
	if strings.TrimSpace(c.Storage.Key) == "" {
		return errors.New("storage key is required")
	}
	return nil
}

func load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	var cfg Config
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	return &cfg, nil
}

func overlayPath(base string) string {
	env := os.Getenv(EnvDevmeEnv)
	if env == "" {
		return ""
	}
	path := filepath.Join(filepath.Dir(base), fmt.Sprintf(OverlayConfigPattern, env))
	if _, err := os.Stat(path); err == nil {
		return path
	}
	return ""
}
