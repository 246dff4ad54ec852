package catalog

import (
	"embed"
	"io/fs"
	"sync"
)

//go:embed data/*.yaml
var embeddedCatalog embed.FS

// EmbeddedFS returns the bundled catalog files.
func EmbeddedFS() fs.FS {
	sub, err := fs.Sub(embeddedCatalog, "data")
	if err != nil {
		// The embed directive guarantees the subpath exists.
		panic(err)
	}
	return sub
}

var (
	defaultOnce    sync.Once
	defaultCatalog *Catalog
	defaultErr     error
)

// Default loads the embedded catalog once and returns it.
func Default() (*Catalog, error) {
	defaultOnce.Do(func() {
		defaultCatalog, defaultErr = LoadFS(EmbeddedFS())
	})
	return defaultCatalog, defaultErr
}

// MustDefault panics when the embedded catalog cannot be loaded.
func MustDefault() *Catalog {
	c, err := Default()
	if err != nil {
		panic(err)
	}
	return c
}
