package steps

import (
	"fmt"

	"github.com/goliatone/go-devme/pkg/catalog"
	"github.com/goliatone/go-devme/pkg/document"
)

// ContentLevel is step 0.
type ContentLevel struct {
	catalog *catalog.Catalog
}

// Options lists the selectable levels.
func (s ContentLevel) Options() []catalog.Level {
	return append([]catalog.Level(nil), s.catalog.Levels...)
}

// Select records the chosen level.
func (s ContentLevel) Select(doc document.Document, level document.Level) (document.Document, error) {
	if !level.Valid() {
		return doc, fmt.Errorf("%w: %q", ErrUnknownLevel, level)
	}
	return doc.WithContentLevel(level), nil
}
