// Package catalog loads the static option lists the wizard is built around:
// personal fields, narrative questions, tech stack suggestions, templates,
// themes and content levels. Files are JSON or YAML and may each hold any
// subset of the top-level keys; LoadFS merges them in walk order.
package catalog

import (
	"encoding/json"
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/goliatone/go-devme/pkg/document"
)

// LoadFS walks fsys and merges every catalog file it finds.
func LoadFS(fsys fs.FS) (*Catalog, error) {
	if fsys == nil {
		return nil, fmt.Errorf("catalog: filesystem is required")
	}
	out := &Catalog{}

	err := fs.WalkDir(fsys, ".", func(path string, entry fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}
		if entry.IsDir() || !isCatalogFile(path) {
			return nil
		}
		data, err := fs.ReadFile(fsys, path)
		if err != nil {
			return fmt.Errorf("catalog: read %s: %w", path, err)
		}
		part, err := parseDocument(data, path)
		if err != nil {
			return err
		}
		out.Fields = append(out.Fields, part.Fields...)
		out.Questions = append(out.Questions, part.Questions...)
		out.TechStack = append(out.TechStack, part.TechStack...)
		out.Templates = append(out.Templates, part.Templates...)
		out.Themes = append(out.Themes, part.Themes...)
		out.Levels = append(out.Levels, part.Levels...)
		return nil
	})
	if err != nil {
		return nil, err
	}

	if err := out.validate(); err != nil {
		return nil, err
	}
	return out, nil
}

func parseDocument(data []byte, source string) (Catalog, error) {
	var doc Catalog
	if len(strings.TrimSpace(string(data))) == 0 {
		return Catalog{}, fmt.Errorf("catalog: file %s is empty", source)
	}
	if strings.EqualFold(filepath.Ext(source), ".json") {
		if err := json.Unmarshal(data, &doc); err != nil {
			return Catalog{}, fmt.Errorf("catalog: parse %s: %w", source, err)
		}
		return doc, nil
	}
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return Catalog{}, fmt.Errorf("catalog: parse %s: %w", source, err)
	}
	return doc, nil
}

func isCatalogFile(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json", ".yaml", ".yml":
		return true
	default:
		return false
	}
}

func (c *Catalog) validate() error {
	if len(c.Templates) == 0 {
		return fmt.Errorf("catalog: no templates defined")
	}
	if len(c.Themes) == 0 {
		return fmt.Errorf("catalog: no themes defined")
	}

	if err := unique("field", len(c.Fields), func(i int) string { return c.Fields[i].Key }); err != nil {
		return err
	}
	if err := unique("question", len(c.Questions), func(i int) string { return c.Questions[i].ID }); err != nil {
		return err
	}
	if err := unique("template", len(c.Templates), func(i int) string { return c.Templates[i].ID }); err != nil {
		return err
	}
	if err := unique("theme", len(c.Themes), func(i int) string { return c.Themes[i].ID }); err != nil {
		return err
	}
	if err := unique("tech category", len(c.TechStack), func(i int) string { return string(c.TechStack[i].Key) }); err != nil {
		return err
	}
	if err := unique("level", len(c.Levels), func(i int) string { return string(c.Levels[i].ID) }); err != nil {
		return err
	}

	for _, q := range c.Questions {
		if !document.IsFixedQuestionID(q.ID) {
			return fmt.Errorf("catalog: question %q is not a fixed question id", q.ID)
		}
	}
	for _, cat := range c.TechStack {
		if !cat.Key.Valid() {
			return fmt.Errorf("catalog: unknown tech category %q", cat.Key)
		}
	}
	for _, l := range c.Levels {
		if !l.ID.Valid() {
			return fmt.Errorf("catalog: unknown content level %q", l.ID)
		}
	}
	for _, key := range []string{"name", "email"} {
		if _, ok := c.Field(key); !ok && len(c.Fields) > 0 {
			return fmt.Errorf("catalog: required field %q missing", key)
		}
	}
	return nil
}

func unique(kind string, n int, id func(int) string) error {
	seen := make(map[string]struct{}, n)
	for i := 0; i < n; i++ {
		key := strings.TrimSpace(id(i))
		if key == "" {
			return fmt.Errorf("catalog: %s with empty id", kind)
		}
		if _, dup := seen[key]; dup {
			return fmt.Errorf("catalog: duplicate %s %q", kind, key)
		}
		seen[key] = struct{}{}
	}
	return nil
}
