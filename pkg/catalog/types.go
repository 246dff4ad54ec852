package catalog

import "github.com/goliatone/go-devme/pkg/document"

// Field describes one personal info input.
type Field struct {
	Key         string `json:"key" yaml:"key"`
	Label       string `json:"label" yaml:"label"`
	Input       string `json:"input" yaml:"input"`
	Required    bool   `json:"required" yaml:"required"`
	Placeholder string `json:"placeholder" yaml:"placeholder"`
}

// Question describes a fixed narrative prompt. Title is the short heading
// used in the preview.
type Question struct {
	ID          string `json:"id" yaml:"id"`
	Title       string `json:"title" yaml:"title"`
	Question    string `json:"question" yaml:"question"`
	Placeholder string `json:"placeholder" yaml:"placeholder"`
}

// TechCategory lists suggested options for one tech stack category.
type TechCategory struct {
	Key     document.Category `json:"key" yaml:"key"`
	Label   string            `json:"label" yaml:"label"`
	Options []string          `json:"options" yaml:"options"`
}

// Template is a layout variant for the rendered resume.
type Template struct {
	ID          string `json:"id" yaml:"id"`
	Name        string `json:"name" yaml:"name"`
	Description string `json:"description" yaml:"description"`
	Layout      string `json:"layout" yaml:"layout"`
}

// Palette holds the seven theme colors.
type Palette struct {
	Primary       string `json:"primary" yaml:"primary"`
	Secondary     string `json:"secondary" yaml:"secondary"`
	Accent        string `json:"accent" yaml:"accent"`
	Background    string `json:"background" yaml:"background"`
	Card          string `json:"card" yaml:"card"`
	Text          string `json:"text" yaml:"text"`
	TextSecondary string `json:"textSecondary" yaml:"textSecondary"`
}

// Theme is a named palette.
type Theme struct {
	ID     string  `json:"id" yaml:"id"`
	Name   string  `json:"name" yaml:"name"`
	Colors Palette `json:"colors" yaml:"colors"`
}

// Level describes a content level choice.
type Level struct {
	ID          document.Level `json:"id" yaml:"id"`
	Name        string         `json:"name" yaml:"name"`
	Description string         `json:"description" yaml:"description"`
	Features    []string       `json:"features" yaml:"features"`
}

// Catalog bundles every static list the wizard reads from.
type Catalog struct {
	Fields    []Field        `json:"fields" yaml:"fields"`
	Questions []Question     `json:"questions" yaml:"questions"`
	TechStack []TechCategory `json:"techStack" yaml:"techStack"`
	Templates []Template     `json:"templates" yaml:"templates"`
	Themes    []Theme        `json:"themes" yaml:"themes"`
	Levels    []Level        `json:"levels" yaml:"levels"`
}

// Template returns the template with id.
func (c *Catalog) Template(id string) (Template, bool) {
	if c == nil {
		return Template{}, false
	}
	for _, t := range c.Templates {
		if t.ID == id {
			return t, true
		}
	}
	return Template{}, false
}

// Theme returns the theme with id.
func (c *Catalog) Theme(id string) (Theme, bool) {
	if c == nil {
		return Theme{}, false
	}
	for _, t := range c.Themes {
		if t.ID == id {
			return t, true
		}
	}
	return Theme{}, false
}

// Question returns the fixed question with id.
func (c *Catalog) Question(id string) (Question, bool) {
	if c == nil {
		return Question{}, false
	}
	for _, q := range c.Questions {
		if q.ID == id {
			return q, true
		}
	}
	return Question{}, false
}

// Field returns the personal info field with key.
func (c *Catalog) Field(key string) (Field, bool) {
	if c == nil {
		return Field{}, false
	}
	for _, f := range c.Fields {
		if f.Key == key {
			return f, true
		}
	}
	return Field{}, false
}

// Category returns the tech category with key.
func (c *Catalog) Category(key document.Category) (TechCategory, bool) {
	if c == nil {
		return TechCategory{}, false
	}
	for _, cat := range c.TechStack {
		if cat.Key == key {
			return cat, true
		}
	}
	return TechCategory{}, false
}

// Level returns the content level description with id.
func (c *Catalog) Level(id document.Level) (Level, bool) {
	if c == nil {
		return Level{}, false
	}
	for _, l := range c.Levels {
		if l.ID == id {
			return l, true
		}
	}
	return Level{}, false
}
