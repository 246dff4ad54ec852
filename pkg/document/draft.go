package document

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
	"github.com/go-playground/validator/v10/non-standard/validators"
)

// ErrInvalidDraft is returned when a draft misses required content.
var ErrInvalidDraft = errors.New("document: project draft is incomplete")

// Draft is a project being composed. It lives outside the document until
// Commit succeeds; discarding the value cancels it.
type Draft struct {
	Title        string   `json:"title" validate:"notblank"`
	Description  string   `json:"description" validate:"notblank"`
	Technologies []string `json:"technologies"`
	GitHubURL    string   `json:"githubUrl"`
	LiveURL      string   `json:"liveUrl"`
	Image        string   `json:"image,omitempty"`
	Highlights   []string `json:"highlights"`
}

// NewDraft returns an empty draft with one blank highlight row, matching the
// entry form's initial state.
func NewDraft() Draft {
	return Draft{
		Technologies: []string{},
		Highlights:   []string{""},
	}
}

// AddTechnology appends a trimmed, non-duplicate technology.
func (d Draft) AddTechnology(tech string) Draft {
	d.Technologies, _ = AddUnique(d.Technologies, tech)
	return d
}

// RemoveTechnology drops tech when present.
func (d Draft) RemoveTechnology(tech string) Draft {
	d.Technologies, _ = RemoveValue(d.Technologies, tech)
	return d
}

// AddHighlight appends a blank highlight row.
func (d Draft) AddHighlight() Draft {
	d.Highlights = append(cloneStrings(d.Highlights), "")
	return d
}

// SetHighlight replaces the highlight at index; out of range is a no-op.
func (d Draft) SetHighlight(index int, value string) Draft {
	if index < 0 || index >= len(d.Highlights) {
		return d
	}
	d.Highlights = cloneStrings(d.Highlights)
	d.Highlights[index] = value
	return d
}

// RemoveHighlight drops the highlight at index; out of range is a no-op.
func (d Draft) RemoveHighlight(index int) Draft {
	if index < 0 || index >= len(d.Highlights) {
		return d
	}
	out := make([]string, 0, len(d.Highlights)-1)
	out = append(out, d.Highlights[:index]...)
	d.Highlights = append(out, d.Highlights[index+1:]...)
	return d
}

// WithImage sets or clears the project image data URI.
func (d Draft) WithImage(uri string) Draft {
	d.Image = uri
	return d
}

// Validate reports missing required content.
func (d Draft) Validate() error {
	err := draftValidator().Struct(d)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		fields := make([]string, 0, len(verrs))
		for _, fe := range verrs {
			fields = append(fields, fe.Field())
		}
		return fmt.Errorf("%w: %s required", ErrInvalidDraft, strings.Join(fields, ", "))
	}
	return fmt.Errorf("document: validate draft: %w", err)
}

// Commit validates the draft and converts it into a Project with the given
// id. Blank highlights are dropped.
func (d Draft) Commit(id string) (Project, error) {
	if err := d.Validate(); err != nil {
		return Project{}, err
	}
	highlights := make([]string, 0, len(d.Highlights))
	for _, h := range d.Highlights {
		if strings.TrimSpace(h) != "" {
			highlights = append(highlights, h)
		}
	}
	return Project{
		ID:           id,
		Title:        d.Title,
		Description:  d.Description,
		Technologies: orEmpty(Dedupe(cloneStrings(d.Technologies))),
		GitHubURL:    d.GitHubURL,
		LiveURL:      d.LiveURL,
		Image:        d.Image,
		Highlights:   highlights,
	}, nil
}

var (
	validateOnce sync.Once
	validate     *validator.Validate
)

func draftValidator() *validator.Validate {
	validateOnce.Do(func() {
		v := validator.New()
		_ = v.RegisterValidation("notblank", validators.NotBlank)
		v.RegisterTagNameFunc(func(field reflect.StructField) string {
			name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
			if name == "" || name == "-" {
				return field.Name
			}
			return name
		})
		validate = v
	})
	return validate
}
