// Package steps implements the wizard's form steps as pure transformers. Each
// step reads the slice of the document it owns plus the active content level
// and returns a full replacement document; none of them keep state between
// calls.
package steps

import (
	"github.com/goliatone/go-devme/pkg/catalog"
	"github.com/goliatone/go-devme/pkg/document"
	"github.com/goliatone/go-devme/pkg/policy"
	"github.com/goliatone/go-devme/pkg/questions"
)

// Option configures Set construction.
type Option func(*config)

type config struct {
	projectID  func() string
	questionID func() string
}

// WithProjectIDGenerator overrides project id generation.
func WithProjectIDGenerator(fn func() string) Option {
	return func(cfg *config) {
		if fn != nil {
			cfg.projectID = fn
		}
	}
}

// WithQuestionIDGenerator overrides custom question id generation.
func WithQuestionIDGenerator(fn func() string) Option {
	return func(cfg *config) {
		if fn != nil {
			cfg.questionID = fn
		}
	}
}

// Set bundles the six steps around one catalog.
type Set struct {
	Level     ContentLevel
	Personal  PersonalInfo
	TechStack TechStack
	Projects  Projects
	Narrative Narrative
	Design    Design
}

// New builds every step over c.
func New(c *catalog.Catalog, options ...Option) *Set {
	cfg := &config{projectID: document.NewProjectID}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(cfg)
	}

	p := policy.New(c)
	qm := questions.New(p, questions.WithIDGenerator(cfg.questionID))

	return &Set{
		Level:     ContentLevel{catalog: c},
		Personal:  PersonalInfo{policy: p},
		TechStack: TechStack{catalog: c},
		Projects:  Projects{newID: cfg.projectID},
		Narrative: Narrative{questions: qm},
		Design:    Design{catalog: c},
	}
}
