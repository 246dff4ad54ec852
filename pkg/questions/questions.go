// Package questions manages the narrative step's question list: the fixed
// questions selected by the content level followed by user-defined custom
// questions. The merged list is a closed set of variants (Fixed, Custom) so
// callers switch on the concrete type instead of probing for a marker.
package questions

import (
	"strings"

	"github.com/goliatone/go-devme/pkg/document"
	"github.com/goliatone/go-devme/pkg/policy"
)

// DefaultPlaceholder is used when a custom question is added without one.
const DefaultPlaceholder = "Share your answer..."

// Question is implemented by Fixed and Custom only.
type Question interface {
	QuestionID() string
	Prompt() string
	Hint() string
	question()
}

// Fixed is one of the six catalog questions.
type Fixed struct {
	ID          string
	Title       string
	Question    string
	Placeholder string
}

// Custom is a user-defined question.
type Custom struct {
	ID          string
	Question    string
	Placeholder string
}

func (f Fixed) QuestionID() string { return f.ID }
func (f Fixed) Prompt() string     { return f.Question }
func (f Fixed) Hint() string       { return f.Placeholder }
func (Fixed) question()            {}

func (c Custom) QuestionID() string { return c.ID }
func (c Custom) Prompt() string     { return c.Question }
func (c Custom) Hint() string       { return c.Placeholder }
func (Custom) question()            {}

// Option configures a Manager.
type Option func(*Manager)

// WithIDGenerator overrides how custom question ids are minted. Generated ids
// should keep the document.CustomQuestionPrefix namespace.
func WithIDGenerator(fn func() string) Option {
	return func(m *Manager) {
		if fn != nil {
			m.newID = fn
		}
	}
}

// Manager adds, removes and lists narrative questions.
type Manager struct {
	policy *policy.Policy
	newID  func() string
}

// New constructs a Manager backed by p.
func New(p *policy.Policy, options ...Option) *Manager {
	m := &Manager{
		policy: p,
		newID:  document.NewCustomQuestionID,
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(m)
	}
	return m
}

// Add appends a custom question and initialises its answer to "". A question
// that trims to empty is rejected and doc is returned unchanged with ok false.
func (m *Manager) Add(doc document.Document, question, placeholder string) (document.Document, document.CustomQuestion, bool) {
	question = strings.TrimSpace(question)
	if question == "" {
		return doc, document.CustomQuestion{}, false
	}
	placeholder = strings.TrimSpace(placeholder)
	if placeholder == "" {
		placeholder = DefaultPlaceholder
	}

	id := document.UniqueID(m.newID(), doc.HasQuestion)

	cq := document.CustomQuestion{
		ID:          id,
		Question:    question,
		Placeholder: placeholder,
		IsCustom:    true,
	}
	list := make([]document.CustomQuestion, 0, len(doc.CustomQuestions)+1)
	list = append(list, doc.CustomQuestions...)
	list = append(list, cq)

	return doc.WithCustomQuestions(list).WithAnswer(id, ""), cq, true
}

// Remove deletes the custom question with id and its answer. Unknown ids
// leave doc unchanged.
func (m *Manager) Remove(doc document.Document, id string) (document.Document, bool) {
	if _, ok := doc.CustomQuestion(id); !ok {
		return doc, false
	}
	list := make([]document.CustomQuestion, 0, len(doc.CustomQuestions)-1)
	for _, q := range doc.CustomQuestions {
		if q.ID != id {
			list = append(list, q)
		}
	}
	return doc.WithCustomQuestions(list).WithoutAnswer(id), true
}

// Merged returns the level's fixed questions in master order followed by every
// custom question in creation order.
func (m *Manager) Merged(doc document.Document, level document.Level) []Question {
	fixed := m.policy.QuestionsForLevel(level)
	out := make([]Question, 0, len(fixed)+len(doc.CustomQuestions))
	for _, q := range fixed {
		out = append(out, Fixed{ID: q.ID, Title: q.Title, Question: q.Question, Placeholder: q.Placeholder})
	}
	for _, q := range doc.CustomQuestions {
		out = append(out, Custom{ID: q.ID, Question: q.Question, Placeholder: q.Placeholder})
	}
	return out
}
