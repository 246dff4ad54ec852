package steps

import (
	"fmt"

	"github.com/goliatone/go-devme/pkg/document"
	"github.com/goliatone/go-devme/pkg/questions"
)

// Narrative is step 4.
type Narrative struct {
	questions *questions.Manager
}

// Questions returns the merged question list for level.
func (s Narrative) Questions(doc document.Document, level document.Level) []questions.Question {
	return s.questions.Merged(doc, level)
}

// Answer records text for a fixed or existing custom question.
func (s Narrative) Answer(doc document.Document, id, text string) (document.Document, error) {
	if !doc.HasQuestion(id) {
		return doc, fmt.Errorf("%w: %q", ErrUnknownQuestion, id)
	}
	return doc.WithAnswer(id, text), nil
}

// AddQuestion appends a custom question; blank text is rejected with ok false.
func (s Narrative) AddQuestion(doc document.Document, question, placeholder string) (document.Document, document.CustomQuestion, bool) {
	return s.questions.Add(doc, question, placeholder)
}

// RemoveQuestion deletes a custom question and its answer.
func (s Narrative) RemoveQuestion(doc document.Document, id string) (document.Document, bool) {
	return s.questions.Remove(doc, id)
}
