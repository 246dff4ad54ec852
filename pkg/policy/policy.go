// Package policy maps a content level onto the personal info fields and fixed
// narrative questions the wizard shows. Selection is a fixed-size prefix of
// the catalog's master order; it never inspects what the user entered, and
// hidden values stay in the document.
package policy

import (
	"github.com/goliatone/go-devme/pkg/catalog"
	"github.com/goliatone/go-devme/pkg/document"
)

type limits struct {
	fields    int
	questions int
}

var levelLimits = map[document.Level]limits{
	document.LevelSimple:   {fields: 4, questions: 1},
	document.LevelStandard: {fields: 5, questions: 3},
	document.LevelDetailed: {fields: -1, questions: -1},
}

// Policy selects catalog entries for a content level.
type Policy struct {
	catalog *catalog.Catalog
}

// New builds a policy over c.
func New(c *catalog.Catalog) *Policy {
	return &Policy{catalog: c}
}

// Default builds a policy over the embedded catalog.
func Default() *Policy {
	return New(catalog.MustDefault())
}

// FieldsForLevel returns the visible personal info fields in master order.
func (p *Policy) FieldsForLevel(level document.Level) []catalog.Field {
	if p == nil || p.catalog == nil {
		return nil
	}
	return prefix(p.catalog.Fields, limitsFor(level).fields)
}

// QuestionsForLevel returns the visible fixed questions in master order.
// Custom questions are not subject to the level and are merged by the
// questions package.
func (p *Policy) QuestionsForLevel(level document.Level) []catalog.Question {
	if p == nil || p.catalog == nil {
		return nil
	}
	return prefix(p.catalog.Questions, limitsFor(level).questions)
}

// FieldVisible reports whether the field key is shown at level.
func (p *Policy) FieldVisible(level document.Level, key string) bool {
	for _, f := range p.FieldsForLevel(level) {
		if f.Key == key {
			return true
		}
	}
	return false
}

// ProfileImageEnabled reports whether the level offers a profile image upload.
func ProfileImageEnabled(level document.Level) bool {
	return level == document.LevelDetailed
}

// Unknown or unset levels fall back to standard.
func limitsFor(level document.Level) limits {
	if l, ok := levelLimits[level]; ok {
		return l
	}
	return levelLimits[document.LevelStandard]
}

func prefix[T any](items []T, n int) []T {
	if n < 0 || n > len(items) {
		n = len(items)
	}
	return append([]T(nil), items[:n]...)
}
