// Package wizard drives the six-step resume wizard. Machine is the pure
// navigation state (current step, completed steps, preview flag); Controller
// owns one Machine and one document snapshot and is the only writer of both.
package wizard

import (
	"sort"

	"github.com/goliatone/go-devme/pkg/document"
)

// Machine tracks navigation. The completed set only grows within a session.
type Machine struct {
	current   Step
	completed map[Step]struct{}
	preview   bool
}

// NewMachine starts at the content level step with nothing completed.
func NewMachine() *Machine {
	return &Machine{
		current:   FirstStep,
		completed: make(map[Step]struct{}),
	}
}

// Current returns the active step.
func (m *Machine) Current() Step {
	return m.current
}

// InPreview reports whether preview mode is active.
func (m *Machine) InPreview() bool {
	return m.preview
}

// Completed returns the completed steps in ascending order.
func (m *Machine) Completed() []Step {
	out := make([]Step, 0, len(m.completed))
	for s := range m.completed {
		out = append(out, s)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// IsCompleted reports whether s has been completed.
func (m *Machine) IsCompleted(s Step) bool {
	_, ok := m.completed[s]
	return ok
}

// MarkCompleted records s as completed.
func (m *Machine) MarkCompleted(s Step) {
	if s.Valid() {
		m.completed[s] = struct{}{}
	}
}

// CanAdvance evaluates the current step's predicate.
func (m *Machine) CanAdvance(doc document.Document) bool {
	return m.current.CanAdvance(doc)
}

// Next moves forward when the current predicate holds. It is a no-op at the
// last step.
func (m *Machine) Next(doc document.Document) bool {
	if m.current >= LastStep || !m.CanAdvance(doc) {
		return false
	}
	m.MarkCompleted(m.current)
	m.current++
	return true
}

// Previous moves back one step. Going back is never validated.
func (m *Machine) Previous() bool {
	if m.current <= FirstStep {
		return false
	}
	m.current--
	return true
}

// JumpTo moves to target once a content level has been chosen. Skipped steps
// are not validated.
func (m *Machine) JumpTo(doc document.Document, target Step) bool {
	if doc.ContentLevel == "" || !target.Valid() {
		return false
	}
	m.current = target
	return true
}

// EnterPreview switches preview on from the last step once its predicate
// holds. The step index is left untouched.
func (m *Machine) EnterPreview(doc document.Document) bool {
	if m.current != LastStep || !m.CanAdvance(doc) {
		return false
	}
	m.MarkCompleted(LastStep)
	m.preview = true
	return true
}

// ExitPreview switches preview off.
func (m *Machine) ExitPreview() {
	m.preview = false
}
