package wizard

import (
	"strings"

	"github.com/goliatone/go-devme/pkg/document"
)

// Step indexes a wizard page.
type Step int

const (
	StepContentLevel Step = iota
	StepPersonalInfo
	StepTechStack
	StepProjects
	StepNarrative
	StepDesign
)

// FirstStep and LastStep bound the step range.
const (
	FirstStep = StepContentLevel
	LastStep  = StepDesign
)

var stepTitles = [...]string{
	StepContentLevel: "Content",
	StepPersonalInfo: "Basic info",
	StepTechStack:    "Tech stack",
	StepProjects:     "Projects",
	StepNarrative:    "My story",
	StepDesign:       "Design",
}

// Steps lists every step in order.
func Steps() []Step {
	out := make([]Step, 0, len(stepTitles))
	for s := FirstStep; s <= LastStep; s++ {
		out = append(out, s)
	}
	return out
}

// Valid reports whether s is within the step range.
func (s Step) Valid() bool {
	return s >= FirstStep && s <= LastStep
}

// Title returns a short display label.
func (s Step) Title() string {
	if !s.Valid() {
		return ""
	}
	return stepTitles[s]
}

func (s Step) String() string {
	return s.Title()
}

// CanAdvance evaluates the advance predicate of step s against doc.
func (s Step) CanAdvance(doc document.Document) bool {
	switch s {
	case StepContentLevel:
		return doc.ContentLevel != ""
	case StepPersonalInfo:
		return strings.TrimSpace(doc.PersonalInfo.Name) != "" &&
			strings.TrimSpace(doc.PersonalInfo.Email) != ""
	case StepTechStack:
		return !doc.TechStack.Empty()
	case StepProjects, StepNarrative:
		return true
	case StepDesign:
		return doc.SelectedTemplate != "" && doc.SelectedTheme != ""
	default:
		return false
	}
}
