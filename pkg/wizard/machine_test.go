package wizard

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-devme/pkg/document"
)

func readyDocument() document.Document {
	doc := document.Default().
		WithContentLevel(document.LevelStandard).
		WithPersonalInfo(document.PersonalInfo{Name: "Ada", Email: "ada@example.com"}).
		WithTemplate("modern").
		WithTheme("blue")
	stack, _ := doc.TechStack.Add(document.CategoryLanguages, "Go")
	return doc.WithTechStack(stack)
}

func TestStep_CanAdvancePersonalInfo(t *testing.T) {
	doc := document.Default().WithPersonalInfo(document.PersonalInfo{Email: "a@b.com"})
	if StepPersonalInfo.CanAdvance(doc) {
		t.Fatalf("expected blank name to block advance")
	}
	doc = doc.WithPersonalInfo(document.PersonalInfo{Name: "A", Email: "a@b.com"})
	if !StepPersonalInfo.CanAdvance(doc) {
		t.Fatalf("expected name and email to allow advance")
	}
	doc = doc.WithPersonalInfo(document.PersonalInfo{Name: "   ", Email: "a@b.com"})
	if StepPersonalInfo.CanAdvance(doc) {
		t.Fatalf("expected whitespace name to block advance")
	}
}

func TestStep_Titles(t *testing.T) {
	var got []string
	for _, s := range Steps() {
		got = append(got, s.Title())
	}
	want := []string{"Content", "Basic info", "Tech stack", "Projects", "My story", "Design"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("titles mismatch (-want +got):\n%s", diff)
	}
	if Step(42).Valid() || Step(42).Title() != "" {
		t.Fatalf("expected out of range step to be invalid")
	}
}

func TestMachine_JumpRequiresLevel(t *testing.T) {
	m := NewMachine()
	if m.JumpTo(document.Default(), StepProjects) {
		t.Fatalf("expected jump to be rejected without a level")
	}
	if m.Current() != StepContentLevel {
		t.Fatalf("expected current step unchanged, got %v", m.Current())
	}

	doc := document.Default().WithContentLevel(document.LevelSimple)
	if !m.JumpTo(doc, StepProjects) {
		t.Fatalf("expected jump to succeed once a level is set")
	}
	if m.Current() != StepProjects {
		t.Fatalf("expected projects step, got %v", m.Current())
	}
	if m.IsCompleted(StepPersonalInfo) {
		t.Fatalf("skipped steps must not be marked completed")
	}
	if m.JumpTo(doc, Step(-1)) || m.JumpTo(doc, Step(6)) {
		t.Fatalf("expected out of range jump to be rejected")
	}
}

func TestMachine_NextPreviousBounds(t *testing.T) {
	m := NewMachine()
	doc := readyDocument()

	if m.Previous() {
		t.Fatalf("previous at first step should be a no-op")
	}
	if m.Next(document.Default()) {
		t.Fatalf("next without a level should be rejected")
	}
	for i := 0; i < 5; i++ {
		if !m.Next(doc) {
			t.Fatalf("next %d rejected at %v", i, m.Current())
		}
	}
	if m.Current() != LastStep {
		t.Fatalf("expected last step, got %v", m.Current())
	}
	if m.Next(doc) {
		t.Fatalf("next at last step should be a no-op")
	}

	want := []Step{StepContentLevel, StepPersonalInfo, StepTechStack, StepProjects, StepNarrative}
	if diff := cmp.Diff(want, m.Completed()); diff != "" {
		t.Fatalf("completed mismatch (-want +got):\n%s", diff)
	}

	if !m.Previous() || m.Current() != StepNarrative {
		t.Fatalf("expected previous to land on narrative, got %v", m.Current())
	}
	if !m.IsCompleted(StepNarrative) {
		t.Fatalf("completed set must survive going back")
	}
}

func TestMachine_TechStackBlocksNext(t *testing.T) {
	m := NewMachine()
	doc := document.Default().
		WithContentLevel(document.LevelSimple).
		WithPersonalInfo(document.PersonalInfo{Name: "Ada", Email: "ada@example.com"})
	m.JumpTo(doc, StepTechStack)
	if m.Next(doc) {
		t.Fatalf("expected empty tech stack to block next")
	}
}

func TestMachine_Preview(t *testing.T) {
	m := NewMachine()
	doc := readyDocument()

	if m.EnterPreview(doc) {
		t.Fatalf("preview must only open from the design step")
	}
	m.JumpTo(doc, StepDesign)

	if m.EnterPreview(doc.WithTheme("")) {
		t.Fatalf("preview requires template and theme")
	}
	if !m.EnterPreview(doc) {
		t.Fatalf("expected preview to open")
	}
	if !m.InPreview() || m.Current() != StepDesign || !m.IsCompleted(StepDesign) {
		t.Fatalf("unexpected state after preview: step=%v preview=%v", m.Current(), m.InPreview())
	}

	m.ExitPreview()
	if m.InPreview() || m.Current() != StepDesign {
		t.Fatalf("exit preview should keep the design step")
	}
}
