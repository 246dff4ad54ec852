package wizard

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-devme/pkg/catalog"
	"github.com/goliatone/go-devme/pkg/document"
	"github.com/goliatone/go-devme/pkg/steps"
)

type recordingSink struct {
	saved []document.Document
	err   error
}

func (r *recordingSink) Save(_ context.Context, doc document.Document) error {
	r.saved = append(r.saved, doc)
	return r.err
}

func newController(t *testing.T, sink Sink, options ...Option) *Controller {
	t.Helper()
	set := steps.New(catalog.MustDefault(),
		steps.WithProjectIDGenerator(func() string { return "p1" }),
		steps.WithQuestionIDGenerator(func() string { return "custom_1" }),
	)
	options = append([]Option{WithSink(sink), WithSteps(set)}, options...)
	return NewController(catalog.MustDefault(), options...)
}

func TestController_PersistsEachMutation(t *testing.T) {
	sink := &recordingSink{}
	c := newController(t, sink)

	if err := c.SelectContentLevel(document.LevelStandard); err != nil {
		t.Fatalf("select level: %v", err)
	}
	if err := c.SetPersonalField("name", "Ada"); err != nil {
		t.Fatalf("set name: %v", err)
	}
	if len(sink.saved) != 2 {
		t.Fatalf("expected 2 saves, got %d", len(sink.saved))
	}
	if diff := cmp.Diff(c.Document(), sink.saved[1]); diff != "" {
		t.Fatalf("last save differs from snapshot (-want +got):\n%s", diff)
	}

	if err := c.SetPersonalField("name", "Ada"); err != nil {
		t.Fatalf("repeat name: %v", err)
	}
	if len(sink.saved) != 2 {
		t.Fatalf("no-op edits must not persist, got %d saves", len(sink.saved))
	}
}

func TestController_MarksCompletedOnEdit(t *testing.T) {
	c := newController(t, &recordingSink{})

	if err := c.SelectContentLevel(document.LevelSimple); err != nil {
		t.Fatalf("select level: %v", err)
	}
	if !c.IsCompleted(StepContentLevel) {
		t.Fatalf("expected content level completed after selection")
	}

	_ = c.SetPersonalField("email", "ada@example.com")
	if c.IsCompleted(StepPersonalInfo) {
		t.Fatalf("personal info should not complete without a name")
	}
	_ = c.SetPersonalField("name", "Ada")
	if !c.IsCompleted(StepPersonalInfo) {
		t.Fatalf("expected personal info completed")
	}

	// Clearing the name later does not un-complete the step.
	_ = c.SetPersonalField("name", "")
	if !c.IsCompleted(StepPersonalInfo) {
		t.Fatalf("completed steps must not shrink")
	}
}

func TestController_SinkFailureDoesNotBlock(t *testing.T) {
	var logs bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&logs, nil))
	sink := &recordingSink{err: errors.New("quota exceeded")}
	c := newController(t, sink, WithLogger(logger))

	if err := c.SelectContentLevel(document.LevelDetailed); err != nil {
		t.Fatalf("select level: %v", err)
	}
	if err := c.ToggleTech(document.CategoryLanguages, "Go"); err != nil {
		t.Fatalf("toggle: %v", err)
	}
	if c.Document().ContentLevel != document.LevelDetailed {
		t.Fatalf("snapshot must reflect edits despite sink failure")
	}
	if !strings.Contains(logs.String(), "quota exceeded") {
		t.Fatalf("expected sink failure to be logged, got %q", logs.String())
	}
}

func TestController_FullSession(t *testing.T) {
	sink := &recordingSink{}
	c := newController(t, sink)

	if c.Next() {
		t.Fatalf("next must be blocked before a level is chosen")
	}
	must := func(err error) {
		t.Helper()
		if err != nil {
			t.Fatal(err)
		}
	}
	must(c.SelectContentLevel(document.LevelStandard))
	if !c.Next() {
		t.Fatalf("expected advance past level")
	}
	must(c.SetPersonalField("name", "Ada"))
	must(c.SetPersonalField("email", "ada@example.com"))
	if !c.Next() {
		t.Fatalf("expected advance past personal info")
	}
	if c.Next() {
		t.Fatalf("empty tech stack must block")
	}
	must(c.AddTech(document.CategoryTools, "Docker"))
	c.Next()

	draft := document.NewDraft()
	draft.Title = "Compiler"
	draft.Description = "A toy compiler"
	draft = draft.SetHighlight(0, "Self-hosting")
	project, err := c.AddProject(draft)
	must(err)
	if project.ID != "p1" {
		t.Fatalf("unexpected project id %q", project.ID)
	}
	c.Next()

	cq, ok := c.AddCustomQuestion("Favorite bug?", "")
	if !ok {
		t.Fatalf("expected custom question to be added")
	}
	must(c.Answer(cq.ID, "An off by one"))
	must(c.Answer(document.QuestionHardestProblem, "Distributed locks"))
	if err := c.Answer("nope", "x"); !errors.Is(err, steps.ErrUnknownQuestion) {
		t.Fatalf("expected ErrUnknownQuestion, got %v", err)
	}
	c.Next()

	if c.EnterPreview() {
		t.Fatalf("preview requires template and theme")
	}
	must(c.SelectTemplate("minimal"))
	must(c.SelectTheme("dark"))
	if !c.EnterPreview() || !c.InPreview() {
		t.Fatalf("expected preview to open")
	}
	c.ExitPreview()
	if c.CurrentStep() != StepDesign {
		t.Fatalf("expected design step after exit, got %v", c.CurrentStep())
	}

	doc := c.Document()
	if len(doc.Projects) != 1 || doc.NarrativeAnswers.Get(cq.ID) != "An off by one" {
		t.Fatalf("unexpected document: %+v", doc)
	}
	if len(c.CompletedSteps()) != 6 {
		t.Fatalf("expected every step completed, got %v", c.CompletedSteps())
	}

	if !c.RemoveCustomQuestion(cq.ID) {
		t.Fatalf("expected custom question removal")
	}
	if _, ok := c.Document().NarrativeAnswers[cq.ID]; ok {
		t.Fatalf("answer must be removed with its question")
	}
	if !c.RemoveProject("p1") || c.RemoveProject("p1") {
		t.Fatalf("expected remove then stale no-op")
	}
}

func TestController_SeededDocumentIsCopied(t *testing.T) {
	seed := document.Default().WithContentLevel(document.LevelSimple)
	c := newController(t, nil, WithDocument(seed))

	got := c.Document()
	got.NarrativeAnswers["x"] = "y"
	if _, ok := c.Document().NarrativeAnswers["x"]; ok {
		t.Fatalf("document accessor must return a copy")
	}
	if !c.JumpTo(StepDesign) {
		t.Fatalf("expected jump with seeded level")
	}
}
