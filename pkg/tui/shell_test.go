package tui

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"github.com/goliatone/go-devme/pkg/catalog"
	"github.com/goliatone/go-devme/pkg/document"
	"github.com/goliatone/go-devme/pkg/preview"
	"github.com/goliatone/go-devme/pkg/render"
	htmlrenderer "github.com/goliatone/go-devme/pkg/renderers/html"
	textrenderer "github.com/goliatone/go-devme/pkg/renderers/text"
	"github.com/goliatone/go-devme/pkg/steps"
	"github.com/goliatone/go-devme/pkg/style"
	"github.com/goliatone/go-devme/pkg/wizard"
)

type stubDriver struct {
	inputs       []string
	selectIdx    []int
	multiIdx     [][]int
	confirm      []bool
	textAreas    []string
	infoMessages []string
	inputPos     int
	selectPos    int
	multiPos     int
	confirmPos   int
	textPos      int
}

func (s *stubDriver) Input(_ context.Context, _ InputConfig) (string, error) {
	if s.inputPos >= len(s.inputs) {
		return "", errors.New("no input scripted")
	}
	val := s.inputs[s.inputPos]
	s.inputPos++
	return val, nil
}

func (s *stubDriver) Confirm(_ context.Context, _ ConfirmConfig) (bool, error) {
	if s.confirmPos >= len(s.confirm) {
		return false, errors.New("no confirm scripted")
	}
	val := s.confirm[s.confirmPos]
	s.confirmPos++
	return val, nil
}

func (s *stubDriver) Select(_ context.Context, _ SelectConfig) (int, error) {
	if s.selectPos >= len(s.selectIdx) {
		return -1, errors.New("no select scripted")
	}
	val := s.selectIdx[s.selectPos]
	s.selectPos++
	return val, nil
}

func (s *stubDriver) MultiSelect(_ context.Context, _ SelectConfig) ([]int, error) {
	if s.multiPos >= len(s.multiIdx) {
		return nil, errors.New("no multiselect scripted")
	}
	val := s.multiIdx[s.multiPos]
	s.multiPos++
	return val, nil
}

func (s *stubDriver) TextArea(_ context.Context, _ TextAreaConfig) (string, error) {
	if s.textPos >= len(s.textAreas) {
		return "", errors.New("no textarea scripted")
	}
	val := s.textAreas[s.textPos]
	s.textPos++
	return val, nil
}

func (s *stubDriver) Info(_ context.Context, msg string) error {
	s.infoMessages = append(s.infoMessages, msg)
	return nil
}

func (s *stubDriver) sawInfo(substr string) bool {
	for _, msg := range s.infoMessages {
		if strings.Contains(msg, substr) {
			return true
		}
	}
	return false
}

type savingSink struct {
	saves int
	last  document.Document
}

func (s *savingSink) Save(_ context.Context, doc document.Document) error {
	s.saves++
	s.last = doc
	return nil
}

func newShell(t *testing.T, driver PromptDriver, sink wizard.Sink, seed *document.Document) (*Shell, *wizard.Controller) {
	t.Helper()
	c := catalog.MustDefault()
	set := steps.New(c,
		steps.WithProjectIDGenerator(func() string { return "p1" }),
		steps.WithQuestionIDGenerator(func() string { return "custom_1" }),
	)
	options := []wizard.Option{wizard.WithSteps(set), wizard.WithSink(sink)}
	if seed != nil {
		options = append(options, wizard.WithDocument(*seed))
	}
	ctrl := wizard.NewController(c, options...)

	selector := style.MustNew(c)
	html, err := htmlrenderer.New()
	if err != nil {
		t.Fatalf("html renderer: %v", err)
	}
	registry := render.NewRegistry()
	registry.MustRegister(textrenderer.New())
	registry.MustRegister(html)

	shell, err := New(ctrl, preview.New(c, selector),
		WithPromptDriver(driver),
		WithRenderers(registry),
		WithSelector(selector),
	)
	if err != nil {
		t.Fatalf("new shell: %v", err)
	}
	return shell, ctrl
}

func TestShell_FullSession(t *testing.T) {
	exportPath := filepath.Join(t.TempDir(), "ada.html")
	driver := &stubDriver{
		selectIdx: []int{
			0, 0, // simple level, next
			0,    // basic info: next
			0,    // tech stack: next
			0, 2, // projects: add, done
			0,    // next
			0, 2, // story: add question, done
			0,    // next
			1, 1, // minimal template, purple theme
			0,    // preview
			1, 2, // export, quit
		},
		inputs: []string{
			"Ada", "ada@example.com", "", "London",
			"Zig", "", "", "",
			"Engine", "Go, Rust", "https://github.com/ada/engine", "", "Fast", "", "",
			"Favourite bug?",
			exportPath,
		},
		textAreas: []string{"Mathematician", "Computes numbers", "Bernoulli numbers", "The moth"},
		multiIdx:  [][]int{{6}, {}, {}, {1}},
	}
	sink := &savingSink{}
	shell, ctrl := newShell(t, driver, sink, nil)

	if err := shell.Run(context.Background()); err != nil {
		t.Fatalf("run: %v", err)
	}
	if driver.selectPos != len(driver.selectIdx) || driver.inputPos != len(driver.inputs) ||
		driver.textPos != len(driver.textAreas) || driver.multiPos != len(driver.multiIdx) {
		t.Fatalf("prompts not consumed as expected: select=%d input=%d text=%d multi=%d",
			driver.selectPos, driver.inputPos, driver.textPos, driver.multiPos)
	}
	if !ctrl.InPreview() {
		t.Fatalf("expected session to end in preview")
	}

	doc := ctrl.Document()
	wantInfo := document.PersonalInfo{Name: "Ada", Email: "ada@example.com", Location: "London", Bio: "Mathematician"}
	if diff := cmp.Diff(wantInfo, doc.PersonalInfo); diff != "" {
		t.Fatalf("personal info mismatch (-want +got):\n%s", diff)
	}
	wantStack := document.TechStack{Languages: []string{"Go", "Zig"}, Databases: []string{"PostgreSQL"}}
	if diff := cmp.Diff(wantStack, doc.TechStack, cmpopts.EquateEmpty()); diff != "" {
		t.Fatalf("tech stack mismatch (-want +got):\n%s", diff)
	}
	wantProjects := []document.Project{{
		ID:           "p1",
		Title:        "Engine",
		Description:  "Computes numbers",
		Technologies: []string{"Go", "Rust"},
		GitHubURL:    "https://github.com/ada/engine",
		Highlights:   []string{"Fast"},
	}}
	if diff := cmp.Diff(wantProjects, doc.Projects, cmpopts.EquateEmpty()); diff != "" {
		t.Fatalf("projects mismatch (-want +got):\n%s", diff)
	}
	if got := doc.NarrativeAnswers.Get(document.QuestionHardestProblem); got != "Bernoulli numbers" {
		t.Fatalf("expected hardest problem answer, got %q", got)
	}
	if len(doc.CustomQuestions) != 1 || doc.CustomQuestions[0].ID != "custom_1" {
		t.Fatalf("expected one custom question, got %+v", doc.CustomQuestions)
	}
	if got := doc.NarrativeAnswers.Get("custom_1"); got != "The moth" {
		t.Fatalf("expected custom answer, got %q", got)
	}
	if doc.SelectedTemplate != "minimal" || doc.SelectedTheme != "purple" {
		t.Fatalf("unexpected design: %s/%s", doc.SelectedTemplate, doc.SelectedTheme)
	}
	if len(ctrl.CompletedSteps()) != len(wizard.Steps()) {
		t.Fatalf("expected every step completed, got %v", ctrl.CompletedSteps())
	}

	if sink.saves == 0 {
		t.Fatalf("expected edits to be persisted")
	}
	if diff := cmp.Diff(doc, sink.last, cmpopts.EquateEmpty()); diff != "" {
		t.Fatalf("persisted snapshot differs (-want +got):\n%s", diff)
	}

	if !driver.sawInfo("ADA") {
		t.Fatalf("expected text preview in info messages, got %v", driver.infoMessages)
	}
	if !driver.sawInfo("Saved " + exportPath) {
		t.Fatalf("expected export confirmation, got %v", driver.infoMessages)
	}
	html, err := os.ReadFile(exportPath)
	if err != nil {
		t.Fatalf("read export: %v", err)
	}
	for _, want := range []string{"<!DOCTYPE html>", "Ada", "Engine", "#8B5CF6"} {
		if !strings.Contains(string(html), want) {
			t.Fatalf("expected export to contain %q", want)
		}
	}
}

func TestShell_NextBlockedUntilStepComplete(t *testing.T) {
	seed := document.Default()
	seed.ContentLevel = document.LevelSimple
	driver := &stubDriver{
		selectIdx: []int{
			0,    // simple level
			1, 1, // jump, basic info
			0, 4, // next (refused), quit
		},
		inputs:    []string{"", "", "", ""},
		textAreas: []string{""},
	}
	shell, ctrl := newShell(t, driver, &savingSink{}, &seed)

	if err := shell.Run(context.Background()); err != nil {
		t.Fatalf("run: %v", err)
	}
	if got := ctrl.CurrentStep(); got != wizard.StepPersonalInfo {
		t.Fatalf("expected to stay on basic info, got %v", got)
	}
	if !driver.sawInfo(DefaultTheme.ErrorPrefix + "Complete this step before moving on.") {
		t.Fatalf("expected a warning, got %v", driver.infoMessages)
	}
}

func TestShell_ProgressMarksCompletedSteps(t *testing.T) {
	driver := &stubDriver{
		selectIdx: []int{2, 0, 4}, // detailed, next, quit
		inputs:    []string{"Ada", "ada@example.com", "", "", "", "", ""},
		textAreas: []string{""},
		confirm:   []bool{false},
	}
	shell, _ := newShell(t, driver, &savingSink{}, nil)

	if err := shell.Run(context.Background()); err != nil {
		t.Fatalf("run: %v", err)
	}
	if len(driver.infoMessages) < 2 {
		t.Fatalf("expected progress lines, got %v", driver.infoMessages)
	}
	first, second := driver.infoMessages[0], driver.infoMessages[1]
	if !strings.HasPrefix(first, "> 1. Content") {
		t.Fatalf("unexpected first progress line %q", first)
	}
	if !strings.Contains(second, "1. Content [x]") || !strings.Contains(second, "> 2. Basic info") {
		t.Fatalf("unexpected second progress line %q", second)
	}
	if driver.confirmPos != 1 {
		t.Fatalf("expected the detailed level to offer a profile image")
	}
}

func TestShell_AbortStopsRun(t *testing.T) {
	shell, _ := newShell(t, abortingDriver{&stubDriver{}}, &savingSink{}, nil)
	err := shell.Run(context.Background())
	if !errors.Is(err, ErrAborted) {
		t.Fatalf("expected ErrAborted, got %v", err)
	}
}

func TestShell_InvalidChoice(t *testing.T) {
	driver := &stubDriver{selectIdx: []int{7}}
	shell, _ := newShell(t, driver, &savingSink{}, nil)
	if err := shell.Run(context.Background()); !errors.Is(err, ErrInvalidChoice) {
		t.Fatalf("expected ErrInvalidChoice, got %v", err)
	}
}

func TestNew_RequiresController(t *testing.T) {
	if _, err := New(nil, nil); err == nil {
		t.Fatalf("expected error for missing controller")
	}
}

type abortingDriver struct{ *stubDriver }

func (abortingDriver) Select(context.Context, SelectConfig) (int, error) { return 0, ErrAborted }
func (abortingDriver) Info(context.Context, string) error               { return nil }

func TestSplitList(t *testing.T) {
	got := splitList(" Go, ,Rust ,")
	if diff := cmp.Diff([]string{"Go", "Rust"}, got); diff != "" {
		t.Fatalf("split mismatch (-want +got):\n%s", diff)
	}
}
