package preview

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-devme/pkg/catalog"
	"github.com/goliatone/go-devme/pkg/document"
	"github.com/goliatone/go-devme/pkg/style"
)

func newComposer(t *testing.T) *Composer {
	t.Helper()
	c := catalog.MustDefault()
	return New(c, style.MustNew(c))
}

func kinds(p Preview) []Kind {
	out := make([]Kind, 0, len(p.Sections))
	for _, s := range p.Sections {
		out = append(out, s.Kind())
	}
	return out
}

func TestCompose_EmptyDocumentHasOnlyHeader(t *testing.T) {
	p := newComposer(t).Compose(document.Default())

	if diff := cmp.Diff([]Kind{KindHeader}, kinds(p)); diff != "" {
		t.Fatalf("sections mismatch (-want +got):\n%s", diff)
	}
	if p.Template.ID != "modern" || p.Theme.ID != "blue" {
		t.Fatalf("expected catalog fallbacks, got %q/%q", p.Template.ID, p.Theme.ID)
	}
	if _, ok := p.Section(KindProjects); ok {
		t.Fatalf("projects section must be omitted without projects")
	}
}

func TestCompose_ProjectHighlightsSkipBlank(t *testing.T) {
	doc := document.Default().AppendProject(document.Project{
		ID:           "p1",
		Title:        "Launcher",
		Description:  "Ships things",
		Technologies: []string{"Go"},
		GitHubURL:    "https://github.com/ada/launcher",
		Highlights:   []string{"", "Shipped v1"},
	})

	p := newComposer(t).Compose(doc)
	s, ok := p.Section(KindProjects)
	if !ok {
		t.Fatalf("expected projects section")
	}
	want := ProjectCard{
		ID:           "p1",
		Title:        "Launcher",
		Description:  "Ships things",
		Links:        []Link{{Kind: LinkGitHub, URL: "https://github.com/ada/launcher"}},
		Highlights:   []string{"Shipped v1"},
		Technologies: []string{"Go"},
	}
	if diff := cmp.Diff(want, s.(Projects).Items[0]); diff != "" {
		t.Fatalf("project card mismatch (-want +got):\n%s", diff)
	}
}

func TestCompose_NarrativeOrderingAndTags(t *testing.T) {
	doc := document.Default().
		WithCustomQuestions([]document.CustomQuestion{
			{ID: "custom_a", Question: "Favorite bug?", Placeholder: "x", IsCustom: true},
			{ID: "custom_b", Question: "Unanswered?", Placeholder: "x", IsCustom: true},
		}).
		WithAnswer("custom_a", "Off by one").
		WithAnswer("custom_b", "   ").
		WithAnswer(document.QuestionMotivation, "Curiosity").
		WithAnswer(document.QuestionHardestProblem, "Consensus")

	// Content level plays no part in what the preview shows.
	doc = doc.WithContentLevel(document.LevelSimple)

	p := newComposer(t).Compose(doc)
	s, ok := p.Section(KindNarrative)
	if !ok {
		t.Fatalf("expected narrative section")
	}
	want := []NarrativeEntry{
		{ID: document.QuestionHardestProblem, Title: "Most Challenging Problem", Question: "What was the most challenging technical problem you've solved?", Answer: "Consensus"},
		{ID: document.QuestionMotivation, Title: "What Drives Me", Question: "What drives your passion for development?", Answer: "Curiosity"},
		{ID: "custom_a", Title: "Favorite bug?", Question: "Favorite bug?", Answer: "Off by one", Custom: true},
	}
	if diff := cmp.Diff(want, s.(Narrative).Entries); diff != "" {
		t.Fatalf("narrative mismatch (-want +got):\n%s", diff)
	}
}

func TestCompose_HeaderContactsAndTechStack(t *testing.T) {
	doc := document.Default().
		WithPersonalInfo(document.PersonalInfo{Name: "Ada", Email: "ada@example.com", GitHub: "ada", Bio: "Engineer"}).
		WithTheme("dark").
		WithTemplate("creative")
	stack, _ := doc.TechStack.Add(document.CategoryDatabases, "Postgres")
	stack, _ = stack.Add(document.CategoryLanguages, "Go")
	doc = doc.WithTechStack(stack)

	p := newComposer(t).Compose(doc)

	wantContacts := []Contact{{Kind: ContactEmail, Value: "ada@example.com"}, {Kind: ContactGitHub, Value: "ada"}}
	if diff := cmp.Diff(wantContacts, p.Header().Contacts); diff != "" {
		t.Fatalf("contacts mismatch (-want +got):\n%s", diff)
	}
	s, ok := p.Section(KindTechStack)
	if !ok {
		t.Fatalf("expected tech stack section")
	}
	wantGroups := []TechGroup{
		{Category: document.CategoryLanguages, Label: "Languages", Items: []string{"Go"}},
		{Category: document.CategoryDatabases, Label: "Databases", Items: []string{"Postgres"}},
	}
	if diff := cmp.Diff(wantGroups, s.(TechStack).Groups); diff != "" {
		t.Fatalf("tech groups mismatch (-want +got):\n%s", diff)
	}
	if p.Theme.ID != "dark" || p.Template.Layout != "creative" {
		t.Fatalf("unexpected style: %q/%q", p.Theme.ID, p.Template.Layout)
	}
}
