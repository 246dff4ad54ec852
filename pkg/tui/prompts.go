package tui

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/goliatone/go-devme/pkg/catalog"
	"github.com/goliatone/go-devme/pkg/document"
	"github.com/goliatone/go-devme/pkg/policy"
	"github.com/goliatone/go-devme/pkg/questions"
	"github.com/goliatone/go-devme/pkg/steps"
)

func (s *Shell) promptLevel(ctx context.Context) error {
	levels := s.ctrl.Steps().Level.Options()
	doc := s.ctrl.Document()
	options := make([]string, len(levels))
	def := 0
	for i, level := range levels {
		options[i] = fmt.Sprintf("%s - %s", level.Name, level.Description)
		if level.ID == doc.ContentLevel {
			def = i
		}
	}
	choice, err := s.choose(ctx, SelectConfig{
		Message:      "How detailed should your resume be?",
		Options:      options,
		DefaultIndex: def,
	})
	if err != nil {
		return err
	}
	return s.ctrl.SelectContentLevel(levels[choice].ID)
}

func (s *Shell) promptPersonalInfo(ctx context.Context) error {
	set := s.ctrl.Steps()
	doc := s.ctrl.Document()
	for _, field := range set.Personal.Fields(doc.ContentLevel) {
		cfg := InputConfig{
			Message: field.Label,
			Default: set.Personal.Value(doc, field.Key),
			Help:    field.Placeholder,
		}
		if field.Required {
			cfg.Validator = notBlank(field.Label)
		}
		value, err := s.driver.Input(ctx, cfg)
		if err != nil {
			return err
		}
		if err := s.ctrl.SetPersonalField(field.Key, strings.TrimSpace(value)); err != nil {
			return err
		}
	}

	bio, err := s.driver.TextArea(ctx, TextAreaConfig{
		Message: "Short bio",
		Default: doc.PersonalInfo.Bio,
		Help:    "A few sentences about yourself",
	})
	if err != nil {
		return err
	}
	if err := s.ctrl.SetPersonalField(steps.FieldBio, strings.TrimSpace(bio)); err != nil {
		return err
	}

	if !policy.ProfileImageEnabled(doc.ContentLevel) {
		return nil
	}
	return s.promptProfileImage(ctx, doc.ProfileImage != "")
}

func (s *Shell) promptProfileImage(ctx context.Context, hasImage bool) error {
	message := "Add a profile image?"
	if hasImage {
		message = "Replace the profile image?"
	}
	ok, err := s.driver.Confirm(ctx, ConfirmConfig{Message: message})
	if err != nil || !ok {
		return err
	}
	uri, err := s.readImage(ctx, "Profile image file")
	if err != nil || uri == "" {
		return err
	}
	if err := s.ctrl.SetProfileImage(uri); err != nil {
		return s.warn(ctx, err.Error())
	}
	return nil
}

// readImage asks for a file path and returns it as a data URI. A blank path
// or an unreadable file yields "" after telling the user.
func (s *Shell) readImage(ctx context.Context, message string) (string, error) {
	path, err := s.driver.Input(ctx, InputConfig{
		Message: message,
		Help:    "PNG, JPEG, GIF or WebP; leave blank to skip",
	})
	if err != nil {
		return "", err
	}
	path = strings.TrimSpace(path)
	if path == "" {
		return "", nil
	}
	uri, err := document.DataURIFromFile(path)
	if err != nil {
		s.logger.Debug("read image failed", "path", path, "error", err)
		return "", s.warn(ctx, fmt.Sprintf("Could not use %s: %v", path, err))
	}
	return uri, nil
}

func (s *Shell) promptTechStack(ctx context.Context) error {
	for _, category := range s.ctrl.Steps().TechStack.Categories() {
		if err := s.promptCategory(ctx, category); err != nil {
			return err
		}
	}
	return nil
}

func (s *Shell) promptCategory(ctx context.Context, category catalog.TechCategory) error {
	current := s.ctrl.Document().TechStack.Items(category.Key)
	options := append([]string(nil), category.Options...)
	for _, item := range current {
		options, _ = document.AddUnique(options, item)
	}
	defaults := indicesOf(options, current)

	picked, err := s.driver.MultiSelect(ctx, SelectConfig{
		Message:  category.Label,
		Options:  options,
		Defaults: defaults,
		PageSize: 10,
	})
	if err != nil {
		return err
	}
	want := make(map[string]bool, len(picked))
	for _, idx := range picked {
		if idx >= 0 && idx < len(options) {
			want[options[idx]] = true
		}
	}
	have := make(map[string]bool, len(current))
	for _, item := range current {
		have[item] = true
	}
	for _, option := range options {
		if want[option] != have[option] {
			if err := s.ctrl.ToggleTech(category.Key, option); err != nil {
				return err
			}
		}
	}

	extra, err := s.driver.Input(ctx, InputConfig{
		Message: fmt.Sprintf("Other %s", strings.ToLower(category.Label)),
		Help:    "Comma separated; leave blank to skip",
	})
	if err != nil {
		return err
	}
	for _, item := range splitList(extra) {
		if err := s.ctrl.AddTech(category.Key, item); err != nil {
			return err
		}
	}
	return nil
}

// List editing labels shared by the projects and narrative steps.
const (
	actionAddProject     = "Add a project"
	actionRemoveProject  = "Remove a project"
	actionAddQuestion    = "Add a custom question"
	actionRemoveQuestion = "Remove a custom question"
	actionDone           = "Done"
)

func (s *Shell) promptProjects(ctx context.Context) error {
	for {
		projects := s.ctrl.Document().Projects
		if err := s.info(ctx, projectSummary(projects)); err != nil {
			return err
		}
		actions := []string{actionAddProject}
		if len(projects) > 0 {
			actions = append(actions, actionRemoveProject)
		}
		actions = append(actions, actionDone)

		choice, err := s.choose(ctx, SelectConfig{Message: "Projects", Options: actions})
		if err != nil {
			return err
		}
		switch actions[choice] {
		case actionAddProject:
			if err := s.addProject(ctx); err != nil {
				return err
			}
		case actionRemoveProject:
			if err := s.removeProject(ctx, projects); err != nil {
				return err
			}
		case actionDone:
			return nil
		}
	}
}

func projectSummary(projects []document.Project) string {
	if len(projects) == 0 {
		return "No projects yet."
	}
	var b strings.Builder
	fmt.Fprintf(&b, "%d project(s):", len(projects))
	for _, p := range projects {
		b.WriteString("\n  - ")
		b.WriteString(p.Title)
	}
	return b.String()
}

func (s *Shell) addProject(ctx context.Context) error {
	draft, err := s.promptDraft(ctx)
	if err != nil {
		return err
	}
	project, err := s.ctrl.AddProject(draft)
	if errors.Is(err, document.ErrInvalidDraft) {
		return s.warn(ctx, err.Error())
	}
	if err != nil {
		return err
	}
	return s.info(ctx, "Added "+project.Title)
}

func (s *Shell) promptDraft(ctx context.Context) (document.Draft, error) {
	draft := document.NewDraft()
	var err error

	if draft.Title, err = s.driver.Input(ctx, InputConfig{
		Message:   "Project title",
		Validator: notBlank("Title"),
	}); err != nil {
		return draft, err
	}
	if draft.Description, err = s.driver.TextArea(ctx, TextAreaConfig{
		Message: "Description",
		Help:    "What does it do and what was your part?",
	}); err != nil {
		return draft, err
	}

	techs, err := s.driver.Input(ctx, InputConfig{
		Message: "Technologies",
		Help:    "Comma separated",
	})
	if err != nil {
		return draft, err
	}
	for _, tech := range splitList(techs) {
		draft = draft.AddTechnology(tech)
	}

	if draft.GitHubURL, err = s.driver.Input(ctx, InputConfig{Message: "GitHub URL"}); err != nil {
		return draft, err
	}
	if draft.LiveURL, err = s.driver.Input(ctx, InputConfig{Message: "Live demo URL"}); err != nil {
		return draft, err
	}
	draft.GitHubURL = strings.TrimSpace(draft.GitHubURL)
	draft.LiveURL = strings.TrimSpace(draft.LiveURL)

	draft.Highlights = nil
	for {
		h, err := s.driver.Input(ctx, InputConfig{
			Message: fmt.Sprintf("Highlight %d", len(draft.Highlights)+1),
			Help:    "Leave blank to finish",
		})
		if err != nil {
			return draft, err
		}
		if strings.TrimSpace(h) == "" {
			break
		}
		draft.Highlights = append(draft.Highlights, strings.TrimSpace(h))
	}

	uri, err := s.readImage(ctx, "Project image file")
	if err != nil {
		return draft, err
	}
	if uri != "" {
		draft = draft.WithImage(uri)
	}
	return draft, nil
}

func (s *Shell) removeProject(ctx context.Context, projects []document.Project) error {
	options := make([]string, len(projects))
	for i, p := range projects {
		options[i] = p.Title
	}
	choice, err := s.choose(ctx, SelectConfig{Message: "Remove which project?", Options: options})
	if err != nil {
		return err
	}
	s.ctrl.RemoveProject(projects[choice].ID)
	return nil
}

func (s *Shell) promptNarrative(ctx context.Context) error {
	for _, q := range s.ctrl.Questions() {
		if err := s.answer(ctx, q); err != nil {
			return err
		}
	}
	for {
		custom := s.ctrl.Document().CustomQuestions
		actions := []string{actionAddQuestion}
		if len(custom) > 0 {
			actions = append(actions, actionRemoveQuestion)
		}
		actions = append(actions, actionDone)

		choice, err := s.choose(ctx, SelectConfig{Message: "Your story", Options: actions})
		if err != nil {
			return err
		}
		switch actions[choice] {
		case actionAddQuestion:
			if err := s.addQuestion(ctx); err != nil {
				return err
			}
		case actionRemoveQuestion:
			if err := s.removeQuestion(ctx, custom); err != nil {
				return err
			}
		case actionDone:
			return nil
		}
	}
}

func (s *Shell) answer(ctx context.Context, q questions.Question) error {
	message := q.Prompt()
	if fixed, ok := q.(questions.Fixed); ok && fixed.Title != "" {
		message = fixed.Title + ": " + message
	}
	text, err := s.driver.TextArea(ctx, TextAreaConfig{
		Message: message,
		Default: s.ctrl.Document().NarrativeAnswers.Get(q.QuestionID()),
		Help:    q.Hint(),
	})
	if err != nil {
		return err
	}
	return s.ctrl.Answer(q.QuestionID(), text)
}

func (s *Shell) addQuestion(ctx context.Context) error {
	text, err := s.driver.Input(ctx, InputConfig{
		Message:   "Your question",
		Validator: notBlank("Question"),
	})
	if err != nil {
		return err
	}
	added, ok := s.ctrl.AddCustomQuestion(text, "")
	if !ok {
		return s.warn(ctx, "Questions cannot be blank.")
	}
	return s.answer(ctx, questions.Custom{
		ID:          added.ID,
		Question:    added.Question,
		Placeholder: added.Placeholder,
	})
}

func (s *Shell) removeQuestion(ctx context.Context, custom []document.CustomQuestion) error {
	options := make([]string, len(custom))
	for i, q := range custom {
		options[i] = q.Question
	}
	choice, err := s.choose(ctx, SelectConfig{Message: "Remove which question?", Options: options})
	if err != nil {
		return err
	}
	s.ctrl.RemoveCustomQuestion(custom[choice].ID)
	return nil
}

func (s *Shell) promptDesign(ctx context.Context) error {
	design := s.ctrl.Steps().Design
	doc := s.ctrl.Document()

	templates := design.Templates()
	options := make([]string, len(templates))
	def := 0
	for i, t := range templates {
		options[i] = fmt.Sprintf("%s - %s", t.Name, t.Description)
		if t.ID == doc.SelectedTemplate {
			def = i
		}
	}
	choice, err := s.choose(ctx, SelectConfig{Message: "Template", Options: options, DefaultIndex: def})
	if err != nil {
		return err
	}
	if err := s.ctrl.SelectTemplate(templates[choice].ID); err != nil {
		return err
	}

	themes := design.Themes()
	options = make([]string, len(themes))
	def = 0
	for i, t := range themes {
		options[i] = t.Name
		if t.ID == doc.SelectedTheme {
			def = i
		}
	}
	choice, err = s.choose(ctx, SelectConfig{Message: "Color theme", Options: options, DefaultIndex: def})
	if err != nil {
		return err
	}
	return s.ctrl.SelectTheme(themes[choice].ID)
}
