// Package tui drives the resume wizard from a terminal. The Shell walks the
// wizard controller's steps with survey prompts, and previews or exports the
// composed resume through the render registry.
package tui

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/goliatone/go-devme/pkg/preview"
	"github.com/goliatone/go-devme/pkg/render"
	htmlrenderer "github.com/goliatone/go-devme/pkg/renderers/html"
	textrenderer "github.com/goliatone/go-devme/pkg/renderers/text"
	"github.com/goliatone/go-devme/pkg/style"
	"github.com/goliatone/go-devme/pkg/wizard"
)

// DefaultExportPath is offered by the export action.
const DefaultExportPath = "resume.html"

// Shell runs an interactive wizard session.
type Shell struct {
	ctrl          *wizard.Controller
	composer      *preview.Composer
	driver        PromptDriver
	renderers     *render.Registry
	selector      *style.Selector
	previewFormat string
	exportFormat  string
	exportPath    string
	theme         Theme
	out           io.Writer
	logger        *slog.Logger
}

// New constructs a Shell bound to ctrl. Previews are composed with composer.
func New(ctrl *wizard.Controller, composer *preview.Composer, options ...Option) (*Shell, error) {
	if ctrl == nil {
		return nil, errors.New("tui: controller is required")
	}
	if composer == nil {
		return nil, errors.New("tui: composer is required")
	}
	s := &Shell{
		ctrl:          ctrl,
		composer:      composer,
		previewFormat: textrenderer.Name,
		exportFormat:  htmlrenderer.Name,
		exportPath:    DefaultExportPath,
		theme:         DefaultTheme,
		out:           os.Stdout,
		logger:        slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(s)
	}
	if s.driver == nil {
		s.driver = NewSurveyDriver(s.out)
	}
	if s.renderers == nil {
		s.renderers = render.NewRegistry()
		s.renderers.MustRegister(textrenderer.New())
	}
	return s, nil
}

// Run loops until the user quits. ErrAborted is returned when the user
// interrupts a prompt.
func (s *Shell) Run(ctx context.Context) error {
	if s == nil {
		return errors.New("tui: shell is nil")
	}
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		var (
			done bool
			err  error
		)
		if s.ctrl.InPreview() {
			done, err = s.runPreview(ctx)
		} else {
			done, err = s.runStep(ctx)
		}
		if err != nil {
			return err
		}
		if done {
			return nil
		}
	}
}

func (s *Shell) runStep(ctx context.Context) (bool, error) {
	step := s.ctrl.CurrentStep()
	if err := s.showProgress(ctx); err != nil {
		return false, err
	}
	if err := s.promptStep(ctx, step); err != nil {
		return false, err
	}
	return s.navigate(ctx, step)
}

func (s *Shell) showProgress(ctx context.Context) error {
	current := s.ctrl.CurrentStep()
	var b strings.Builder
	for i, step := range wizard.Steps() {
		if i > 0 {
			b.WriteString("  ")
		}
		b.WriteString(s.stepLabel(step, current))
	}
	return s.driver.Info(ctx, b.String())
}

func (s *Shell) stepLabel(step, current wizard.Step) string {
	label := fmt.Sprintf("%d. %s", int(step)+1, step.Title())
	if s.ctrl.IsCompleted(step) && s.theme.DoneMark != "" {
		label += " " + s.theme.DoneMark
	}
	if step == current {
		label = s.theme.CurrentMark + label
	}
	return label
}

func (s *Shell) promptStep(ctx context.Context, step wizard.Step) error {
	switch step {
	case wizard.StepContentLevel:
		return s.promptLevel(ctx)
	case wizard.StepPersonalInfo:
		return s.promptPersonalInfo(ctx)
	case wizard.StepTechStack:
		return s.promptTechStack(ctx)
	case wizard.StepProjects:
		return s.promptProjects(ctx)
	case wizard.StepNarrative:
		return s.promptNarrative(ctx)
	case wizard.StepDesign:
		return s.promptDesign(ctx)
	default:
		return fmt.Errorf("tui: unknown step %d", step)
	}
}

// Navigation menu labels.
const (
	actionNext     = "Next step"
	actionPreview  = "Preview resume"
	actionPrevious = "Previous step"
	actionJump     = "Jump to step"
	actionEdit     = "Edit this step again"
	actionQuit     = "Save and quit"
)

func (s *Shell) navigate(ctx context.Context, step wizard.Step) (bool, error) {
	var actions []string
	if step < wizard.LastStep {
		actions = append(actions, actionNext)
	} else {
		actions = append(actions, actionPreview)
	}
	if step > wizard.FirstStep {
		actions = append(actions, actionPrevious)
	}
	actions = append(actions, actionJump, actionEdit, actionQuit)

	for {
		choice, err := s.choose(ctx, SelectConfig{Message: "What next?", Options: actions})
		if err != nil {
			return false, err
		}
		switch actions[choice] {
		case actionNext:
			if s.ctrl.Next() {
				return false, nil
			}
			if err := s.warn(ctx, "Complete this step before moving on."); err != nil {
				return false, err
			}
		case actionPreview:
			if s.ctrl.EnterPreview() {
				return false, nil
			}
			if err := s.warn(ctx, "Pick a template and theme before previewing."); err != nil {
				return false, err
			}
		case actionPrevious:
			s.ctrl.Previous()
			return false, nil
		case actionJump:
			moved, err := s.jump(ctx)
			if err != nil {
				return false, err
			}
			if moved {
				return false, nil
			}
		case actionEdit:
			return false, nil
		case actionQuit:
			return true, nil
		}
	}
}

func (s *Shell) jump(ctx context.Context) (bool, error) {
	all := wizard.Steps()
	current := s.ctrl.CurrentStep()
	options := make([]string, len(all))
	for i, step := range all {
		options[i] = s.stepLabel(step, current)
	}
	choice, err := s.choose(ctx, SelectConfig{
		Message:      "Jump to which step?",
		Options:      options,
		DefaultIndex: int(current),
	})
	if err != nil {
		return false, err
	}
	if s.ctrl.JumpTo(all[choice]) {
		return true, nil
	}
	return false, s.warn(ctx, "Choose a content level first.")
}

// Preview menu labels.
const (
	actionBack   = "Back to editing"
	actionExport = "Export HTML"
)

func (s *Shell) runPreview(ctx context.Context) (bool, error) {
	out, err := s.render(ctx, s.previewFormat)
	if err != nil {
		return false, err
	}
	if err := s.driver.Info(ctx, string(out)); err != nil {
		return false, err
	}

	actions := []string{actionBack, actionExport, actionQuit}
	for {
		choice, err := s.choose(ctx, SelectConfig{Message: "Preview", Options: actions})
		if err != nil {
			return false, err
		}
		switch actions[choice] {
		case actionBack:
			s.ctrl.ExitPreview()
			return false, nil
		case actionExport:
			if err := s.export(ctx); err != nil {
				return false, err
			}
		case actionQuit:
			return true, nil
		}
	}
}

func (s *Shell) export(ctx context.Context) error {
	path, err := s.driver.Input(ctx, InputConfig{
		Message:   "Write the resume to",
		Default:   s.exportPath,
		Validator: notBlank("a file path"),
	})
	if err != nil {
		return err
	}
	path = strings.TrimSpace(path)
	out, err := s.render(ctx, s.exportFormat)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, out, 0o644); err != nil {
		s.logger.Warn("export resume failed", "path", path, "error", err)
		return s.warn(ctx, fmt.Sprintf("Could not write %s: %v", path, err))
	}
	s.exportPath = path
	s.logger.Info("resume exported", "path", path, "format", s.exportFormat)
	return s.info(ctx, "Saved "+path)
}

func (s *Shell) render(ctx context.Context, format string) ([]byte, error) {
	if !s.renderers.Has(format) {
		return nil, fmt.Errorf("%w: %q", ErrNoRenderer, format)
	}
	doc := s.ctrl.Document()
	p := s.composer.Compose(doc)
	options := render.RenderOptions{Title: resumeTitle(p)}
	if s.selector != nil {
		cfg, err := s.selector.RendererConfig(p.Theme.ID, p.Template.ID)
		if err != nil {
			return nil, fmt.Errorf("tui: resolve theme: %w", err)
		}
		options.Theme = cfg
	}
	return s.renderers.Render(ctx, format, p, options)
}

func resumeTitle(p preview.Preview) string {
	name := strings.TrimSpace(p.Header().Name)
	if name == "" {
		return "Resume"
	}
	return name + " - Resume"
}

func (s *Shell) choose(ctx context.Context, cfg SelectConfig) (int, error) {
	idx, err := s.driver.Select(ctx, cfg)
	if err != nil {
		return 0, err
	}
	if idx < 0 || idx >= len(cfg.Options) {
		return 0, fmt.Errorf("%w: %d", ErrInvalidChoice, idx)
	}
	return idx, nil
}

func (s *Shell) info(ctx context.Context, msg string) error {
	return s.driver.Info(ctx, s.theme.InfoPrefix+msg)
}

func (s *Shell) warn(ctx context.Context, msg string) error {
	return s.driver.Info(ctx, s.theme.ErrorPrefix+msg)
}

func notBlank(what string) func(string) error {
	return func(v string) error {
		if strings.TrimSpace(v) == "" {
			return fmt.Errorf("%s is required", what)
		}
		return nil
	}
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
