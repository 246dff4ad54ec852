package wizard

import (
	"context"
	"io"
	"log/slog"
	"reflect"

	"github.com/goliatone/go-devme/pkg/catalog"
	"github.com/goliatone/go-devme/pkg/document"
	"github.com/goliatone/go-devme/pkg/questions"
	"github.com/goliatone/go-devme/pkg/steps"
)

// Sink receives every new document snapshot.
type Sink interface {
	Save(ctx context.Context, doc document.Document) error
}

// SinkFunc adapts a function into a Sink.
type SinkFunc func(ctx context.Context, doc document.Document) error

// Save calls fn.
func (fn SinkFunc) Save(ctx context.Context, doc document.Document) error {
	return fn(ctx, doc)
}

// Option configures a Controller.
type Option func(*Controller)

// WithDocument seeds the controller with a loaded snapshot.
func WithDocument(doc document.Document) Option {
	return func(c *Controller) {
		c.doc = doc.Clone()
	}
}

// WithSink registers where snapshots are written after each mutation.
func WithSink(sink Sink) Option {
	return func(c *Controller) {
		c.sink = sink
	}
}

// WithLogger sets the controller logger.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Controller) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// WithSteps overrides the step set, mostly useful for deterministic ids.
func WithSteps(set *steps.Set) Option {
	return func(c *Controller) {
		if set != nil {
			c.steps = set
		}
	}
}

// WithContext sets the context passed to the sink.
func WithContext(ctx context.Context) Option {
	return func(c *Controller) {
		if ctx != nil {
			c.ctx = ctx
		}
	}
}

// Controller owns the session's document and navigation state. Every edit
// replaces the whole snapshot, marks the edited step completed when its
// predicate holds and hands the snapshot to the sink. Sink failures are
// logged and never block the next edit.
type Controller struct {
	ctx     context.Context
	steps   *steps.Set
	machine *Machine
	doc     document.Document
	sink    Sink
	logger  *slog.Logger
}

// NewController builds a controller over c, starting from the default
// document unless WithDocument is given.
func NewController(c *catalog.Catalog, options ...Option) *Controller {
	ctrl := &Controller{
		ctx:     context.Background(),
		machine: NewMachine(),
		doc:     document.Default(),
		logger:  slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(ctrl)
	}
	if ctrl.steps == nil {
		ctrl.steps = steps.New(c)
	}
	return ctrl
}

// Document returns a copy of the current snapshot.
func (c *Controller) Document() document.Document {
	return c.doc.Clone()
}

// Steps exposes the step transformers for read-only helpers such as field
// lists and catalog options.
func (c *Controller) Steps() *steps.Set {
	return c.steps
}

// CurrentStep returns the active step.
func (c *Controller) CurrentStep() Step { return c.machine.Current() }

// CompletedSteps returns completed steps in ascending order.
func (c *Controller) CompletedSteps() []Step { return c.machine.Completed() }

// IsCompleted reports whether s is completed.
func (c *Controller) IsCompleted(s Step) bool { return c.machine.IsCompleted(s) }

// CanAdvance reports whether Next would succeed.
func (c *Controller) CanAdvance() bool { return c.machine.CanAdvance(c.doc) }

// InPreview reports whether preview mode is on.
func (c *Controller) InPreview() bool { return c.machine.InPreview() }

// Next advances when the current step is satisfied.
func (c *Controller) Next() bool {
	from := c.machine.Current()
	ok := c.machine.Next(c.doc)
	c.logTransition("next", from, ok)
	return ok
}

// Previous goes back one step.
func (c *Controller) Previous() bool {
	from := c.machine.Current()
	ok := c.machine.Previous()
	c.logTransition("previous", from, ok)
	return ok
}

// JumpTo moves directly to target once a content level is chosen.
func (c *Controller) JumpTo(target Step) bool {
	from := c.machine.Current()
	ok := c.machine.JumpTo(c.doc, target)
	c.logTransition("jump", from, ok)
	return ok
}

// EnterPreview turns on preview mode from a satisfied design step.
func (c *Controller) EnterPreview() bool {
	ok := c.machine.EnterPreview(c.doc)
	c.logTransition("enter_preview", c.machine.Current(), ok)
	return ok
}

// ExitPreview returns to editing at the same step.
func (c *Controller) ExitPreview() {
	c.machine.ExitPreview()
	c.logTransition("exit_preview", c.machine.Current(), true)
}

// SelectContentLevel is the step 0 callback.
func (c *Controller) SelectContentLevel(level document.Level) error {
	next, err := c.steps.Level.Select(c.doc, level)
	if err != nil {
		return err
	}
	c.apply(StepContentLevel, next)
	return nil
}

// UpdatePersonalInfo replaces the personal info slice.
func (c *Controller) UpdatePersonalInfo(info document.PersonalInfo) {
	c.apply(StepPersonalInfo, c.steps.Personal.Apply(c.doc, info))
}

// SetPersonalField updates one personal info field.
func (c *Controller) SetPersonalField(key, value string) error {
	next, err := c.steps.Personal.Set(c.doc, key, value)
	if err != nil {
		return err
	}
	c.apply(StepPersonalInfo, next)
	return nil
}

// SetProfileImage stores or clears the profile image.
func (c *Controller) SetProfileImage(uri string) error {
	next, err := c.steps.Personal.SetProfileImage(c.doc, uri)
	if err != nil {
		return err
	}
	c.apply(StepPersonalInfo, next)
	return nil
}

// ToggleTech flips a suggested tech option.
func (c *Controller) ToggleTech(category document.Category, item string) error {
	next, err := c.steps.TechStack.Toggle(c.doc, category, item)
	if err != nil {
		return err
	}
	c.apply(StepTechStack, next)
	return nil
}

// AddTech adds a custom tech entry.
func (c *Controller) AddTech(category document.Category, item string) error {
	next, err := c.steps.TechStack.Add(c.doc, category, item)
	if err != nil {
		return err
	}
	c.apply(StepTechStack, next)
	return nil
}

// RemoveTech removes a tech entry.
func (c *Controller) RemoveTech(category document.Category, item string) error {
	next, err := c.steps.TechStack.Remove(c.doc, category, item)
	if err != nil {
		return err
	}
	c.apply(StepTechStack, next)
	return nil
}

// AddProject commits a draft.
func (c *Controller) AddProject(draft document.Draft) (document.Project, error) {
	next, project, err := c.steps.Projects.Add(c.doc, draft)
	if err != nil {
		return document.Project{}, err
	}
	c.apply(StepProjects, next)
	return project, nil
}

// RemoveProject deletes a project by id.
func (c *Controller) RemoveProject(id string) bool {
	next, ok := c.steps.Projects.Remove(c.doc, id)
	if ok {
		c.apply(StepProjects, next)
	}
	return ok
}

// Questions returns the narrative questions for the current level.
func (c *Controller) Questions() []questions.Question {
	return c.steps.Narrative.Questions(c.doc, c.doc.ContentLevel)
}

// Answer records a narrative answer.
func (c *Controller) Answer(id, text string) error {
	next, err := c.steps.Narrative.Answer(c.doc, id, text)
	if err != nil {
		return err
	}
	c.apply(StepNarrative, next)
	return nil
}

// AddCustomQuestion appends a custom question.
func (c *Controller) AddCustomQuestion(question, placeholder string) (document.CustomQuestion, bool) {
	next, cq, ok := c.steps.Narrative.AddQuestion(c.doc, question, placeholder)
	if ok {
		c.apply(StepNarrative, next)
	}
	return cq, ok
}

// RemoveCustomQuestion deletes a custom question and its answer.
func (c *Controller) RemoveCustomQuestion(id string) bool {
	next, ok := c.steps.Narrative.RemoveQuestion(c.doc, id)
	if ok {
		c.apply(StepNarrative, next)
	}
	return ok
}

// SelectTemplate records the template choice.
func (c *Controller) SelectTemplate(id string) error {
	next, err := c.steps.Design.SelectTemplate(c.doc, id)
	if err != nil {
		return err
	}
	c.apply(StepDesign, next)
	return nil
}

// SelectTheme records the theme choice.
func (c *Controller) SelectTheme(id string) error {
	next, err := c.steps.Design.SelectTheme(c.doc, id)
	if err != nil {
		return err
	}
	c.apply(StepDesign, next)
	return nil
}

func (c *Controller) apply(step Step, next document.Document) {
	if reflect.DeepEqual(c.doc, next) {
		return
	}
	c.doc = next
	if step.CanAdvance(next) {
		c.machine.MarkCompleted(step)
	}
	if c.sink == nil {
		return
	}
	if err := c.sink.Save(c.ctx, next.Clone()); err != nil {
		c.logger.Warn("persist document failed", "step", step.String(), "error", err)
	}
}

func (c *Controller) logTransition(action string, from Step, ok bool) {
	c.logger.Debug("wizard transition",
		"action", action,
		"from", from.String(),
		"to", c.machine.Current().String(),
		"accepted", ok,
		"preview", c.machine.InPreview(),
	)
}
