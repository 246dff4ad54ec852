// Package text renders a composed preview as plain text for terminals.
package text

import (
	"context"
	"fmt"
	"strings"

	"github.com/goliatone/go-devme/pkg/preview"
	"github.com/goliatone/go-devme/pkg/render"
)

// Name is the registry name of this renderer.
const Name = "text"

const defaultWidth = 72

// Option configures the renderer.
type Option func(*Renderer)

// WithWidth sets the rule width used between sections.
func WithWidth(width int) Option {
	return func(r *Renderer) {
		if width > 0 {
			r.width = width
		}
	}
}

// Renderer writes a compact plain-text resume.
type Renderer struct {
	width int
}

var _ render.Renderer = (*Renderer)(nil)

// New constructs the renderer.
func New(options ...Option) *Renderer {
	r := &Renderer{width: defaultWidth}
	for _, opt := range options {
		if opt != nil {
			opt(r)
		}
	}
	return r
}

func (r *Renderer) Name() string        { return Name }
func (r *Renderer) ContentType() string { return "text/plain; charset=utf-8" }

// Render writes sections in preview order.
func (r *Renderer) Render(_ context.Context, p preview.Preview, options render.RenderOptions) ([]byte, error) {
	var b strings.Builder
	rule := strings.Repeat("-", r.width)

	if title := strings.TrimSpace(options.Title); title != "" {
		fmt.Fprintf(&b, "%s\n%s\n", title, strings.Repeat("=", r.width))
	}
	fmt.Fprintf(&b, "Template: %s  Theme: %s\n", p.Template.Name, p.Theme.Name)

	for _, s := range p.Sections {
		b.WriteString(rule)
		b.WriteString("\n")
		switch sec := s.(type) {
		case preview.Header:
			writeHeader(&b, sec)
		case preview.Narrative:
			writeNarrative(&b, sec)
		case preview.Projects:
			writeProjects(&b, sec)
		case preview.TechStack:
			writeTechStack(&b, sec)
		}
	}
	return []byte(b.String()), nil
}

func writeHeader(b *strings.Builder, h preview.Header) {
	name := strings.TrimSpace(h.Name)
	if name == "" {
		name = "(no name)"
	}
	fmt.Fprintf(b, "%s\n", strings.ToUpper(name))
	if bio := strings.TrimSpace(h.Bio); bio != "" {
		fmt.Fprintf(b, "%s\n", bio)
	}
	if h.Image != "" {
		b.WriteString("[profile image]\n")
	}
	for _, c := range h.Contacts {
		fmt.Fprintf(b, "  %-9s %s\n", c.Kind+":", c.Value)
	}
}

func writeNarrative(b *strings.Builder, n preview.Narrative) {
	b.WriteString("MY STORY\n")
	for _, e := range n.Entries {
		marker := ""
		if e.Custom {
			marker = " *"
		}
		fmt.Fprintf(b, "\n%s%s\n  %s\n", e.Title, marker, strings.TrimSpace(e.Answer))
	}
}

func writeProjects(b *strings.Builder, p preview.Projects) {
	b.WriteString("PROJECTS\n")
	for _, item := range p.Items {
		fmt.Fprintf(b, "\n%s\n", item.Title)
		if d := strings.TrimSpace(item.Description); d != "" {
			fmt.Fprintf(b, "  %s\n", d)
		}
		for _, h := range item.Highlights {
			fmt.Fprintf(b, "  - %s\n", h)
		}
		if len(item.Technologies) > 0 {
			fmt.Fprintf(b, "  [%s]\n", strings.Join(item.Technologies, ", "))
		}
		for _, l := range item.Links {
			fmt.Fprintf(b, "  %s: %s\n", l.Kind, l.URL)
		}
	}
}

func writeTechStack(b *strings.Builder, ts preview.TechStack) {
	b.WriteString("TECH STACK\n")
	for _, g := range ts.Groups {
		fmt.Fprintf(b, "  %-11s %s\n", g.Label+":", strings.Join(g.Items, ", "))
	}
}
