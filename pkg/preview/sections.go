package preview

import (
	"github.com/goliatone/go-devme/pkg/catalog"
	"github.com/goliatone/go-devme/pkg/document"
)

// Kind names a section variant.
type Kind string

const (
	KindHeader    Kind = "header"
	KindNarrative Kind = "narrative"
	KindProjects  Kind = "projects"
	KindTechStack Kind = "techstack"
)

// Section is one renderable block. The set of implementations is closed.
type Section interface {
	Kind() Kind
	section()
}

// Contact kinds, in display order.
const (
	ContactEmail    = "email"
	ContactPhone    = "phone"
	ContactLocation = "location"
	ContactGitHub   = "github"
	ContactLinkedIn = "linkedin"
	ContactWebsite  = "website"
)

// Contact is one non-empty contact line.
type Contact struct {
	Kind  string `json:"kind"`
	Value string `json:"value"`
}

// Header carries the identity block.
type Header struct {
	Name     string    `json:"name"`
	Bio      string    `json:"bio"`
	Image    string    `json:"image,omitempty"`
	Contacts []Contact `json:"contacts"`
}

// NarrativeEntry is one answered question.
type NarrativeEntry struct {
	ID       string `json:"id"`
	Title    string `json:"title"`
	Question string `json:"question"`
	Answer   string `json:"answer"`
	Custom   bool   `json:"custom"`
}

// Narrative lists answered questions, fixed first then custom.
type Narrative struct {
	Entries []NarrativeEntry `json:"entries"`
}

// Link kinds.
const (
	LinkGitHub = "github"
	LinkLive   = "live"
)

// Link is a project link that was set.
type Link struct {
	Kind string `json:"kind"`
	URL  string `json:"url"`
}

// ProjectCard is a project prepared for display.
type ProjectCard struct {
	ID           string   `json:"id"`
	Title        string   `json:"title"`
	Description  string   `json:"description"`
	Image        string   `json:"image,omitempty"`
	Links        []Link   `json:"links"`
	Highlights   []string `json:"highlights"`
	Technologies []string `json:"technologies"`
}

// Projects lists every project in document order.
type Projects struct {
	Items []ProjectCard `json:"items"`
}

// TechGroup is one non-empty tech stack category.
type TechGroup struct {
	Category document.Category `json:"category"`
	Label    string            `json:"label"`
	Items    []string          `json:"items"`
}

// TechStack lists non-empty categories in display order.
type TechStack struct {
	Groups []TechGroup `json:"groups"`
}

func (Header) Kind() Kind    { return KindHeader }
func (Narrative) Kind() Kind { return KindNarrative }
func (Projects) Kind() Kind  { return KindProjects }
func (TechStack) Kind() Kind { return KindTechStack }

func (Header) section()    {}
func (Narrative) section() {}
func (Projects) section()  {}
func (TechStack) section() {}

// Preview is the composed, render-ready resume.
type Preview struct {
	Template catalog.Template
	Theme    catalog.Theme
	Sections []Section
}

// Section returns the first section of kind k.
func (p Preview) Section(k Kind) (Section, bool) {
	for _, s := range p.Sections {
		if s.Kind() == k {
			return s, true
		}
	}
	return nil, false
}

// Header returns the identity block.
func (p Preview) Header() Header {
	if s, ok := p.Section(KindHeader); ok {
		return s.(Header)
	}
	return Header{}
}
