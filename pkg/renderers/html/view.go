package html

import (
	"sort"
	"strings"

	"github.com/goliatone/go-devme/pkg/preview"
	"github.com/goliatone/go-devme/pkg/render"
	"github.com/goliatone/go-devme/pkg/style"
)

var contactLabels = map[string]string{
	preview.ContactEmail:    "Email",
	preview.ContactPhone:    "Phone",
	preview.ContactLocation: "Location",
	preview.ContactGitHub:   "GitHub",
	preview.ContactLinkedIn: "LinkedIn",
	preview.ContactWebsite:  "Website",
}

var linkLabels = map[string]string{
	preview.LinkGitHub: "Source",
	preview.LinkLive:   "Live",
}

type contactView struct {
	Kind  string `json:"kind"`
	Label string `json:"label"`
	Value string `json:"value"`
	Href  string `json:"href"`
}

type linkView struct {
	Label string `json:"label"`
	Href  string `json:"href"`
}

type projectView struct {
	Title        string     `json:"title"`
	Description  string     `json:"description"`
	Image        string     `json:"image"`
	Links        []linkView `json:"links"`
	Highlights   []string   `json:"highlights"`
	Technologies []string   `json:"technologies"`
}

type themeView struct {
	Name    string `json:"name"`
	Variant string `json:"variant"`
	CSS     string `json:"css"`
}

type pageView struct {
	Title     string                   `json:"title"`
	Layout    string                   `json:"layout"`
	Fragment  bool                     `json:"fragment"`
	Theme     themeView                `json:"theme"`
	Header    preview.Header           `json:"header"`
	Contacts  []contactView            `json:"contacts"`
	Narrative []preview.NarrativeEntry `json:"narrative"`
	Projects  []projectView            `json:"projects"`
	TechStack []preview.TechGroup      `json:"techstack"`
}

func buildView(p preview.Preview, options render.RenderOptions, layout string) pageView {
	v := pageView{
		Layout:    layout,
		Fragment:  options.Fragment,
		Header:    p.Header(),
		Contacts:  []contactView{},
		Narrative: []preview.NarrativeEntry{},
		Projects:  []projectView{},
		TechStack: []preview.TechGroup{},
	}

	v.Title = strings.TrimSpace(options.Title)
	if v.Title == "" {
		v.Title = strings.TrimSpace(v.Header.Name)
	}
	if v.Title == "" {
		v.Title = "Resume"
	}

	cfg := options.Theme
	if cfg == nil {
		cfg = style.RendererConfigFor(p.Theme, p.Template)
	}
	v.Theme = themeView{Name: cfg.Theme, Variant: cfg.Variant, CSS: cssVars(cfg.CSSVars)}

	for _, c := range v.Header.Contacts {
		cv := contactView{Kind: c.Kind, Label: contactLabels[c.Kind], Value: c.Value}
		switch c.Kind {
		case preview.ContactEmail:
			cv.Href = "mailto:" + c.Value
		case preview.ContactGitHub, preview.ContactLinkedIn, preview.ContactWebsite:
			cv.Href = SafeURL(c.Value)
		}
		v.Contacts = append(v.Contacts, cv)
	}
	v.Header.Image = SafeImage(v.Header.Image)

	for _, s := range p.Sections {
		switch sec := s.(type) {
		case preview.Narrative:
			v.Narrative = append(v.Narrative, sec.Entries...)
		case preview.Projects:
			for _, item := range sec.Items {
				v.Projects = append(v.Projects, projectFor(item))
			}
		case preview.TechStack:
			v.TechStack = append(v.TechStack, sec.Groups...)
		}
	}
	return v
}

func projectFor(card preview.ProjectCard) projectView {
	pv := projectView{
		Title:        card.Title,
		Description:  card.Description,
		Image:        SafeImage(card.Image),
		Links:        []linkView{},
		Highlights:   card.Highlights,
		Technologies: card.Technologies,
	}
	for _, l := range card.Links {
		if href := SafeURL(l.URL); href != "" {
			pv.Links = append(pv.Links, linkView{Label: linkLabels[l.Kind], Href: href})
		}
	}
	return pv
}

// cssVars renders CSS custom properties in a stable order. Values are
// restricted to characters that cannot close the declaration.
func cssVars(vars map[string]string) string {
	keys := make([]string, 0, len(vars))
	for key := range vars {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	var b strings.Builder
	for _, key := range keys {
		value := vars[key]
		if strings.ContainsAny(key+value, ";{}<>\"'\\") {
			continue
		}
		b.WriteString(key)
		b.WriteString(": ")
		b.WriteString(value)
		b.WriteString("; ")
	}
	return strings.TrimSpace(b.String())
}
