// Package preview turns a document into ordered, content-filtered sections.
// Inclusion depends only on whether a part has content; the content level
// plays no role here.
package preview

import (
	"strings"

	"github.com/goliatone/go-devme/pkg/catalog"
	"github.com/goliatone/go-devme/pkg/document"
	"github.com/goliatone/go-devme/pkg/style"
)

// Composer builds previews against one catalog.
type Composer struct {
	catalog  *catalog.Catalog
	selector *style.Selector
}

// New returns a composer using selector for template and theme fallbacks.
func New(c *catalog.Catalog, selector *style.Selector) *Composer {
	return &Composer{catalog: c, selector: selector}
}

// Compose builds the preview for doc.
func (c *Composer) Compose(doc document.Document) Preview {
	out := Preview{
		Template: c.selector.ResolveTemplate(doc.SelectedTemplate),
		Theme:    c.selector.ResolveTheme(doc.SelectedTheme),
	}
	out.Sections = append(out.Sections, composeHeader(doc))
	if n := c.composeNarrative(doc); len(n.Entries) > 0 {
		out.Sections = append(out.Sections, n)
	}
	if len(doc.Projects) > 0 {
		out.Sections = append(out.Sections, composeProjects(doc.Projects))
	}
	if ts := c.composeTechStack(doc.TechStack); len(ts.Groups) > 0 {
		out.Sections = append(out.Sections, ts)
	}
	return out
}

func composeHeader(doc document.Document) Header {
	info := doc.PersonalInfo
	h := Header{
		Name:     info.Name,
		Bio:      info.Bio,
		Image:    doc.ProfileImage,
		Contacts: []Contact{},
	}
	for _, c := range []Contact{
		{Kind: ContactEmail, Value: info.Email},
		{Kind: ContactPhone, Value: info.Phone},
		{Kind: ContactLocation, Value: info.Location},
		{Kind: ContactGitHub, Value: info.GitHub},
		{Kind: ContactLinkedIn, Value: info.LinkedIn},
		{Kind: ContactWebsite, Value: info.Website},
	} {
		if strings.TrimSpace(c.Value) != "" {
			h.Contacts = append(h.Contacts, c)
		}
	}
	return h
}

func (c *Composer) composeNarrative(doc document.Document) Narrative {
	n := Narrative{Entries: []NarrativeEntry{}}
	for _, id := range document.FixedQuestionIDs() {
		answer := doc.NarrativeAnswers.Get(id)
		if strings.TrimSpace(answer) == "" {
			continue
		}
		entry := NarrativeEntry{ID: id, Title: id, Answer: answer}
		if q, ok := c.catalog.Question(id); ok {
			entry.Title = q.Title
			entry.Question = q.Question
		}
		n.Entries = append(n.Entries, entry)
	}
	for _, q := range doc.CustomQuestions {
		answer := doc.NarrativeAnswers.Get(q.ID)
		if strings.TrimSpace(answer) == "" {
			continue
		}
		n.Entries = append(n.Entries, NarrativeEntry{
			ID:       q.ID,
			Title:    q.Question,
			Question: q.Question,
			Answer:   answer,
			Custom:   true,
		})
	}
	return n
}

func composeProjects(projects []document.Project) Projects {
	out := Projects{Items: make([]ProjectCard, 0, len(projects))}
	for _, p := range projects {
		card := ProjectCard{
			ID:           p.ID,
			Title:        p.Title,
			Description:  p.Description,
			Image:        p.Image,
			Links:        []Link{},
			Highlights:   []string{},
			Technologies: append([]string{}, p.Technologies...),
		}
		if strings.TrimSpace(p.GitHubURL) != "" {
			card.Links = append(card.Links, Link{Kind: LinkGitHub, URL: p.GitHubURL})
		}
		if strings.TrimSpace(p.LiveURL) != "" {
			card.Links = append(card.Links, Link{Kind: LinkLive, URL: p.LiveURL})
		}
		for _, h := range p.Highlights {
			if strings.TrimSpace(h) != "" {
				card.Highlights = append(card.Highlights, h)
			}
		}
		out.Items = append(out.Items, card)
	}
	return out
}

func (c *Composer) composeTechStack(stack document.TechStack) TechStack {
	ts := TechStack{Groups: []TechGroup{}}
	for _, cat := range document.Categories() {
		items := stack.Items(cat)
		if len(items) == 0 {
			continue
		}
		label := string(cat)
		if tc, ok := c.catalog.Category(cat); ok && tc.Label != "" {
			label = tc.Label
		}
		ts.Groups = append(ts.Groups, TechGroup{
			Category: cat,
			Label:    label,
			Items:    append([]string{}, items...),
		})
	}
	return ts
}
