package document

// Operations below never mutate d. Collections that are not touched stay
// shared between the old and new snapshot; every operation that changes a
// collection writes to a fresh copy.

// WithPersonalInfo replaces the personal info slice.
func (d Document) WithPersonalInfo(info PersonalInfo) Document {
	d.PersonalInfo = info
	return d
}

// WithTechStack replaces the tech stack slice.
func (d Document) WithTechStack(stack TechStack) Document {
	d.TechStack = stack.Clone()
	return d
}

// WithProjects replaces the project list.
func (d Document) WithProjects(projects []Project) Document {
	d.Projects = cloneProjects(projects)
	return d
}

// AppendProject adds p at the end of the project list.
func (d Document) AppendProject(p Project) Document {
	out := make([]Project, 0, len(d.Projects)+1)
	out = append(out, d.Projects...)
	d.Projects = append(out, p.Clone())
	return d
}

// RemoveProject drops the project with the given id. The boolean reports
// whether anything was removed; stale ids return d unchanged.
func (d Document) RemoveProject(id string) (Document, bool) {
	idx := d.ProjectIndex(id)
	if idx < 0 {
		return d, false
	}
	out := make([]Project, 0, len(d.Projects)-1)
	out = append(out, d.Projects[:idx]...)
	d.Projects = append(out, d.Projects[idx+1:]...)
	return d, true
}

// ProjectIndex returns the position of the project with id, or -1.
func (d Document) ProjectIndex(id string) int {
	for i, p := range d.Projects {
		if p.ID == id {
			return i
		}
	}
	return -1
}

// WithAnswer sets the answer for a question id.
func (d Document) WithAnswer(id, text string) Document {
	answers := d.NarrativeAnswers.Clone()
	if answers == nil {
		answers = NewAnswers()
	}
	answers[id] = text
	d.NarrativeAnswers = answers
	return d
}

// WithoutAnswer deletes the answer entry for id.
func (d Document) WithoutAnswer(id string) Document {
	if _, ok := d.NarrativeAnswers[id]; !ok {
		return d
	}
	answers := d.NarrativeAnswers.Clone()
	delete(answers, id)
	d.NarrativeAnswers = answers
	return d
}

// WithCustomQuestions replaces the custom question list.
func (d Document) WithCustomQuestions(questions []CustomQuestion) Document {
	d.CustomQuestions = append([]CustomQuestion{}, questions...)
	return d
}

// CustomQuestion returns the custom question with id.
func (d Document) CustomQuestion(id string) (CustomQuestion, bool) {
	for _, q := range d.CustomQuestions {
		if q.ID == id {
			return q, true
		}
	}
	return CustomQuestion{}, false
}

// HasQuestion reports whether id is a fixed question or an existing custom
// question.
func (d Document) HasQuestion(id string) bool {
	if IsFixedQuestionID(id) {
		return true
	}
	_, ok := d.CustomQuestion(id)
	return ok
}

// WithProfileImage sets or clears the profile image data URI.
func (d Document) WithProfileImage(uri string) Document {
	d.ProfileImage = uri
	return d
}

// WithTemplate sets the selected template id.
func (d Document) WithTemplate(id string) Document {
	d.SelectedTemplate = id
	return d
}

// WithTheme sets the selected theme id.
func (d Document) WithTheme(id string) Document {
	d.SelectedTheme = id
	return d
}

// WithContentLevel sets the content level. Lowering the level keeps every
// stored value; only visibility changes.
func (d Document) WithContentLevel(level Level) Document {
	d.ContentLevel = level
	return d
}

// Clone returns a deep copy of d.
func (d Document) Clone() Document {
	d.TechStack = d.TechStack.Clone()
	d.Projects = cloneProjects(d.Projects)
	d.NarrativeAnswers = d.NarrativeAnswers.Clone()
	if d.CustomQuestions != nil {
		d.CustomQuestions = append([]CustomQuestion{}, d.CustomQuestions...)
	}
	return d
}

// Clone deep copies the project.
func (p Project) Clone() Project {
	p.Technologies = orEmpty(cloneStrings(p.Technologies))
	p.Highlights = orEmpty(cloneStrings(p.Highlights))
	return p
}

// Normalize repairs a snapshot read from storage: nil collections become
// empty, every fixed answer key exists, tech items and project technologies
// are deduplicated, custom questions get their marker back and answers stored
// under ids that no longer exist are dropped.
func (d Document) Normalize() Document {
	d = d.Clone()

	d.TechStack.Languages = orEmpty(Dedupe(d.TechStack.Languages))
	d.TechStack.Frameworks = orEmpty(Dedupe(d.TechStack.Frameworks))
	d.TechStack.Tools = orEmpty(Dedupe(d.TechStack.Tools))
	d.TechStack.Databases = orEmpty(Dedupe(d.TechStack.Databases))

	if d.Projects == nil {
		d.Projects = []Project{}
	}
	seen := make(map[string]struct{}, len(d.Projects))
	projects := d.Projects[:0]
	for _, p := range d.Projects {
		if _, dup := seen[p.ID]; dup {
			continue
		}
		seen[p.ID] = struct{}{}
		p.Technologies = orEmpty(Dedupe(p.Technologies))
		p.Highlights = orEmpty(p.Highlights)
		projects = append(projects, p)
	}
	d.Projects = projects

	if d.CustomQuestions == nil {
		d.CustomQuestions = []CustomQuestion{}
	}
	for i := range d.CustomQuestions {
		d.CustomQuestions[i].IsCustom = true
	}

	answers := NewAnswers()
	for id, text := range d.NarrativeAnswers {
		if d.HasQuestion(id) {
			answers[id] = text
		}
	}
	d.NarrativeAnswers = answers

	if d.ContentLevel != "" && !d.ContentLevel.Valid() {
		d.ContentLevel = ""
	}
	return d
}

func cloneProjects(in []Project) []Project {
	if in == nil {
		return nil
	}
	out := make([]Project, len(in))
	for i, p := range in {
		out[i] = p.Clone()
	}
	return out
}

func orEmpty(in []string) []string {
	if in == nil {
		return []string{}
	}
	return in
}
