package document

// Level selects how many personal fields and narrative questions the wizard
// exposes.
type Level string

const (
	LevelSimple   Level = "simple"
	LevelStandard Level = "standard"
	LevelDetailed Level = "detailed"
)

// Levels lists the supported content levels from least to most detailed.
func Levels() []Level {
	return []Level{LevelSimple, LevelStandard, LevelDetailed}
}

// Valid reports whether l is one of the known levels.
func (l Level) Valid() bool {
	switch l {
	case LevelSimple, LevelStandard, LevelDetailed:
		return true
	default:
		return false
	}
}

// PersonalInfo holds identity and contact details.
type PersonalInfo struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Location string `json:"location"`
	GitHub   string `json:"github"`
	LinkedIn string `json:"linkedin"`
	Website  string `json:"website"`
	Bio      string `json:"bio"`
}

// Project is a committed portfolio entry.
type Project struct {
	ID           string   `json:"id"`
	Title        string   `json:"title"`
	Description  string   `json:"description"`
	Technologies []string `json:"technologies"`
	GitHubURL    string   `json:"githubUrl"`
	LiveURL      string   `json:"liveUrl"`
	Image        string   `json:"image,omitempty"`
	Highlights   []string `json:"highlights"`
}

// CustomQuestion is a user-defined narrative prompt. IsCustom is always true
// and only kept so persisted snapshots carry the marker.
type CustomQuestion struct {
	ID          string `json:"id"`
	Question    string `json:"question"`
	Placeholder string `json:"placeholder"`
	IsCustom    bool   `json:"isCustom"`
}

// Document is the canonical resume snapshot.
type Document struct {
	PersonalInfo     PersonalInfo     `json:"personalInfo"`
	TechStack        TechStack        `json:"techStack"`
	Projects         []Project        `json:"projects"`
	NarrativeAnswers Answers          `json:"narrativeAnswers"`
	CustomQuestions  []CustomQuestion `json:"customQuestions"`
	ProfileImage     string           `json:"profileImage,omitempty"`
	SelectedTemplate string           `json:"selectedTemplate"`
	SelectedTheme    string           `json:"selectedTheme"`
	ContentLevel     Level            `json:"contentLevel"`
}

// Default returns the empty document a new session starts from. No content
// level, template or theme is chosen yet.
func Default() Document {
	return Document{
		TechStack: TechStack{
			Languages:  []string{},
			Frameworks: []string{},
			Tools:      []string{},
			Databases:  []string{},
		},
		Projects:         []Project{},
		NarrativeAnswers: NewAnswers(),
		CustomQuestions:  []CustomQuestion{},
	}
}
