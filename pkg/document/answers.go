package document

import "strings"

// Fixed narrative question ids, in master order.
const (
	QuestionHardestProblem      = "hardestProblem"
	QuestionProudestAchievement = "proudestAchievement"
	QuestionLearningExperience  = "learningExperience"
	QuestionFutureGoals         = "futureGoals"
	QuestionWorkStyle           = "workStyle"
	QuestionMotivation          = "motivation"
)

// CustomQuestionPrefix namespaces custom question ids away from the fixed ids,
// which never contain an underscore.
const CustomQuestionPrefix = "custom_"

var fixedQuestionIDs = []string{
	QuestionHardestProblem,
	QuestionProudestAchievement,
	QuestionLearningExperience,
	QuestionFutureGoals,
	QuestionWorkStyle,
	QuestionMotivation,
}

// FixedQuestionIDs returns the six fixed ids in master order.
func FixedQuestionIDs() []string {
	return append([]string(nil), fixedQuestionIDs...)
}

// IsFixedQuestionID reports whether id names one of the fixed questions.
func IsFixedQuestionID(id string) bool {
	for _, fixed := range fixedQuestionIDs {
		if fixed == id {
			return true
		}
	}
	return false
}

// IsCustomQuestionID reports whether id carries the custom namespace.
func IsCustomQuestionID(id string) bool {
	return strings.HasPrefix(id, CustomQuestionPrefix)
}

// Answers maps question ids to free-text answers.
type Answers map[string]string

// NewAnswers returns a map with every fixed question initialised to "".
func NewAnswers() Answers {
	out := make(Answers, len(fixedQuestionIDs))
	for _, id := range fixedQuestionIDs {
		out[id] = ""
	}
	return out
}

// Get returns the answer for id, or "" when missing.
func (a Answers) Get(id string) string {
	if a == nil {
		return ""
	}
	return a[id]
}

// Clone copies the map.
func (a Answers) Clone() Answers {
	if a == nil {
		return nil
	}
	out := make(Answers, len(a))
	for k, v := range a {
		out[k] = v
	}
	return out
}

func (a Answers) HardestProblem() string      { return a.Get(QuestionHardestProblem) }
func (a Answers) ProudestAchievement() string { return a.Get(QuestionProudestAchievement) }
func (a Answers) LearningExperience() string  { return a.Get(QuestionLearningExperience) }
func (a Answers) FutureGoals() string         { return a.Get(QuestionFutureGoals) }
func (a Answers) WorkStyle() string           { return a.Get(QuestionWorkStyle) }
func (a Answers) Motivation() string          { return a.Get(QuestionMotivation) }
