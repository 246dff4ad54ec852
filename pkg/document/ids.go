package document

import (
	"strconv"

	"github.com/google/uuid"
)

// NewProjectID returns a time-ordered unique project id.
func NewProjectID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}
	return id.String()
}

// NewCustomQuestionID returns a fresh id in the custom question namespace.
func NewCustomQuestionID() string {
	return CustomQuestionPrefix + uuid.NewString()
}

// UniqueID returns candidate, or candidate with the first "-N" suffix that
// taken reports free. It always terminates for a finite set of taken ids.
func UniqueID(candidate string, taken func(string) bool) string {
	if !taken(candidate) {
		return candidate
	}
	for n := 2; ; n++ {
		id := candidate + "-" + strconv.Itoa(n)
		if !taken(id) {
			return id
		}
	}
}
