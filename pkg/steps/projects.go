package steps

import (
	"fmt"

	"github.com/goliatone/go-devme/pkg/document"
)

// Projects is step 3.
type Projects struct {
	newID func() string
}

// Add validates and commits draft as a new project. The draft is never
// partially merged: on error doc is returned unchanged.
func (s Projects) Add(doc document.Document, draft document.Draft) (document.Document, document.Project, error) {
	id := document.UniqueID(s.newID(), func(id string) bool {
		return doc.ProjectIndex(id) >= 0
	})
	if draft.Image != "" && !document.IsImageDataURI(draft.Image) {
		return doc, document.Project{}, fmt.Errorf("%w: project image", ErrInvalidImage)
	}
	project, err := draft.Commit(id)
	if err != nil {
		return doc, document.Project{}, err
	}
	return doc.AppendProject(project), project, nil
}

// Remove deletes a project by id. Stale ids are a no-op.
func (s Projects) Remove(doc document.Document, id string) (document.Document, bool) {
	return doc.RemoveProject(id)
}
