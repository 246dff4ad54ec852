package steps

import (
	"github.com/goliatone/go-devme/pkg/catalog"
	"github.com/goliatone/go-devme/pkg/document"
)

// TechStack is step 2.
type TechStack struct {
	catalog *catalog.Catalog
}

// Categories lists the categories with their suggested options.
func (s TechStack) Categories() []catalog.TechCategory {
	return append([]catalog.TechCategory(nil), s.catalog.TechStack...)
}

// Toggle flips a suggested option on or off.
func (s TechStack) Toggle(doc document.Document, category document.Category, item string) (document.Document, error) {
	stack, err := doc.TechStack.Toggle(category, item)
	if err != nil {
		return doc, err
	}
	return doc.WithTechStack(stack), nil
}

// Add appends a custom entry; blanks and duplicates are ignored.
func (s TechStack) Add(doc document.Document, category document.Category, item string) (document.Document, error) {
	stack, err := doc.TechStack.Add(category, item)
	if err != nil {
		return doc, err
	}
	return doc.WithTechStack(stack), nil
}

// Remove drops an entry; absent entries are ignored.
func (s TechStack) Remove(doc document.Document, category document.Category, item string) (document.Document, error) {
	stack, err := doc.TechStack.Remove(category, item)
	if err != nil {
		return doc, err
	}
	return doc.WithTechStack(stack), nil
}
