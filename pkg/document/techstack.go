package document

import (
	"fmt"
	"strings"
)

// Category names one of the four tech stack groups.
type Category string

const (
	CategoryLanguages  Category = "languages"
	CategoryFrameworks Category = "frameworks"
	CategoryTools      Category = "tools"
	CategoryDatabases  Category = "databases"
)

// Categories returns the tech stack categories in display order.
func Categories() []Category {
	return []Category{CategoryLanguages, CategoryFrameworks, CategoryTools, CategoryDatabases}
}

// TechStack groups technologies per category. Each list behaves as an
// insertion-ordered set with case-sensitive matching.
type TechStack struct {
	Languages  []string `json:"languages"`
	Frameworks []string `json:"frameworks"`
	Tools      []string `json:"tools"`
	Databases  []string `json:"databases"`
}

// Items returns the entries of a category. The slice is shared; callers must
// not modify it.
func (t TechStack) Items(category Category) []string {
	switch category {
	case CategoryLanguages:
		return t.Languages
	case CategoryFrameworks:
		return t.Frameworks
	case CategoryTools:
		return t.Tools
	case CategoryDatabases:
		return t.Databases
	default:
		return nil
	}
}

// With returns a copy of t whose category holds items.
func (t TechStack) With(category Category, items []string) (TechStack, error) {
	items = append([]string{}, items...)
	switch category {
	case CategoryLanguages:
		t.Languages = items
	case CategoryFrameworks:
		t.Frameworks = items
	case CategoryTools:
		t.Tools = items
	case CategoryDatabases:
		t.Databases = items
	default:
		return t, fmt.Errorf("%w: %q", ErrUnknownCategory, category)
	}
	return t, nil
}

// Empty reports whether every category is empty.
func (t TechStack) Empty() bool {
	for _, category := range Categories() {
		if len(t.Items(category)) > 0 {
			return false
		}
	}
	return true
}

// Add appends a trimmed item to category unless it is blank or already
// present, in which case t is returned unchanged.
func (t TechStack) Add(category Category, item string) (TechStack, error) {
	if !category.Valid() {
		return t, fmt.Errorf("%w: %q", ErrUnknownCategory, category)
	}
	items, changed := AddUnique(t.Items(category), item)
	if !changed {
		return t, nil
	}
	return t.With(category, items)
}

// Remove drops item from category; absent items are a no-op.
func (t TechStack) Remove(category Category, item string) (TechStack, error) {
	if !category.Valid() {
		return t, fmt.Errorf("%w: %q", ErrUnknownCategory, category)
	}
	items, changed := RemoveValue(t.Items(category), item)
	if !changed {
		return t, nil
	}
	return t.With(category, items)
}

// Toggle removes item when present and adds it otherwise.
func (t TechStack) Toggle(category Category, item string) (TechStack, error) {
	item = strings.TrimSpace(item)
	if contains(t.Items(category), item) {
		return t.Remove(category, item)
	}
	return t.Add(category, item)
}

// Clone deep copies every category.
func (t TechStack) Clone() TechStack {
	return TechStack{
		Languages:  cloneStrings(t.Languages),
		Frameworks: cloneStrings(t.Frameworks),
		Tools:      cloneStrings(t.Tools),
		Databases:  cloneStrings(t.Databases),
	}
}

// Valid reports whether c is a known category.
func (c Category) Valid() bool {
	switch c {
	case CategoryLanguages, CategoryFrameworks, CategoryTools, CategoryDatabases:
		return true
	default:
		return false
	}
}

// AddUnique appends the trimmed value to items when it is non-blank and not
// already present. The input slice is never modified.
func AddUnique(items []string, value string) ([]string, bool) {
	value = strings.TrimSpace(value)
	if value == "" || contains(items, value) {
		return items, false
	}
	out := make([]string, 0, len(items)+1)
	out = append(out, items...)
	return append(out, value), true
}

// RemoveValue returns items without value. The input slice is never modified.
func RemoveValue(items []string, value string) ([]string, bool) {
	if !contains(items, value) {
		return items, false
	}
	out := make([]string, 0, len(items)-1)
	for _, item := range items {
		if item != value {
			out = append(out, item)
		}
	}
	return out, true
}

// Dedupe keeps the first occurrence of every value, preserving order.
func Dedupe(items []string) []string {
	if items == nil {
		return nil
	}
	out := make([]string, 0, len(items))
	seen := make(map[string]struct{}, len(items))
	for _, item := range items {
		if _, ok := seen[item]; ok {
			continue
		}
		seen[item] = struct{}{}
		out = append(out, item)
	}
	return out
}

func contains(items []string, value string) bool {
	for _, item := range items {
		if item == value {
			return true
		}
	}
	return false
}

func cloneStrings(in []string) []string {
	if in == nil {
		return nil
	}
	return append([]string{}, in...)
}
