package testsupport

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"github.com/goliatone/go-devme/pkg/document"
)

// SampleImage is a one pixel PNG encoded as a data URI.
const SampleImage = "data:image/png;base64,iVBORw0KGgoAAAANSUhEUgAAAAEAAAABCAYAAAAfFcSJAAAADUlEQVR42mNk+M9QDwADhgGAWjR9awAAAABJRU5ErkJggg=="

// SampleDocument returns a fully populated document at the detailed level.
// Renderer and storage tests share it so goldens stay comparable.
func SampleDocument() document.Document {
	doc := document.Default().
		WithContentLevel(document.LevelDetailed).
		WithPersonalInfo(document.PersonalInfo{
			Name:     "Ada Lovelace",
			Email:    "ada@example.com",
			Phone:    "+44 20 0000 0000",
			Location: "London",
			GitHub:   "https://github.com/ada",
			LinkedIn: "https://linkedin.com/in/ada",
			Website:  "https://ada.dev",
			Bio:      "Engineer who writes programs for engines.",
		}).
		WithProfileImage(SampleImage).
		WithTemplate("modern").
		WithTheme("blue")

	stack := doc.TechStack
	stack, _ = stack.Add(document.CategoryLanguages, "Go")
	stack, _ = stack.Add(document.CategoryLanguages, "TypeScript")
	stack, _ = stack.Add(document.CategoryDatabases, "PostgreSQL")
	doc = doc.WithTechStack(stack)

	doc = doc.AppendProject(document.Project{
		ID:           "project-1",
		Title:        "Analytical Engine",
		Description:  "General purpose mechanical computer.",
		Technologies: []string{"Go", "PostgreSQL"},
		GitHubURL:    "https://github.com/ada/engine",
		LiveURL:      "https://engine.example.com",
		Highlights:   []string{"First published algorithm", ""},
	})

	doc = doc.WithCustomQuestions([]document.CustomQuestion{{
		ID:          "custom_sample",
		Question:    "What is your favourite bug?",
		Placeholder: "Share your answer...",
		IsCustom:    true,
	}})
	doc = doc.WithAnswer(document.QuestionHardestProblem, "Computing Bernoulli numbers.")
	doc = doc.WithAnswer(document.QuestionMotivation, "Poetical science.")
	doc = doc.WithAnswer("custom_sample", "A moth in a relay.")
	return doc
}

// DiffDocuments compares two documents treating nil and empty collections as
// equal, which is how snapshots differ after a JSON round trip.
func DiffDocuments(want, got document.Document) string {
	return cmp.Diff(want, got, cmpopts.EquateEmpty())
}

// WriteGolden writes arbitrary data to a golden file when UPDATE_GOLDENS is set.
func WriteGolden(t *testing.T, path string, value any) {
	t.Helper()

	if os.Getenv("UPDATE_GOLDENS") == "" {
		return
	}
	payload, err := json.MarshalIndent(value, "", "  ")
	if err != nil {
		t.Fatalf("marshal golden: %v", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir golden dir: %v", err)
	}
	if err := os.WriteFile(path, payload, 0o644); err != nil {
		t.Fatalf("write golden: %v", err)
	}
}

// LoadDocument reads a JSON snapshot fixture.
func LoadDocument(path string) (document.Document, error) {
	if path == "" {
		return document.Document{}, errors.New("testsupport: document path is required")
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return document.Document{}, fmt.Errorf("testsupport: read document: %w", err)
	}
	var out document.Document
	if err := json.Unmarshal(data, &out); err != nil {
		return document.Document{}, fmt.Errorf("testsupport: unmarshal document: %w", err)
	}
	return out, nil
}

// CompareGolden returns a diff string if the values differ.
func CompareGolden(want, got any) string {
	return cmp.Diff(want, got)
}

// MustReadGolden reads a golden file and returns its raw bytes.
func MustReadGolden(t *testing.T, path string) []byte {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read golden: %v", err)
	}
	return data
}

// WriteMaybeGolden updates a golden file when UPDATE_GOLDENS is set. Returns
// true if the golden was written.
func WriteMaybeGolden(t *testing.T, path string, data []byte) bool {
	t.Helper()
	if os.Getenv("UPDATE_GOLDENS") == "" {
		return false
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir golden dir: %v", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("write golden: %v", err)
	}
	return true
}

// Context returns a background context for tests.
func Context() context.Context {
	return context.Background()
}

// CaptureTemplateOutput executes a render function that writes to an io.Writer,
// returning both the string result and the writer contents.
func CaptureTemplateOutput(t *testing.T, render func(io.Writer) (string, error)) (string, string) {
	t.Helper()

	var buf bytes.Buffer
	out, err := render(&buf)
	if err != nil {
		t.Fatalf("render template: %v", err)
	}

	return out, buf.String()
}
