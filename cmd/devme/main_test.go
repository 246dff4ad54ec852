package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/goliatone/go-devme/pkg/storage"
	"github.com/goliatone/go-devme/pkg/testsupport"
)

func executeCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	t.Cleanup(func() {
		rootCmd.SetArgs(nil)
		previewFormat, previewOutput, configPath = "", "", ""
	})
	err := rootCmd.ExecuteContext(context.Background())
	return out.String(), err
}

func seedStore(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "resume.json")
	repo := storage.NewRepository(storage.NewFileStore(path))
	if err := repo.Save(context.Background(), testsupport.SampleDocument()); err != nil {
		t.Fatalf("seed store: %v", err)
	}
	t.Setenv("DEVME_STORAGE_PATH", path)
	return dir
}

func TestPreviewCommand_Text(t *testing.T) {
	seedStore(t)
	out, err := executeCommand(t, "preview", "--format", "text", "--config", filepath.Join(t.TempDir(), "devme.toml"))
	if err != nil {
		t.Fatalf("preview: %v", err)
	}
	if !strings.Contains(out, "ADA LOVELACE") {
		t.Fatalf("expected text resume, got:\n%s", out)
	}
}

func TestPreviewCommand_WritesHTMLFile(t *testing.T) {
	dir := seedStore(t)
	target := filepath.Join(dir, "resume.html")
	if _, err := executeCommand(t, "preview", "-f", "html", "-o", target, "--config", filepath.Join(dir, "devme.toml")); err != nil {
		t.Fatalf("preview: %v", err)
	}
	data, err := os.ReadFile(target)
	if err != nil {
		t.Fatalf("read output: %v", err)
	}
	if !strings.Contains(string(data), "Analytical Engine") {
		t.Fatalf("expected project in html output")
	}
}

func TestCatalogCommand(t *testing.T) {
	out, err := executeCommand(t, "catalog", "--config", filepath.Join(t.TempDir(), "devme.toml"))
	if err != nil {
		t.Fatalf("catalog: %v", err)
	}
	for _, want := range []string{"LEVELS", "detailed", "TEMPLATES", "creative", "THEMES", "#F97316"} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected %q in catalog output:\n%s", want, out)
		}
	}
}
