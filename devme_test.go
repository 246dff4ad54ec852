package devme

import (
	"bytes"
	"context"
	"errors"
	"io/fs"
	"log/slog"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"github.com/goliatone/go-devme/pkg/document"
	"github.com/goliatone/go-devme/pkg/storage"
	"github.com/goliatone/go-devme/pkg/testsupport"
)

func TestNew_DefaultsToEmptyDocument(t *testing.T) {
	app, err := New(context.Background())
	if err != nil {
		t.Fatalf("new: %v", err)
	}
	if diff := cmp.Diff(document.Default(), app.Controller.Document(), cmpopts.EquateEmpty()); diff != "" {
		t.Fatalf("unexpected initial document (-want +got):\n%s", diff)
	}
	for _, name := range []string{"html", "text"} {
		if !app.Renderers.Has(name) {
			t.Fatalf("expected renderer %q", name)
		}
	}
}

func TestNew_ResumesPersistedDocumentAndSavesEdits(t *testing.T) {
	ctx := context.Background()
	store := storage.NewMemoryStore()
	seed := testsupport.SampleDocument()
	if err := storage.NewRepository(store).Save(ctx, seed); err != nil {
		t.Fatalf("seed: %v", err)
	}

	app, err := New(ctx, WithStore(store))
	if err != nil {
		t.Fatalf("new: %v", err)
	}
	if diff := testsupport.DiffDocuments(seed, app.Controller.Document()); diff != "" {
		t.Fatalf("document not resumed (-want +got):\n%s", diff)
	}

	if err := app.Controller.SelectTheme("green"); err != nil {
		t.Fatalf("select theme: %v", err)
	}
	reloaded, err := app.Repository.Load(ctx)
	if err != nil {
		t.Fatalf("reload: %v", err)
	}
	if reloaded.SelectedTheme != "green" {
		t.Fatalf("expected edit to be persisted, got theme %q", reloaded.SelectedTheme)
	}
}

type unreadableStore struct{}

func (unreadableStore) Get(context.Context, string) ([]byte, error) {
	return nil, errors.New("permission denied")
}

func (unreadableStore) Set(context.Context, string, []byte) error { return nil }

func TestNew_UnreadableStoreStartsFromDefaults(t *testing.T) {
	var logs bytes.Buffer
	app, err := New(context.Background(),
		WithStore(unreadableStore{}),
		WithLogger(slog.New(slog.NewTextHandler(&logs, nil))),
	)
	if err != nil {
		t.Fatalf("new: %v", err)
	}
	if diff := cmp.Diff(document.Default(), app.Controller.Document(), cmpopts.EquateEmpty()); diff != "" {
		t.Fatalf("unexpected initial document (-want +got):\n%s", diff)
	}
	if !strings.Contains(logs.String(), "permission denied") {
		t.Fatalf("expected load failure to be logged, got %q", logs.String())
	}
}

func TestApp_Render(t *testing.T) {
	ctx := context.Background()
	store := storage.NewMemoryStore()
	if err := storage.NewRepository(store).Save(ctx, testsupport.SampleDocument()); err != nil {
		t.Fatalf("seed: %v", err)
	}
	app, err := New(ctx, WithStore(store))
	if err != nil {
		t.Fatalf("new: %v", err)
	}

	html, err := app.Render(ctx, "html")
	if err != nil {
		t.Fatalf("render html: %v", err)
	}
	for _, want := range []string{"<title>Ada Lovelace - Resume</title>", "Analytical Engine"} {
		if !strings.Contains(string(html), want) {
			t.Fatalf("expected html to contain %q", want)
		}
	}

	if _, err := app.Render(ctx, "pdf"); err == nil {
		t.Fatalf("expected unknown renderer error")
	}
}

func TestEmbeddedAssets(t *testing.T) {
	if _, err := fs.ReadFile(EmbeddedTemplates(), "grid.tpl"); err != nil {
		t.Fatalf("expected grid layout to be readable: %v", err)
	}
	if _, err := fs.ReadFile(EmbeddedCatalog(), "themes.yaml"); err != nil {
		t.Fatalf("expected themes catalog to be readable: %v", err)
	}
}
