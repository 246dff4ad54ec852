package storage

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/goliatone/go-devme/pkg/document"
	"github.com/goliatone/go-devme/pkg/testsupport"
)

func TestRepository_RoundTrip(t *testing.T) {
	ctx := context.Background()
	repo := NewRepository(NewMemoryStore())
	want := testsupport.SampleDocument()

	if err := repo.Save(ctx, want); err != nil {
		t.Fatalf("save: %v", err)
	}
	got, err := repo.Load(ctx)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if diff := testsupport.DiffDocuments(want, got); diff != "" {
		t.Fatalf("round trip mismatch (-want +got):\n%s", diff)
	}
}

func TestRepository_AbsentKeyYieldsDefault(t *testing.T) {
	got, err := NewRepository(NewMemoryStore()).Load(context.Background())
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if diff := testsupport.DiffDocuments(document.Default(), got); diff != "" {
		t.Fatalf("expected default document (-want +got):\n%s", diff)
	}
}

func TestRepository_MalformedPayloadYieldsDefault(t *testing.T) {
	ctx := context.Background()
	cases := map[string]string{
		"not json":      "{oops",
		"wrong type":    `{"projects": "none"}`,
		"array root":    `[1, 2, 3]`,
		"bad answer":    `{"narrativeAnswers": {"motivation": 7}}`,
		"project no id": `{"projects": [{"title": "x"}]}`,
	}
	for name, payload := range cases {
		t.Run(name, func(t *testing.T) {
			store := NewMemoryStore()
			_ = store.Set(ctx, DefaultKey, []byte(payload))
			got, err := NewRepository(store).Load(ctx)
			if err != nil {
				t.Fatalf("load: %v", err)
			}
			if diff := testsupport.DiffDocuments(document.Default(), got); diff != "" {
				t.Fatalf("expected default document (-want +got):\n%s", diff)
			}
		})
	}
}

func TestRepository_LoadNormalizes(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()
	payload := `{
		"techStack": {"languages": ["Go", "Go"]},
		"narrativeAnswers": {"motivation": "Craft", "custom_gone": "orphan"},
		"contentLevel": "extreme"
	}`
	if err := store.Set(ctx, "alt", []byte(payload)); err != nil {
		t.Fatalf("seed: %v", err)
	}

	got, err := NewRepository(store, WithKey("alt")).Load(ctx)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(got.TechStack.Languages) != 1 {
		t.Fatalf("expected deduplicated languages, got %v", got.TechStack.Languages)
	}
	if _, ok := got.NarrativeAnswers["custom_gone"]; ok {
		t.Fatalf("expected orphan answer dropped")
	}
	if got.NarrativeAnswers.Motivation() != "Craft" || got.ContentLevel != "" {
		t.Fatalf("unexpected normalized document: %+v", got)
	}
}

type failingStore struct{ err error }

func (f failingStore) Get(context.Context, string) ([]byte, error) { return nil, f.err }
func (f failingStore) Set(context.Context, string, []byte) error  { return f.err }

func TestRepository_StoreFailuresSurface(t *testing.T) {
	boom := errors.New("disk full")
	repo := NewRepository(failingStore{err: boom})

	doc, err := repo.Load(context.Background())
	if !errors.Is(err, boom) {
		t.Fatalf("expected store error, got %v", err)
	}
	if doc.NarrativeAnswers == nil {
		t.Fatalf("expected default document alongside the error")
	}
	if err := repo.Save(context.Background(), document.Default()); !errors.Is(err, boom) {
		t.Fatalf("expected save error, got %v", err)
	}
}

func TestFileStore_RoundTripAndKeys(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "nested", "devme.json")
	store := NewFileStore(path)

	if _, err := store.Get(ctx, "missing"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound before first write, got %v", err)
	}
	if err := store.Set(ctx, "a", []byte(`{"x":1}`)); err != nil {
		t.Fatalf("set a: %v", err)
	}
	if err := store.Set(ctx, "b", []byte(`"two"`)); err != nil {
		t.Fatalf("set b: %v", err)
	}
	if err := store.Set(ctx, "c", []byte("not json")); !errors.Is(err, ErrInvalidValue) {
		t.Fatalf("expected ErrInvalidValue, got %v", err)
	}

	reopened := NewFileStore(path)
	got, err := reopened.Get(ctx, "b")
	if err != nil {
		t.Fatalf("get b: %v", err)
	}
	if string(got) != `"two"` {
		t.Fatalf("unexpected value %q", got)
	}
	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("stat: %v", err)
	}
	if info.Mode().Perm() != 0o600 {
		t.Fatalf("expected 0600 file mode, got %v", info.Mode().Perm())
	}
	leftovers, _ := filepath.Glob(filepath.Join(filepath.Dir(path), "*.tmp"))
	if len(leftovers) != 0 {
		t.Fatalf("temporary files left behind: %v", leftovers)
	}
}

func TestFileStore_CorruptFileFallsBackAndRecovers(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "devme.json")
	if err := os.WriteFile(path, []byte("garbage"), 0o600); err != nil {
		t.Fatalf("seed: %v", err)
	}

	repo := NewRepository(NewFileStore(path))
	doc, err := repo.Load(ctx)
	if err != nil {
		t.Fatalf("load corrupt: %v", err)
	}
	if diff := testsupport.DiffDocuments(document.Default(), doc); diff != "" {
		t.Fatalf("expected default document (-want +got):\n%s", diff)
	}

	want := testsupport.SampleDocument()
	if err := repo.Save(ctx, want); err != nil {
		t.Fatalf("save over corrupt file: %v", err)
	}
	got, err := repo.Load(ctx)
	if err != nil {
		t.Fatalf("reload: %v", err)
	}
	if diff := testsupport.DiffDocuments(want, got); diff != "" {
		t.Fatalf("round trip mismatch (-want +got):\n%s", diff)
	}
}

func TestMemoryStore_CopiesValues(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()
	value := []byte("abc")
	_ = store.Set(ctx, "k", value)
	value[0] = 'z'

	got, _ := store.Get(ctx, "k")
	if string(got) != "abc" {
		t.Fatalf("store must copy on write, got %q", got)
	}

	cancelled, cancel := context.WithCancel(ctx)
	cancel()
	if _, err := store.Get(cancelled, "k"); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}
