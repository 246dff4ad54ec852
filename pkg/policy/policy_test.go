package policy

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-devme/pkg/catalog"
	"github.com/goliatone/go-devme/pkg/document"
)

func TestLevels_ArePrefixesOfMasterOrder(t *testing.T) {
	c := catalog.MustDefault()
	p := New(c)

	cases := []struct {
		level     document.Level
		fields    int
		questions int
	}{
		{document.LevelSimple, 4, 1},
		{document.LevelStandard, 5, 3},
		{document.LevelDetailed, 7, 6},
	}

	for _, tc := range cases {
		t.Run(string(tc.level), func(t *testing.T) {
			fields := p.FieldsForLevel(tc.level)
			if diff := cmp.Diff(c.Fields[:tc.fields], fields); diff != "" {
				t.Fatalf("fields mismatch (-want +got):\n%s", diff)
			}
			questions := p.QuestionsForLevel(tc.level)
			if diff := cmp.Diff(c.Questions[:tc.questions], questions); diff != "" {
				t.Fatalf("questions mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestUnknownLevel_FallsBackToStandard(t *testing.T) {
	p := Default()
	if got := len(p.FieldsForLevel("")); got != 5 {
		t.Fatalf("expected 5 fields for unset level, got %d", got)
	}
	if got := len(p.QuestionsForLevel("verbose")); got != 3 {
		t.Fatalf("expected 3 questions for unknown level, got %d", got)
	}
}

func TestFieldVisible(t *testing.T) {
	p := Default()
	if p.FieldVisible(document.LevelSimple, "github") {
		t.Fatalf("github should be hidden at simple")
	}
	if !p.FieldVisible(document.LevelStandard, "github") {
		t.Fatalf("github should be visible at standard")
	}
	if !p.FieldVisible(document.LevelDetailed, "website") {
		t.Fatalf("website should be visible at detailed")
	}
}

func TestResultsDoNotAliasCatalog(t *testing.T) {
	c := catalog.MustDefault()
	p := New(c)
	fields := p.FieldsForLevel(document.LevelSimple)
	fields[0].Label = "changed"
	if c.Fields[0].Label == "changed" {
		t.Fatalf("policy result aliases catalog storage")
	}
}
