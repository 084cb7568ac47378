package cli

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/boardgov/govscore/internal/catalog"
	"github.com/boardgov/govscore/internal/csvio"
	"github.com/boardgov/govscore/internal/score"
	"github.com/boardgov/govscore/internal/session"
)

func writeAssessment(t *testing.T) string {
	t.Helper()
	cat := catalog.Default()
	s := session.New(cat)
	s.SetMetadata(session.Metadata{Organisation: "Acme", Board: "Audit Committee", Date: "2026-03-01"})
	s.Rate("A1", 1, false)
	s.Rate("B1", 3, false)

	path := filepath.Join(t.TempDir(), "assessment.csv")
	if err := os.WriteFile(path, csvio.Export(cat, s, time.Now()), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadAssessment(t *testing.T) {
	path := writeAssessment(t)

	cat, s, result, err := loadAssessment("", path)
	if err != nil {
		t.Fatalf("loadAssessment: %v", err)
	}
	if result.Rated != 2 {
		t.Errorf("rated = %d, want 2", result.Rated)
	}
	if level, _ := s.Rating("B1"); level != 3 {
		t.Errorf("B1 = %d, want 3", level)
	}
	if cat.TotalActions() == 0 {
		t.Error("catalog not loaded")
	}
}

func TestLoadAssessmentMissingFile(t *testing.T) {
	if _, _, _, err := loadAssessment("", filepath.Join(t.TempDir(), "absent.csv")); err == nil {
		t.Error("expected error for missing input")
	}
}

func TestFormatSummaryText(t *testing.T) {
	path := writeAssessment(t)
	cat, s, _, err := loadAssessment("", path)
	if err != nil {
		t.Fatal(err)
	}

	text := formatSummaryText(cat, s, score.Compute(cat, s))
	for _, want := range []string{"Acme", "Audit Committee", "2026-03-01", "2 of ", "Risk Management", "avg 1.00"} {
		if !strings.Contains(text, want) {
			t.Errorf("summary missing %q:\n%s", want, text)
		}
	}
}
