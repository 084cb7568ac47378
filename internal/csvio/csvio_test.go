package csvio

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/boardgov/govscore/internal/catalog"
	"github.com/boardgov/govscore/internal/session"
)

var exportTime = time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC)

func newSession(t *testing.T) *session.Session {
	t.Helper()
	return session.New(catalog.Default())
}

func TestExportShape(t *testing.T) {
	s := newSession(t)
	s.SetMetadata(session.Metadata{Organisation: "Acme", Board: "Audit Committee", Date: "2026-03-01", Sector: "finance"})
	s.Rate("A1", 3, false)
	s.Lock("A1")

	out := string(Export(s.Catalog(), s, exportTime))
	lines := strings.Split(out, "\n")

	if lines[0] != TitleRow {
		t.Errorf("line 0 = %q", lines[0])
	}
	if lines[1] != "Organisation,Acme" {
		t.Errorf("line 1 = %q", lines[1])
	}
	if lines[2] != "Board/Committee,Audit Committee" {
		t.Errorf("line 2 = %q", lines[2])
	}
	if lines[3] != "Assessment Date,2026-03-01" {
		t.Errorf("line 3 = %q", lines[3])
	}
	if lines[4] != "Sector,finance" {
		t.Errorf("line 4 = %q", lines[4])
	}
	if !strings.HasPrefix(lines[5], "Export Date,2026-03-14T09:30:00Z") {
		t.Errorf("line 5 = %q", lines[5])
	}
	if lines[6] != "" {
		t.Errorf("line 6 should be blank, got %q", lines[6])
	}
	if lines[7] != "Domain,Action Code,Action Title,Selected Level,Maturity Description,Locked" {
		t.Errorf("line 7 = %q", lines[7])
	}

	dataLines := lines[8:]
	var a1 string
	for _, l := range dataLines {
		if strings.Contains(l, ",A1,") {
			a1 = l
		}
	}
	if a1 == "" {
		t.Fatal("no data row for A1")
	}
	if !strings.Contains(a1, ",3,Good,Yes") {
		t.Errorf("A1 row = %q", a1)
	}

	// One data row per catalog action, plus trailing newline.
	nonEmpty := 0
	for _, l := range dataLines {
		if l != "" {
			nonEmpty++
		}
	}
	if nonEmpty != s.Catalog().TotalActions() {
		t.Errorf("%d data rows, want %d", nonEmpty, s.Catalog().TotalActions())
	}
}

func TestExportDefaultsWhenUnset(t *testing.T) {
	s := newSession(t)

	out := string(Export(s.Catalog(), s, exportTime))
	if !strings.Contains(out, "Organisation,Your organisation\n") {
		t.Error("empty organisation should export its placeholder")
	}
	if !strings.Contains(out, "Assessment Date,2026-03-14\n") {
		t.Error("unset assessment date should default to the export day")
	}
	if !strings.Contains(out, "Sector,generic\n") {
		t.Error("unset sector should default to generic")
	}
}

func TestExportQuotesSpecialCharacters(t *testing.T) {
	s := newSession(t)
	s.SetMetadata(session.Metadata{Organisation: `Acme, "The" Corp`})

	out := string(Export(s.Catalog(), s, exportTime))
	if !strings.Contains(out, `Organisation,"Acme, ""The"" Corp"`) {
		t.Errorf("organisation not quoted correctly:\n%s", out)
	}
}

func roundTrip(t *testing.T, populate func(*session.Session)) (*session.Session, *session.Session, *ImportResult) {
	t.Helper()
	cat := catalog.Default()

	src := session.New(cat)
	populate(src)
	out := Export(cat, src, exportTime)

	dst := session.New(cat)
	result, err := Import(cat, dst, out)
	if err != nil {
		t.Fatalf("import: %v", err)
	}
	return src, dst, result
}

func assertSameState(t *testing.T, src, dst *session.Session) {
	t.Helper()
	for _, d := range src.Catalog().Domains {
		for _, a := range d.Actions {
			sl, sok := src.Rating(a.Code)
			dl, dok := dst.Rating(a.Code)
			if sok != dok || sl != dl {
				t.Errorf("%s: rating (%d,%v) became (%d,%v)", a.Code, sl, sok, dl, dok)
			}
			if src.IsLocked(a.Code) != dst.IsLocked(a.Code) {
				t.Errorf("%s: lock state changed across round-trip", a.Code)
			}
		}
	}
}

func TestRoundTripEmpty(t *testing.T) {
	src, dst, result := roundTrip(t, func(s *session.Session) {})
	assertSameState(t, src, dst)
	if result.Rated != 0 || result.Locked != 0 {
		t.Errorf("result = %+v, want zeroes", result)
	}
}

func TestRoundTripPartial(t *testing.T) {
	src, dst, result := roundTrip(t, func(s *session.Session) {
		s.SetMetadata(session.Metadata{Organisation: "Acme", Board: "Risk Committee", Date: "2026-01-01", Sector: "health"})
		s.Rate("A1", 0, false)
		s.Rate("B2", 4, false)
		s.Rate("D3", 2, false)
		s.Lock("B2")
	})
	assertSameState(t, src, dst)

	if result.Rated != 3 || result.Locked != 1 {
		t.Errorf("result = %+v, want 3 rated, 1 locked", result)
	}
	meta := dst.Metadata()
	if meta.Organisation != "Acme" || meta.Board != "Risk Committee" || meta.Date != "2026-01-01" || meta.Sector != "health" {
		t.Errorf("metadata = %+v", meta)
	}
}

func TestRoundTripAllRatedAllLocked(t *testing.T) {
	src, dst, result := roundTrip(t, func(s *session.Session) {
		s.PrefillMinimum(1)
		for _, d := range s.Catalog().Domains {
			for _, a := range d.Actions {
				if err := s.Lock(a.Code); err != nil {
					t.Fatal(err)
				}
			}
		}
	})
	assertSameState(t, src, dst)

	total := src.Catalog().TotalActions()
	if result.Rated != total || result.Locked != total {
		t.Errorf("result = %+v, want %d/%d", result, total, total)
	}
}

func TestRoundTripQuotedMetadata(t *testing.T) {
	src, dst, _ := roundTrip(t, func(s *session.Session) {
		s.SetMetadata(session.Metadata{Organisation: `Smith, Jones & "Partners"`, Board: "Main Board"})
		s.Rate("C2", 3, false)
	})
	assertSameState(t, src, dst)

	if dst.Metadata().Organisation != `Smith, Jones & "Partners"` {
		t.Errorf("organisation = %q", dst.Metadata().Organisation)
	}
}

func TestImportResetsExistingState(t *testing.T) {
	cat := catalog.Default()

	src := session.New(cat)
	src.Rate("A1", 2, false)
	out := Export(cat, src, exportTime)

	dst := session.New(cat)
	dst.Rate("E3", 4, false)
	dst.Lock("E3")

	if _, err := Import(cat, dst, out); err != nil {
		t.Fatalf("import: %v", err)
	}
	if _, ok := dst.Rating("E3"); ok {
		t.Error("import must start from a clean slate")
	}
	if dst.IsLocked("E3") {
		t.Error("prior locks must not survive import")
	}
	if level, _ := dst.Rating("A1"); level != 2 {
		t.Error("imported rating missing")
	}
}

func TestImportUnknownCodeIgnored(t *testing.T) {
	cat := catalog.Default()
	s := session.New(cat)

	csvDoc := "Domain,Action Code,Action Title,Selected Level,Maturity Description,Locked\n" +
		"Ghost Domain,Z99,Ghost action,3,Good,Yes\n" +
		"Risk Management,A1,Real action,2,Progressive,No\n"

	result, err := Import(cat, s, []byte(csvDoc))
	if err != nil {
		t.Fatalf("unknown codes must not raise: %v", err)
	}
	if result.Rated != 1 || result.Locked != 0 {
		t.Errorf("result = %+v, want 1 rated, 0 locked", result)
	}
	if _, ok := s.Rating("Z99"); ok {
		t.Error("unknown code must cause zero state mutation")
	}
	if s.IsLocked("Z99") {
		t.Error("unknown code must not enter the lock set")
	}
}

func TestImportShortAndBlankRowsSkipped(t *testing.T) {
	cat := catalog.Default()
	s := session.New(cat)

	csvDoc := "Domain,Action Code,Action Title,Selected Level,Maturity Description,Locked\n" +
		"\n" +
		"Risk Management,A1,Short row,3\n" +
		"\n" +
		"Risk Management,A2,Full row,1,Minimal,No\n"

	result, err := Import(cat, s, []byte(csvDoc))
	if err != nil {
		t.Fatalf("import: %v", err)
	}
	if result.Rated != 1 {
		t.Errorf("rated = %d, want 1 (short row skipped)", result.Rated)
	}
	if _, ok := s.Rating("A1"); ok {
		t.Error("short row must not apply")
	}
}

func TestImportLockOnUnratedDropped(t *testing.T) {
	cat := catalog.Default()
	s := session.New(cat)

	csvDoc := "Domain,Action Code,Action Title,Selected Level,Maturity Description,Locked\n" +
		"Risk Management,A1,No level but locked,,,Yes\n"

	result, err := Import(cat, s, []byte(csvDoc))
	if err != nil {
		t.Fatalf("import: %v", err)
	}
	if result.Locked != 0 {
		t.Errorf("locked = %d, want 0", result.Locked)
	}
	if s.IsLocked("A1") {
		t.Error("lock on an unrated action must be dropped")
	}
}

func TestImportBadLevelValueSkipped(t *testing.T) {
	cat := catalog.Default()
	s := session.New(cat)

	csvDoc := "Domain,Action Code,Action Title,Selected Level,Maturity Description,Locked\n" +
		"Risk Management,A1,Bad level,nine,Good,No\n" +
		"Risk Management,A2,Out of range,7,Good,No\n"

	result, err := Import(cat, s, []byte(csvDoc))
	if err != nil {
		t.Fatalf("import: %v", err)
	}
	if result.Rated != 0 || s.RatedCount() != 0 {
		t.Errorf("bad level values must be skipped, got %+v", result)
	}
}

func TestImportMissingHeaderFailsAtomically(t *testing.T) {
	cat := catalog.Default()
	s := session.New(cat)
	s.Rate("A1", 3, false)
	s.Lock("A1")
	s.SetMetadata(session.Metadata{Organisation: "Before"})

	csvDoc := "Organisation,Intruder\nRisk Management,A2,No header anywhere,2,Progressive,No\n"

	_, err := Import(cat, s, []byte(csvDoc))
	var mce *MalformedCSVError
	if !errors.As(err, &mce) {
		t.Fatalf("got %v, want *MalformedCSVError", err)
	}

	if level, ok := s.Rating("A1"); !ok || level != 3 {
		t.Error("failed import must preserve ratings")
	}
	if !s.IsLocked("A1") {
		t.Error("failed import must preserve locks")
	}
	if s.Metadata().Organisation != "Before" {
		t.Error("failed import must preserve metadata")
	}
}

func TestImportEmptyMetadataKeepsExisting(t *testing.T) {
	cat := catalog.Default()
	s := session.New(cat)
	s.SetMetadata(session.Metadata{Organisation: "Keep Me"})

	csvDoc := "Organisation,\n" +
		"Domain,Action Code,Action Title,Selected Level,Maturity Description,Locked\n"

	if _, err := Import(cat, s, []byte(csvDoc)); err != nil {
		t.Fatalf("import: %v", err)
	}
	if s.Metadata().Organisation != "Keep Me" {
		t.Errorf("organisation = %q, want existing value kept", s.Metadata().Organisation)
	}
}

func TestSuggestFilename(t *testing.T) {
	tests := []struct {
		org  string
		date string
		want string
	}{
		{"Acme Ltd", "2026-03-14", "maturity-assessment-2026-03-14-acme-ltd.csv"},
		{"Smith & Jones!", "2026-01-01", "maturity-assessment-2026-01-01-smith-jones.csv"},
		{strings.Repeat("x", 50), "2026-01-01", "maturity-assessment-2026-01-01-" + strings.Repeat("x", 30) + ".csv"},
	}
	for _, tt := range tests {
		if got := SuggestFilename(tt.org, tt.date); got != tt.want {
			t.Errorf("SuggestFilename(%q) = %q, want %q", tt.org, got, tt.want)
		}
	}
}
