// Package csvio serializes an assessment to CSV and restores it. Export and
// import share one fixed layout: a title row, metadata rows, a blank
// separator, a header row, then one data row per catalog action.
//
// Import is deliberately lenient with data rows (short rows and unknown
// action codes are skipped without error) so exports survive catalog changes
// in either direction. A missing header row is the one fatal shape error.
package csvio

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/boardgov/govscore/internal/catalog"
	"github.com/boardgov/govscore/internal/session"
)

// TitleRow is the first line of every export.
const TitleRow = "Cyber Governance Maturity Assessment"

// Metadata row keys. Import matches them literally.
const (
	keyOrganisation = "Organisation"
	keyBoard        = "Board/Committee"
	keyDate         = "Assessment Date"
	keySector       = "Sector"
	keyExportDate   = "Export Date"
)

var headerRow = []string{"Domain", "Action Code", "Action Title", "Selected Level", "Maturity Description", "Locked"}

// MalformedCSVError is returned when an import cannot locate the data
// section or the input fails CSV parsing. The session is left untouched.
type MalformedCSVError struct {
	Reason string
}

func (e *MalformedCSVError) Error() string {
	return fmt.Sprintf("malformed assessment CSV: %s", e.Reason)
}

// ImportResult reports what an import applied, for user feedback.
type ImportResult struct {
	Rated  int
	Locked int
}

// Export serializes the session to CSV bytes. now stamps the export date and
// substitutes for an unset assessment date.
func Export(cat *catalog.Catalog, s *session.Session, now time.Time) []byte {
	meta := s.Metadata()
	date := meta.Date
	if date == "" {
		date = now.Format("2006-01-02")
	}

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	w.Write([]string{TitleRow})
	w.Write([]string{keyOrganisation, meta.DisplayOrganisation()})
	w.Write([]string{keyBoard, meta.DisplayBoard()})
	w.Write([]string{keyDate, date})
	w.Write([]string{keySector, meta.DisplaySector()})
	w.Write([]string{keyExportDate, now.UTC().Format(time.RFC3339)})
	w.Write([]string{""})
	w.Write(headerRow)

	for _, d := range cat.Domains {
		for _, a := range d.Actions {
			level := ""
			maturity := ""
			if v, ok := s.Rating(a.Code); ok {
				level = strconv.Itoa(v)
				if lvl, ok := a.LevelFor(v); ok {
					maturity = lvl.MaturityLevel
				}
			}
			locked := "No"
			if s.IsLocked(a.Code) {
				locked = "Yes"
			}
			w.Write([]string{d.Name, a.Code, a.Title, level, maturity, locked})
		}
	}

	w.Flush()
	return buf.Bytes()
}

// Import parses CSV bytes and applies them to the session: full reset, then
// metadata, then data rows in file order (rating first, lock second). The
// whole input is parsed before anything mutates, so failure preserves the
// prior state completely.
func Import(cat *catalog.Catalog, s *session.Session, data []byte) (*ImportResult, error) {
	r := csv.NewReader(bytes.NewReader(data))
	r.FieldsPerRecord = -1

	records, err := r.ReadAll()
	if err != nil {
		return nil, &MalformedCSVError{Reason: err.Error()}
	}

	meta := s.Metadata()
	dataStart := -1

	for i, rec := range records {
		if len(rec) >= 2 && rec[0] == "Domain" && rec[1] == "Action Code" {
			dataStart = i + 1
			break
		}
		if len(rec) < 2 {
			continue
		}
		switch rec[0] {
		case keyOrganisation:
			if rec[1] != "" {
				meta.Organisation = rec[1]
			}
		case keyBoard:
			if rec[1] != "" {
				meta.Board = rec[1]
			}
		case keyDate:
			if rec[1] != "" {
				meta.Date = rec[1]
			}
		case keySector:
			if rec[1] != "" {
				meta.Sector = rec[1]
			}
		}
	}

	if dataStart == -1 {
		return nil, &MalformedCSVError{Reason: "could not find data section"}
	}

	// Parse succeeded; apply as one critical section.
	s.ResetAll()
	s.SetMetadata(meta)

	result := &ImportResult{}
	for _, rec := range records[dataStart:] {
		if len(rec) < 6 {
			continue
		}
		code := strings.TrimSpace(rec[1])
		levelField := strings.TrimSpace(rec[3])
		lockField := strings.TrimSpace(rec[5])

		if levelField != "" {
			if level, err := strconv.Atoi(levelField); err == nil {
				// Import owns the session; the lock gate does not apply.
				if s.Rate(code, level, true) == nil {
					result.Rated++
				}
			}
		}
		if lockField == "Yes" {
			// Unknown or unrated codes fail NothingToLock and are dropped.
			if s.Lock(code) == nil {
				result.Locked++
			}
		}
	}

	return result, nil
}

var filenameUnsafe = regexp.MustCompile(`[^a-z0-9]+`)

// SuggestFilename builds the conventional export filename for an assessment.
func SuggestFilename(org, date string) string {
	slug := filenameUnsafe.ReplaceAllString(strings.ToLower(org), "-")
	slug = strings.Trim(slug, "-")
	if len(slug) > 30 {
		slug = slug[:30]
	}
	return fmt.Sprintf("maturity-assessment-%s-%s.csv", date, slug)
}
