// Package report builds the board-ready view of an assessment: for every
// domain with at least one rated action, the chosen levels and their
// follow-on actions in catalog order.
package report

import (
	"github.com/boardgov/govscore/internal/catalog"
	"github.com/boardgov/govscore/internal/session"
)

// Entry is one rated action in the board report.
type Entry struct {
	Code          string   `json:"code"`
	Title         string   `json:"title"`
	Level         int      `json:"level"`
	MaturityLevel string   `json:"maturityLevel"`
	FollowOn      []string `json:"followOn,omitempty"`
}

// DomainReport groups entries under their domain.
type DomainReport struct {
	Code    string  `json:"code"`
	Name    string  `json:"name"`
	Entries []Entry `json:"entries"`
}

// Report is the full board report. Domains with no rated actions are omitted
// entirely rather than shown as empty sections.
type Report struct {
	Domains []DomainReport `json:"domains"`
}

// Empty reports whether no domain qualified for inclusion.
func (r *Report) Empty() bool {
	return len(r.Domains) == 0
}

// EmptyMessage is shown when no follow-on actions exist yet.
const EmptyMessage = "No follow-on actions yet. Select maturity levels to build a board report."

// Build derives the report from a session snapshot.
func Build(cat *catalog.Catalog, s *session.Session) *Report {
	r := &Report{}

	for _, d := range cat.Domains {
		var entries []Entry
		for _, a := range d.Actions {
			level, ok := s.Rating(a.Code)
			if !ok {
				continue
			}
			lvl, ok := a.LevelFor(level)
			if !ok {
				continue
			}
			entries = append(entries, Entry{
				Code:          a.Code,
				Title:         a.Title,
				Level:         level,
				MaturityLevel: lvl.MaturityLevel,
				FollowOn:      lvl.FollowOn,
			})
		}
		if len(entries) > 0 {
			r.Domains = append(r.Domains, DomainReport{Code: d.Code, Name: d.Name, Entries: entries})
		}
	}

	return r
}
