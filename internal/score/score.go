// Package score derives statistics from a catalog and a session snapshot:
// per-domain and overall totals, averages, maturity bands, the completion
// figure, and the weakest-domain recommendation. All functions are pure.
package score

import (
	"fmt"

	"github.com/boardgov/govscore/internal/catalog"
	"github.com/boardgov/govscore/internal/session"
)

// Band classifies an average into a maturity band.
type Band string

const (
	BandGreen Band = "green"
	BandAmber Band = "amber"
	BandRed   Band = "red"
)

// Band thresholds, inclusive lower bounds.
const (
	greenMin = 3.2
	amberMin = 1.8
)

// BandFor classifies a defined average. Callers must not pass an average for
// a zero-count domain; "no data" is not a band.
func BandFor(average float64) Band {
	switch {
	case average >= greenMin:
		return BandGreen
	case average >= amberMin:
		return BandAmber
	default:
		return BandRed
	}
}

// Label is the display name for a band.
func (b Band) Label() string {
	switch b {
	case BandGreen:
		return "Strong maturity"
	case BandAmber:
		return "Developing maturity"
	default:
		return "Low maturity"
	}
}

// DomainStat holds one domain's aggregate figures. Average is meaningful only
// when HasData is true; a domain with no ratings scores "no data", never zero.
type DomainStat struct {
	Code    string  `json:"code"`
	Name    string  `json:"name"`
	Total   int     `json:"total"`
	Count   int     `json:"count"`
	Average float64 `json:"average"`
	HasData bool    `json:"hasData"`
	Band    Band    `json:"band,omitempty"`
}

// Summary holds the full aggregation: per-domain stats in catalog order plus
// the overall figures.
type Summary struct {
	Domains      []DomainStat `json:"domains"`
	Total        int          `json:"total"`
	Count        int          `json:"count"`
	TotalActions int          `json:"totalActions"`
	Average      float64      `json:"average"`
	HasData      bool         `json:"hasData"`
	Band         Band         `json:"band,omitempty"`
}

// Compute aggregates a session snapshot against its catalog.
func Compute(cat *catalog.Catalog, s *session.Session) *Summary {
	sum := &Summary{
		Domains:      make([]DomainStat, 0, len(cat.Domains)),
		TotalActions: cat.TotalActions(),
	}

	for _, d := range cat.Domains {
		stat := DomainStat{Code: d.Code, Name: d.Name}
		for _, a := range d.Actions {
			level, ok := s.Rating(a.Code)
			if !ok {
				continue
			}
			stat.Total += level
			stat.Count++
		}
		if stat.Count > 0 {
			stat.Average = float64(stat.Total) / float64(stat.Count)
			stat.HasData = true
			stat.Band = BandFor(stat.Average)
		}
		sum.Total += stat.Total
		sum.Count += stat.Count
		sum.Domains = append(sum.Domains, stat)
	}

	if sum.Count > 0 {
		sum.Average = float64(sum.Total) / float64(sum.Count)
		sum.HasData = true
		sum.Band = BandFor(sum.Average)
	}

	return sum
}

// Weakest returns the domain with the lowest defined average. Ties go to the
// earlier domain in catalog order. ok is false when no domain has any rating.
func (sum *Summary) Weakest() (DomainStat, bool) {
	var weakest DomainStat
	found := false
	for _, d := range sum.Domains {
		if !d.HasData {
			continue
		}
		if !found || d.Average < weakest.Average {
			weakest = d
			found = true
		}
	}
	return weakest, found
}

// Recommendation builds the board guidance text. With no ratings it returns
// noRatingsMsg instead.
func (sum *Summary) Recommendation(org, board, noRatingsMsg string) string {
	weakest, ok := sum.Weakest()
	if !ok {
		return noRatingsMsg
	}

	return fmt.Sprintf(
		"%s should prioritise improvement efforts in the weakest domain(s), starting with %s (avg %.2f). "+
			"Use the board-level follow-on actions beneath each item as a ready-made checklist for agendas, "+
			"assurance requests, and management actions.\n\n"+
			"This assessment, including the maturity radar, can be included in %s papers to evidence oversight "+
			"of cyber governance and alignment with the Cyber Governance Code of Practice.",
		org, weakest.Name, weakest.Average, board)
}
