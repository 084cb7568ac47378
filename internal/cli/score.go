package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/boardgov/govscore/internal/catalog"
	"github.com/boardgov/govscore/internal/csvio"
	"github.com/boardgov/govscore/internal/score"
	"github.com/boardgov/govscore/internal/session"
)

var (
	scoreCatalog string
	scoreInput   string
	scoreFormat  string
)

func init() {
	rootCmd.AddCommand(scoreCmd)
	scoreCmd.Flags().StringVar(&scoreCatalog, "catalog", "", "Path to catalog YAML/JSON (built-in model when omitted)")
	scoreCmd.Flags().StringVarP(&scoreInput, "input", "i", "", "Assessment CSV to score (required)")
	scoreCmd.Flags().StringVarP(&scoreFormat, "format", "f", "text", "Output format (text|json)")
	scoreCmd.MarkFlagRequired("input")
}

var scoreCmd = &cobra.Command{
	Use:   "score",
	Short: "Score an assessment CSV",
	Long: "Imports an assessment CSV and prints overall and per-domain maturity figures,\n" +
		"bands, the completion count, and the weakest-domain recommendation.",
	RunE: runScore,
}

func runScore(cmd *cobra.Command, args []string) error {
	cat, s, result, err := loadAssessment(scoreCatalog, scoreInput)
	if err != nil {
		return err
	}

	sum := score.Compute(cat, s)
	meta := s.Metadata()

	if scoreFormat == "json" {
		out := struct {
			Summary        *score.Summary `json:"summary"`
			Recommendation string         `json:"recommendation"`
			Imported       int            `json:"imported"`
			Locked         int            `json:"locked"`
		}{
			Summary:        sum,
			Recommendation: sum.Recommendation(meta.DisplayOrganisation(), meta.DisplayBoard(), cat.UI.NoRatingsMessage),
			Imported:       result.Rated,
			Locked:         result.Locked,
		}
		data, err := json.MarshalIndent(out, "", "  ")
		if err != nil {
			return fmt.Errorf("marshal summary: %w", err)
		}
		fmt.Println(string(data))
		return nil
	}

	fmt.Print(formatSummaryText(cat, s, sum))
	return nil
}

// loadAssessment loads a catalog and imports a CSV into a fresh session.
func loadAssessment(catalogPath, inputPath string) (*catalog.Catalog, *session.Session, *csvio.ImportResult, error) {
	cat, err := catalog.Load(catalogPath)
	if err != nil {
		return nil, nil, nil, err
	}

	data, err := os.ReadFile(inputPath)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("read %s: %w", inputPath, err)
	}

	s := session.New(cat)
	result, err := csvio.Import(cat, s, data)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("%s: %w", inputPath, err)
	}
	return cat, s, result, nil
}

func formatSummaryText(cat *catalog.Catalog, s *session.Session, sum *score.Summary) string {
	meta := s.Metadata()
	var b strings.Builder

	fmt.Fprintf(&b, "Organisation:    %s\n", meta.DisplayOrganisation())
	fmt.Fprintf(&b, "Board/Committee: %s\n", meta.DisplayBoard())
	if meta.Date != "" {
		fmt.Fprintf(&b, "Assessment date: %s\n", meta.Date)
	}
	fmt.Fprintf(&b, "Total score:     %d over %d actions\n", sum.Total, sum.Count)
	if sum.HasData {
		fmt.Fprintf(&b, "Average:         %.2f (%s)\n", sum.Average, sum.Band.Label())
	} else {
		fmt.Fprintf(&b, "Average:         no data\n")
	}
	fmt.Fprintf(&b, "Completion:      %d of %d actions rated\n\n", sum.Count, sum.TotalActions)

	b.WriteString("Domain breakdown:\n")
	for _, d := range sum.Domains {
		if d.HasData {
			fmt.Fprintf(&b, "  %s  %-36s avg %.2f  %s\n", d.Code, d.Name, d.Average, d.Band.Label())
		} else {
			fmt.Fprintf(&b, "  %s  %-36s no data\n", d.Code, d.Name)
		}
	}

	b.WriteString("\n")
	b.WriteString(sum.Recommendation(meta.DisplayOrganisation(), meta.DisplayBoard(), cat.UI.NoRatingsMessage))
	b.WriteString("\n")
	return b.String()
}
