package cli

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/boardgov/govscore/internal/catalog"
	"github.com/boardgov/govscore/internal/csvio"
	"github.com/boardgov/govscore/internal/session"
)

var (
	templateCatalog string
	templateOrg     string
	templateBoard   string
	templateDate    string
	templateSector  string
	templatePrefill bool
	templateOut     string
)

func init() {
	rootCmd.AddCommand(templateCmd)
	templateCmd.Flags().StringVar(&templateCatalog, "catalog", "", "Path to catalog YAML/JSON (built-in model when omitted)")
	templateCmd.Flags().StringVar(&templateOrg, "org", "", "Organisation name")
	templateCmd.Flags().StringVar(&templateBoard, "board", "", "Board or committee name")
	templateCmd.Flags().StringVar(&templateDate, "date", "", "Assessment date (YYYY-MM-DD, defaults to today)")
	templateCmd.Flags().StringVar(&templateSector, "sector", "", "Sector key (e.g. finance, health)")
	templateCmd.Flags().BoolVar(&templatePrefill, "prefill-minimum", false, "Seed every action at level 1")
	templateCmd.Flags().StringVarP(&templateOut, "out", "o", "", "Output file (defaults to the conventional filename)")
}

var templateCmd = &cobra.Command{
	Use:   "template",
	Short: "Write a blank or prefilled assessment CSV",
	Long: "Exports an assessment CSV covering every action in the catalog, unrated or\n" +
		"seeded at level 1 with --prefill-minimum. The file can be filled in and fed\n" +
		"back to the score and report commands.",
	RunE: runTemplate,
}

func runTemplate(cmd *cobra.Command, args []string) error {
	cat, err := catalog.Load(templateCatalog)
	if err != nil {
		return err
	}

	s := session.New(cat)
	s.SetMetadata(session.Metadata{
		Organisation: templateOrg,
		Board:        templateBoard,
		Date:         templateDate,
		Sector:       templateSector,
	})
	if templatePrefill {
		s.PrefillMinimum(1)
	}

	now := time.Now()
	data := csvio.Export(cat, s, now)

	out := templateOut
	if out == "" {
		date := templateDate
		if date == "" {
			date = now.Format("2006-01-02")
		}
		out = csvio.SuggestFilename(s.Metadata().DisplayOrganisation(), date)
	}

	if err := os.WriteFile(out, data, 0644); err != nil {
		return fmt.Errorf("write %s: %w", out, err)
	}
	fmt.Printf("Wrote %s (%d actions)\n", out, cat.TotalActions())
	return nil
}
