package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/boardgov/govscore/internal/report"
)

var (
	reportCatalog string
	reportInput   string
	reportFormat  string
)

func init() {
	rootCmd.AddCommand(reportCmd)
	reportCmd.Flags().StringVar(&reportCatalog, "catalog", "", "Path to catalog YAML/JSON (built-in model when omitted)")
	reportCmd.Flags().StringVarP(&reportInput, "input", "i", "", "Assessment CSV to report on (required)")
	reportCmd.Flags().StringVarP(&reportFormat, "format", "f", "text", "Output format (text|json)")
	reportCmd.MarkFlagRequired("input")
}

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Build the board report from an assessment CSV",
	Long: "Imports an assessment CSV and prints the board report: chosen levels and\n" +
		"follow-on actions grouped by domain, in catalog order. Domains with no\n" +
		"rated actions are omitted.",
	RunE: runReport,
}

func runReport(cmd *cobra.Command, args []string) error {
	cat, s, _, err := loadAssessment(reportCatalog, reportInput)
	if err != nil {
		return err
	}

	r := report.Build(cat, s)
	switch reportFormat {
	case "json":
		out, err := report.FormatJSON(r)
		if err != nil {
			return err
		}
		fmt.Println(out)
	default:
		fmt.Print(report.FormatText(r))
	}
	return nil
}
