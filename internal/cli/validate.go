package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/boardgov/govscore/internal/catalog"
)

var validateCatalog string

func init() {
	rootCmd.AddCommand(validateCmd)
	validateCmd.Flags().StringVar(&validateCatalog, "catalog", "", "Path to catalog YAML/JSON (built-in model when omitted)")
}

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate a maturity model catalog",
	Long: "Loads and validates a catalog file: required fields, unique action codes,\n" +
		"and exactly five ordered levels per action. Prints the model shape on success.",
	RunE: runValidate,
}

func runValidate(cmd *cobra.Command, args []string) error {
	cat, err := catalog.Load(validateCatalog)
	if err != nil {
		return err
	}

	fmt.Printf("Catalog OK: %d domains, %d actions, %d sectors\n",
		len(cat.Domains), cat.TotalActions(), len(cat.Sectors))
	for _, d := range cat.Domains {
		fmt.Printf("  %s  %-40s %d actions\n", d.Code, d.Name, len(d.Actions))
	}
	return nil
}
