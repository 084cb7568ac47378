package cli

import (
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "govscore",
	Short: "Cyber governance maturity assessment engine",
	Long: "Rates an organisation against the Cyber Governance Code of Practice maturity model:\n" +
		"domains of board-level actions, each scored 0-4, with per-domain averages, a\n" +
		"weakest-domain recommendation, a board report, and lossless CSV round-trips.",
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
