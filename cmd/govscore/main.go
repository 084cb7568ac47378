// govscore — cyber governance maturity assessment engine.
// Rates board-level governance actions 0-4 against a domain catalog and
// derives scores, recommendations, board reports, and CSV round-trips.
package main

import "github.com/boardgov/govscore/internal/cli"

func main() {
	cli.Execute()
}
