package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/riftlab/riftmetrics/internal/champion"
	"github.com/riftlab/riftmetrics/internal/report"
)

// summaryCmd shows the high-level player overview.
var summaryCmd = &cobra.Command{
	Use:   "summary",
	Short: "Show a high-level overview of the tracked player",
	Long: `Display aggregate statistics across all stored matches: overall record,
combined KDA, gold per minute, the ranked snapshot, and the most played
champions.`,
	Args: cobra.NoArgs,
	RunE: runSummary,
}

func runSummary(cmd *cobra.Command, args []string) error {
	ds, err := loadDataset()
	if err != nil {
		return err
	}

	aggs := champion.Aggregate(ds.PlayerMatches, ds.Mastery)
	var spec champion.SortSpec
	spec.Push(champion.SortByGames)
	spec.Sort(aggs)

	report.PrintSummary(os.Stdout, ds, aggs)
	return nil
}
