package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/riftlab/riftmetrics/internal/champion"
	"github.com/riftlab/riftmetrics/internal/filter"
	"github.com/riftlab/riftmetrics/internal/report"
)

var synergyFilter filterFlags

var synergyCmd = &cobra.Command{
	Use:   "synergy",
	Short: "Show teammate champion pairs by win rate",
	Long: fmt.Sprintf(`Enumerate champion pairs the tracked player shared a team with and rank
them by win rate. Pairs with fewer than %d shared games are hidden.`,
		champion.MinSynergyGames),
	Args: cobra.NoArgs,
	RunE: runSynergy,
}

func init() {
	synergyFilter.register(synergyCmd)
}

func runSynergy(cmd *cobra.Command, args []string) error {
	ds, err := loadDataset()
	if err != nil {
		return err
	}
	c, err := synergyFilter.criteria()
	if err != nil {
		return err
	}

	views := filter.Apply(ds.PlayerMatches, c)
	pairs := champion.Synergy(views)

	report.PrintHeader(os.Stdout, ds)
	report.PrintSynergyTable(os.Stdout, pairs)
	return nil
}
