package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/riftlab/riftmetrics/internal/champion"
	"github.com/riftlab/riftmetrics/internal/filter"
	"github.com/riftlab/riftmetrics/internal/report"
)

var (
	championsFilter filterFlags

	championsSort       []string
	championsMinGames   int
	championsMinWinRate float64
	championsMaxWinRate float64
	championsMinKDA     float64
	championsMinMastery int
	championsNameFilter string
)

var championsCmd = &cobra.Command{
	Use:   "champions",
	Short: "Show per-champion aggregate statistics",
	Long: `Aggregate the tracked player's matches per champion. --sort takes one or
more keys applied in order; naming a key twice flips its direction.
Match filter flags narrow which games feed the aggregation; the
aggregate flags (--min-games etc.) then narrow the resulting table.`,
	Args: cobra.NoArgs,
	RunE: runChampions,
}

func init() {
	championsFilter.register(championsCmd)
	fl := championsCmd.Flags()
	fl.StringSliceVar(&championsSort, "sort", []string{"games"},
		fmt.Sprintf("sort keys in priority order (%s)", sortKeyList()))
	fl.IntVar(&championsMinGames, "min-games", 0, "hide champions with fewer games")
	fl.Float64Var(&championsMinWinRate, "min-winrate", 0, "hide champions below this win rate")
	fl.Float64Var(&championsMaxWinRate, "max-winrate", 0, "hide champions above this win rate")
	fl.Float64Var(&championsMinKDA, "min-agg-kda", 0, "hide champions below this aggregate KDA")
	fl.IntVar(&championsMinMastery, "min-mastery", 0, "hide champions below this mastery level")
	fl.StringVar(&championsNameFilter, "name", "", "hide champions whose name does not contain this text")
}

func sortKeyList() string {
	keys := make([]string, len(champion.SortKeys))
	for i, k := range champion.SortKeys {
		keys[i] = string(k)
	}
	return strings.Join(keys, ", ")
}

func runChampions(cmd *cobra.Command, args []string) error {
	ds, err := loadDataset()
	if err != nil {
		return err
	}
	c, err := championsFilter.criteria()
	if err != nil {
		return err
	}

	var spec champion.SortSpec
	for _, raw := range championsSort {
		key, ok := champion.ParseSortKey(raw)
		if !ok {
			return fmt.Errorf("unknown sort key %q (available: %s)", raw, sortKeyList())
		}
		spec.Push(key)
	}

	views := filter.Apply(ds.PlayerMatches, c)
	aggs := champion.Aggregate(views, ds.Mastery)

	aggFilter := champion.AggregateFilter{
		MinGames:        championsMinGames,
		MinWinRate:      championsMinWinRate,
		MaxWinRate:      championsMaxWinRate,
		MinKDA:          championsMinKDA,
		MinMasteryLevel: championsMinMastery,
		NameContains:    championsNameFilter,
	}
	shown := aggFilter.Apply(aggs)
	spec.Sort(shown)

	report.PrintHeader(os.Stdout, ds)
	if len(shown) == 0 {
		fmt.Fprintln(os.Stdout, "No champions pass the active filters.")
		return nil
	}
	report.PrintChampionTable(os.Stdout, shown)
	if !aggFilter.IsEmpty() {
		fmt.Fprintf(os.Stdout, "\n%d of %d champions shown.\n", len(shown), len(aggs))
	}
	return nil
}
