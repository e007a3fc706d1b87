package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/riftlab/riftmetrics/internal/charts"
	"github.com/riftlab/riftmetrics/internal/filter"
	"github.com/riftlab/riftmetrics/internal/minimap"
	"github.com/riftlab/riftmetrics/internal/report"
)

var (
	mapFilter filterFlags

	mapSeed int64
	mapHTML bool
	mapOpen bool
)

var mapCmd = &cobra.Command{
	Use:   "map",
	Short: "Place matches on a schematic mini-map",
	Long: `Place each match on a 100x100 schematic mini-map by role and team side.
Default output is an ASCII grid; --html renders an interactive scatter
chart instead. Placement uses jitter, so pass --seed for a reproducible
layout.`,
	Args: cobra.NoArgs,
	RunE: runMap,
}

func init() {
	mapFilter.register(mapCmd)
	mapCmd.Flags().Int64Var(&mapSeed, "seed", 0, "random seed for icon jitter (0 = time-based)")
	mapCmd.Flags().BoolVar(&mapHTML, "html", false, "render an HTML scatter chart instead of ASCII")
	mapCmd.Flags().BoolVar(&mapOpen, "open", false, "open the rendered HTML in a browser (implies --html)")
}

func runMap(cmd *cobra.Command, args []string) error {
	ds, err := loadDataset()
	if err != nil {
		return err
	}
	c, err := mapFilter.criteria()
	if err != nil {
		return err
	}
	views := filter.Apply(ds.PlayerMatches, c)
	if len(views) == 0 {
		fmt.Fprintln(os.Stdout, "No matches pass the active filters.")
		return nil
	}

	seed := mapSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	icons := minimap.NewPlacer(seed).Layout(views)

	if mapHTML || mapOpen {
		chartCfg := charts.DefaultConfig()
		chartCfg.Theme = cfg.Charts.Theme
		out := filepath.Join(cfg.Charts.OutputDir, "map.html")
		if err := charts.RenderChart(charts.MinimapScatter(icons, chartCfg), out); err != nil {
			return err
		}
		fmt.Fprintf(os.Stderr, "Wrote %s\n", out)
		if mapOpen {
			return charts.OpenInBrowser(out)
		}
		return nil
	}

	report.PrintHeader(os.Stdout, ds)
	report.PrintMinimap(os.Stdout, icons)
	return nil
}
