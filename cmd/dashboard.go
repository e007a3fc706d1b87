package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"

	"github.com/riftlab/riftmetrics/internal/champion"
	"github.com/riftlab/riftmetrics/internal/charts"
	"github.com/riftlab/riftmetrics/internal/filter"
	"github.com/riftlab/riftmetrics/internal/minimap"
)

var (
	dashboardFilter filterFlags

	dashboardSeed  int64
	dashboardOpen  bool
	dashboardWatch bool
)

// rebuildDebounce coalesces the editor-style bursts of fs events a single
// file copy produces.
const rebuildDebounce = 500 * time.Millisecond

var dashboardCmd = &cobra.Command{
	Use:   "dashboard",
	Short: "Render the full HTML dashboard",
	Long: `Render every chart (win-rate trend, champion win rates, role
distribution, mini-map scatter) onto one HTML page. With --watch the
page is rebuilt whenever the data directory changes.`,
	Args: cobra.NoArgs,
	RunE: runDashboard,
}

func init() {
	dashboardFilter.register(dashboardCmd)
	dashboardCmd.Flags().Int64Var(&dashboardSeed, "seed", 1, "random seed for mini-map jitter")
	dashboardCmd.Flags().BoolVar(&dashboardOpen, "open", false, "open the dashboard in a browser after rendering")
	dashboardCmd.Flags().BoolVar(&dashboardWatch, "watch", false, "rebuild when the data directory changes")
}

func runDashboard(cmd *cobra.Command, args []string) error {
	out := filepath.Join(cfg.Charts.OutputDir, "dashboard.html")

	if err := buildDashboard(out); err != nil {
		return err
	}
	fmt.Fprintf(os.Stderr, "Wrote %s\n", out)

	if dashboardOpen {
		if err := charts.OpenInBrowser(out); err != nil {
			return err
		}
	}
	if !dashboardWatch {
		return nil
	}
	return watchAndRebuild(out)
}

func buildDashboard(out string) error {
	ds, err := loadDataset()
	if err != nil {
		return err
	}
	c, err := dashboardFilter.criteria()
	if err != nil {
		return err
	}
	views := filter.Apply(ds.PlayerMatches, c)

	aggs := champion.Aggregate(views, ds.Mastery)
	icons := minimap.NewPlacer(dashboardSeed).Layout(views)

	chartCfg := charts.DefaultConfig()
	chartCfg.Theme = cfg.Charts.Theme

	filtered := *ds
	filtered.PlayerMatches = views
	return charts.RenderDashboard(&filtered, aggs, icons, chartCfg, out)
}

// watchAndRebuild blocks, rebuilding the dashboard on data changes until
// interrupted.
func watchAndRebuild(out string) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("start watcher: %w", err)
	}
	defer watcher.Close()

	for _, dir := range []string{dataDir, filepath.Join(dataDir, "matches")} {
		if err := watcher.Add(dir); err != nil {
			return fmt.Errorf("watch %s: %w", dir, err)
		}
	}
	fmt.Fprintf(os.Stderr, "Watching %s for changes (Ctrl-C to stop)...\n", dataDir)

	var timer *time.Timer
	rebuild := make(chan struct{}, 1)
	for {
		select {
		case ev, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if ev.Op&(fsnotify.Create|fsnotify.Write|fsnotify.Remove|fsnotify.Rename) == 0 {
				continue
			}
			if timer != nil {
				timer.Stop()
			}
			timer = time.AfterFunc(rebuildDebounce, func() {
				select {
				case rebuild <- struct{}{}:
				default:
				}
			})
		case <-rebuild:
			if err := buildDashboard(out); err != nil {
				fmt.Fprintf(os.Stderr, "rebuild failed: %v\n", err)
				continue
			}
			fmt.Fprintf(os.Stderr, "Rebuilt %s\n", out)
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			fmt.Fprintf(os.Stderr, "watch error: %v\n", err)
		}
	}
}
