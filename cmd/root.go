package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/riftlab/riftmetrics/internal/config"
	"github.com/riftlab/riftmetrics/internal/loader"
	"github.com/riftlab/riftmetrics/internal/model"
)

var (
	dataDir string
	dbPath  string

	cfg *config.Config
)

var rootCmd = &cobra.Command{
	Use:   "riftmetrics",
	Short: "League of Legends personal match analytics",
	Long: `Analyze a directory of stored League of Legends match data: per-match
and per-champion statistics, teammate synergy, filter presets, and an
interactive HTML dashboard.`,
	PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
		loaded, err := config.Load()
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}
		cfg = loaded
		if dataDir == "" {
			dataDir = cfg.Data.Dir
		}
		if dbPath == "" {
			dbPath = cfg.Database.Path
		}
		return nil
	},
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&dataDir, "data", "", "match data directory (default from config)")
	rootCmd.PersistentFlags().StringVar(&dbPath, "db", "", "path to the preset database (default from config)")

	rootCmd.AddCommand(summaryCmd)
	rootCmd.AddCommand(matchesCmd)
	rootCmd.AddCommand(championsCmd)
	rootCmd.AddCommand(synergyCmd)
	rootCmd.AddCommand(mapCmd)
	rootCmd.AddCommand(dashboardCmd)
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(presetCmd)
}

// loadDataset loads the data directory and applies the optional config
// player override.
func loadDataset() (*model.Dataset, error) {
	ds, err := loader.Load(dataDir)
	if err != nil {
		return nil, fmt.Errorf("load data from %s: %w", dataDir, err)
	}
	if cfg != nil && cfg.Player.PUUID != "" && cfg.Player.PUUID != ds.MainPlayerPUUID {
		ds, err = loader.AssembleFor(cfg.Player.PUUID, ds.Matches, ds.Champions, ds.Items, ds.Queues, ds.Ranked, ds.Mastery)
		if err != nil {
			return nil, fmt.Errorf("pin player %s: %w", cfg.Player.PUUID, err)
		}
	}
	return ds, nil
}
