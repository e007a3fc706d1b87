package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/riftlab/riftmetrics/internal/champion"
	"github.com/riftlab/riftmetrics/internal/export"
	"github.com/riftlab/riftmetrics/internal/filter"
)

var (
	exportFilter filterFlags

	exportWhat   string
	exportFormat string
	exportOut    string
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export matches or champion aggregates as JSON or CSV",
	Long: `Export the filtered match list or the per-champion aggregate table.
Output goes to --out, or stdout when unset.

Example:
  riftmetrics export --what champions --format csv --out champions.csv
  riftmetrics export --what matches --wins --min-kda 2 --format json`,
	Args: cobra.NoArgs,
	RunE: runExport,
}

func init() {
	exportFilter.register(exportCmd)
	exportCmd.Flags().StringVar(&exportWhat, "what", "matches", "what to export: matches or champions")
	exportCmd.Flags().StringVar(&exportFormat, "format", "json", "output format: json or csv")
	exportCmd.Flags().StringVar(&exportOut, "out", "", "output file path (default: stdout)")
}

func runExport(cmd *cobra.Command, args []string) error {
	ds, err := loadDataset()
	if err != nil {
		return err
	}
	c, err := exportFilter.criteria()
	if err != nil {
		return err
	}
	views := filter.Apply(ds.PlayerMatches, c)

	var w io.Writer = os.Stdout
	if exportOut != "" {
		f, err := os.Create(exportOut)
		if err != nil {
			return fmt.Errorf("create %s: %w", exportOut, err)
		}
		defer f.Close()
		w = f
	}

	switch exportWhat {
	case "matches":
		rows := export.MatchRows(ds, views)
		switch exportFormat {
		case "json":
			err = export.WriteJSON(w, rows)
		case "csv":
			err = export.WriteMatchesCSV(w, rows)
		default:
			return fmt.Errorf("unknown format %q: use json or csv", exportFormat)
		}
	case "champions":
		rows := export.ChampionRows(champion.Aggregate(views, ds.Mastery))
		switch exportFormat {
		case "json":
			err = export.WriteJSON(w, rows)
		case "csv":
			err = export.WriteChampionsCSV(w, rows)
		default:
			return fmt.Errorf("unknown format %q: use json or csv", exportFormat)
		}
	default:
		return fmt.Errorf("unknown export target %q: use matches or champions", exportWhat)
	}
	if err != nil {
		return err
	}

	if exportOut != "" {
		fmt.Fprintf(os.Stderr, "Wrote %s\n", exportOut)
	}
	return nil
}
