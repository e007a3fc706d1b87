package cmd

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/riftlab/riftmetrics/internal/filter"
	"github.com/riftlab/riftmetrics/internal/model"
	"github.com/riftlab/riftmetrics/internal/report"
	"github.com/riftlab/riftmetrics/internal/storage"
)

// filterFlags collects the shared match-filter flag set used by matches,
// map, dashboard, and export.
type filterFlags struct {
	role       string
	champ      string
	text       string
	mode       string
	dateFrom   string
	dateTo     string
	minMinutes int
	maxMinutes int
	wins       bool
	losses     bool
	minKDA     float64
	maxKDA     float64

	quick  string
	preset string
}

func (f *filterFlags) register(cmd *cobra.Command) {
	fl := cmd.Flags()
	fl.StringVar(&f.role, "role", "", "role filter (TOP, JUNGLE, MIDDLE, BOTTOM, UTILITY)")
	fl.StringVar(&f.champ, "champion", "", "champion name filter")
	fl.StringVar(&f.text, "text", "", "free-text filter over champion, mode, and match id")
	fl.StringVar(&f.mode, "mode", "", "game mode filter (e.g. CLASSIC, ARAM)")
	fl.StringVar(&f.dateFrom, "from", "", "earliest date, YYYY-MM-DD")
	fl.StringVar(&f.dateTo, "to", "", "latest date, YYYY-MM-DD (inclusive)")
	fl.IntVar(&f.minMinutes, "min-length", 0, "minimum game length in minutes")
	fl.IntVar(&f.maxMinutes, "max-length", 0, "maximum game length in minutes")
	fl.BoolVar(&f.wins, "wins", false, "wins only")
	fl.BoolVar(&f.losses, "losses", false, "losses only")
	fl.Float64Var(&f.minKDA, "min-kda", 0, "minimum KDA")
	fl.Float64Var(&f.maxKDA, "max-kda", 0, "maximum KDA")
	fl.StringVar(&f.quick, "quick", "",
		fmt.Sprintf("quick filter, replaces all other criteria (%s)", strings.Join(filter.QuickFilterNames(), ", ")))
	fl.StringVar(&f.preset, "preset", "", "load criteria from a stored preset, replaces all other criteria")
}

// criteria resolves the flag set into a Criteria value. Quick filters and
// presets are complete replacements, so combining either with individual
// flags (or each other) is rejected.
func (f *filterFlags) criteria() (filter.Criteria, error) {
	if f.quick != "" && f.preset != "" {
		return filter.Criteria{}, fmt.Errorf("--quick and --preset are mutually exclusive")
	}
	if f.quick != "" {
		if !f.individualUnset() {
			return filter.Criteria{}, fmt.Errorf("--quick replaces all criteria and cannot be combined with filter flags")
		}
		c, ok := filter.QuickFilter(f.quick)
		if !ok {
			return filter.Criteria{}, fmt.Errorf("unknown quick filter %q (available: %s)",
				f.quick, strings.Join(filter.QuickFilterNames(), ", "))
		}
		return c, nil
	}
	if f.preset != "" {
		if !f.individualUnset() {
			return filter.Criteria{}, fmt.Errorf("--preset replaces all criteria and cannot be combined with filter flags")
		}
		db, err := storage.Open(dbPath)
		if err != nil {
			return filter.Criteria{}, fmt.Errorf("open preset store: %w", err)
		}
		defer db.Close()
		p, err := db.GetPreset(f.preset)
		if err != nil {
			return filter.Criteria{}, err
		}
		return p.Criteria, nil
	}

	c := filter.Criteria{
		Champion:  f.champ,
		Text:      f.text,
		GameMode:  f.mode,
		MinLength: filter.FromMinutes(f.minMinutes),
		MaxLength: filter.FromMinutes(f.maxMinutes),
		WinsOnly:  f.wins,
		LossOnly:  f.losses,
	}
	if f.role != "" {
		role := model.ParseRole(strings.ToUpper(f.role))
		if role == model.RoleUnknown && !strings.EqualFold(f.role, string(model.RoleUnknown)) {
			return filter.Criteria{}, fmt.Errorf("unknown role %q", f.role)
		}
		c.Role = role
	}
	if f.dateFrom != "" {
		t, err := time.ParseInLocation("2006-01-02", f.dateFrom, time.Local)
		if err != nil {
			return filter.Criteria{}, fmt.Errorf("parse --from: %w", err)
		}
		c.DateFrom = &t
	}
	if f.dateTo != "" {
		t, err := time.ParseInLocation("2006-01-02", f.dateTo, time.Local)
		if err != nil {
			return filter.Criteria{}, fmt.Errorf("parse --to: %w", err)
		}
		c.DateTo = &t
	}
	if f.minKDA > 0 {
		v := f.minKDA
		c.MinKDA = &v
	}
	if f.maxKDA > 0 {
		v := f.maxKDA
		c.MaxKDA = &v
	}
	return c, nil
}

func (f *filterFlags) individualUnset() bool {
	return f.role == "" && f.champ == "" && f.text == "" && f.mode == "" &&
		f.dateFrom == "" && f.dateTo == "" &&
		f.minMinutes == 0 && f.maxMinutes == 0 &&
		!f.wins && !f.losses && f.minKDA == 0 && f.maxKDA == 0
}

var matchesFilter filterFlags

var matchesCmd = &cobra.Command{
	Use:   "matches",
	Short: "List the tracked player's matches, newest first",
	Long: `List matches with per-game stats. All filter flags combine (AND); a quick
filter or preset replaces the whole set instead.`,
	Args: cobra.NoArgs,
	RunE: runMatches,
}

func init() {
	matchesFilter.register(matchesCmd)
}

func runMatches(cmd *cobra.Command, args []string) error {
	ds, err := loadDataset()
	if err != nil {
		return err
	}
	c, err := matchesFilter.criteria()
	if err != nil {
		return err
	}

	views := filter.Apply(ds.PlayerMatches, c)
	report.PrintHeader(os.Stdout, ds)
	if len(views) == 0 {
		fmt.Fprintln(os.Stdout, "No matches pass the active filters.")
		return nil
	}
	report.PrintMatchTable(os.Stdout, ds, views)
	if !c.IsEmpty() {
		fmt.Fprintf(os.Stdout, "\n%d of %d matches shown.\n", len(views), len(ds.PlayerMatches))
	}
	return nil
}
