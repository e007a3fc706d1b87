// Package charts renders the interactive HTML dashboard pieces with
// go-echarts: win-rate trend, champion win rates, role distribution, and the
// mini-map scatter. Each chart can render standalone or stack onto one page.
package charts

import (
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"sort"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"

	"github.com/riftlab/riftmetrics/internal/minimap"
	"github.com/riftlab/riftmetrics/internal/model"
	"github.com/riftlab/riftmetrics/internal/stats"
)

// Config holds shared chart options.
type Config struct {
	Width  string
	Height string
	Theme  string
}

// DefaultConfig returns the standard dashboard sizing.
func DefaultConfig() Config {
	return Config{Width: "900px", Height: "500px", Theme: "light"}
}

func (c Config) initOpts() charts.GlobalOpts {
	return charts.WithInitializationOpts(opts.Initialization{
		Width:  c.Width,
		Height: c.Height,
		Theme:  c.Theme,
	})
}

// trendWindow is the rolling win-rate window size in games.
const trendWindow = 10

// WinRateTrend builds a line chart of the rolling win rate over time,
// oldest game first.
func WinRateTrend(views []model.PlayerMatch, cfg Config) *charts.Line {
	line := charts.NewLine()
	line.SetGlobalOptions(
		cfg.initOpts(),
		charts.WithTitleOpts(opts.Title{
			Title:    "Win rate trend",
			Subtitle: fmt.Sprintf("rolling %d-game window", trendWindow),
		}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true), Trigger: "axis"}),
	)

	// Views arrive newest-first; the trend reads left to right in play order.
	ordered := make([]model.PlayerMatch, len(views))
	for i, v := range views {
		ordered[len(views)-1-i] = v
	}

	labels := make([]string, len(ordered))
	data := make([]opts.LineData, len(ordered))
	for i, v := range ordered {
		start := i - trendWindow + 1
		if start < 0 {
			start = 0
		}
		windowWins := 0
		for j := start; j <= i; j++ {
			if ordered[j].Participant.Win {
				windowWins++
			}
		}
		labels[i] = v.Match.CreationTime().Format("01-02")
		data[i] = opts.LineData{Value: stats.WinRate(windowWins, i-start+1)}
	}

	line.SetXAxis(labels).
		AddSeries("Win rate %", data).
		SetSeriesOptions(
			charts.WithLineChartOpts(opts.LineChart{Smooth: opts.Bool(true)}),
			charts.WithLabelOpts(opts.Label{Show: opts.Bool(false)}),
		)
	return line
}

// ChampionWinRates builds a bar chart of per-champion win rates, most played
// first.
func ChampionWinRates(aggs []model.ChampionAggregate, cfg Config) *charts.Bar {
	bar := charts.NewBar()
	bar.SetGlobalOptions(
		cfg.initOpts(),
		charts.WithTitleOpts(opts.Title{Title: "Champion win rates"}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true), Trigger: "axis"}),
	)

	ordered := make([]model.ChampionAggregate, len(aggs))
	copy(ordered, aggs)
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].Games > ordered[j].Games
	})

	labels := make([]string, len(ordered))
	data := make([]opts.BarData, len(ordered))
	for i := range ordered {
		labels[i] = ordered[i].ChampionName
		data[i] = opts.BarData{Value: ordered[i].WinRate()}
	}

	bar.SetXAxis(labels).
		AddSeries("Win rate %", data).
		SetSeriesOptions(charts.WithLabelOpts(opts.Label{Show: opts.Bool(false)}))
	return bar
}

// ChampionHeat builds a bar chart of per-champion heat scores: a composite
// of KDA, win rate, and CS per minute in [0,1].
func ChampionHeat(aggs []model.ChampionAggregate, cfg Config) *charts.Bar {
	bar := charts.NewBar()
	bar.SetGlobalOptions(
		cfg.initOpts(),
		charts.WithTitleOpts(opts.Title{
			Title:    "Champion heat",
			Subtitle: "composite of KDA, win rate, and CS/min",
		}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true), Trigger: "axis"}),
	)

	ordered := make([]model.ChampionAggregate, len(aggs))
	copy(ordered, aggs)
	sort.SliceStable(ordered, func(i, j int) bool {
		hi := stats.HeatScore(ordered[i].KDA(), ordered[i].WinRate(), ordered[i].CSPerMinute())
		hj := stats.HeatScore(ordered[j].KDA(), ordered[j].WinRate(), ordered[j].CSPerMinute())
		return hi > hj
	})

	labels := make([]string, len(ordered))
	data := make([]opts.BarData, len(ordered))
	for i := range ordered {
		a := &ordered[i]
		labels[i] = a.ChampionName
		data[i] = opts.BarData{Value: stats.HeatScore(a.KDA(), a.WinRate(), a.CSPerMinute())}
	}

	bar.SetXAxis(labels).
		AddSeries("Heat", data).
		SetSeriesOptions(charts.WithLabelOpts(opts.Label{Show: opts.Bool(false)}))
	return bar
}

// RoleDistribution builds a pie chart of games per role.
func RoleDistribution(views []model.PlayerMatch, cfg Config) *charts.Pie {
	pie := charts.NewPie()
	pie.SetGlobalOptions(
		cfg.initOpts(),
		charts.WithTitleOpts(opts.Title{Title: "Role distribution"}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
	)

	counts := make(map[model.Role]int)
	for _, v := range views {
		counts[v.Participant.Role()]++
	}

	var data []opts.PieData
	for _, role := range model.Roles {
		if counts[role] == 0 {
			continue
		}
		data = append(data, opts.PieData{Name: string(role), Value: counts[role]})
	}

	pie.AddSeries("Games", data)
	return pie
}

// MinimapScatter builds a scatter chart of placed match icons, wins and
// losses as separate series. Y is flipped so the map reads top-down like the
// in-game mini-map.
func MinimapScatter(icons []minimap.PositionedIcon, cfg Config) *charts.Scatter {
	sc := charts.NewScatter()
	sc.SetGlobalOptions(
		cfg.initOpts(),
		charts.WithTitleOpts(opts.Title{Title: "Match positions"}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
		charts.WithXAxisOpts(opts.XAxis{Min: 0, Max: 100}),
		charts.WithYAxisOpts(opts.YAxis{Min: 0, Max: 100}),
	)

	var wins, losses []opts.ScatterData
	for _, ic := range icons {
		point := opts.ScatterData{
			Value:      []any{ic.X, 100 - ic.Y},
			Symbol:     "circle",
			SymbolSize: int(8 + ic.Score*12),
		}
		if ic.Win {
			wins = append(wins, point)
		} else {
			losses = append(losses, point)
		}
	}

	sc.AddSeries("Wins", wins).
		AddSeries("Losses", losses)
	return sc
}

// RenderDashboard writes every chart onto one page at outputPath.
func RenderDashboard(ds *model.Dataset, aggs []model.ChampionAggregate, icons []minimap.PositionedIcon, cfg Config, outputPath string) error {
	page := components.NewPage()
	page.PageTitle = "riftmetrics - " + ds.MainPlayerName
	page.AddCharts(
		WinRateTrend(ds.PlayerMatches, cfg),
		ChampionWinRates(aggs, cfg),
		ChampionHeat(aggs, cfg),
		RoleDistribution(ds.PlayerMatches, cfg),
		MinimapScatter(icons, cfg),
	)
	return renderTo(page, outputPath)
}

// renderer is the common surface of charts and pages.
type renderer interface {
	Render(w io.Writer) error
}

func renderTo(r renderer, outputPath string) error {
	if dir := filepath.Dir(outputPath); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("create chart directory: %w", err)
		}
	}
	f, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("create chart file: %w", err)
	}
	defer f.Close()

	if err := r.Render(f); err != nil {
		return fmt.Errorf("render chart: %w", err)
	}
	return nil
}

// RenderChart writes a single chart to outputPath.
func RenderChart(c renderer, outputPath string) error {
	return renderTo(c, outputPath)
}

// OpenInBrowser opens the rendered file with the platform's default browser.
func OpenInBrowser(filePath string) error {
	absPath, err := filepath.Abs(filePath)
	if err != nil {
		return fmt.Errorf("resolve path: %w", err)
	}

	var cmd *exec.Cmd
	switch runtime.GOOS {
	case "darwin":
		cmd = exec.Command("open", absPath)
	case "windows":
		cmd = exec.Command("cmd", "/c", "start", absPath)
	case "linux":
		cmd = exec.Command("xdg-open", absPath)
	default:
		return fmt.Errorf("unsupported platform: %s", runtime.GOOS)
	}
	return cmd.Start()
}
